package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aymaralearn/backend/internal/models"
	"go.uber.org/zap"
)

// ProfileRepository defines methods for profile data access
type ProfileRepository interface {
	// GetByUserID retrieves a user's profile
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns the profile and an error if any.
	GetByUserID(ctx context.Context, userID int) (*models.Profile, error)
	// UpdateXPAndLevel writes a new XP total and its derived level
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "xp" is the new XP total; "level" must equal floor(xp/100)+1.
	//
	// Returns an error if any.
	UpdateXPAndLevel(ctx context.Context, userID, xp, level int) error
	// UpdateLives writes a new lives count
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "lives" is the new lives count.
	//
	// Returns an error if any.
	UpdateLives(ctx context.Context, userID, lives int) error
}

// UnlockResolver decides whether a lesson is accessible for a user
type UnlockResolver interface {
	// IsUnlocked reports whether the lesson is unlocked for the user
	//
	// "ctx" is the context for the request.
	// "lesson" is the lesson to resolve.
	// "userID" is the ID of the user.
	//
	// Returns the unlock state and an error if any.
	IsUnlocked(ctx context.Context, lesson models.Lesson, userID int) (bool, error)
}

// Rand is the injected randomness source for star draws. math/rand's
// *Rand satisfies it; tests supply a seeded generator.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0, n)
	Intn(n int) int
}

type progressService struct {
	lessonRepo   LessonRepository
	progressRepo ProgressRepository
	profileRepo  ProfileRepository
	unlocks      UnlockResolver
	rng          Rand
	logger       *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(
	lessonRepo LessonRepository,
	progressRepo ProgressRepository,
	profileRepo ProfileRepository,
	unlocks UnlockResolver,
	rng Rand,
	logger *zap.Logger,
) *progressService {
	return &progressService{
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
		profileRepo:  profileRepo,
		unlocks:      unlocks,
		rng:          rng,
		logger:       logger,
	}
}

// SubmitAttempt applies the reward rules for one binary lesson attempt
// outcome. A passed attempt draws 1-3 stars, adds the lesson's XP reward,
// recomputes the level, and upserts the progress record; a failed attempt
// costs one life (floored at zero) and mutates nothing else.
//
// Preconditions checked before any write: the lesson must be unlocked,
// not already completed, and the user must have at least one life.
// Persistence failures propagate to the caller without retry; nothing is
// reported as applied until the write succeeded.
func (s *progressService) SubmitAttempt(ctx context.Context, userID int, lessonSlug string, passed bool) (*models.AttemptResult, error) {
	lesson, err := s.lessonRepo.GetBySlug(ctx, lessonSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.Lives <= 0 {
		return nil, ErrNoLives
	}

	unlocked, err := s.unlocks.IsUnlocked(ctx, *lesson, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve unlock state: %w", err)
	}
	if !unlocked {
		return nil, ErrLessonLocked
	}

	records, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if record, ok := progressByLesson(records)[lesson.ID]; ok && record.Completed {
		return nil, ErrAlreadyCompleted
	}

	if !passed {
		return s.applyFailure(ctx, userID, profile)
	}
	return s.applySuccess(ctx, userID, lesson, profile)
}

// applySuccess awards stars and XP and marks the lesson completed
func (s *progressService) applySuccess(ctx context.Context, userID int, lesson *models.Lesson, profile *models.Profile) (*models.AttemptResult, error) {
	stars := s.rng.Intn(3) + 1
	newXP := profile.XP + lesson.XPReward
	newLevel := models.LevelForXP(newXP)

	if err := s.profileRepo.UpdateXPAndLevel(ctx, userID, newXP, newLevel); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	now := time.Now()
	record := &models.ProgressRecord{
		UserID:      userID,
		LessonID:    lesson.ID,
		Completed:   true,
		Stars:       stars,
		CompletedAt: &now,
	}
	if err := s.progressRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to upsert progress record: %w", err)
	}

	s.logger.Info("lesson completed",
		zap.Int("user_id", userID),
		zap.String("lesson", lesson.Slug),
		zap.Int("stars", stars),
		zap.Int("xp_awarded", lesson.XPReward),
	)

	return &models.AttemptResult{
		Passed:    true,
		Stars:     stars,
		XPAwarded: lesson.XPReward,
		NewXP:     newXP,
		NewLevel:  newLevel,
		LivesLeft: profile.Lives,
	}, nil
}

// applyFailure deducts one life and leaves XP, level, and progress alone
func (s *progressService) applyFailure(ctx context.Context, userID int, profile *models.Profile) (*models.AttemptResult, error) {
	newLives := profile.Lives - 1
	if newLives < 0 {
		newLives = 0
	}

	if err := s.profileRepo.UpdateLives(ctx, userID, newLives); err != nil {
		return nil, fmt.Errorf("failed to update lives: %w", err)
	}

	return &models.AttemptResult{
		Passed:    false,
		NewXP:     profile.XP,
		NewLevel:  profile.Level,
		LivesLeft: newLives,
	}, nil
}
