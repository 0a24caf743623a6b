package services

import (
	"context"
	"fmt"

	"github.com/aymaralearn/backend/internal/content"
	"github.com/aymaralearn/backend/internal/models"
	"go.uber.org/zap"
)

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetAll retrieves all lessons ordered by order_index ascending
	//
	// "ctx" is the context for the request.
	//
	// Returns the ordered lesson list and an error if any.
	GetAll(ctx context.Context) ([]models.Lesson, error)
	// GetBySlug retrieves a lesson by slug
	//
	// "ctx" is the context for the request.
	// "slug" is the slug of the lesson.
	//
	// Returns the lesson and an error if any.
	GetBySlug(ctx context.Context, slug string) (*models.Lesson, error)
}

// ProgressRepository defines methods for progress record data access
type ProgressRepository interface {
	// GetByUserID retrieves all progress records for a user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns the user's progress records and an error if any.
	GetByUserID(ctx context.Context, userID int) ([]models.ProgressRecord, error)
	// Upsert creates or updates the progress record for (user, lesson)
	//
	// "ctx" is the context for the request.
	// "record" is the progress record to create or update in place.
	//
	// Returns an error if any.
	Upsert(ctx context.Context, record *models.ProgressRecord) error
}

type lessonService struct {
	lessonRepo   LessonRepository
	progressRepo ProgressRepository
	logger       *zap.Logger
}

// NewLessonService creates a new lesson service
func NewLessonService(lessonRepo LessonRepository, progressRepo ProgressRepository, logger *zap.Logger) *lessonService {
	return &lessonService{
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// GetLearningPath retrieves the ordered lesson list for a user with
// unlock, completion, and star state resolved. Unlock status is a
// derived view recomputed on every call, never stored.
func (s *lessonService) GetLearningPath(ctx context.Context, userID int) ([]models.LessonListItem, error) {
	lessons, err := s.lessonRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	records, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	progress := progressByLesson(records)

	items := make([]models.LessonListItem, 0, len(lessons))
	for _, lesson := range lessons {
		item := models.LessonListItem{
			Slug:        lesson.Slug,
			Title:       lesson.Title,
			Description: lesson.Description,
			OrderIndex:  lesson.OrderIndex,
			XPReward:    lesson.XPReward,
			Color:       lesson.Color,
			Icon:        content.ResolveIcon(lesson.Icon),
			Unlocked:    s.isUnlocked(lesson, lessons, progress),
		}
		if record, ok := progress[lesson.ID]; ok {
			item.Completed = record.Completed
			item.Stars = record.Stars
		}
		items = append(items, item)
	}

	return items, nil
}

// IsUnlocked reports whether a lesson is accessible for the progress
// state captured in "records"
func (s *lessonService) IsUnlocked(ctx context.Context, lesson models.Lesson, userID int) (bool, error) {
	lessons, err := s.lessonRepo.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get lessons: %w", err)
	}

	records, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get progress: %w", err)
	}

	return s.isUnlocked(lesson, lessons, progressByLesson(records)), nil
}

// isUnlocked resolves the unlock chain for one lesson. The first lesson
// is always unlocked; any other lesson requires the lesson at
// order_index-1 to exist and be completed. A gap in ordering indices
// locks everything above it.
func (s *lessonService) isUnlocked(lesson models.Lesson, lessons []models.Lesson, progress map[int]models.ProgressRecord) bool {
	if lesson.OrderIndex == 1 {
		return true
	}

	var predecessor *models.Lesson
	for i := range lessons {
		if lessons[i].OrderIndex == lesson.OrderIndex-1 {
			predecessor = &lessons[i]
			break
		}
	}
	if predecessor == nil {
		// Defensive default: a broken ordering chain keeps the lesson
		// locked instead of crashing. Observable for operators.
		s.logger.Warn("lesson ordering gap detected",
			zap.String("slug", lesson.Slug),
			zap.Int("order_index", lesson.OrderIndex),
		)
		return false
	}

	record, ok := progress[predecessor.ID]
	return ok && record.Completed
}

// progressByLesson indexes progress records by lesson ID
func progressByLesson(records []models.ProgressRecord) map[int]models.ProgressRecord {
	progress := make(map[int]models.ProgressRecord, len(records))
	for _, record := range records {
		progress[record.LessonID] = record
	}
	return progress
}
