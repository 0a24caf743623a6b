package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aymaralearn/backend/internal/models"
	"github.com/aymaralearn/backend/internal/streak"
	"go.uber.org/zap"
)

// FrogProfileRepository defines the profile access the frog service needs
type FrogProfileRepository interface {
	// GetByUserID retrieves a user's profile
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns the profile and an error if any.
	GetByUserID(ctx context.Context, userID int) (*models.Profile, error)
	// UpdateFrog writes a new frog stage together with the visit timestamp
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "stage" is the new frog stage (0..4).
	// "visitedAt" is the visit timestamp to record.
	//
	// Returns an error if any.
	UpdateFrog(ctx context.Context, userID, stage int, visitedAt time.Time) error
}

type frogService struct {
	profileRepo FrogProfileRepository
	logger      *zap.Logger
}

// NewFrogService creates a new frog service
func NewFrogService(profileRepo FrogProfileRepository, logger *zap.Logger) *frogService {
	return &frogService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Visit evaluates the user's daily streak and persists the resulting
// stage and visit timestamp. The timestamp advances even when the stage
// is unchanged, except on the already-visited-today path, where no write
// occurs because today's visit already counted.
func (s *frogService) Visit(ctx context.Context, userID int) (*models.FrogVisitResult, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	now := time.Now()
	newStage, classification := streak.Evaluate(now, profile.LastFrogVisit, profile.FrogStage)

	if classification != streak.AlreadyVisitedToday {
		if err := s.profileRepo.UpdateFrog(ctx, userID, newStage, now); err != nil {
			return nil, fmt.Errorf("failed to update frog state: %w", err)
		}
	}

	if classification == streak.Reset {
		s.logger.Info("frog streak reset",
			zap.Int("user_id", userID),
			zap.Int("previous_stage", profile.FrogStage),
		)
	}

	return &models.FrogVisitResult{
		Stage:          newStage,
		StageName:      models.FrogStageNames[newStage],
		Classification: string(classification),
	}, nil
}
