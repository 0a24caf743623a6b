package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aymaralearn/backend/internal/models"
)

// Profile writes are last-writer-wins: the single-user model gives each
// profile one writer at a time, so no version column is carried.
type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sql.DB) *profileRepository {
	return &profileRepository{
		db: db,
	}
}

// GetByUserID retrieves a user's profile
func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*models.Profile, error) {
	query := `
		SELECT user_id, xp, level, lives, frog_stage, last_frog_visit
		FROM profiles
		WHERE user_id = ?
		LIMIT 1
	`

	var profile models.Profile
	var lastVisit sql.NullTime
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.XP,
		&profile.Level,
		&profile.Lives,
		&profile.FrogStage,
		&lastVisit,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if lastVisit.Valid {
		profile.LastFrogVisit = &lastVisit.Time
	}
	return &profile, nil
}

// UpdateXPAndLevel writes a new XP total and its derived level
func (r *profileRepository) UpdateXPAndLevel(ctx context.Context, userID, xp, level int) error {
	query := `UPDATE profiles SET xp = ?, level = ? WHERE user_id = ?`

	result, err := r.db.ExecContext(ctx, query, xp, level, userID)
	if err != nil {
		return fmt.Errorf("failed to update xp and level: %w", err)
	}

	return checkProfileUpdated(result)
}

// UpdateLives writes a new lives count
func (r *profileRepository) UpdateLives(ctx context.Context, userID, lives int) error {
	query := `UPDATE profiles SET lives = ? WHERE user_id = ?`

	result, err := r.db.ExecContext(ctx, query, lives, userID)
	if err != nil {
		return fmt.Errorf("failed to update lives: %w", err)
	}

	return checkProfileUpdated(result)
}

// UpdateFrog writes a new frog stage together with the visit timestamp
func (r *profileRepository) UpdateFrog(ctx context.Context, userID, stage int, visitedAt time.Time) error {
	query := `UPDATE profiles SET frog_stage = ?, last_frog_visit = ? WHERE user_id = ?`

	result, err := r.db.ExecContext(ctx, query, stage, visitedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to update frog state: %w", err)
	}

	return checkProfileUpdated(result)
}

// RegenerateLives grants one life to every profile below the cap.
// Called by the periodic regeneration job; returns the number of
// profiles touched.
func (r *profileRepository) RegenerateLives(ctx context.Context, maxLives int) (int, error) {
	query := `UPDATE profiles SET lives = lives + 1 WHERE lives < ?`

	result, err := r.db.ExecContext(ctx, query, maxLives)
	if err != nil {
		return 0, fmt.Errorf("failed to regenerate lives: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(affected), nil
}

// checkProfileUpdated converts a zero-row update into a not-found error
func checkProfileUpdated(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("profile not found")
	}

	return nil
}
