package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aymaralearn/backend/internal/models"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// GetByUserID retrieves all progress records for a user
func (r *progressRepository) GetByUserID(ctx context.Context, userID int) ([]models.ProgressRecord, error) {
	query := `
		SELECT id, user_id, lesson_id, completed, stars, completed_at
		FROM user_progress
		WHERE user_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress records: %w", err)
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		var record models.ProgressRecord
		var completedAt sql.NullTime
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.LessonID,
			&record.Completed,
			&record.Stars,
			&completedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress record: %w", err)
		}
		if completedAt.Valid {
			record.CompletedAt = &completedAt.Time
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// Upsert creates the progress record for (user, lesson) or updates it in
// place. At most one record exists per pair; the unique key enforces it.
func (r *progressRepository) Upsert(ctx context.Context, record *models.ProgressRecord) error {
	query := `
		INSERT INTO user_progress (user_id, lesson_id, completed, stars, completed_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			completed = VALUES(completed),
			stars = VALUES(stars),
			completed_at = VALUES(completed_at)
	`

	var completedAt sql.NullTime
	if record.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *record.CompletedAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		record.UserID,
		record.LessonID,
		record.Completed,
		record.Stars,
		completedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert progress record: %w", err)
	}

	return nil
}
