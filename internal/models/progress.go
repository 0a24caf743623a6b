package models

import "time"

// ProgressRecord represents a user's durable outcome for one lesson.
// At most one record exists per (user, lesson) pair.
type ProgressRecord struct {
	ID          int        `json:"id"`
	UserID      int        `json:"userId"`
	LessonID    int        `json:"lessonId"`
	Completed   bool       `json:"completed"`
	Stars       int        `json:"stars"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// AttemptRequest represents a submitted lesson attempt outcome
type AttemptRequest struct {
	Passed bool `json:"passed"`
}

// AttemptResult represents the rewards applied for a lesson attempt
type AttemptResult struct {
	Passed    bool `json:"passed"`
	Stars     int  `json:"stars,omitempty"`
	XPAwarded int  `json:"xpAwarded,omitempty"`
	NewXP     int  `json:"newXp"`
	NewLevel  int  `json:"newLevel"`
	LivesLeft int  `json:"livesLeft"`
}
