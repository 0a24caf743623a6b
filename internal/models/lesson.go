package models

// Lesson represents an authored lesson in the learning path
type Lesson struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex"`
	XPReward    int    `json:"xpReward"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// LessonListItem represents a lesson in the learning path view,
// enriched with the user's unlock and completion state
type LessonListItem struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex"`
	XPReward    int    `json:"xpReward"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	Completed   bool   `json:"completed"`
	Stars       int    `json:"stars"`
}
