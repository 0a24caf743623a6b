// Package content holds the authored quiz material for each lesson.
// Quizzes are compiled in and never persisted; the database only stores
// lesson metadata and per-user progress.
package content

import (
	"sort"
	"sync"

	"github.com/aymaralearn/backend/internal/quiz"
)

var (
	mu      sync.RWMutex
	quizzes = make(map[string][]quiz.Question)
)

// Register associates a lesson slug with its ordered question sequence.
// Question order is significant and fixed at authoring time. Typically
// called from an init() in this package.
func Register(slug string, questions []quiz.Question) {
	mu.Lock()
	defer mu.Unlock()
	quizzes[slug] = questions
}

// Quiz returns the ordered question sequence for a lesson slug.
// The second return value is false when no quiz is authored for the slug.
func Quiz(slug string) ([]quiz.Question, bool) {
	mu.RLock()
	defer mu.RUnlock()
	questions, ok := quizzes[slug]
	return questions, ok
}

// Slugs returns all registered lesson slugs, sorted
func Slugs() []string {
	mu.RLock()
	defer mu.RUnlock()
	slugs := make([]string, 0, len(quizzes))
	for slug := range quizzes {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}
