package services

import "errors"

// Precondition violations surfaced by the engine services. Handlers map
// these to client errors; the triggering operation is rejected in place
// and no partial state change is applied.
var (
	ErrLessonLocked     = errors.New("lesson is locked")
	ErrAlreadyCompleted = errors.New("lesson is already completed")
	ErrNoLives          = errors.New("no lives left")
	ErrNoQuizContent    = errors.New("lesson has no authored quiz")
)
