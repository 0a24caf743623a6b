package quiz

import (
	"errors"
	"math"
)

// Precondition violations returned by session operations. The HTTP layer
// maps these to client errors; they never corrupt session state.
var (
	ErrSessionFinished    = errors.New("quiz session is finished")
	ErrNoAnswerSelected   = errors.New("no answer selected for current question")
	ErrIncompleteMatching = errors.New("matching submission is incomplete")
	ErrNotChecked         = errors.New("current question has not been checked")
	ErrAlreadyChecked     = errors.New("current question has already been checked")
	ErrWrongAnswerKind    = errors.New("answer kind does not fit current question")
)

// State identifies where a session is in its lifecycle
type State string

const (
	StateInProgress State = "in-progress"
	StateChecked    State = "checked"
	StateFinished   State = "finished"
)

// Session sequences a fixed ordered list of questions for one lesson
// attempt. It is ephemeral: nothing here is persisted, and abandoning a
// session simply discards it. Sessions are not safe for concurrent use;
// the store serializes access per session.
type Session struct {
	questions []Question

	state   State
	index   int
	score   int
	correct bool

	option  *string
	truth   *bool
	matches map[string]string
}

// NewSession creates a session over a non-empty ordered question list
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, errors.New("quiz has no questions")
	}
	return &Session{
		questions: questions,
		state:     StateInProgress,
		matches:   make(map[string]string),
	}, nil
}

// State returns the current lifecycle state
func (s *Session) State() State { return s.state }

// Index returns the 0-based index of the current question.
// It is monotonically increasing; sessions never go back.
func (s *Session) Index() int { return s.index }

// Score returns the running score
func (s *Session) Score() int { return s.score }

// Total returns the number of questions in the session
func (s *Session) Total() int { return len(s.questions) }

// Current returns the question at the current index
func (s *Session) Current() Question { return s.questions[s.index] }

// WasCorrect reports the outcome of the last check.
// Only meaningful in the Checked state.
func (s *Session) WasCorrect() bool { return s.correct }

// SelectOption captures a string candidate for a multiple-choice or
// completion question. Selecting twice overwrites: last write wins.
func (s *Session) SelectOption(option string) error {
	if err := s.selectable(); err != nil {
		return err
	}
	switch s.Current().(type) {
	case MultipleChoice, Completion:
		s.option = &option
		return nil
	default:
		return ErrWrongAnswerKind
	}
}

// SelectBool captures a boolean candidate for a true/false question
func (s *Session) SelectBool(truth bool) error {
	if err := s.selectable(); err != nil {
		return err
	}
	if _, ok := s.Current().(TrueFalse); !ok {
		return ErrWrongAnswerKind
	}
	s.truth = &truth
	return nil
}

// Match records one (left, right) choice for a matching question,
// merging into the working mapping. Re-matching a left key overwrites
// its previous right value.
func (s *Session) Match(left, right string) error {
	if err := s.selectable(); err != nil {
		return err
	}
	if _, ok := s.Current().(Matching); !ok {
		return ErrWrongAnswerKind
	}
	s.matches[left] = right
	return nil
}

// selectable rejects answer capture outside the InProgress state
func (s *Session) selectable() error {
	switch s.state {
	case StateFinished:
		return ErrSessionFinished
	case StateChecked:
		return ErrAlreadyChecked
	}
	return nil
}

// Check validates the captured answer against the current question and
// transitions to Checked, incrementing the score by exactly one on a
// correct answer. Checking again while already Checked is a no-op that
// returns the prior outcome; the score is never counted twice.
func (s *Session) Check() (bool, error) {
	switch s.state {
	case StateFinished:
		return false, ErrSessionFinished
	case StateChecked:
		return s.correct, nil
	}

	sub := s.submission()
	question := s.Current()
	if !hasAnswer(question, sub) {
		if _, ok := question.(Matching); ok {
			return false, ErrIncompleteMatching
		}
		return false, ErrNoAnswerSelected
	}

	s.correct = Validate(question, sub)
	if s.correct {
		s.score++
	}
	s.state = StateChecked
	return s.correct, nil
}

// Advance moves past a checked question. From the last question it
// transitions to Finished; otherwise it clears the per-question
// transients and re-enters InProgress at the next index.
func (s *Session) Advance() error {
	switch s.state {
	case StateFinished:
		return ErrSessionFinished
	case StateInProgress:
		return ErrNotChecked
	}

	if s.index == len(s.questions)-1 {
		s.state = StateFinished
		return nil
	}

	s.index++
	s.state = StateInProgress
	s.correct = false
	s.option = nil
	s.truth = nil
	s.matches = make(map[string]string)
	return nil
}

// FinalScore returns the final score of a finished session
func (s *Session) FinalScore() int { return s.score }

// Percentage returns the finished score as a rounded percentage
func (s *Session) Percentage() int {
	return int(math.Round(float64(s.score) / float64(len(s.questions)) * 100))
}

// submission snapshots the captured answer state for validation
func (s *Session) submission() Submission {
	return Submission{
		Option:  s.option,
		Truth:   s.truth,
		Matches: s.matches,
	}
}
