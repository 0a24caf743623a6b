package services

import (
	"context"
	"fmt"

	"github.com/aymaralearn/backend/internal/content"
	"github.com/aymaralearn/backend/internal/models"
	"github.com/aymaralearn/backend/internal/quiz"
	"go.uber.org/zap"
)

type quizService struct {
	lessonRepo   LessonRepository
	progressRepo ProgressRepository
	profileRepo  ProfileRepository
	unlocks      UnlockResolver
	store        *quiz.Store
	logger       *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(
	lessonRepo LessonRepository,
	progressRepo ProgressRepository,
	profileRepo ProfileRepository,
	unlocks UnlockResolver,
	store *quiz.Store,
	logger *zap.Logger,
) *quizService {
	return &quizService{
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
		profileRepo:  profileRepo,
		unlocks:      unlocks,
		store:        store,
		logger:       logger,
	}
}

// Start opens a quiz session for a lesson. The lesson must be unlocked,
// not already completed, and the user must have at least one life.
func (s *quizService) Start(ctx context.Context, userID int, lessonSlug string) (*models.QuizState, error) {
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

	questions, ok := content.Quiz(lesson.Slug)
	if !ok {
		s.logger.Warn("lesson without authored quiz", zap.String("slug", lesson.Slug))
		return nil, ErrNoQuizContent
	}

	sessionID, session, err := s.store.Open(userID, lesson.ID, questions)
	if err != nil {
		return nil, fmt.Errorf("failed to open quiz session: %w", err)
	}

	s.logger.Info("quiz session started",
		zap.Int("user_id", userID),
		zap.String("lesson", lesson.Slug),
		zap.String("session_id", sessionID),
	)

	return stateView(sessionID, session), nil
}

// Get returns the current view of a session
func (s *quizService) Get(ctx context.Context, userID int, sessionID string) (*models.QuizState, error) {
	session, _, err := s.store.Get(sessionID, userID)
	if err != nil {
		return nil, err
	}
	return stateView(sessionID, session), nil
}

// Answer captures an option or boolean candidate for the current
// question. Submitting again before checking overwrites the candidate.
func (s *quizService) Answer(ctx context.Context, userID int, sessionID string, req models.AnswerRequest) (*models.QuizState, error) {
	return s.transition(userID, sessionID, func(session *quiz.Session) error {
		switch {
		case req.Option != nil:
			return session.SelectOption(*req.Option)
		case req.Truth != nil:
			return session.SelectBool(*req.Truth)
		default:
			return quiz.ErrNoAnswerSelected
		}
	})
}

// Match captures one matching pair choice for the current question
func (s *quizService) Match(ctx context.Context, userID int, sessionID string, req models.MatchRequest) (*models.QuizState, error) {
	return s.transition(userID, sessionID, func(session *quiz.Session) error {
		return session.Match(req.Left, req.Right)
	})
}

// Check validates the captured answer for the current question
func (s *quizService) Check(ctx context.Context, userID int, sessionID string) (*models.QuizState, error) {
	return s.transition(userID, sessionID, func(session *quiz.Session) error {
		_, err := session.Check()
		return err
	})
}

// Advance moves the session past a checked question, finishing it on
// the last one
func (s *quizService) Advance(ctx context.Context, userID int, sessionID string) (*models.QuizState, error) {
	return s.transition(userID, sessionID, func(session *quiz.Session) error {
		return session.Advance()
	})
}

// Abandon discards a session without persisting anything
func (s *quizService) Abandon(ctx context.Context, userID int, sessionID string) {
	s.store.Close(sessionID, userID)
}

// transition runs one state-machine operation and returns the fresh view
func (s *quizService) transition(userID int, sessionID string, op func(*quiz.Session) error) (*models.QuizState, error) {
	var view *models.QuizState
	err := s.store.Do(sessionID, userID, func(session *quiz.Session) error {
		if err := op(session); err != nil {
			return err
		}
		view = stateView(sessionID, session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// stateView projects a session into its client view. Correct answers are
// excluded by the question types' JSON tags.
func stateView(sessionID string, session *quiz.Session) *models.QuizState {
	state := &models.QuizState{
		SessionID: sessionID,
		State:     string(session.State()),
		Index:     session.Index(),
		Total:     session.Total(),
		Score:     session.Score(),
	}

	switch session.State() {
	case quiz.StateFinished:
		final := session.FinalScore()
		percentage := session.Percentage()
		state.FinalScore = &final
		state.Percentage = &percentage
	case quiz.StateChecked:
		correct := session.WasCorrect()
		state.WasCorrect = &correct
		fallthrough
	default:
		question := session.Current()
		state.Kind = question.Kind()
		state.Question = question
	}

	return state
}
