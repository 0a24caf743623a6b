package services

import (
	"context"
	"testing"

	"github.com/aymaralearn/backend/internal/models"
	"github.com/aymaralearn/backend/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func quizLesson() *models.Lesson {
	return &models.Lesson{ID: 1, Slug: "saludos", OrderIndex: 1, XPReward: 50}
}

func newQuizService(lessonRepo *mockLessonRepository, progressRepo *mockProgressRepository, profileRepo *mockProfileRepository, unlocked bool) *quizService {
	return NewQuizService(lessonRepo, progressRepo, profileRepo,
		&mockUnlockResolver{unlocked: unlocked}, quiz.NewStore(), zap.NewNop())
}

func TestQuizService_Start(t *testing.T) {
	svc := newQuizService(
		&mockLessonRepository{lesson: quizLesson()},
		&mockProgressRepository{},
		&mockProfileRepository{profile: &models.Profile{UserID: 1, Lives: 3}},
		true,
	)

	state, err := svc.Start(context.Background(), 1, "saludos")
	require.NoError(t, err)

	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, "in-progress", state.State)
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 4, state.Total)
	assert.Equal(t, 0, state.Score)
	assert.Equal(t, "multiple-choice", state.Kind)
	assert.NotNil(t, state.Question)
	assert.Nil(t, state.WasCorrect)
	assert.Nil(t, state.FinalScore)
}

func TestQuizService_Start_Preconditions(t *testing.T) {
	tests := []struct {
		name          string
		progressRepo  *mockProgressRepository
		profileRepo   *mockProfileRepository
		unlocked      bool
		expectedError error
	}{
		{
			name:          "no lives",
			progressRepo:  &mockProgressRepository{},
			profileRepo:   &mockProfileRepository{profile: &models.Profile{Lives: 0}},
			unlocked:      true,
			expectedError: ErrNoLives,
		},
		{
			name:          "locked",
			progressRepo:  &mockProgressRepository{},
			profileRepo:   &mockProfileRepository{profile: &models.Profile{Lives: 3}},
			unlocked:      false,
			expectedError: ErrLessonLocked,
		},
		{
			name: "already completed",
			progressRepo: &mockProgressRepository{
				records: []models.ProgressRecord{
					{UserID: 1, LessonID: 1, Completed: true},
				},
			},
			profileRepo:   &mockProfileRepository{profile: &models.Profile{Lives: 3}},
			unlocked:      true,
			expectedError: ErrAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQuizService(
				&mockLessonRepository{lesson: quizLesson()},
				tt.progressRepo, tt.profileRepo, tt.unlocked,
			)

			_, err := svc.Start(context.Background(), 1, "saludos")
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestQuizService_Start_NoQuizContent(t *testing.T) {
	svc := newQuizService(
		&mockLessonRepository{lesson: &models.Lesson{ID: 9, Slug: "sin-quiz", OrderIndex: 1}},
		&mockProgressRepository{},
		&mockProfileRepository{profile: &models.Profile{Lives: 3}},
		true,
	)

	_, err := svc.Start(context.Background(), 1, "sin-quiz")
	assert.ErrorIs(t, err, ErrNoQuizContent)
}

func TestQuizService_AnswerCheckAdvance(t *testing.T) {
	svc := newQuizService(
		&mockLessonRepository{lesson: quizLesson()},
		&mockProgressRepository{},
		&mockProfileRepository{profile: &models.Profile{UserID: 1, Lives: 3}},
		true,
	)

	started, err := svc.Start(context.Background(), 1, "saludos")
	require.NoError(t, err)
	id := started.SessionID

	option := "Kamisaraki"
	state, err := svc.Answer(context.Background(), 1, id, models.AnswerRequest{Option: &option})
	require.NoError(t, err)
	assert.Equal(t, "in-progress", state.State)

	state, err = svc.Check(context.Background(), 1, id)
	require.NoError(t, err)
	assert.Equal(t, "checked", state.State)
	require.NotNil(t, state.WasCorrect)
	assert.True(t, *state.WasCorrect)
	assert.Equal(t, 1, state.Score)

	state, err = svc.Advance(context.Background(), 1, id)
	require.NoError(t, err)
	assert.Equal(t, "in-progress", state.State)
	assert.Equal(t, 1, state.Index)
	assert.Equal(t, "completion", state.Kind)
}

func TestQuizService_FullRunToFinished(t *testing.T) {
	svc := newQuizService(
		&mockLessonRepository{lesson: quizLesson()},
		&mockProgressRepository{},
		&mockProfileRepository{profile: &models.Profile{UserID: 1, Lives: 3}},
		true,
	)

	started, err := svc.Start(context.Background(), 1, "saludos")
	require.NoError(t, err)
	id := started.SessionID

	answer := func(option string) {
		t.Helper()
		_, err := svc.Answer(context.Background(), 1, id, models.AnswerRequest{Option: &option})
		require.NoError(t, err)
	}
	checkAndAdvance := func() *models.QuizState {
		t.Helper()
		_, err := svc.Check(context.Background(), 1, id)
		require.NoError(t, err)
		state, err := svc.Advance(context.Background(), 1, id)
		require.NoError(t, err)
		return state
	}

	answer("Kamisaraki")
	checkAndAdvance()

	answer("Aski")
	checkAndAdvance()

	truth := true
	_, err = svc.Answer(context.Background(), 1, id, models.AnswerRequest{Truth: &truth})
	require.NoError(t, err)
	checkAndAdvance()

	for _, pair := range [][2]string{
		{"Kamisaraki", "¿Cómo estás?"},
		{"Waliki", "Bien"},
		{"Jikisiñkama", "Hasta luego"},
	} {
		_, err := svc.Match(context.Background(), 1, id, models.MatchRequest{Left: pair[0], Right: pair[1]})
		require.NoError(t, err)
	}
	state := checkAndAdvance()

	assert.Equal(t, "finished", state.State)
	require.NotNil(t, state.FinalScore)
	assert.Equal(t, 4, *state.FinalScore)
	require.NotNil(t, state.Percentage)
	assert.Equal(t, 100, *state.Percentage)
	assert.Empty(t, state.Kind)
	assert.Nil(t, state.Question)
}

func TestQuizService_Answer_EmptyRequest(t *testing.T) {
	svc := newQuizService(
		&mockLessonRepository{lesson: quizLesson()},
		&mockProgressRepository{},
		&mockProfileRepository{profile: &models.Profile{UserID: 1, Lives: 3}},
		true,
	)

	started, err := svc.Start(context.Background(), 1, "saludos")
	require.NoError(t, err)

	_, err = svc.Answer(context.Background(), 1, started.SessionID, models.AnswerRequest{})
	assert.ErrorIs(t, err, quiz.ErrNoAnswerSelected)
}

func TestQuizService_Abandon(t *testing.T) {
	svc := newQuizService(
		&mockLessonRepository{lesson: quizLesson()},
		&mockProgressRepository{},
		&mockProfileRepository{profile: &models.Profile{UserID: 1, Lives: 3}},
		true,
	)

	started, err := svc.Start(context.Background(), 1, "saludos")
	require.NoError(t, err)

	svc.Abandon(context.Background(), 1, started.SessionID)

	_, err = svc.Get(context.Background(), 1, started.SessionID)
	assert.ErrorIs(t, err, quiz.ErrSessionNotFound)
}

func TestQuizService_Get_UnknownSession(t *testing.T) {
	svc := newQuizService(
		&mockLessonRepository{lesson: quizLesson()},
		&mockProgressRepository{},
		&mockProfileRepository{profile: &models.Profile{UserID: 1, Lives: 3}},
		true,
	)

	_, err := svc.Get(context.Background(), 1, "no-such-session")
	assert.ErrorIs(t, err, quiz.ErrSessionNotFound)
}
