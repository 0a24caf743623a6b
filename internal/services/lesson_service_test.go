package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aymaralearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockLessonRepository is a mock implementation of LessonRepository
type mockLessonRepository struct {
	lessons      []models.Lesson
	lesson       *models.Lesson
	err          error
	getBySlugErr error
}

func (m *mockLessonRepository) GetAll(ctx context.Context) ([]models.Lesson, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lessons, nil
}

func (m *mockLessonRepository) GetBySlug(ctx context.Context, slug string) (*models.Lesson, error) {
	if m.getBySlugErr != nil {
		return nil, m.getBySlugErr
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.lesson, nil
}

// mockProgressRepository is a mock implementation of ProgressRepository
type mockProgressRepository struct {
	records      []models.ProgressRecord
	err          error
	upsertErr    error
	upserted     *models.ProgressRecord
	upsertCalled bool
}

func (m *mockProgressRepository) GetByUserID(ctx context.Context, userID int) ([]models.ProgressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockProgressRepository) Upsert(ctx context.Context, record *models.ProgressRecord) error {
	m.upsertCalled = true
	m.upserted = record
	return m.upsertErr
}

func pathLessons() []models.Lesson {
	return []models.Lesson{
		{ID: 1, Slug: "saludos", Title: "Saludos Básicos", OrderIndex: 1, XPReward: 50, Icon: "hand"},
		{ID: 2, Slug: "numeros", Title: "Números 1-10", OrderIndex: 2, XPReward: 50, Icon: "numbers"},
		{ID: 3, Slug: "familia", Title: "La Familia", OrderIndex: 3, XPReward: 50, Icon: "family"},
	}
}

func TestNewLessonService(t *testing.T) {
	lessonRepo := &mockLessonRepository{}
	progressRepo := &mockProgressRepository{}

	svc := NewLessonService(lessonRepo, progressRepo, zap.NewNop())

	assert.NotNil(t, svc)
	assert.Equal(t, lessonRepo, svc.lessonRepo)
	assert.Equal(t, progressRepo, svc.progressRepo)
}

func TestLessonService_GetLearningPath(t *testing.T) {
	tests := []struct {
		name          string
		lessonRepo    *mockLessonRepository
		progressRepo  *mockProgressRepository
		expectedError bool
		check         func(t *testing.T, items []models.LessonListItem)
	}{
		{
			name:         "no progress unlocks only the first lesson",
			lessonRepo:   &mockLessonRepository{lessons: pathLessons()},
			progressRepo: &mockProgressRepository{},
			check: func(t *testing.T, items []models.LessonListItem) {
				require.Len(t, items, 3)
				assert.True(t, items[0].Unlocked)
				assert.False(t, items[1].Unlocked)
				assert.False(t, items[2].Unlocked)
			},
		},
		{
			name:       "completed predecessor unlocks the next lesson",
			lessonRepo: &mockLessonRepository{lessons: pathLessons()},
			progressRepo: &mockProgressRepository{
				records: []models.ProgressRecord{
					{UserID: 1, LessonID: 1, Completed: true, Stars: 3},
				},
			},
			check: func(t *testing.T, items []models.LessonListItem) {
				require.Len(t, items, 3)
				assert.True(t, items[0].Unlocked)
				assert.True(t, items[0].Completed)
				assert.Equal(t, 3, items[0].Stars)
				assert.True(t, items[1].Unlocked)
				assert.False(t, items[2].Unlocked)
			},
		},
		{
			name:       "incomplete record does not unlock",
			lessonRepo: &mockLessonRepository{lessons: pathLessons()},
			progressRepo: &mockProgressRepository{
				records: []models.ProgressRecord{
					{UserID: 1, LessonID: 1, Completed: false},
				},
			},
			check: func(t *testing.T, items []models.LessonListItem) {
				assert.False(t, items[1].Unlocked)
			},
		},
		{
			name: "ordering gap locks everything above it",
			lessonRepo: &mockLessonRepository{lessons: []models.Lesson{
				{ID: 1, Slug: "saludos", OrderIndex: 1},
				{ID: 3, Slug: "familia", OrderIndex: 3},
			}},
			progressRepo: &mockProgressRepository{
				records: []models.ProgressRecord{
					{UserID: 1, LessonID: 1, Completed: true},
				},
			},
			check: func(t *testing.T, items []models.LessonListItem) {
				require.Len(t, items, 2)
				assert.True(t, items[0].Unlocked)
				assert.False(t, items[1].Unlocked)
			},
		},
		{
			name:       "icon tags resolve with a fallback",
			lessonRepo: &mockLessonRepository{lessons: []models.Lesson{
				{ID: 1, Slug: "saludos", OrderIndex: 1, Icon: "hand"},
				{ID: 2, Slug: "misterio", OrderIndex: 2, Icon: "no-such-tag"},
			}},
			progressRepo: &mockProgressRepository{},
			check: func(t *testing.T, items []models.LessonListItem) {
				assert.Equal(t, "hand-waving", items[0].Icon)
				assert.Equal(t, "book-open", items[1].Icon)
			},
		},
		{
			name:          "lesson repository error",
			lessonRepo:    &mockLessonRepository{err: errors.New("db down")},
			progressRepo:  &mockProgressRepository{},
			expectedError: true,
		},
		{
			name:          "progress repository error",
			lessonRepo:    &mockLessonRepository{lessons: pathLessons()},
			progressRepo:  &mockProgressRepository{err: errors.New("db down")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLessonService(tt.lessonRepo, tt.progressRepo, zap.NewNop())

			items, err := svc.GetLearningPath(context.Background(), 1)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, items)
		})
	}
}

func TestLessonService_IsUnlocked(t *testing.T) {
	lessons := pathLessons()
	svc := NewLessonService(
		&mockLessonRepository{lessons: lessons},
		&mockProgressRepository{
			records: []models.ProgressRecord{
				{UserID: 1, LessonID: 1, Completed: true},
			},
		},
		zap.NewNop(),
	)

	unlocked, err := svc.IsUnlocked(context.Background(), lessons[1], 1)
	require.NoError(t, err)
	assert.True(t, unlocked)

	unlocked, err = svc.IsUnlocked(context.Background(), lessons[2], 1)
	require.NoError(t, err)
	assert.False(t, unlocked)
}
