package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aymaralearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockFrogProfileRepository is a mock implementation of FrogProfileRepository
type mockFrogProfileRepository struct {
	profile      *models.Profile
	err          error
	updateErr    error
	updatedStage int
	updatedAt    time.Time
	updateCalled bool
}

func (m *mockFrogProfileRepository) GetByUserID(ctx context.Context, userID int) (*models.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profile, nil
}

func (m *mockFrogProfileRepository) UpdateFrog(ctx context.Context, userID, stage int, visitedAt time.Time) error {
	m.updateCalled = true
	m.updatedStage = stage
	m.updatedAt = visitedAt
	return m.updateErr
}

func TestFrogService_Visit_FirstVisit(t *testing.T) {
	repo := &mockFrogProfileRepository{
		profile: &models.Profile{UserID: 1, FrogStage: 0},
	}
	svc := NewFrogService(repo, zap.NewNop())

	result, err := svc.Visit(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stage)
	assert.Equal(t, "Huevo", result.StageName)
	assert.Equal(t, "first-visit", result.Classification)
	assert.True(t, repo.updateCalled)
	assert.Equal(t, 0, repo.updatedStage)
	assert.False(t, repo.updatedAt.IsZero())
}

func TestFrogService_Visit_SameDayDoesNotWrite(t *testing.T) {
	lastVisit := time.Now().Add(-1 * time.Minute)
	repo := &mockFrogProfileRepository{
		profile: &models.Profile{UserID: 1, FrogStage: 2, LastFrogVisit: &lastVisit},
	}
	svc := NewFrogService(repo, zap.NewNop())

	result, err := svc.Visit(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stage)
	assert.Equal(t, "already-visited-today", result.Classification)
	assert.False(t, repo.updateCalled)
}

func TestFrogService_Visit_Evolves(t *testing.T) {
	lastVisit := time.Now().Add(-25 * time.Hour)
	repo := &mockFrogProfileRepository{
		profile: &models.Profile{UserID: 1, FrogStage: 1, LastFrogVisit: &lastVisit},
	}
	svc := NewFrogService(repo, zap.NewNop())

	result, err := svc.Visit(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stage)
	assert.Equal(t, "Renacuajo (2 patas)", result.StageName)
	assert.Equal(t, "evolved", result.Classification)
	assert.True(t, repo.updateCalled)
	assert.Equal(t, 2, repo.updatedStage)
}

func TestFrogService_Visit_Reset(t *testing.T) {
	lastVisit := time.Now().Add(-72 * time.Hour)
	repo := &mockFrogProfileRepository{
		profile: &models.Profile{UserID: 1, FrogStage: 4, LastFrogVisit: &lastVisit},
	}
	svc := NewFrogService(repo, zap.NewNop())

	result, err := svc.Visit(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stage)
	assert.Equal(t, "Huevo", result.StageName)
	assert.Equal(t, "reset", result.Classification)
	assert.True(t, repo.updateCalled)
	assert.Equal(t, 0, repo.updatedStage)
}

func TestFrogService_Visit_ProfileError(t *testing.T) {
	repo := &mockFrogProfileRepository{err: errors.New("db down")}
	svc := NewFrogService(repo, zap.NewNop())

	_, err := svc.Visit(context.Background(), 1)
	assert.Error(t, err)
}

func TestFrogService_Visit_UpdateError(t *testing.T) {
	repo := &mockFrogProfileRepository{
		profile:   &models.Profile{UserID: 1, FrogStage: 0},
		updateErr: errors.New("db down"),
	}
	svc := NewFrogService(repo, zap.NewNop())

	_, err := svc.Visit(context.Background(), 1)
	assert.Error(t, err)
}
