package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_OpenAndGet(t *testing.T) {
	store := NewStore()

	id, session, err := store.Open(1, 10, testQuestions())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, lessonID, err := store.Get(id, 1)
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Equal(t, 10, lessonID)
}

func TestStore_Get_WrongUser(t *testing.T) {
	store := NewStore()

	id, _, err := store.Open(1, 10, testQuestions())
	require.NoError(t, err)

	_, _, err = store.Get(id, 2)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Open_DiscardsPrevious(t *testing.T) {
	store := NewStore()

	first, _, err := store.Open(1, 10, testQuestions())
	require.NoError(t, err)

	second, _, err := store.Open(1, 10, testQuestions())
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, _, err = store.Get(first, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, _, err = store.Get(second, 1)
	assert.NoError(t, err)
}

func TestStore_Close(t *testing.T) {
	store := NewStore()

	id, _, err := store.Open(1, 10, testQuestions())
	require.NoError(t, err)

	store.Close(id, 1)

	_, _, err = store.Get(id, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// closing again is not an error
	store.Close(id, 1)
}

func TestStore_Do(t *testing.T) {
	store := NewStore()

	id, _, err := store.Open(1, 10, testQuestions())
	require.NoError(t, err)

	err = store.Do(id, 1, func(s *Session) error {
		return s.SelectOption("b")
	})
	require.NoError(t, err)

	err = store.Do(id, 2, func(s *Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
