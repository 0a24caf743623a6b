package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions() []Question {
	return []Question{
		MultipleChoice{
			Text:    "pick one",
			Options: []string{"a", "b", "c"},
			Correct: "b",
		},
		TrueFalse{
			Text:    "judge this",
			Correct: true,
		},
		Matching{
			Text: "match these",
			Pairs: []Pair{
				{Left: "l1", Right: "r1"},
				{Left: "l2", Right: "r2"},
			},
		},
	}
}

func TestNewSession(t *testing.T) {
	session, err := NewSession(testQuestions())
	require.NoError(t, err)

	assert.Equal(t, StateInProgress, session.State())
	assert.Equal(t, 0, session.Index())
	assert.Equal(t, 0, session.Score())
	assert.Equal(t, 3, session.Total())
}

func TestNewSession_Empty(t *testing.T) {
	_, err := NewSession(nil)
	assert.Error(t, err)
}

func TestSession_SelectOption(t *testing.T) {
	session, err := NewSession(testQuestions())
	require.NoError(t, err)

	require.NoError(t, session.SelectOption("a"))

	// last write wins
	require.NoError(t, session.SelectOption("b"))

	correct, err := session.Check()
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 1, session.Score())
}

func TestSession_SelectOption_WrongKind(t *testing.T) {
	session, err := NewSession([]Question{TrueFalse{Text: "q", Correct: true}})
	require.NoError(t, err)

	assert.ErrorIs(t, session.SelectOption("a"), ErrWrongAnswerKind)
	assert.ErrorIs(t, session.Match("l", "r"), ErrWrongAnswerKind)
}

func TestSession_SelectBool_WrongKind(t *testing.T) {
	session, err := NewSession(testQuestions())
	require.NoError(t, err)

	assert.ErrorIs(t, session.SelectBool(true), ErrWrongAnswerKind)
}

func TestSession_Check_NoAnswer(t *testing.T) {
	session, err := NewSession(testQuestions())
	require.NoError(t, err)

	_, err = session.Check()
	assert.ErrorIs(t, err, ErrNoAnswerSelected)
	assert.Equal(t, StateInProgress, session.State())
}

func TestSession_Check_Idempotent(t *testing.T) {
	session, err := NewSession(testQuestions())
	require.NoError(t, err)
	require.NoError(t, session.SelectOption("b"))

	correct, err := session.Check()
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 1, session.Score())

	// checking again returns the prior outcome without recounting
	correct, err = session.Check()
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 1, session.Score())
}

func TestSession_SelectAfterCheck(t *testing.T) {
	session, err := NewSession(testQuestions())
	require.NoError(t, err)
	require.NoError(t, session.SelectOption("a"))

	_, err = session.Check()
	require.NoError(t, err)

	assert.ErrorIs(t, session.SelectOption("b"), ErrAlreadyChecked)
}

func TestSession_Advance_NotChecked(t *testing.T) {
	session, err := NewSession(testQuestions())
	require.NoError(t, err)

	assert.ErrorIs(t, session.Advance(), ErrNotChecked)
}

func TestSession_Advance_ClearsTransients(t *testing.T) {
	session, err := NewSession(testQuestions())
	require.NoError(t, err)

	require.NoError(t, session.SelectOption("b"))
	_, err = session.Check()
	require.NoError(t, err)
	require.NoError(t, session.Advance())

	assert.Equal(t, StateInProgress, session.State())
	assert.Equal(t, 1, session.Index())

	// the previous selection must not leak into the next question
	_, err = session.Check()
	assert.ErrorIs(t, err, ErrNoAnswerSelected)
}

func TestSession_Matching_Incomplete(t *testing.T) {
	session, err := NewSession([]Question{testQuestions()[2]})
	require.NoError(t, err)

	require.NoError(t, session.Match("l1", "r1"))

	_, err = session.Check()
	assert.ErrorIs(t, err, ErrIncompleteMatching)
}

func TestSession_Matching_RematchOverwrites(t *testing.T) {
	session, err := NewSession([]Question{testQuestions()[2]})
	require.NoError(t, err)

	require.NoError(t, session.Match("l1", "r2"))
	require.NoError(t, session.Match("l2", "r2"))
	require.NoError(t, session.Match("l1", "r1"))

	correct, err := session.Check()
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestSession_FullRun(t *testing.T) {
	session, err := NewSession(testQuestions())
	require.NoError(t, err)

	// q1: wrong option
	require.NoError(t, session.SelectOption("a"))
	correct, err := session.Check()
	require.NoError(t, err)
	assert.False(t, correct)
	require.NoError(t, session.Advance())

	// q2: correct boolean
	require.NoError(t, session.SelectBool(true))
	correct, err = session.Check()
	require.NoError(t, err)
	assert.True(t, correct)
	require.NoError(t, session.Advance())

	// q3: correct matching, last question finishes the session
	require.NoError(t, session.Match("l1", "r1"))
	require.NoError(t, session.Match("l2", "r2"))
	correct, err = session.Check()
	require.NoError(t, err)
	assert.True(t, correct)
	require.NoError(t, session.Advance())

	assert.Equal(t, StateFinished, session.State())
	assert.Equal(t, 2, session.FinalScore())
	assert.Equal(t, 67, session.Percentage())
}

func TestSession_FinishedRejectsEverything(t *testing.T) {
	session, err := NewSession([]Question{TrueFalse{Text: "q", Correct: false}})
	require.NoError(t, err)

	require.NoError(t, session.SelectBool(false))
	_, err = session.Check()
	require.NoError(t, err)
	require.NoError(t, session.Advance())
	require.Equal(t, StateFinished, session.State())

	assert.ErrorIs(t, session.SelectBool(true), ErrSessionFinished)
	assert.ErrorIs(t, session.Advance(), ErrSessionFinished)
	_, err = session.Check()
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestSession_Percentage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		correct  int
		expected int
	}{
		{name: "all correct", total: 4, correct: 4, expected: 100},
		{name: "none correct", total: 4, correct: 0, expected: 0},
		{name: "one third rounds down", total: 3, correct: 1, expected: 33},
		{name: "two thirds rounds up", total: 3, correct: 2, expected: 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := make([]Question, tt.total)
			for i := range questions {
				questions[i] = TrueFalse{Text: "q", Correct: i < tt.correct}
			}

			session, err := NewSession(questions)
			require.NoError(t, err)

			for range questions {
				require.NoError(t, session.SelectBool(true))
				_, err := session.Check()
				require.NoError(t, err)
				require.NoError(t, session.Advance())
			}

			assert.Equal(t, tt.expected, session.Percentage())
		})
	}
}
