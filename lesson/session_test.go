package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeQuestionBank() []Question {
	return []Question{
		{ID: 1, Prompt: "Fontes das obrigações", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3, Explanation: "exp 1"},
		{ID: 2, Prompt: "Obrigação de dar coisa certa", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "exp 2"},
		{ID: 3, Prompt: "Mora do devedor", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "exp 3"},
	}
}

func newTestSession() *Session {
	return &Session{ID: "s1", UserID: 7, TopicID: 11, questions: threeQuestionBank()}
}

func TestCheckWithoutSelection(t *testing.T) {
	s := newTestSession()
	_, err := s.CheckAnswer()
	assert.ErrorIs(t, err, ErrNoAnswerSelected)
	assert.Equal(t, 0, s.CorrectAnswers)
}

func TestSelectOutOfRange(t *testing.T) {
	s := newTestSession()
	assert.ErrorIs(t, s.SelectAnswer(-1), ErrInvalidOption)
	assert.ErrorIs(t, s.SelectAnswer(4), ErrInvalidOption)
	assert.NoError(t, s.SelectAnswer(0))
}

func TestAnswerLockedAfterFeedback(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SelectAnswer(3))

	res, err := s.CheckAnswer()
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 1, s.CorrectAnswers)

	// Selection is a silent no-op once feedback is shown.
	require.NoError(t, s.SelectAnswer(0))
	assert.Equal(t, 3, *s.SelectedAnswer)

	// Re-checking reveals the same result without recounting.
	res2, err := s.CheckAnswer()
	require.NoError(t, err)
	assert.Equal(t, res, res2)
	assert.Equal(t, 1, s.CorrectAnswers)
}

func TestNextQuestionClearsFeedback(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SelectAnswer(0))
	_, err := s.CheckAnswer()
	require.NoError(t, err)

	result, err := s.NextQuestion()
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 1, s.CurrentQuestion)
	assert.Nil(t, s.SelectedAnswer)
	assert.False(t, s.ShowFeedback)
}

func TestFinalizationXP(t *testing.T) {
	s := newTestSession()

	// Answer 2 of 3 correctly: q1 right, q2 wrong, q3 right.
	answers := []int{3, 0, 2}
	for i, answer := range answers {
		require.NoError(t, s.SelectAnswer(answer))
		_, err := s.CheckAnswer()
		require.NoError(t, err)

		result, err := s.NextQuestion()
		require.NoError(t, err)
		if i < len(answers)-1 {
			assert.Nil(t, result)
		} else {
			require.NotNil(t, result)
			assert.Equal(t, 2, result.CorrectAnswers)
			assert.Equal(t, 3, result.TotalQuestions)
			assert.Equal(t, 20, result.XPEarned)
		}
	}

	assert.True(t, s.Completed)
	_, err := s.CheckAnswer()
	assert.ErrorIs(t, err, ErrSessionComplete)
	_, err = s.NextQuestion()
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestPerfectPassXP(t *testing.T) {
	s := newTestSession()
	for i := 0; i < s.QuestionCount(); i++ {
		require.NoError(t, s.SelectAnswer(s.Current().CorrectIndex))
		_, err := s.CheckAnswer()
		require.NoError(t, err)
		result, err := s.NextQuestion()
		require.NoError(t, err)
		if i == s.QuestionCount()-1 {
			require.NotNil(t, result)
			assert.Equal(t, 30, result.XPEarned)
		}
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SelectAnswer(3))
	_, err := s.CheckAnswer()
	require.NoError(t, err)
	_, err = s.NextQuestion()
	require.NoError(t, err)
	require.NoError(t, s.SelectAnswer(2))
	_, err = s.CheckAnswer()
	require.NoError(t, err)

	state := s.Snapshot()
	assert.Equal(t, 1, state.CurrentQuestion)
	assert.Equal(t, 2, *state.SelectedAnswer)
	assert.Equal(t, 2, state.CorrectAnswers)
	assert.True(t, state.ShowFeedback)

	fresh := newTestSession()
	fresh.Restore(state)
	assert.Equal(t, 1, fresh.CurrentQuestion)
	assert.Equal(t, 2, *fresh.SelectedAnswer)
	assert.Equal(t, 2, fresh.CorrectAnswers)
	assert.True(t, fresh.ShowFeedback)

	// The restored copy owns its selection.
	*state.SelectedAnswer = 0
	assert.Equal(t, 2, *fresh.SelectedAnswer)
}

func TestRestoreClampsIndex(t *testing.T) {
	s := newTestSession()
	s.Restore(SavedState{CurrentQuestion: 99})
	assert.Equal(t, 2, s.CurrentQuestion)
	s.Restore(SavedState{CurrentQuestion: -4})
	assert.Equal(t, 0, s.CurrentQuestion)
}
