package quiz

import (
	"testing"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []provider.QuizQuestion {
	return []provider.QuizQuestion{
		{
			Question:           "What is the boiling point of water at sea level?",
			Options:            []string{"90C", "100C", "110C", "120C"},
			CorrectAnswerIndex: 1,
			Explanation:        "Water boils at 100C at standard pressure.",
		},
		{
			Question:           "Which planet is closest to the sun?",
			Options:            []string{"Venus", "Earth", "Mercury", "Mars"},
			CorrectAnswerIndex: 2,
		},
		{
			Question:           "What gas do plants absorb?",
			Options:            []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Helium"},
			CorrectAnswerIndex: 1,
		},
	}
}

func TestNewRun(t *testing.T) {
	tests := []struct {
		name      string
		questions []provider.QuizQuestion
		wantError bool
	}{
		{
			name:      "Valid batch",
			questions: sampleQuestions(),
		},
		{
			name:      "Empty batch",
			questions: nil,
			wantError: true,
		},
		{
			name: "Correct index out of range",
			questions: []provider.QuizQuestion{
				{Question: "broken", Options: []string{"a", "b"}, CorrectAnswerIndex: 5},
			},
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := NewRun(tt.questions)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.questions), run.Total())
			assert.Equal(t, 0, run.Score())
			assert.False(t, run.Answered())
		})
	}
}

func TestRun_Answer(t *testing.T) {
	t.Run("First selection is accepted and scored", func(t *testing.T) {
		run, err := NewRun(sampleQuestions())
		require.NoError(t, err)

		correct, accepted := run.Answer(1)
		assert.True(t, accepted)
		assert.True(t, correct)
		assert.Equal(t, 1, run.Score())
		assert.Equal(t, 1, run.Selected())
	})

	t.Run("Re-selection is rejected and never re-scores", func(t *testing.T) {
		run, err := NewRun(sampleQuestions())
		require.NoError(t, err)

		_, accepted := run.Answer(0)
		require.True(t, accepted)
		assert.Equal(t, 0, run.Score())

		// A later pick of the correct option must not change anything.
		correct, accepted := run.Answer(1)
		assert.False(t, accepted)
		assert.False(t, correct)
		assert.Equal(t, 0, run.Score())
		assert.Equal(t, 0, run.Selected())
	})

	t.Run("Out of range selection is rejected", func(t *testing.T) {
		run, err := NewRun(sampleQuestions())
		require.NoError(t, err)

		_, accepted := run.Answer(9)
		assert.False(t, accepted)
		assert.False(t, run.Answered())
	})
}

func TestRun_Next(t *testing.T) {
	run, err := NewRun(sampleQuestions())
	require.NoError(t, err)

	answers := []int{1, 2, 0} // two correct, one wrong
	for i, answer := range answers {
		assert.Equal(t, i, run.Index())
		_, accepted := run.Answer(answer)
		require.True(t, accepted)
		require.NoError(t, run.Next())
	}

	assert.True(t, run.Finished())
	assert.Equal(t, 2, run.Score())
	assert.ErrorIs(t, run.Next(), ErrFinished)

	_, accepted := run.Answer(0)
	assert.False(t, accepted)
}
