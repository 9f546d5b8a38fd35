package assess

import (
	"testing"

	"github.com/airenas/pron-assessment-wrapper/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFeedback(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{name: "excellent", score: 95, want: "🌟 Excellent! Your pronunciation scored 95/100."},
		{name: "excellent boundary", score: 90, want: "🌟 Excellent! Your pronunciation scored 90/100."},
		{name: "max", score: 100, want: "🌟 Excellent! Your pronunciation scored 100/100."},
		{name: "rounds up to excellent", score: 89.96, want: "🌟 Excellent! Your pronunciation scored 90/100."},
		{name: "good", score: 80, want: "👍 Good job! Your pronunciation scored 80/100."},
		{name: "good below boundary", score: 89.9, want: "👍 Good job! Your pronunciation scored 89.9/100."},
		{name: "good boundary", score: 75, want: "👍 Good job! Your pronunciation scored 75/100."},
		{name: "practice", score: 65, want: "📚 Not bad, keep practicing! Your pronunciation scored 65/100."},
		{name: "practice boundary", score: 60, want: "📚 Not bad, keep practicing! Your pronunciation scored 60/100."},
		{name: "practice below boundary", score: 74.9, want: "📚 Not bad, keep practicing! Your pronunciation scored 74.9/100."},
		{name: "improve", score: 40, want: "💪 Needs improvement, keep trying! Your pronunciation scored 40/100."},
		{name: "improve below boundary", score: 59.9, want: "💪 Needs improvement, keep trying! Your pronunciation scored 59.9/100."},
		{name: "zero", score: 0, want: "💪 Needs improvement, keep trying! Your pronunciation scored 0/100."},
		{name: "negative", score: -5, want: "💪 Needs improvement, keep trying! Your pronunciation scored -5/100."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Feedback(tt.score))
		})
	}
}

func TestFeedback_Monotonic(t *testing.T) {
	prev := len(tiers)
	for s := 0.0; s <= 100; s += 0.5 {
		assert.NotEmpty(t, Feedback(s))
		idx := tierIndex(s)
		assert.LessOrEqual(t, idx, prev, "score %v", s)
		prev = idx
	}
}

func tierIndex(score float64) int {
	for i, t := range tiers {
		if round1(score) >= t.from {
			return i
		}
	}
	return -1
}

func TestFullFeedback(t *testing.T) {
	a := &domain.Assessment{PronunciationScore: 80, Words: []domain.Word{
		{Word: "good", Score: 98, Error: "None"},
		{Word: "morning", Score: 69.9, Error: "None"},
		{Word: "sir", Score: 90, Error: "Omission"},
	}}
	assert.Equal(t, "👍 Good job! Your pronunciation scored 80/100. Words to practice: morning, sir", FullFeedback(a))

	a.Words = a.Words[:1]
	assert.Equal(t, "👍 Good job! Your pronunciation scored 80/100.", FullFeedback(a))
}

func TestProblemWords(t *testing.T) {
	assert.Nil(t, ProblemWords(nil))
	assert.Equal(t, []string{"a", "c"}, ProblemWords([]domain.Word{
		{Word: "a", Score: 10, Error: "None"},
		{Word: "b", Score: 70, Error: "None"},
		{Word: "c", Score: 100, Error: "Insertion"},
		{Word: "d", Score: 71, Error: ""},
	}))
}
