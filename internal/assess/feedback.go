package assess

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/airenas/pron-assessment-wrapper/internal/domain"
)

// FailureFeedback is shown to a user when assessment is not possible
const FailureFeedback = "Sorry, I couldn't assess your pronunciation. Please try again."

// problemWordScore marks words below it as words to practice
const problemWordScore = 70

type tier struct {
	from float64
	msg  string
}

// tiers are ordered by descending threshold, the last one catches everything
var tiers = []tier{
	{from: 90, msg: "🌟 Excellent! Your pronunciation scored %s/100."},
	{from: 75, msg: "👍 Good job! Your pronunciation scored %s/100."},
	{from: 60, msg: "📚 Not bad, keep practicing! Your pronunciation scored %s/100."},
	{from: math.Inf(-1), msg: "💪 Needs improvement, keep trying! Your pronunciation scored %s/100."},
}

// Feedback returns a message for the pronunciation score.
// The tier and the shown score use the score rounded to one decimal, the response keeps the raw score.
func Feedback(score float64) string {
	s := round1(score)
	for _, t := range tiers {
		if s >= t.from {
			return fmt.Sprintf(t.msg, strconv.FormatFloat(s, 'f', -1, 64))
		}
	}
	return ""
}

// FullFeedback returns score message with the list of words to practice
func FullFeedback(a *domain.Assessment) string {
	res := Feedback(a.PronunciationScore)
	if pw := ProblemWords(a.Words); len(pw) > 0 {
		res += " Words to practice: " + strings.Join(pw, ", ")
	}
	return res
}

// ProblemWords returns words with low score or a recognition error
func ProblemWords(words []domain.Word) []string {
	var res []string
	for _, w := range words {
		if round1(w.Score) < problemWordScore || (w.Error != "" && w.Error != "None") {
			res = append(res, w.Word)
		}
	}
	return res
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
