package advisor

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionCheck(t *testing.T) {
	q := DefaultQuiz()[2]
	testCases := []struct {
		answer string
		want   bool
	}{
		{"Beta", true},
		{" beta ", true},
		{"2", true},
		{"1", false},
		{"4", false},
		{"0", false},
		{"ROE", false},
		{"", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, q.Check(tc.answer), "Check(%q)", tc.answer)
	}
}

func TestQuizScore(t *testing.T) {
	q := DefaultQuiz()
	assert.Equal(t, 3, q.Score([]string{"Minimize risk", "2", "Beta"}))
	assert.Equal(t, 1, q.Score([]string{"Increase fees", "An exchange-traded fund"}))
	assert.Equal(t, 0, q.Score(nil))
}

func TestQuizShuffle(t *testing.T) {
	q := DefaultQuiz()
	a := q.Shuffle(rand.NewPCG(3, 4))
	b := q.Shuffle(rand.NewPCG(3, 4))
	assert.Equal(t, a, b, "same seed must give the same quiz")
	assert.Equal(t, DefaultQuiz(), q, "shuffle must not modify the quiz")

	assert.ElementsMatch(t, q, a.unshuffled(q))
	for _, qu := range a {
		assert.Contains(t, qu.Choices, qu.Answer)
		assert.True(t, qu.Check(qu.Answer))
	}
}

// unshuffled returns the questions of q in the order of ref, choices included.
func (q Quiz) unshuffled(ref Quiz) Quiz {
	var res Quiz
	for _, r := range ref {
		for _, qu := range q {
			if qu.Text == r.Text {
				qu.Choices = r.Choices
				res = append(res, qu)
			}
		}
	}
	return res
}
