package advisor

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// Question is a multiple choice question with a single right answer.
type Question struct {
	Text    string
	Choices []string
	Answer  string // one of Choices
}

// Check reports whether answer is right. The answer is either the text of a
// choice (case insensitive) or its 1-based index.
func (q Question) Check(answer string) bool {
	answer = strings.TrimSpace(answer)
	if i, err := strconv.Atoi(answer); err == nil {
		return i >= 1 && i <= len(q.Choices) && q.Choices[i-1] == q.Answer
	}
	return strings.EqualFold(answer, q.Answer)
}

// Quiz is an ordered list of questions.
type Quiz []Question

// DefaultQuiz returns the financial literacy quiz.
func DefaultQuiz() Quiz {
	return Quiz{
		{
			Text:    "What is the main goal of diversification?",
			Choices: []string{"Maximize returns", "Minimize risk", "Increase fees"},
			Answer:  "Minimize risk",
		},
		{
			Text:    "What is an ETF?",
			Choices: []string{"A bank account", "An exchange-traded fund", "A type of stock"},
			Answer:  "An exchange-traded fund",
		},
		{
			Text:    "Which indicator measures volatility?",
			Choices: []string{"P/E", "Beta", "ROE"},
			Answer:  "Beta",
		},
	}
}

// Shuffle returns a copy of the quiz with questions and choices reordered
// using src. The receiver is not modified.
func (q Quiz) Shuffle(src rand.Source) Quiz {
	r := rand.New(src)
	res := make(Quiz, len(q))
	for i, qu := range q {
		qu.Choices = append([]string(nil), qu.Choices...)
		r.Shuffle(len(qu.Choices), func(i, j int) { qu.Choices[i], qu.Choices[j] = qu.Choices[j], qu.Choices[i] })
		res[i] = qu
	}
	r.Shuffle(len(res), func(i, j int) { res[i], res[j] = res[j], res[i] })
	return res
}

// Score returns the number of right answers. answers[i] answers question i;
// missing answers count as wrong.
func (q Quiz) Score(answers []string) int {
	n := 0
	for i, qu := range q {
		if i < len(answers) && qu.Check(answers[i]) {
			n++
		}
	}
	return n
}
