package renderer

import (
	"fmt"

	"github.com/etnz/advisor"
)

// Fund is one row of the fund table.
type Fund struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Return      string `json:"return"`
	Risk        string `json:"risk"`
	Fee         string `json:"fee"`
	StdDev      string `json:"stdDev"`
	Sharpe      string `json:"sharpe"`
	Description string `json:"description"`
}

func newFund(f advisor.Fund) Fund {
	return Fund{
		Symbol:      f.Symbol,
		Name:        f.Name,
		Return:      f.MeanReturn.String(),
		Risk:        f.Risk.String(),
		Fee:         f.Fee.String(),
		StdDev:      f.StdDev.String(),
		Sharpe:      fmt.Sprintf("%.2f", f.Sharpe()),
		Description: f.Description,
	}
}

// Funds is the renderable form of the fund comparator.
type Funds struct {
	Funds      []Fund          `json:"funds"`
	Comparison *FundComparison `json:"comparison,omitempty"`
}

// FundComparison is the renderable form of an advisor.FundComparison.
type FundComparison struct {
	A      Fund   `json:"a"`
	B      Fund   `json:"b"`
	Return string `json:"return"`
	Fee    string `json:"fee"`
	StdDev string `json:"stdDev"`
}

// NewFunds converts funds for rendering. cmp is optional.
func NewFunds(funds []advisor.Fund, cmp *advisor.FundComparison) *Funds {
	res := &Funds{}
	for _, f := range funds {
		res.Funds = append(res.Funds, newFund(f))
	}
	if cmp != nil {
		res.Comparison = &FundComparison{
			A:      newFund(cmp.A),
			B:      newFund(cmp.B),
			Return: cmp.MeanReturn.SignedString(),
			Fee:    cmp.Fee.SignedString(),
			StdDev: cmp.StdDev.SignedString(),
		}
	}
	return res
}

// Quiz is the renderable form of a quiz, with its result once answered.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
	Answered  bool           `json:"answered"`
	Score     int            `json:"score"`
	Total     int            `json:"total"`
}

// QuizQuestion is one question with its choices.
type QuizQuestion struct {
	Number  int      `json:"number"`
	Text    string   `json:"text"`
	Choices []string `json:"choices"`
	Answer  string   `json:"answer,omitempty"`
	Given   string   `json:"given,omitempty"`
	Right   bool     `json:"right"`
}

// NewQuiz converts q for rendering. With nil answers only the questions are
// listed.
func NewQuiz(q advisor.Quiz, answers []string) *Quiz {
	res := &Quiz{Answered: answers != nil, Total: len(q)}
	for i, qu := range q {
		row := QuizQuestion{Number: i + 1, Text: qu.Text, Choices: qu.Choices}
		if res.Answered {
			row.Answer = qu.Answer
			if i < len(answers) {
				row.Given = answers[i]
			}
			row.Right = qu.Check(row.Given)
		}
		res.Questions = append(res.Questions, row)
	}
	if res.Answered {
		res.Score = q.Score(answers)
	}
	return res
}
