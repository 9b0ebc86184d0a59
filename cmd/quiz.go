package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type quizCmd struct {
	output
	shuffle     bool
	interactive bool
}

func (*quizCmd) Name() string     { return "quiz" }
func (*quizCmd) Synopsis() string { return "test your financial knowledge" }
func (*quizCmd) Usage() string {
	return `adv quiz [-shuffle] [-i] [<answer>...]

  Without answers, lists the questions. Answers are given in order, either as
  the text of a choice or as its number, and the quiz is scored.

  With -i, asks the questions one by one.
`
}

func (c *quizCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.BoolVar(&c.shuffle, "shuffle", false, "shuffle questions and choices")
	f.BoolVar(&c.interactive, "i", false, "ask the questions interactively")
}

// ask prints every question and reads one answer per line.
func ask(q advisor.Quiz) []string {
	in := bufio.NewScanner(stdin)
	answers := make([]string, 0, len(q))
	for i, qu := range q {
		fmt.Fprintf(stdout, "%d. %s\n", i+1, qu.Text)
		for j, choice := range qu.Choices {
			fmt.Fprintf(stdout, "   %d) %s\n", j+1, choice)
		}
		fmt.Fprint(stdout, "> ")
		if !in.Scan() {
			break
		}
		answers = append(answers, strings.TrimSpace(in.Text()))
	}
	fmt.Fprintln(stdout)
	return answers
}

func (c *quizCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q := advisor.DefaultQuiz()
	if c.shuffle {
		q = q.Shuffle(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	var answers []string
	switch {
	case c.interactive:
		answers = ask(q)
	case f.NArg() > 0:
		answers = f.Args()
	}
	c.print(renderer.RenderQuiz(renderer.NewQuiz(q, answers)))
	return subcommands.ExitSuccess
}
