package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/advisor/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	output
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `adv assist [<question>]

  Starts an interactive session with the AI assistant. The assistant knows
  your profile, computes allocations, projections and the retirement check,
  and reads market quotes. It gives education, never investment advice.

  Needs a Gemini API key, set in the GEMINI_API_KEY environment variable or
  assistant.api_key in the configuration.
`
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if Config.Assistant.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Error: no Gemini API key, set GEMINI_API_KEY")
		return subcommands.ExitUsageError
	}
	p, err := loadProfile()
	if err != nil {
		return status("loading profile", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  Config.Assistant.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	model := Config.Assistant.Model
	planner := agent.NewPlanner(model, &agent.Tools{Profile: p, Market: newProvider()})
	analyst := agent.NewAnalyst(model)
	a := agent.New(stdout, stdin, model, planner, analyst)
	a.Print = func(w io.Writer, answer string) { c.print(answer) }

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
