package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	output
	income string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "summarize a monthly budget" }
func (*budgetCmd) Usage() string {
	return `adv budget [-income <amount>] [<category>=<amount>...]

  Totals the monthly expenses by category, shows the weight of each one, and
  the surplus left from the income. Without categories, a typical budget is
  used.

  Example:

    adv budget -income 3000 Rent=1200 Food=450 Transport=120
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.income, "income", "5000", "monthly income")
}

// parseExpenses reads "<category>=<amount>" arguments.
func parseExpenses(args []string) (map[string]advisor.Money, error) {
	if len(args) == 0 {
		return advisor.DefaultExpenses(), nil
	}
	res := make(map[string]advisor.Money, len(args))
	for _, arg := range args {
		name, amount, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: expense %q must be <category>=<amount>", advisor.ErrInvalidInput, arg)
		}
		m, err := advisor.ParseMoney(amount)
		if err != nil {
			return nil, fmt.Errorf("%w: expense %q: %v", advisor.ErrInvalidInput, name, err)
		}
		if _, dup := res[name]; dup {
			return nil, fmt.Errorf("%w: expense %q is given twice", advisor.ErrInvalidInput, name)
		}
		res[name] = m
	}
	return res, nil
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	income, err := advisor.ParseMoney(c.income)
	if err != nil {
		return status("parsing income", invalid(err))
	}
	expenses, err := parseExpenses(f.Args())
	if err != nil {
		return status("parsing expenses", err)
	}
	b, err := advisor.SummarizeBudget(income.WithCurrency(Config.Currency), expenses)
	if err != nil {
		return status("summarizing budget", err)
	}
	c.print(renderer.RenderBudget(renderer.NewBudget(b)))
	return subcommands.ExitSuccess
}
