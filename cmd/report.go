package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/date"
	"github.com/etnz/advisor/market"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type reportCmd struct {
	output
	title     string
	html      bool
	out       string
	rate      float64
	inflation float64
	paths     int
	seed      uint64
	income    string
	watch     string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate the full advisory report" }
func (*reportCmd) Usage() string {
	return `adv report [-html] [-o <file>] [-rate <percent>] [-paths <n>] [-income <amount>] [-watch <symbols>] [<category>=<amount>...]

  Gathers the profile, the suggested allocation, the projection, a Monte
  Carlo simulation and the retirement check in a single document.

  With -income, the budget of the given expenses is added. With -watch, the
  quotes of the symbols are added.

  With -html, the report is written as a standalone HTML page, ready to be
  printed.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.title, "title", "Financial Plan", "report title")
	f.BoolVar(&c.html, "html", false, "write HTML instead of markdown")
	f.StringVar(&c.out, "o", "", "write the report to a file")
	f.Float64Var(&c.rate, "rate", 5, "annual return in percent")
	f.Float64Var(&c.inflation, "inflation", advisor.DefaultInflation, "yearly inflation in percent")
	f.IntVar(&c.paths, "paths", 500, "number of simulated trajectories")
	f.Uint64Var(&c.seed, "seed", 0, "random seed, 0 uses the configuration or a fresh one")
	f.StringVar(&c.income, "income", "", "monthly income, adds the budget section")
	f.StringVar(&c.watch, "watch", "", "symbols to quote, adds the watchlist section")
}

// build computes every section of the report.
func (c *reportCmd) build(ctx context.Context, p advisor.Profile, expenses []string) (*renderer.Report, error) {
	r := &renderer.Report{
		Title:      c.title,
		AsOf:       renderer.Now().Format("2006-01-02"),
		Profile:    renderer.NewProfile(p),
		Allocation: renderer.NewAllocation(advisor.ComputeAllocation(p)),
	}

	values, err := advisor.Project(p.Initial.Float(), p.Monthly.Float(), c.rate, p.Horizon)
	if err != nil {
		return nil, fmt.Errorf("projecting: %w", err)
	}
	r.Projection = renderer.NewProjection(p.Initial, p.Monthly, c.rate, values)

	s, err := advisor.Simulate(randomSource(c.seed), advisor.SimulationParams{
		Initial:       p.Initial.Float(),
		Years:         p.Horizon,
		Paths:         c.paths,
		MeanPct:       c.rate,
		VolatilityPct: volatility(p.Risk),
		Limits:        Config.PathLimits(),
	})
	if err != nil {
		return nil, fmt.Errorf("simulating: %w", err)
	}
	r.Simulation = renderer.NewSimulation(s, p.Initial.Currency(), 0)

	check, err := advisor.CheckRetirement(p, c.rate, c.inflation)
	if err != nil {
		return nil, fmt.Errorf("checking retirement: %w", err)
	}
	r.Retirement = renderer.NewRetirement(p, check, c.rate, c.inflation)

	if c.income != "" {
		income, err := advisor.ParseMoney(c.income)
		if err != nil {
			return nil, invalid(err)
		}
		ex, err := parseExpenses(expenses)
		if err != nil {
			return nil, err
		}
		b, err := advisor.SummarizeBudget(income.WithCurrency(p.Initial.Currency()), ex)
		if err != nil {
			return nil, fmt.Errorf("summarizing budget: %w", err)
		}
		r.Budget = renderer.NewBudget(b)
	}

	if symbols := advisor.ParseWatchlist(c.watch); len(symbols) > 0 {
		r.Watchlist = renderer.NewWatchlist(market.Watch(ctx, newProvider(), symbols, date.FiveDays))
	}
	return r, nil
}

// volatility returns the annual volatility, in percent, of a portfolio
// matching the risk tolerance.
func volatility(r advisor.RiskTolerance) float64 {
	switch r {
	case advisor.LowRisk:
		return 8
	case advisor.HighRisk:
		return 18
	default:
		return 12
	}
}

// toHTML converts the markdown report into a standalone page.
func toHTML(title, md string) (string, error) {
	var body bytes.Buffer
	if err := goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert([]byte(md), &body); err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 50em; margin: auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.2em 0.6em; }
td { text-align: right; }
</style>
</head>
<body>
`, html.EscapeString(title))
	b.Write(body.Bytes())
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadProfile()
	if err != nil {
		return status("loading profile", err)
	}
	r, err := c.build(ctx, p, f.Args())
	if err != nil {
		return status("building report", err)
	}
	md := renderer.RenderReport(r)

	doc := md
	if c.html {
		if doc, err = toHTML(r.Title, md); err != nil {
			return status("converting report to HTML", err)
		}
	}
	if c.out == "" {
		if c.html {
			fmt.Fprint(stdout, doc)
		} else {
			c.print(doc)
		}
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.out, []byte(doc), 0o644); err != nil {
		return status("writing report", err)
	}
	log.Info().Str("file", c.out).Msg("report written")
	return subcommands.ExitSuccess
}
