package agent

import (
	"context"
	"fmt"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/date"
	"github.com/etnz/advisor/docs"
	"github.com/etnz/advisor/market"
	"github.com/etnz/advisor/renderer"
	"google.golang.org/genai"
)

// DefaultRate is the annual return assumed when the model gives none, in percent.
const DefaultRate = 5.0

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return failure(id, f.Decl.Name, err)
	}
	return success(id, f.Decl.Name, out)
}

// Tools are the functions of the Planner, computing on a profile.
type Tools struct {
	Profile advisor.Profile
	Market  market.Provider
}

func object(props map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}

var markdown = &genai.Schema{Type: genai.TypeString, Description: "A markdown document."}

// Functions returns the functions available to the model.
func (t *Tools) Functions() []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Profile",
				Description: "Profile returns the user's profile: age, objective, savings, horizon, risk tolerance, preferences and retirement goals.",
				Response:    markdown,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				return renderer.RenderProfile(renderer.NewProfile(t.Profile)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Allocation",
				Description: "Allocation suggests how to split the user's portfolio across asset classes, with the rationale. Optional arguments evaluate another scenario.",
				Parameters: object(map[string]*genai.Schema{
					"risk":    {Type: genai.TypeString, Description: "Risk tolerance: low, moderate or high. Defaults to the profile's."},
					"horizon": {Type: genai.TypeInteger, Description: "Horizon in years. Defaults to the profile's."},
				}),
				Response: markdown,
			},
			Func: t.allocation,
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Projection",
				Description: "Projection computes the growth of the user's savings year by year, with monthly contributions.",
				Parameters: object(map[string]*genai.Schema{
					"rate":    {Type: genai.TypeNumber, Description: "Annual return in percent. Defaults to 5."},
					"years":   {Type: genai.TypeInteger, Description: "Number of years. Defaults to the profile's horizon."},
					"monthly": {Type: genai.TypeNumber, Description: "Monthly contribution. Defaults to the profile's."},
				}),
				Response: markdown,
			},
			Func: t.projection,
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Retirement",
				Description: "Retirement compares the capital needed for the desired retirement income with the savings projected at retirement age.",
				Parameters: object(map[string]*genai.Schema{
					"rate":      {Type: genai.TypeNumber, Description: "Annual return in percent. Defaults to 5."},
					"inflation": {Type: genai.TypeNumber, Description: "Annual inflation in percent. Defaults to 2."},
				}),
				Response: markdown,
			},
			Func: t.retirement,
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Quote",
				Description: "Quote describes a traded symbol with its recent prices and technical indicators (SMA, RSI, MACD).",
				Parameters: object(map[string]*genai.Schema{
					"symbol": {Type: genai.TypeString, Description: "The ticker, like AAPL or VEQT.TO."},
					"period": {Type: genai.TypeString, Description: "One of 1d, 5d, 1mo, 3mo, 6mo, 1y, 5y. Defaults to 6mo."},
				}, "symbol"),
				Response: markdown,
			},
			Func: t.quote,
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Topic",
				Description: "Topic returns a documentation topic. The readme topic lists all of them.",
				Parameters: object(map[string]*genai.Schema{
					"name": {Type: genai.TypeString, Description: "The topic name, like glossary or indicators."},
				}, "name"),
				Response: markdown,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				name, err := stringArg(args, "name", docs.Index)
				if err != nil {
					return "", err
				}
				return docs.GetTopic(name)
			},
		},
	}
}

func (t *Tools) allocation(ctx context.Context, args map[string]any) (string, error) {
	p := t.Profile
	risk, err := stringArg(args, "risk", "")
	if err != nil {
		return "", err
	}
	if risk != "" {
		if p.Risk, err = advisor.ParseRiskTolerance(risk); err != nil {
			return "", err
		}
	}
	if p.Horizon, err = intArg(args, "horizon", p.Horizon); err != nil {
		return "", err
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	return renderer.RenderAllocation(renderer.NewAllocation(advisor.ComputeAllocation(p))), nil
}

func (t *Tools) projection(ctx context.Context, args map[string]any) (string, error) {
	p := t.Profile
	rate, err := numberArg(args, "rate", DefaultRate)
	if err != nil {
		return "", err
	}
	years, err := intArg(args, "years", p.Horizon)
	if err != nil {
		return "", err
	}
	monthly, err := numberArg(args, "monthly", p.Monthly.Float())
	if err != nil {
		return "", err
	}
	values, err := advisor.Project(p.Initial.Float(), monthly, rate, years)
	if err != nil {
		return "", err
	}
	m := advisor.M(monthly, p.Monthly.Currency())
	return renderer.RenderProjection(renderer.NewProjection(p.Initial, m, rate, values)), nil
}

func (t *Tools) retirement(ctx context.Context, args map[string]any) (string, error) {
	rate, err := numberArg(args, "rate", DefaultRate)
	if err != nil {
		return "", err
	}
	inflation, err := numberArg(args, "inflation", advisor.DefaultInflation)
	if err != nil {
		return "", err
	}
	c, err := advisor.CheckRetirement(t.Profile, rate, inflation)
	if err != nil {
		return "", err
	}
	return renderer.RenderRetirement(renderer.NewRetirement(t.Profile, c, rate, inflation)), nil
}

func (t *Tools) quote(ctx context.Context, args map[string]any) (string, error) {
	if t.Market == nil {
		return "", fmt.Errorf("no market data provider: %w", advisor.ErrDataUnavailable)
	}
	symbol, err := stringArg(args, "symbol", "")
	if err != nil {
		return "", err
	}
	if symbol == "" {
		return "", fmt.Errorf("argument 'symbol' is required")
	}
	p, err := stringArg(args, "period", date.SixMonths.String())
	if err != nil {
		return "", err
	}
	period, err := date.ParsePeriod(p)
	if err != nil {
		return "", err
	}
	q := market.Lookup(ctx, t.Market, symbol, period)
	// indicators are best effort, the quote is rendered anyway.
	in, _ := advisor.ComputeIndicators(q.History, advisor.DefaultIndicatorOptions())
	return renderer.RenderChart(renderer.NewChart(q, in, 10)), nil
}

func stringArg(args map[string]any, name, def string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument '%s' is not a string as expected but %T", name, v)
	}
	return s, nil
}

func numberArg(args map[string]any, name string, def float64) (float64, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("argument '%s' is not a number as expected but %T", name, v)
	}
}

func intArg(args map[string]any, name string, def int) (int, error) {
	f, err := numberArg(args, name, float64(def))
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("argument '%s' must be a whole number, got %g", name, f)
	}
	return int(f), nil
}
