package agent

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/date"
	"github.com/etnz/advisor/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// script is a chat answering with canned contents, in order.
type script struct {
	answers []*genai.Content
	sent    [][]*genai.Part
}

func (s *script) Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error) {
	s.sent = append(s.sent, parts)
	if len(s.answers) == 0 {
		return &genai.GenerateContentResponse{}, nil
	}
	c := s.answers[0]
	s.answers = s.answers[1:]
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: c}}}, nil
}

func say(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

func call(name string, args map[string]any) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{FunctionCall: &genai.FunctionCall{ID: "1", Name: name, Args: args}}}}
}

func testTools() *Tools {
	start := date.New(2025, time.January, 1)
	var series advisor.PriceSeries
	for i := range 30 {
		c := 50 + float64(i%5)
		series = append(series, advisor.Bar{Date: start.Add(i), Close: c})
	}
	return &Tools{
		Profile: advisor.DefaultProfile(),
		Market: market.Static{
			Series:      map[string]advisor.PriceSeries{"VEQT": series},
			Instruments: map[string]market.Instrument{"VEQT": {Symbol: "VEQT", Name: "Vanguard All-Equity"}},
		},
	}
}

func run(t *testing.T, name string, args map[string]any) map[string]any {
	t.Helper()
	lib := NewLibrary(testTools().Functions())
	resp := lib(context.Background(), &genai.FunctionCall{ID: "42", Name: name, Args: args})
	require.NotNil(t, resp)
	assert.Equal(t, "42", resp.ID)
	return resp.Response
}

func TestTools(t *testing.T) {
	testCases := []struct {
		name string
		args map[string]any
		want string
	}{
		{name: "Profile", want: "| Objective | retirement |"},
		{name: "Allocation", want: "| Domestic equity | 35% |"},
		{name: "Allocation", args: map[string]any{"risk": "high", "horizon": 20.0}, want: "| Fixed income | 10% |"},
		{name: "Projection", args: map[string]any{"rate": 0.0, "years": 1.0}, want: "| 1 | 2200.00 |"},
		{name: "Retirement", want: "| Years until retirement | 35 |"},
		{name: "Quote", args: map[string]any{"symbol": "VEQT", "period": "1mo"}, want: "## VEQT (1mo)"},
		{name: "Quote", args: map[string]any{"symbol": "NOPE"}, want: "| Name | N/A |"},
		{name: "Topic", args: map[string]any{"name": "glossary"}, want: "# Glossary"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := run(t, tc.name, tc.args)
			require.NotContains(t, resp, "error")
			assert.Contains(t, resp["output"], tc.want)
		})
	}
}

func TestTools_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args map[string]any
	}{
		{name: "Allocation", args: map[string]any{"risk": "reckless"}},
		{name: "Allocation", args: map[string]any{"horizon": 0.0}},
		{name: "Allocation", args: map[string]any{"horizon": 2.5}},
		{name: "Projection", args: map[string]any{"rate": "five"}},
		{name: "Projection", args: map[string]any{"rate": -1.0}},
		{name: "Retirement", args: map[string]any{"inflation": -100.0}},
		{name: "Quote", args: map[string]any{}},
		{name: "Quote", args: map[string]any{"symbol": "VEQT", "period": "2w"}},
		{name: "Topic", args: map[string]any{"name": "nope"}},
		{name: "Unknown"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := run(t, tc.name, tc.args)
			assert.Contains(t, resp, "error")
			assert.NotContains(t, resp, "output")
		})
	}
}

func TestExpert_Ask(t *testing.T) {
	chat := &script{answers: []*genai.Content{
		call("Allocation", nil),
		say("Put 35% in domestic equity."),
	}}
	e := NewPlanner("model", testTools())
	e.chat = chat

	got, err := e.Ask(context.Background(), &genai.Part{Text: "How should I invest?"})
	require.NoError(t, err)
	assert.Equal(t, "Put 35% in domestic equity.", text(got))

	require.Len(t, chat.sent, 2)
	resp := chat.sent[1][0].FunctionResponse
	require.NotNil(t, resp)
	assert.Equal(t, "Allocation", resp.Name)
	assert.Contains(t, resp.Response["output"], "Suggested Allocation")
}

func TestExpert_AskErrors(t *testing.T) {
	e := NewAnalyst("model")
	e.chat = &script{}
	_, err := e.Ask(context.Background(), &genai.Part{Text: "hi"})
	assert.ErrorContains(t, err, "no response")

	e.chat = &script{answers: []*genai.Content{call("Search", nil)}}
	_, err = e.Ask(context.Background(), &genai.Part{Text: "hi"})
	assert.ErrorContains(t, err, "doesn't know how to make function calls")

	loop := &script{}
	for range maxCalls {
		loop.answers = append(loop.answers, call("Profile", nil))
	}
	p := NewPlanner("model", testTools())
	p.chat = loop
	_, err = p.Ask(context.Background(), &genai.Part{Text: "hi"})
	assert.ErrorContains(t, err, "more than")
}

func TestExpert_Call(t *testing.T) {
	e := NewAnalyst("model")
	e.chat = &script{answers: []*genai.Content{say("Markets are up.")}}

	resp := e.Call(context.Background(), "7", map[string]any{"question": "How are markets?"})
	assert.Equal(t, "Analyst", resp.Name)
	assert.Equal(t, "Markets are up.", resp.Response["output"])

	resp = e.Call(context.Background(), "8", map[string]any{"question": 3})
	assert.Contains(t, resp.Response, "error")
	resp = e.Call(context.Background(), "9", nil)
	assert.Contains(t, resp.Response, "error")

	d := e.Declaration()
	assert.Equal(t, "Analyst", d.Name)
	assert.Equal(t, []string{"question"}, d.Parameters.Required)
}

func TestAgent_Run(t *testing.T) {
	var out bytes.Buffer
	planner := NewPlanner("model", testTools())
	a := New(&out, strings.NewReader("\nthanks\n"), "model", planner)
	a.Facilitator.chat = &script{answers: []*genai.Content{
		say("Hello, how can I help?"),
		say("You are welcome."),
	}}

	err := a.Run(context.Background(), nil, "hello", "")
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Welcome to adv financial assist.")
	assert.Contains(t, got, "assist> hello\nHello, how can I help?\n")
	assert.Contains(t, got, "You are welcome.\n")

	decls := a.Facilitator.Config.Tools[0].FunctionDeclarations
	require.Len(t, decls, 1)
	assert.Equal(t, "Planner", decls[0].Name)
}

func TestAgent_RunBye(t *testing.T) {
	var out bytes.Buffer
	a := New(&out, strings.NewReader("never read\n"), "model")
	chat := &script{}
	a.Facilitator.chat = chat

	require.NoError(t, a.Run(context.Background(), nil, "bye"))
	assert.Empty(t, chat.sent)
}
