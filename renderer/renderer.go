// Package renderer turns advisor results into markdown documents.
//
// Each view is a plain struct built from the advisor types by a New*
// function, and rendered by an embedded text/template. The full report
// assembles the same templates as partials.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// RenderProfile renders the profile summary.
func RenderProfile(p *Profile) string {
	return renderTemplate("profile", "profile.md", nil, p)
}

// RenderAllocation renders the allocation table and its rationale.
func RenderAllocation(a *Allocation) string {
	return renderTemplate("allocation", "allocation.md", nil, a)
}

// RenderProjection renders the year by year projection.
func RenderProjection(p *Projection) string {
	return renderTemplate("projection", "projection.md", nil, p)
}

// RenderSimulation renders the Monte Carlo summary and its yearly spread.
func RenderSimulation(s *Simulation) string {
	return renderTemplate("simulation", "simulation.md", nil, s)
}

// RenderRetirement renders the retirement check.
func RenderRetirement(r *Retirement) string {
	return renderTemplate("retirement", "retirement.md", nil, r)
}

// RenderBudget renders the budget summary.
func RenderBudget(b *Budget) string {
	return renderTemplate("budget", "budget.md", nil, b)
}

// RenderFunds renders the fund table, followed by the comparison if any.
func RenderFunds(f *Funds) string {
	partials := map[string]string{
		"funds_comparison": "funds_comparison.md",
	}
	return renderTemplate("funds", "funds.md", partials, f)
}

// RenderWatchlist renders a table of quotes.
func RenderWatchlist(w *Watchlist) string {
	return renderTemplate("watchlist", "watchlist.md", nil, w)
}

// RenderChart renders an instrument, its recent prices and indicators.
func RenderChart(c *Chart) string {
	return renderTemplate("chart", "chart.md", nil, c)
}

// RenderQuiz renders the quiz questions, and the score once answered.
func RenderQuiz(q *Quiz) string {
	return renderTemplate("quiz", "quiz.md", nil, q)
}

// RenderReport renders the full advisory report.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"profile":    "profile.md",
		"allocation": "allocation.md",
		"projection": "projection.md",
		"simulation": "simulation.md",
		"retirement": "retirement.md",
		"budget":     "budget.md",
		"watchlist":  "watchlist.md",
	}
	return renderTemplate("report", "report.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
