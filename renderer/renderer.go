// Package renderer renders lifestock reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/lifestock"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"date":    func(t time.Time) string { return t.Format(lifestock.DateFormat) },
	"price":   func(d decimal.Decimal) string { return d.StringFixed(2) },
	"hours":   func(d decimal.Decimal) string { return d.String() + "h" },
	"percent": func(d decimal.Decimal) string { return lifestock.P(d).SignedString() },
	"cell":    cell,
	"quote":   quote,
}

// cell makes free text safe to print in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// quote formats free text as a markdown block quote.
func quote(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("> "+line, " ")
	}
	return strings.Join(lines, "\n")
}

// RenderSummary renders the dashboard summary.
func RenderSummary(s *lifestock.Summary) string {
	partials := map[string]string{
		"summary_title":      "summary_title.md",
		"summary_commentary": "summary_commentary.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// RenderHistory renders the price series as a table.
func RenderHistory(h *lifestock.History) string {
	return renderTemplate("history", "history.md", nil, h)
}

// RenderRecord renders the acknowledgment of a newly archived record.
func RenderRecord(r lifestock.Record) string {
	return renderTemplate("record", "record.md", nil, r)
}

// Row is a record with its position and its amounts in a currency.
type Row struct {
	ID int
	lifestock.Record
	SpendingMoney lifestock.Money
	IncomeMoney   lifestock.Money
}

// RenderRecords renders the records at positions [start, end) with their
// positional id, amounts are expressed in cur.
func RenderRecords(l *lifestock.Ledger, cur string, start, end int) string {
	var data struct{ Rows []Row }
	for i, r := range l.Records() {
		if i < start || i >= end {
			continue
		}
		data.Rows = append(data.Rows, Row{
			ID:            i,
			Record:        r,
			SpendingMoney: lifestock.M(r.Spending, cur),
			IncomeMoney:   lifestock.M(r.Income, cur),
		})
	}
	return renderTemplate("records", "records.md", nil, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
