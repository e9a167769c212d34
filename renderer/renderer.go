// Package renderer prints market rows as a terminal table.
package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/etnz/coinmarket"
)

//go:embed templates/*.md
var templates embed.FS

// Header returns the table column labels for a display currency.
func Header(currency string) []string {
	return []string{
		"#",
		"Name",
		"Symbol",
		"% 1h",
		"% 24h",
		"% 7d",
		fmt.Sprintf("Price (%s)", currency),
		fmt.Sprintf("Market Cap (%s)", currency),
		fmt.Sprintf("Circulating Supply (%s)", currency),
		fmt.Sprintf("Volume (24h/%s)", currency),
	}
}

// Layout holds everything needed to print a market table: labels and styles.
// It is built once with NewLayout and never modified.
type Layout struct {
	currency string
	header   []string
	bold     lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	cell     lipgloss.Style
}

// NewLayout returns the Layout for a display currency. Colors are emitted
// according to r's color profile, so a renderer on a pipe prints plain text.
func NewLayout(currency string, r *lipgloss.Renderer) Layout {
	return Layout{
		currency: currency,
		header:   Header(currency),
		bold:     r.NewStyle().Bold(true),
		positive: r.NewStyle().Foreground(lipgloss.Color("2")),
		negative: r.NewStyle().Foreground(lipgloss.Color("1")),
		cell:     r.NewStyle().Padding(0, 1),
	}
}

// Currency returns the display currency.
func (l Layout) Currency() string { return l.currency }

// Growth styles a percentage change by its tone.
func (l Layout) Growth(g coinmarket.Growth) string {
	if g.Tone == coinmarket.Negative {
		return l.negative.Render(g.Text)
	}
	return l.positive.Render(g.Text)
}

// Render writes the table: a bold header line then one line per row.
func Render(w io.Writer, l Layout, rows []coinmarket.Row) error {
	header := make([]string, len(l.header))
	for i, h := range l.header {
		header[i] = l.bold.Render(h)
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Cells(l.Growth))
	}
	return Grid(w, l.cell, header, cells)
}

// Grid writes a borderless table where every cell is styled with cell.
func Grid(w io.Writer, cell lipgloss.Style, header []string, rows [][]string) error {
	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Headers(header...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// Markdown renders the rows as a markdown document, without colors.
func Markdown(currency string, rows []coinmarket.Row) string {
	data := struct {
		Currency string
		Header   []string
		Rows     [][]string
	}{
		Currency: currency,
		Header:   Header(currency),
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, r.Cells(func(g coinmarket.Growth) string { return g.Text }))
	}
	partials := map[string]string{
		"market_row": "market_row.md",
	}
	return renderTemplate("market", "market.md", partials, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	funcs := template.FuncMap{"join": strings.Join}
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
