// Package render prints command results: colored labels for text, a
// markdown image link, lipgloss tables and a JSON envelope for scripts.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/harou24/oa-cli/internal/providers"
)

var (
	colorLabel = color.New(color.FgGreen, color.Bold)
	colorError = color.New(color.FgRed, color.Bold)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Labeled prints "label text" with the label in bold green.
func Labeled(w io.Writer, label, text string) error {
	_, err := fmt.Fprintf(w, "%s %s\n", colorLabel.Sprint(label), text)
	return err
}

// Heading prints a bold green line on its own.
func Heading(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, colorLabel.Sprint(text))
	return err
}

// Error prints msg in bold red.
func Error(w io.Writer, msg string) {
	fmt.Fprintln(w, colorError.Sprint(msg))
}

// Image renders a markdown image link for url. Plain output skips terminal
// styling.
func Image(w io.Writer, url string, plain bool) error {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(120))
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(fmt.Sprintf("![Generated Image](%s)", url))
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// UsageTable prints the quota report.
func UsageTable(w io.Writer, rows []providers.UsageRow) error {
	t := newTable("Model", "Current Usage", "Limit")
	for _, r := range rows {
		t.Row(r.Model, number(r.Usage), number(r.Limit))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// ModelTable prints the model catalogue.
func ModelTable(w io.Writer, models []providers.Model) error {
	if len(models) == 0 {
		_, err := fmt.Fprintln(w, "  No models available")
		return err
	}
	t := newTable("Model ID", "Owned By", "Created")
	for _, m := range models {
		created := ""
		if m.Created > 0 {
			created = time.Unix(m.Created, 0).UTC().Format(time.DateOnly)
		}
		t.Row(truncate(m.ID, 40), truncate(m.OwnedBy, 20), created)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truncate(s string, length int) string {
	if len(s) > length {
		return s[:length-3] + "..."
	}
	return s
}

// Output is the --json envelope.
type Output struct {
	Success bool                 `json:"success"`
	Content string               `json:"content,omitempty"`
	Usage   []providers.UsageRow `json:"usage,omitempty"`
	Models  []providers.Model    `json:"models,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// JSON writes out as a single line.
func JSON(w io.Writer, out Output) error {
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
