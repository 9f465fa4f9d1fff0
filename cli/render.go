package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"

	"miles-advisor/service"
)

const labelWidth = 22

// row is one label/value line of table output.
type row struct {
	label string
	value string
}

func toneColor(t service.Tone) lipgloss.Color {
	switch t {
	case service.TonePositive:
		return lipgloss.Color("42")
	case service.ToneNeutral:
		return lipgloss.Color("220")
	}
	return lipgloss.Color("196")
}

func labelColor() lipgloss.Color   { return lipgloss.Color("246") }
func warningColor() lipgloss.Color { return lipgloss.Color("214") }

type jsonOutput struct {
	Result  any             `json:"result"`
	Summary service.Summary `json:"summary"`
}

// render writes one evaluation in the selected format. Table output is
// styled only when w is a terminal.
func render(w io.Writer, format string, summary service.Summary, rows []row, result any) error {
	if format == outputJSON {
		b, err := json.MarshalIndent(jsonOutput{Result: result, Summary: summary}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	var b strings.Builder
	if isWriterTerminal(w) {
		writeStyled(&b, summary, rows)
	} else {
		writePlain(&b, summary, rows)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writePlain(b *strings.Builder, s service.Summary, rows []row) {
	b.WriteString(s.Headline)
	b.WriteString("\n")
	for _, r := range rows {
		fmt.Fprintf(b, "  %-*s %s\n", labelWidth, r.label, r.value)
	}
	if s.Warning != "" {
		b.WriteString(s.Warning)
		b.WriteString("\n")
	}
	for _, n := range s.Notes {
		b.WriteString("  • ")
		b.WriteString(n)
		b.WriteString("\n")
	}
}

func writeStyled(b *strings.Builder, s service.Summary, rows []row) {
	headline := lipgloss.NewStyle().Bold(true).Foreground(toneColor(s.Tone))
	label := lipgloss.NewStyle().Foreground(labelColor())
	value := lipgloss.NewStyle().Bold(true)
	warning := lipgloss.NewStyle().Foreground(warningColor())
	note := lipgloss.NewStyle().Italic(true)

	b.WriteString(headline.Render(s.Headline))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(label.Render(fmt.Sprintf("%-*s", labelWidth, r.label)))
		b.WriteString(" ")
		b.WriteString(value.Render(r.value))
		b.WriteString("\n")
	}
	if s.Warning != "" {
		b.WriteString(warning.Render(s.Warning))
		b.WriteString("\n")
	}
	for _, n := range s.Notes {
		b.WriteString("  • ")
		b.WriteString(note.Render(n))
		b.WriteString("\n")
	}
}
