package cli

import (
	"fmt"
	"io"
	"os"

	"schedule/internal/config"
	"schedule/internal/domain"
	"schedule/internal/logging"
	"schedule/internal/services"
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiWhite = "\x1b[37m"
)

// Printer writes entries and plans, highlighting the current week
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a printer on w. In auto mode color is used only on a
// terminal and when NO_COLOR is unset.
func NewPrinter(w io.Writer, colorMode string) *Printer {
	return &Printer{w: w, color: useColor(w, colorMode)}
}

func useColor(w io.Writer, colorMode string) bool {
	switch colorMode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		if _, set := os.LookupEnv("NO_COLOR"); set {
			return false
		}
		return logging.IsTerminal(w)
	}
}

// PrintEntries prints one "MM/DD/YY - description" line per entry
func (p *Printer) PrintEntries(views []services.EntryView) error {
	for _, view := range views {
		if _, err := fmt.Fprintln(p.w, p.style(view.Entry.String(), view.Highlight)); err != nil {
			return err
		}
	}
	return nil
}

// PrintPlan prints the plan text verbatim followed by a newline
func (p *Printer) PrintPlan(plan domain.QuarterPlan) error {
	_, err := fmt.Fprintln(p.w, plan.Text)
	return err
}

func (p *Printer) style(line string, highlight domain.Highlight) string {
	if !p.color {
		return line
	}
	switch highlight {
	case domain.HighlightCurrent:
		return ansiGreen + line + ansiReset
	case domain.HighlightAdjacent:
		return ansiWhite + line + ansiReset
	default:
		return line
	}
}
