package spanfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"csfmt/internal/suppress"
	"csfmt/internal/syntax"
)

// PrettyOpts controls the human-readable printer.
type PrettyOpts struct {
	Color      bool
	MaxExcerpt int // longest excerpt column in cells; 0 means 60
}

const defaultMaxExcerpt = 60

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	summaryStyle = lipgloss.NewStyle().Faint(true)

	preserveColor = color.New(color.FgCyan)
	forceColor    = color.New(color.FgYellow, color.Bold)
	verbatimColor = color.New(color.FgGreen)
)

func modePrinter(m suppress.Mode, useColor bool) *color.Color {
	var c *color.Color
	switch m {
	case suppress.ForceSingleLine:
		c = forceColor
	case suppress.PreserveMultiLine:
		c = verbatimColor
	default:
		c = preserveColor
	}
	clone := *c
	if !useColor {
		clone.DisableColor()
	} else {
		clone.EnableColor()
	}
	return &clone
}

// Pretty prints one record per line:
// <mode>  <startByte>..<endByte>  <excerpt>
// with the excerpt reconstructed from token texts and truncated to fit.
func Pretty(w io.Writer, path string, tree *syntax.Tree, records []suppress.Record, opts PrettyOpts) {
	maxExcerpt := opts.MaxExcerpt
	if maxExcerpt <= 0 {
		maxExcerpt = defaultMaxExcerpt
	}

	fmt.Fprintln(w, headerStyle.Render(path))
	if len(records) == 0 {
		fmt.Fprintln(w, summaryStyle.Render("  no suppression records"))
		return
	}

	modeWidth := 0
	for _, rec := range records {
		if w := runewidth.StringWidth(rec.Mode.String()); w > modeWidth {
			modeWidth = w
		}
	}

	for _, rec := range records {
		span := tree.Token(rec.Start).Span.Cover(tree.Token(rec.End).Span)
		excerpt := runewidth.Truncate(Excerpt(tree, rec.Start, rec.End), maxExcerpt, "…")
		mode := modePrinter(rec.Mode, opts.Color).Sprint(
			runewidth.FillRight(rec.Mode.String(), modeWidth))
		fmt.Fprintf(w, "  %s  %d..%d  %s\n", mode, span.Start, span.End, excerpt)
	}
	fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("  %d record(s)", len(records))))
}

// Excerpt reconstructs a single-line rendering of the span from token texts.
// Line breaks in trivia collapse to one space.
func Excerpt(tree *syntax.Tree, start, end syntax.TokenID) string {
	if !start.IsValid() || !end.IsValid() || start > end {
		return ""
	}
	var sb strings.Builder
	for id := start; id <= end; id++ {
		tok := tree.Token(id)
		if tok == nil {
			break
		}
		if id != start && len(tok.Leading) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}
