package lipgloss

import (
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/miraflynn/textcompare"
)

// Compile-time interface verification.
var _ textcompare.Renderer = (*Renderer)(nil)

// Renderer renders alignments with ANSI styling for terminals.
type Renderer struct {
	matched   lg.Style
	unmatched lg.Style
}

// NewRenderer creates a Renderer for the theme. If r is nil the default
// lipgloss renderer (and its detected color profile) is used.
func NewRenderer(theme textcompare.Theme, r *lg.Renderer) *Renderer {
	styles := theme.Styles()
	return &Renderer{
		matched:   StyleFromColorPair(styles.Matched, r),
		unmatched: StyleFromColorPair(styles.Unmatched, r),
	}
}

// Render renders both sides of the alignment.
func (r *Renderer) Render(a textcompare.Alignment) textcompare.Result {
	return textcompare.Result{
		Side1: r.RenderSide(a.Side1),
		Side2: r.RenderSide(a.Side2),
	}
}

// RenderSide styles each segment separately. Newlines and tabs are kept as
// typed; styling is applied per line so a highlighted run never bleeds into
// the terminal margin.
func (r *Renderer) RenderSide(segs []textcompare.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		style := r.unmatched
		if seg.Matched {
			style = r.matched
		}
		for i, line := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}

// StyleFromColorPair creates a lipgloss style from a color pair.
func StyleFromColorPair(cp textcompare.ColorPair, r *lg.Renderer) lg.Style {
	var style lg.Style
	if r != nil {
		style = r.NewStyle()
	} else {
		style = lg.NewStyle()
	}
	style = style.TabWidth(lg.NoTabConversion)
	if cp.Foreground != "" {
		style = style.Foreground(lg.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lg.Color(cp.Background))
	}
	return style
}
