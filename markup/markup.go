// Package markup renders alignments as inline-styled HTML fragments.
//
// Each segment becomes its own <span>; adjacent segments with the same
// status are never merged. Matched spans carry no styling, unmatched spans
// carry a background color. Each side is wrapped in a monospace <pre> so
// whitespace renders as typed.
//
// Segment text is embedded verbatim unless WithEscape(true) is given. Input
// containing markup will therefore be interpreted as markup by a browser;
// callers embedding output into live pages must enable escaping.
package markup

import (
	"html"
	"strings"

	"github.com/miraflynn/textcompare"
)

// Compile-time interface verification.
var _ textcompare.Renderer = (*Renderer)(nil)

const (
	preOpen  = "<pre style='font-family:monospace'>"
	preClose = "</pre>"
)

// DefaultStyles returns the styles used when none are configured: no styling
// for matched text and a light coral background for unmatched text.
func DefaultStyles() textcompare.Styles {
	return textcompare.Styles{
		Unmatched: textcompare.ColorPair{Background: "lightcoral"},
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyles sets the colors used for matched and unmatched spans.
func WithStyles(styles textcompare.Styles) Option {
	return func(r *Renderer) { r.styles = styles }
}

// WithTheme is WithStyles with the theme's styles.
func WithTheme(theme textcompare.Theme) Option {
	return func(r *Renderer) { r.styles = theme.Styles() }
}

// WithEscape controls whether segment text is HTML-escaped.
func WithEscape(escape bool) Option {
	return func(r *Renderer) { r.escape = escape }
}

// Renderer renders alignments as HTML.
type Renderer struct {
	styles textcompare.Styles
	escape bool
}

// NewRenderer creates a Renderer with DefaultStyles and escaping disabled.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{styles: DefaultStyles()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders both sides of the alignment.
func (r *Renderer) Render(a textcompare.Alignment) textcompare.Result {
	return textcompare.Result{
		Side1: r.RenderSide(a.Side1),
		Side2: r.RenderSide(a.Side2),
	}
}

// RenderSide renders one side's segments inside the monospace container.
func (r *Renderer) RenderSide(segs []textcompare.Segment) string {
	var b strings.Builder
	b.WriteString(preOpen)
	for _, seg := range segs {
		text := seg.Text
		if r.escape {
			text = html.EscapeString(text)
		}
		AppendSpan(&b, text, seg.Matched, r.styles)
	}
	b.WriteString(preClose)
	return b.String()
}

// AppendSpan appends text to b wrapped in a span styled for its status.
// Text is written as given.
func AppendSpan(b *strings.Builder, text string, matched bool, styles textcompare.Styles) {
	cp := styles.Unmatched
	if matched {
		cp = styles.Matched
	}
	b.WriteString("<span")
	if style := inlineStyle(cp); style != "" {
		b.WriteString(" style='")
		b.WriteString(style)
		b.WriteString("'")
	}
	b.WriteString(">")
	b.WriteString(text)
	b.WriteString("</span>")
}

// inlineStyle converts a color pair to a CSS declaration list.
func inlineStyle(cp textcompare.ColorPair) string {
	var decls []string
	if cp.Background != "" {
		decls = append(decls, "background-color: "+cp.Background)
	}
	if cp.Foreground != "" {
		decls = append(decls, "color: "+cp.Foreground)
	}
	return strings.Join(decls, "; ")
}
