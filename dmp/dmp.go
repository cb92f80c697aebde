// Package dmp aligns token sequences with the diff-match-patch algorithm.
package dmp

import (
	"github.com/miraflynn/textcompare"
	"github.com/miraflynn/textcompare/worddiff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ textcompare.Aligner = (*Aligner)(nil)

// Aligner maps every distinct token to a single rune, diffs the rune strings
// with diffmatchpatch and maps the result back to tokens. Replaced runs are
// compared character by character as in worddiff.AlignSubstitution.
type Aligner struct {
	semantic bool
}

// Option configures an Aligner.
type Option func(*Aligner)

// WithSemanticCleanup runs DiffCleanupSemantic before mapping back, which
// favours fewer, larger edits over scattered single-token matches.
func WithSemanticCleanup(enabled bool) Option {
	return func(a *Aligner) { a.semantic = enabled }
}

// NewAligner creates a new Aligner.
func NewAligner(opts ...Option) *Aligner {
	a := &Aligner{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Align returns segments for both sequences. It never fails.
func (a *Aligner) Align(tokens1, tokens2 []string) (textcompare.Alignment, error) {
	enc := newEncoder()
	runes1 := enc.encode(tokens1)
	runes2 := enc.encode(tokens2)

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // deterministic output regardless of input size
	diffs := dmp.DiffMainRunes(runes1, runes2, false)
	if a.semantic {
		diffs = dmp.DiffCleanupSemantic(diffs)
	}

	var out textcompare.Alignment
	var dels, ins []string

	flush := func() {
		if len(dels) == 0 && len(ins) == 0 {
			return
		}
		sub := worddiff.AlignSubstitution(dels, ins)
		out.Side1 = append(out.Side1, sub.Side1...)
		out.Side2 = append(out.Side2, sub.Side2...)
		dels = nil
		ins = nil
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for _, t := range enc.decode(d.Text) {
				out.Side1 = append(out.Side1, textcompare.Segment{Text: t, Matched: true})
				out.Side2 = append(out.Side2, textcompare.Segment{Text: t, Matched: true})
			}
		case diffmatchpatch.DiffDelete:
			dels = append(dels, enc.decode(d.Text)...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, enc.decode(d.Text)...)
		}
	}
	flush()

	return out, nil
}

// encoder assigns each distinct token a rune outside the surrogate range so
// that rune strings survive the round trip through Go strings.
type encoder struct {
	ids    map[string]rune
	tokens map[rune]string
}

func newEncoder() *encoder {
	return &encoder{ids: make(map[string]rune), tokens: make(map[rune]string)}
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

func (e *encoder) encode(tokens []string) []rune {
	runes := make([]rune, len(tokens))
	for i, t := range tokens {
		r, ok := e.ids[t]
		if !ok {
			r = rune(len(e.ids) + 1)
			if r >= surrogateMin {
				r += surrogateMax - surrogateMin + 1
			}
			e.ids[t] = r
			e.tokens[r] = t
		}
		runes[i] = r
	}
	return runes
}

func (e *encoder) decode(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		if t, ok := e.tokens[r]; ok {
			out = append(out, t)
		}
	}
	return out
}
