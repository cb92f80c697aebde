// Package textcompare provides domain types for comparing two texts and
// rendering where they agree and disagree.
package textcompare

import (
	"context"
	"errors"
	"strings"
)

// LineBreak separates the two sides in a combined view.
const LineBreak = "<br>"

// ErrInvariant is returned when an aligner reaches a cursor state its case
// analysis does not cover. It indicates a defect, not bad input.
var ErrInvariant = errors.New("alignment invariant violated")

// Segment is a token or single character annotated with whether it appears
// identically on both sides at its alignment point.
type Segment struct {
	Text    string // The token or character
	Matched bool   // False for side-exclusive or substituted text
}

// Alignment holds the annotated segments for both sides, in the original
// token order of each side.
type Alignment struct {
	Side1 []Segment
	Side2 []Segment
}

// Stats returns the number of matched and unmatched segments across both sides.
func (a Alignment) Stats() (matched, unmatched int) {
	for _, side := range [][]Segment{a.Side1, a.Side2} {
		for _, seg := range side {
			if seg.Matched {
				matched++
			} else {
				unmatched++
			}
		}
	}
	return matched, unmatched
}

// JoinSegments concatenates segment texts. For any aligner output this
// reproduces the side's original text.
func JoinSegments(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Result is the pair of rendered outputs for one comparison.
type Result struct {
	Side1 string
	Side2 string
}

// Combined returns both sides joined by LineBreak.
func (r Result) Combined() string {
	return r.Side1 + LineBreak + r.Side2
}

// Tokenizer splits text into an ordered token sequence.
type Tokenizer interface {
	Tokenize(s string) []string
}

// Aligner decides which tokens of two sequences correspond to each other.
type Aligner interface {
	// Align returns annotated segments for both token sequences.
	// Implementations must not modify the input slices.
	Align(tokens1, tokens2 []string) (Alignment, error)
}

// Renderer turns an alignment into displayable output.
type Renderer interface {
	Render(a Alignment) Result
}

// Sink receives the combined output of a comparison for later inspection.
type Sink interface {
	// Persist replaces any previously persisted content with content.
	Persist(content string) error
}

// Viewer displays an alignment interactively.
type Viewer interface {
	// View displays the alignment and blocks until the user exits.
	View(ctx context.Context, a Alignment) error
}

// Clipboard copies content to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}

// Pair is one comparison request in a batch.
type Pair struct {
	ID    string `json:"id"`
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

// PairResult is the rendered outcome of comparing a Pair.
type PairResult struct {
	ID    string `json:"id"`
	Side1 string `json:"side1"`
	Side2 string `json:"side2"`
}

// PairLoader loads comparison requests from storage.
type PairLoader interface {
	Load(path string) ([]Pair, error)
}

// PairResultSaver persists comparison results.
type PairResultSaver interface {
	// Save appends a result to the file at path.
	Save(path string, r PairResult) error
}
