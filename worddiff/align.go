package worddiff

import (
	"fmt"
	"log/slog"

	"github.com/miraflynn/textcompare"
)

// Compile-time interface verification.
var _ textcompare.Aligner = (*Aligner)(nil)

// MaxLookahead is how many tokens past the cursor the Aligner inspects when
// looking for a point to realign after an insertion.
const MaxLookahead = 2

// Option configures an Aligner.
type Option func(*Aligner)

// WithLogger sets the logger used to report invariant violations.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aligner) { a.logger = logger }
}

// Aligner aligns two token sequences using a priority-ordered, bounded
// lookahead. It is a heuristic, not a longest common subsequence: shifts
// longer than MaxLookahead tokens degrade into character-level substitutions.
type Aligner struct {
	logger *slog.Logger
}

// NewAligner creates a new Aligner.
func NewAligner(opts ...Option) *Aligner {
	a := &Aligner{}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}
	return a
}

// Align walks both sequences with one cursor each. At every step the first
// applicable rule wins:
//
//  1. current tokens equal: both matched, both cursors advance
//  2. side 1's token equals side 2's next token: side 2's token unmatched
//  3. side 2's token equals side 1's next token: side 1's token unmatched
//  4. side 1's token equals side 2's token two ahead: two side 2 tokens unmatched
//  5. side 2's token equals side 1's token two ahead: two side 1 tokens unmatched
//  6. otherwise both tokens are a substitution, compared character by character
//
// Once one side is exhausted the rest of the other side is unmatched.
func (a *Aligner) Align(tokens1, tokens2 []string) (textcompare.Alignment, error) {
	n1, n2 := len(tokens1), len(tokens2)
	side1 := make([]textcompare.Segment, 0, n1)
	side2 := make([]textcompare.Segment, 0, n2)
	i, j := 0, 0

	for {
		switch {
		case i < n1 && j < n2:
			if tokens1[i] == tokens2[j] {
				side1 = append(side1, textcompare.Segment{Text: tokens1[i], Matched: true})
				side2 = append(side2, textcompare.Segment{Text: tokens2[j], Matched: true})
				i++
				j++
				continue
			}

			skip1, skip2 := realign(tokens1, tokens2, i, j)
			if skip1 == 0 && skip2 == 0 {
				chars := AlignPositional(SplitChars(tokens1[i]), SplitChars(tokens2[j]))
				side1 = append(side1, chars.Side1...)
				side2 = append(side2, chars.Side2...)
				i++
				j++
				continue
			}
			for ; skip1 > 0; skip1-- {
				side1 = append(side1, textcompare.Segment{Text: tokens1[i]})
				i++
			}
			for ; skip2 > 0; skip2-- {
				side2 = append(side2, textcompare.Segment{Text: tokens2[j]})
				j++
			}

		case i == n1 && j == n2:
			return textcompare.Alignment{Side1: side1, Side2: side2}, nil

		case i == n1:
			side2 = append(side2, textcompare.Segment{Text: tokens2[j]})
			j++

		case j == n2:
			side1 = append(side1, textcompare.Segment{Text: tokens1[i]})
			i++

		default:
			a.logger.Error("alignment cursor out of range",
				"pos1", i, "len1", n1, "pos2", j, "len2", n2)
			return textcompare.Alignment{}, fmt.Errorf("%w: cursors (%d, %d) past lengths (%d, %d)",
				textcompare.ErrInvariant, i, j, n1, n2)
		}
	}
}

// realign returns how many tokens to skip on each side so that the cursors
// meet again on equal tokens. At each distance side 2 is checked before
// side 1, so an insertion on side 2 wins ties. Both zero means no realignment
// point exists within MaxLookahead.
func realign(tokens1, tokens2 []string, i, j int) (skip1, skip2 int) {
	for k := 1; k <= MaxLookahead; k++ {
		if j+k < len(tokens2) && tokens1[i] == tokens2[j+k] {
			return 0, k
		}
		if i+k < len(tokens1) && tokens1[i+k] == tokens2[j] {
			return k, 0
		}
	}
	return 0, 0
}

// AlignPositional compares two sequences index by index without any
// realignment. Equal elements are matched on both sides, unequal ones are
// unmatched on both sides, and the tail of the longer sequence is unmatched.
func AlignPositional(elems1, elems2 []string) textcompare.Alignment {
	n := min(len(elems1), len(elems2))
	side1 := make([]textcompare.Segment, 0, len(elems1))
	side2 := make([]textcompare.Segment, 0, len(elems2))

	for i := 0; i < n; i++ {
		same := elems1[i] == elems2[i]
		side1 = append(side1, textcompare.Segment{Text: elems1[i], Matched: same})
		side2 = append(side2, textcompare.Segment{Text: elems2[i], Matched: same})
	}
	for _, e := range elems1[n:] {
		side1 = append(side1, textcompare.Segment{Text: e})
	}
	for _, e := range elems2[n:] {
		side2 = append(side2, textcompare.Segment{Text: e})
	}

	return textcompare.Alignment{Side1: side1, Side2: side2}
}

// AlignSubstitution aligns two runs of tokens that replace each other. Tokens
// are paired by position and each pair is compared character by character;
// tokens without a partner are unmatched.
func AlignSubstitution(run1, run2 []string) textcompare.Alignment {
	var out textcompare.Alignment
	paired := min(len(run1), len(run2))
	for k := 0; k < paired; k++ {
		chars := AlignPositional(SplitChars(run1[k]), SplitChars(run2[k]))
		out.Side1 = append(out.Side1, chars.Side1...)
		out.Side2 = append(out.Side2, chars.Side2...)
	}
	for _, t := range run1[paired:] {
		out.Side1 = append(out.Side1, textcompare.Segment{Text: t})
	}
	for _, t := range run2[paired:] {
		out.Side2 = append(out.Side2, textcompare.Segment{Text: t})
	}
	return out
}
