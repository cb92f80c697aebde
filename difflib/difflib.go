// Package difflib aligns token sequences by longest common subsequence.
//
// Unlike worddiff.Aligner it finds an optimal alignment regardless of how far
// apart matching tokens are, so its output differs from the lookahead
// heuristic on inputs with long insertions or ambiguous repeats.
package difflib

import (
	"github.com/miraflynn/textcompare"
	"github.com/miraflynn/textcompare/worddiff"
)

// Compile-time interface verification.
var _ textcompare.Aligner = (*Aligner)(nil)

// Aligner computes an LCS alignment. Tokens between two common tokens are
// paired positionally and compared character by character; the excess on the
// longer side is unmatched.
type Aligner struct{}

// NewAligner creates a new Aligner instance.
func NewAligner() *Aligner {
	return &Aligner{}
}

// Align returns segments for both sequences. It never fails.
func (a *Aligner) Align(tokens1, tokens2 []string) (textcompare.Alignment, error) {
	m, n := len(tokens1), len(tokens2)

	// Allocate DP table as a flat slice (single allocation)
	// table[i*(n+1)+j] corresponds to table[i][j]
	table := make([]int, (m+1)*(n+1))
	stride := n + 1

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if tokens1[i-1] == tokens2[j-1] {
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
				table[i*stride+j] = table[(i-1)*stride+j]
			} else {
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	// Backtrack to find matching positions
	type match struct{ idx1, idx2 int }
	matches := make([]match, 0, table[m*stride+n])

	i, j := m, n
	for i > 0 && j > 0 {
		if tokens1[i-1] == tokens2[j-1] {
			matches = append(matches, match{i - 1, j - 1})
			i--
			j--
		} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
			i--
		} else {
			j--
		}
	}

	// Reverse matches (backtracking gives them in reverse order)
	for left, right := 0, len(matches)-1; left < right; left, right = left+1, right-1 {
		matches[left], matches[right] = matches[right], matches[left]
	}

	var out textcompare.Alignment
	idx1, idx2 := 0, 0
	for _, mt := range matches {
		out = appendGap(out, tokens1[idx1:mt.idx1], tokens2[idx2:mt.idx2])
		out.Side1 = append(out.Side1, textcompare.Segment{Text: tokens1[mt.idx1], Matched: true})
		out.Side2 = append(out.Side2, textcompare.Segment{Text: tokens2[mt.idx2], Matched: true})
		idx1 = mt.idx1 + 1
		idx2 = mt.idx2 + 1
	}
	out = appendGap(out, tokens1[idx1:], tokens2[idx2:])

	return out, nil
}

// appendGap appends the tokens lying between two common tokens.
func appendGap(out textcompare.Alignment, gap1, gap2 []string) textcompare.Alignment {
	sub := worddiff.AlignSubstitution(gap1, gap2)
	out.Side1 = append(out.Side1, sub.Side1...)
	out.Side2 = append(out.Side2, sub.Side2...)
	return out
}
