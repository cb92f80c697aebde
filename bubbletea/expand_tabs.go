package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/miraflynn/textcompare"
)

// tabWidth is the distance between tab stops.
const tabWidth = 8

// ExpandTabs converts tab characters to spaces using standard 8-column tab
// stops. startCol is the column where s begins; the returned column is where
// the next text would start, so callers can chain segments of one line.
func ExpandTabs(s string, startCol int) (string, int) {
	var sb strings.Builder
	col := startCol
	for _, r := range s {
		switch r {
		case '\t':
			nextStop := ((col / tabWidth) + 1) * tabWidth
			sb.WriteString(strings.Repeat(" ", nextStop-col))
			col = nextStop
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
		}
	}
	return sb.String(), col
}

// expandSegmentTabs expands tabs across a side's segments. Segment status is
// preserved, so an unmatched tab stays highlighted as the spaces replacing it.
func expandSegmentTabs(segs []textcompare.Segment) []textcompare.Segment {
	out := make([]textcompare.Segment, len(segs))
	col := 0
	for i, seg := range segs {
		out[i] = seg
		out[i].Text, col = ExpandTabs(seg.Text, col)
	}
	return out
}
