package worddiff_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/miraflynn/textcompare"
	"github.com/miraflynn/textcompare/worddiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seg builds a segment; m marks it matched.
func seg(text string, m bool) textcompare.Segment {
	return textcompare.Segment{Text: text, Matched: m}
}

func TestAlignPositional(t *testing.T) {
	t.Parallel()

	t.Run("equal lengths", func(t *testing.T) {
		t.Parallel()

		got := worddiff.AlignPositional([]string{"c", "a", "t"}, []string{"b", "a", "t"})

		assert.Equal(t, []textcompare.Segment{seg("c", false), seg("a", true), seg("t", true)}, got.Side1)
		assert.Equal(t, []textcompare.Segment{seg("b", false), seg("a", true), seg("t", true)}, got.Side2)
	})

	t.Run("longer side has unmatched tail", func(t *testing.T) {
		t.Parallel()

		got := worddiff.AlignPositional([]string{"a", "b", "c"}, []string{"a"})

		assert.Equal(t, []textcompare.Segment{seg("a", true), seg("b", false), seg("c", false)}, got.Side1)
		assert.Equal(t, []textcompare.Segment{seg("a", true)}, got.Side2)
	})

	t.Run("no realignment after an insertion", func(t *testing.T) {
		t.Parallel()

		got := worddiff.AlignPositional([]string{"a", "b"}, []string{"x", "a", "b"})

		assert.Equal(t, []textcompare.Segment{seg("a", false), seg("b", false)}, got.Side1)
		assert.Equal(t, []textcompare.Segment{seg("x", false), seg("a", false), seg("b", false)}, got.Side2)
	})

	t.Run("both empty", func(t *testing.T) {
		t.Parallel()

		got := worddiff.AlignPositional(nil, nil)

		assert.Empty(t, got.Side1)
		assert.Empty(t, got.Side2)
	})
}

func alignTexts(t *testing.T, text1, text2 string) textcompare.Alignment {
	t.Helper()

	tok := worddiff.NewTokenizer()
	got, err := worddiff.NewAligner().Align(tok.Tokenize(text1), tok.Tokenize(text2))
	require.NoError(t, err)
	return got
}

func TestAligner_Align_InsertionOnSideTwo(t *testing.T) {
	t.Parallel()

	got := alignTexts(t, "a b c", "a b x c")

	assert.Equal(t, []textcompare.Segment{
		seg("a", true), seg(" ", true), seg("b", true), seg(" ", true), seg("c", true),
	}, got.Side1)
	assert.Equal(t, []textcompare.Segment{
		seg("a", true), seg(" ", true), seg("b", true), seg(" ", true),
		seg("x", false), seg(" ", false),
		seg("c", true),
	}, got.Side2)
}

func TestAligner_Align_InsertionOnSideOne(t *testing.T) {
	t.Parallel()

	got := alignTexts(t, "a b x c", "a b c")

	assert.Equal(t, []textcompare.Segment{
		seg("a", true), seg(" ", true), seg("b", true), seg(" ", true),
		seg("x", false), seg(" ", false),
		seg("c", true),
	}, got.Side1)
	assert.Equal(t, []textcompare.Segment{
		seg("a", true), seg(" ", true), seg("b", true), seg(" ", true), seg("c", true),
	}, got.Side2)
}

func TestAligner_Align_SubstitutionFallsBackToCharacters(t *testing.T) {
	t.Parallel()

	got := alignTexts(t, "cat", "bat")

	assert.Equal(t, []textcompare.Segment{seg("c", false), seg("a", true), seg("t", true)}, got.Side1)
	assert.Equal(t, []textcompare.Segment{seg("b", false), seg("a", true), seg("t", true)}, got.Side2)
}

func TestAligner_Align_CapitalizedWord(t *testing.T) {
	t.Parallel()

	got := alignTexts(t, "string one two three", "string One two three")

	assert.Equal(t, []textcompare.Segment{
		seg("string", true), seg(" ", true),
		seg("o", false), seg("n", true), seg("e", true),
		seg(" ", true), seg("two", true), seg(" ", true), seg("three", true),
	}, got.Side1)
	assert.Equal(t, []textcompare.Segment{
		seg("string", true), seg(" ", true),
		seg("O", false), seg("n", true), seg("e", true),
		seg(" ", true), seg("two", true), seg(" ", true), seg("three", true),
	}, got.Side2)
}

func TestAligner_Align_CasePriority(t *testing.T) {
	t.Parallel()

	a := worddiff.NewAligner()

	t.Run("side two lookahead wins over side one", func(t *testing.T) {
		t.Parallel()

		// Both "a" == side2[1] and side1[1] == "b" hold; side 2 is skipped.
		got, err := a.Align([]string{"a", "b"}, []string{"b", "a"})
		require.NoError(t, err)

		assert.Equal(t, []textcompare.Segment{seg("a", true), seg("b", false)}, got.Side1)
		assert.Equal(t, []textcompare.Segment{seg("b", false), seg("a", true)}, got.Side2)
	})

	t.Run("side one one ahead", func(t *testing.T) {
		t.Parallel()

		got, err := a.Align([]string{"x", "a"}, []string{"a"})
		require.NoError(t, err)

		assert.Equal(t, []textcompare.Segment{seg("x", false), seg("a", true)}, got.Side1)
		assert.Equal(t, []textcompare.Segment{seg("a", true)}, got.Side2)
	})

	t.Run("side one two ahead", func(t *testing.T) {
		t.Parallel()

		got, err := a.Align([]string{"x", "y", "a"}, []string{"a"})
		require.NoError(t, err)

		assert.Equal(t, []textcompare.Segment{seg("x", false), seg("y", false), seg("a", true)}, got.Side1)
		assert.Equal(t, []textcompare.Segment{seg("a", true)}, got.Side2)
	})

	t.Run("shift beyond lookahead becomes a substitution", func(t *testing.T) {
		t.Parallel()

		got, err := a.Align([]string{"a"}, []string{"x", "y", "z", "a"})
		require.NoError(t, err)

		assert.Equal(t, []textcompare.Segment{seg("a", false)}, got.Side1)
		assert.Equal(t, []textcompare.Segment{
			seg("x", false), seg("y", false), seg("z", false), seg("a", false),
		}, got.Side2)
	})
}

func TestAligner_Align_ExhaustedSide(t *testing.T) {
	t.Parallel()

	a := worddiff.NewAligner()

	t.Run("side two longer", func(t *testing.T) {
		t.Parallel()

		got, err := a.Align([]string{"a"}, []string{"a", "b", "c"})
		require.NoError(t, err)

		assert.Equal(t, []textcompare.Segment{seg("a", true)}, got.Side1)
		assert.Equal(t, []textcompare.Segment{seg("a", true), seg("b", false), seg("c", false)}, got.Side2)
	})

	t.Run("side two empty", func(t *testing.T) {
		t.Parallel()

		got, err := a.Align([]string{"a", " ", "b"}, nil)
		require.NoError(t, err)

		assert.Equal(t, []textcompare.Segment{seg("a", false), seg(" ", false), seg("b", false)}, got.Side1)
		assert.Empty(t, got.Side2)
	})

	t.Run("both empty", func(t *testing.T) {
		t.Parallel()

		got, err := a.Align(nil, nil)
		require.NoError(t, err)

		assert.Empty(t, got.Side1)
		assert.Empty(t, got.Side2)
	})
}

func TestAligner_Align_Identity(t *testing.T) {
	t.Parallel()

	for _, s := range propertyInputs {
		got := alignTexts(t, s, s)

		assert.Equal(t, got.Side1, got.Side2, "input %q", s)
		for _, sg := range got.Side1 {
			assert.True(t, sg.Matched, "input %q: %q not matched", s, sg.Text)
		}
	}
}

func TestAligner_Align_CoversEveryToken(t *testing.T) {
	t.Parallel()

	for _, s1 := range propertyInputs {
		for _, s2 := range propertyInputs {
			got := alignTexts(t, s1, s2)

			assert.Equal(t, s1, textcompare.JoinSegments(got.Side1))
			assert.Equal(t, s2, textcompare.JoinSegments(got.Side2))
		}
	}
}

func TestAligner_Align_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	tokens1 := []string{"a", " ", "b"}
	tokens2 := []string{"a", " ", "x", " ", "b"}

	_, err := worddiff.NewAligner().Align(tokens1, tokens2)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", " ", "b"}, tokens1)
	assert.Equal(t, []string{"a", " ", "x", " ", "b"}, tokens2)
}

func TestAligner_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := worddiff.NewAligner(worddiff.WithLogger(logger)).Align([]string{"a"}, []string{"b"})

	require.NoError(t, err)
	assert.Empty(t, buf.String(), "well-formed input logs nothing")
}

func TestAlignSubstitution(t *testing.T) {
	t.Parallel()

	t.Run("pairs compared by character", func(t *testing.T) {
		t.Parallel()

		got := worddiff.AlignSubstitution([]string{"cat", " ", "hat"}, []string{"bat", "-"})

		assert.Equal(t, []textcompare.Segment{
			seg("c", false), seg("a", true), seg("t", true),
			seg(" ", false),
			seg("hat", false),
		}, got.Side1)
		assert.Equal(t, []textcompare.Segment{
			seg("b", false), seg("a", true), seg("t", true),
			seg("-", false),
		}, got.Side2)
	})

	t.Run("one run empty", func(t *testing.T) {
		t.Parallel()

		got := worddiff.AlignSubstitution(nil, []string{"x", " "})

		assert.Empty(t, got.Side1)
		assert.Equal(t, []textcompare.Segment{seg("x", false), seg(" ", false)}, got.Side2)
	})
}
