package textcompare

import (
	"fmt"
	"log/slog"
)

// Comparer tokenizes two texts, aligns them and renders the result.
// It holds no per-call state and is safe for concurrent use when its
// collaborators are.
type Comparer struct {
	Tokenizer Tokenizer
	Aligner   Aligner
	Renderer  Renderer
	Logger    *slog.Logger // nil disables logging
}

// Compare returns the rendered comparison of text1 and text2.
//
// When sink is non-nil the combined view is persisted to it, replacing any
// earlier content. A persistence failure is returned alongside the complete
// result so callers can still display it.
func (c *Comparer) Compare(text1, text2 string, sink Sink) (Result, error) {
	alignment, err := c.Align(text1, text2)
	if err != nil {
		return Result{}, err
	}
	return c.Present(alignment, sink)
}

// Present renders an alignment produced by Align and persists the combined
// view to sink when sink is non-nil. The result is complete even when the
// returned error is non-nil.
func (c *Comparer) Present(a Alignment, sink Sink) (Result, error) {
	result := c.Renderer.Render(a)

	if sink != nil {
		if err := sink.Persist(result.Combined()); err != nil {
			return result, fmt.Errorf("persist comparison: %w", err)
		}
	}

	return result, nil
}

// Align tokenizes both texts and aligns the token sequences without
// rendering them.
func (c *Comparer) Align(text1, text2 string) (Alignment, error) {
	tokens1 := c.Tokenizer.Tokenize(text1)
	tokens2 := c.Tokenizer.Tokenize(text2)

	alignment, err := c.Aligner.Align(tokens1, tokens2)
	if err != nil {
		return Alignment{}, fmt.Errorf("align: %w", err)
	}

	matched, unmatched := alignment.Stats()
	c.logger().Debug("aligned texts",
		"tokens1", len(tokens1),
		"tokens2", len(tokens2),
		"matched", matched,
		"unmatched", unmatched)

	return alignment, nil
}

func (c *Comparer) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
