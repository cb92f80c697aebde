// Package mock provides test doubles for textcompare interfaces.
package mock

import "github.com/miraflynn/textcompare"

// Compile-time interface verification.
var (
	_ textcompare.Tokenizer = (*Tokenizer)(nil)
	_ textcompare.Aligner   = (*Aligner)(nil)
	_ textcompare.Renderer  = (*Renderer)(nil)
)

// Tokenizer is a mock implementation of textcompare.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(s string) []string
}

func (t *Tokenizer) Tokenize(s string) []string {
	return t.TokenizeFn(s)
}

// Aligner is a mock implementation of textcompare.Aligner.
type Aligner struct {
	AlignFn func(tokens1, tokens2 []string) (textcompare.Alignment, error)
}

func (a *Aligner) Align(tokens1, tokens2 []string) (textcompare.Alignment, error) {
	return a.AlignFn(tokens1, tokens2)
}

// Renderer is a mock implementation of textcompare.Renderer.
type Renderer struct {
	RenderFn func(a textcompare.Alignment) textcompare.Result
}

func (r *Renderer) Render(a textcompare.Alignment) textcompare.Result {
	return r.RenderFn(a)
}
