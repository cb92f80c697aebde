package mock

import "github.com/miraflynn/textcompare"

// Compile-time interface verification.
var (
	_ textcompare.Sink      = (*Sink)(nil)
	_ textcompare.Clipboard = (*Clipboard)(nil)
)

// Sink is a mock implementation of textcompare.Sink.
type Sink struct {
	PersistFn func(content string) error
}

func (s *Sink) Persist(content string) error {
	return s.PersistFn(content)
}

// Clipboard is a mock implementation of textcompare.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
