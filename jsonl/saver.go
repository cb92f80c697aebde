package jsonl

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/miraflynn/textcompare"
)

// Compile-time interface verification.
var _ textcompare.PairResultSaver = (*Saver)(nil)

// Saver appends PairResult records to JSONL files.
type Saver struct{}

// NewSaver creates a new Saver.
func NewSaver() *Saver {
	return &Saver{}
}

// Save appends a PairResult to a JSONL file, creating parent directories if needed.
func (s *Saver) Save(path string, r textcompare.PairResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	// Keep markup readable instead of \u003c-escaped.
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}
