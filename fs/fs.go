// Package fs persists comparison output to the local filesystem.
package fs

import (
	"os"
	"path/filepath"

	"github.com/miraflynn/textcompare"
)

// Compile-time interface verification.
var _ textcompare.Sink = (*DebugFile)(nil)

// DefaultDebugFileName is written in the working directory when no other
// location is configured.
const DefaultDebugFileName = "view.md"

// DefaultDebugPath returns the debug file location.
// Uses TEXTCOMPARE_DEBUG_FILE if set, otherwise DefaultDebugFileName.
func DefaultDebugPath() string {
	if path := os.Getenv("TEXTCOMPARE_DEBUG_FILE"); path != "" {
		return path
	}
	return DefaultDebugFileName
}

// DebugFile writes each persisted view to a single file, replacing whatever
// it held before. Concurrent writers are not coordinated; the last write wins.
type DebugFile struct {
	Path string
}

// NewDebugFile creates a DebugFile writing to path.
func NewDebugFile(path string) *DebugFile {
	return &DebugFile{Path: path}
}

// Persist truncates the file and writes content, creating parent
// directories if needed.
func (f *DebugFile) Persist(content string) error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Path, []byte(content), 0o644)
}
