// Package jsonl provides JSONL file handling for batch comparisons.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/miraflynn/textcompare"
)

// Compile-time interface verification.
var _ textcompare.PairLoader = (*Loader)(nil)

// Loader loads Pair records from JSONL files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// maxLineSize is the maximum size for a single JSONL line (4MB).
// Form-sized texts fit comfortably; anything larger is rejected by the scanner.
const maxLineSize = 4 * 1024 * 1024

// Load reads a JSONL file and returns all Pair records.
func (l *Loader) Load(path string) ([]textcompare.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return l.Read(f)
}

// Read decodes Pair records from r, one JSON object per line. Blank lines are
// skipped. Records without an id are given their line number as id.
func (l *Loader) Read(r io.Reader) ([]textcompare.Pair, error) {
	var pairs []textcompare.Pair
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p textcompare.Pair
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if p.ID == "" {
			p.ID = strconv.Itoa(lineNum)
		}
		pairs = append(pairs, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return pairs, nil
}
