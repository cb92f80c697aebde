// Package worddiff tokenizes text into alphanumeric and non-alphanumeric runs
// and aligns token sequences with a bounded lookahead.
package worddiff

import (
	"unicode/utf8"

	"github.com/miraflynn/textcompare"
)

// Compile-time interface verification.
var _ textcompare.Tokenizer = (*Tokenizer)(nil)

// Tokenizer splits strings into alternating runs of ASCII alphanumeric and
// non-alphanumeric bytes.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer instance.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits s at every boundary between a run of [A-Za-z0-9] and a run
// of anything else. Everything outside ASCII, including non-English letters,
// counts as non-alphanumeric. Concatenating the tokens reproduces s.
//
// For example "abc def. ghi" becomes ["abc", " ", "def", ". ", "ghi"].
//
// Empty tokens are never produced. A regular-expression split such as
// re.split(r"([^A-Za-z0-9]+)", s) yields a leading "" when s starts with a
// non-alphanumeric byte; Tokenize omits it, so " a" becomes [" ", "a"].
func (t *Tokenizer) Tokenize(s string) []string {
	if len(s) == 0 {
		return nil
	}

	// Pre-allocate with estimated capacity (avoid reallocations)
	tokens := make([]string, 0, len(s)/3+1)
	i := 0

	for i < len(s) {
		start := i
		alnum := isAlnum(s[i])
		i++
		for i < len(s) && isAlnum(s[i]) == alnum {
			i++
		}
		tokens = append(tokens, s[start:i])
	}

	return tokens
}

// isAlnum reports whether c is an ASCII letter or digit. UTF-8 continuation
// and lead bytes are all >= 0x80, so multi-byte characters never straddle a
// token boundary.
func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// SplitChars splits a token into single-character tokens, in order.
// Bytes that are not valid UTF-8 become one-byte tokens.
func SplitChars(token string) []string {
	chars := make([]string, 0, len(token))
	for i := 0; i < len(token); {
		_, size := utf8.DecodeRuneInString(token[i:])
		chars = append(chars, token[i:i+size])
		i += size
	}
	return chars
}
