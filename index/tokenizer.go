// Copyright 2026 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Token is one normalized lexical unit produced by the tokenizer, together
// with its source position. See spec §3 "Token".
type Token struct {
	// Text is the lowercased, normalized word or digit run.
	Text string
	// Line is the 1-based source line the token started on.
	Line int
	// IsShort is true for single-character tokens.
	IsShort bool
	// IsDigit is true for tokens consisting entirely of digits.
	IsDigit bool
}

// Tokenizer produces a lazy stream of Tokens from a reader, normalizing as
// it goes: Unicode-aware splitting on non-alphanumeric runes, lowercasing,
// and digit preservation (component C1).
type Tokenizer struct {
	scanner *bufio.Scanner
	line    int
	pending []Token
	pos     int
	err     error
}

// NewTokenizer wraps r for streaming tokenization.
func NewTokenizer(r io.Reader) *Tokenizer {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Tokenizer{scanner: s}
}

// Next returns the next token in the stream. ok is false once the stream is
// exhausted; check Err afterward to distinguish EOF from a scan failure.
func (t *Tokenizer) Next() (Token, bool) {
	for t.pos >= len(t.pending) {
		if !t.scanner.Scan() {
			t.err = t.scanner.Err()
			return Token{}, false
		}
		t.line++
		t.pending = tokenizeLine(t.scanner.Text(), t.line)
		t.pos = 0
	}
	tok := t.pending[t.pos]
	t.pos++
	return tok, true
}

// Err returns the first error encountered while scanning, if any.
func (t *Tokenizer) Err() error { return t.err }

// TokenizeAll drains a Tokenizer into a slice; a convenience for callers
// that don't need streaming (most rule-build call sites).
func TokenizeAll(r io.Reader) ([]Token, error) {
	tz := NewTokenizer(r)
	var out []Token
	for {
		tok, ok := tz.Next()
		if !ok {
			break
		}
		out = append(out, tok)
	}
	return out, tz.Err()
}

// TokenizeString is TokenizeAll over an in-memory string.
func TokenizeString(s string) []Token {
	toks, _ := TokenizeAll(strings.NewReader(s))
	return toks
}

// tokenizeLine splits one line of text into normalized tokens. A word is a
// maximal run of letters and digits; any other rune is a separator and is
// dropped (punctuation carries no matching value for license text).
func tokenizeLine(line string, lineNo int) []Token {
	var out []Token
	var cur strings.Builder
	allDigits := true

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		text := cur.String()
		out = append(out, Token{
			Text:    text,
			Line:    lineNo,
			IsShort: len([]rune(text)) == 1,
			IsDigit: allDigits,
		})
		cur.Reset()
		allDigits = true
	}

	for _, r := range line {
		switch {
		case unicode.IsLetter(r):
			cur.WriteRune(unicode.ToLower(r))
			allDigits = false
		case unicode.IsDigit(r):
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return out
}
