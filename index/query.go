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
	"regexp"
	"strings"

	"github.com/licensematch/lidx/internal/bitset"
)

// queryToken is one position in the flattened query token stream: a
// dictionary id (unknownTokenID for words with no dictionary entry) and
// its source line (spec §4.4).
type queryToken struct {
	ID   TokenID
	Line int
}

// QueryRun is a contiguous matchable window of the query (spec §3
// "QueryRun", §4.4). Positions are local (0-based within the run); Start
// is the run's offset into the full query token stream.
type QueryRun struct {
	Start, End int // [Start, End) into Query.Tokens
	ids        []TokenID
	lines      []int
	matchable  *bitset.Set // local position -> still eligible
}

// newQueryRun builds a run over query tokens [start, end).
func newQueryRun(tokens []queryToken, start, end int) *QueryRun {
	n := end - start
	r := &QueryRun{Start: start, End: end, ids: make([]TokenID, n), lines: make([]int, n), matchable: bitset.New(n)}
	for i := 0; i < n; i++ {
		t := tokens[start+i]
		r.ids[i] = t.ID
		r.lines[i] = t.Line
		if t.ID != unknownTokenID {
			r.matchable.Set(i)
		}
	}
	return r
}

// Len returns the number of token positions in the run.
func (r *QueryRun) Len() int { return len(r.ids) }

// subtract clears the matchable bit at every local position in localSpan.
func (r *QueryRun) subtract(localSpan *bitset.Set) {
	r.matchable.Subtract(localSpan)
}

// isMatchable reports whether the run still has at least one eligible
// position outside existingQspans; when includeLow is false, at least one
// of those positions must also be a high (non-junk) token (spec §4.4).
func (r *QueryRun) isMatchable(includeLow bool, lenJunk int, existingQspans *bitset.Set) bool {
	found := false
	r.matchable.Range(func(i int) bool {
		if existingQspans != nil && existingQspans.Test(r.Start+i) {
			return true
		}
		if !includeLow && int(r.ids[i]) < lenJunk {
			return true
		}
		found = true
		return false
	})
	return found
}

// Query is the tokenized input document plus its runs (component C8).
type Query struct {
	Tokens   []queryToken
	Runs     []*QueryRun
	SPDXRuns []spdxRun
}

// spdxRun is a dedicated sub-run over a line containing an SPDX license
// identifier tag, extracted for the expression matcher (spec §4.4, S2).
type spdxRun struct {
	Line    int
	RawExpr string
}

// buildQuery tokenizes raw text, maps each token to a dictionary id
// (unknown tokens become gaps), and splits the stream into runs at long
// unknown/digit stretches and large line gaps (spec §4.4). raw is the
// original, un-tokenized input, used only to extract SPDX-identifier
// lines (tokenization drops the colon and punctuation S2 keys off of).
func buildQuery(raw string, tokens []Token, dict *dictionary, opts Options) *Query {
	q := &Query{Tokens: make([]queryToken, len(tokens))}
	for i, t := range tokens {
		id := unknownTokenID
		if got, ok := dict.lookup(t.Text); ok {
			id = got
		}
		q.Tokens[i] = queryToken{ID: id, Line: t.Line}
	}

	q.Runs = splitRuns(q.Tokens, dict, opts)
	q.SPDXRuns = extractSPDXRuns(raw)
	return q
}

const (
	maxLowValueGap = 10 // consecutive unknown/digit tokens that force a split
)

// binaryLineDensityThreshold is the fraction of low-value (unknown or
// digit-only) tokens, measured since the last flush, above which the
// run being built is treated as binary-ish content: sparser in real words,
// so it earns the more tolerant BinLineThreshold line-gap cutover instead
// of TextLineThreshold (spec §4.4 run-split rule 3).
const binaryLineDensityThreshold = 0.5

// minTokensForBinaryClassification avoids classifying a run as
// binary-ish off a handful of leading tokens.
const minTokensForBinaryClassification = 20

// splitRuns implements spec §4.4's run-splitting rules: long stretches of
// unknown tokens, long stretches of digit-only tokens, and large line
// jumps, using BinLineThreshold as the "this might be binary-ish content"
// cutover and TextLineThreshold otherwise.
func splitRuns(tokens []queryToken, dict *dictionary, opts Options) []*QueryRun {
	if len(tokens) == 0 {
		return nil
	}
	lineThresh := opts.TextLineThreshold
	if lineThresh <= 0 {
		lineThresh = defaultTextLineThresh
	}
	binThresh := opts.BinLineThreshold
	if binThresh <= 0 {
		binThresh = defaultBinLineThresh
	}

	var runs []*QueryRun
	start := 0
	lowRun := 0     // length of the current trailing low-value stretch
	lowSeen := 0    // low-value tokens seen since the last flush
	totalSeen := 0  // all tokens seen since the last flush
	lastGoodLine := tokens[0].Line

	flush := func(end int) {
		if end > start {
			runs = append(runs, newQueryRun(tokens, start, end))
		}
		lowSeen, totalSeen = 0, 0
	}

	for i, t := range tokens {
		isUnknown := t.ID == unknownTokenID
		isDigit := t.ID != unknownTokenID && dict.isJunk(t.ID) && isAllDigitWord(dict.getWord(t.ID))
		totalSeen++
		if isUnknown || isDigit {
			lowRun++
			lowSeen++
		} else {
			if lowRun >= maxLowValueGap {
				flush(i - lowRun)
				start = i
			}
			lowRun = 0

			thresh := lineThresh
			if totalSeen >= minTokensForBinaryClassification && float64(lowSeen)/float64(totalSeen) > binaryLineDensityThreshold {
				thresh = binThresh
			}
			if t.Line-lastGoodLine > thresh {
				flush(i)
				start = i
			}
			lastGoodLine = t.Line
		}
	}
	flush(len(tokens))
	return runs
}

var spdxTagRe = regexp.MustCompile(`(?i)SPDX-License-Identifier\s*:\s*(.+)`)

// extractSPDXRuns scans raw input for "SPDX-License-Identifier:" tag lines
// (spec §4.4) and returns one spdxRun per occurrence, in document order.
func extractSPDXRuns(raw string) []spdxRun {
	var runs []spdxRun
	for i, line := range strings.Split(raw, "\n") {
		m := spdxTagRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		runs = append(runs, spdxRun{Line: i + 1, RawExpr: strings.TrimSpace(m[1])})
	}
	return runs
}

func isAllDigitWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
