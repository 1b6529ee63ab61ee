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

import "context"

// MatchInput is the document an Index matches against (component C11).
// Tokens lets a caller reuse tokens it already produced; when nil, Text is
// tokenized with TokenizeString. ExpressionParser and Trace are optional
// external collaborators (spec §1, §6).
type MatchInput struct {
	Text             string
	Tokens           []Token
	ExpressionParser ExpressionParser
	Trace            *TraceConfiguration
}

// Match runs the full matching pipeline - S0 negative subtraction, then S1
// hash, S2 SPDX, S3 exact, S4 approximate, then refine - over in, honoring
// ctx cancellation between phases (spec §4.5, §4.8, §7). An empty document
// is not an error: it simply yields no matches (spec §7 QueryError::Empty).
func (idx *Index) Match(ctx context.Context, in MatchInput, qopts QueryOptions) (Matches, []Warning) {
	var warnings []Warning

	toks := in.Tokens
	if toks == nil {
		toks = TokenizeString(in.Text)
	}
	if len(toks) == 0 {
		return nil, nil
	}

	q := buildQuery(in.Text, toks, idx.dict, idx.opts)
	t := newTracer(in.Trace)

	if err := ctx.Err(); err != nil {
		warnings = append(warnings, Warning{Phase: phaseTokenize, Message: err.Error()})
		return nil, warnings
	}

	runNegativePass(idx, q, t)

	if m := runHashStrategy(idx, q); m != nil {
		return refineMatches(idx, q, []*LicenseMatch{m}, qopts), warnings
	}

	if err := ctx.Err(); err != nil {
		warnings = append(warnings, Warning{Phase: phaseCandidates, Message: err.Error()})
		return nil, warnings
	}

	var all []*LicenseMatch
	all = append(all, runSPDXStrategy(idx, q, in.ExpressionParser)...)

	if !anyRunMatchable(q.Runs, idx.dict.lenJunk) {
		return refineMatches(idx, q, all, qopts), warnings
	}

	all = append(all, runExactStrategy(idx, q, t)...)

	if err := ctx.Err(); err != nil {
		warnings = append(warnings, Warning{Phase: phaseAlign, Message: err.Error()})
		return refineMatches(idx, q, all, qopts), warnings
	}

	if anyRunMatchable(q.Runs, idx.dict.lenJunk) {
		all = append(all, runApproxStrategy(idx, q, t)...)
	}

	return refineMatches(idx, q, all, qopts), warnings
}

// anyRunMatchable reports whether at least one run still has an eligible
// high-token position, the early-exit condition spec §4.5 describes for
// skipping S3/S4 once every run is exhausted.
func anyRunMatchable(runs []*QueryRun, lenJunk int) bool {
	for _, r := range runs {
		if r.isMatchable(false, lenJunk, nil) {
			return true
		}
	}
	return false
}
