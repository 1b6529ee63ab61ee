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

import "github.com/licensematch/lidx/internal/bitset"

// negativeSubtraction records one negative-rule hit purely for tracing;
// negative hits are never emitted as LicenseMatch results (spec §4.5 S0,
// invariant P6, scenario E6).
type negativeSubtraction struct {
	RuleID RuleID
	Run    *QueryRun
	Start  int // local position
	End    int // local position, exclusive
}

// runNegativePass implements strategy S0: run the negative automaton
// across every run and subtract each hit's span from that run's matchable
// bitset, removing boilerplate noise before any positive strategy runs.
func runNegativePass(idx *Index, q *Query, t *tracer) []negativeSubtraction {
	var subs []negativeSubtraction
	for _, run := range q.Runs {
		hits := idx.auto.negative.Search(tokenSymbols(run.ids))
		for _, h := range hits {
			rid := RuleID(h.Pattern)
			rule := idx.rules[rid]
			start := h.End - len(rule.TokenIDs)
			if start < 0 {
				continue
			}

			// Supplemented feature from original_source: a negative
			// rule of length <= 2 tokens is too noise-prone to trust
			// as a subtraction - at that length it risks wiping out
			// a genuinely short positive rule's entire matchable
			// span, so only longer negative rules subtract.
			if len(rule.TokenIDs) <= 2 {
				continue
			}

			span := bitset.New(run.Len())
			for p := start; p < h.End; p++ {
				span.Set(p)
			}
			run.subtract(span)
			subs = append(subs, negativeSubtraction{RuleID: rid, Run: run, Start: start, End: h.End})
			t.logf(phaseTokenize, rule.Identifier, "negative hit [%d,%d)", start, h.End)
		}
	}
	return subs
}
