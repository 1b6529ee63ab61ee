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

// runExactStrategy implements S3: search the combined rule automaton over
// every still-matchable run, and for each hit whose full span remains
// matchable, emit a 100%-coverage match and subtract the span so later
// strategies never re-propose it (spec §4.5 S3).
func runExactStrategy(idx *Index, q *Query, t *tracer) []*LicenseMatch {
	var out []*LicenseMatch
	for _, run := range q.Runs {
		if !run.isMatchable(true, idx.dict.lenJunk, nil) {
			continue
		}

		hits := idx.auto.all.Search(tokenSymbols(run.ids))
		for _, h := range hits {
			rid := RuleID(h.Pattern)
			rule := idx.rules[rid]
			if !idx.class.regular.contains(rid) {
				continue
			}
			start := h.End - len(rule.TokenIDs)
			if start < 0 {
				continue
			}

			allMatchable := true
			for p := start; p < h.End; p++ {
				if !run.matchable.Test(p) {
					allMatchable = false
					break
				}
			}
			if !allMatchable {
				continue
			}

			qspan := bitset.New(run.Len())
			ispan := bitset.New(rule.Length)
			hispan := bitset.New(rule.Length)
			for p := start; p < h.End; p++ {
				qspan.Set(run.Start + p)
			}
			for i := range rule.TokenIDs {
				ispan.Set(i)
				if int(rule.TokenIDs[i]) >= idx.dict.lenJunk {
					hispan.Set(i)
				}
			}

			subtract := bitset.New(run.Len())
			for p := start; p < h.End; p++ {
				subtract.Set(p)
			}
			run.subtract(subtract)

			out = append(out, &LicenseMatch{
				RuleID:      rid,
				QSpan:       qspan,
				ISpan:       ispan,
				HiSpan:      hispan,
				Coverage:    100,
				Score:       rule.Relevance,
				StartLine:   run.lines[start],
				EndLine:     run.lines[h.End-1],
				MatcherKind: MatcherExact,
			})
			t.logf(phaseRefine, rule.Identifier, "exact hit [%d,%d)", start, h.End)
		}
	}
	return out
}
