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

// maxAlignAttemptsPerRun bounds how many candidate/align rounds a single
// run tolerates before S4 gives up on it, so a run that keeps producing
// sub-threshold alignments can never spin forever.
const maxAlignAttemptsPerRun = 200

// runApproxStrategy implements S4: repeatedly rank the remaining
// approx-matchable rules against a run's still-matchable high tokens,
// align the best candidate, and - if it clears its rule's minimum
// coverage - emit a match and subtract its span, looping until no
// candidate clears the bar or no matchable tokens remain (spec §4.5 S4,
// §4.6, §4.7).
func runApproxStrategy(idx *Index, q *Query, t *tracer) []*LicenseMatch {
	var out []*LicenseMatch
	lenJunk := idx.dict.lenJunk

	for _, run := range q.Runs {
		for attempt := 0; attempt < maxAlignAttemptsPerRun; attempt++ {
			if !run.isMatchable(false, lenJunk, nil) {
				break
			}

			qs := buildRunHighSets(run, lenJunk)
			candidates := rankCandidates(idx, qs, nil, idx.opts)
			if len(candidates) == 0 {
				break
			}

			progressed := false
			for _, c := range candidates {
				rule := idx.rules[c.rid]
				span := alignOnce(rule, idx.postings, run, 0, lenJunk, idx.opts)
				if span == nil || span.qspan.IsEmpty() {
					continue
				}

				coverage, score, hispan := scoreAlignment(rule, span, lenJunk)
				if coverage < rule.MinimumCoverage {
					continue
				}

				qspan := bitset.New(run.Len())
				span.qspan.Range(func(i int) bool {
					qspan.Set(run.Start + i)
					return true
				})

				startLine, endLine := run.lines[0], run.lines[run.Len()-1]
				first, last := -1, -1
				span.qspan.Range(func(i int) bool {
					if first < 0 {
						first = i
					}
					last = i
					return true
				})
				if first >= 0 {
					startLine, endLine = run.lines[first], run.lines[last]
				}

				out = append(out, &LicenseMatch{
					RuleID:      c.rid,
					QSpan:       qspan,
					ISpan:       span.ispan,
					HiSpan:      hispan,
					Coverage:    coverage,
					Score:       score,
					StartLine:   startLine,
					EndLine:     endLine,
					MatcherKind: MatcherApprox,
				})

				run.subtract(span.qspan)
				t.logf(phaseAlign, rule.Identifier, "approx hit coverage=%.1f score=%.1f", coverage, score)
				progressed = true
				break
			}

			if !progressed {
				break
			}
		}
	}
	return out
}
