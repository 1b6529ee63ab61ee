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

// scoreAlignment computes coverage/score for an aligned span against rule
// r, and derives hispan (the high-token subset of ispan), per spec §4.7:
// coverage = |ispan|/length * 100 (digit-only rule positions excluded from
// the numerator), score = coverage * relevance / 100.
func scoreAlignment(r *Rule, span *alignedSpan, lenJunk int) (coverage, score float64, hispan *bitset.Set) {
	if r.Length == 0 {
		return 0, 0, bitset.New(0)
	}

	counted := 0
	hispan = bitset.New(len(r.TokenIDs))
	span.ispan.Range(func(pos int) bool {
		if r.DigitPositions != nil && r.DigitPositions.Test(pos) {
			return true
		}
		counted++
		if int(r.TokenIDs[pos]) >= lenJunk {
			hispan.Set(pos)
		}
		return true
	})

	coverage = float64(counted) / float64(r.Length) * 100
	score = coverage * r.Relevance / 100
	return coverage, score, hispan
}
