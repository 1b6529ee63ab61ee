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
	"math"
	"sort"
)

// candidate is a ranked approx-matchable rule proposed for alignment
// against a query run (spec §4.6).
type candidate struct {
	rid         RuleID
	containment float64
	resemblance float64
}

// rankCandidates implements spec §4.6: for every approx-matchable rule not
// already excluded, gate by minimum-coverage feasibility, rank survivors by
// multiset containment (ties: set resemblance, then rid), and return the
// top MaxCandidates.
func rankCandidates(idx *Index, run *querySets, exclude *ridSet, opts Options) []candidate {
	maxCandidates := opts.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = defaultMaxCandidates
	}

	var out []candidate
	idx.class.approxMatchable.each(func(rid RuleID) {
		if exclude != nil && exclude.contains(rid) {
			return
		}
		rs := idx.sets[rid]
		if rs == nil {
			return
		}
		r := idx.rules[rid]

		ruleHighSet := rs.highSet(idx.dict.lenJunk)
		need := int(math.Ceil(r.MinimumCoverage / 100 * float64(r.HighLengthUnique)))
		if highIntersectionCount(run, ruleHighSet) < need {
			return
		}

		ruleHighMulti := rs.highMultiset(idx.dict.lenJunk)
		out = append(out, candidate{
			rid:         rid,
			containment: multisetContainment(run.multiset, ruleHighMulti),
			resemblance: jaccard(run, ruleHighSet),
		})
	})

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.containment != b.containment {
			return a.containment > b.containment
		}
		if a.resemblance != b.resemblance {
			return a.resemblance > b.resemblance
		}
		return a.rid < b.rid
	})

	if len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out
}
