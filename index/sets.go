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

// ruleSets holds the per-rule token set and token multiset (component
// C5), computed once from a rule's full token-id sequence. High-token
// subsets are derived on demand rather than stored a second time -
// spec §9 design note (c) prefers this to save memory.
type ruleSets struct {
	set      *bitset.Set    // presence, indexed by TokenID
	multiset map[TokenID]int // occurrence count
}

func buildRuleSets(ids []TokenID) *ruleSets {
	rs := &ruleSets{set: bitset.New(0), multiset: make(map[TokenID]int)}
	for _, id := range ids {
		rs.set.Set(int(id))
		rs.multiset[id]++
	}
	return rs
}

// highMultiset returns the subset of the multiset restricted to tokens
// with id >= lenJunk (the "good" half).
func (rs *ruleSets) highMultiset(lenJunk int) map[TokenID]int {
	out := make(map[TokenID]int)
	for id, n := range rs.multiset {
		if int(id) >= lenJunk {
			out[id] = n
		}
	}
	return out
}

// highSet returns the bitset of token ids with id >= lenJunk, derived on
// demand from the stored multiset (see the type doc comment).
func (rs *ruleSets) highSet(lenJunk int) *bitset.Set {
	hs := bitset.New(lenJunk)
	for id := range rs.multiset {
		if int(id) >= lenJunk {
			hs.Set(int(id))
		}
	}
	return hs
}

// highSetSize returns |set ∩ good|, i.e. high_length_unique.
func (rs *ruleSets) highSetSize(lenJunk int) int {
	n := 0
	for id := range rs.multiset {
		if int(id) >= lenJunk {
			n++
		}
	}
	return n
}

// querySets is the same structure computed over a query run's token
// stream, restricted up front to high tokens only (runs never need the
// low half for candidate ranking).
type querySets struct {
	set      *bitset.Set
	multiset map[TokenID]int
}

// buildRunHighSets restricts a run's high-token set/multiset to its
// currently matchable positions, so candidate ranking (spec §4.6) never
// scores a rule against tokens a prior strategy already consumed.
func buildRunHighSets(run *QueryRun, lenJunk int) *querySets {
	qs := &querySets{set: bitset.New(0), multiset: make(map[TokenID]int)}
	run.matchable.Range(func(i int) bool {
		id := run.ids[i]
		if id < 0 || int(id) < lenJunk {
			return true
		}
		qs.set.Set(int(id))
		qs.multiset[id]++
		return true
	})
	return qs
}

// jaccard computes the set resemblance |Q ∩ R| / |Q ∪ R| between a query
// run's high-token set and a rule's high-token set (spec §4.6).
func jaccard(q *querySets, ruleHighSet *bitset.Set) float64 {
	inter := q.set.IntersectCount(ruleHighSet)
	union := q.set.Count() + ruleHighSet.Count() - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// multisetContainment computes Σ min(q_i, r_i) / Σ r_i over high-token
// counts (spec §4.6).
func multisetContainment(q map[TokenID]int, ruleHigh map[TokenID]int) float64 {
	var num, den float64
	for id, rc := range ruleHigh {
		den += float64(rc)
		if qc, ok := q[id]; ok {
			if qc < rc {
				num += float64(qc)
			} else {
				num += float64(rc)
			}
		}
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// highIntersectionCount returns |Q_high ∩ R_high| used by the coverage
// gate in spec §4.6.
func highIntersectionCount(q *querySets, ruleHighSet *bitset.Set) int {
	return q.set.IntersectCount(ruleHighSet)
}
