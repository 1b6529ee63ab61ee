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
	"sort"

	"github.com/licensematch/lidx/internal/bitset"
)

// refineMatches implements component C10: dedupe, merge adjacent same-rule
// matches, drop false positives, resolve overlaps by keeping the highest
// scorer, drop anything under MinScore, and sort into final order (spec
// §4.8, invariants P7-P9).
func refineMatches(idx *Index, q *Query, matches []*LicenseMatch, qopts QueryOptions) Matches {
	matches = dedupeMatches(matches)
	matches = mergeAdjacentSameRule(matches, idx.opts.MaxDist)
	if qopts.DropFalsePositives {
		matches = dropFalsePositives(idx, q, matches)
	}
	matches = resolveOverlaps(matches)
	matches = filterMinScore(matches, qopts.MinScore)

	out := Matches(matches)
	sort.Sort(out)
	return out
}

// dedupeMatches drops exact duplicates: same rule, same query span.
func dedupeMatches(in []*LicenseMatch) []*LicenseMatch {
	type key struct {
		rid RuleID
		lo  int
		hi  int
	}
	seen := make(map[key]bool, len(in))
	out := make([]*LicenseMatch, 0, len(in))
	for _, m := range in {
		lo, hi := spanBounds(m.QSpan)
		k := key{m.RuleID, lo, hi}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}

func spanBounds(s *bitset.Set) (lo, hi int) {
	lo, hi = -1, -1
	s.Range(func(i int) bool {
		if lo < 0 {
			lo = i
		}
		hi = i
		return true
	})
	return lo, hi
}

// mergeAdjacentSameRule merges two matches of the same rule whose query
// spans are within maxDist/2 tokens of each other, a side effect of S4
// sometimes aligning one rule's text in two separate passes over a run
// (spec §4.8 step 3).
func mergeAdjacentSameRule(in []*LicenseMatch, maxDist int) []*LicenseMatch {
	gap := maxDist/2 + 1
	if gap <= 0 {
		gap = 1
	}

	byRule := make(map[RuleID][]*LicenseMatch)
	var order []RuleID
	for _, m := range in {
		if _, ok := byRule[m.RuleID]; !ok {
			order = append(order, m.RuleID)
		}
		byRule[m.RuleID] = append(byRule[m.RuleID], m)
	}

	var out []*LicenseMatch
	for _, rid := range order {
		group := byRule[rid]
		sort.Slice(group, func(i, j int) bool {
			loI, _ := spanBounds(group[i].QSpan)
			loJ, _ := spanBounds(group[j].QSpan)
			return loI < loJ
		})

		merged := group[0]
		for _, next := range group[1:] {
			_, hiM := spanBounds(merged.QSpan)
			loN, _ := spanBounds(next.QSpan)
			if loN-hiM <= gap {
				merged = combineMatches(merged, next)
				continue
			}
			out = append(out, merged)
			merged = next
		}
		out = append(out, merged)
	}
	return out
}

func combineMatches(a, b *LicenseMatch) *LicenseMatch {
	qspan := a.QSpan.Clone()
	qspan.Union(b.QSpan)
	ispan := a.ISpan.Clone()
	ispan.Union(b.ISpan)
	hispan := a.HiSpan.Clone()
	hispan.Union(b.HiSpan)

	coverage := a.Coverage
	score := a.Score
	if b.Coverage > coverage {
		coverage = b.Coverage
	}
	if b.Score > score {
		score = b.Score
	}

	start, end := a.StartLine, a.EndLine
	if b.StartLine < start {
		start = b.StartLine
	}
	if b.EndLine > end {
		end = b.EndLine
	}

	return &LicenseMatch{
		RuleID:      a.RuleID,
		QSpan:       qspan,
		ISpan:       ispan,
		HiSpan:      hispan,
		Coverage:    coverage,
		Score:       score,
		StartLine:   start,
		EndLine:     end,
		MatcherKind: a.MatcherKind,
	}
}

// dropFalsePositives removes any match whose query span is fully contained
// within a false-positive rule hit over the raw (unsubtracted) query token
// stream (spec §4.8 step 2, supplemented feature 4 from original_source).
func dropFalsePositives(idx *Index, q *Query, in []*LicenseMatch) []*LicenseMatch {
	if idx.auto.falsePositive.NumNodes() <= 1 {
		return in
	}

	ids := make([]TokenID, len(q.Tokens))
	for i, t := range q.Tokens {
		ids[i] = t.ID
	}
	hits := idx.auto.falsePositive.Search(tokenSymbols(ids))
	if len(hits) == 0 {
		return in
	}

	fp := bitset.New(len(ids))
	for _, h := range hits {
		rid := RuleID(h.Pattern)
		start := h.End - len(idx.rules[rid].TokenIDs)
		if start < 0 {
			continue
		}
		for p := start; p < h.End; p++ {
			fp.Set(p)
		}
	}

	out := make([]*LicenseMatch, 0, len(in))
	for _, m := range in {
		if containedIn(m.QSpan, fp) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func containedIn(span, mask *bitset.Set) bool {
	contained := true
	span.Range(func(i int) bool {
		if !mask.Test(i) {
			contained = false
			return false
		}
		return true
	})
	return contained && !span.IsEmpty()
}

// resolveOverlaps keeps, among a set of matches whose query spans overlap,
// only the one with the best score (ties: coverage, then span length, then
// rid), per invariant P7.
func resolveOverlaps(in []*LicenseMatch) []*LicenseMatch {
	sort.SliceStable(in, func(i, j int) bool {
		a, b := in[i], in[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Coverage != b.Coverage {
			return a.Coverage > b.Coverage
		}
		if la, lb := qspanSize(a), qspanSize(b); la != lb {
			return la > lb
		}
		return a.RuleID < b.RuleID
	})

	var kept []*LicenseMatch
	var claimed *bitset.Set
	for _, m := range in {
		if claimed == nil {
			claimed = bitset.New(0)
		}
		if m.QSpan.Intersects(claimed) {
			continue
		}
		kept = append(kept, m)
		claimed.Union(m.QSpan)
	}
	return kept
}

func filterMinScore(in []*LicenseMatch, minScore float64) []*LicenseMatch {
	if minScore <= 0 {
		return in
	}
	out := make([]*LicenseMatch, 0, len(in))
	for _, m := range in {
		if m.Score >= minScore {
			out = append(out, m)
		}
	}
	return out
}
