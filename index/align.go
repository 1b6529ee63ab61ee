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
	"github.com/sergi/go-diff/diffmatchpatch"
)

// seed is a (query, rule) position pair sharing a high token id (spec
// §4.7 step 1).
type seed struct{ q, r int }

// alignOnce runs one local sequence alignment of rule r against query run
// starting at local offset startOffset, per spec §4.7. It returns nil if
// no seed chain can be built from startOffset onward.
func alignOnce(r *Rule, postings *postingsIndex, run *QueryRun, startOffset int, lenJunk int, opts Options) *alignedSpan {
	maxDist := opts.MaxDist
	if maxDist <= 0 {
		maxDist = defaultMaxDist
	}

	seeds := collectSeeds(run, startOffset, postings, r.RID, lenJunk)
	if len(seeds) == 0 {
		return nil
	}

	chain := bestChain(seeds, maxDist)
	if len(chain) == 0 {
		return nil
	}

	return fillChain(r, run, chain, maxDist)
}

// collectSeeds builds the bipartite (q_pos, r_pos) seed list for every
// high-token occurrence in run at or after startOffset (spec §4.7 step 1).
// It consults the postings index one token id at a time via positions,
// rather than walking a rule's full postings map, so a run with few
// matchable high tokens only does lookups proportional to its own length.
func collectSeeds(run *QueryRun, startOffset int, postings *postingsIndex, rid RuleID, lenJunk int) []seed {
	var seeds []seed
	for qi := startOffset; qi < run.Len(); qi++ {
		if !run.matchable.Test(qi) {
			continue
		}
		id := run.ids[qi]
		if id < 0 || int(id) < lenJunk {
			continue
		}
		for _, rp := range postings.positions(rid, id) {
			seeds = append(seeds, seed{q: qi, r: int(rp)})
		}
	}
	sort.Slice(seeds, func(i, j int) bool {
		if seeds[i].q != seeds[j].q {
			return seeds[i].q < seeds[j].q
		}
		return seeds[i].r < seeds[j].r
	})
	return seeds
}

// bestChain selects the highest-weight monotone chain of seeds via dynamic
// programming (spec §4.7 steps 2-3): weight counts included high tokens
// and penalizes gaps.
func bestChain(seeds []seed, maxDist int) []seed {
	n := len(seeds)
	dp := make([]int, n)
	prev := make([]int, n)
	best, bestAt := 0, -1

	for i := 0; i < n; i++ {
		dp[i] = 1
		prev[i] = -1
		for j := 0; j < i; j++ {
			if !canExtend(seeds[j], seeds[i], maxDist) {
				continue
			}
			gap := gapPenalty(seeds[j], seeds[i])
			w := dp[j] + 1 - gap
			if w > dp[i] {
				dp[i] = w
				prev[i] = j
			}
		}
		if dp[i] > best {
			best = dp[i]
			bestAt = i
		}
	}
	if bestAt < 0 {
		return nil
	}

	var chain []seed
	for i := bestAt; i != -1; i = prev[i] {
		chain = append(chain, seeds[i])
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func canExtend(a, b seed, maxDist int) bool {
	if b.q <= a.q || b.r <= a.r {
		return false
	}
	dq, dr := b.q-a.q, b.r-a.r
	if dq > maxDist || dr > maxDist {
		return false
	}
	skew := dq - dr
	if skew < 0 {
		skew = -skew
	}
	return skew <= maxDist/2+1
}

func gapPenalty(a, b seed) int {
	dq := b.q - a.q - 1
	dr := b.r - a.r - 1
	gap := dq
	if dr > gap {
		gap = dr
	}
	if gap < 0 {
		gap = 0
	}
	return gap / 4
}

// alignedSpan is the result of filling a seed chain's gaps: the matched
// local query positions and rule positions.
type alignedSpan struct {
	qspan *bitset.Set // local run positions
	ispan *bitset.Set // rule positions
}

// fillChain walks the gaps between consecutive chain seeds, and the tail
// after the last seed, filling in additional matched token positions with
// a bounded diff rather than accepting only the seeds themselves (spec
// §4.7 step 4). Each rule/query token id is mapped to a rune so
// sergi/go-diff's DiffMain can find the equal runs inside each bounded
// window; DiffEqual runs become additional matched positions.
func fillChain(r *Rule, run *QueryRun, chain []seed, maxDist int) *alignedSpan {
	qspan := bitset.New(run.Len())
	ispan := bitset.New(len(r.TokenIDs))

	mark := func(q, rp int) {
		if !run.matchable.Test(q) {
			return
		}
		qspan.Set(q)
		ispan.Set(rp)
	}

	for _, s := range chain {
		mark(s.q, s.r)
	}

	skip := maxDist/2 + 1
	dmp := diffmatchpatch.New()

	fillGap := func(q1, r1, q2, r2 int) {
		qlo, qhi := q1+1, q2
		rlo, rhi := r1+1, r2
		if qhi <= qlo || rhi <= rlo {
			return
		}
		if qhi-qlo > 2*skip || rhi-rlo > 2*skip {
			// Gap too large to be a tolerated skip; leave
			// unmatched rather than risk a spurious alignment.
			return
		}
		qRunes := tokensToRunes(run.ids[qlo:qhi])
		rRunes := tokensToRunes(r.TokenIDs[rlo:rhi])
		diffs := dmp.DiffMain(string(qRunes), string(rRunes), false)

		qi, ri := qlo, rlo
		for _, d := range diffs {
			n := len([]rune(d.Text))
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				for k := 0; k < n; k++ {
					mark(qi+k, ri+k)
				}
				qi += n
				ri += n
			case diffmatchpatch.DiffDelete:
				qi += n
			case diffmatchpatch.DiffInsert:
				ri += n
			}
		}
	}

	for i := 1; i < len(chain); i++ {
		fillGap(chain[i-1].q, chain[i-1].r, chain[i].q, chain[i].r)
	}

	// Tail: extend a short distance past the last seed if the tokens
	// keep matching exactly, capturing a trailing partial match.
	last := chain[len(chain)-1]
	qi, ri := last.q+1, last.r+1
	for qi < run.Len() && ri < len(r.TokenIDs) && qi-last.q <= skip {
		if !run.matchable.Test(qi) || run.ids[qi] != r.TokenIDs[ri] {
			break
		}
		mark(qi, ri)
		qi++
		ri++
	}

	return &alignedSpan{qspan: qspan, ispan: ispan}
}

// tokensToRunes renders a token-id slice as a rune string so it can be fed
// to a text-diff algorithm; unknown (negative) ids map to a rune outside
// any valid TokenID range so they never spuriously equal a real token.
func tokensToRunes(ids []TokenID) []rune {
	out := make([]rune, len(ids))
	for i, id := range ids {
		if id < 0 {
			out[i] = 0xFFFF
			continue
		}
		out[i] = rune(id) + 1
	}
	return out
}
