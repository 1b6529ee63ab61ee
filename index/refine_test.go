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
	"testing"

	"github.com/licensematch/lidx/internal/bitset"
)

func spanOf(positions ...int) *bitset.Set {
	s := bitset.New(0)
	for _, p := range positions {
		s.Set(p)
	}
	return s
}

func TestResolveOverlapsKeepsHigherScore(t *testing.T) {
	low := &LicenseMatch{RuleID: 1, QSpan: spanOf(0, 1, 2), Score: 50, Coverage: 50}
	high := &LicenseMatch{RuleID: 2, QSpan: spanOf(1, 2, 3), Score: 90, Coverage: 90}

	kept := resolveOverlaps([]*LicenseMatch{low, high})
	if len(kept) != 1 || kept[0] != high {
		t.Fatalf("expected only the higher-scoring overlapping match to survive, got %+v", kept)
	}
}

func TestResolveOverlapsKeepsDisjoint(t *testing.T) {
	a := &LicenseMatch{RuleID: 1, QSpan: spanOf(0, 1), Score: 50}
	b := &LicenseMatch{RuleID: 2, QSpan: spanOf(10, 11), Score: 40}

	kept := resolveOverlaps([]*LicenseMatch{a, b})
	if len(kept) != 2 {
		t.Fatalf("expected both disjoint matches to survive, got %+v", kept)
	}
}

func TestDedupeMatchesDropsExactRepeat(t *testing.T) {
	a := &LicenseMatch{RuleID: 1, QSpan: spanOf(0, 1, 2)}
	b := &LicenseMatch{RuleID: 1, QSpan: spanOf(0, 1, 2)}
	out := dedupeMatches([]*LicenseMatch{a, b})
	if len(out) != 1 {
		t.Fatalf("expected dedupe to collapse to 1 match, got %d", len(out))
	}
}

func TestFilterMinScoreDrops(t *testing.T) {
	in := []*LicenseMatch{{Score: 40}, {Score: 90}}
	out := filterMinScore(in, 50)
	if len(out) != 1 || out[0].Score != 90 {
		t.Fatalf("expected only the 90-score match to survive, got %+v", out)
	}
}

func TestMatchesSortOrder(t *testing.T) {
	m := Matches{
		{StartLine: 5, EndLine: 6, Score: 10, RuleID: 1},
		{StartLine: 1, EndLine: 2, Score: 90, RuleID: 2},
		{StartLine: 1, EndLine: 2, Score: 95, RuleID: 3},
	}
	if m.Less(2, 1) != true {
		t.Fatalf("expected higher score to sort first among equal lines")
	}
	if !m.Less(1, 0) {
		t.Fatalf("expected earlier start line to sort first")
	}
}
