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

// RuleID is a stable small integer assigned to a rule at build time, in
// corpus order (spec §3 "rid").
type RuleID int

// Rule is the immutable, derived record for one corpus entry after
// indexing (spec §3). TokenIDs use final (post-renumber) ids.
type Rule struct {
	RID                RuleID
	Identifier         string
	LicenseExpression  string
	IsNegative         bool
	IsFalsePositive    bool
	MinimumCoverage    float64
	Relevance          float64
	TokenIDs           []TokenID
	Length             int
	LengthUnique       int
	HighLength         int
	HighLengthUnique   int
	IsApproxMatchable  bool
	ContentHash        contentHash
	// DigitPositions marks token positions (not ids) whose source word
	// was all-digit; such positions never contribute to coverage (spec
	// §4.7, supplemented from original_source's "low token" handling).
	DigitPositions *bitset.Set
}

// contentHash is the 128-bit digest of a rule's (or a whole query's) final
// token-id sequence (spec §3 "Postings", §4.2).
type contentHash [2]uint64

// classification holds the disjoint and derived rid sets described in
// spec §3 "Rule classification": regular, negative, false_positive,
// approx_matchable (subset of regular), and weak = regular \ approx_matchable.
type classification struct {
	regular         *ridSet
	negative        *ridSet
	falsePositive   *ridSet
	approxMatchable *ridSet
	weak            *ridSet
}

func newClassification() *classification {
	return &classification{
		regular:         newRidSet(),
		negative:        newRidSet(),
		falsePositive:   newRidSet(),
		approxMatchable: newRidSet(),
		weak:            newRidSet(),
	}
}

// classify assigns rule r (whose TokenIDs and counts are already computed)
// into the classification sets.
func (c *classification) classify(r *Rule) {
	switch {
	case r.IsFalsePositive:
		c.falsePositive.add(r.RID)
	case r.IsNegative:
		c.negative.add(r.RID)
	default:
		c.regular.add(r.RID)
		if r.IsApproxMatchable {
			c.approxMatchable.add(r.RID)
		} else {
			c.weak.add(r.RID)
		}
	}
}

// computeDerivedFields fills in Length/LengthUnique/HighLength/
// HighLengthUnique/IsApproxMatchable from a rule's final token-id
// sequence and the junk/good boundary lenJunk (spec §3, §4.3).
func computeDerivedFields(r *Rule, lenJunk int) {
	r.Length = len(r.TokenIDs)
	for _, id := range r.TokenIDs {
		if int(id) >= lenJunk {
			r.HighLength++
		}
	}

	rs := buildRuleSets(r.TokenIDs)
	r.LengthUnique = len(rs.multiset)
	r.HighLengthUnique = rs.highSetSize(lenJunk)
	r.IsApproxMatchable = r.HighLength > 0
}
