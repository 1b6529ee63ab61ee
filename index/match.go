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

// Matcher kind tags (spec §6 "Match Output").
const (
	MatcherHash  = "hash"
	MatcherSPDX  = "spdx"
	MatcherExact = "aho"
	MatcherApprox = "seq"
)

// LicenseMatch is one detected instance of a rule in the query (spec §3
// "LicenseMatch"). QSpan/ISpan/HiSpan are sparse position sets: QSpan and
// ISpan into the query and the rule respectively, HiSpan restricting ISpan
// to high (non-junk) tokens.
type LicenseMatch struct {
	RuleID  RuleID
	QSpan   *bitset.Set
	ISpan   *bitset.Set
	HiSpan  *bitset.Set
	Coverage   float64 // percent
	Score      float64 // percent
	StartLine  int
	EndLine    int
	MatcherKind string
}

// Matches is a sortable list of LicenseMatch, ordered per spec §4.8 step 6
// and invariant P8: (start line, end line, score desc, rule id).
type Matches []*LicenseMatch

func (m Matches) Len() int      { return len(m) }
func (m Matches) Swap(i, j int) { m[i], m[j] = m[j], m[i] }
func (m Matches) Less(i, j int) bool {
	a, b := m[i], m[j]
	if a.StartLine != b.StartLine {
		return a.StartLine < b.StartLine
	}
	if a.EndLine != b.EndLine {
		return a.EndLine < b.EndLine
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.RuleID < b.RuleID
}

// qspanSize, for matches built from a contiguous local run offset, gives
// the number of query positions covered.
func qspanSize(m *LicenseMatch) int {
	if m.QSpan == nil {
		return 0
	}
	return m.QSpan.Count()
}
