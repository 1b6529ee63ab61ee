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

// postingsIndex is the per-rule inverted index described in spec §3/§4.2:
// for each regular, approx-matchable rule, a sparse map of high-token-id
// (tid >= lenJunk) to its sorted positions within that rule.
type postingsIndex struct {
	byRule map[RuleID]map[TokenID][]uint16
}

func newPostingsIndex() *postingsIndex {
	return &postingsIndex{byRule: make(map[RuleID]map[TokenID][]uint16)}
}

// build populates the postings for rule rid from its final token-id
// sequence, recording only high-token positions (tid >= lenJunk), per
// spec §4.2.
func (p *postingsIndex) build(rid RuleID, ids []TokenID, lenJunk int) {
	m := make(map[TokenID][]uint16)
	for pos, id := range ids {
		if int(id) < lenJunk {
			continue
		}
		m[id] = append(m[id], uint16(pos))
	}
	if len(m) > 0 {
		p.byRule[rid] = m
	}
}

// positions returns the sorted positions of tid within rule rid, or nil.
func (p *postingsIndex) positions(rid RuleID, tid TokenID) []uint16 {
	m, ok := p.byRule[rid]
	if !ok {
		return nil
	}
	return m[tid] // already sorted: positions are appended in ascending order
}

