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

// runHashStrategy implements S1: hash the full query token sequence
// (gap tokens included) with the same digest rules use, and on a hit
// against a regular rule return a single perfect match (spec §4.5 S1).
func runHashStrategy(idx *Index, q *Query) *LicenseMatch {
	if len(q.Tokens) == 0 {
		return nil
	}
	ids := make([]TokenID, len(q.Tokens))
	for i, t := range q.Tokens {
		ids[i] = t.ID
	}
	digest := hashTokens(ids)
	rid, ok := idx.hashes.lookup(digest)
	if !ok || !idx.class.regular.contains(rid) {
		return nil
	}
	rule := idx.rules[rid]

	qspan := bitset.New(len(q.Tokens))
	ispan := bitset.New(rule.Length)
	hispan := bitset.New(rule.Length)
	for i := 0; i < len(q.Tokens); i++ {
		qspan.Set(i)
	}
	for i := range rule.TokenIDs {
		ispan.Set(i)
		if int(rule.TokenIDs[i]) >= idx.dict.lenJunk {
			hispan.Set(i)
		}
	}

	return &LicenseMatch{
		RuleID:      rid,
		QSpan:       qspan,
		ISpan:       ispan,
		HiSpan:      hispan,
		Coverage:    100,
		Score:       rule.Relevance,
		StartLine:   q.Tokens[0].Line,
		EndLine:     q.Tokens[len(q.Tokens)-1].Line,
		MatcherKind: MatcherHash,
	}
}
