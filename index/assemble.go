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

// assembleIndex derives every per-rule structure (classification, content
// hash, postings, sets, automatons) from rules whose TokenIDs are already
// in final (post-renumber) id space, and freezes the result into an Index.
// Shared by Builder.Build (fresh corpus) and persist's Load (deserialized
// corpus), since both start from the same post-renumber shape.
func assembleIndex(dict *dictionary, rules []*Rule, opts Options) (*Index, error) {
	lenJunk := dict.lenJunk

	class := newClassification()
	hashes := newHashIndex()
	postings := newPostingsIndex()
	sets := make(map[RuleID]*ruleSets)

	var duplicates []string
	for _, r := range rules {
		computeDerivedFields(r, lenJunk)
		class.classify(r)

		r.ContentHash = hashTokens(r.TokenIDs)
		if existing, dup := hashes.insert(r.ContentHash, r.RID); dup {
			duplicates = append(duplicates, r.Identifier, rules[existing].Identifier)
			continue
		}

		if !r.IsFalsePositive && !r.IsNegative && r.IsApproxMatchable {
			postings.build(r.RID, r.TokenIDs, lenJunk)
			sets[r.RID] = buildRuleSets(r.TokenIDs)
		}
	}

	if len(duplicates) > 0 {
		return nil, newBuildError(ErrDuplicateRule.(*kindError), "", dedupeStrings(duplicates))
	}

	auto := buildAutomatons(rules, opts)

	return &Index{
		dict:     dict,
		rules:    rules,
		class:    class,
		postings: postings,
		sets:     sets,
		hashes:   hashes,
		auto:     auto,
		opts:     opts,
		frozen:   true,
	}, nil
}
