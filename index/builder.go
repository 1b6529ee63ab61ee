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
	"fmt"
	"strings"

	"github.com/licensematch/lidx/internal/bitset"
)

// Builder accumulates a rule corpus and produces an immutable Index via
// Build. This models spec §9's "mutable build / immutable read" split: a
// Builder is the only place rule structures are mutated; Build performs an
// explicit freeze.
type Builder struct {
	dict  *dictionary
	rules []*Rule

	// neverJunk holds the sole token id of every rule whose provisional
	// token count is 1 (invariant 4), collected before renumbering.
	neverJunk map[TokenID]bool

	err error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{dict: newDictionary(), neverJunk: make(map[TokenID]bool)}
}

// AddRule tokenizes and interns one rule's text into the builder's
// dictionary, assigning it rid = current rule count (rules are rid'd in
// insertion order, per spec §6 "the index assigns rid by position").
func (b *Builder) AddRule(in RuleInput) error {
	if b.err != nil {
		return b.err
	}

	toks := in.Tokens
	if toks == nil {
		toks = TokenizeString(in.Text)
	}

	ids := make([]TokenID, 0, len(toks))
	digits := bitset.New(len(toks))
	for i, t := range toks {
		id, err := b.dict.intern(t.Text)
		if err != nil {
			b.err = err
			return err
		}
		ids = append(ids, id)
		if t.IsDigit {
			digits.Set(i)
		}
	}

	if len(ids) > 1<<16-1 {
		b.err = newBuildError(ErrRuleTooLong.(*kindError), "", []string{in.Identifier})
		return b.err
	}

	rid := RuleID(len(b.rules))
	r := &Rule{
		RID:               rid,
		Identifier:        in.Identifier,
		LicenseExpression: in.LicenseExpression,
		IsNegative:        in.IsNegative,
		IsFalsePositive:   in.IsFalsePositive,
		MinimumCoverage:   in.MinimumCoverage,
		Relevance:         in.Relevance,
		TokenIDs:          ids,
		DigitPositions:    digits,
	}
	if len(ids) == 1 {
		b.neverJunk[ids[0]] = true
	}
	b.rules = append(b.rules, r)
	return nil
}

// Build renumbers the dictionary, derives every per-rule structure, and
// freezes the result into an Index. commonTokens must be ranked
// most-common-first (spec §6); spdxKeys and opts may be zero-valued.
func (b *Builder) Build(commonTokens []string, spdxKeys map[string]bool, opts Options) (*Index, error) {
	if b.err != nil {
		return nil, b.err
	}

	permutation, err := b.dict.renumber(commonTokens, spdxKeys, b.neverJunk)
	if err != nil {
		return nil, err
	}
	for _, r := range b.rules {
		remapIDs(r.TokenIDs, permutation)
	}

	return assembleIndex(b.dict, b.rules, opts)
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Index is the immutable, built license index (spec §3 "the index is
// write-once"). It is safe for concurrent read-only use by multiple
// queries (spec §5).
type Index struct {
	dict     *dictionary
	rules    []*Rule
	class    *classification
	postings *postingsIndex
	sets     map[RuleID]*ruleSets
	hashes   *hashIndex
	auto     *automatons
	opts     Options
	frozen   bool
}

// Rule returns the rule registered at rid.
func (idx *Index) Rule(rid RuleID) *Rule { return idx.rules[rid] }

// NumRules returns the total number of indexed rules (every class).
func (idx *Index) NumRules() int { return len(idx.rules) }

func (idx *Index) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Index{rules=%d, tokens=%d, junk=%d}", len(idx.rules), idx.dict.size(), idx.dict.lenJunk)
	return b.String()
}
