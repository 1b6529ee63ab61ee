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

import "github.com/licensematch/lidx/internal/automaton"

// automatons bundles the three Aho-Corasick machines component C7
// describes - every non-negative, non-false-positive rule (exact substring
// detection), the negative rules (noise subtraction), and an optional
// n-gram fragment machine gated by Options.EnableFragmentsAutomaton - plus
// a fourth over the false-positive rules, used only to filter matches in
// refine.
type automatons struct {
	all           *automaton.Automaton
	negative      *automaton.Automaton
	falsePositive *automaton.Automaton
	fragments     *automaton.Automaton // nil unless enabled
}

func tokenSymbols(ids []TokenID) []automaton.Symbol {
	out := make([]automaton.Symbol, len(ids))
	for i, id := range ids {
		out[i] = automaton.Symbol(id)
	}
	return out
}

// buildAutomatons constructs all, negative and falsePositive from the rule
// table, and the fragments automaton when enabled, sampling overlapping n-grams from each
// approx-matchable rule's token sequence (spec §4.2).
func buildAutomatons(rules []*Rule, opts Options) *automatons {
	allBuilder := automaton.NewBuilder()
	negBuilder := automaton.NewBuilder()
	fpBuilder := automaton.NewBuilder()
	var fragBuilder *automaton.Builder
	if opts.EnableFragmentsAutomaton {
		fragBuilder = automaton.NewBuilder()
	}

	for _, r := range rules {
		switch {
		case r.IsFalsePositive:
			// False-positive rules never produce matches of their
			// own; their automaton only exists to cancel out real
			// matches it overlaps in refine (spec §4.2, supplemented
			// feature 4 from original_source).
			fpBuilder.Add(automaton.PatternID(r.RID), tokenSymbols(r.TokenIDs))
		case r.IsNegative:
			negBuilder.Add(automaton.PatternID(r.RID), tokenSymbols(r.TokenIDs))
		default:
			allBuilder.Add(automaton.PatternID(r.RID), tokenSymbols(r.TokenIDs))
			if fragBuilder != nil && r.IsApproxMatchable {
				addFragments(fragBuilder, r, opts.FragmentGranularity)
			}
		}
	}

	a := &automatons{all: allBuilder.Build(), negative: negBuilder.Build(), falsePositive: fpBuilder.Build()}
	if fragBuilder != nil {
		a.fragments = fragBuilder.Build()
	}
	return a
}

// addFragments samples overlapping n-grams of size g from r's token
// sequence into the fragments builder. Each fragment is keyed by the rule
// id; callers distinguish fragments only by "does this rule have a
// fragment here", consistent with the fragments path being an optional,
// partially-specified feature (spec §9 open question (a)).
func addFragments(b *automaton.Builder, r *Rule, g int) {
	if g <= 0 || len(r.TokenIDs) < g {
		return
	}
	for start := 0; start+g <= len(r.TokenIDs); start++ {
		b.Add(automaton.PatternID(r.RID), tokenSymbols(r.TokenIDs[start:start+g]))
	}
}
