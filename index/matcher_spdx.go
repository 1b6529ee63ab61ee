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

// runSPDXStrategy implements S2: for every "SPDX-License-Identifier:" line
// the query carries, resolve its raw expression text through parse and
// look it up against every regular rule's stored license expression,
// producing a full-confidence match anchored at that one line (spec §4.5
// S2). parse is the external expression-parsing collaborator (spec §1);
// when nil, the raw trimmed tag value is compared directly.
func runSPDXStrategy(idx *Index, q *Query, parse ExpressionParser) []*LicenseMatch {
	if len(q.SPDXRuns) == 0 {
		return nil
	}

	var out []*LicenseMatch
	for _, run := range q.SPDXRuns {
		expr := run.RawExpr
		if parse != nil {
			got, ok := parse(run.RawExpr)
			if !ok {
				continue
			}
			expr = got
		}
		if expr == "" {
			continue
		}

		idx.class.regular.each(func(rid RuleID) {
			rule := idx.rules[rid]
			if rule.LicenseExpression == "" || rule.LicenseExpression != expr {
				return
			}
			out = append(out, &LicenseMatch{
				RuleID:      rid,
				QSpan:       bitset.New(0),
				ISpan:       bitset.New(0),
				HiSpan:      bitset.New(0),
				Coverage:    100,
				Score:       rule.Relevance,
				StartLine:   run.Line,
				EndLine:     run.Line,
				MatcherKind: MatcherSPDX,
			})
		})
	}
	return out
}
