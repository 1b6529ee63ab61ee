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
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestMatchWholeDocumentHash(t *testing.T) {
	text := "permission is hereby granted free of charge to any person"
	idx := newTestIndex(t, []RuleInput{
		{Identifier: "mit", Text: text, Relevance: 100, MinimumCoverage: 80},
	})

	matches, warnings := idx.Match(context.Background(), MatchInput{Text: text}, DefaultQueryOptions())
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", warnings)
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].MatcherKind != MatcherHash {
		t.Errorf("expected hash match, got %q", matches[0].MatcherKind)
	}
	if matches[0].Coverage != 100 {
		t.Errorf("expected full coverage, got %v", matches[0].Coverage)
	}
}

func TestMatchExactSubstring(t *testing.T) {
	ruleText := "licensed under the apache license version two"
	idx := newTestIndex(t, []RuleInput{
		{Identifier: "apache-2.0", Text: ruleText, Relevance: 100, MinimumCoverage: 80},
	})

	query := "before this text\n" + ruleText + "\nafter this text"
	matches, _ := idx.Match(context.Background(), MatchInput{Text: query}, DefaultQueryOptions())
	if len(matches) != 1 {
		t.Fatalf("expected exactly 1 match, got %d:\n%s", len(matches), spew.Sdump(matches))
	}
	if matches[0].MatcherKind != MatcherExact {
		t.Errorf("expected exact match, got %q", matches[0].MatcherKind)
	}
	if matches[0].Coverage != 100 {
		t.Errorf("expected full coverage for exact hit, got %v", matches[0].Coverage)
	}
}

func TestMatchSPDXExpression(t *testing.T) {
	idx := newTestIndex(t, []RuleInput{
		{Identifier: "apache-2.0", LicenseExpression: "Apache-2.0", Text: "apache license version two", Relevance: 100},
	})

	query := "// SPDX-License-Identifier: Apache-2.0\npackage main\n"
	matches, _ := idx.Match(context.Background(), MatchInput{Text: query}, DefaultQueryOptions())
	if len(matches) != 1 {
		t.Fatalf("expected exactly 1 spdx match, got %d: %+v", len(matches), matches)
	}
	if matches[0].MatcherKind != MatcherSPDX {
		t.Errorf("expected spdx match, got %q", matches[0].MatcherKind)
	}
}

func TestMatchEmptyDocumentIsNotAnError(t *testing.T) {
	idx := newTestIndex(t, []RuleInput{
		{Identifier: "mit", Text: "permission is hereby granted", Relevance: 100},
	})
	matches, warnings := idx.Match(context.Background(), MatchInput{Text: ""}, DefaultQueryOptions())
	if matches != nil || warnings != nil {
		t.Fatalf("expected nil/nil for an empty document, got matches=%v warnings=%v", matches, warnings)
	}
}

func TestMatchNegativeRuleSuppressesNoise(t *testing.T) {
	b := NewBuilder()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(b.AddRule(RuleInput{Identifier: "not-a-license", Text: "this file is not legal advice consult a lawyer", IsNegative: true}))
	must(b.AddRule(RuleInput{Identifier: "mit", Text: "permission is hereby granted free of charge", Relevance: 100, MinimumCoverage: 80}))
	idx, err := b.Build(nil, nil, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	query := "this file is not legal advice consult a lawyer"
	matches, _ := idx.Match(context.Background(), MatchInput{Text: query}, DefaultQueryOptions())
	for _, m := range matches {
		if idx.Rule(m.RuleID).Identifier == "mit" {
			t.Fatalf("did not expect the mit rule to match boilerplate covered by a negative rule")
		}
	}
}

func TestMatchContextCancellation(t *testing.T) {
	idx := newTestIndex(t, []RuleInput{
		{Identifier: "mit", Text: "permission is hereby granted", Relevance: 100},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	matches, warnings := idx.Match(ctx, MatchInput{Text: "permission is hereby granted"}, DefaultQueryOptions())
	if len(matches) != 0 {
		t.Fatalf("expected no matches once ctx is canceled, got %+v", matches)
	}
	if len(warnings) == 0 {
		t.Fatalf("expected a cancellation warning")
	}
}
