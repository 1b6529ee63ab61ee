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
	"errors"
	"testing"
)

func newTestIndex(t *testing.T, rules []RuleInput) *Index {
	t.Helper()
	b := NewBuilder()
	for _, r := range rules {
		if err := b.AddRule(r); err != nil {
			t.Fatalf("AddRule(%s): %v", r.Identifier, err)
		}
	}
	idx, err := b.Build(nil, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return idx
}

func TestBuildRejectsDuplicateRules(t *testing.T) {
	b := NewBuilder()
	if err := b.AddRule(RuleInput{Identifier: "a", Text: "do not redistribute this software"}); err != nil {
		t.Fatal(err)
	}
	if err := b.AddRule(RuleInput{Identifier: "b", Text: "do not redistribute this software"}); err != nil {
		t.Fatal(err)
	}
	_, err := b.Build(nil, nil, DefaultOptions())
	if err == nil {
		t.Fatal("expected duplicate-rule build error")
	}
	if !errors.Is(err, ErrDuplicateRule) {
		t.Fatalf("expected errors.Is(err, ErrDuplicateRule), got %v", err)
	}
}

func TestAddRuleAfterInternErrorStaysPoisoned(t *testing.T) {
	b := NewBuilder()
	b.err = newBuildError(ErrTokenLimitExceeded.(*kindError), "forced for test", nil)
	if err := b.AddRule(RuleInput{Identifier: "c", Text: "anything"}); err == nil {
		t.Fatalf("AddRule on an already-errored builder should return the stored error")
	}
}

func TestIndexNumRules(t *testing.T) {
	idx := newTestIndex(t, []RuleInput{
		{Identifier: "mit", Text: "permission is hereby granted free of charge", Relevance: 100, MinimumCoverage: 80},
	})
	if idx.NumRules() != 1 {
		t.Fatalf("expected 1 rule, got %d", idx.NumRules())
	}
}
