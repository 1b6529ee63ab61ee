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

// RuleInput is one record from the external Rule Provider (spec §6). The
// provider is an ordered iterable; rid is assigned by position in that
// order.
type RuleInput struct {
	// Identifier is the rule's stable name, e.g. "apache-2.0" or
	// "mit.header.txt".
	Identifier string
	// LicenseExpression is the stored license expression string
	// associated with this rule (opaque to the core; expression algebra
	// is an external collaborator per §1).
	LicenseExpression string
	// Text is the rule's source text. Tokens is an alternative to Text
	// for callers that pre-tokenize; if Tokens is non-nil, Text is
	// ignored.
	Text   string
	Tokens []Token

	IsNegative      bool
	IsFalsePositive bool

	// MinimumCoverage and Relevance are percentages in [0, 100].
	MinimumCoverage float64
	Relevance       float64
}

// RuleProvider supplies the ordered rule corpus a Builder indexes. Loading
// rules from disk, extracting copyright/attribution text, and parsing
// package manifests are all external to the core (spec §1) and live behind
// whatever concrete RuleProvider a caller supplies.
type RuleProvider interface {
	// Rules returns the full ordered rule corpus. Implementations may
	// read from disk, embed data, or generate rules in memory.
	Rules() ([]RuleInput, error)
}

// RuleProviderFunc adapts a plain function to a RuleProvider.
type RuleProviderFunc func() ([]RuleInput, error)

// Rules implements RuleProvider.
func (f RuleProviderFunc) Rules() ([]RuleInput, error) { return f() }

// SliceRuleProvider is a RuleProvider over an in-memory slice, useful for
// tests and for callers that have already materialized their corpus.
type SliceRuleProvider []RuleInput

// Rules implements RuleProvider.
func (s SliceRuleProvider) Rules() ([]RuleInput, error) { return []RuleInput(s), nil }

// CommonTokensProvider supplies the ranked list of common-English tokens
// (most common first) used to seed the junk/good partition (spec §4.1,
// §6).
type CommonTokensProvider interface {
	CommonTokens() ([]string, error)
}

// StaticCommonTokens adapts a plain slice to a CommonTokensProvider.
type StaticCommonTokens []string

// CommonTokens implements CommonTokensProvider.
func (s StaticCommonTokens) CommonTokens() ([]string, error) { return []string(s), nil }

// SPDXKeyProvider supplies tokens known to appear only in SPDX license
// identifiers, so they're preferentially marked junk (spec §6).
type SPDXKeyProvider interface {
	SPDXKeys() (map[string]bool, error)
}

// StaticSPDXKeys adapts a plain slice to an SPDXKeyProvider.
type StaticSPDXKeys []string

// SPDXKeys implements SPDXKeyProvider.
func (s StaticSPDXKeys) SPDXKeys() (map[string]bool, error) {
	m := make(map[string]bool, len(s))
	for _, k := range s {
		m[k] = true
	}
	return m, nil
}

// ExpressionParser resolves an SPDX-identifier line's raw text into a
// normalized license expression string. License-expression parsing and
// symbol algebra are external collaborators (spec §1); the default parser
// here is the identity function over the trimmed SPDX tag value.
type ExpressionParser func(raw string) (expression string, ok bool)
