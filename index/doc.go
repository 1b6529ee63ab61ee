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

// Package index builds a multi-strategy license-text index and matches
// documents against it. A Builder accepts a corpus of rules (license and
// license-fragment texts plus their negative/false-positive counterparts),
// tokenizes and interns them into a shared dictionary, and Build freezes the
// result into an immutable Index safe for concurrent read-only queries.
//
// Index.Match runs an input document through five strategies in order -
// negative-rule subtraction, whole-document hash match, SPDX-identifier
// match, exact Aho-Corasick match, and approximate candidate-ranked
// alignment - over a shared "remaining matchable region" per contiguous
// query run, then refines the combined hits into a final ranked match list.
//
// Loading rules from disk, copyright/attribution extraction, package
// manifest parsing, and license-expression algebra are all external
// collaborators: this package only accepts already-extracted rule text and
// opaque expression strings, and exposes extension points (RuleProvider,
// ExpressionParser) for callers that implement those concerns.
package index
