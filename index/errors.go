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

import "golang.org/x/xerrors"

// errorKind classifies a BuildError, per spec §7.
type errorKind int

const (
	kindDuplicateRule errorKind = iota
	kindTokenLimitExceeded
	kindIndexFrozen
	kindRuleTooLong
)

func (k errorKind) String() string {
	switch k {
	case kindDuplicateRule:
		return "DuplicateRule"
	case kindTokenLimitExceeded:
		return "TokenLimitExceeded"
	case kindIndexFrozen:
		return "IndexFrozen"
	case kindRuleTooLong:
		return "RuleTooLong"
	default:
		return "Unknown"
	}
}

// Sentinel causes a BuildError wraps, one per errorKind, so callers can
// branch with errors.Is/errors.As instead of string-matching Error()
// (spec §AMBIENT). Each is a distinct value: ErrDuplicateRule never
// equals ErrIndexFrozen even though both are *kindError under the hood.
var (
	// ErrDuplicateRule means two rules share an identical token sequence
	// (and therefore content hash); the build aborts and reports both
	// identifiers.
	ErrDuplicateRule error = &kindError{kind: kindDuplicateRule, text: "rules with identical token sequences"}
	// ErrTokenLimitExceeded means the corpus produced more than
	// MaxTokenID distinct tokens.
	ErrTokenLimitExceeded error = &kindError{kind: kindTokenLimitExceeded, text: "more than 32767 unique tokens"}
	// ErrIndexFrozen means a mutation was attempted on an already-built
	// (optimized) index or dictionary.
	ErrIndexFrozen error = &kindError{kind: kindIndexFrozen, text: "index is immutable after Build"}
	// ErrRuleTooLong means a rule's token sequence exceeds the 16-bit
	// position space postings rely on (spec §9, "ensure rules longer
	// than 65k tokens are rejected at build").
	ErrRuleTooLong error = &kindError{kind: kindRuleTooLong, text: "rule exceeds 65535 tokens"}
)

// kindError is the sentinel type behind Err*; BuildError wraps one of
// these as its cause so errors.Is(err, ErrDuplicateRule) works without
// BuildError itself needing an Is method.
type kindError struct {
	kind errorKind
	text string
}

func (e *kindError) Error() string { return e.text }

// BuildError is a fatal error raised while building an Index. Build errors
// always surface to the caller (spec §7 policy). Every BuildError wraps
// one of the package's sentinel Err* values as its cause, so callers can
// use errors.Is(err, ErrDuplicateRule) etc. rather than inspecting Kind.
type BuildError struct {
	Kind       errorKind
	Message    string
	Identifier []string // offending rule identifier(s), when applicable
	cause      error
}

// newBuildError constructs a BuildError wrapping cause, defaulting Message
// to cause's own text when the caller has nothing more specific to add.
func newBuildError(cause *kindError, message string, identifier []string) *BuildError {
	if message == "" {
		message = cause.text
	}
	return &BuildError{Kind: cause.kind, Message: message, Identifier: identifier, cause: cause}
}

func (e *BuildError) Error() string {
	if len(e.Identifier) > 0 {
		return xerrors.Errorf("%s: %s (%v): %w", e.Kind, e.Message, e.Identifier, e.cause).Error()
	}
	return xerrors.Errorf("%s: %s: %w", e.Kind, e.Message, e.cause).Error()
}

func (e *BuildError) Unwrap() error { return e.cause }

var errIndexFrozen = newBuildError(ErrIndexFrozen.(*kindError), "", nil)

// QueryError describes a query-side failure. No function in this package
// returns one: query construction cannot fail, and per spec §7
// QueryError::Empty is not a failure mode callers need to branch on: Match
// simply returns an empty result.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string { return "query error: " + e.Message }

// Warning is a non-fatal condition recorded during matching. Query-time
// internal failures never abort the pipeline (spec §7); they accumulate
// here instead.
type Warning struct {
	Phase   string
	Message string
}
