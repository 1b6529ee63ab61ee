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

import "fmt"

// This file carries over the teacher's trace-execution mechanism
// (v2/trace.go): a cheap, flag-free toggle checked on the hot path. Each
// Match call builds its own tracer from MatchInput.Trace and passes it to
// the strategies that log; there is no package-level trace state. Generalized
// from license-name keys to rule-id keys, since the core here runs before
// any license-expression naming exists (spec §1 scopes expression parsing
// out as an external collaborator).

// TraceConfiguration enables verbose tracing of specific rules and pipeline
// phases. A nil *TraceConfiguration disables output entirely; a nil Tracer
// field falls back to fmt.Printf.
type TraceConfiguration struct {
	// Rules restricts tracing to these rule identifiers; empty means all.
	Rules []string
	// Phases restricts tracing to these phase names (see phase* consts
	// below); empty means all.
	Phases []string
	// Tracer receives formatted trace lines; defaults to fmt.Printf.
	Tracer func(format string, args ...interface{})
}

const (
	phaseTokenize   = "tokenize"
	phaseDictionary = "dictionary"
	phasePostings   = "postings"
	phaseCandidates = "candidates"
	phaseAlign      = "align"
	phaseRefine     = "refine"
)

type tracer struct {
	rules  map[string]bool
	phases map[string]bool
	emit   func(string, ...interface{})
}

func newTracer(cfg *TraceConfiguration) *tracer {
	if cfg == nil {
		return nil
	}
	t := &tracer{emit: cfg.Tracer}
	if t.emit == nil {
		t.emit = func(f string, a ...interface{}) { fmt.Printf(f, a...) }
	}
	if len(cfg.Rules) > 0 {
		t.rules = make(map[string]bool, len(cfg.Rules))
		for _, r := range cfg.Rules {
			t.rules[r] = true
		}
	}
	if len(cfg.Phases) > 0 {
		t.phases = make(map[string]bool, len(cfg.Phases))
		for _, p := range cfg.Phases {
			t.phases[p] = true
		}
	}
	return t
}

func (t *tracer) should(phase, rule string) bool {
	if t == nil {
		return false
	}
	if t.phases != nil && !t.phases[phase] {
		return false
	}
	if t.rules != nil && rule != "" && !t.rules[rule] {
		return false
	}
	return true
}

func (t *tracer) logf(phase, rule, format string, args ...interface{}) {
	if !t.should(phase, rule) {
		return
	}
	t.emit("["+phase+"] "+format+"\n", args...)
}
