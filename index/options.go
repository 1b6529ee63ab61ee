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

// Tunable constants from spec §4. All but proportionOfJunk are exposed as
// defaults on Options, so a caller can retune them without forking (teacher
// pattern: stringclassifier.Classifier.MinDiffRatio is an exported,
// defaulted knob); proportionOfJunk is fixed and has no Options field.
const (
	// proportionOfJunk is PROPORTION_OF_JUNK: the fraction of distinct
	// tokens eligible to become "junk" during renumbering.
	proportionOfJunk = 0.7

	defaultMaxCandidates  = 65
	defaultMaxDist        = 21
	defaultTextLineThresh = 15
	defaultBinLineThresh  = 50
)

// Options configures a Builder / Index build pass. Zero value is invalid;
// use DefaultOptions.
type Options struct {
	// MaxCandidates caps how many rules the set/multiset ranker (C4.6)
	// hands to the aligner per query run.
	MaxCandidates int
	// MaxDist bounds how far apart two alignment seeds (or a chain gap)
	// may be while still being considered part of the same run (C4.7).
	MaxDist int
	// TextLineThreshold / BinLineThreshold are the line-count heuristics
	// C8 uses to decide how aggressively to split query runs for
	// text-like versus binary-ish input.
	TextLineThreshold int
	BinLineThreshold  int
	// EnableFragmentsAutomaton gates the optional n-gram fragment
	// automaton (C7); off by default per spec §9 open question (a).
	EnableFragmentsAutomaton bool
	// FragmentGranularity is the n-gram size sampled into the fragments
	// automaton when enabled.
	FragmentGranularity int
}

// DefaultOptions returns the spec's documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxCandidates:       defaultMaxCandidates,
		MaxDist:             defaultMaxDist,
		TextLineThreshold:   defaultTextLineThresh,
		BinLineThreshold:    defaultBinLineThresh,
		FragmentGranularity: 6,
	}
}

// QueryOptions configures a single Match call.
type QueryOptions struct {
	// MinScore drops matches scoring below this percentage (0-100).
	MinScore float64
	// DropFalsePositives, when true (the default), drops matches whose
	// query span lies entirely inside a false-positive rule's hit.
	DropFalsePositives bool
}

// DefaultQueryOptions returns sensible per-query defaults.
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{DropFalsePositives: true}
}
