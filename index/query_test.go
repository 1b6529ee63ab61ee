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

import "testing"

func TestExtractSPDXRuns(t *testing.T) {
	raw := "// SPDX-License-Identifier: Apache-2.0\npackage foo\n"
	runs := extractSPDXRuns(raw)
	if len(runs) != 1 {
		t.Fatalf("expected 1 spdx run, got %d", len(runs))
	}
	if runs[0].Line != 1 || runs[0].RawExpr != "Apache-2.0" {
		t.Fatalf("unexpected run: %+v", runs[0])
	}
}

func TestExtractSPDXRunsNone(t *testing.T) {
	if runs := extractSPDXRuns("nothing interesting here"); len(runs) != 0 {
		t.Fatalf("expected no runs, got %+v", runs)
	}
}

func TestSplitRunsBreaksOnLineGap(t *testing.T) {
	d := newDictionary()
	knownID, _ := d.intern("license")
	d.renumber(nil, nil, nil)
	_ = knownID

	tokens := []queryToken{
		{ID: 0, Line: 1},
		{ID: 0, Line: 2},
		{ID: 0, Line: 200}, // a huge line jump forces a new run
	}
	opts := DefaultOptions()
	runs := splitRuns(tokens, d, opts)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs from a large line gap, got %d: %+v", len(runs), runs)
	}
}

func TestSplitRunsBreaksOnLongUnknownStretch(t *testing.T) {
	d := newDictionary()
	d.renumber(nil, nil, nil)

	var tokens []queryToken
	tokens = append(tokens, queryToken{ID: 0, Line: 1})
	for i := 0; i < maxLowValueGap+1; i++ {
		tokens = append(tokens, queryToken{ID: unknownTokenID, Line: 1})
	}
	tokens = append(tokens, queryToken{ID: 0, Line: 1})

	opts := DefaultOptions()
	runs := splitRuns(tokens, d, opts)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs around a long unknown stretch, got %d: %+v", len(runs), runs)
	}
}
