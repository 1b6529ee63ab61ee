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

package automaton

import (
	"reflect"
	"sort"
	"testing"
)

func syms(xs ...int) []Symbol {
	out := make([]Symbol, len(xs))
	for i, x := range xs {
		out[i] = Symbol(x)
	}
	return out
}

func TestSearchExactAndOverlap(t *testing.T) {
	b := NewBuilder()
	b.Add(1, syms(1, 2, 3))
	b.Add(2, syms(2, 3))
	b.Add(3, syms(9))
	a := b.Build()

	hits := a.Search(syms(0, 1, 2, 3, 9))
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].End != hits[j].End {
			return hits[i].End < hits[j].End
		}
		return hits[i].Pattern < hits[j].Pattern
	})

	want := []Hit{
		{Pattern: 1, End: 4},
		{Pattern: 2, End: 4},
		{Pattern: 3, End: 5},
	}
	if !reflect.DeepEqual(hits, want) {
		t.Errorf("got %+v want %+v", hits, want)
	}
}

func TestSearchNoMatch(t *testing.T) {
	b := NewBuilder()
	b.Add(1, syms(4, 5))
	a := b.Build()
	if hits := a.Search(syms(1, 2, 3)); hits != nil {
		t.Errorf("expected no hits, got %+v", hits)
	}
}

func TestSearchEmptyPatternIgnored(t *testing.T) {
	b := NewBuilder()
	b.Add(1, nil)
	a := b.Build()
	if hits := a.Search(syms(1, 2, 3)); hits != nil {
		t.Errorf("expected no hits, got %+v", hits)
	}
}
