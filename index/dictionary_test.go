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

func TestInternAssignsStableIDs(t *testing.T) {
	d := newDictionary()
	id1, err := d.intern("license")
	if err != nil {
		t.Fatal(err)
	}
	id2, err := d.intern("license")
	if err != nil {
		t.Fatal(err)
	}
	if id1 != id2 {
		t.Fatalf("expected stable id, got %d then %d", id1, id2)
	}
	if d.freq[id1] != 2 {
		t.Fatalf("expected freq 2, got %d", d.freq[id1])
	}
}

func TestInternAfterFreezeFails(t *testing.T) {
	d := newDictionary()
	d.intern("a")
	if _, err := d.renumber(nil, nil, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := d.intern("b"); err == nil {
		t.Fatal("expected error interning after renumber")
	}
}

func TestRenumberPutsJunkFirstByFrequency(t *testing.T) {
	d := newDictionary()
	// "the" appears most often, "zorblax" appears once - zorblax should
	// end up in the high (good) id range, "the" in the low (junk) range.
	for i := 0; i < 5; i++ {
		d.intern("the")
	}
	d.intern("zorblax")

	perm, err := d.renumber([]string{"the"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	// "the" was interned first (old id 0), "zorblax" second (old id 1).
	theNew := perm[0]
	zorblaxNew := perm[1]

	if !d.isJunk(theNew) {
		t.Errorf("expected %q to be junk after renumber", "the")
	}
	if d.isJunk(zorblaxNew) {
		t.Errorf("expected %q to be good (non-junk) after renumber", "zorblax")
	}
}

func TestRenumberNeverJunkOverride(t *testing.T) {
	d := newDictionary()
	for i := 0; i < 10; i++ {
		d.intern("the")
	}
	// A second token makes the junk budget 1, so "the" would become junk
	// without the override.
	d.intern("zorblax")
	id, _ := d.lookup("the")

	neverJunk := map[TokenID]bool{id: true}
	perm, err := d.renumber([]string{"the"}, nil, neverJunk)
	if err != nil {
		t.Fatal(err)
	}
	if d.isJunk(perm[id]) {
		t.Errorf("expected neverJunk token to survive renumber as non-junk")
	}
}

func TestIsTrivialToken(t *testing.T) {
	cases := map[string]bool{
		"a":     true,
		"1":     true,
		"123":   true,
		"ab":    false,
		"1a":    false,
		"":      false,
	}
	for in, want := range cases {
		if got := isTrivialToken(in); got != want {
			t.Errorf("isTrivialToken(%q) = %v, want %v", in, got, want)
		}
	}
}
