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
	"sort"
	"unicode"
)

// TokenID is a compact, signed 16-bit token identifier (spec §3). The high
// bit is never used, so MaxTokenID is the largest representable id.
type TokenID int16

// MaxTokenID is the hard cap on distinct tokens (2^15 - 1), per invariant 1.
const MaxTokenID = 1<<15 - 1

// unknownTokenID marks a query position whose word has no dictionary entry;
// it is a gap, never matchable (spec §4.4).
const unknownTokenID TokenID = -1

// dictionary is the bidirectional token-string<->TokenID map (component
// C2). It is mutable while a Builder is interning rule text and becomes
// immutable once renumber has run.
type dictionary struct {
	byString map[string]TokenID
	byID     []string
	freq     []int // occurrence count, indexed by *provisional* id
	lenJunk  int
	frozen   bool
}

func newDictionary() *dictionary {
	return &dictionary{byString: make(map[string]TokenID)}
}

// intern assigns word a provisional id (insertion order) if unseen, and
// always bumps its occurrence count. Must not be called after renumber.
func (d *dictionary) intern(word string) (TokenID, error) {
	if d.frozen {
		return 0, errIndexFrozen
	}
	if id, ok := d.byString[word]; ok {
		d.freq[id]++
		return id, nil
	}
	if len(d.byID) >= MaxTokenID {
		return 0, newBuildError(ErrTokenLimitExceeded.(*kindError), "", nil)
	}
	id := TokenID(len(d.byID))
	d.byString[word] = id
	d.byID = append(d.byID, word)
	d.freq = append(d.freq, 1)
	return id, nil
}

func (d *dictionary) lookup(word string) (TokenID, bool) {
	id, ok := d.byString[word]
	return id, ok
}

func (d *dictionary) getWord(id TokenID) string {
	if int(id) < 0 || int(id) >= len(d.byID) {
		return ""
	}
	return d.byID[id]
}

func (d *dictionary) isJunk(id TokenID) bool {
	return int(id) < d.lenJunk
}

func (d *dictionary) size() int { return len(d.byID) }

// isTrivialToken reports whether a token string is a single character or
// entirely digits - the junk-seed predicate from spec §4.1 step 1.
func isTrivialToken(s string) bool {
	r := []rune(s)
	if len(r) == 0 {
		return false
	}
	if len(r) == 1 {
		return true
	}
	for _, c := range r {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

// renumber implements the frequency-driven junk/good partition and
// permutation described in spec §4.1. commonTokens is ranked most-common
// first; spdxKeys are tokens known to appear only in SPDX identifiers;
// neverJunk holds the sole token id of every rule whose length is 1
// (invariant 4: such a rule's sole token is force-promoted out of junk).
//
// renumber returns the old->new id permutation so the caller can remap
// every already-built structure (rule token sequences, postings keys,
// sets) that was indexed by provisional id.
func (d *dictionary) renumber(commonTokens []string, spdxKeys map[string]bool, neverJunk map[TokenID]bool) (permutation []TokenID, err error) {
	if d.frozen {
		return nil, errIndexFrozen
	}
	n := len(d.byID)
	jmax := int(float64(n) * proportionOfJunk)

	junk := make(map[TokenID]bool, jmax)
	addJunk := func(id TokenID) bool {
		if len(junk) >= jmax {
			return false
		}
		if neverJunk[id] {
			return true
		}
		junk[id] = true
		return true
	}

	// Step 1: trivial tokens (single char / all digits).
	for id, word := range d.byID {
		if isTrivialToken(word) {
			addJunk(TokenID(id))
		}
	}

	// Step 2: SPDX-key tokens are preferentially junk.
	if len(spdxKeys) > 0 {
		for id, word := range d.byID {
			if len(junk) >= jmax {
				break
			}
			if spdxKeys[word] {
				addJunk(TokenID(id))
			}
		}
	}

	// Step 3: ranked common-English tokens, most common first.
	for _, word := range commonTokens {
		if len(junk) >= jmax {
			break
		}
		id, ok := d.byString[word]
		if !ok || junk[id] {
			continue
		}
		addJunk(id)
	}

	// Build the permutation: junk first (is_good=false), then by
	// descending frequency, then by ascending old id.
	oldIDs := make([]TokenID, n)
	for i := range oldIDs {
		oldIDs[i] = TokenID(i)
	}
	sort.Slice(oldIDs, func(i, j int) bool {
		a, b := oldIDs[i], oldIDs[j]
		ag, bg := !junk[a], !junk[b]
		if ag != bg {
			return !ag // junk (is_good=false) sorts first
		}
		if d.freq[a] != d.freq[b] {
			return d.freq[a] > d.freq[b]
		}
		return a < b
	})

	permutation = make([]TokenID, n) // old -> new
	newByID := make([]string, n)
	for newID, old := range oldIDs {
		permutation[old] = TokenID(newID)
		newByID[newID] = d.byID[old]
	}

	newByString := make(map[string]TokenID, n)
	for s, old := range d.byString {
		newByString[s] = permutation[old]
	}

	d.byID = newByID
	d.byString = newByString
	d.lenJunk = len(junk)
	d.frozen = true
	d.freq = nil
	return permutation, nil
}

// remapIDs rewrites a token-id sequence in place using the old->new
// permutation produced by renumber.
func remapIDs(ids []TokenID, permutation []TokenID) {
	for i, id := range ids {
		if id >= 0 {
			ids[i] = permutation[id]
		}
	}
}
