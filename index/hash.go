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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// hashIndex maps a rule's whole-content hash to its rid (component C6),
// used both for exact full-document detection (strategy S1) and, at build
// time, for duplicate-rule rejection (invariant 3).
type hashIndex struct {
	byHash map[contentHash]RuleID
}

func newHashIndex() *hashIndex {
	return &hashIndex{byHash: make(map[contentHash]RuleID)}
}

// hashTokens computes the 128-bit content digest of a token-id sequence.
// cespare/xxhash/v2 exposes only a single 64-bit digest, so the second
// 64 bits come from hashing the same bytes again with a salt byte
// appended - two independent-enough digests combined into the 128-bit
// value spec §4.2 calls for, without pulling in a second hash library.
func hashTokens(ids []TokenID) contentHash {
	buf := make([]byte, len(ids)*2+1)
	for i, id := range ids {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(id))
	}
	lo := xxhash.Sum64(buf[:len(ids)*2])
	buf[len(ids)*2] = 0xA5
	hi := xxhash.Sum64(buf)
	return contentHash{lo, hi}
}

// insert records rule rid's digest. If another rid already holds that exact
// digest (a content-identical duplicate rule), it records nothing and
// returns that rid with duplicate set to true.
func (h *hashIndex) insert(digest contentHash, rid RuleID) (existing RuleID, duplicate bool) {
	if prev, ok := h.byHash[digest]; ok {
		return prev, true
	}
	h.byHash[digest] = rid
	return 0, false
}

// lookup returns the rid registered for digest, if any.
func (h *hashIndex) lookup(digest contentHash) (RuleID, bool) {
	rid, ok := h.byHash[digest]
	return rid, ok
}
