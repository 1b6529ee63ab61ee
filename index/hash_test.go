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

func TestHashTokensDeterministicAndSensitive(t *testing.T) {
	a := hashTokens([]TokenID{1, 2, 3})
	b := hashTokens([]TokenID{1, 2, 3})
	if a != b {
		t.Fatalf("expected identical digests for identical input")
	}
	c := hashTokens([]TokenID{1, 2, 4})
	if a == c {
		t.Fatalf("expected different digests for different input")
	}
}

func TestHashIndexInsertDetectsDuplicate(t *testing.T) {
	h := newHashIndex()
	d := hashTokens([]TokenID{5, 6, 7})
	if _, dup := h.insert(d, 0); dup {
		t.Fatalf("first insert should not be a duplicate")
	}
	if existing, dup := h.insert(d, 1); !dup || existing != 0 {
		t.Fatalf("expected duplicate of rid 0, got existing=%d dup=%v", existing, dup)
	}
}
