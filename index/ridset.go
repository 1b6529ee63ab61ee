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

import "github.com/licensematch/lidx/internal/bitset"

// ridSet is a dense rid set backed by internal/bitset, per spec §9
// ("Bitsets for rid sets. ... prefer bitsets over hash-sets").
type ridSet struct{ s *bitset.Set }

func newRidSet() *ridSet { return &ridSet{s: bitset.New(0)} }

func (r *ridSet) add(id RuleID)         { r.s.Set(int(id)) }
func (r *ridSet) contains(id RuleID) bool { return r.s.Test(int(id)) }
func (r *ridSet) count() int            { return r.s.Count() }

func (r *ridSet) each(fn func(RuleID)) {
	r.s.Range(func(i int) bool {
		fn(RuleID(i))
		return true
	})
}
