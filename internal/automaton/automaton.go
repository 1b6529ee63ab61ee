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

// Package automaton implements a classical Aho-Corasick multi-pattern
// matcher over an alphabet of 16-bit token ids, rather than bytes.
//
// github.com/cloudflare/ahocorasick (seen in the reference pack's
// other_examples, pulled in by praetorian-inc/titus) only reports which
// patterns matched a []byte input — it never surfaces the end offset of a
// hit. The index package's exact-automaton strategy needs the token
// position each hit ends at (to build qspan/ispan and to satisfy the
// postings-style invariant that a match's token span is recoverable), so a
// position-reporting implementation is built here instead; see DESIGN.md.
package automaton

// Symbol is the alphabet element the automaton is built over: a dictionary
// token id. Defined locally (rather than imported from index) to keep this
// package dependency-free and reusable by either automaton instance.
type Symbol int32

// PatternID identifies a registered pattern (typically a rule id).
type PatternID int

type node struct {
	children map[Symbol]int32 // symbol -> node index
	fail     int32
	output   []PatternID // patterns ending at this node
}

// Automaton is an immutable, built Aho-Corasick machine.
type Automaton struct {
	nodes []node
	built bool
}

// Builder accumulates patterns before Build freezes them into an Automaton.
type Builder struct {
	nodes []node
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	b := &Builder{}
	b.nodes = append(b.nodes, node{children: make(map[Symbol]int32)})
	return b
}

// Add registers pattern id as matching the exact symbol sequence seq.
// Empty sequences are ignored.
func (b *Builder) Add(id PatternID, seq []Symbol) {
	if len(seq) == 0 {
		return
	}
	cur := int32(0)
	for _, s := range seq {
		n := &b.nodes[cur]
		next, ok := n.children[s]
		if !ok {
			b.nodes = append(b.nodes, node{children: make(map[Symbol]int32)})
			next = int32(len(b.nodes) - 1)
			n.children[s] = next
		}
		cur = next
	}
	b.nodes[cur].output = append(b.nodes[cur].output, id)
}

// Build finalizes the trie into a failure-linked automaton. The receiver
// must not be reused after Build.
func (b *Builder) Build() *Automaton {
	nodes := b.nodes

	// BFS to compute fail links and splice output sets, standard
	// Aho-Corasick construction.
	var queue []int32
	root := &nodes[0]
	for _, child := range root.children {
		nodes[child].fail = 0
		queue = append(queue, child)
	}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for sym, child := range nodes[cur].children {
			queue = append(queue, child)

			fail := nodes[cur].fail
			for {
				if down, ok := nodes[fail].children[sym]; ok && down != child {
					nodes[child].fail = down
					break
				}
				if fail == 0 {
					nodes[child].fail = 0
					break
				}
				fail = nodes[fail].fail
			}
			nodes[child].output = append(nodes[child].output, nodes[nodes[child].fail].output...)
		}
	}

	return &Automaton{nodes: nodes, built: true}
}

// Hit describes one occurrence of a pattern in a searched sequence.
type Hit struct {
	Pattern PatternID
	// End is the index just past the last matched symbol (exclusive).
	End int
}

// Search runs the automaton over seq and returns every (pattern, end
// position) hit, including overlapping matches. Hits are emitted in
// increasing End order; each End's hits are listed longest pattern first,
// and patterns with identical symbol sequences in the order they were added.
func (a *Automaton) Search(seq []Symbol) []Hit {
	var hits []Hit
	cur := int32(0)
	for i, s := range seq {
		for {
			if next, ok := a.nodes[cur].children[s]; ok {
				cur = next
				break
			}
			if cur == 0 {
				break
			}
			cur = a.nodes[cur].fail
		}
		for _, p := range a.nodes[cur].output {
			hits = append(hits, Hit{Pattern: p, End: i + 1})
		}
	}
	return hits
}

// NumNodes reports the trie size, useful for size/memory accounting.
func (a *Automaton) NumNodes() int { return len(a.nodes) }
