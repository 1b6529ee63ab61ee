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
	"compress/gzip"
	"encoding/gob"
	"io"

	"github.com/licensematch/lidx/internal/bitset"
)

// This file carries over the teacher's persistence approach
// (serializer/serializer.go: gzip-wrapped archive of classifier state) but
// swaps its tar-of-files layout for a single gob record, since an Index's
// state is one coherent object graph rather than a bag of independent text
// blobs. Only the post-renumber, pre-derived shape is written; everything
// else (postings, sets, automatons, classification) is cheap to recompute
// via assembleIndex on Load, so the wire format stays small and stable
// across internal restructuring of the derived structures.

type wireRule struct {
	Identifier        string
	LicenseExpression string
	IsNegative        bool
	IsFalsePositive   bool
	MinimumCoverage   float64
	Relevance         float64
	TokenIDs          []TokenID
	DigitWords        []uint64
	DigitLen          int
}

type wireIndex struct {
	TokenByID []string
	LenJunk   int
	Rules     []wireRule
	Opts      Options
}

// Save writes a frozen Index to w as a gzip-compressed gob stream.
func (idx *Index) Save(w io.Writer) error {
	gz := gzip.NewWriter(w)
	wi := wireIndex{
		TokenByID: idx.dict.byID,
		LenJunk:   idx.dict.lenJunk,
		Opts:      idx.opts,
	}
	for _, r := range idx.rules {
		wr := wireRule{
			Identifier:        r.Identifier,
			LicenseExpression: r.LicenseExpression,
			IsNegative:        r.IsNegative,
			IsFalsePositive:   r.IsFalsePositive,
			MinimumCoverage:   r.MinimumCoverage,
			Relevance:         r.Relevance,
			TokenIDs:          r.TokenIDs,
			DigitLen:          r.Length,
		}
		if r.DigitPositions != nil {
			wr.DigitWords = r.DigitPositions.Words()
		}
		wi.Rules = append(wi.Rules, wr)
	}

	if err := gob.NewEncoder(gz).Encode(&wi); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

// Load reads an Index previously written by Save and re-derives its
// postings, sets, hashes, classification, and automatons via assembleIndex.
func Load(r io.Reader) (*Index, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	var wi wireIndex
	if err := gob.NewDecoder(gz).Decode(&wi); err != nil {
		return nil, err
	}

	dict := &dictionary{
		byID:    wi.TokenByID,
		lenJunk: wi.LenJunk,
		frozen:  true,
	}
	dict.byString = make(map[string]TokenID, len(dict.byID))
	for id, word := range dict.byID {
		dict.byString[word] = TokenID(id)
	}

	rules := make([]*Rule, len(wi.Rules))
	for i, wr := range wi.Rules {
		digits := bitset.New(wr.DigitLen)
		if len(wr.DigitWords) > 0 {
			digits = bitset.FromWords(wr.DigitWords)
		}
		rules[i] = &Rule{
			RID:               RuleID(i),
			Identifier:        wr.Identifier,
			LicenseExpression: wr.LicenseExpression,
			IsNegative:        wr.IsNegative,
			IsFalsePositive:   wr.IsFalsePositive,
			MinimumCoverage:   wr.MinimumCoverage,
			Relevance:         wr.Relevance,
			TokenIDs:          wr.TokenIDs,
			DigitPositions:    digits,
		}
	}

	return assembleIndex(dict, rules, wi.Opts)
}
