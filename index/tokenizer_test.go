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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizeStringBasic(t *testing.T) {
	got := TokenizeString("Copyright 2024 Foo, Inc.\nLicensed under MIT")
	want := []Token{
		{Text: "copyright", Line: 1},
		{Text: "2024", Line: 1, IsDigit: true},
		{Text: "foo", Line: 1},
		{Text: "inc", Line: 1},
		{Text: "licensed", Line: 2},
		{Text: "under", Line: 2},
		{Text: "mit", Line: 2, IsShort: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TokenizeString mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeStringShortToken(t *testing.T) {
	got := TokenizeString("a b")
	if len(got) != 2 || !got[0].IsShort || !got[1].IsShort {
		t.Fatalf("expected two short tokens, got %+v", got)
	}
}

func TestTokenizeStringEmpty(t *testing.T) {
	got := TokenizeString("   \n\t  ")
	if len(got) != 0 {
		t.Fatalf("expected no tokens, got %+v", got)
	}
}
