// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package correlate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func eq(a, b string) bool { return a == b }

func TestCorrelate(t *testing.T) {
	tests := []struct {
		name     string
		x, y     string
		wantX    []int
		wantY    []int
		wantNext int
	}{
		{
			name:     "identical",
			x:        "a b c",
			y:        "a b c",
			wantX:    []int{0, 0, 0},
			wantY:    []int{0, 0, 0},
			wantNext: 1,
		},
		{
			name:     "empty",
			wantX:    []int{},
			wantY:    []int{},
			wantNext: 1,
		},
		{
			name:     "substitution",
			x:        "The cat sat.",
			y:        "The dog sat.",
			wantX:    []int{0, 1, 0},
			wantY:    []int{0, 1, 0},
			wantNext: 2,
		},
		{
			name:     "deletion",
			x:        "a b c",
			y:        "a c",
			wantX:    []int{0, -1, 0},
			wantY:    []int{0, 0},
			wantNext: 1,
		},
		{
			name:     "insertion",
			x:        "a c",
			y:        "a b c",
			wantX:    []int{0, 0},
			wantY:    []int{0, -1, 0},
			wantNext: 1,
		},
		{
			name:     "two-substitutions",
			x:        "a b c d e",
			y:        "a x y c z e",
			wantX:    []int{0, 1, 0, 2, 0},
			wantY:    []int{0, 1, 1, 0, 2, 0},
			wantNext: 3,
		},
		{
			name:     "mixed",
			x:        "a b c",
			y:        "x a c d",
			wantX:    []int{0, -1, 0},
			wantY:    []int{-1, 0, 0, -1},
			wantNext: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			gotX, gotY := Correlate(c, strings.Fields(tt.x), strings.Fields(tt.y), eq)
			if diff := cmp.Diff(tt.wantX, gotX); diff != "" {
				t.Errorf("Correlate(...) x differs [-want,+got]:\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantY, gotY); diff != "" {
				t.Errorf("Correlate(...) y differs [-want,+got]:\n%s", diff)
			}
			if got := c.Next(); got != tt.wantNext {
				t.Errorf("Next() = %d, want %d", got, tt.wantNext)
			}
		})
	}
}

func TestCorrelate_counterIsShared(t *testing.T) {
	c := New()
	Correlate(c, []string{"a"}, []string{"b"}, eq)
	gotX, gotY := Correlate(c, []string{"c"}, []string{"d"}, eq)
	if diff := cmp.Diff([]int{2}, gotX); diff != "" {
		t.Errorf("second Correlate(...) x differs [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, gotY); diff != "" {
		t.Errorf("second Correlate(...) y differs [-want,+got]:\n%s", diff)
	}
}

// Every id appears on both sides and nowhere else.
func TestCorrelate_sound(t *testing.T) {
	x := strings.Fields("p q r s t u v w")
	y := strings.Fields("p Q r S T u w W")
	cx, cy := Correlate(New(), x, y, eq)
	count := func(ids []int) map[int]int {
		m := map[int]int{}
		for _, id := range ids {
			if id > 0 {
				m[id]++
			}
		}
		return m
	}
	mx, my := count(cx), count(cy)
	for id := range mx {
		if my[id] == 0 {
			t.Errorf("id %d only appears in x", id)
		}
	}
	for id := range my {
		if mx[id] == 0 {
			t.Errorf("id %d only appears in y", id)
		}
	}
}
