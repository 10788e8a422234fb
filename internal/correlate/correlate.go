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

// Package correlate links deletions to the insertions that replace them.
//
// Two sequences are aligned exactly and the elements that are not part of the common subsequence
// are grouped into hunks. A hunk that removes and adds elements is a substitution, all of its
// elements on both sides receive the same correlation id. Elements of a hunk that only removes or
// only adds receive [Unpaired].
package correlate

import (
	"znkr.io/docdiff/internal/myers"
	"znkr.io/docdiff/internal/rvecs"
)

// Correlation values for elements that have no correlation id.
const (
	Matched  = 0  // Element is part of the common subsequence
	Unpaired = -1 // Element was deleted or inserted without a counterpart
)

// Correlator hands out correlation ids. Ids start at 1 and increase with every substitution
// hunk. The zero value is not usable, use [New].
type Correlator struct {
	next int
}

// New returns a Correlator whose first id is 1.
func New() *Correlator {
	return &Correlator{next: 1}
}

// Next returns the id the next substitution hunk will receive.
func (c *Correlator) Next() int { return c.next }

// Correlate aligns x and y using eq and returns the correlation of every element of x and y. Each
// value is [Matched], [Unpaired], or a correlation id handed out by c.
func Correlate[T any](c *Correlator, x, y []T, eq func(a, b T) bool) (cx, cy []int) {
	rx, ry := myers.DiffFunc(x, y, eq)
	cx, cy = make([]int, len(x)), make([]int, len(y))
	for h := range rvecs.Hunks(rx, ry) {
		id := Unpaired
		if h.Deletes() && h.Inserts() {
			id = c.next
			c.next++
		}
		for s := h.S0; s < h.S1; s++ {
			cx[s] = id
		}
		for t := h.T0; t < h.T1; t++ {
			cy[t] = id
		}
	}
	return cx, cy
}
