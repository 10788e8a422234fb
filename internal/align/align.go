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

// Package align aligns two ordered lists, either exactly (a longest common subsequence) or by
// similarity (a maximum weight alignment of pairs that are similar enough).
package align

import (
	"znkr.io/docdiff/internal/myers"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // Two elements are aligned with each other
	Delete           // An element of the left list has no partner
	Insert           // An element of the right list has no partner
)

// Edit describes a single step of an alignment.
//
//   - For Match, X and Y are the indices of the aligned elements.
//   - For Delete, X is the index of the left element and Y is -1.
//   - For Insert, Y is the index of the right element and X is -1.
type Edit struct {
	Op   Op
	X, Y int
}

// Exact aligns x and y along a longest common subsequence.
//
// Exact returns one edit for every element of x and y in input order. Within a run of changes,
// deletions are reported before insertions.
func Exact[T comparable](x, y []T) []Edit {
	rx, ry := myers.Diff(x, y)
	return FromVectors(rx, ry)
}

// ExactFunc is like [Exact] but uses eq to compare elements.
func ExactFunc[T any](x, y []T, eq func(a, b T) bool) []Edit {
	rx, ry := myers.DiffFunc(x, y, eq)
	return FromVectors(rx, ry)
}

// FromVectors converts result vectors into edits.
func FromVectors(rx, ry []bool) []Edit {
	n, m := len(rx)-1, len(ry)-1
	if n+m == 0 {
		return nil
	}
	// Every element takes part in exactly one edit and a match covers two elements.
	matches := 0
	for s := range n {
		if !rx[s] {
			matches++
		}
	}
	out := make([]Edit, 0, n+m-matches)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			out = append(out, Edit{Delete, s, -1})
			s++
		}
		for t < m && ry[t] {
			out = append(out, Edit{Insert, -1, t})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			out = append(out, Edit{Match, s, t})
			s++
			t++
		}
	}
	return out
}

// Weighted aligns x and y so that the sum of sim over all aligned pairs is maximal. Only pairs
// with sim(a, b) > threshold may be aligned.
//
// The table is computed backwards from the end of both lists and the alignment is read forwards
// from the start. When two choices score the same, advancing x alone (a deletion) wins over
// advancing y alone (an insertion), which wins over a match.
//
// If len(x)*len(y) exceeds maxCells, no table is computed: all of x is reported as deleted
// followed by all of y as inserted and ok is false.
func Weighted[T any](x, y []T, sim func(a, b T) float64, threshold float64, maxCells int) (edits []Edit, ok bool) {
	n, m := len(x), len(y)
	if n == 0 || m == 0 {
		return unaligned(n, m), true
	}
	if n*m > maxCells {
		return unaligned(n, m), false
	}

	const (
		advanceX = iota
		advanceY
		advanceBoth
	)

	// score[i*(m+1)+j] is the best total weight for aligning x[i:] and y[j:]. The last row and
	// column are zero.
	w := m + 1
	score := make([]float64, (n+1)*w)
	action := make([]uint8, (n+1)*w)
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			best, act := score[(i+1)*w+j], uint8(advanceX)
			if v := score[i*w+j+1]; v > best {
				best, act = v, advanceY
			}
			if v := sim(x[i], y[j]); v > threshold {
				if v += score[(i+1)*w+j+1]; v > best {
					best, act = v, advanceBoth
				}
			}
			score[i*w+j] = best
			action[i*w+j] = act
		}
	}

	edits = make([]Edit, 0, n+m)
	for i, j := 0, 0; i < n || j < m; {
		switch {
		case j == m || i < n && action[i*w+j] == advanceX:
			edits = append(edits, Edit{Delete, i, -1})
			i++
		case i == n || action[i*w+j] == advanceY:
			edits = append(edits, Edit{Insert, -1, j})
			j++
		default:
			edits = append(edits, Edit{Match, i, j})
			i++
			j++
		}
	}
	return edits, true
}

func unaligned(n, m int) []Edit {
	if n+m == 0 {
		return nil
	}
	edits := make([]Edit, 0, n+m)
	for i := range n {
		edits = append(edits, Edit{Delete, i, -1})
	}
	for j := range m {
		edits = append(edits, Edit{Insert, -1, j})
	}
	return edits
}
