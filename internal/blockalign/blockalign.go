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

// Package blockalign aligns lists of blocks or rows by similarity and groups the result.
package blockalign

import (
	"znkr.io/docdiff/internal/align"
	"znkr.io/docdiff/internal/config"
)

// Group is a part of an alignment. It's one of
//
//   - a matched pair: X and Y hold one element each,
//   - a deletion: Y is empty,
//   - an insertion: X is empty.
type Group[T any] struct {
	X, Y []T
}

// Matched reports whether g is a matched pair.
func (g Group[T]) Matched() bool { return len(g.X) > 0 && len(g.Y) > 0 }

// Align aligns x and y by sim and returns the alignment as a list of groups in input order.
// Elements are only paired if their similarity exceeds cfg.Threshold.
//
// Unpaired elements between two pairs are collected in groups: if there are unpaired elements
// on both sides, a deletion is followed by an insertion. If only one input is empty, the result is
// a single group with all elements of the other input.
func Align[T any](x, y []T, sim func(a, b T) float64, cfg config.Config) []Group[T] {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	if len(x) == 0 || len(y) == 0 {
		return []Group[T]{{X: x, Y: y}}
	}

	edits, ok := align.Weighted(x, y, sim, cfg.Threshold, cfg.MaxCells)
	if !ok {
		cfg.Logger.Warn("too many elements for a similarity alignment, reporting all of them as changed",
			"x", len(x), "y", len(y), "max_cells", cfg.MaxCells)
	}

	var (
		groups []Group[T]
		dels   []T
		ins    []T
	)
	flush := func() {
		switch {
		case len(dels) > 0 && len(ins) > 0:
			groups = append(groups, Group[T]{X: dels}, Group[T]{Y: ins})
		case len(dels) > 0 || len(ins) > 0:
			groups = append(groups, Group[T]{X: dels, Y: ins})
		}
		dels, ins = nil, nil
	}
	for _, e := range edits {
		switch e.Op {
		case align.Delete:
			dels = append(dels, x[e.X])
		case align.Insert:
			ins = append(ins, y[e.Y])
		case align.Match:
			flush()
			groups = append(groups, Group[T]{X: []T{x[e.X]}, Y: []T{y[e.Y]}})
		default:
			panic("never reached")
		}
	}
	flush()
	return groups
}
