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

package refine

import (
	"znkr.io/docdiff/document"
	"znkr.io/docdiff/internal/blockalign"
	"znkr.io/docdiff/internal/config"
	"znkr.io/docdiff/internal/correlate"
)

// Table aligns the rows of x and y and returns tagged copies of both tables.
//
// Rows without a counterpart are added to one side only with all of their cells tagged. Matched
// rows are added to both sides and their cells are compared with each other.
func Table(c *correlate.Correlator, x, y *document.Table, cfg config.Config) (left, right *document.Table) {
	left, right = &document.Table{}, &document.Table{}
	for _, g := range blockalign.Align(x.Rows, y.Rows, document.RowSimilarity, cfg) {
		switch {
		case len(g.X) == 0:
			for _, r := range g.Y {
				right.Rows = append(right.Rows, tagRow(r, nil, document.Add))
			}
		case len(g.Y) == 0:
			for _, r := range g.X {
				left.Rows = append(left.Rows, tagRow(r, nil, document.Delete))
			}
		default:
			rx, ry := g.X[0], g.Y[0]
			cx, cy := correlate.Correlate(c, rx.Cells, ry.Cells, (*document.Cell).Equal)
			left.Rows = append(left.Rows, tagRow(rx, cx, document.Delete))
			right.Rows = append(right.Rows, tagRow(ry, cy, document.Add))
		}
	}
	return left, right
}

// tagRow returns a tagged copy of r. If corr is nil, all cells are unpaired.
func tagRow(r *document.Row, corr []int, oneSided document.Change) *document.Row {
	out := r.Clone()
	for i, c := range out.Cells {
		v := correlate.Unpaired
		if corr != nil {
			v = corr[i]
		}
		c.Tag = tagFor(v, oneSided)
	}
	return out
}
