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

package document

// Equal reports whether a and b are structurally equal. Blocks of different kinds are never
// equal. Diff tags are ignored.
func Equal(a, b Block) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() || a.Hash() != b.Hash() {
		return false
	}
	switch a := a.(type) {
	case *Paragraph:
		return a.equal(b.(*Paragraph))
	case *Table:
		return a.equal(b.(*Table))
	default:
		panic("never reached")
	}
}

func (p *Paragraph) equal(o *Paragraph) bool {
	if p.Align != o.Align || len(p.Groups) != len(o.Groups) {
		return false
	}
	for i := range p.Groups {
		if !p.Groups[i].Equal(o.Groups[i]) {
			return false
		}
	}
	return true
}

func (t *Table) equal(o *Table) bool {
	if len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Rows {
		if !t.Rows[i].Equal(o.Rows[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether g and o hold the same inline elements. Tags are ignored.
func (g RunGroup) Equal(o RunGroup) bool {
	return equalInlines(g.Runs, o.Runs)
}

// Equal reports whether r and o are structurally equal. Tags are ignored.
func (r *Row) Equal(o *Row) bool {
	if r.Hash() != o.Hash() || len(r.Cells) != len(o.Cells) {
		return false
	}
	for i := range r.Cells {
		if !r.Cells[i].Equal(o.Cells[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether c and o are structurally equal. Tags are ignored.
func (c *Cell) Equal(o *Cell) bool {
	if c.Hash() != o.Hash() {
		return false
	}
	if c.RowSpan != o.RowSpan || c.ColSpan != o.ColSpan || c.Width != o.Width ||
		c.Height != o.Height || c.VAlign != o.VAlign || len(c.Blocks) != len(o.Blocks) {
		return false
	}
	for i := range c.Blocks {
		if !Equal(c.Blocks[i], o.Blocks[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether d and o hold structurally equal blocks. Tags are ignored.
func (d *Document) Equal(o *Document) bool {
	if len(d.Blocks) != len(o.Blocks) {
		return false
	}
	for i := range d.Blocks {
		if !Equal(d.Blocks[i], o.Blocks[i]) {
			return false
		}
	}
	return true
}

func equalInlines(x, y []Inline) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !equalInline(x[i], y[i]) {
			return false
		}
	}
	return true
}

func equalInline(a, b Inline) bool {
	switch a := a.(type) {
	case Run:
		b, ok := b.(Run)
		return ok && a == b
	case Image:
		b, ok := b.(Image)
		return ok && a.Width == b.Width && a.Height == b.Height && a.Wrap == b.Wrap &&
			a.identity() == b.identity()
	default:
		panic("never reached")
	}
}
