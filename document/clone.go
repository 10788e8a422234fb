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

import "slices"

// CloneBlock returns a deep copy of b, including all tags.
func CloneBlock(b Block) Block {
	switch b := b.(type) {
	case *Paragraph:
		return b.Clone()
	case *Table:
		return b.Clone()
	default:
		panic("never reached")
	}
}

// CloneBlocks returns deep copies of all blocks.
func CloneBlocks(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = CloneBlock(b)
	}
	return out
}

// Clone returns a deep copy of p.
func (p *Paragraph) Clone() *Paragraph {
	out := &Paragraph{Align: p.Align}
	if p.Groups != nil {
		out.Groups = make([]RunGroup, len(p.Groups))
		for i, g := range p.Groups {
			out.Groups[i] = RunGroup{Runs: slices.Clone(g.Runs), Tag: g.Tag}
		}
	}
	return out
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	out := &Table{}
	if t.Rows != nil {
		out.Rows = make([]*Row, len(t.Rows))
		for i, r := range t.Rows {
			out.Rows[i] = r.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of r.
func (r *Row) Clone() *Row {
	out := &Row{}
	if r.Cells != nil {
		out.Cells = make([]*Cell, len(r.Cells))
		for i, c := range r.Cells {
			out.Cells[i] = c.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of c.
func (c *Cell) Clone() *Cell {
	return &Cell{
		RowSpan: c.RowSpan,
		ColSpan: c.ColSpan,
		Width:   c.Width,
		Height:  c.Height,
		VAlign:  c.VAlign,
		Blocks:  CloneBlocks(c.Blocks),
		Tag:     c.Tag,
	}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	return &Document{Blocks: CloneBlocks(d.Blocks)}
}
