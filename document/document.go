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

// Package document provides the document model used by docdiff: paragraphs made of styled runs
// and images, and tables made of rows and cells that contain further blocks.
//
// All nodes support structural equality ([Equal], [Cell.Equal], [Row.Equal]) and a stable hash
// that ignores diff tags. Hashes are memoized, a node must therefore not be modified after its
// hash has been computed. Use [CloneBlock] and the Clone methods to derive modified copies.
package document

import (
	"iter"
	"sync/atomic"
)

// Align is the horizontal alignment of a paragraph, e.g. "left", "center", "right", or "both".
type Align string

// VertAlign is the vertical alignment of a run.
type VertAlign string

const (
	Baseline    VertAlign = ""
	Subscript   VertAlign = "subscript"
	Superscript VertAlign = "superscript"
)

// Style describes the formatting of a run.
type Style struct {
	Bold      bool
	Underline bool
	Italic    bool
	Strike    bool
	Caps      bool
	SmallCaps bool
	Font      string
	Size      int // in half points, 0 if unset
	Color     string
	VertAlign VertAlign
	ListLevel int
	ListID    int
}

// Inline is an element of a paragraph. It's either a [Run] or an [Image].
type Inline interface {
	isInline()
}

// Run is a piece of text with a single style.
type Run struct {
	Text  string
	Style Style
}

// Image is an inline image.
//
// Hash identifies the image content. If it's set, Src is not part of the image's identity, this
// allows moving images around without changing the document.
type Image struct {
	Width  int    // in pixels, 0 if unknown
	Height int    // in pixels, 0 if unknown
	Wrap   string // CSS display mode, e.g. "inline" or "block"
	Src    string
	Hash   string
}

func (Run) isInline()   {}
func (Image) isInline() {}

// RunGroup is a sequence of inline elements sharing one diff tag.
type RunGroup struct {
	Runs []Inline
	Tag  Tag
}

// Kind is the concrete kind of a [Block].
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
type Kind int

const (
	KindParagraph Kind = iota
	KindTable
)

// Block is a top level content element of a document or a cell. It's either a [*Paragraph] or a
// [*Table].
type Block interface {
	// Kind returns the concrete kind of the block.
	Kind() Kind
	// Hash returns a structural hash of the block. Diff tags are ignored.
	Hash() uint64

	isBlock()
}

// Paragraph is a sequence of run groups.
//
// Paragraphs created by [NewParagraph] hold one group per chunk (a word, a run of spaces, a
// newline, or an image), these chunks are the units of a paragraph comparison.
type Paragraph struct {
	Align  Align
	Groups []RunGroup

	hash atomic.Uint64
}

// Cell is a table cell.
type Cell struct {
	RowSpan int
	ColSpan int
	Width   int // in pixels, 0 if unknown
	Height  int // in pixels, 0 if unknown
	VAlign  string
	Blocks  []Block
	Tag     Tag

	hash atomic.Uint64
}

// Row is a table row.
type Row struct {
	Cells []*Cell

	hash atomic.Uint64
}

// Table is a sequence of rows.
type Table struct {
	Rows []*Row

	hash atomic.Uint64
}

func (*Paragraph) Kind() Kind { return KindParagraph }
func (*Table) Kind() Kind     { return KindTable }

func (*Paragraph) isBlock() {}
func (*Table) isBlock()     {}

// Document is a parsed document.
type Document struct {
	Blocks []Block
}

// NewCell returns a cell with default spans and alignment that holds the given blocks.
func NewCell(blocks ...Block) *Cell {
	return &Cell{RowSpan: 1, ColSpan: 1, VAlign: "top", Blocks: blocks}
}

// Inlines returns all inline elements of p in order.
func (p *Paragraph) Inlines() []Inline {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Runs)
	}
	out := make([]Inline, 0, n)
	for _, g := range p.Groups {
		out = append(out, g.Runs...)
	}
	return out
}

// CellRef locates a cell within its table.
type CellRef struct {
	Row, Col int
}

// Cells returns an iterator over all cells of t in row-major order.
func (t *Table) Cells() iter.Seq2[CellRef, *Cell] {
	return func(yield func(CellRef, *Cell) bool) {
		for i, r := range t.Rows {
			for j, c := range r.Cells {
				if !yield(CellRef{i, j}, c) {
					return
				}
			}
		}
	}
}

// Images returns an iterator over all images in d, including those nested in tables.
func (d *Document) Images() iter.Seq[Image] {
	return func(yield func(Image) bool) {
		imagesOf(d.Blocks, yield)
	}
}

func imagesOf(blocks []Block, yield func(Image) bool) bool {
	for _, b := range blocks {
		switch b := b.(type) {
		case *Paragraph:
			for _, g := range b.Groups {
				for _, in := range g.Runs {
					if img, ok := in.(Image); ok && !yield(img) {
						return false
					}
				}
			}
		case *Table:
			for _, c := range b.Cells() {
				if !imagesOf(c.Blocks, yield) {
					return false
				}
			}
		default:
			panic("never reached")
		}
	}
	return true
}
