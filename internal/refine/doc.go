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

// Package refine compares a pair of modified blocks in detail.
//
// Paragraphs are compared chunk by chunk, changed chunks are collected in tagged run groups.
// Tables are aligned row by row and the cells of matched rows are compared with each other,
// changed cells are tagged. Both sides of the comparison are fresh copies, the inputs are never
// modified.
//
// Tags follow the same rules everywhere: content that was replaced carries a modification tag
// with a correlation id shared by both sides, content without a counterpart is tagged as deleted
// on the left side and as added on the right side.
package refine

import (
	"znkr.io/docdiff/document"
	"znkr.io/docdiff/internal/config"
	"znkr.io/docdiff/internal/correlate"
)

// Pair compares two modified blocks and returns tagged copies of both. Both blocks must be of the
// same kind.
func Pair(c *correlate.Correlator, x, y document.Block, cfg config.Config) (left, right document.Block) {
	switch x := x.(type) {
	case *document.Paragraph:
		py, ok := y.(*document.Paragraph)
		if !ok {
			panic("refine: can't compare a paragraph with a " + y.Kind().String())
		}
		return Paragraph(c, x, py)
	case *document.Table:
		ty, ok := y.(*document.Table)
		if !ok {
			panic("refine: can't compare a table with a " + y.Kind().String())
		}
		return Table(c, x, ty, cfg)
	default:
		panic("never reached")
	}
}

// tagFor translates a correlation into a tag. oneSided is the change for content without a
// counterpart.
func tagFor(corr int, oneSided document.Change) document.Tag {
	switch {
	case corr == correlate.Matched:
		return document.Tag{}
	case corr == correlate.Unpaired:
		return document.Tag{Change: oneSided}
	case corr > 0:
		return document.Tag{Change: document.Modify, ID: corr}
	default:
		panic("never reached")
	}
}

// ShiftIDs adds offset to all correlation ids in b.
func ShiftIDs(b document.Block, offset int) {
	if offset == 0 {
		return
	}
	shift := func(t *document.Tag) {
		if t.ID > 0 {
			t.ID += offset
		}
	}
	switch b := b.(type) {
	case *document.Paragraph:
		for i := range b.Groups {
			shift(&b.Groups[i].Tag)
		}
	case *document.Table:
		for _, c := range b.Cells() {
			shift(&c.Tag)
			for _, inner := range c.Blocks {
				ShiftIDs(inner, offset)
			}
		}
	default:
		panic("never reached")
	}
}
