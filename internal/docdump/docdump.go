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

// Package docdump writes a compact text form of documents and comparisons.
//
// A comparison is written with one line per row side:
//
//	row 1
//	  left[delete]: p "removed paragraph"
//	  right[]: -
//	row 2
//	  left[modify]: p "The " {modify modify1 "cat"} " sat."
//	  right[modify]: p "The " {modify modify1 "dog"} " sat."
//
// Paragraphs are written as a list of quoted texts with tagged groups in braces. Tables are
// written as table[ [cell | cell] [cell] ] with tagged cells in braces. Multiple blocks are
// separated by " / " and a side without blocks is written as "-".
package docdump

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"znkr.io/docdiff/document"
)

// Comparison returns the text form of a comparison document, i.e. a document that consists of a
// single table with two cells per row.
func Comparison(doc *document.Document) (string, error) {
	if len(doc.Blocks) != 1 {
		return "", fmt.Errorf("comparison has %d blocks, want 1", len(doc.Blocks))
	}
	t, ok := doc.Blocks[0].(*document.Table)
	if !ok {
		return "", errors.New("comparison is not a table")
	}
	var sb strings.Builder
	for i, r := range t.Rows {
		if len(r.Cells) != 2 {
			return "", fmt.Errorf("row %d has %d cells, want 2", i+1, len(r.Cells))
		}
		fmt.Fprintf(&sb, "row %d\n", i+1)
		for j, side := range []string{"left", "right"} {
			c := r.Cells[j]
			fmt.Fprintf(&sb, "  %s[%s]: %s\n", side, c.Tag, Blocks(c.Blocks))
		}
	}
	return sb.String(), nil
}

// Blocks returns the text form of a list of blocks.
func Blocks(blocks []document.Block) string {
	if len(blocks) == 0 {
		return "-"
	}
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString(" / ")
		}
		writeBlock(&sb, b)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, b document.Block) {
	switch b := b.(type) {
	case *document.Paragraph:
		writeParagraph(sb, b)
	case *document.Table:
		writeTable(sb, b)
	default:
		panic("never reached")
	}
}

func writeParagraph(sb *strings.Builder, p *document.Paragraph) {
	sb.WriteString("p")
	var plain []document.Inline
	flush := func() {
		if len(plain) > 0 {
			sb.WriteByte(' ')
			writeInlines(sb, plain)
			plain = plain[:0]
		}
	}
	for _, g := range p.Groups {
		if g.Tag.IsZero() {
			plain = append(plain, g.Runs...)
			continue
		}
		flush()
		fmt.Fprintf(sb, " {%s ", g.Tag)
		writeInlines(sb, g.Runs)
		sb.WriteByte('}')
	}
	flush()
}

// writeInlines writes the text of runs quoted and images as img(<src>).
func writeInlines(sb *strings.Builder, inlines []document.Inline) {
	var text strings.Builder
	first := true
	sep := func() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
	}
	flush := func() {
		if text.Len() > 0 {
			sep()
			sb.WriteString(strconv.Quote(text.String()))
			text.Reset()
		}
	}
	for _, in := range inlines {
		switch in := in.(type) {
		case document.Run:
			text.WriteString(in.Text)
		case document.Image:
			flush()
			sep()
			fmt.Fprintf(sb, "img(%s)", in.Src)
		default:
			panic("never reached")
		}
	}
	flush()
}

func writeTable(sb *strings.Builder, t *document.Table) {
	sb.WriteString("table[")
	for _, r := range t.Rows {
		sb.WriteString(" [")
		for j, c := range r.Cells {
			if j > 0 {
				sb.WriteString(" | ")
			}
			if c.Tag.IsZero() {
				sb.WriteString(Blocks(c.Blocks))
			} else {
				fmt.Fprintf(sb, "{%s %s}", c.Tag, Blocks(c.Blocks))
			}
		}
		sb.WriteByte(']')
	}
	sb.WriteString(" ]")
}
