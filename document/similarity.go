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

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"znkr.io/docdiff/internal/myers"
)

// token is a unit of comparable text. Two tokens are the same if their keys are equal, the
// length is a function of the key.
type token struct {
	key string
	len int
}

// Similarity returns the Dice similarity of the comparable text of a and b, a value in [0, 1].
//
// Blocks of different kinds have similarity 0. The comparable text of a paragraph is one token
// per chunk, weighted by its length in characters (images weigh 1). The comparable text of a
// table is one token per cell, weighted by the number of blocks in the cell. Two blocks without
// any text have similarity 1.
func Similarity(a, b Block) float64 {
	if a.Kind() != b.Kind() {
		return 0
	}
	return dice(tokens(a), tokens(b))
}

// RowSimilarity is like [Similarity] for table rows.
func RowSimilarity(a, b *Row) float64 {
	return dice(rowTokens(a), rowTokens(b))
}

func dice(x, y []token) float64 {
	// The common subsequence isn't unique, fix the argument order to make the result symmetric.
	if compareTokens(x, y) > 0 {
		x, y = y, x
	}
	kx := make([]string, len(x))
	for i, tok := range x {
		kx[i] = tok.key
	}
	ky := make([]string, len(y))
	for i, tok := range y {
		ky[i] = tok.key
	}
	rx, _ := myers.Diff(kx, ky)

	lcs, total := 0, 0
	for i, tok := range x {
		if !rx[i] {
			lcs += tok.len
		}
		total += tok.len
	}
	for _, tok := range y {
		total += tok.len
	}
	if total == 0 {
		return 1
	}
	return 2 * float64(lcs) / float64(total)
}

func compareTokens(x, y []token) int {
	return slices.CompareFunc(x, y, func(a, b token) int { return strings.Compare(a.key, b.key) })
}

func tokens(b Block) []token {
	switch b := b.(type) {
	case *Paragraph:
		out := make([]token, len(b.Groups))
		for i, g := range b.Groups {
			out[i] = groupToken(g)
		}
		return out
	case *Table:
		var out []token
		for _, c := range b.Cells() {
			out = append(out, cellToken(c))
		}
		return out
	default:
		panic("never reached")
	}
}

func rowTokens(r *Row) []token {
	out := make([]token, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = cellToken(c)
	}
	return out
}

func groupToken(g RunGroup) token {
	if len(g.Runs) > 0 {
		if img, ok := g.Runs[0].(Image); ok {
			return token{key: "\x00" + img.identity(), len: 1}
		}
	}
	text := g.Text()
	return token{key: text, len: utf8.RuneCountInString(text)}
}

func cellToken(c *Cell) token {
	var sb strings.Builder
	for _, b := range c.Blocks {
		writeText(&sb, b)
	}
	return token{key: sb.String(), len: len(c.Blocks)}
}

// writeText writes the text of b with length prefixes, so that different block structures never
// produce the same key.
func writeText(sb *strings.Builder, b Block) {
	var inner strings.Builder
	switch b := b.(type) {
	case *Paragraph:
		inner.WriteByte('p')
		for _, g := range b.Groups {
			inner.WriteString(groupToken(g).key)
		}
	case *Table:
		inner.WriteByte('t')
		for _, r := range b.Rows {
			inner.WriteByte('[')
			for _, c := range r.Cells {
				writeField(&inner, cellToken(c).key)
			}
			inner.WriteByte(']')
		}
	default:
		panic("never reached")
	}
	writeField(sb, inner.String())
}

func writeField(sb *strings.Builder, s string) {
	sb.WriteString(strconv.Itoa(len(s)))
	sb.WriteByte(':')
	sb.WriteString(s)
}
