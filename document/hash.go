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
	"encoding/binary"
	"encoding/hex"
	"io"
	"sync/atomic"

	"github.com/zeebo/blake3"
)

// Node markers, every hashed node starts with one.
const (
	markParagraph byte = 'p'
	markTable     byte = 't'
	markRow       byte = 'r'
	markCell      byte = 'c'
	markGroup     byte = 'g'
	markRun       byte = 'R'
	markImage     byte = 'i'
)

type hasher struct {
	h   *blake3.Hasher
	buf [binary.MaxVarintLen64]byte
}

func newHasher(mark byte) *hasher {
	h := &hasher{h: blake3.New()}
	h.buf[0] = mark
	h.h.Write(h.buf[:1])
	return h
}

func (h *hasher) int(v int) {
	n := binary.PutVarint(h.buf[:], int64(v))
	h.h.Write(h.buf[:n])
}

func (h *hasher) uint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:8], v)
	h.h.Write(h.buf[:8])
}

func (h *hasher) bool(v bool) {
	if v {
		h.int(1)
	} else {
		h.int(0)
	}
}

// string writes s with a length prefix to keep the encoding injective.
func (h *hasher) string(s string) {
	h.int(len(s))
	io.WriteString(h.h, s)
}

func (h *hasher) style(s Style) {
	h.bool(s.Bold)
	h.bool(s.Underline)
	h.bool(s.Italic)
	h.bool(s.Strike)
	h.bool(s.Caps)
	h.bool(s.SmallCaps)
	h.string(s.Font)
	h.int(s.Size)
	h.string(s.Color)
	h.string(string(s.VertAlign))
	h.int(s.ListLevel)
	h.int(s.ListID)
}

func (h *hasher) inline(in Inline) {
	switch in := in.(type) {
	case Run:
		h.int(int(markRun))
		h.string(in.Text)
		h.style(in.Style)
	case Image:
		h.int(int(markImage))
		h.int(in.Width)
		h.int(in.Height)
		h.string(in.Wrap)
		h.string(in.identity())
	default:
		panic("never reached")
	}
}

func (h *hasher) sum() uint64 {
	return binary.LittleEndian.Uint64(h.h.Sum(nil))
}

// memo returns the cached value in c or computes and caches it. Zero is reserved for "not
// computed yet".
func memo(c *atomic.Uint64, compute func() uint64) uint64 {
	if v := c.Load(); v != 0 {
		return v
	}
	v := compute()
	if v == 0 {
		v = 1
	}
	c.Store(v)
	return v
}

// Hash returns a structural hash of p. Tags are ignored.
func (p *Paragraph) Hash() uint64 {
	return memo(&p.hash, func() uint64 {
		h := newHasher(markParagraph)
		h.string(string(p.Align))
		h.int(len(p.Groups))
		for _, g := range p.Groups {
			h.int(int(markGroup))
			h.int(len(g.Runs))
			for _, in := range g.Runs {
				h.inline(in)
			}
		}
		return h.sum()
	})
}

// Hash returns a structural hash of t. Tags are ignored.
func (t *Table) Hash() uint64 {
	return memo(&t.hash, func() uint64 {
		h := newHasher(markTable)
		h.int(len(t.Rows))
		for _, r := range t.Rows {
			h.uint64(r.Hash())
		}
		return h.sum()
	})
}

// Hash returns a structural hash of r. Tags are ignored.
func (r *Row) Hash() uint64 {
	return memo(&r.hash, func() uint64 {
		h := newHasher(markRow)
		h.int(len(r.Cells))
		for _, c := range r.Cells {
			h.uint64(c.Hash())
		}
		return h.sum()
	})
}

// Hash returns a structural hash of c. Tags are ignored.
func (c *Cell) Hash() uint64 {
	return memo(&c.hash, func() uint64 {
		h := newHasher(markCell)
		h.int(c.RowSpan)
		h.int(c.ColSpan)
		h.int(c.Width)
		h.int(c.Height)
		h.string(c.VAlign)
		h.int(len(c.Blocks))
		for _, b := range c.Blocks {
			h.uint64(b.Hash())
		}
		return h.sum()
	})
}

// TextKey returns a hash of the comparable text of b, i.e. the tokens used by [Similarity]. Blocks
// that differ only in formatting share a text key.
func TextKey(b Block) uint64 {
	h := newHasher(byte(b.Kind()))
	toks := tokens(b)
	h.int(len(toks))
	for _, tok := range toks {
		h.string(tok.key)
	}
	return h.sum()
}

// ImageHash returns the content hash of image data, suitable for [Image.Hash].
func ImageHash(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:16])
}

// identity returns the value that identifies the image content.
func (img Image) identity() string {
	if img.Hash != "" {
		return "#" + img.Hash
	}
	return "@" + img.Src
}
