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

// Package docyaml decodes documents from YAML.
//
// The format mirrors the document model:
//
//	blocks:
//	  - p: "plain paragraph text"
//	  - paragraph:
//	      align: center
//	      runs:
//	        - text: "bold text"
//	          bold: true
//	        - image: {src: media/a.png, width: 20, height: 10, wrap: inline}
//	  - table:
//	      - ["1", "2"]
//	      - [{rowspan: 2, blocks: [{p: "x"}]}, "y"]
//
// A scalar cell is a cell with one plain paragraph. Text is split into chunks as by
// [document.NewParagraph]. Unknown fields are an error.
package docyaml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
	"znkr.io/docdiff/document"
)

// Decode reads a document from r. Relative image sources are resolved against dir.
func Decode(r io.Reader, dir string) (*document.Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f file
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	d := decoder{dir: dir}
	blocks, err := d.blocks(f.Blocks)
	if err != nil {
		return nil, err
	}
	return &document.Document{Blocks: blocks}, nil
}

// DecodeFile reads a document from the YAML file at path. Relative image sources are resolved
// against the directory of the file.
func DecodeFile(path string) (*document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, nil
}

type file struct {
	Blocks []block `yaml:"blocks"`
}

type block struct {
	P         *string    `yaml:"p"`
	Paragraph *paragraph `yaml:"paragraph"`
	Table     [][]cell   `yaml:"table"`
	line      int
}

type paragraph struct {
	Align string `yaml:"align"`
	Runs  []run  `yaml:"runs"`
}

type run struct {
	Text      *string `yaml:"text"`
	Image     *image  `yaml:"image"`
	Bold      bool    `yaml:"bold"`
	Underline bool    `yaml:"underline"`
	Italic    bool    `yaml:"italic"`
	Strike    bool    `yaml:"strike"`
	Caps      bool    `yaml:"caps"`
	SmallCaps bool    `yaml:"smallcaps"`
	Font      string  `yaml:"font"`
	Size      int     `yaml:"size"`
	Color     string  `yaml:"color"`
	VAlign    string  `yaml:"valign"`
	ListLevel int     `yaml:"ilvl"`
	ListID    int     `yaml:"numid"`
	line      int
}

type image struct {
	Src    string `yaml:"src"`
	Hash   string `yaml:"hash"`
	Wrap   string `yaml:"wrap"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type cell struct {
	RowSpan int     `yaml:"rowspan"`
	ColSpan int     `yaml:"colspan"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	VAlign  string  `yaml:"valign"`
	Blocks  []block `yaml:"blocks"`
	text    *string
}

// Nested values are decoded with [yaml.Node.Decode], which doesn't know about unknown fields.
// Every mapping therefore checks its own fields.

func (b *block) UnmarshalYAML(n *yaml.Node) error {
	type plain block
	if err := decodeMapping(n, (*plain)(b), "p", "paragraph", "table"); err != nil {
		return err
	}
	b.line = n.Line
	return nil
}

func (p *paragraph) UnmarshalYAML(n *yaml.Node) error {
	type plain paragraph
	return decodeMapping(n, (*plain)(p), "align", "runs")
}

func (r *run) UnmarshalYAML(n *yaml.Node) error {
	type plain run
	err := decodeMapping(n, (*plain)(r), "text", "image", "bold", "underline", "italic", "strike",
		"caps", "smallcaps", "font", "size", "color", "valign", "ilvl", "numid")
	if err != nil {
		return err
	}
	r.line = n.Line
	return nil
}

func (img *image) UnmarshalYAML(n *yaml.Node) error {
	type plain image
	return decodeMapping(n, (*plain)(img), "src", "hash", "wrap", "width", "height")
}

func (c *cell) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		text := n.Value
		c.text = &text
		return nil
	}
	type plain cell
	return decodeMapping(n, (*plain)(c), "rowspan", "colspan", "width", "height", "valign", "blocks")
}

func decodeMapping(n *yaml.Node, v any, fields ...string) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	for i := 0; i < len(n.Content); i += 2 {
		if key := n.Content[i]; !slices.Contains(fields, key.Value) {
			return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}
	return n.Decode(v)
}

type decoder struct {
	dir string
}

func (d *decoder) blocks(in []block) ([]document.Block, error) {
	var out []document.Block
	for _, b := range in {
		block, err := d.block(b)
		if err != nil {
			return nil, err
		}
		out = append(out, block)
	}
	return out, nil
}

func (d *decoder) block(b block) (document.Block, error) {
	n := 0
	for _, set := range []bool{b.P != nil, b.Paragraph != nil, b.Table != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return nil, fmt.Errorf("line %d: a block needs exactly one of p, paragraph, or table", b.line)
	}

	switch {
	case b.P != nil:
		return document.NewParagraph("left", document.Run{Text: *b.P}), nil
	case b.Paragraph != nil:
		return d.paragraph(b.Paragraph)
	default:
		return d.table(b.Table)
	}
}

func (d *decoder) paragraph(p *paragraph) (*document.Paragraph, error) {
	align := document.Align(p.Align)
	if align == "" {
		align = "left"
	}
	var inlines []document.Inline
	for _, r := range p.Runs {
		switch {
		case r.Text != nil && r.Image != nil:
			return nil, fmt.Errorf("line %d: a run can't have both text and an image", r.line)
		case r.Text != nil:
			inlines = append(inlines, document.Run{Text: *r.Text, Style: document.Style{
				Bold:      r.Bold,
				Underline: r.Underline,
				Italic:    r.Italic,
				Strike:    r.Strike,
				Caps:      r.Caps,
				SmallCaps: r.SmallCaps,
				Font:      r.Font,
				Size:      r.Size,
				Color:     r.Color,
				VertAlign: document.VertAlign(r.VAlign),
				ListLevel: r.ListLevel,
				ListID:    r.ListID,
			}})
		case r.Image != nil:
			inlines = append(inlines, d.image(r.Image))
		default:
			return nil, fmt.Errorf("line %d: a run needs text or an image", r.line)
		}
	}
	return document.NewParagraph(align, inlines...), nil
}

func (d *decoder) image(img *image) document.Image {
	out := document.Image{
		Width:  img.Width,
		Height: img.Height,
		Wrap:   img.Wrap,
		Src:    img.Src,
		Hash:   img.Hash,
	}
	if out.Wrap == "" {
		out.Wrap = "inline"
	}
	if out.Src != "" && d.dir != "" && !filepath.IsAbs(out.Src) && !strings.Contains(out.Src, "://") {
		out.Src = filepath.Join(d.dir, out.Src)
	}
	if out.Hash == "" {
		if data, err := os.ReadFile(out.Src); err == nil {
			out.Hash = document.ImageHash(data)
		} else {
			out.Hash = document.ImageHash([]byte(img.Src))
		}
	}
	return out
}

func (d *decoder) table(rows [][]cell) (*document.Table, error) {
	t := &document.Table{}
	for _, r := range rows {
		row := &document.Row{}
		for _, c := range r {
			cell, err := d.cell(c)
			if err != nil {
				return nil, err
			}
			row.Cells = append(row.Cells, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (d *decoder) cell(c cell) (*document.Cell, error) {
	if c.text != nil {
		return document.NewCell(document.NewParagraph("left", document.Run{Text: *c.text})), nil
	}
	blocks, err := d.blocks(c.Blocks)
	if err != nil {
		return nil, err
	}
	out := document.NewCell(blocks...)
	if c.RowSpan > 0 {
		out.RowSpan = c.RowSpan
	}
	if c.ColSpan > 0 {
		out.ColSpan = c.ColSpan
	}
	if c.VAlign != "" {
		out.VAlign = c.VAlign
	}
	out.Width, out.Height = c.Width, c.Height
	return out, nil
}
