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

// Package html renders documents as HTML pages.
//
// Tagged content is rendered with the tag as its class attribute: cells become <td class="...">
// and tagged run groups become <span class="...">. Use [DiffStyle] to include a style sheet that
// colors these classes and a script that highlights both sides of a modification on hover.
package html

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"znkr.io/docdiff/document"
)

var (
	//go:embed diff.css
	diffCSS string

	//go:embed script.js
	hoverScript string
)

type options struct {
	title     string
	diffStyle bool
}

// Option configures the output of [Render].
type Option func(*options)

// Title sets the page title.
func Title(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// DiffStyle includes the style sheet and the hover script for comparisons.
func DiffStyle() Option {
	return func(o *options) {
		o.diffStyle = true
	}
}

// Render writes doc as an HTML page to w.
func Render(w io.Writer, doc *document.Document, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	head := elem(atom.Head)
	head.AppendChild(elem(atom.Meta, attr("charset", "utf-8")))
	title := elem(atom.Title)
	title.AppendChild(text(o.title))
	head.AppendChild(title)
	if o.diffStyle {
		style := elem(atom.Style)
		style.AppendChild(text(diffCSS))
		head.AppendChild(style)
		script := elem(atom.Script)
		script.AppendChild(text(hoverScript))
		head.AppendChild(script)
	}

	body := elem(atom.Body)
	for _, b := range doc.Blocks {
		body.AppendChild(Block(b))
	}

	root := elem(atom.Html)
	root.AppendChild(head)
	root.AppendChild(body)

	page := &html.Node{Type: html.DocumentNode}
	page.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	page.AppendChild(root)
	if err := html.Render(w, page); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}

// Block returns the HTML node for b.
func Block(b document.Block) *html.Node {
	switch b := b.(type) {
	case *document.Paragraph:
		return paragraph(b)
	case *document.Table:
		return table(b)
	default:
		panic("never reached")
	}
}

func paragraph(p *document.Paragraph) *html.Node {
	var attrs []html.Attribute
	if p.Align != "" {
		attrs = append(attrs, attr("align", string(p.Align)))
	}
	n := elem(atom.P, attrs...)

	// Untagged runs are merged across chunk boundaries, tagged groups are rendered as they are.
	var pending []document.Inline
	flush := func() {
		for _, in := range document.MergeRuns(pending) {
			inline(n, in)
		}
		pending = pending[:0]
	}
	for _, g := range p.Groups {
		if g.Tag.IsZero() {
			pending = append(pending, g.Runs...)
			continue
		}
		flush()
		class := g.Tag.String()
		for _, in := range g.Runs {
			if _, ok := in.(document.Image); ok {
				class += " block"
				break
			}
		}
		span := elem(atom.Span, attr("class", class))
		for _, in := range g.Runs {
			inline(span, in)
		}
		n.AppendChild(span)
	}
	flush()
	return n
}

func inline(parent *html.Node, in document.Inline) {
	switch in := in.(type) {
	case document.Run:
		run(parent, in)
	case document.Image:
		parent.AppendChild(image(in))
	default:
		panic("never reached")
	}
}

func run(parent *html.Node, r document.Run) {
	s := r.Style
	var css []string
	if s.Font != "" {
		css = append(css, fmt.Sprintf("font-family: '%s'", s.Font))
	}
	if s.Size != 0 {
		css = append(css, fmt.Sprintf("font-size: %dpt", s.Size/2))
	}
	if s.Color != "" {
		css = append(css, "color: #"+s.Color)
	}
	if s.Underline {
		css = append(css, "text-decoration: underline")
	}
	if s.Italic {
		css = append(css, "font-style: italic")
	}
	if s.Bold {
		css = append(css, "font-weight: bold")
	}
	if s.Caps {
		css = append(css, "text-transform: uppercase")
	}
	if s.SmallCaps {
		css = append(css, "font-variant: small-caps")
	}
	if s.Strike && !s.Underline {
		css = append(css, "text-decoration: line-through")
	}

	target := parent
	wrap := func(n *html.Node) {
		target.AppendChild(n)
		target = n
	}
	if len(css) > 0 {
		wrap(elem(atom.Span, attr("style", strings.Join(css, "; "))))
	}
	switch s.VertAlign {
	case document.Subscript:
		wrap(elem(atom.Sub))
	case document.Superscript:
		wrap(elem(atom.Sup))
	}
	// A second text decoration needs its own element.
	if s.Strike && s.Underline {
		wrap(elem(atom.Span, attr("style", "text-decoration: line-through")))
	}
	appendText(target, r.Text)
}

// appendText appends s to parent. Newlines become line breaks and whitespace that follows other
// whitespace becomes a non-breaking space, so that it's not collapsed.
func appendText(parent *html.Node, s string) {
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			parent.AppendChild(text(sb.String()))
			sb.Reset()
		}
	}
	prevSpace := false
	for _, c := range s {
		switch {
		case c == '\n':
			flush()
			parent.AppendChild(elem(atom.Br))
			prevSpace = true
		case unicode.IsSpace(c):
			if prevSpace {
				sb.WriteRune('\u00a0')
			} else {
				sb.WriteRune(c)
			}
			prevSpace = true
		default:
			sb.WriteRune(c)
			prevSpace = false
		}
	}
	flush()
}

func image(img document.Image) *html.Node {
	wrap := img.Wrap
	if wrap == "" {
		wrap = "inline"
	}
	style := "display: " + wrap
	if img.Height != 0 {
		style += fmt.Sprintf("; height: %dpx; width: %dpx", img.Height, img.Width)
	}
	attrs := []html.Attribute{attr("style", style)}
	if img.Src != "" {
		attrs = append(attrs, attr("src", img.Src))
	} else {
		attrs = append(attrs, attr("alt", "Unknown image"))
	}
	return elem(atom.Img, attrs...)
}

func table(t *document.Table) *html.Node {
	tbl := elem(atom.Table)
	for _, r := range t.Rows {
		tr := elem(atom.Tr)
		for _, c := range r.Cells {
			tr.AppendChild(cell(c))
		}
		tbl.AppendChild(tr)
	}
	p := elem(atom.P)
	p.AppendChild(tbl)
	return p
}

func cell(c *document.Cell) *html.Node {
	valign := c.VAlign
	if valign == "" {
		valign = "top"
	}
	css := []string{"vertical-align: " + valign}
	if c.Height != 0 {
		css = append(css, fmt.Sprintf("height: %dpx", c.Height))
	}
	if c.Width != 0 {
		css = append(css, fmt.Sprintf("width: %dpx", c.Width))
	}

	var attrs []html.Attribute
	if !c.Tag.IsZero() {
		attrs = append(attrs, attr("class", c.Tag.String()))
	}
	attrs = append(attrs,
		attr("rowspan", fmt.Sprint(max(1, c.RowSpan))),
		attr("colspan", fmt.Sprint(max(1, c.ColSpan))),
		attr("style", strings.Join(css, "; ")),
	)
	td := elem(atom.Td, attrs...)
	for _, b := range c.Blocks {
		td.AppendChild(Block(b))
	}
	return td
}

func elem(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
