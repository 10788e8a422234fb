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

package html

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"znkr.io/docdiff/document"
)

func renderBlock(t *testing.T, b document.Block) string {
	t.Helper()
	var sb strings.Builder
	if err := html.Render(&sb, Block(b)); err != nil {
		t.Fatalf("html.Render(...) failed: %v", err)
	}
	return sb.String()
}

func TestBlock(t *testing.T) {
	tests := []struct {
		name  string
		block document.Block
		want  string
	}{
		{
			name:  "whitespace",
			block: document.NewParagraph("left", document.Run{Text: "a  b\nc"}),
			want:  "<p align=\"left\">a \u00a0b<br/>c</p>",
		},
		{
			name: "tagged-group",
			block: &document.Paragraph{Align: "left", Groups: []document.RunGroup{
				{Runs: []document.Inline{document.Run{Text: "The"}}},
				{Runs: []document.Inline{document.Run{Text: " "}}},
				{Runs: []document.Inline{document.Run{Text: "cat"}}, Tag: document.Tag{Change: document.Modify, ID: 1}},
				{Runs: []document.Inline{document.Run{Text: " "}}},
				{Runs: []document.Inline{document.Run{Text: "sat."}}},
			}},
			want: `<p align="left">The <span class="modify modify1">cat</span> sat.</p>`,
		},
		{
			name: "style",
			block: document.NewParagraph("", document.Run{Text: "x", Style: document.Style{
				Bold:  true,
				Font:  "Arial",
				Size:  24,
				Color: "FF0000",
			}}),
			want: `<p><span style="font-family: &#39;Arial&#39;; font-size: 12pt; color: #FF0000; font-weight: bold">x</span></p>`,
		},
		{
			name: "strike-and-underline",
			block: document.NewParagraph("", document.Run{Text: "x", Style: document.Style{
				Strike:    true,
				Underline: true,
				VertAlign: document.Superscript,
			}}),
			want: `<p><span style="text-decoration: underline"><sup><span style="text-decoration: line-through">x</span></sup></span></p>`,
		},
		{
			name:  "image-without-source",
			block: document.NewParagraph("", document.Image{}),
			want:  `<p><img style="display: inline" alt="Unknown image"/></p>`,
		},
		{
			name: "tagged-image",
			block: &document.Paragraph{Groups: []document.RunGroup{
				{
					Runs: []document.Inline{document.Image{Src: "a.png", Width: 20, Height: 10, Wrap: "block"}},
					Tag:  document.Tag{Change: document.Add},
				},
			}},
			want: `<p><span class="add block"><img style="display: block; height: 10px; width: 20px" src="a.png"/></span></p>`,
		},
		{
			name: "table",
			block: &document.Table{Rows: []*document.Row{{Cells: []*document.Cell{
				{
					RowSpan: 1,
					ColSpan: 2,
					Height:  30,
					Blocks:  []document.Block{document.NewParagraph("left", document.Run{Text: "x"})},
					Tag:     document.Tag{Change: document.Delete},
				},
			}}}},
			want: `<p><table><tr><td class="delete" rowspan="1" colspan="2" style="vertical-align: top; height: 30px"><p align="left">x</p></td></tr></table></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderBlock(t, tt.block)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Block(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestRender(t *testing.T) {
	doc := &document.Document{Blocks: []document.Block{
		document.NewParagraph("left", document.Run{Text: "x"}),
	}}

	var sb strings.Builder
	if err := Render(&sb, doc, Title("T")); err != nil {
		t.Fatalf("Render(...) failed: %v", err)
	}
	want := `<!DOCTYPE html><html><head><meta charset="utf-8"/><title>T</title></head><body><p align="left">x</p></body></html>`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Render(...) differs [-want,+got]:\n%s", diff)
	}

	sb.Reset()
	if err := Render(&sb, doc, Title("Diff Results"), DiffStyle()); err != nil {
		t.Fatalf("Render(...) failed: %v", err)
	}
	for _, want := range []string{"<title>Diff Results</title>", "<style>", "td.modify", "<script>", "classList"} {
		if !strings.Contains(sb.String(), want) {
			t.Errorf("Render(..., DiffStyle()) output does not contain %q", want)
		}
	}
}
