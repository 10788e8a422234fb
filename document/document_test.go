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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreCaches = cmpopts.IgnoreUnexported(Paragraph{}, Table{}, Row{}, Cell{})

func para(text string) *Paragraph {
	return NewParagraph("left", Run{Text: text})
}

func table(rows ...[]string) *Table {
	t := &Table{}
	for _, r := range rows {
		row := &Row{}
		for _, text := range r {
			row.Cells = append(row.Cells, NewCell(para(text)))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func TestEqual(t *testing.T) {
	bold := Style{Bold: true}
	tagged := para("The cat sat.")
	tagged.Groups[2].Tag = Tag{Change: Modify, ID: 3}
	taggedTable := table([]string{"1", "2"})
	taggedTable.Rows[0].Cells[1].Tag = Tag{Change: Add}

	tests := []struct {
		name string
		a, b Block
		want bool
	}{
		{
			name: "same-paragraph",
			a:    para("The cat sat."),
			b:    para("The cat sat."),
			want: true,
		},
		{
			name: "different-text",
			a:    para("The cat sat."),
			b:    para("The dog sat."),
			want: false,
		},
		{
			name: "different-style",
			a:    NewParagraph("left", Run{Text: "x"}),
			b:    NewParagraph("left", Run{Text: "x", Style: bold}),
			want: false,
		},
		{
			name: "different-alignment",
			a:    NewParagraph("left", Run{Text: "x"}),
			b:    NewParagraph("center", Run{Text: "x"}),
			want: false,
		},
		{
			name: "paragraph-tags-are-ignored",
			a:    para("The cat sat."),
			b:    tagged,
			want: true,
		},
		{
			name: "cell-tags-are-ignored",
			a:    table([]string{"1", "2"}),
			b:    taggedTable,
			want: true,
		},
		{
			name: "different-kinds",
			a:    para(""),
			b:    &Table{},
			want: false,
		},
		{
			name: "different-cells",
			a:    table([]string{"1", "2"}),
			b:    table([]string{"1", "3"}),
			want: false,
		},
		{
			name: "image-hash-beats-source",
			a:    NewParagraph("left", Image{Src: "a.png", Hash: "abc", Wrap: "inline"}),
			b:    NewParagraph("left", Image{Src: "images/b.png", Hash: "abc", Wrap: "inline"}),
			want: true,
		},
		{
			name: "image-source-without-hash",
			a:    NewParagraph("left", Image{Src: "a.png", Wrap: "inline"}),
			b:    NewParagraph("left", Image{Src: "b.png", Wrap: "inline"}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(a, b) = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.want)
			}
			if tt.want && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal blocks have different hashes: %x != %x", tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestHash_stable(t *testing.T) {
	p := para("The cat sat.")
	h := p.Hash()
	if got := p.Hash(); got != h {
		t.Errorf("second Hash() = %x, want %x", got, h)
	}
	if got := p.Clone().Hash(); got != h {
		t.Errorf("Clone().Hash() = %x, want %x", got, h)
	}
	if got := para("The cat sat.").Hash(); got != h {
		t.Errorf("Hash() of an equal paragraph = %x, want %x", got, h)
	}
	if got := para("The cat sat!").Hash(); got == h {
		t.Errorf("Hash() of a different paragraph = %x, want something else", got)
	}
}

func TestClone(t *testing.T) {
	orig := table([]string{"1", "2"}, []string{"3"})
	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone, ignoreCaches); diff != "" {
		t.Errorf("Clone() differs [-orig,+clone]:\n%s", diff)
	}

	clone.Rows[0].Cells[0].Tag = Tag{Change: Delete}
	clone.Rows[1].Cells[0].Blocks[0].(*Paragraph).Groups[0].Tag = Tag{Change: Add}
	if !orig.Rows[0].Cells[0].Tag.IsZero() {
		t.Errorf("modifying a clone changed the original cell tag")
	}
	if !orig.Rows[1].Cells[0].Blocks[0].(*Paragraph).Groups[0].Tag.IsZero() {
		t.Errorf("modifying a clone changed the original group tag")
	}
}

func TestTag_String(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{Tag{}, ""},
		{Tag{Change: Add}, "add"},
		{Tag{Change: Delete}, "delete"},
		{Tag{Change: Modify}, "modify"},
		{Tag{Change: Modify, ID: 12}, "modify modify12"},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestSplitRuns(t *testing.T) {
	bold := Style{Bold: true}
	img := Image{Src: "a.png", Wrap: "inline"}

	tests := []struct {
		name    string
		inlines []Inline
		want    []RunGroup
	}{
		{
			name: "empty",
		},
		{
			name:    "words-and-spaces",
			inlines: []Inline{Run{Text: "The  cat"}},
			want: []RunGroup{
				{Runs: []Inline{Run{Text: "The"}}},
				{Runs: []Inline{Run{Text: "  "}}},
				{Runs: []Inline{Run{Text: "cat"}}},
			},
		},
		{
			name:    "every-newline-is-a-chunk",
			inlines: []Inline{Run{Text: "a\n\nb", Style: bold}},
			want: []RunGroup{
				{Runs: []Inline{Run{Text: "a", Style: bold}}},
				{Runs: []Inline{Run{Text: "\n"}}},
				{Runs: []Inline{Run{Text: "\n"}}},
				{Runs: []Inline{Run{Text: "b", Style: bold}}},
			},
		},
		{
			name:    "word-across-styles",
			inlines: []Inline{Run{Text: "ca", Style: bold}, Run{Text: "t sat"}},
			want: []RunGroup{
				{Runs: []Inline{Run{Text: "ca", Style: bold}, Run{Text: "t"}}},
				{Runs: []Inline{Run{Text: " "}}},
				{Runs: []Inline{Run{Text: "sat"}}},
			},
		},
		{
			name:    "image",
			inlines: []Inline{Run{Text: "see"}, img, Run{Text: "here"}},
			want: []RunGroup{
				{Runs: []Inline{Run{Text: "see"}}},
				{Runs: []Inline{img}},
				{Runs: []Inline{Run{Text: "here"}}},
			},
		},
		{
			name:    "empty-runs",
			inlines: []Inline{Run{}, Run{Text: "x"}, Run{}},
			want: []RunGroup{
				{Runs: []Inline{Run{Text: "x"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRuns(tt.inlines)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitRuns(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestMergeRuns(t *testing.T) {
	bold := Style{Bold: true}
	img := Image{Src: "a.png", Wrap: "inline"}

	in := []Inline{
		Run{Text: "a", Style: bold},
		Run{Text: " ", Style: bold},
		Run{Text: "\n"},
		Run{Text: "b"},
		Run{Text: "c"},
		img,
		Run{Text: "d"},
	}
	want := []Inline{
		Run{Text: "a \n", Style: bold},
		Run{Text: "bc"},
		img,
		Run{Text: "d"},
	}
	if diff := cmp.Diff(want, MergeRuns(in)); diff != "" {
		t.Errorf("MergeRuns(...) differs [-want,+got]:\n%s", diff)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b Block
		want float64
	}{
		{
			name: "identical",
			a:    para("The cat sat."),
			b:    para("The cat sat."),
			want: 1,
		},
		{
			name: "one-word-replaced",
			a:    para("The cat sat."),
			b:    para("The dog sat."),
			want: 0.75,
		},
		{
			name: "unrelated",
			a:    para("alpha"),
			b:    para("omega"),
			want: 0,
		},
		{
			name: "both-empty",
			a:    para(""),
			b:    para(""),
			want: 1,
		},
		{
			name: "one-empty",
			a:    para(""),
			b:    para("x"),
			want: 0,
		},
		{
			name: "different-kinds",
			a:    para("1"),
			b:    table([]string{"1"}),
			want: 0,
		},
		{
			name: "table-row-appended",
			a:    table([]string{"1", "2"}, []string{"3", "4"}),
			b:    table([]string{"1", "2"}, []string{"3", "4"}, []string{"5", "6"}),
			want: 0.8,
		},
		{
			name: "images",
			a:    NewParagraph("left", Run{Text: "ab"}, Image{Hash: "1"}),
			b:    NewParagraph("left", Run{Text: "ab"}, Image{Hash: "2"}),
			want: 2 * 2.0 / 6.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(a, b) = %v, want %v", got, tt.want)
			}
			if rev := Similarity(tt.b, tt.a); rev != got {
				t.Errorf("Similarity(b, a) = %v, want %v", rev, got)
			}
		})
	}
}

func TestSimilarity_symmetric(t *testing.T) {
	// Different common subsequences of the same size carry different weights.
	a := para("xx y")
	b := para("y xx")
	if ab, ba := Similarity(a, b), Similarity(b, a); ab != ba {
		t.Errorf("Similarity(a, b) = %v, Similarity(b, a) = %v, want the same", ab, ba)
	}
}

func TestRowSimilarity(t *testing.T) {
	x := table([]string{"1", "2", "3"}).Rows[0]
	y := table([]string{"1", "2", "x"}).Rows[0]
	if got, want := RowSimilarity(x, y), 2*2.0/6.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("RowSimilarity(...) = %v, want %v", got, want)
	}
}

func TestTextKey(t *testing.T) {
	plain := para("The cat sat.")
	bold := NewParagraph("left", Run{Text: "The cat sat.", Style: Style{Bold: true}})
	if TextKey(plain) != TextKey(bold) {
		t.Errorf("TextKey differs for paragraphs that only differ in style")
	}
	if TextKey(plain) == TextKey(para("The cat sat!")) {
		t.Errorf("TextKey is the same for paragraphs with different text")
	}
	if TextKey(para("")) == TextKey(&Table{}) {
		t.Errorf("TextKey is the same for an empty paragraph and an empty table")
	}
}

func TestTable_Cells(t *testing.T) {
	tbl := table([]string{"a", "b"}, []string{"c"})
	var got []CellRef
	var text []string
	for ref, c := range tbl.Cells() {
		got = append(got, ref)
		text = append(text, c.Blocks[0].(*Paragraph).Text())
	}
	if diff := cmp.Diff([]CellRef{{0, 0}, {0, 1}, {1, 0}}, got); diff != "" {
		t.Errorf("Cells() refs differ [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, text); diff != "" {
		t.Errorf("Cells() cells differ [-want,+got]:\n%s", diff)
	}
}

func TestDocument_Images(t *testing.T) {
	img1 := Image{Src: "1.png"}
	img2 := Image{Src: "2.png"}
	doc := &Document{Blocks: []Block{
		NewParagraph("left", Run{Text: "x"}, img1),
		&Table{Rows: []*Row{{Cells: []*Cell{NewCell(NewParagraph("left", img2))}}}},
	}}
	var got []Image
	for img := range doc.Images() {
		got = append(got, img)
	}
	if diff := cmp.Diff([]Image{img1, img2}, got); diff != "" {
		t.Errorf("Images() differs [-want,+got]:\n%s", diff)
	}
}
