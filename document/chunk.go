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

import "strings"

type charType int

const (
	noChar charType = iota
	spaceChar
	newlineChar
	wordChar
)

func typeOf(c rune) charType {
	switch c {
	case ' ':
		return spaceChar
	case '\n':
		return newlineChar
	default:
		return wordChar
	}
}

// NewParagraph returns a paragraph with the given alignment whose groups are the chunks of
// inlines, see [SplitRuns].
func NewParagraph(align Align, inlines ...Inline) *Paragraph {
	return &Paragraph{Align: align, Groups: SplitRuns(inlines)}
}

// SplitRuns splits inline elements into chunks: words, runs of spaces, and newlines. Every newline
// is a chunk of its own and uses the default style. An image is a chunk of its own, too.
//
// A word that crosses a style change results in a chunk of several runs.
func SplitRuns(inlines []Inline) []RunGroup {
	var (
		groups []RunGroup
		cur    []Inline
		text   strings.Builder
		typ    = noChar
	)
	flushText := func(style Style) {
		if text.Len() == 0 {
			return
		}
		if typ == newlineChar {
			style = Style{}
		}
		cur = append(cur, Run{Text: text.String(), Style: style})
		text.Reset()
	}
	flushGroup := func() {
		if len(cur) > 0 {
			groups = append(groups, RunGroup{Runs: cur})
			cur = nil
		}
	}

	for _, in := range inlines {
		switch in := in.(type) {
		case Run:
			for _, c := range in.Text {
				t := typeOf(c)
				if typ != noChar && (typ == newlineChar || t != typ) {
					flushText(in.Style)
					flushGroup()
				}
				text.WriteRune(c)
				typ = t
			}
			flushText(in.Style)
		case Image:
			flushGroup()
			groups = append(groups, RunGroup{Runs: []Inline{in}})
			typ = noChar
		default:
			panic("never reached")
		}
	}
	flushGroup()
	return groups
}

// MergeRuns joins adjacent runs that share a style. A run consisting of a single newline joins
// the preceding run regardless of its style. Images are kept as they are.
func MergeRuns(inlines []Inline) []Inline {
	var out []Inline
	for i := 0; i < len(inlines); {
		run, ok := inlines[i].(Run)
		if !ok {
			out = append(out, inlines[i])
			i++
			continue
		}
		var sb strings.Builder
		sb.WriteString(run.Text)
		j := i + 1
		for ; j < len(inlines); j++ {
			next, ok := inlines[j].(Run)
			if !ok || (next.Style != run.Style && next.Text != "\n") {
				break
			}
			sb.WriteString(next.Text)
		}
		out = append(out, Run{Text: sb.String(), Style: run.Style})
		i = j
	}
	return out
}

// Text returns the text of all runs in g. Images are skipped.
func (g RunGroup) Text() string {
	var sb strings.Builder
	for _, in := range g.Runs {
		if r, ok := in.(Run); ok {
			sb.WriteString(r.Text)
		}
	}
	return sb.String()
}

// Text returns the text of all runs in p. Images are skipped.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, g := range p.Groups {
		sb.WriteString(g.Text())
	}
	return sb.String()
}
