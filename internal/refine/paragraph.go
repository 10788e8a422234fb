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

package refine

import (
	"slices"

	"znkr.io/docdiff/document"
	"znkr.io/docdiff/internal/correlate"
)

// LineBreakMarker replaces a changed newline to make it visible.
const LineBreakMarker = "↵\n"

// Paragraph compares the chunks of x and y and returns tagged copies of both paragraphs.
//
// Unchanged chunks are copied as they are. Consecutive changed chunks with the same tag are
// collected in a single run group.
func Paragraph(c *correlate.Correlator, x, y *document.Paragraph) (left, right *document.Paragraph) {
	cx, cy := correlate.Correlate(c, x.Groups, y.Groups, document.RunGroup.Equal)
	return tagChunks(x, cx, document.Delete), tagChunks(y, cy, document.Add)
}

func tagChunks(p *document.Paragraph, corr []int, oneSided document.Change) *document.Paragraph {
	out := &document.Paragraph{Align: p.Align}
	var cur document.RunGroup
	flush := func() {
		if len(cur.Runs) > 0 {
			out.Groups = append(out.Groups, cur)
		}
		cur = document.RunGroup{}
	}
	for i, g := range p.Groups {
		tag := tagFor(corr[i], oneSided)
		if tag.IsZero() {
			flush()
			out.Groups = append(out.Groups, document.RunGroup{Runs: slices.Clone(g.Runs)})
			continue
		}
		if tag != cur.Tag {
			flush()
			cur.Tag = tag
		}
		if isNewline(g) {
			cur.Runs = append(cur.Runs, document.Run{Text: LineBreakMarker})
		} else {
			cur.Runs = append(cur.Runs, g.Runs...)
		}
	}
	flush()
	return out
}

func isNewline(g document.RunGroup) bool {
	return len(g.Runs) == 1 && g.Runs[0] == document.Inline(document.Run{Text: "\n"})
}
