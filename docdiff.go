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

package docdiff

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
	"znkr.io/docdiff/document"
	"znkr.io/docdiff/internal/align"
	"znkr.io/docdiff/internal/blockalign"
	"znkr.io/docdiff/internal/config"
	"znkr.io/docdiff/internal/correlate"
	"znkr.io/docdiff/internal/refine"
	"znkr.io/docdiff/render/html"
)

// ErrNoMaterializer is returned by [Compare] if a document references images but there is no
// [AssetMaterializer] to write them.
var ErrNoMaterializer = errors.New("docdiff: document references images but no asset materializer is set")

// AssetMaterializer writes the images referenced by a document to the place the rendered
// comparison refers to them. It may update the sources of the images in the document.
// Materializing a document more than once must be safe.
type AssetMaterializer interface {
	Materialize(ctx context.Context, doc *document.Document) error
}

// Group is a part of a block alignment, see [AlignBlocks].
type Group = blockalign.Group[document.Block]

// Diff compares x and y and returns the comparison document.
//
// The comparison consists of a single table with two cells per row. The left cell holds blocks of
// x and the right cell blocks of y. Rows appear in document order. A row is one of
//
//   - an addition: the right cell is tagged [document.Add] and the left cell is empty,
//   - a deletion: the left cell is tagged [document.Delete] and the right cell is empty,
//   - an unchanged pair of blocks: both cells are untagged,
//   - a modified pair of blocks: both cells are tagged [document.Modify] and hold a paragraph or
//     table with tags on all changed words or cells.
//
// Correlation ids are unique within the result and increase in row order. The inputs are not
// modified and don't share memory with the result.
//
// Diff only returns an error if ctx is canceled.
//
// The following options are supported: [Threshold], [MaxCells], [Parallelism], [Logger]
func Diff(ctx context.Context, x, y *document.Document, opts ...Option) (*document.Document, error) {
	cfg := config.FromOptions(opts, config.Threshold|config.MaxCells|config.Parallelism|config.Logger)
	return diff(ctx, x, y, cfg)
}

// Compare compares x and y and writes the comparison as an HTML page to w.
//
// Before the page is written, m materializes all images of x and y. If any document has images
// and m is nil, Compare returns [ErrNoMaterializer].
//
// The following options are supported: [Threshold], [MaxCells], [Parallelism], [Logger]
func Compare(ctx context.Context, w io.Writer, x, y *document.Document, m AssetMaterializer, opts ...Option) error {
	cfg := config.FromOptions(opts, config.Threshold|config.MaxCells|config.Parallelism|config.Logger)
	for _, side := range []struct {
		name string
		doc  *document.Document
	}{{"old", x}, {"new", y}} {
		if !hasImages(side.doc) {
			continue
		}
		if m == nil {
			return ErrNoMaterializer
		}
		if err := m.Materialize(ctx, side.doc); err != nil {
			return fmt.Errorf("materializing images of the %s document: %w", side.name, err)
		}
	}

	result, err := diff(ctx, x, y, cfg)
	if err != nil {
		return err
	}
	return html.Render(w, result, html.Title("Diff Results"), html.DiffStyle())
}

// AlignBlocks aligns x and y by similarity and returns the alignment as a list of groups in input
// order. Each group is a matched pair, a run of deleted blocks, or a run of added blocks. Adjacent
// runs of deleted and added blocks are reported as a deletion followed by an addition.
//
// The following options are supported: [Threshold], [MaxCells], [Logger]
func AlignBlocks(x, y []document.Block, opts ...Option) []Group {
	cfg := config.FromOptions(opts, config.Threshold|config.MaxCells|config.Logger)
	return blockalign.Align(x, y, document.Similarity, cfg)
}

func diff(ctx context.Context, x, y *document.Document, cfg config.Config) (*document.Document, error) {
	log := cfg.Logger
	groups := segment(x.Blocks, y.Blocks, cfg)
	log.DebugContext(ctx, "aligned blocks", "x", len(x.Blocks), "y", len(y.Blocks), "rows", len(groups))

	// Every group is refined with its own correlator. Ids are made unique afterwards, that keeps
	// them independent of the order in which groups finish.
	rows := make([]*document.Row, len(groups))
	used := make([]int, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i, grp := range groups {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c := correlate.New()
			rows[i] = row(c, grp, cfg)
			used[i] = c.Next() - 1
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	offset := 0
	for i, r := range rows {
		for _, c := range r.Cells {
			for _, b := range c.Blocks {
				refine.ShiftIDs(b, offset)
			}
		}
		offset += used[i]
	}
	log.DebugContext(ctx, "refined rows", "rows", len(rows), "correlations", offset)

	return &document.Document{Blocks: []document.Block{&document.Table{Rows: rows}}}, nil
}

// segment aligns blocks with identical text and aligns the blocks in between by similarity.
func segment(x, y []document.Block, cfg config.Config) []Group {
	kx := make([]uint64, len(x))
	for i, b := range x {
		kx[i] = document.TextKey(b)
	}
	ky := make([]uint64, len(y))
	for i, b := range y {
		ky[i] = document.TextKey(b)
	}

	var (
		groups []Group
		dels   []document.Block
		ins    []document.Block
	)
	flush := func() {
		groups = append(groups, blockalign.Align(dels, ins, document.Similarity, cfg)...)
		dels, ins = nil, nil
	}
	for _, e := range align.Exact(kx, ky) {
		switch e.Op {
		case align.Match:
			flush()
			groups = append(groups, Group{X: []document.Block{x[e.X]}, Y: []document.Block{y[e.Y]}})
		case align.Delete:
			dels = append(dels, x[e.X])
		case align.Insert:
			ins = append(ins, y[e.Y])
		default:
			panic("never reached")
		}
	}
	flush()
	return groups
}

// row builds the comparison row for a group.
func row(c *correlate.Correlator, g Group, cfg config.Config) *document.Row {
	left, right := document.NewCell(), document.NewCell()
	switch {
	case len(g.X) == 0:
		right.Tag = document.Tag{Change: document.Add}
		right.Blocks = document.CloneBlocks(g.Y)
	case len(g.Y) == 0:
		left.Tag = document.Tag{Change: document.Delete}
		left.Blocks = document.CloneBlocks(g.X)
	default:
		if len(g.X) != 1 || len(g.Y) != 1 {
			panic(fmt.Sprintf("docdiff: a modified group needs one block on each side, got %d and %d", len(g.X), len(g.Y)))
		}
		bx, by := g.X[0], g.Y[0]
		if document.Equal(bx, by) {
			left.Blocks = []document.Block{document.CloneBlock(bx)}
			right.Blocks = []document.Block{document.CloneBlock(by)}
			break
		}
		left.Tag = document.Tag{Change: document.Modify}
		right.Tag = document.Tag{Change: document.Modify}
		l, r := refine.Pair(c, bx, by, cfg)
		left.Blocks = []document.Block{l}
		right.Blocks = []document.Block{r}
	}
	return &document.Row{Cells: []*document.Cell{left, right}}
}

func hasImages(doc *document.Document) bool {
	for range doc.Images() {
		return true
	}
	return false
}
