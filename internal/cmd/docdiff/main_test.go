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

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"znkr.io/docdiff/document"
)

var (
	discard   = slog.New(slog.NewTextHandler(io.Discard, nil))
	cmpSorted = cmpopts.SortSlices(func(a, b string) bool { return a < b })
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return name
}

func defaults(old, new string) *cli {
	return &cli{Old: old, New: new, Format: "html", Threshold: 0.5, MaxCells: 10_000, Parallelism: 1}
}

func TestRun_text(t *testing.T) {
	dir := t.TempDir()
	c := defaults(
		writeFile(t, filepath.Join(dir, "old.yaml"), `blocks: [{p: "The cat sat."}]`),
		writeFile(t, filepath.Join(dir, "new.yaml"), `blocks: [{p: "The dog sat."}]`),
	)
	c.Format = "text"

	var buf bytes.Buffer
	if err := c.run(context.Background(), &buf, discard); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	want := `row 1
  left[modify]: p "The " {modify modify1 "cat"} " sat."
  right[modify]: p "The " {modify modify1 "dog"} " sat."
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("run() output differs [-want,+got]:\n%s", diff)
	}
}

func TestRun_html(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"), "first image")
	writeFile(t, filepath.Join(dir, "b.png"), "second image")
	c := defaults(
		writeFile(t, filepath.Join(dir, "old.yaml"), `blocks: [{paragraph: {runs: [{image: {src: a.png}}]}}]`),
		writeFile(t, filepath.Join(dir, "new.yaml"), `blocks: [{paragraph: {runs: [{image: {src: b.png}}]}}]`),
	)
	c.Assets = filepath.Join(dir, "out")

	// Running twice must not fail because of existing assets.
	for range 2 {
		var buf bytes.Buffer
		if err := c.run(context.Background(), &buf, discard); err != nil {
			t.Fatalf("run() failed: %v", err)
		}
		for _, img := range []string{"first image", "second image"} {
			want := `src="images/` + document.ImageHash([]byte(img)) + `.png"`
			if !strings.Contains(buf.String(), want) {
				t.Errorf("run() output doesn't contain %s:\n%s", want, buf.String())
			}
		}
	}

	entries, err := os.ReadDir(filepath.Join(c.Assets, "images"))
	if err != nil {
		t.Fatalf("failed to read assets: %v", err)
	}
	var got []string
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(c.Assets, "images", e.Name()))
		if err != nil {
			t.Fatalf("failed to read asset: %v", err)
		}
		got = append(got, string(data))
	}
	if diff := cmp.Diff([]string{"first image", "second image"}, got, cmpSorted); diff != "" {
		t.Errorf("assets differ [-want,+got]:\n%s", diff)
	}
}

func TestRun_htmlWithoutAssets(t *testing.T) {
	dir := t.TempDir()
	c := defaults(
		writeFile(t, filepath.Join(dir, "old.yaml"), `blocks: [{paragraph: {runs: [{image: {src: a.png}}]}}]`),
		writeFile(t, filepath.Join(dir, "new.yaml"), `blocks: []`),
	)
	if err := c.run(context.Background(), io.Discard, discard); err == nil {
		t.Errorf("run() succeeded without an assets directory")
	}
}

func TestRun_missingImage(t *testing.T) {
	dir := t.TempDir()
	c := defaults(
		writeFile(t, filepath.Join(dir, "old.yaml"), `blocks: [{paragraph: {runs: [{image: {src: missing.png}}]}}]`),
		writeFile(t, filepath.Join(dir, "new.yaml"), `blocks: []`),
	)
	c.Assets = filepath.Join(dir, "out")
	err := c.run(context.Background(), io.Discard, discard)
	if err == nil || !strings.Contains(err.Error(), "copying image") {
		t.Errorf("run() error = %v, want an error copying the image", err)
	}
}

func TestMaterialize_idempotent(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "a.png"), "image")
	doc := &document.Document{Blocks: []document.Block{
		document.NewParagraph("left", document.Image{Src: src}),
		&document.Table{Rows: []*document.Row{{Cells: []*document.Cell{
			document.NewCell(document.NewParagraph("left", document.Image{Src: src})),
		}}}},
	}}
	m := &dirMaterializer{dir: filepath.Join(dir, "out"), logger: discard}
	for range 2 {
		if err := m.Materialize(context.Background(), doc); err != nil {
			t.Fatalf("Materialize() failed: %v", err)
		}
	}
	want := "images/" + document.ImageHash([]byte("image")) + ".png"
	for img := range doc.Images() {
		if img.Src != want {
			t.Errorf("image source = %q, want %q", img.Src, want)
		}
	}
}
