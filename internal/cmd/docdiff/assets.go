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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"znkr.io/docdiff/document"
)

const imagesDir = "images"

// dirMaterializer copies images into the images directory below dir and points their sources
// to the copies, relative to dir.
type dirMaterializer struct {
	dir    string
	logger *slog.Logger
}

func (m *dirMaterializer) Materialize(ctx context.Context, doc *document.Document) error {
	if err := os.MkdirAll(filepath.Join(m.dir, imagesDir), 0o755); err != nil {
		return err
	}
	return m.blocks(ctx, doc.Blocks)
}

func (m *dirMaterializer) blocks(ctx context.Context, blocks []document.Block) error {
	for _, b := range blocks {
		switch b := b.(type) {
		case *document.Paragraph:
			for _, g := range b.Groups {
				for i, in := range g.Runs {
					img, ok := in.(document.Image)
					if !ok {
						continue
					}
					if err := ctx.Err(); err != nil {
						return err
					}
					src, err := m.image(img)
					if err != nil {
						return err
					}
					img.Src = src
					g.Runs[i] = img
				}
			}
		case *document.Table:
			for _, c := range b.Cells() {
				if err := m.blocks(ctx, c.Blocks); err != nil {
					return err
				}
			}
		default:
			panic("never reached")
		}
	}
	return nil
}

// image copies the source of img and returns the new source. Images that were materialized
// before and remote images are left alone.
func (m *dirMaterializer) image(img document.Image) (string, error) {
	if img.Src == "" || strings.Contains(img.Src, "://") {
		return img.Src, nil
	}
	if rel, ok := strings.CutPrefix(img.Src, imagesDir+"/"); ok && !strings.Contains(rel, "/") {
		if _, err := os.Stat(filepath.Join(m.dir, imagesDir, rel)); err == nil {
			return img.Src, nil
		}
	}

	data, err := os.ReadFile(img.Src)
	if err != nil {
		return "", fmt.Errorf("copying image: %w", err)
	}
	name := document.ImageHash(data) + filepath.Ext(img.Src)
	dst := filepath.Join(m.dir, imagesDir, name)

	existing, err := os.ReadFile(dst)
	switch {
	case err == nil && bytes.Equal(existing, data):
		m.logger.Debug("image already materialized", "src", img.Src, "dst", dst)
	case err == nil || errors.Is(err, fs.ErrNotExist):
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return "", fmt.Errorf("copying image: %w", err)
		}
		m.logger.Debug("materialized image", "src", img.Src, "dst", dst)
	default:
		return "", fmt.Errorf("copying image: %w", err)
	}
	return path.Join(imagesDir, name), nil
}
