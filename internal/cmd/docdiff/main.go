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

// docdiff compares two documents written in YAML and writes the comparison as an HTML page or as
// a text dump.
//
//	go run ./internal/cmd/docdiff --out diff.html old.yaml new.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"znkr.io/docdiff"
	"znkr.io/docdiff/internal/docdump"
	"znkr.io/docdiff/internal/docyaml"
)

type cli struct {
	Old string `arg:"" type:"existingfile" help:"Old document (YAML)."`
	New string `arg:"" type:"existingfile" help:"New document (YAML)."`

	Out         string  `name:"out" short:"o" type:"path" help:"Output file (default: stdout)."`
	Format      string  `name:"format" short:"f" enum:"html,text" default:"html" help:"Output format: html or text."`
	Assets      string  `name:"assets" type:"path" help:"Directory to copy images to (default: directory of --out)."`
	Threshold   float64 `name:"threshold" default:"0.5" help:"Similarity blocks must exceed to be compared with each other."`
	MaxCells    int     `name:"max-cells" default:"10000" help:"Largest similarity table before all blocks are reported as changed."`
	Parallelism int     `name:"parallelism" short:"j" default:"1" help:"Number of rows refined concurrently."`
	Verbose     bool    `name:"verbose" short:"v" help:"Log progress to stderr."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("docdiff"),
		kong.Description("Compare two documents and show the differences side by side."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(c.Run())
}

// Run executes the comparison.
func (c *cli) Run() error {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx := context.Background()
	if c.Out == "" {
		return c.run(ctx, os.Stdout, logger)
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	if err := c.run(ctx, f, logger); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *cli) run(ctx context.Context, w io.Writer, logger *slog.Logger) error {
	x, err := docyaml.DecodeFile(c.Old)
	if err != nil {
		return err
	}
	y, err := docyaml.DecodeFile(c.New)
	if err != nil {
		return err
	}
	logger.Debug("decoded documents", "old", c.Old, "new", c.New, "old_blocks", len(x.Blocks), "new_blocks", len(y.Blocks))

	opts := []docdiff.Option{
		docdiff.Threshold(c.Threshold),
		docdiff.MaxCells(c.MaxCells),
		docdiff.Parallelism(c.Parallelism),
		docdiff.Logger(logger),
	}

	switch c.Format {
	case "html":
		assets := c.Assets
		if assets == "" && c.Out != "" {
			assets = filepath.Dir(c.Out)
		}
		var m docdiff.AssetMaterializer
		if assets != "" {
			m = &dirMaterializer{dir: assets, logger: logger}
		}
		return docdiff.Compare(ctx, w, x, y, m, opts...)
	case "text":
		result, err := docdiff.Diff(ctx, x, y, opts...)
		if err != nil {
			return err
		}
		s, err := docdump.Comparison(result)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
}
