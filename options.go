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
	"io"
	"log/slog"

	"znkr.io/docdiff/internal/config"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Threshold sets the similarity two blocks or table rows must exceed to be compared with each
// other in detail. Less similar blocks are reported as deleted and added. Negative values are
// treated as 0, blocks of different kinds are never compared in detail. The default is 0.5.
func Threshold(t float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Threshold = max(0, t)
		return config.Threshold
	}
}

// MaxCells limits the cost of a similarity alignment. If the product of the number of differing
// blocks on both sides exceeds n, the blocks are reported as entirely different instead. The
// default is 10,000.
func MaxCells(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxCells = max(0, n)
		return config.MaxCells
	}
}

// Parallelism sets the number of differing parts of the documents that are compared in detail
// concurrently. The result doesn't depend on it. The default is 1.
func Parallelism(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Parallelism = max(1, n)
		return config.Parallelism
	}
}

// Logger sets the logger for diagnostics. By default, nothing is logged.
func Logger(l *slog.Logger) Option {
	return func(cfg *config.Config) config.Flag {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		cfg.Logger = l
		return config.Logger
	}
}
