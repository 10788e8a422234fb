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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// docdiff.Option.
package config

import (
	"io"
	"log/slog"
)

// Config collects all configurable parameters of a document comparison.
type Config struct {
	// Threshold is the similarity two blocks or rows must exceed to be aligned as a modification
	// of each other.
	Threshold float64

	// MaxCells bounds the size of the similarity table. If the product of the input lengths
	// exceeds it, the inputs are reported as entirely different.
	MaxCells int

	// Parallelism is the number of groups refined concurrently.
	Parallelism int

	// Logger receives progress and diagnostics.
	Logger *slog.Logger
}

// Default is the default configuration.
var Default = Config{
	Threshold:   0.5,
	MaxCells:    10_000,
	Parallelism: 1,
	Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Threshold Flag = 1 << iota
	MaxCells
	Parallelism
	Logger
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Threshold:
		return "docdiff.Threshold"
	case MaxCells:
		return "docdiff.MaxCells"
	case Parallelism:
		return "docdiff.Parallelism"
	case Logger:
		return "docdiff.Logger"
	default:
		panic("never reached")
	}
}
