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

// Package rvecs contains functions to work with result vectors, the internal representation of an
// alignment that's produced by the myers package and translated into edits, hunks and correlation
// ids by its users.
//
// For inputs x and y, rx has len(x)+1 and ry has len(y)+1 elements. rx[s] is true if x[s] is not
// part of the common subsequence and ry[t] is true if y[t] is not. The last element of both is
// always false, which lets loops look one element past the end without bounds checks.
package rvecs

// Make allocates result vectors for x and y with a single allocation.
func Make[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, (len(x) + len(y) + 2))
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	return
}
