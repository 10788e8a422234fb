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

// Package myers computes longest common subsequences with the linear space variant of Myers'
// algorithm (section 4.2 of the paper).
//
// Document comparison needs exact answers: a paragraph that shares five words with its previous
// version must be reported with exactly those five words matching, otherwise the redline and the
// similarity scores built on top of it drift. For that reason this package never applies the
// cost-limiting heuristics a line based diff would use and always searches for an optimal path.
// The runtime is O(ND) where N is the sum of the input lengths and D the number of differences.
//
// # Edit graph
//
// For x = "ABCABBA" and y = "CBABAC" all possible edits form the graph below. A step to the right
// deletes an element of x, a step down inserts an element of y, and a diagonal step exists
// wherever x[s] == y[t] and represents a match. An optimal diff is a path from (0,0) to (7,6)
// with the fewest non-diagonal steps.
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// Coordinates are s (into x) and t (into y); diagonal k holds all points with s - t = k. A d-path
// has exactly d non-diagonal steps and ends on a diagonal in {-d, -d+2, ..., d}. The furthest
// reaching d-path on diagonal k extends the furthest reaching (d-1)-path on k-1 by a deletion or
// the one on k+1 by an insertion, followed by as many matches as possible. Searching forwards
// from (0,0) and backwards from (N,M) at the same time, the two searches overlap in the middle
// of an optimal path, which splits the problem into two independent halves.
//
// # Result vectors
//
// Results are reported as two boolean vectors rx and ry with one extra trailing element each:
// rx[s] is true if x[s] is deleted and ry[t] is true if y[t] is inserted. Every other element is
// part of the common subsequence. The package rvecs turns these vectors into hunks.
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
