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

package rvecs

import "iter"

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
}

// Deletes reports whether the hunk removes elements from x.
func (h Hunk) Deletes() bool { return h.S1 > h.S0 }

// Inserts reports whether the hunk adds elements from y.
func (h Hunk) Inserts() bool { return h.T1 > h.T0 }

// Hunks returns the maximal runs of deletions and insertions in rx and ry. Two hunks are always
// separated by at least one match.
func Hunks(rx, ry []bool) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		n, m := len(rx)-1, len(ry)-1
		for s, t := 0, 0; s < n || t < m; {
			if !rx[s] && !ry[t] {
				s++
				t++
				continue
			}
			h := Hunk{S0: s, T0: t}
			for s < n && rx[s] {
				s++
			}
			for t < m && ry[t] {
				t++
			}
			h.S1, h.T1 = s, t
			if !yield(h) {
				return
			}
		}
	}
}
