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

package myers

import "math"

type myers[T any] struct {
	// Inputs to compare.
	x, y []T
	eq   func(a, b T) bool

	// v-arrays for the forward and backward search. The furthest reaching endpoint of a d-path on
	// diagonal k is stored in v[v0+k]. Only s is stored, t follows from t = s - k.
	vf, vb []int
	v0     int

	// Mapping from positions in x and y to positions in the result vectors. This allows running
	// the algorithm on a reduced problem.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

func (m *myers[T]) init(x, y []T, eq func(a, b T) bool) {
	diagonals := len(x) + len(y)
	vlen := 2*diagonals + 3 // +1 for the middle diagonal, +2 for the borders
	buf := make([]int, 2*vlen)

	m.x, m.y, m.eq = x, y, eq
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = diagonals + 1

	if m.xidx == nil || m.yidx == nil {
		idx := make([]int, max(len(x), len(y)))
		for i := range idx {
			idx[i] = i
		}
		m.xidx = idx[:len(x)]
		m.yidx = idx[:len(y)]
	}
}

// compare finds an optimal path from (smin, tmin) to (smax, tmax) and records all deletions and
// insertions on it.
func (m *myers[T]) compare(smin, smax, tmin, tmax int) {
	x, y, eq := m.x, m.y, m.eq

	// Matches at the borders are always part of an optimal path. Stripping them here keeps split
	// free of the d=0 case.
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[m.yidx[t]] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[m.xidx[s]] = true
		}
	default:
		// The middle of an optimal path is a possibly empty sequence of diagonals from (s0, t0)
		// to (s1, t1). Everything before and after it is solved independently.
		s0, s1, t0, t1 := m.split(smin, smax, tmin, tmax)
		m.compare(smin, s0, tmin, t0)
		m.compare(s1, smax, t1, tmax)
	}
}

// split finds the endpoints of a possibly empty sequence of diagonals in the middle of an optimal
// path from (smin, tmin) to (smax, tmax).
//
// x[smin:smax] and y[tmin:tmax] must be non-empty and must not share a common prefix or suffix.
func (m *myers[T]) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int) {
	N, M := smax-smin, tmax-tmin
	x, y, eq := m.x, m.y, m.eq
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Diagonals outside [kmin, kmax] leave the edit grid.
	kmin, kmax := smin-tmax, smax-tmin

	// Both searches use the same numbering of diagonals, only their middle diagonal differs.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The length of an optimal path has the parity of N-M. Overlaps only need to be checked in
	// the forward search if it's odd and only in the backward search if it's even.
	odd := (N-M)%2 != 0

	// There is no 0-path because there's no common prefix.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	for d := 1; ; d++ {
		// Forward search. Grow the range of diagonals by one in each direction while it stays
		// inside the grid and shrink it otherwise to keep the parity. The sentinel values
		// written next to the range make the border behave like every other diagonal.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0
			var s int
			if vf[k0-1] < vf[k0+1] {
				// Insertion, coming from diagonal k+1.
				s = vf[k0+1]
			} else {
				// Deletion, coming from diagonal k-1. Ties go here, which orders deletions
				// before insertions.
				s = vf[k0-1] + 1
			}
			t := s - k

			sd, td := s, t
			for s < smax && t < tmax && eq(x[s], y[t]) {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return sd, s, td, t
			}
		}

		// Backward search, mirrored.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			sd, td := s, t
			for s > smin && t > tmin && eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, sd, t, td
			}
		}
	}
}
