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

import "znkr.io/docdiff/internal/rvecs"

// Diff compares x and y and returns the result vectors of a longest common subsequence.
func Diff[T comparable](x, y []T) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)
	smin, smax, tmin, tmax := bounds(x, y, func(a, b T) bool { return a == b })
	if trivial(rx, ry, smin, smax, tmin, tmax) {
		return rx, ry
	}

	// Elements that only appear on one side can never match. Drop them up front and run the
	// search on dense integer IDs of the remaining elements:
	//
	//  - scan x and assign a negative id to every element in x
	//  - scan y and flip the sign of every element that also appears in y
	ids := make(map[T]int, smax-smin)
	for s := smin; s < smax; s++ {
		if ids[x[s]] == 0 {
			ids[x[s]] = -(len(ids) + 1)
		}
	}
	buf := make([]int, 2*(smax-smin)+2*(tmax-tmin))
	x0, buf := buf[:0:smax-smin], buf[smax-smin:]
	xidx, buf := buf[:0:smax-smin], buf[smax-smin:]
	y0, buf := buf[:0:tmax-tmin], buf[tmax-tmin:]
	yidx := buf[:0:tmax-tmin]
	for t := tmin; t < tmax; t++ {
		id := ids[y[t]]
		switch {
		case id < 0:
			id = -id
			ids[y[t]] = id
		case id == 0:
			ry[t] = true // only in y
			continue
		}
		yidx = append(yidx, t)
		y0 = append(y0, id)
	}
	for s := smin; s < smax; s++ {
		if id := ids[x[s]]; id > 0 {
			xidx = append(xidx, s)
			x0 = append(x0, id)
		} else {
			rx[s] = true // only in x
		}
	}

	var m myers[int]
	m.xidx, m.yidx = xidx, yidx
	m.rx, m.ry = rx, ry
	m.init(x0, y0, func(a, b int) bool { return a == b })
	m.compare(0, len(x0), 0, len(y0))
	return rx, ry
}

// DiffFunc compares x and y using eq and returns the result vectors of a longest common
// subsequence.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)
	smin, smax, tmin, tmax := bounds(x, y, eq)
	if trivial(rx, ry, smin, smax, tmin, tmax) {
		return rx, ry
	}

	var m myers[T]
	m.rx, m.ry = rx, ry
	m.init(x, y, eq)
	m.compare(smin, smax, tmin, tmax)
	return rx, ry
}

// bounds returns the bounds of x and y without their common prefix and suffix.
func bounds[T any](x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	smax, tmax = len(x), len(y)
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}
	return
}

// trivial fills the result vectors if one of the bounded ranges is empty and reports if it did.
func trivial(rx, ry []bool, smin, smax, tmin, tmax int) bool {
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return true
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return true
	case smin == smax && tmin == tmax:
		return true
	default:
		return false
	}
}
