// elCons: pluggable sequencing error models for long-read consensus.
// Copyright (c) 2021 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elcons/blob/master/LICENSE.txt>.

package pairhmm

import (
	"sync"

	"github.com/exascience/pargo/parallel"
	"github.com/willf/bitset"
)

type float64Matrix struct {
	cols  int
	array []float64
}

func (m *float64Matrix) ensureSize(rows, cols int) {
	m.cols = cols
	totalSize := rows * cols
	if totalSize <= cap(m.array) {
		m.array = m.array[:totalSize]
		for i := range m.array {
			m.array[i] = 0
		}
	} else {
		m.array = make([]float64, totalSize)
	}
}

func (m *float64Matrix) rowView(row int) []float64 {
	offset := row * m.cols
	return m.array[offset : offset+m.cols]
}

// forwardMatrices holds the scaled forward values of all cells, the
// log scale of every row, and the live columns of the current and the
// next row.
type forwardMatrices struct {
	alpha      float64Matrix
	logScale   []float64
	live, next *bitset.BitSet
}

var forwardMatricesPool = sync.Pool{New: func() interface{} {
	return &forwardMatrices{live: bitset.New(0), next: bitset.New(0)}
}}

func getForwardMatrices() *forwardMatrices {
	return forwardMatricesPool.Get().(*forwardMatrices)
}

func putForwardMatrices(f *forwardMatrices) {
	forwardMatricesPool.Put(f)
}

func (f *forwardMatrices) ensureSize(readLength, templateLength int) {
	parallel.Do(
		func() { f.alpha.ensureSize(readLength+1, templateLength+1) },
		func() {
			if cap(f.logScale) >= readLength+1 {
				f.logScale = f.logScale[:readLength+1]
				for i := range f.logScale {
					f.logScale[i] = 0
				}
			} else {
				f.logScale = make([]float64, readLength+1)
			}
		},
		func() {
			f.live.ClearAll()
			f.next.ClearAll()
		},
	)
}
