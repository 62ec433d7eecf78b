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

// Package pairhmm implements a forward recursion over the moves of a
// models.Recursor.
package pairhmm

import (
	"math"

	"github.com/exascience/elcons/models"
	"gonum.org/v1/gonum/floats"
)

/*
Forward returns the natural log-likelihood of the read bound to r
given the template bound to r.

Cell (i, j) holds the probability of having emitted the first i read
symbols while the last consumed template base is j-1. The first read
symbol is matched against the first template base in its homopolymer
context. Every row is rescaled by its maximum, and cells that fall
more than r.ScoreDiff() natural log units below that maximum are
pruned, except in the last row. A non-positive ScoreDiff disables
pruning.

An empty read or template has likelihood -Inf.
*/
func Forward(r models.Recursor) (float64, error) {
	emissions, err := r.EncodeRead(r.Read())
	if err != nil {
		return 0, err
	}
	positions := r.Template().Positions
	nRead, nTpl := len(emissions), len(positions)
	if nRead == 0 || nTpl == 0 {
		return math.Inf(-1), nil
	}

	f := getForwardMatrices()
	defer putForwardMatrices(f)
	f.ensureSize(nRead, nTpl)

	var threshold float64
	if scoreDiff := r.ScoreDiff(); scoreDiff > 0 {
		threshold = math.Exp(-scoreDiff)
	}

	first := positions[0].Idx
	f.alpha.rowView(1)[1] = r.EmissionPr(models.Match, emissions[0], first, first)
	f.next.Set(1)
	if !f.finishRow(1, positions, rowThreshold(1, nRead, threshold)) {
		return math.Inf(-1), nil
	}

	for i := 1; i < nRead; i++ {
		em := emissions[i]
		row := f.alpha.rowView(i)
		nextRow := f.alpha.rowView(i + 1)
		for j, ok := f.live.NextSet(1); ok && int(j) < nTpl; j, ok = f.live.NextSet(j + 1) {
			v := row[j]
			tp := &positions[j-1]
			prev, curr := tp.Idx, positions[j].Idx
			if tp.Match > 0 {
				nextRow[j+1] += v * tp.Match * r.EmissionPr(models.Match, em, prev, curr)
				f.next.Set(j + 1)
			}
			if insertion := tp.Branch*r.EmissionPr(models.Branch, em, prev, curr) +
				tp.Stick*r.EmissionPr(models.Stick, em, prev, curr); insertion > 0 {
				nextRow[j] += v * insertion
				f.next.Set(j)
			}
		}
		if !f.finishRow(i+1, positions, rowThreshold(i+1, nRead, threshold)) {
			return math.Inf(-1), nil
		}
	}

	end := f.alpha.rowView(nRead)[nTpl]
	if end == 0 {
		return math.Inf(-1), nil
	}
	return math.Log(end) + f.logScale[nRead] + r.UndoCounterWeights(nRead), nil
}

// The last row is never pruned, as it holds the final cell.
func rowThreshold(i, nRead int, threshold float64) float64 {
	if i == nRead {
		return 0
	}
	return threshold
}

// finishRow applies the deletion moves within row i, rescales the
// row, and prunes it into the live set. It returns false if no cell
// of the row survives.
func (f *forwardMatrices) finishRow(i int, positions []models.TemplatePosition, threshold float64) bool {
	row := f.alpha.rowView(i)
	nTpl := uint(len(positions))

	j, ok := f.next.NextSet(1)
	if !ok {
		return false
	}
	lo, hi := j, j
	for ok && j < nTpl {
		if row[j] == 0 {
			j, ok = f.next.NextSet(j + 1)
			continue
		}
		if d := row[j] * positions[j-1].Deletion; d > 0 {
			row[j+1] += d
			f.next.Set(j + 1)
		}
		j++
	}
	for j, ok := f.next.NextSet(lo); ok; j, ok = f.next.NextSet(j + 1) {
		hi = j
	}

	band := row[lo : hi+1]
	scale := floats.Max(band)
	if !(scale > 0) {
		return false
	}
	floats.Scale(1/scale, band)
	f.logScale[i] = f.logScale[i-1] + math.Log(scale)

	f.live.ClearAll()
	for j, ok := f.next.NextSet(lo); ok; j, ok = f.next.NextSet(j + 1) {
		if row[j] < threshold {
			row[j] = 0
		} else {
			f.live.Set(j)
		}
	}
	f.next.ClearAll()
	return true
}
