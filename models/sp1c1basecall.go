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

package models

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/floats"
)

// The basecall model shares the S/P1-C1 transition fit, but ignores
// pulse widths. Its emission rows are the pulse width rows summed
// over the pulse width buckets.

var sp1c1BasecallNames = []string{"S/P1-C1/basecall"}

var sp1c1BasecallEmissionPmf = func() (pmf [3][NumContexts][4]float64) {
	for m := range pmf {
		for ctx := range pmf[m] {
			row := pmf[m][ctx][:]
			for em, p := range sp1c1PwEmissionPmf[m][ctx] {
				row[em&3] += p
			}
			floats.Scale(1/floats.Sum(row), row)
		}
	}
	return
}()

type sp1c1BasecallModel struct {
	snr      SNR
	ctxTrans [NumContexts][4]float64
}

func newSP1C1BasecallModel(snr SNR) ModelConfig {
	return &sp1c1BasecallModel{
		snr:      snr,
		ctxTrans: contextTransitions(&sp1c1PwTransitionFit, snr.A),
	}
}

func (model *sp1c1BasecallModel) SNR() SNR { return model.snr }

func (model *sp1c1BasecallModel) Populate(tpl string) ([]TemplatePosition, error) {
	return populate(&model.ctxTrans, tpl)
}

func (model *sp1c1BasecallModel) SubstitutionRate(prev, curr uint8) float64 {
	row := &sp1c1BasecallEmissionPmf[Match][Context(prev, curr)]
	var eps float64
	for bp := uint8(0); bp < 4; bp++ {
		if bp != curr {
			eps += row[bp]
		}
	}
	return eps / 4
}

func (model *sp1c1BasecallModel) CreateRecursor(tpl *Template, mr *MappedRead, scoreDiff float64) Recursor {
	return &sp1c1BasecallRecursor{recursor{tpl: tpl, read: mr, scoreDiff: scoreDiff}}
}

type sp1c1BasecallRecursor struct {
	recursor
}

func (r *sp1c1BasecallRecursor) EncodeRead(mr *MappedRead) ([]uint8, error) {
	result := make([]uint8, mr.Length())
	for i := range result {
		bp := TranslationTable[mr.Seq[i]]
		if bp == InvalidBase {
			return nil, fmt.Errorf("%w: %q at position %v of read %v", ErrInvalidReadChar, mr.Seq[i], i, mr.Name)
		}
		result[i] = bp
	}
	return result, nil
}

func (r *sp1c1BasecallRecursor) EmissionPr(move MoveType, emission, prev, curr uint8) float64 {
	if move == Deletion {
		log.Panic("emission probability requested for a deletion")
	}
	return sp1c1BasecallEmissionPmf[move][Context(prev, curr)][emission]
}

func (r *sp1c1BasecallRecursor) UndoCounterWeights(nEmissions int) float64 {
	return 0
}
