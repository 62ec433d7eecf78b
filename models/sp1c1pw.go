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
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	nPulseWidthBuckets = 3
	nPwEmissions       = nPulseWidthBuckets * 4
)

var sp1c1PwNames = []string{"S/P1-C1", "S/P2-C2/prospective-compatible"}

// The calibration rows only sum to 1 up to the precision they were
// exported with.
func init() {
	for m := range sp1c1PwEmissionPmf {
		for ctx := range sp1c1PwEmissionPmf[m] {
			row := sp1c1PwEmissionPmf[m][ctx][:]
			floats.Scale(1/floats.Sum(row), row)
		}
	}
}

// contextTransitions computes the normalized move probabilities of
// every context from a cubic fit of the non-match logits in snr. The
// logits are shifted by their maximum before exponentiation, so rows
// stay finite at any snr.
func contextTransitions(fit *[NumContexts][3][4]float64, snr float64) (trans [NumContexts][4]float64) {
	snr2 := snr * snr
	snr3 := snr2 * snr
	for ctx := range trans {
		row := trans[ctx][:]
		row[Match] = 0
		for j := 0; j < 3; j++ {
			coef := &fit[ctx][j]
			row[j+1] = coef[0] + snr*coef[1] + snr2*coef[2] + snr3*coef[3]
		}
		floats.AddConst(-floats.Max(row), row)
		for j, logit := range row {
			row[j] = math.Exp(logit)
		}
		floats.Scale(1/floats.Sum(row), row)
	}
	return trans
}

// populate materializes the template positions for a table of
// per-context transitions.
func populate(trans *[NumContexts][4]float64, tpl string) ([]TemplatePosition, error) {
	if len(tpl) == 0 {
		return nil, nil
	}
	result := make([]TemplatePosition, 0, len(tpl))
	prev := TranslationTable[tpl[0]]
	if prev == InvalidBase {
		return nil, fmt.Errorf("%w: %q at position 0", ErrInvalidTemplateChar, tpl[0])
	}
	for i := 1; i < len(tpl); i++ {
		curr := TranslationTable[tpl[i]]
		if curr == InvalidBase {
			return nil, fmt.Errorf("%w: %q at position %v", ErrInvalidTemplateChar, tpl[i], i)
		}
		params := &trans[Context(prev, curr)]
		result = append(result, TemplatePosition{
			Base:     tpl[i-1],
			Idx:      prev,
			Match:    params[Match],
			Branch:   params[Branch],
			Stick:    params[Stick],
			Deletion: params[Deletion],
		})
		prev = curr
	}
	return append(result, TemplatePosition{Base: tpl[len(tpl)-1], Idx: prev, Match: 1}), nil
}

type sp1c1PwModel struct {
	snr      SNR
	ctxTrans [NumContexts][4]float64
}

func newSP1C1PwModel(snr SNR) ModelConfig {
	return &sp1c1PwModel{
		snr:      snr,
		ctxTrans: contextTransitions(&sp1c1PwTransitionFit, snr.A),
	}
}

func (model *sp1c1PwModel) SNR() SNR { return model.snr }

func (model *sp1c1PwModel) Populate(tpl string) ([]TemplatePosition, error) {
	return populate(&model.ctxTrans, tpl)
}

func (model *sp1c1PwModel) SubstitutionRate(prev, curr uint8) float64 {
	row := &sp1c1PwEmissionPmf[Match][Context(prev, curr)]
	var eps float64
	for pw := 0; pw < nPulseWidthBuckets; pw++ {
		for bp := uint8(0); bp < 4; bp++ {
			if bp != curr {
				eps += row[pw<<2|int(bp)]
			}
		}
	}
	return eps / nPwEmissions
}

func (model *sp1c1PwModel) CreateRecursor(tpl *Template, mr *MappedRead, scoreDiff float64) Recursor {
	return &sp1c1PwRecursor{recursor{tpl: tpl, read: mr, scoreDiff: scoreDiff}}
}

type sp1c1PwRecursor struct {
	recursor
}

// pulseWidthBucket maps a pulse width to 0, 1, or 2 (for widths 1, 2,
// and 3 or more).
func pulseWidthBucket(pw uint8) uint8 {
	switch {
	case pw <= 1:
		return 0
	case pw >= nPulseWidthBuckets:
		return nPulseWidthBuckets - 1
	default:
		return pw - 1
	}
}

func (r *sp1c1PwRecursor) EncodeRead(mr *MappedRead) ([]uint8, error) {
	if len(mr.PulseWidth) < mr.Length() {
		return nil, fmt.Errorf("%w: read %v has %v bases and %v pulse widths", ErrPulseWidthLength, mr.Name, mr.Length(), len(mr.PulseWidth))
	}
	result := make([]uint8, mr.Length())
	for i := range result {
		bp := TranslationTable[mr.Seq[i]]
		if bp == InvalidBase {
			return nil, fmt.Errorf("%w: %q at position %v of read %v", ErrInvalidReadChar, mr.Seq[i], i, mr.Name)
		}
		em := pulseWidthBucket(mr.PulseWidth[i])<<2 | bp
		if em >= nPwEmissions {
			log.Panicf("read encoding error: symbol %v at position %v of read %v", em, i, mr.Name)
		}
		result[i] = em
	}
	return result, nil
}

func (r *sp1c1PwRecursor) EmissionPr(move MoveType, emission, prev, curr uint8) float64 {
	if move == Deletion {
		log.Panic("emission probability requested for a deletion")
	}
	return sp1c1PwEmissionPmf[move][Context(prev, curr)][emission]
}

func (r *sp1c1PwRecursor) UndoCounterWeights(nEmissions int) float64 {
	return 0
}
