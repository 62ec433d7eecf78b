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
	"math"
)

// SNR holds the signal-to-noise ratio of each base channel.
type SNR struct {
	A, C, G, T float64
}

// Validate checks that every channel is finite and non-negative.
func (snr SNR) Validate() error {
	for _, v := range [4]float64{snr.A, snr.C, snr.G, snr.T} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidSNR, snr)
		}
	}
	return nil
}

// A MoveType is one of the alignment operations of the pair-HMM.
type MoveType uint8

// The move types, in emission table order. Deletion never emits.
const (
	Match MoveType = iota
	Branch
	Stick
	Deletion
)

func (move MoveType) String() string {
	switch move {
	case Match:
		return "match"
	case Branch:
		return "branch"
	case Stick:
		return "stick"
	case Deletion:
		return "deletion"
	default:
		return fmt.Sprintf("MoveType(%d)", uint8(move))
	}
}

// A TemplatePosition holds a template base, its alphabet index, and
// the probabilities of the moves out of that base into the next one.
type TemplatePosition struct {
	Base     byte
	Idx      uint8
	Match    float64
	Branch   float64
	Stick    float64
	Deletion float64
}

// Transitions returns the move probabilities in MoveType order.
func (tp TemplatePosition) Transitions() [4]float64 {
	return [4]float64{tp.Match, tp.Branch, tp.Stick, tp.Deletion}
}

// A Strand tells in which orientation a read maps to its template.
type Strand uint8

// The strands.
const (
	Forward Strand = iota
	Reverse
)

func (strand Strand) String() string {
	if strand == Reverse {
		return "-"
	}
	return "+"
}

// A Read is a sequenced read with its per-base pulse widths.
type Read struct {
	Name          string
	Seq           string
	PulseWidth    []uint8
	SignalToNoise SNR
	Model         string
}

// A MappedRead is a Read placed on a template window
// [TemplateStart, TemplateEnd) in the given orientation.
type MappedRead struct {
	Read
	Strand        Strand
	TemplateStart int
	TemplateEnd   int
}

// Length returns the number of bases of the read.
func (mr *MappedRead) Length() int {
	return len(mr.Seq)
}
