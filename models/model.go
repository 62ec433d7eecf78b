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

// A ModelConfig is a chemistry-specific error model, constructed for
// one signal-to-noise ratio.
type ModelConfig interface {
	// Populate computes one TemplatePosition per template base. The
	// last position always has the probabilities (1, 0, 0, 0).
	Populate(tpl string) ([]TemplatePosition, error)

	// SubstitutionRate returns the expected mismatch rate of the
	// (prev, curr) context.
	SubstitutionRate(prev, curr uint8) float64

	// CreateRecursor binds the model to a template and a read. The
	// recursor takes over tpl, but only borrows mr.
	CreateRecursor(tpl *Template, mr *MappedRead, scoreDiff float64) Recursor

	// SNR returns the signal-to-noise ratio the model was built for.
	SNR() SNR
}

// A Recursor exposes a model to a pair-HMM recursion for one
// (template, read) pair.
type Recursor interface {
	// EncodeRead turns the bases of a read into emission symbols.
	EncodeRead(mr *MappedRead) ([]uint8, error)

	// EmissionPr returns the probability of emitting the given symbol
	// with the given move in the (prev, curr) context. It panics for
	// Deletion.
	EmissionPr(move MoveType, emission, prev, curr uint8) float64

	// UndoCounterWeights returns the correction to add to a
	// log-likelihood over nEmissions emitted symbols.
	UndoCounterWeights(nEmissions int) float64

	Template() *Template
	Read() *MappedRead
	ScoreDiff() float64
}

// A Template is a template sequence with its populated positions.
type Template struct {
	Seq       string
	Positions []TemplatePosition
	Model     ModelConfig
}

// NewTemplate populates seq with the given model.
func NewTemplate(cfg ModelConfig, seq string) (*Template, error) {
	positions, err := cfg.Populate(seq)
	if err != nil {
		return nil, err
	}
	return &Template{Seq: seq, Positions: positions, Model: cfg}, nil
}

// Length returns the number of template bases.
func (tpl *Template) Length() int {
	return len(tpl.Positions)
}

// recursor holds the bindings shared by all Recursor implementations.
type recursor struct {
	tpl       *Template
	read      *MappedRead
	scoreDiff float64
}

func (r *recursor) Template() *Template { return r.tpl }

func (r *recursor) Read() *MappedRead { return r.read }

func (r *recursor) ScoreDiff() float64 { return r.scoreDiff }
