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

/*
Package models provides the sequencing error models used by a pair-HMM
recursion to score long reads against candidate templates.

A model is selected by chemistry name from a Registry and constructed
from the per-channel signal-to-noise ratio of a read:

	cfg, err := models.Create("S/P1-C1", models.SNR{A: 10, C: 10, G: 10, T: 10})

The resulting ModelConfig turns a template string into TemplatePosition
values (the context-dependent transition probabilities of every
template base) and creates a Recursor for a (template, read) pair. The
Recursor encodes the read into discrete emission symbols and answers
emission probability lookups for the cells a recursion engine visits.

ModelConfig and Recursor values are immutable after construction, and
can be shared between goroutines without further synchronization. The
default Registry is populated once, on first use, and is sealed
against further registration afterwards.
*/
package models
