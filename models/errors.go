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

import "errors"

var (
	// ErrInvalidTemplateChar is returned by Populate for template
	// bytes outside {A,C,G,T}.
	ErrInvalidTemplateChar = errors.New("invalid character in template")

	// ErrInvalidReadChar is returned by EncodeRead for read bases
	// outside {A,C,G,T}.
	ErrInvalidReadChar = errors.New("invalid character in read")

	// ErrUnknownModel is returned by Create for unregistered names.
	ErrUnknownModel = errors.New("no such model")

	// ErrDuplicateModel is returned by Register for names that are
	// already taken.
	ErrDuplicateModel = errors.New("model name already registered")

	// ErrInvalidSNR is returned for NaN, infinite, or negative
	// signal-to-noise ratios.
	ErrInvalidSNR = errors.New("invalid signal-to-noise ratio")

	// ErrPulseWidthLength is returned by EncodeRead when a read
	// carries fewer pulse widths than bases.
	ErrPulseWidthLength = errors.New("pulse width track shorter than read")
)
