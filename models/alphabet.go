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

// InvalidBase is the TranslationTable entry for bytes outside {A,C,G,T}.
const InvalidBase = 4

// NumContexts is the number of (previous, current) base contexts.
const NumContexts = 16

// Bases lists the nucleotides in alphabet index order.
const Bases = "ACGT"

// TranslationTable maps a nucleotide byte to its alphabet index
// (A=0, C=1, G=2, T=3), irrespective of case. All other bytes map to
// InvalidBase.
var TranslationTable = func() (table [256]uint8) {
	for i := range table {
		table[i] = InvalidBase
	}
	for i := 0; i < len(Bases); i++ {
		table[Bases[i]] = uint8(i)
		table[Bases[i]+'a'-'A'] = uint8(i)
	}
	return
}()

var complementTable = map[byte]byte{
	'A': 'T', 'a': 't',
	'C': 'G', 'c': 'g',
	'G': 'C', 'g': 'c',
	'T': 'A', 't': 'a',
}

// Context returns the context index (prev<<2)|curr of two alphabet
// indices.
func Context(prev, curr uint8) int {
	return int(prev)<<2 | int(curr)
}

// ContextName returns the two-letter name of a context index, for
// example "AC" for 1.
func ContextName(ctx int) string {
	return string([]byte{Bases[(ctx>>2)&3], Bases[ctx&3]})
}

// ReverseComplement returns the reverse complement of a nucleotide
// sequence. Bytes outside {A,C,G,T} are kept as is, so that decoding
// the result still reports them.
func ReverseComplement(seq string) string {
	result := make([]byte, len(seq))
	for i, j := 0, len(seq)-1; j >= 0; i, j = i+1, j-1 {
		if c, ok := complementTable[seq[j]]; ok {
			result[i] = c
		} else {
			result[i] = seq[j]
		}
	}
	return string(result)
}
