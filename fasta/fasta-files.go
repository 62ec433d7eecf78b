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

// Package fasta reads template sequences from FASTA files.
package fasta

import (
	"bufio"
	"errors"
	"io"
	"log"
	"unicode"

	"github.com/exascience/elcons/internal"
)

// A Record is a named sequence of a FASTA file.
type Record struct {
	Name string
	Seq  []byte
}

func nameFromHeader(b []byte) string {
	i := 1
	for ; i < len(b); i++ {
		if c := b[i]; c >= '!' && c <= '~' {
			break
		}
	}
	j := i + 1
	for ; j < len(b); j++ {
		if c := b[j]; c < '!' || c > '~' {
			break
		}
	}
	if i >= len(b) {
		return ""
	}
	return string(b[i:j])
}

// ParseFastaReader sequentially parses FASTA records, in file order.
//
// If toUpper is true, the contents are converted to upper case.
// Blank lines are skipped.
func ParseFastaReader(r io.Reader, toUpper bool) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<30)

	var records []Record
	for scanner.Scan() {
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		if b[0] == '>' {
			records = append(records, Record{Name: nameFromHeader(b)})
			continue
		}
		if len(records) == 0 {
			return nil, errors.New("invalid fasta file - missing first header")
		}
		if toUpper {
			for i, c := range b {
				b[i] = byte(unicode.ToUpper(rune(c)))
			}
		}
		rec := &records[len(records)-1]
		rec.Seq = append(rec.Seq, b...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("empty fasta file")
	}
	return records, nil
}

// ParseFasta parses a FASTA file, with panics in place of errors.
func ParseFasta(filename string, toUpper bool) []Record {
	f := internal.FileOpen(filename)
	defer internal.Close(f)

	records, err := ParseFastaReader(bufio.NewReader(f), toUpper)
	if err != nil {
		log.Panicf("%v, while parsing %v", err, filename)
	}
	return records
}

// Find returns the record with the given name. An empty name selects
// the first record.
func Find(records []Record, name string) (Record, bool) {
	if name == "" {
		if len(records) == 0 {
			return Record{}, false
		}
		return records[0], true
	}
	for _, rec := range records {
		if rec.Name == name {
			return rec, true
		}
	}
	return Record{}, false
}
