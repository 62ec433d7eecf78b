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

package fasta

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testFasta = `>tpl1 first template
ACGT
acgt

>tpl2
GATTACA
>empty
`

func TestParseFastaReader(t *testing.T) {
	records, err := ParseFastaReader(strings.NewReader(testFasta), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("ParseFastaReader returned %v records", len(records))
	}
	for i, expected := range []Record{
		{Name: "tpl1", Seq: []byte("ACGTACGT")},
		{Name: "tpl2", Seq: []byte("GATTACA")},
		{Name: "empty"},
	} {
		if records[i].Name != expected.Name || string(records[i].Seq) != string(expected.Seq) {
			t.Errorf("record %v is %v %s", i, records[i].Name, records[i].Seq)
		}
	}
	records, _ = ParseFastaReader(strings.NewReader(testFasta), false)
	if string(records[0].Seq) != "ACGTacgt" {
		t.Error("ParseFastaReader without toUpper failed")
	}
}

func TestParseFastaReaderErrors(t *testing.T) {
	if _, err := ParseFastaReader(strings.NewReader(""), false); err == nil {
		t.Error("empty file should fail")
	}
	if _, err := ParseFastaReader(strings.NewReader("ACGT\n>x\nACGT\n"), false); err == nil {
		t.Error("missing header should fail")
	}
}

func TestParseFasta(t *testing.T) {
	dir, err := ioutil.TempDir("", "elcons-fasta")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	filename := filepath.Join(dir, "templates.fa")
	if err := ioutil.WriteFile(filename, []byte(testFasta), 0666); err != nil {
		t.Fatal(err)
	}
	records := ParseFasta(filename, true)
	if rec, ok := Find(records, ""); !ok || rec.Name != "tpl1" {
		t.Error("Find of the first record failed")
	}
	if rec, ok := Find(records, "tpl2"); !ok || string(rec.Seq) != "GATTACA" {
		t.Error("Find of tpl2 failed")
	}
	if _, ok := Find(records, "tpl3"); ok {
		t.Error("Find of a missing record succeeded")
	}
	if _, ok := Find(nil, ""); ok {
		t.Error("Find in no records succeeded")
	}
}
