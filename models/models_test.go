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
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

var testSNR = SNR{A: 10, C: 10, G: 10, T: 10}

func mustCreate(t *testing.T, name string, snr SNR) ModelConfig {
	t.Helper()
	cfg, err := Create(name, snr)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", name, err)
	}
	return cfg
}

func sameSlice(s1, s2 []uint8) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i, x := range s1 {
		if x != s2[i] {
			return false
		}
	}
	return true
}

func TestTranslationTable(t *testing.T) {
	for i, c := range []byte("ACGTacgt") {
		if TranslationTable[c] != uint8(i%4) {
			t.Errorf("TranslationTable[%q] = %v", c, TranslationTable[c])
		}
	}
	for _, c := range []byte("NnXU-* ") {
		if TranslationTable[c] != InvalidBase {
			t.Errorf("TranslationTable[%q] should be invalid", c)
		}
	}
	if Context(TranslationTable['G'], TranslationTable['T']) != 11 {
		t.Error("Context GT failed")
	}
	for ctx := 0; ctx < NumContexts; ctx++ {
		name := ContextName(ctx)
		if Context(TranslationTable[name[0]], TranslationTable[name[1]]) != ctx {
			t.Errorf("ContextName(%v) = %v", ctx, name)
		}
	}
}

func TestReverseComplement(t *testing.T) {
	for _, test := range []struct{ in, out string }{
		{"", ""},
		{"A", "T"},
		{"ACGT", "ACGT"},
		{"AACG", "CGTT"},
		{"acgN", "Ncgt"},
	} {
		if rc := ReverseComplement(test.in); rc != test.out {
			t.Errorf("ReverseComplement(%q) = %q, expected %q", test.in, rc, test.out)
		}
	}
}

func TestEmissionRowsNormalized(t *testing.T) {
	for m := range sp1c1PwEmissionPmf {
		for ctx := range sp1c1PwEmissionPmf[m] {
			var sum float64
			for _, p := range sp1c1PwEmissionPmf[m][ctx] {
				if p < 0 {
					t.Errorf("negative emission probability for %v %v", MoveType(m), ContextName(ctx))
				}
				sum += p
			}
			if math.Abs(sum-1) > tolerance {
				t.Errorf("pulse width emission row %v %v sums to %v", MoveType(m), ContextName(ctx), sum)
			}
			sum = 0
			for _, p := range sp1c1BasecallEmissionPmf[m][ctx] {
				sum += p
			}
			if math.Abs(sum-1) > tolerance {
				t.Errorf("basecall emission row %v %v sums to %v", MoveType(m), ContextName(ctx), sum)
			}
		}
	}
}

func TestTransitionsNormalized(t *testing.T) {
	for _, snr := range []float64{0, 2.5, 5, 10, 15, 20, 30, 50, 100} {
		trans := contextTransitions(&sp1c1PwTransitionFit, snr)
		for ctx := range trans {
			var sum float64
			for _, p := range trans[ctx] {
				if math.IsNaN(p) || p < 0 || p > 1 {
					t.Errorf("invalid transition probability %v for %v at SNR %v", p, ContextName(ctx), snr)
				}
				if snr <= 20 && !(p > 0) {
					t.Errorf("non-positive transition probability %v for %v at SNR %v", p, ContextName(ctx), snr)
				}
				sum += p
			}
			if math.Abs(sum-1) > tolerance {
				t.Errorf("transitions of %v at SNR %v sum to %v", ContextName(ctx), snr, sum)
			}
		}
	}
}

func TestPopulateHighSNR(t *testing.T) {
	for _, a := range []float64{50, 100} {
		cfg := mustCreate(t, "S/P1-C1", SNR{A: a, C: a, G: a, T: a})
		tpl, err := cfg.Populate("GGACGT")
		if err != nil {
			t.Fatal(err)
		}
		for i, tp := range tpl {
			var sum float64
			for _, p := range tp.Transitions() {
				if math.IsNaN(p) {
					t.Errorf("position %v at SNR %v has NaN transitions %v", i, a, tp.Transitions())
				}
				sum += p
			}
			if math.Abs(sum-1) > tolerance {
				t.Errorf("position %v at SNR %v sums to %v", i, a, sum)
			}
		}
	}
}

func TestSNRSensitive(t *testing.T) {
	low := contextTransitions(&sp1c1PwTransitionFit, 5)
	high := contextTransitions(&sp1c1PwTransitionFit, 12)
	for ctx := range low {
		if low[ctx] == high[ctx] {
			t.Errorf("transitions of %v do not depend on SNR", ContextName(ctx))
		}
	}
}

func TestPopulate(t *testing.T) {
	for _, name := range KnownNames() {
		cfg := mustCreate(t, name, testSNR)
		if tpl, err := cfg.Populate(""); err != nil || len(tpl) != 0 {
			t.Errorf("%v: empty Populate failed", name)
		}
		for _, seq := range []string{"A", "AC", "ACGT", "TTTTGGGGCCCCAAAA", "acgtACGT"} {
			tpl, err := cfg.Populate(seq)
			if err != nil {
				t.Errorf("%v: Populate(%q) failed: %v", name, seq, err)
				continue
			}
			if len(tpl) != len(seq) {
				t.Errorf("%v: Populate(%q) returned %v positions", name, seq, len(tpl))
				continue
			}
			for i, tp := range tpl {
				if tp.Base != seq[i] || tp.Idx != TranslationTable[seq[i]] {
					t.Errorf("%v: Populate(%q) position %v has base %q", name, seq, i, tp.Base)
				}
				var sum float64
				for _, p := range tp.Transitions() {
					sum += p
				}
				if math.Abs(sum-1) > tolerance {
					t.Errorf("%v: Populate(%q) position %v sums to %v", name, seq, i, sum)
				}
			}
			if last := tpl[len(tpl)-1]; last.Transitions() != [4]float64{1, 0, 0, 0} {
				t.Errorf("%v: Populate(%q) last position is %v", name, seq, last)
			}
		}
	}
}

func TestPopulateContexts(t *testing.T) {
	cfg := mustCreate(t, "S/P1-C1", testSNR)
	tpl, err := cfg.Populate("ACGT")
	if err != nil {
		t.Fatal(err)
	}
	if len(tpl) != 4 {
		t.Fatalf("Populate(ACGT) returned %v positions", len(tpl))
	}
	trans := contextTransitions(&sp1c1PwTransitionFit, testSNR.A)
	for i, ctx := range []string{"AC", "CG", "GT"} {
		expected := trans[Context(TranslationTable[ctx[0]], TranslationTable[ctx[1]])]
		if tpl[i].Transitions() != expected {
			t.Errorf("position %v does not use context %v", i, ctx)
		}
	}
	if tpl[3].Transitions() != [4]float64{1, 0, 0, 0} {
		t.Error("anchor position failed")
	}
}

func TestPopulateInvalid(t *testing.T) {
	cfg := mustCreate(t, "S/P1-C1", testSNR)
	for _, seq := range []string{"ACGN", "N", "AC-T", "XACG"} {
		if _, err := cfg.Populate(seq); !errors.Is(err, ErrInvalidTemplateChar) {
			t.Errorf("Populate(%q) should fail with an invalid character, got %v", seq, err)
		}
	}
}

func TestSubstitutionRate(t *testing.T) {
	for _, name := range KnownNames() {
		cfg := mustCreate(t, name, testSNR)
		for prev := uint8(0); prev < 4; prev++ {
			for curr := uint8(0); curr < 4; curr++ {
				if rate := cfg.SubstitutionRate(prev, curr); rate < 0 || rate > 1 {
					t.Errorf("%v: SubstitutionRate(%v, %v) = %v", name, prev, curr, rate)
				}
			}
		}
	}
}

func testRead(seq string, pw ...uint8) *MappedRead {
	return &MappedRead{Read: Read{Name: "read", Seq: seq, PulseWidth: pw}}
}

func TestEncodeRead(t *testing.T) {
	cfg := mustCreate(t, "S/P1-C1", testSNR)
	tpl, err := NewTemplate(cfg, "ACGT")
	if err != nil {
		t.Fatal(err)
	}
	if tpl.Length() != 4 {
		t.Error("template length failed")
	}
	mr := testRead("ACGTAC", 0, 1, 2, 3, 4, 255)
	r := cfg.CreateRecursor(tpl, mr, 12.5)
	if r.Template() != tpl || r.Read() != mr || r.ScoreDiff() != 12.5 {
		t.Error("recursor bindings failed")
	}
	em1, err := r.EncodeRead(mr)
	if err != nil {
		t.Fatal(err)
	}
	if !sameSlice(em1, []uint8{0, 1, 6, 11, 8, 9}) {
		t.Errorf("EncodeRead returned %v", em1)
	}
	em2, _ := r.EncodeRead(mr)
	if !sameSlice(em1, em2) {
		t.Error("EncodeRead is not deterministic")
	}
	for _, em := range em1 {
		if em >= 12 {
			t.Errorf("emission symbol %v out of range", em)
		}
	}
	if _, err := r.EncodeRead(testRead("ACNT", 1, 1, 1, 1)); !errors.Is(err, ErrInvalidReadChar) {
		t.Errorf("EncodeRead should fail on N, got %v", err)
	}
	if _, err := r.EncodeRead(testRead("ACGT", 1, 1)); !errors.Is(err, ErrPulseWidthLength) {
		t.Errorf("EncodeRead should fail on missing pulse widths, got %v", err)
	}
	if em, err := r.EncodeRead(testRead("")); err != nil || len(em) != 0 {
		t.Error("empty EncodeRead failed")
	}
}

func TestEncodeReadBasecall(t *testing.T) {
	cfg := mustCreate(t, "S/P1-C1/basecall", testSNR)
	r := cfg.CreateRecursor(nil, nil, 0)
	em, err := r.EncodeRead(testRead("TGCA"))
	if err != nil {
		t.Fatal(err)
	}
	if !sameSlice(em, []uint8{3, 2, 1, 0}) {
		t.Errorf("basecall EncodeRead returned %v", em)
	}
	if _, err := r.EncodeRead(testRead("TGCx")); !errors.Is(err, ErrInvalidReadChar) {
		t.Error("basecall EncodeRead should fail on x")
	}
}

func TestEmissionPr(t *testing.T) {
	cfg := mustCreate(t, "S/P1-C1", testSNR)
	r := cfg.CreateRecursor(nil, nil, 0)
	if r.EmissionPr(Match, 8, 0, 0) != sp1c1PwEmissionPmf[Match][0][8] {
		t.Error("EmissionPr match AA failed")
	}
	if r.EmissionPr(Stick, 2, 3, 1) != sp1c1PwEmissionPmf[Stick][13][2] {
		t.Error("EmissionPr stick TC failed")
	}
	if r.UndoCounterWeights(100) != 0 {
		t.Error("UndoCounterWeights failed")
	}
	defer func() {
		if recover() == nil {
			t.Error("EmissionPr should panic for deletions")
		}
	}()
	r.EmissionPr(Deletion, 0, 0, 0)
}

func TestStringers(t *testing.T) {
	if Match.String() != "match" || Deletion.String() != "deletion" || MoveType(9).String() != "MoveType(9)" {
		t.Error("MoveType.String failed")
	}
	if Forward.String() != "+" || Reverse.String() != "-" {
		t.Error("Strand.String failed")
	}
}

func BenchmarkPopulate(b *testing.B) {
	cfg, _ := Create("S/P1-C1", testSNR)
	seq := make([]byte, 20000)
	for i := range seq {
		seq[i] = Bases[(i*7+i/3)%4]
	}
	tpl := string(seq)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cfg.Populate(tpl); err != nil {
			b.Fatal(err)
		}
	}
}
