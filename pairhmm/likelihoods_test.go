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

package pairhmm

import (
	"errors"
	"testing"

	"github.com/exascience/elcons/models"
)

const testTemplate = "GGATCCGATTACAACGTTGCA"

func TestScoreReads(t *testing.T) {
	cfg := newModel(t, "S/P1-C1")

	forward := newRead("fwd", testTemplate)
	reverse := newRead("rev", models.ReverseComplement(testTemplate))
	reverse.PulseWidth = forward.PulseWidth
	reverse.Strand = models.Reverse
	window := newRead("win", testTemplate[4:15])
	window.TemplateStart, window.TemplateEnd = 4, 15

	reads := []*models.MappedRead{forward, reverse, window}
	scores, err := ScoreReads(cfg, testTemplate, reads, DefaultScoreDiff)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != len(reads) {
		t.Fatalf("ScoreReads returned %v scores", len(scores))
	}

	for i, mr := range reads {
		seq := testTemplate
		if mr.TemplateEnd > mr.TemplateStart {
			seq = seq[mr.TemplateStart:mr.TemplateEnd]
		}
		if mr.Strand == models.Reverse {
			seq = models.ReverseComplement(seq)
		}
		tpl, err := models.NewTemplate(cfg, seq)
		if err != nil {
			t.Fatal(err)
		}
		expected, err := Forward(cfg.CreateRecursor(tpl, mr, DefaultScoreDiff))
		if err != nil {
			t.Fatal(err)
		}
		if scores[i] != expected {
			t.Errorf("ScoreReads of %v returned %v, expected %v", mr.Name, scores[i], expected)
		}
	}

	if scores, err := ScoreReads(cfg, testTemplate, nil, DefaultScoreDiff); err != nil || len(scores) != 0 {
		t.Error("empty ScoreReads failed")
	}
}

func TestScoreReadsErrors(t *testing.T) {
	cfg := newModel(t, "S/P1-C1")

	if _, err := ScoreReads(cfg, "ACGNT", []*models.MappedRead{newRead("r", "ACGT")}, DefaultScoreDiff); !errors.Is(err, models.ErrInvalidTemplateChar) {
		t.Errorf("invalid template returned %v", err)
	}

	bad := newRead("bad", "ACXT")
	if _, err := ScoreReads(cfg, testTemplate, []*models.MappedRead{newRead("ok", "GGATCC"), bad}, DefaultScoreDiff); !errors.Is(err, models.ErrInvalidReadChar) {
		t.Errorf("invalid read returned %v", err)
	}

	outside := newRead("outside", "ACGT")
	outside.TemplateStart, outside.TemplateEnd = 10, len(testTemplate)+1
	if _, err := ScoreReads(cfg, testTemplate, []*models.MappedRead{outside}, DefaultScoreDiff); !errors.Is(err, ErrTemplateWindow) {
		t.Errorf("invalid window returned %v", err)
	}
}

func TestScoreReadsPerReadModel(t *testing.T) {
	cfg := newModel(t, "S/P1-C1")
	readSNR := models.SNR{A: 14, C: 12, G: 11, T: 13}

	plain := newRead("plain", testTemplate)
	own := newRead("own", testTemplate)
	own.Model, own.SignalToNoise = "S/P1-C1/basecall", readSNR
	same := newRead("same", testTemplate[2:])
	same.Model, same.SignalToNoise = own.Model, own.SignalToNoise
	same.TemplateStart, same.TemplateEnd = 2, len(testTemplate)

	scores, err := ScoreReads(cfg, testTemplate, []*models.MappedRead{plain, own, same}, DefaultScoreDiff)
	if err != nil {
		t.Fatal(err)
	}

	readCfg, err := models.Create(own.Model, readSNR)
	if err != nil {
		t.Fatal(err)
	}
	for i, test := range []struct {
		cfg models.ModelConfig
		seq string
		mr  *models.MappedRead
	}{
		{cfg, testTemplate, plain},
		{readCfg, testTemplate, own},
		{readCfg, testTemplate[2:], same},
	} {
		tpl, err := models.NewTemplate(test.cfg, test.seq)
		if err != nil {
			t.Fatal(err)
		}
		expected, err := Forward(test.cfg.CreateRecursor(tpl, test.mr, DefaultScoreDiff))
		if err != nil {
			t.Fatal(err)
		}
		if scores[i] != expected {
			t.Errorf("ScoreReads of %v returned %v, expected %v", test.mr.Name, scores[i], expected)
		}
	}
	if scores[0] == scores[1] {
		t.Error("the model of a read is ignored")
	}

	unknown := newRead("unknown", testTemplate)
	unknown.Model = "S/P9-C9"
	if _, err := ScoreReads(cfg, testTemplate, []*models.MappedRead{plain, unknown}, DefaultScoreDiff); !errors.Is(err, models.ErrUnknownModel) {
		t.Errorf("unknown read model returned %v", err)
	}
	invalid := newRead("invalid", testTemplate)
	invalid.Model, invalid.SignalToNoise = "S/P1-C1", models.SNR{A: -1}
	if _, err := ScoreReads(cfg, testTemplate, []*models.MappedRead{invalid}, DefaultScoreDiff); !errors.Is(err, models.ErrInvalidSNR) {
		t.Errorf("invalid read SNR returned %v", err)
	}
}
