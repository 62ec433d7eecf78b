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
	"fmt"

	"github.com/exascience/elcons/models"
	"github.com/exascience/pargo/parallel"
)

// DefaultScoreDiff is the default pruning threshold, in natural log
// units.
const DefaultScoreDiff = 12.5

// ErrTemplateWindow is returned for reads whose template window does
// not fit the template.
var ErrTemplateWindow = errors.New("invalid template window")

// scoringModel is a model with its full-length templates on both
// strands.
type scoringModel struct {
	cfg              models.ModelConfig
	forward, reverse *models.Template
}

func newScoringModel(cfg models.ModelConfig, seq string) (*scoringModel, error) {
	sm := &scoringModel{cfg: cfg}
	var forwardErr, reverseErr error
	parallel.Do(
		func() { sm.forward, forwardErr = models.NewTemplate(cfg, seq) },
		func() { sm.reverse, reverseErr = models.NewTemplate(cfg, models.ReverseComplement(seq)) },
	)
	if forwardErr != nil {
		return nil, forwardErr
	}
	return sm, reverseErr
}

// templateFor returns the template a mapped read is scored against.
// The full-length templates of both strands are shared.
func (sm *scoringModel) templateFor(seq string, mr *models.MappedRead) (*models.Template, error) {
	if mr.TemplateEnd <= mr.TemplateStart {
		if mr.Strand == models.Reverse {
			return sm.reverse, nil
		}
		return sm.forward, nil
	}
	if mr.TemplateStart < 0 || mr.TemplateEnd > len(seq) {
		return nil, fmt.Errorf("%w: [%v, %v) for read %v on a template of length %v", ErrTemplateWindow, mr.TemplateStart, mr.TemplateEnd, mr.Name, len(seq))
	}
	window := seq[mr.TemplateStart:mr.TemplateEnd]
	if mr.Strand == models.Reverse {
		window = models.ReverseComplement(window)
	}
	return models.NewTemplate(sm.cfg, window)
}

type readModelKey struct {
	name string
	snr  models.SNR
}

// readModels assigns a scoring model to every read. Reads that name
// their own model get models.Create(Model, SignalToNoise), shared among
// reads with the same name and SNR. The others get cfg.
func readModels(cfg models.ModelConfig, seq string, reads []*models.MappedRead, errs []error) ([]*scoringModel, error) {
	base, err := newScoringModel(cfg, seq)
	if err != nil {
		return nil, err
	}
	result := make([]*scoringModel, len(reads))
	byKey := make(map[readModelKey]*scoringModel)
	for i, mr := range reads {
		if mr.Model == "" {
			result[i] = base
			continue
		}
		key := readModelKey{mr.Model, mr.SignalToNoise}
		sm, ok := byKey[key]
		if !ok {
			readCfg, err := models.Create(key.name, key.snr)
			if err != nil {
				errs[i] = fmt.Errorf("%w, for read %v", err, mr.Name)
				continue
			}
			if sm, err = newScoringModel(readCfg, seq); err != nil {
				return nil, err
			}
			byKey[key] = sm
		}
		result[i] = sm
	}
	return result, nil
}

/*
ScoreReads returns the forward log-likelihood of each read against
seq.

Reads with an empty Model are scored with cfg. A read that names a
Model is scored with that registered model at the read's
SignalToNoise. Reads on the reverse strand are scored against the
reverse complement of seq. Reads with TemplateEnd > TemplateStart are
scored against that window of seq only. Reads are scored in parallel.
If any read fails, the error of the first failing read in slice order
is returned.
*/
func ScoreReads(cfg models.ModelConfig, seq string, reads []*models.MappedRead, scoreDiff float64) ([]float64, error) {
	errs := make([]error, len(reads))
	scoring, err := readModels(cfg, seq, reads, errs)
	if err != nil {
		return nil, err
	}

	result := make([]float64, len(reads))
	if len(reads) == 0 {
		return result, nil
	}
	parallel.Range(0, len(reads), 0, func(low, high int) {
		for i := low; i < high; i++ {
			sm := scoring[i]
			if sm == nil {
				continue
			}
			mr := reads[i]
			tpl, err := sm.templateFor(seq, mr)
			if err != nil {
				errs[i] = err
				continue
			}
			result[i], errs[i] = Forward(sm.cfg.CreateRecursor(tpl, mr, scoreDiff))
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
