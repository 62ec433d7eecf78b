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

package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/exascience/elcons/internal"
	"github.com/exascience/elcons/models"
	"github.com/exascience/elcons/pairhmm"
	"github.com/exascience/elcons/utils"
	"github.com/exascience/pargo/pipeline"
	"github.com/google/uuid"
)

// ScoreHelp is the help string for this command.
const ScoreHelp = "score parameters:\n" +
	"elcons score fasta-file reads-file\n" +
	"[--model name]\n" +
	"[--snr a,c,g,t]\n" +
	"[--contig name]\n" +
	"[--score-diff nr]\n" +
	"[--output file]\n" +
	"[--log-path path]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"\nEach line of the reads file holds name, bases, and comma-separated\n" +
	"pulse widths (or *), optionally followed by strand (+/-), template\n" +
	"start, and template end, and then optionally by the model name and\n" +
	"the a,c,g,t signal-to-noise ratio of the read (* for the --model\n" +
	"and --snr values), separated by tabs.\n"

// Score implements the elcons score command.
func Score() error {
	var (
		m                       modelFlags
		contig, output, logPath string
		profile                 string
		scoreDiff               float64
		timed                   bool
	)
	var flags flag.FlagSet
	m.register(&flags)
	flags.StringVar(&contig, "contig", "", "name of the template contig (default first)")
	flags.Float64Var(&scoreDiff, "score-diff", pairhmm.DefaultScoreDiff, "pruning threshold in natural log units (0 disables pruning)")
	flags.StringVar(&output, "output", "", "write scores to the specified file instead of stdout")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a cpu profile to the specified file")
	parseFlags(&flags, 4, ScoreHelp)

	templateFile := getFilename(os.Args[2], ScoreHelp)
	readsFile := getFilename(os.Args[3], ScoreHelp)

	setLogOutput(logPath)

	cfg, err := m.create()
	if err != nil {
		return err
	}
	seq, err := loadTemplate(templateFile, contig)
	if err != nil {
		return err
	}

	var reads []*models.MappedRead
	if err := timedRun(timed, "", "Reading reads.", func() error {
		f := internal.FileOpen(readsFile)
		defer internal.Close(f)
		reads, err = parseReads(f, readDefaults{model: m.model, snr: cfg.SNR()})
		return err
	}); err != nil {
		return err
	}
	log.Printf("Scoring %v reads against a template of length %v with model %v.\n", len(reads), len(seq), m.model)

	var scores []float64
	if err := timedRun(timed, profile, "Scoring reads.", func() error {
		scores, err = pairhmm.ScoreReads(cfg, seq, reads, scoreDiff)
		return err
	}); err != nil {
		return err
	}

	out := os.Stdout
	if output != "" {
		out = internal.FileCreate(output)
		defer internal.Close(out)
	}
	buf := bufio.NewWriter(out)
	if err := writeScores(buf, uuid.New(), reads, scores); err != nil {
		return err
	}
	return buf.Flush()
}

func parsePulseWidths(field string, n int) ([]uint8, error) {
	if field == "*" || field == "" {
		return nil, nil
	}
	values := strings.Split(field, ",")
	if len(values) != n {
		return nil, fmt.Errorf("%v pulse widths for %v bases", len(values), n)
	}
	pw := make([]uint8, n)
	for i, v := range values {
		x, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return nil, err
		}
		pw[i] = uint8(x)
	}
	return pw, nil
}

// readDefaults are the model and SNR of reads whose line names either
// of them as *.
type readDefaults struct {
	model string
	snr   models.SNR
}

// parseRead parses one line of a reads file.
func parseRead(line string, defaults readDefaults) (*models.MappedRead, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 && len(fields) != 6 && len(fields) != 8 {
		return nil, fmt.Errorf("invalid reads line %v - expected 3, 6, or 8 fields", line)
	}
	mr := &models.MappedRead{Read: models.Read{Name: fields[0], Seq: fields[1]}}
	pw, err := parsePulseWidths(fields[2], len(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("%v, while parsing pulse widths of read %v", err, fields[0])
	}
	mr.PulseWidth = pw
	if len(fields) >= 6 {
		switch fields[3] {
		case "+":
			mr.Strand = models.Forward
		case "-":
			mr.Strand = models.Reverse
		default:
			return nil, fmt.Errorf("invalid strand %v of read %v", fields[3], fields[0])
		}
		if mr.TemplateStart, err = strconv.Atoi(fields[4]); err != nil {
			return nil, fmt.Errorf("%v, while parsing template start of read %v", err, fields[0])
		}
		if mr.TemplateEnd, err = strconv.Atoi(fields[5]); err != nil {
			return nil, fmt.Errorf("%v, while parsing template end of read %v", err, fields[0])
		}
	}
	if len(fields) == 8 && (fields[6] != "*" || fields[7] != "*") {
		mr.Model, mr.SignalToNoise = defaults.model, defaults.snr
		if fields[6] != "*" {
			mr.Model = fields[6]
		}
		if fields[7] != "*" {
			if mr.SignalToNoise, err = parseSNR(fields[7]); err != nil {
				return nil, fmt.Errorf("%w, while parsing SNR of read %v", err, fields[0])
			}
		}
	}
	return mr, nil
}

// parseReads parses a reads file in parallel. Empty lines and lines
// starting with # are skipped. The reads are returned in file order.
func parseReads(r io.Reader, defaults readDefaults) (reads []*models.MappedRead, err error) {
	var p pipeline.Pipeline
	scanner := pipeline.NewScanner(r)
	scanner.Buffer(nil, 1<<30)
	p.Source(scanner)
	p.Add(
		pipeline.LimitedPar(0, pipeline.Receive(func(_ int, data interface{}) interface{} {
			lines := data.([]string)
			batch := make([]*models.MappedRead, 0, len(lines))
			for _, line := range lines {
				if line == "" || line[0] == '#' {
					continue
				}
				mr, err := parseRead(line, defaults)
				if err != nil {
					p.SetErr(err)
					return batch
				}
				batch = append(batch, mr)
			}
			return batch
		})),
		pipeline.Ord(pipeline.Receive(func(_ int, data interface{}) interface{} {
			reads = append(reads, data.([]*models.MappedRead)...)
			return data
		})),
	)
	p.Run()
	return reads, p.Err()
}

func writeScores(w io.Writer, runID uuid.UUID, reads []*models.MappedRead, scores []float64) error {
	if _, err := fmt.Fprintf(w, "# %v run %v\n", utils.ProgramName, runID); err != nil {
		return err
	}
	for i, mr := range reads {
		if _, err := fmt.Fprintf(w, "%v\t%v\n", mr.Name, strconv.FormatFloat(scores[i], 'f', 6, 64)); err != nil {
			return err
		}
	}
	return nil
}
