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
	"os"

	"github.com/exascience/elcons/models"
)

// PopulateHelp is the help string for this command.
const PopulateHelp = "populate parameters:\n" +
	"elcons populate fasta-file\n" +
	"[--model name]\n" +
	"[--snr a,c,g,t]\n" +
	"[--contig name]\n" +
	"[--log-path path]\n"

// Populate implements the elcons populate command.
func Populate() error {
	var (
		m       modelFlags
		contig  string
		logPath string
	)
	var flags flag.FlagSet
	m.register(&flags)
	flags.StringVar(&contig, "contig", "", "name of the template contig (default first)")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(&flags, 3, PopulateHelp)

	input := getFilename(os.Args[2], PopulateHelp)

	setLogOutput(logPath)

	cfg, err := m.create()
	if err != nil {
		return err
	}
	seq, err := loadTemplate(input, contig)
	if err != nil {
		return err
	}
	tpl, err := models.NewTemplate(cfg, seq)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(os.Stdout)
	if err := writePositions(out, tpl); err != nil {
		return err
	}
	return out.Flush()
}

func writePositions(w io.Writer, tpl *models.Template) error {
	if _, err := fmt.Fprintln(w, "position\tbase\tmatch\tbranch\tstick\tdeletion"); err != nil {
		return err
	}
	for i, tp := range tpl.Positions {
		if _, err := fmt.Fprintf(w, "%v\t%c\t%.6g\t%.6g\t%.6g\t%.6g\n", i, tp.Base, tp.Match, tp.Branch, tp.Stick, tp.Deletion); err != nil {
			return err
		}
	}
	return nil
}
