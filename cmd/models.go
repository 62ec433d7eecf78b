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

// ModelsHelp is the help string for this command.
const ModelsHelp = "models parameters:\n" +
	"elcons models\n"

// Models implements the elcons models command.
func Models() error {
	var flags flag.FlagSet
	parseFlags(&flags, 2, ModelsHelp)
	for _, name := range models.KnownNames() {
		fmt.Println(name)
	}
	return nil
}

// ContextsHelp is the help string for this command.
const ContextsHelp = "contexts parameters:\n" +
	"elcons contexts\n" +
	"[--model name]\n" +
	"[--snr a,c,g,t]\n"

// Contexts implements the elcons contexts command.
func Contexts() error {
	var m modelFlags
	var flags flag.FlagSet
	m.register(&flags)
	parseFlags(&flags, 2, ContextsHelp)

	cfg, err := m.create()
	if err != nil {
		return err
	}
	out := bufio.NewWriter(os.Stdout)
	if err := writeContexts(out, cfg); err != nil {
		return err
	}
	return out.Flush()
}

// writeContexts prints the transition probabilities and the
// substitution rate of every context.
func writeContexts(w io.Writer, cfg models.ModelConfig) error {
	if _, err := fmt.Fprintln(w, "context\tmatch\tbranch\tstick\tdeletion\tsubstitution"); err != nil {
		return err
	}
	for ctx := 0; ctx < models.NumContexts; ctx++ {
		name := models.ContextName(ctx)
		tpl, err := cfg.Populate(name)
		if err != nil {
			return err
		}
		tp := tpl[0]
		rate := cfg.SubstitutionRate(uint8(ctx>>2), uint8(ctx&3))
		if _, err := fmt.Fprintf(w, "%v\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n", name, tp.Match, tp.Branch, tp.Stick, tp.Deletion, rate); err != nil {
			return err
		}
	}
	return nil
}
