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
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/exascience/elcons/fasta"
	"github.com/exascience/elcons/internal"
	"github.com/exascience/elcons/models"
	"github.com/exascience/elcons/utils"
	"golang.org/x/sys/unix"
)

// ProgramMessage is the first line printed when the elcons binary is
// called.
var ProgramMessage string

func init() {
	ProgramMessage = fmt.Sprint(
		"\n", utils.ProgramName, " version ", utils.ProgramVersion,
		" compiled with ", runtime.Version(),
		" - see ", utils.ProgramURL, " for more information.\n",
	)
}

// HelpMessage is printed to show the --help flag
const HelpMessage = "Print command details:\n" +
	"[--help]\n"

// DefaultModel is the model used when --model is not given.
const DefaultModel = "S/P1-C1"

func getFilename(s, help string) string {
	switch s {
	case "-h", "--h", "-help", "--help":
		fmt.Fprint(os.Stderr, help)
		os.Exit(0)
	default:
		if strings.HasPrefix(s, "-") {
			log.Println("Filename(s) in command line missing.")
			fmt.Fprint(os.Stderr, help)
			os.Exit(1)
		}
	}
	return s
}

func parseFlags(flags *flag.FlagSet, requiredArgs int, help string) {
	if len(os.Args) < requiredArgs {
		fmt.Fprintln(os.Stderr, "Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, help)
		os.Exit(1)
	}
	flags.SetOutput(ioutil.Discard)
	if err := flags.Parse(os.Args[requiredArgs:]); err != nil {
		x := 0
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			x = 1
		}
		fmt.Fprint(os.Stderr, help)
		os.Exit(x)
	}
	if flags.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Cannot parse remaining parameters:", flags.Args())
		fmt.Fprint(os.Stderr, help)
		os.Exit(1)
	}
}

var errSNRFormat = errors.New("SNR must be four comma-separated numbers A,C,G,T")

// parseSNR parses a signal-to-noise ratio of the form "A,C,G,T". A
// single number is used for all four channels.
func parseSNR(s string) (snr models.SNR, err error) {
	fields := strings.Split(s, ",")
	var values [4]float64
	switch len(fields) {
	case 1:
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return snr, fmt.Errorf("%w: %v", errSNRFormat, err)
		}
		values = [4]float64{v, v, v, v}
	case 4:
		for i, field := range fields {
			if values[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				return snr, fmt.Errorf("%w: %v", errSNRFormat, err)
			}
		}
	default:
		return snr, fmt.Errorf("%w: %q", errSNRFormat, s)
	}
	snr = models.SNR{A: values[0], C: values[1], G: values[2], T: values[3]}
	return snr, snr.Validate()
}

// modelFlags are the flags shared by all commands that construct a
// model.
type modelFlags struct {
	model, snr string
}

func (m *modelFlags) register(flags *flag.FlagSet) {
	flags.StringVar(&m.model, "model", DefaultModel, "name of the sequencing error model")
	flags.StringVar(&m.snr, "snr", "10,10,10,10", "signal-to-noise ratio per channel, as A,C,G,T")
}

func (m *modelFlags) create() (models.ModelConfig, error) {
	snr, err := parseSNR(m.snr)
	if err != nil {
		return nil, err
	}
	return models.Create(m.model, snr)
}

func createLogFilename() string {
	t := time.Now()
	zone, _ := t.Zone()
	return fmt.Sprintf("logs/elcons/elcons-%d-%02d-%02d-%02d-%02d-%02d-%09d-%v.log", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), zone)
}

// setLogOutput duplicates stderr and the log output into a log file
// below path. An empty path leaves logging untouched.
func setLogOutput(path string) {
	if path == "" {
		return
	}
	fullPath := filepath.Join(path, createLogFilename())
	internal.MkdirAll(filepath.Dir(fullPath), 0700)
	f := internal.FileCreate(fullPath)
	fmt.Fprintln(f, ProgramMessage)

	orgStderr, err := unix.Dup(2)
	if err != nil {
		log.Panic(err)
	}
	ferr := os.NewFile(uintptr(orgStderr), "/dev/stderr")
	if err := unix.Dup2(int(f.Fd()), 2); err != nil {
		log.Panic(err)
	}

	multi := io.MultiWriter(f, ferr)

	log.SetOutput(multi)
	log.Println("Created log file at", fullPath)
	log.Println("Command line:", os.Args)
}

func timedRun(timed bool, profile, msg string, f func() error) error {
	if profile != "" {
		file := internal.FileCreate(profile + ".prof")
		defer internal.Close(file)
		if err := pprof.StartCPUProfile(file); err != nil {
			log.Panic(err)
		}
		defer pprof.StopCPUProfile()
	}
	if timed {
		log.Println(msg)
		start := time.Now()
		defer func() {
			end := time.Now()
			log.Println("Elapsed time: ", end.Sub(start))
		}()
	}
	return f()
}

// loadTemplate reads the named contig, or the first one, from a
// FASTA file.
func loadTemplate(filename, contig string) (string, error) {
	fullPath, err := internal.FullPathname(filename)
	if err != nil {
		return "", err
	}
	log.Println("Reading templates from", fullPath)
	rec, ok := fasta.Find(fasta.ParseFasta(fullPath, true), contig)
	if !ok {
		return "", fmt.Errorf("contig %v not found in %v", contig, filename)
	}
	return string(rec.Seq), nil
}
