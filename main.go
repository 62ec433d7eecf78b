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

// elCons provides the sequencing error models of a long-read
// consensus engine, and commands to inspect them and to score reads
// against templates.
//
// Please see https://github.com/exascience/elcons for a documentation
// of the tool, and below (and/or
// https://godoc.org/github.com/ExaScience/elcons) for the API
// documentation.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/exascience/elcons/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: models, contexts, populate, score")
	fmt.Fprint(os.Stderr, "\n", cmd.ModelsHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.ContextsHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.PopulateHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.ScoreHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage)
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "models":
		err = cmd.Models()
	case "contexts":
		err = cmd.Contexts()
	case "populate":
		err = cmd.Populate()
	case "score":
		err = cmd.Score()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
