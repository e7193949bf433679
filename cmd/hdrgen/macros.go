package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/onyxlang/hdrgen/cmd/internal/cliutil"
	"github.com/onyxlang/hdrgen/macros"
)

const macrosUsage = `Usage: hdrgen macros [options]

Print the effective helper-macro table as it would appear in a
generated header.

Options:
  -table FILE  Load the table from FILE instead of the built-in one
  -o FILE      Write to FILE instead of stdout
`

func (c *cli) cmdMacros(args []string) int {
	fs := flag.NewFlagSet("macros", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, macrosUsage) }

	tablePath := fs.String("table", "", "macro table file")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return exitError
	}

	table := macros.Default()
	if *tablePath != "" {
		var err error
		table, err = macros.LoadFile(*tablePath)
		if err != nil {
			printError("load macro table: %v", err)
			return exitError
		}
	}

	out, closeOut, err := cliutil.GetOutput(c.output)
	if err != nil {
		printError("open output: %v", err)
		return exitError
	}
	defer closeOut()

	if err := table.EmitTo(out); err != nil {
		printError("write macro table: %v", err)
		return exitError
	}
	return exitOK
}
