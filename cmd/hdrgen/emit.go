package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/onyxlang/hdrgen"
	"github.com/onyxlang/hdrgen/cmd/internal/cliutil"
	"github.com/onyxlang/hdrgen/macros"
)

const emitUsage = `Usage: hdrgen emit [options] <module-description.yaml>

Generate a Clang-compatible header from a module description.

Options:
  -expose                Expose public declarations in the C++ block
  -bridging-header PATH  Include PATH instead of <Name/Name.h> for the
                         module's underlying compatibility header
  -table FILE            Load the helper-macro table from FILE
  -compiler-version STR  Version string for the header's first line
  -o FILE                Write the header to FILE instead of stdout
`

func (c *cli) cmdEmit(args []string) int {
	fs := flag.NewFlagSet("emit", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, emitUsage) }

	expose := fs.Bool("expose", false, "expose public declarations in the C++ block")
	bridgingHeader := fs.String("bridging-header", "", "bridging header path")
	tablePath := fs.String("table", "", "macro table file")
	compilerVersion := fs.String("compiler-version", "", "compiler version string")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitError
	}

	mod, err := hdrgen.LoadModuleFile(fs.Arg(0))
	if err != nil {
		printError("load module description: %v", err)
		return exitError
	}

	opts := []hdrgen.Option{}
	if *expose {
		opts = append(opts, hdrgen.ExposePublicDecls())
	}
	if *bridgingHeader != "" {
		opts = append(opts, hdrgen.WithBridgingHeader(*bridgingHeader))
	}
	if *compilerVersion != "" {
		opts = append(opts, hdrgen.WithVersion(*compilerVersion))
	}
	if *tablePath != "" {
		table, err := macros.LoadFile(*tablePath)
		if err != nil {
			printError("load macro table: %v", err)
			return exitError
		}
		opts = append(opts, hdrgen.WithMacroTable(table))
	}
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, hdrgen.WithLogger(logger))
	}

	out, closeOut, err := cliutil.GetOutput(c.output)
	if err != nil {
		printError("open output: %v", err)
		return exitError
	}
	defer closeOut()

	if err := hdrgen.Generate(out, mod, opts...); err != nil {
		printError("generate header: %v", err)
		return exitError
	}
	return exitOK
}
