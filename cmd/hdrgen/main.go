// Command hdrgen generates Clang-compatible headers from Onyx module
// descriptions.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/onyxlang/hdrgen"
	"github.com/onyxlang/hdrgen/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // user error or processing failure
)

const usage = `hdrgen - Clang header generator for Onyx modules

Usage:
  hdrgen <command> [options] [arguments]

Commands:
  emit    Generate a header from a module description file
  macros  Print the effective helper-macro table
  version Show version

Common options:
  -o, --output FILE  Write output to FILE instead of stdout
  -v, --verbose      Enable debug logging
  -vv                Enable trace logging (implies -v)
  -h, --help         Show help

Examples:
  hdrgen emit Foo.module.yaml
  hdrgen emit -expose -bridging-header Foo-Bridging.h Foo.module.yaml
  hdrgen macros -table custom_macros.yaml
`

type cli struct {
	verbose  int
	output   string
	helpFlag bool
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	var c cli
	args := os.Args[1:]
	var cmdArgs []string
	var cmd string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			c.helpFlag = true
		case arg == "-v" || arg == "--verbose":
			if c.verbose < 1 {
				c.verbose = 1
			}
		case arg == "-vv":
			c.verbose = 2
		case arg == "-o" || arg == "--output":
			if i+1 < len(args) {
				i++
				c.output = args[i]
			}
		case strings.HasPrefix(arg, "-o"):
			c.output = arg[2:]
		case strings.HasPrefix(arg, "--output="):
			c.output = arg[9:]
		case len(arg) > 0 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}

	if c.helpFlag && cmd == "" {
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	}

	if cmd == "" {
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}

	switch cmd {
	case "emit":
		return c.cmdEmit(cmdArgs)
	case "macros":
		return c.cmdMacros(cmdArgs)
	case "version":
		printVersion()
		return exitOK
	case "help":
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = hdrgen.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("hdrgen %s\n", version)
}

func printError(format string, args ...any) {
	cliutil.PrintError(format, args...)
}
