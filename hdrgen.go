// Package hdrgen emits a C/Objective-C/C++ compatible header from the
// public surface of a compiled Onyx module.
//
// The input is an already-resolved declaration set (see the decl
// package); hdrgen performs no semantic analysis. Generation is a
// pure, synchronous computation: for fixed module contents, a fixed
// macro table, and a fixed version string, the output is
// byte-identical across invocations.
package hdrgen

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/onyxlang/hdrgen/decl"
	"github.com/onyxlang/hdrgen/internal/assembler"
	"github.com/onyxlang/hdrgen/macros"
)

// ErrNoModule is returned when Generate is called without a module.
var ErrNoModule = errors.New("no module provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-declaration emission logging (renders, skips, imports).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// DefaultVersion is recorded in the header's first line when the
// caller does not supply a version string.
const DefaultVersion = "Onyx compiler version 1.4.0 (onyxc-1.4.0)"

// Option configures Generate.
type Option func(*genConfig)

type genConfig struct {
	bridgingHeader    string
	exposePublicDecls bool
	version           string
	macroTable        *macros.Table
	logger            *slog.Logger
}

// WithBridgingHeader sets the header path emitted in place of the
// conventional <Name/Name.h> include when the module references its
// own underlying compatibility counterpart.
func WithBridgingHeader(path string) Option {
	return func(c *genConfig) { c.bridgingHeader = path }
}

// ExposePublicDecls enables the C++ body block. Without it the
// __cplusplus guard markers are emitted with nothing between them.
func ExposePublicDecls() Option {
	return func(c *genConfig) { c.exposePublicDecls = true }
}

// WithVersion sets the compiler version string recorded in the
// header's first line.
func WithVersion(version string) Option {
	return func(c *genConfig) { c.version = version }
}

// WithMacroTable replaces the embedded helper-macro table.
func WithMacroTable(t *macros.Table) Option {
	return func(c *genConfig) { c.macroTable = t }
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *genConfig) { c.logger = logger }
}

// Generate writes the complete header for mod to out.
//
// Example:
//
//	mod := &hdrgen.Module{
//	    Name:  "Foo",
//	    Decls: []hdrgen.Decl{&hdrgen.Func{Name: "doThing", Passes: hdrgen.ForObjC}},
//	}
//	err := hdrgen.Generate(os.Stdout, mod, hdrgen.ExposePublicDecls())
func Generate(out io.Writer, mod *decl.Module, opts ...Option) error {
	if mod == nil {
		return ErrNoModule
	}

	cfg := genConfig{version: DefaultVersion}
	for _, opt := range opts {
		opt(&cfg)
	}

	return assembler.Write(out, mod, assembler.Config{
		BridgingHeader:    cfg.bridgingHeader,
		ExposePublicDecls: cfg.exposePublicDecls,
		Version:           cfg.version,
		Macros:            cfg.macroTable,
		Logger:            componentLogger(cfg.logger, "assembler"),
	})
}

// GenerateString is Generate into a string.
func GenerateString(mod *decl.Module, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Generate(&sb, mod, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}
