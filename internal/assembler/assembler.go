// Package assembler drives header emission for one module.
//
// Emission is a strict linear pipeline: prologue, Objective-C import
// block, post-import prologue, Objective-C body, C++ body, epilogue.
// Every guard decision is made before its text is written; the output
// stream is append-only and never patched. All ordering is explicit,
// so fixed module contents and a fixed version string produce
// byte-identical output.
package assembler

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/onyxlang/hdrgen/decl"
	"github.com/onyxlang/hdrgen/internal/imports"
	"github.com/onyxlang/hdrgen/internal/printer"
	"github.com/onyxlang/hdrgen/macros"
)

// Config carries the caller-facing emission switches.
type Config struct {
	// BridgingHeader overrides the conventional <Name/Name.h> include
	// emitted when the module references its own underlying
	// compatibility counterpart.
	BridgingHeader string

	// ExposePublicDecls enables the C++ body block. The __cplusplus
	// guard markers are emitted either way.
	ExposePublicDecls bool

	// Version is the compiler version recorded in the header's first
	// line. It must be fixed for reproducible output.
	Version string

	// Macros is the helper-macro table; nil selects the default.
	Macros *macros.Table

	Logger *slog.Logger
}

// Write emits the complete header for mod.
func Write(out io.Writer, mod *decl.Module, cfg Config) error {
	if cfg.Macros == nil {
		cfg.Macros = macros.Default()
	}

	if cfg.Logger != nil && cfg.Logger.Enabled(context.Background(), slog.LevelDebug) {
		cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, "emitting header",
			slog.String("module", mod.Name),
			slog.Int("decls", len(mod.Decls)),
			slog.Bool("exposePublicDecls", cfg.ExposePublicDecls))
	}

	// The Objective-C body is rendered first, into a side buffer: the
	// printer discovers the import set as it renders, and the import
	// block precedes the body in the output.
	imps := imports.NewSet()
	var objcBody strings.Builder
	printer.PrintModuleContents(&objcBody, imps, mod, decl.ObjC, cfg.Logger)

	w := bufio.NewWriter(out)

	writePrologue(w, cfg, macroGuard(mod.Name))

	beginObjC(w)
	writeImports(w, imps, mod, cfg.BridgingHeader)
	endConditional(w)

	writePostImportPrologue(w, mod.Name)

	beginObjC(w)
	w.WriteString(objcBody.String())
	endConditional(w)

	beginCxx(w)
	if cfg.ExposePublicDecls {
		w.WriteString(cxxModuleContents(mod, cfg.Logger))
	}
	endConditional(w)

	writeEpilogue(w)

	return w.Flush()
}

// macroGuard computes the double-inclusion guard name.
func macroGuard(moduleName string) string {
	return strings.ToUpper(moduleName) + "_ONYX_H"
}

// cxxModuleContents renders the C++ body. The pass gets its own
// import accumulator for printer symmetry; the Objective-C import
// block has already been written by the time this runs, so the
// accumulator is discarded.
func cxxModuleContents(mod *decl.Module, logger *slog.Logger) string {
	imps := imports.NewSet()
	var sb strings.Builder
	printer.PrintModuleContents(&sb, imps, mod, decl.Cxx, logger)
	return sb.String()
}

func beginObjC(w *bufio.Writer) {
	w.WriteString("#if defined(__OBJC__)\n")
}

func beginCxx(w *bufio.Writer) {
	w.WriteString("#if defined(__cplusplus)\n")
}

func endConditional(w *bufio.Writer) {
	w.WriteString("#endif\n")
}
