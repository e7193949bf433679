// Package printer renders declarations as C-family source text.
//
// One printer serves one emission pass. Rendering a declaration may
// discover type references originating in other modules; those are
// registered into the pass's shared import accumulator as a side
// effect, which is why the printer runs before the import block is
// written. Declarations that do not apply to the active pass, and
// shapes the pass cannot express, are skipped silently: a single
// irregular declaration must never abort whole-module emission.
package printer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/onyxlang/hdrgen/decl"
	"github.com/onyxlang/hdrgen/internal/imports"
)

// LevelTrace matches the root package's per-item trace level.
const LevelTrace = slog.Level(-8)

// PrintModuleContents renders every declaration of mod applicable to
// pass, in declaration order, appending to buf. Referenced modules
// are added to imps.
func PrintModuleContents(buf *strings.Builder, imps *imports.Set, mod *decl.Module, pass decl.Pass, logger *slog.Logger) {
	p := &printer{
		out:    buf,
		imps:   imps,
		mod:    mod,
		pass:   pass,
		logger: logger,
	}

	applicable := false
	for _, d := range mod.Decls {
		if d.Available(pass) {
			applicable = true
			break
		}
	}
	if !applicable {
		return
	}

	if pass == decl.Cxx {
		p.printf("namespace %s {\n\n", mod.Name)
	}

	for _, d := range mod.Decls {
		if !d.Available(pass) {
			p.trace("declaration not applicable to pass",
				slog.String("decl", d.DeclName()),
				slog.String("pass", pass.String()))
			continue
		}
		p.printDecl(d)
	}

	if pass == decl.Cxx {
		p.printf("} // namespace %s\n", mod.Name)
	}
}

type printer struct {
	out    *strings.Builder
	imps   *imports.Set
	mod    *decl.Module
	pass   decl.Pass
	logger *slog.Logger
}

func (p *printer) printDecl(d decl.Decl) {
	var printed bool
	switch d := d.(type) {
	case *decl.Func:
		printed = p.printFunc(d)
	case *decl.Class:
		printed = p.printClass(d)
	case *decl.Enum:
		printed = p.printEnum(d)
	case *decl.Struct:
		printed = p.printStruct(d)
	case *decl.TypeAlias:
		printed = p.printTypeAlias(d)
	case *decl.Global:
		printed = p.printGlobal(d)
	}

	if printed {
		p.trace("rendered declaration",
			slog.String("decl", d.DeclName()),
			slog.String("pass", p.pass.String()))
	} else {
		p.trace("skipped declaration",
			slog.String("decl", d.DeclName()),
			slog.String("pass", p.pass.String()))
	}
}

func (p *printer) printFunc(d *decl.Func) bool {
	if p.pass == decl.Cxx {
		return p.printCxxFunc(d)
	}
	return p.printObjCFunc(d)
}

func (p *printer) printClass(d *decl.Class) bool {
	// Reference types have no C++ rendering yet; the Objective-C
	// interface is the only projection.
	if p.pass == decl.Cxx {
		return false
	}
	return p.printObjCClass(d)
}

func (p *printer) printEnum(d *decl.Enum) bool {
	if p.pass == decl.Cxx {
		return p.printCxxEnum(d)
	}
	return p.printObjCEnum(d)
}

func (p *printer) printStruct(d *decl.Struct) bool {
	// Value types need C++ semantics; @interface cannot express them.
	if p.pass == decl.ObjC {
		return false
	}
	return p.printCxxStruct(d)
}

func (p *printer) printTypeAlias(d *decl.TypeAlias) bool {
	if p.pass == decl.Cxx {
		return p.printCxxTypeAlias(d)
	}
	return p.printObjCTypeAlias(d)
}

func (p *printer) printGlobal(d *decl.Global) bool {
	if p.pass == decl.Cxx {
		return p.printCxxGlobal(d)
	}
	return p.printObjCGlobal(d)
}

// typeName registers the reference's origin module and returns the C
// spelling, defaulting to void.
func (p *printer) typeName(t decl.TypeRef) string {
	p.registerType(t)
	if t.Name == "" {
		return "void"
	}
	return t.Name
}

func (p *printer) registerType(t decl.TypeRef) {
	origin := t.Origin
	if origin.IsZero() {
		return
	}
	if origin.IsForeign() {
		p.imps.Add(imports.Foreign(origin.Foreign()...))
	} else {
		p.imps.Add(imports.Native(origin.Native()))
	}
	p.trace("registered import",
		slog.String("module", origin.String()),
		slog.String("type", t.Name))
}

// params renders a parameter list, "(void)" when empty.
func (p *printer) params(ps []decl.Param) string {
	if len(ps) == 0 {
		return "(void)"
	}
	parts := make([]string, len(ps))
	for i, param := range ps {
		parts[i] = p.typeName(param.Type) + " " + param.Name
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p *printer) printf(format string, args ...any) {
	if len(args) == 0 {
		p.out.WriteString(format)
		return
	}
	fmt.Fprintf(p.out, format, args...)
}

func (p *printer) trace(msg string, attrs ...slog.Attr) {
	if p.logger == nil || !p.logger.Enabled(context.Background(), LevelTrace) {
		return
	}
	p.logger.LogAttrs(context.Background(), LevelTrace, msg, attrs...)
}
