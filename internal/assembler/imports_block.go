package assembler

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/onyxlang/hdrgen/decl"
	"github.com/onyxlang/hdrgen/internal/imports"
)

// writeImports emits the @import statements for one pass, sorted by
// the collector's ordering, inside a feature guard so the header
// stays valid for compilers without module support.
//
// A native import whose name matches the module being emitted is the
// module's underlying compatibility counterpart: it is dropped from
// the @import list and replaced by a single #import after the block,
// using the bridging header path when one was supplied.
func writeImports(w *bufio.Writer, imps *imports.Set, mod *decl.Module, bridgingHeader string) {
	w.WriteString("#if __has_feature(modules)\n")
	w.WriteString("#if __has_warning(\"-Watimport-in-framework-header\")\n" +
		"#pragma clang diagnostic ignored \"-Watimport-in-framework-header\"\n" +
		"#endif\n")

	includeUnderlying := false
	for _, imp := range imps.Sorted() {
		if !imp.IsForeign() && imp.Name() == mod.Name {
			includeUnderlying = true
			continue
		}
		if imp.IsForeign() {
			fmt.Fprintf(w, "@import %s;\n", strings.Join(imp.Path(), "."))
		} else {
			fmt.Fprintf(w, "@import %s;\n", imp.Name())
		}
	}

	w.WriteString("#endif\n\n")

	if includeUnderlying {
		if bridgingHeader == "" {
			fmt.Fprintf(w, "#import <%s/%s.h>\n\n", mod.Name, mod.Name)
		} else {
			fmt.Fprintf(w, "#import %q\n\n", bridgingHeader)
		}
	}
}
