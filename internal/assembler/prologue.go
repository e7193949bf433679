package assembler

import (
	"bufio"
	"fmt"

	"github.com/onyxlang/hdrgen/macros"
)

func writePrologue(w *bufio.Writer, cfg Config, guard string) {
	fmt.Fprintf(w, "// Generated by %s\n", cfg.Version)
	fmt.Fprintf(w, "#ifndef %s\n", guard)
	fmt.Fprintf(w, "#define %s\n", guard)
	w.WriteString("#pragma clang diagnostic push\n" +
		"#pragma clang diagnostic ignored \"-Wgcc-compat\"\n" +
		"\n" +
		"#if !defined(__has_include)\n" +
		"# define __has_include(x) 0\n" +
		"#endif\n" +
		"#if !defined(__has_attribute)\n" +
		"# define __has_attribute(x) 0\n" +
		"#endif\n" +
		"#if !defined(__has_feature)\n" +
		"# define __has_feature(x) 0\n" +
		"#endif\n" +
		"#if !defined(__has_warning)\n" +
		"# define __has_warning(x) 0\n" +
		"#endif\n" +
		"\n" +
		"#if __has_include(<onyx/objc-prologue.h>)\n" +
		"# include <onyx/objc-prologue.h>\n" +
		"#endif\n" +
		"\n" +
		"#pragma clang diagnostic ignored \"-Wauto-import\"\n")

	beginObjC(w)
	w.WriteString("#include <Foundation/Foundation.h>\n")
	endConditional(w)

	beginCxx(w)
	w.WriteString("#include <cstdint>\n" +
		"#include <cstddef>\n" +
		"#include <cstdbool>\n" +
		"#else\n" +
		"#include <stdint.h>\n" +
		"#include <stddef.h>\n" +
		"#include <stdbool.h>\n")
	endConditional(w)

	w.WriteString("\n" +
		"#if !defined(ONYX_TYPEDEFS)\n" +
		"# define ONYX_TYPEDEFS 1\n" +
		"# if __has_include(<uchar.h>)\n" +
		"#  include <uchar.h>\n" +
		"# elif !defined(__cplusplus)\n" +
		"typedef uint_least16_t char16_t;\n" +
		"typedef uint_least32_t char32_t;\n" +
		"# endif\n")
	writeSIMDTypedefs(w)
	w.WriteString("#endif\n\n")

	// Table emission shares the buffered writer; a write failure
	// surfaces through the final Flush.
	_ = cfg.Macros.EmitTo(w)
}

// writeSIMDTypedefs emits the vector typedef shims, one per mapped
// scalar type and arity up to the table-checked maximum.
func writeSIMDTypedefs(w *bufio.Writer) {
	for _, st := range macros.SIMDTypes {
		for n := 2; n <= macros.MaxSIMDElements; n++ {
			fmt.Fprintf(w, "typedef %s onyx_%s%d  __attribute__((__ext_vector_type__(%d)));\n",
				st.Scalar, st.Stem, n, n)
		}
	}
}

func writePostImportPrologue(w *bufio.Writer, moduleName string) {
	w.WriteString("#pragma clang diagnostic ignored \"-Wproperty-attribute-mismatch\"\n" +
		"#pragma clang diagnostic ignored \"-Wduplicate-method-arg\"\n" +
		"#if __has_warning(\"-Wpragma-clang-attribute\")\n" +
		"# pragma clang diagnostic ignored \"-Wpragma-clang-attribute\"\n" +
		"#endif\n" +
		"#pragma clang diagnostic ignored \"-Wunknown-pragmas\"\n" +
		"#pragma clang diagnostic ignored \"-Wnullability\"\n" +
		"#pragma clang diagnostic ignored \"-Wdollar-in-identifier-extension\"\n" +
		"\n" +
		"#if __has_attribute(external_source_symbol)\n" +
		"# pragma push_macro(\"any\")\n" +
		"# undef any\n")
	fmt.Fprintf(w, "# pragma clang attribute push("+
		"__attribute__((external_source_symbol(language=\"Onyx\", defined_in=%q,generated_declaration))), "+
		"apply_to=any(function,enum,objc_interface,objc_category,objc_protocol))\n", moduleName)
	w.WriteString("# pragma pop_macro(\"any\")\n" +
		"#endif\n\n")
}

func writeEpilogue(w *bufio.Writer) {
	w.WriteString("#if __has_attribute(external_source_symbol)\n" +
		"# pragma clang attribute pop\n" +
		"#endif\n" +
		"#pragma clang diagnostic pop\n" +
		// Closes the double-inclusion guard from the prologue.
		"#endif\n")
}
