package assembler

import (
	"strings"
	"testing"

	"github.com/onyxlang/hdrgen/decl"
	"github.com/onyxlang/hdrgen/internal/testutil"
)

func emit(t *testing.T, mod *decl.Module, cfg Config) string {
	t.Helper()
	if cfg.Version == "" {
		cfg.Version = "Onyx test"
	}
	var sb strings.Builder
	testutil.NoError(t, Write(&sb, mod, cfg))
	return sb.String()
}

func TestMacroGuard(t *testing.T) {
	tests := []struct {
		module string
		want   string
	}{
		{"Foo", "FOO_ONYX_H"},
		{"CoreNetworking", "CORENETWORKING_ONYX_H"},
		{"m1", "M1_ONYX_H"},
	}
	for _, tt := range tests {
		testutil.Equal(t, tt.want, macroGuard(tt.module))
	}
}

func TestPrologueAndEpilogueStructure(t *testing.T) {
	out := emit(t, &decl.Module{Name: "Foo"}, Config{Version: "Onyxc 9.9"})

	testutil.True(t, strings.HasPrefix(out, "// Generated by Onyxc 9.9\n#ifndef FOO_ONYX_H\n#define FOO_ONYX_H\n"),
		"header must open with the version line and inclusion guard")
	testutil.True(t, strings.HasSuffix(out, "#pragma clang diagnostic pop\n#endif\n"),
		"header must close the diagnostic scope and the inclusion guard")

	// Feature-test fallbacks precede any use of __has_*.
	fallback := strings.Index(out, "#if !defined(__has_feature)")
	firstUse := strings.Index(out, "__has_feature(modules)")
	testutil.True(t, fallback >= 0 && firstUse > fallback)

	// One push at the top, one pop at the bottom.
	testutil.Equal(t, 1, strings.Count(out, "#pragma clang diagnostic push"))
	testutil.Equal(t, 1, strings.Count(out, "#pragma clang diagnostic pop"))
}

func TestPrologueTypedefShims(t *testing.T) {
	out := emit(t, &decl.Module{Name: "Foo"}, Config{})

	testutil.Contains(t, out, "#if !defined(ONYX_TYPEDEFS)\n# define ONYX_TYPEDEFS 1\n")
	testutil.Contains(t, out, "typedef float onyx_float2  __attribute__((__ext_vector_type__(2)));")
	testutil.Contains(t, out, "typedef double onyx_double4  __attribute__((__ext_vector_type__(4)));")
	testutil.Contains(t, out, "typedef unsigned int onyx_uint3  __attribute__((__ext_vector_type__(3)));")
	testutil.NotContains(t, out, "onyx_float5", "arity is bounded by the table's maximum")
}

func TestDefaultMacroTableIsEmitted(t *testing.T) {
	out := emit(t, &decl.Module{Name: "Foo"}, Config{})
	testutil.Contains(t, out, "#if !defined(ONYX_PASTE)")
	testutil.Contains(t, out, "# define ONYX_EXTERN extern \"C\"")
}

func TestImportOrdering(t *testing.T) {
	ref := func(name string) decl.TypeRef {
		return decl.TypeFrom("id", decl.NativeRef(name))
	}
	mod := &decl.Module{
		Name: "Foo",
		Decls: []decl.Decl{
			&decl.Global{Name: "b", Type: ref("B"), Passes: decl.ForObjC},
			&decl.Global{Name: "a", Type: ref("A"), Passes: decl.ForObjC},
			&decl.Global{Name: "c", Type: ref("C"), Passes: decl.ForObjC},
		},
	}

	out := emit(t, mod, Config{})
	testutil.Contains(t, out, "@import A;\n@import B;\n@import C;\n")
}

func TestForeignSubmoduleSortsByTopLevelName(t *testing.T) {
	mod := &decl.Module{
		Name: "Foo",
		Decls: []decl.Decl{
			&decl.Global{Name: "z", Type: decl.TypeFrom("id", decl.NativeRef("Zeta")), Passes: decl.ForObjC},
			&decl.Global{Name: "s", Type: decl.TypeFrom("id", decl.ForeignRef("Alpha", "Sub")), Passes: decl.ForObjC},
		},
	}

	out := emit(t, mod, Config{})
	testutil.Contains(t, out, "@import Alpha.Sub;\n@import Zeta;\n")
}

func TestSelfReferenceCollapsesToUnderlyingInclude(t *testing.T) {
	mod := &decl.Module{
		Name: "Foo",
		Decls: []decl.Decl{
			&decl.Global{Name: "legacy", Type: decl.TypeFrom("FooRef", decl.NativeRef("Foo")), Passes: decl.ForObjC},
			&decl.Global{Name: "other", Type: decl.TypeFrom("id", decl.NativeRef("Bar")), Passes: decl.ForObjC},
		},
	}

	out := emit(t, mod, Config{})
	testutil.NotContains(t, out, "@import Foo;")
	testutil.Contains(t, out, "@import Bar;")
	testutil.Equal(t, 1, strings.Count(out, "#import <Foo/Foo.h>"))
}

func TestSelfReferenceUsesBridgingHeaderOverride(t *testing.T) {
	mod := &decl.Module{
		Name: "Foo",
		Decls: []decl.Decl{
			&decl.Global{Name: "legacy", Type: decl.TypeFrom("FooRef", decl.NativeRef("Foo")), Passes: decl.ForObjC},
		},
	}

	out := emit(t, mod, Config{BridgingHeader: "Sources/Foo-Bridging.h"})
	testutil.NotContains(t, out, "@import Foo;")
	testutil.NotContains(t, out, "#import <Foo/Foo.h>")
	testutil.Contains(t, out, "#import \"Sources/Foo-Bridging.h\"\n")
}

func TestNoUnderlyingIncludeWithoutSelfReference(t *testing.T) {
	mod := &decl.Module{
		Name:  "Foo",
		Decls: []decl.Decl{&decl.Func{Name: "doThing", Passes: decl.ForObjC}},
	}

	out := emit(t, mod, Config{BridgingHeader: "Foo-Bridging.h"})
	testutil.NotContains(t, out, "#import")
}

func TestPostImportPrologueNamesModule(t *testing.T) {
	out := emit(t, &decl.Module{Name: "Analytics"}, Config{})
	testutil.Contains(t, out, `external_source_symbol(language="Onyx", defined_in="Analytics",generated_declaration)`)
	testutil.Contains(t, out, "#pragma clang diagnostic ignored \"-Wnullability\"")
}

func TestCxxBodySuppressedByDefault(t *testing.T) {
	mod := &decl.Module{
		Name:  "Foo",
		Decls: []decl.Decl{&decl.Func{Name: "compute", Passes: decl.ForCxx}},
	}

	out := emit(t, mod, Config{})
	testutil.NotContains(t, out, "namespace Foo")
	testutil.NotContains(t, out, "compute")

	out = emit(t, mod, Config{ExposePublicDecls: true})
	testutil.Contains(t, out, "namespace Foo {")
	testutil.Contains(t, out, "compute")
}

func TestCxxImportsAreNotEmitted(t *testing.T) {
	// The C++ pass collects imports for printer symmetry but the
	// import block belongs to the Objective-C section only.
	mod := &decl.Module{
		Name: "Foo",
		Decls: []decl.Decl{
			&decl.Func{
				Name:   "compute",
				Result: decl.TypeFrom("Matrix", decl.NativeRef("LinAlg")),
				Passes: decl.ForCxx,
			},
		},
	}

	out := emit(t, mod, Config{ExposePublicDecls: true})
	testutil.NotContains(t, out, "@import LinAlg;")
}

func TestDeterminism(t *testing.T) {
	mod := &decl.Module{
		Name: "Foo",
		Decls: []decl.Decl{
			&decl.Global{Name: "d", Type: decl.TypeFrom("id", decl.NativeRef("Delta")), Passes: decl.ForObjC},
			&decl.Global{Name: "a", Type: decl.TypeFrom("id", decl.NativeRef("Alpha")), Passes: decl.ForObjC},
			&decl.Global{Name: "s", Type: decl.TypeFrom("id", decl.ForeignRef("Core", "Sub")), Passes: decl.ForObjC},
		},
	}

	first := emit(t, mod, Config{ExposePublicDecls: true})
	for i := 0; i < 20; i++ {
		testutil.Equal(t, first, emit(t, mod, Config{ExposePublicDecls: true}))
	}
}
