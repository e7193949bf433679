package hdrgen

import (
	"fmt"
	"io"
	"testing"
)

// benchModule builds a module large enough to exercise the printer
// and import collector, with a mix of kinds and origins.
func benchModule(decls int) *Module {
	mod := &Module{Name: "Bench"}
	for i := 0; i < decls; i++ {
		switch i % 4 {
		case 0:
			mod.Decls = append(mod.Decls, &Func{
				Name: fmt.Sprintf("fn%d", i),
				Params: []Param{
					{Name: "x", Type: Type("double")},
					{Name: "s", Type: TypeFrom("NSString * _Nonnull", NativeRef("Foundation"))},
				},
				Result: Type("double"),
				Passes: ForBoth,
			})
		case 1:
			mod.Decls = append(mod.Decls, &Enum{
				Name:   fmt.Sprintf("Enum%d", i),
				Raw:    Type("int32_t"),
				Cases:  []EnumCase{{Name: "A", Value: 0}, {Name: "B", Value: 1}},
				Passes: ForObjC,
			})
		case 2:
			mod.Decls = append(mod.Decls, &Class{
				Name:    fmt.Sprintf("Class%d", i),
				Methods: []Func{{Name: "run"}},
				Passes:  ForObjC,
			})
		default:
			mod.Decls = append(mod.Decls, &Struct{
				Name:   fmt.Sprintf("Struct%d", i),
				Fields: []Field{{Name: "v", Type: Type("double")}},
				Passes: ForCxx,
			})
		}
	}
	return mod
}

func BenchmarkGenerate(b *testing.B) {
	mod := benchModule(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Generate(io.Discard, mod, ExposePublicDecls()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateSmall(b *testing.B) {
	mod := &Module{
		Name:  "Foo",
		Decls: []Decl{&Func{Name: "doThing", Passes: ForObjC}},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Generate(io.Discard, mod, ExposePublicDecls()); err != nil {
			b.Fatal(err)
		}
	}
}
