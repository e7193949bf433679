package printer

import (
	"fmt"
	"strings"

	"github.com/onyxlang/hdrgen/decl"
)

func (p *printer) printObjCFunc(d *decl.Func) bool {
	result := p.typeName(d.Result)
	sig := fmt.Sprintf("ONYX_EXTERN %s %s%s ONYX_NOEXCEPT", result, d.Name, p.params(d.Params))
	if !d.Result.IsVoid() {
		sig += " ONYX_WARN_UNUSED_RESULT"
	}
	p.printf("%s;\n\n", sig)
	return true
}

func (p *printer) printObjCClass(d *decl.Class) bool {
	super := "NSObject"
	if !d.Superclass.IsVoid() {
		super = p.typeName(d.Superclass)
	}

	p.printf("ONYX_CLASS(%q)\n", d.Name)
	p.printf("@interface %s : %s\n", d.Name, super)
	for i := range d.Methods {
		p.printObjCMethod(&d.Methods[i])
	}
	p.printf("@end\n\n")
	return true
}

// printObjCMethod renders one method prototype. The first parameter
// attaches to the method name; later parameter names become the
// remaining selector pieces.
func (p *printer) printObjCMethod(m *decl.Func) {
	var sb strings.Builder
	sb.WriteString("- (" + p.typeName(m.Result) + ")" + m.Name)
	for i, param := range m.Params {
		if i > 0 {
			sb.WriteString(" " + param.Name)
		}
		sb.WriteString(":(" + p.typeName(param.Type) + ")" + param.Name)
	}
	sb.WriteString(";")
	p.printf("%s\n", sb.String())
}

func (p *printer) printObjCEnum(d *decl.Enum) bool {
	raw := "NSInteger"
	if !d.Raw.IsVoid() {
		raw = p.typeName(d.Raw)
	}
	p.printf("typedef ONYX_ENUM(%s, %s) {\n", raw, d.Name)
	for _, c := range d.Cases {
		p.printf("  %s%s = %d,\n", d.Name, c.Name, c.Value)
	}
	p.printf("};\n\n")
	return true
}

func (p *printer) printObjCTypeAlias(d *decl.TypeAlias) bool {
	p.printf("typedef %s %s;\n\n", p.typeName(d.Underlying), d.Name)
	return true
}

func (p *printer) printObjCGlobal(d *decl.Global) bool {
	typ := p.typeName(d.Type)
	if d.Constant {
		p.printf("ONYX_EXTERN %s const %s;\n\n", typ, d.Name)
	} else {
		p.printf("ONYX_EXTERN %s %s;\n\n", typ, d.Name)
	}
	return true
}
