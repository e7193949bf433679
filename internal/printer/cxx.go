package printer

import "github.com/onyxlang/hdrgen/decl"

func (p *printer) printCxxFunc(d *decl.Func) bool {
	result := p.typeName(d.Result)
	sig := "ONYX_INLINE " + result + " " + d.Name + p.cxxParams(d.Params) + " ONYX_NOEXCEPT"
	if !d.Result.IsVoid() {
		sig += " ONYX_WARN_UNUSED_RESULT"
	}
	p.printf("%s;\n\n", sig)
	return true
}

// cxxParams renders a parameter list; unlike C, an empty C++
// parameter list is spelled "()".
func (p *printer) cxxParams(ps []decl.Param) string {
	if len(ps) == 0 {
		return "()"
	}
	return p.params(ps)
}

func (p *printer) printCxxEnum(d *decl.Enum) bool {
	raw := "int"
	if !d.Raw.IsVoid() {
		raw = p.typeName(d.Raw)
	}
	p.printf("enum class %s : %s {\n", d.Name, raw)
	for _, c := range d.Cases {
		p.printf("  %s = %d,\n", c.Name, c.Value)
	}
	p.printf("};\n\n")
	return true
}

func (p *printer) printCxxStruct(d *decl.Struct) bool {
	p.printf("struct %s ONYX_FINAL {\n", d.Name)
	for _, f := range d.Fields {
		p.printf("  %s %s;\n", p.typeName(f.Type), f.Name)
	}
	p.printf("};\n\n")
	return true
}

func (p *printer) printCxxTypeAlias(d *decl.TypeAlias) bool {
	p.printf("using %s = %s;\n\n", d.Name, p.typeName(d.Underlying))
	return true
}

func (p *printer) printCxxGlobal(d *decl.Global) bool {
	typ := p.typeName(d.Type)
	if d.Constant {
		p.printf("extern %s const %s;\n\n", typ, d.Name)
	} else {
		p.printf("extern %s %s;\n\n", typ, d.Name)
	}
	return true
}
