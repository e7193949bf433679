// Package decl provides the declaration model consumed by header generation.
//
// The model is deliberately shallow: declarations arrive here already
// resolved and type-checked by the compiler frontend. A Module holds an
// ordered declaration list, and each declaration carries just enough
// structure for the printer to render a C-family signature:
//
//   - a stable name
//   - the emission passes it participates in (Objective-C, C++, or both)
//   - parameter/field/case lists with type references
//
// Type references may name types from other modules. The printer uses
// those origins to accumulate the header's import list; nothing in this
// package performs resolution.
package decl

// Pass selects one of the two emission passes.
type Pass uint8

const (
	// ObjC is the Objective-C-compatible emission pass.
	ObjC Pass = 1 << iota
	// Cxx is the C++-compatible emission pass.
	Cxx
)

// String returns the conventional name of the pass.
func (p Pass) String() string {
	switch p {
	case ObjC:
		return "objc"
	case Cxx:
		return "c++"
	default:
		return "unknown"
	}
}

// Passes is the set of emission passes a declaration participates in.
type Passes uint8

// Pass sets. Most declarations apply to exactly one pass.
const (
	ForObjC = Passes(ObjC)
	ForCxx  = Passes(Cxx)
	ForBoth = ForObjC | ForCxx
)

// Has reports whether the set includes the given pass.
func (ps Passes) Has(p Pass) bool {
	return ps&Passes(p) != 0
}

// Module is a named, immutable unit of declarations.
// Declaration order is the order the compiler produced and is
// preserved verbatim in the emitted header body.
type Module struct {
	Name  string
	Decls []Decl
}

// Decl is a single top-level declaration.
type Decl interface {
	// DeclName returns the declaration's name within its module.
	DeclName() string

	// Available reports whether the declaration applies to the pass.
	Available(p Pass) bool
}

// Func is a free function.
type Func struct {
	Name   string
	Params []Param
	Result TypeRef
	Passes Passes
}

// Param is a single function or method parameter.
type Param struct {
	Name string
	Type TypeRef
}

func (f *Func) DeclName() string      { return f.Name }
func (f *Func) Available(p Pass) bool { return f.Passes.Has(p) }

// Class is a reference type exposed as an Objective-C interface.
type Class struct {
	Name       string
	Superclass TypeRef // zero value means NSObject
	Methods    []Func
	Passes     Passes
}

func (c *Class) DeclName() string      { return c.Name }
func (c *Class) Available(p Pass) bool { return c.Passes.Has(p) }

// Enum is a raw-value enumeration.
type Enum struct {
	Name   string
	Raw    TypeRef // underlying integer type, e.g. "int32_t"
	Cases  []EnumCase
	Passes Passes
}

// EnumCase is one labeled value of an Enum.
type EnumCase struct {
	Name  string
	Value int64
}

func (e *Enum) DeclName() string      { return e.Name }
func (e *Enum) Available(p Pass) bool { return e.Passes.Has(p) }

// Struct is a value type. Only the C++ pass can render it faithfully;
// declaring it ForObjC is legal but the Objective-C pass skips it.
type Struct struct {
	Name   string
	Fields []Field
	Passes Passes
}

// Field is a single struct field.
type Field struct {
	Name string
	Type TypeRef
}

func (s *Struct) DeclName() string      { return s.Name }
func (s *Struct) Available(p Pass) bool { return s.Passes.Has(p) }

// TypeAlias introduces a new name for an existing type.
type TypeAlias struct {
	Name       string
	Underlying TypeRef
	Passes     Passes
}

func (a *TypeAlias) DeclName() string      { return a.Name }
func (a *TypeAlias) Available(p Pass) bool { return a.Passes.Has(p) }

// Global is a module-level variable or constant.
type Global struct {
	Name     string
	Type     TypeRef
	Constant bool
	Passes   Passes
}

func (g *Global) DeclName() string      { return g.Name }
func (g *Global) Available(p Pass) bool { return g.Passes.Has(p) }
