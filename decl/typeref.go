package decl

import "strings"

// ModuleRef identifies the module a referenced type comes from.
// It is a two-case sum: a native Onyx module known by name, or a
// foreign Clang submodule known by its qualified path. The zero value
// means "local or builtin" and registers no import.
type ModuleRef struct {
	native  string
	foreign []string
}

// NativeRef returns a reference to a native module.
func NativeRef(name string) ModuleRef {
	return ModuleRef{native: name}
}

// ForeignRef returns a reference to a foreign Clang submodule.
// Top-level foreign modules are always represented through their
// native overlay, so the path must have at least two components.
func ForeignRef(path ...string) ModuleRef {
	if len(path) < 2 {
		panic("decl: foreign module reference must be a submodule path")
	}
	return ModuleRef{foreign: path}
}

// IsZero reports whether the reference names no module.
func (r ModuleRef) IsZero() bool {
	return r.native == "" && r.foreign == nil
}

// IsForeign reports whether the reference names a foreign submodule.
func (r ModuleRef) IsForeign() bool { return r.foreign != nil }

// Native returns the native module name, or "" for foreign references.
func (r ModuleRef) Native() string { return r.native }

// Foreign returns the foreign submodule path, outermost first.
func (r ModuleRef) Foreign() []string { return r.foreign }

// String returns the dotted canonical path.
func (r ModuleRef) String() string {
	if r.foreign != nil {
		return strings.Join(r.foreign, ".")
	}
	return r.native
}

// TypeRef is a C-level type spelling plus the module it comes from.
// Name holds the exact text the printer writes, e.g. "double" or
// "NSString * _Nonnull". Origin is zero for local and builtin types.
type TypeRef struct {
	Name   string
	Origin ModuleRef
}

// Type returns a TypeRef with no origin.
func Type(name string) TypeRef {
	return TypeRef{Name: name}
}

// TypeFrom returns a TypeRef originating in the given module.
func TypeFrom(name string, origin ModuleRef) TypeRef {
	return TypeRef{Name: name, Origin: origin}
}

// IsVoid reports whether the reference is the void type or empty.
func (t TypeRef) IsVoid() bool {
	return t.Name == "" || t.Name == "void"
}
