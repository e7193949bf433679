package hdrgen

import "github.com/onyxlang/hdrgen/decl"

// Type aliases for public API - all declaration types come from the
// decl subpackage.

// Module is a named unit of declarations.
type Module = decl.Module

// Decl is a single top-level declaration.
type Decl = decl.Decl

// Func is a free function or a class method.
type Func = decl.Func

// Param is a function or method parameter.
type Param = decl.Param

// Class is a reference type exposed as an Objective-C interface.
type Class = decl.Class

// Enum is a raw-value enumeration.
type Enum = decl.Enum

// EnumCase is one labeled value of an Enum.
type EnumCase = decl.EnumCase

// Struct is a value type (C++ pass only).
type Struct = decl.Struct

// Field is a struct field.
type Field = decl.Field

// TypeAlias introduces a new name for an existing type.
type TypeAlias = decl.TypeAlias

// Global is a module-level variable or constant.
type Global = decl.Global

// TypeRef is a C-level type spelling plus its module of origin.
type TypeRef = decl.TypeRef

// ModuleRef identifies the module a referenced type comes from.
type ModuleRef = decl.ModuleRef

// Pass selects one of the two emission passes.
type Pass = decl.Pass

// Passes is the set of emission passes a declaration participates in.
type Passes = decl.Passes

// Pass constants.
const (
	ObjC = decl.ObjC
	Cxx  = decl.Cxx
)

// Pass set constants.
const (
	ForObjC = decl.ForObjC
	ForCxx  = decl.ForCxx
	ForBoth = decl.ForBoth
)

// Type reference constructors.
var (
	Type       = decl.Type
	TypeFrom   = decl.TypeFrom
	NativeRef  = decl.NativeRef
	ForeignRef = decl.ForeignRef
)
