// Package imports accumulates and orders the modules a generated
// header must reference.
//
// Each emission pass owns one Set. The printer adds a module every
// time it renders a type reference that originates elsewhere; the
// assembler drains the set once, sorted, when it writes the import
// block. Ordering is fully explicit so the header is byte-identical
// across runs: native modules sort by name, foreign submodules sort
// by their qualified path compared component-by-component from the
// top-level component inward.
package imports

import (
	"cmp"
	"slices"
	"strings"
)

// Module is a two-case sum: a native Onyx module, or a foreign Clang
// submodule. Foreign references always carry a path of at least two
// components; top-level foreign modules are represented as native
// imports of their overlay.
type Module struct {
	name string
	path []string
}

// Native returns an import of a native module.
func Native(name string) Module {
	return Module{name: name}
}

// Foreign returns an import of a foreign submodule.
func Foreign(path ...string) Module {
	if len(path) < 2 {
		panic("imports: top-level foreign modules must be imported as natives")
	}
	return Module{path: slices.Clone(path)}
}

// IsForeign reports whether the import names a foreign submodule.
func (m Module) IsForeign() bool { return m.path != nil }

// Name returns the native module name, or "" for foreign imports.
func (m Module) Name() string { return m.name }

// Path returns the foreign submodule path, outermost component first.
func (m Module) Path() []string { return m.path }

// TopLevelName returns the outermost component of the import.
func (m Module) TopLevelName() string {
	if m.path != nil {
		return m.path[0]
	}
	return m.name
}

// CanonicalName returns the dotted qualified path used as the
// deduplication and identity key.
func (m Module) CanonicalName() string {
	if m.path != nil {
		return strings.Join(m.path, ".")
	}
	return m.name
}

// Compare orders two imports for the header's import block.
//
// Native modules compare by name. A native module and a foreign
// submodule compare by the submodule's top-level component against the
// native name; because the foreign reference is a submodule, its full
// path can never equal a native module's name, so the order is strict
// even when the top-level names match. Two foreign submodules compare
// lexicographically over their paths from the outermost component
// inward. Two distinct foreign submodules must never share a full
// path; an observed collision means the upstream declaration data is
// inconsistent and Compare panics.
func Compare(a, b Module) int {
	if !a.IsForeign() && !b.IsForeign() {
		return cmp.Compare(a.name, b.name)
	}

	if !a.IsForeign() {
		return -Compare(b, a)
	}

	// a is foreign from here on.
	if !b.IsForeign() {
		if a.path[0] < b.name {
			return -1
		}
		return 1
	}

	if c := slices.Compare(a.path, b.path); c != 0 {
		return c
	}
	panic("imports: distinct foreign submodules share the canonical path " + a.CanonicalName())
}

// Set is the per-pass import accumulator. It deduplicates by
// canonical name and remembers nothing about insertion order.
type Set struct {
	seen map[string]struct{}
	mods []Module
}

// NewSet returns an empty accumulator.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add records a module reference. Adding the same canonical name
// again is a no-op.
func (s *Set) Add(m Module) {
	key := m.CanonicalName()
	if m.IsForeign() {
		// Foreign keys get a marker so a submodule path that happens
		// to be spelled like a native name cannot collapse into it.
		key = "." + key
	}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.mods = append(s.mods, m)
}

// Len returns the number of distinct modules recorded.
func (s *Set) Len() int { return len(s.mods) }

// Sorted returns the recorded modules in import-block order.
func (s *Set) Sorted() []Module {
	out := slices.Clone(s.mods)
	slices.SortFunc(out, Compare)
	return out
}
