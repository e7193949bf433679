package hdrgen

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/onyxlang/hdrgen/decl"
)

// Module description files are the CLI's stand-in for the compiler's
// declaration pipeline: a YAML document listing the module name and
// its declarations in emission order.
//
//	module: Foo
//	decls:
//	  - kind: func
//	    name: doThing
//	    passes: objc
//	  - kind: enum
//	    name: Direction
//	    raw: int32_t
//	    cases:
//	      - {name: North, value: 0}
//	      - {name: South, value: 1}
//
// Type references are either a bare spelling ("double") or a mapping
// with an origin:
//
//	result: {type: "NSString * _Nonnull", module: Foundation}
//	result: {type: "os_log_t", submodule: os.log}

// LoadModule reads a module description from r.
func LoadModule(r io.Reader) (*decl.Module, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc moduleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse module description: %w", err)
	}
	return doc.toModule()
}

// LoadModuleFile reads a module description from a file.
func LoadModuleFile(path string) (*decl.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mod, err := LoadModule(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mod, nil
}

// LoadModuleFS reads a module description from a file in fsys
// (e.g. an embed.FS).
func LoadModuleFS(fsys fs.FS, path string) (*decl.Module, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mod, err := LoadModule(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mod, nil
}

type moduleDoc struct {
	Module string    `yaml:"module"`
	Decls  []declDoc `yaml:"decls"`
}

type declDoc struct {
	Kind   string `yaml:"kind"`
	Name   string `yaml:"name"`
	Passes string `yaml:"passes,omitempty"`

	// func
	Result *typeDoc   `yaml:"result,omitempty"`
	Params []paramDoc `yaml:"params,omitempty"`

	// class
	Superclass *typeDoc  `yaml:"superclass,omitempty"`
	Methods    []declDoc `yaml:"methods,omitempty"`

	// enum
	Raw   *typeDoc  `yaml:"raw,omitempty"`
	Cases []caseDoc `yaml:"cases,omitempty"`

	// struct
	Fields []paramDoc `yaml:"fields,omitempty"`

	// alias
	Underlying *typeDoc `yaml:"underlying,omitempty"`

	// global
	Type     *typeDoc `yaml:"type,omitempty"`
	Constant bool     `yaml:"constant,omitempty"`
}

type paramDoc struct {
	Name string  `yaml:"name"`
	Type typeDoc `yaml:"type"`
}

type caseDoc struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// typeDoc accepts either a scalar spelling or a mapping with an
// origin module.
type typeDoc struct {
	ref decl.TypeRef
}

func (t *typeDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var spelling string
		if err := node.Decode(&spelling); err != nil {
			return err
		}
		t.ref = decl.Type(spelling)
		return nil
	}

	var raw struct {
		Type      string `yaml:"type"`
		Module    string `yaml:"module"`
		Submodule string `yaml:"submodule"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Module != "" && raw.Submodule != "" {
		return fmt.Errorf("type %q: module and submodule are mutually exclusive", raw.Type)
	}

	switch {
	case raw.Submodule != "":
		parts := strings.Split(raw.Submodule, ".")
		if len(parts) < 2 {
			return fmt.Errorf("type %q: submodule path %q needs at least two components; use module for top-level imports",
				raw.Type, raw.Submodule)
		}
		t.ref = decl.TypeFrom(raw.Type, decl.ForeignRef(parts...))
	case raw.Module != "":
		t.ref = decl.TypeFrom(raw.Type, decl.NativeRef(raw.Module))
	default:
		t.ref = decl.Type(raw.Type)
	}
	return nil
}

func (t *typeDoc) orVoid() decl.TypeRef {
	if t == nil {
		return decl.TypeRef{}
	}
	return t.ref
}

func (d *moduleDoc) toModule() (*decl.Module, error) {
	if d.Module == "" {
		return nil, fmt.Errorf("module description has no module name")
	}

	mod := &decl.Module{Name: d.Module}
	for i := range d.Decls {
		dd, err := d.Decls[i].toDecl()
		if err != nil {
			return nil, fmt.Errorf("decl %d: %w", i, err)
		}
		mod.Decls = append(mod.Decls, dd)
	}
	return mod, nil
}

func (d *declDoc) toDecl() (decl.Decl, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("declaration has no name")
	}

	passes, err := parsePasses(d.Passes, d.Kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}

	switch d.Kind {
	case "func":
		return &decl.Func{
			Name:   d.Name,
			Params: toParams(d.Params),
			Result: d.Result.orVoid(),
			Passes: passes,
		}, nil

	case "class":
		c := &decl.Class{
			Name:       d.Name,
			Superclass: d.Superclass.orVoid(),
			Passes:     passes,
		}
		for i := range d.Methods {
			m := &d.Methods[i]
			if m.Name == "" {
				return nil, fmt.Errorf("%s: method %d has no name", d.Name, i)
			}
			c.Methods = append(c.Methods, decl.Func{
				Name:   m.Name,
				Params: toParams(m.Params),
				Result: m.Result.orVoid(),
				Passes: passes,
			})
		}
		return c, nil

	case "enum":
		e := &decl.Enum{
			Name:   d.Name,
			Raw:    d.Raw.orVoid(),
			Passes: passes,
		}
		for _, c := range d.Cases {
			e.Cases = append(e.Cases, decl.EnumCase{Name: c.Name, Value: c.Value})
		}
		return e, nil

	case "struct":
		s := &decl.Struct{Name: d.Name, Passes: passes}
		for _, f := range d.Fields {
			s.Fields = append(s.Fields, decl.Field{Name: f.Name, Type: f.Type.ref})
		}
		return s, nil

	case "alias":
		return &decl.TypeAlias{
			Name:       d.Name,
			Underlying: d.Underlying.orVoid(),
			Passes:     passes,
		}, nil

	case "global":
		return &decl.Global{
			Name:     d.Name,
			Type:     d.Type.orVoid(),
			Constant: d.Constant,
			Passes:   passes,
		}, nil

	default:
		return nil, fmt.Errorf("%s: unknown declaration kind %q", d.Name, d.Kind)
	}
}

func toParams(docs []paramDoc) []decl.Param {
	if len(docs) == 0 {
		return nil
	}
	params := make([]decl.Param, len(docs))
	for i, p := range docs {
		params[i] = decl.Param{Name: p.Name, Type: p.Type.ref}
	}
	return params
}

// parsePasses maps the description's passes field to a pass set.
// Structs default to the C++ pass, everything else to Objective-C.
func parsePasses(s, kind string) (decl.Passes, error) {
	switch s {
	case "":
		if kind == "struct" {
			return decl.ForCxx, nil
		}
		return decl.ForObjC, nil
	case "objc":
		return decl.ForObjC, nil
	case "cxx", "c++":
		return decl.ForCxx, nil
	case "both":
		return decl.ForBoth, nil
	default:
		return 0, fmt.Errorf("unknown passes value %q", s)
	}
}
