// Package macros provides the versioned table of helper macros emitted
// near the top of every generated header.
//
// The table is data, not code: an ordered list of macro definitions,
// each wrapped in "define only if not already defined" guards so the
// header never conflicts with platform headers or a hand-written
// prologue. The default table ships embedded in the binary; callers
// may load a replacement from YAML via Load or LoadFile.
package macros

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// MaxSIMDElements bounds the arity of the vector typedefs emitted in
// the header prologue. The macro table records the arity it was
// written against; Load rejects a table whose assumption differs.
const MaxSIMDElements = 4

// SIMDType maps a generated typedef stem to its C scalar type.
// onyx_<Stem>N typedefs are emitted for N in 2..MaxSIMDElements.
type SIMDType struct {
	Stem   string
	Scalar string
}

// SIMDTypes is the fixed list of vector-mapped scalar types.
var SIMDTypes = []SIMDType{
	{Stem: "float", Scalar: "float"},
	{Stem: "double", Scalar: "double"},
	{Stem: "int", Scalar: "int"},
	{Stem: "uint", Scalar: "unsigned int"},
}

// Guard selects the conditional wrapper a macro definition is
// emitted inside.
type Guard string

// Guard kinds.
const (
	// GuardDefault wraps the definition in #if !defined(NAME).
	GuardDefault Guard = ""
	// GuardObjC additionally restricts the definition to __OBJC__.
	GuardObjC Guard = "objc"
	// GuardCxx emits Value under __cplusplus and Alternative otherwise,
	// unconditionally redefining.
	GuardCxx Guard = "cxx"
	// GuardBody emits a raw body inside #if !defined(NAME).
	GuardBody Guard = "body"
	// GuardCxxBody emits a raw body restricted to __cplusplus.
	GuardCxxBody Guard = "cxx-body"
)

// Macro is one entry of the table.
//
// For GuardDefault and GuardObjC the emitted definition is
// "NAME<Args> Value"; when Condition is set the definition picks
// Value under the condition and Alternative otherwise. GuardBody and
// GuardCxxBody emit Body verbatim. Alternative is a pointer so an
// explicitly empty alternative ("define to nothing") survives YAML.
type Macro struct {
	Name        string  `yaml:"name"`
	Args        string  `yaml:"args,omitempty"`
	Guard       Guard   `yaml:"guard,omitempty"`
	Value       string  `yaml:"value,omitempty"`
	Condition   string  `yaml:"condition,omitempty"`
	Alternative *string `yaml:"alternative,omitempty"`
	Body        string  `yaml:"body,omitempty"`
}

// Table is an ordered macro table. Order is emission order.
type Table struct {
	Version         int     `yaml:"version"`
	MaxSIMDElements int     `yaml:"max_simd_elements"`
	Macros          []Macro `yaml:"macros"`
}

//go:embed default_macros.yaml
var defaultTableYAML []byte

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Load(strings.NewReader(string(defaultTableYAML)))
	if err != nil {
		panic("macros: embedded default table is invalid: " + err.Error())
	}
	return t
})

// Default returns the embedded macro table.
func Default() *Table {
	return defaultTable()
}

// Load reads and validates a macro table from YAML.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("macros: parse table: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFile reads and validates a macro table from a YAML file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t *Table) validate() error {
	if t.MaxSIMDElements != MaxSIMDElements {
		return fmt.Errorf("macros: table assumes %d SIMD elements, generator supports %d; the vector typedef block must be updated together with the table",
			t.MaxSIMDElements, MaxSIMDElements)
	}

	seen := make(map[string]struct{}, len(t.Macros))
	for i := range t.Macros {
		m := &t.Macros[i]
		if m.Name == "" {
			return fmt.Errorf("macros: entry %d has no name", i)
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("macros: duplicate entry %s", m.Name)
		}
		seen[m.Name] = struct{}{}

		switch m.Guard {
		case GuardDefault, GuardObjC:
			if m.Body != "" {
				return fmt.Errorf("macros: %s: value-form entry must not set body", m.Name)
			}
			if m.Condition != "" && m.Alternative == nil {
				return fmt.Errorf("macros: %s: condition requires an alternative", m.Name)
			}
		case GuardCxx:
			if m.Alternative == nil {
				return fmt.Errorf("macros: %s: cxx guard requires an alternative", m.Name)
			}
		case GuardBody, GuardCxxBody:
			if m.Body == "" {
				return fmt.Errorf("macros: %s: body-form entry must set body", m.Name)
			}
		default:
			return fmt.Errorf("macros: %s: unknown guard kind %q", m.Name, m.Guard)
		}
	}
	return nil
}

// EmitTo writes the table's definitions in order.
func (t *Table) EmitTo(w io.Writer) error {
	var sb strings.Builder
	for i := range t.Macros {
		t.Macros[i].emit(&sb)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (m *Macro) emit(sb *strings.Builder) {
	switch m.Guard {
	case GuardObjC:
		sb.WriteString("#if defined(__OBJC__)\n")
		sb.WriteString("#if !defined(" + m.Name + ")\n")
		sb.WriteString("# define " + m.Name + m.Args + " " + m.Value + "\n")
		sb.WriteString("#endif\n")
		sb.WriteString("#endif\n")
	case GuardCxx:
		sb.WriteString("#if defined(__cplusplus)\n")
		sb.WriteString("# define " + m.Name + m.Args + " " + m.Value + "\n")
		sb.WriteString("#else\n")
		sb.WriteString("# define " + m.Name + m.Args + " " + *m.Alternative + "\n")
		sb.WriteString("#endif\n")
	case GuardBody:
		sb.WriteString("#if !defined(" + m.Name + ")\n")
		sb.WriteString(m.Body + "\n")
		sb.WriteString("#endif\n")
	case GuardCxxBody:
		sb.WriteString("#if defined(__cplusplus)\n")
		sb.WriteString(m.Body + "\n")
		sb.WriteString("#endif\n")
	default:
		sb.WriteString("#if !defined(" + m.Name + ")\n")
		if m.Condition != "" {
			sb.WriteString("# if " + m.Condition + "\n")
			sb.WriteString("#  define " + m.Name + m.Args + " " + m.Value + "\n")
			sb.WriteString("# else\n")
			sb.WriteString("#  define " + m.Name + m.Args + " " + *m.Alternative + "\n")
			sb.WriteString("# endif\n")
		} else {
			sb.WriteString("# define " + m.Name + m.Args + " " + m.Value + "\n")
		}
		sb.WriteString("#endif\n")
	}
}
