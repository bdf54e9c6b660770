// Package schema derives immutable command schemas from struct types. A schema lists the
// options and positional parameters of one command type and links every subcommand field
// to the group of commands it can select.
package schema

import (
	"reflect"
	"sort"
	"strings"

	"github.com/napalu/cmdline/text"
	"github.com/napalu/cmdline/types"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Schema describes one concrete command type
type Schema struct {
	Type reflect.Type
	// Commands are the names of a group member, empty for a root type
	Commands []string
	Doc      text.Text
	// Fields lists every field, base levels first, in declaration order
	Fields []*Field
	// Options lists the option fields in the order of Fields
	Options []*Field
	// Positionals lists the positional fields in slot order
	Positionals []*Field
	// Processor and Validatable record which hooks the pointer type implements
	Processor   bool
	Validatable bool
	// Undocumented hides a group member from the help screen
	Undocumented bool
	// Constraints is set when a field carries a validate tag
	Constraints bool

	options *orderedmap.OrderedMap
}

// Field describes one struct field taking part in the command line
type Field struct {
	Name  string
	Owner reflect.Type
	// Index is the index sequence for reflect.Value.FieldByIndex, relative to the schema type
	Index []int
	Kind  types.FieldKind
	Value types.ValueKind
	Type  reflect.Type
	// Elem is the element type of arrays and the field type otherwise
	Elem reflect.Type
	// Names are the option names, short names first
	Names        []string
	Order        float64
	Mandatory    bool
	Section      string
	Undocumented bool
	Doc          []text.Text
	Enum         *Enum
	// Flags is set for enum fields whose enumerants act as individual options
	Flags bool
	Group *Group

	depth int
	decl  int
}

// Enum lists the enumerants of an enum type
type Enum struct {
	Type       reflect.Type
	Enumerants []Enumerant
}

// Enumerant is one value of an enum type
type Enumerant struct {
	Value        reflect.Value
	Options      []string
	Names        []string
	Doc          text.Text
	Undocumented bool
}

// OptionRef is the result of an option lookup. Enumerant is the index of the selected
// enumerant for enum flags and -1 otherwise.
type OptionRef struct {
	Field     *Field
	Enumerant int
}

// Group is a registered command group, the set of commands a subcommand field can select
type Group struct {
	Type reflect.Type
	Root *Node
	// Members lists the named members in registration order
	Members []*Member

	index *orderedmap.OrderedMap
}

// Node is a level of a group: the group itself or a pass-through layer. Children are the
// pass-through layers embedding this one, Leaves the named members directly below it.
type Node struct {
	Layer    reflect.Type
	Fields   []*Field
	Children []*Node
	Leaves   []*Member
}

// Member is a selectable command of a group
type Member struct {
	Names  []string
	Schema *Schema
	// Pointer is set when the group interface holds a pointer to the command struct
	Pointer bool
	// Path lists the pass-through layers from the group root down to the member
	Path []*Node
}

// Lookup finds the option or enum flag with the given name, ignoring case
func (s *Schema) Lookup(name string) (OptionRef, bool) {
	v, ok := s.options.Get(strings.ToLower(name))
	if !ok {
		return OptionRef{}, false
	}
	return v.(OptionRef), true
}

// GroupField returns the subcommand field of the schema, if any
func (s *Schema) GroupField() *Field {
	for _, f := range s.Positionals {
		if f.Value == types.SubcommandGroup {
			return f
		}
	}
	return nil
}

// Name returns the name of the schema type
func (s *Schema) Name() string {
	return s.Type.Name()
}

// QualifiedName returns the field name prefixed with the name of its declaring type
func (f *Field) QualifiedName() string {
	return f.Owner.Name() + "." + f.Name
}

// IsEnumFlags reports whether the enumerants of the field are used as options
func (f *Field) IsEnumFlags() bool {
	return f.Enum != nil && f.Flags
}

// Lookup finds the member with the given command name, ignoring case
func (g *Group) Lookup(name string) (*Member, bool) {
	v, ok := g.index.Get(strings.ToLower(name))
	if !ok {
		return nil, false
	}
	return v.(*Member), true
}

// Names returns every command name of the group, in registration order
func (g *Group) Names() []string {
	names := make([]string, 0, g.index.Len())
	for pair := g.index.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Value.(*Member).Names...)
	}
	return dedupe(names)
}

// Instantiate returns a pointer to a new zero value of the command type
func (m *Member) Instantiate() reflect.Value {
	return reflect.New(m.Schema.Type)
}

// Stored returns the value to place in a group field for the populated command pointed to by ptr
func (m *Member) Stored(ptr reflect.Value) reflect.Value {
	if m.Pointer {
		return ptr
	}
	return ptr.Elem()
}

// HasSubcommands reports whether the member declares a subcommand field of its own
func (m *Member) HasSubcommands() bool {
	return m.Schema.GroupField() != nil
}

// SortNames orders option names short names first, then case-insensitively
func SortNames(names []string) []string {
	out := append([]string(nil), names...)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := isShort(out[i]), isShort(out[j])
		if si != sj {
			return si
		}
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

func isShort(name string) bool {
	return !strings.HasPrefix(name, "--")
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
