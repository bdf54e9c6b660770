package schema

import (
	"reflect"
	"sync"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types"
	orderedmap "github.com/wk8/go-ordered-map"
)

var (
	schemas sync.Map // reflect.Type -> *Schema
	groups  sync.Map // reflect.Type -> *Group
	buildMu sync.Mutex
)

var (
	commandType     = reflect.TypeOf(types.Command{})
	passThroughType = reflect.TypeOf(types.PassThrough{})
	processorType   = reflect.TypeOf((*types.Processor)(nil)).Elem()
	validatableType = reflect.TypeOf((*types.Validatable)(nil)).Elem()
	enumType        = reflect.TypeOf((*types.EnumType)(nil)).Elem()
)

// Build returns the schema of the struct type t, building it on first use. Schemas are
// immutable once published and shared by every caller.
func Build(t reflect.Type) (*Schema, error) {
	if s, ok := schemas.Load(t); ok {
		return s.(*Schema), nil
	}

	buildMu.Lock()
	defer buildMu.Unlock()
	if s, ok := schemas.Load(t); ok {
		return s.(*Schema), nil
	}

	b := newBuilder()
	s, err := b.schema(t)
	if err != nil {
		return nil, err
	}
	b.publish()

	return s, nil
}

// Cached reports whether the schema of t has already been built
func Cached(t reflect.Type) bool {
	_, ok := schemas.Load(t)
	return ok
}

// Reset drops every cached schema and group
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()
	schemas.Range(func(k, _ any) bool {
		schemas.Delete(k)
		return true
	})
	groups.Range(func(k, _ any) bool {
		groups.Delete(k)
		return true
	})
}

// builder collects the schemas and groups of one build; they are published only when the
// whole build succeeds
type builder struct {
	schemas  map[reflect.Type]*Schema
	groups   map[reflect.Type]*Group
	building map[reflect.Type]bool
}

func newBuilder() *builder {
	return &builder{
		schemas:  make(map[reflect.Type]*Schema),
		groups:   make(map[reflect.Type]*Group),
		building: make(map[reflect.Type]bool),
	}
}

func (b *builder) publish() {
	for t, s := range b.schemas {
		schemas.Store(t, s)
	}
	for t, g := range b.groups {
		groups.Store(t, g)
	}
}

func (b *builder) schema(t reflect.Type) (*Schema, error) {
	if s, ok := b.schemas[t]; ok {
		return s, nil
	}
	if s, ok := schemas.Load(t); ok {
		return s.(*Schema), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, errs.ErrNotAStruct.WithArgs(t)
	}

	s := &Schema{Type: t, options: orderedmap.New()}
	x := &extractor{b: b, s: s}
	if err := x.walk(t, nil, 0); err != nil {
		return nil, err
	}

	s.Fields = sortFields(x.fields)
	for _, f := range s.Fields {
		if f.Kind != types.Option {
			continue
		}
		s.Options = append(s.Options, f)
		if err := s.indexOption(f); err != nil {
			return nil, err
		}
	}

	s.Positionals = sortPositionals(s.Fields)
	if err := checkSlots(s); err != nil {
		return nil, err
	}
	if err := validateOrder(t, s.Positionals); err != nil {
		return nil, err
	}

	ptr := reflect.PointerTo(t)
	s.Processor = ptr.Implements(processorType)
	s.Validatable = ptr.Implements(validatableType)

	b.schemas[t] = s
	return s, nil
}

func (s *Schema) indexOption(f *Field) error {
	add := func(name string, ref OptionRef) error {
		key := lower(name)
		if v, ok := s.options.Get(key); ok {
			return errs.ErrDuplicateOption.WithArgs(name, v.(OptionRef).Field.QualifiedName(), f.QualifiedName())
		}
		s.options.Set(key, ref)
		return nil
	}

	if f.IsEnumFlags() {
		for i, e := range f.Enum.Enumerants {
			for _, name := range e.Options {
				if err := add(name, OptionRef{Field: f, Enumerant: i}); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, name := range f.Names {
		if err := add(name, OptionRef{Field: f, Enumerant: -1}); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) group(iface reflect.Type, via reflect.Type) (*Group, error) {
	if g, ok := b.groups[iface]; ok {
		return g, nil
	}
	if g, ok := groups.Load(iface); ok {
		return g.(*Group), nil
	}
	if b.building[iface] {
		return nil, errs.ErrCyclicGroup.WithArgs(iface, via)
	}
	b.building[iface] = true
	defer delete(b.building, iface)

	g := &Group{Type: iface, Root: &Node{}, index: orderedmap.New()}
	var passThroughs []reflect.Type
	used := make(map[reflect.Type]bool)

	for _, mt := range registered(iface) {
		st := mt
		pointer := mt.Kind() == reflect.Pointer
		if pointer {
			st = mt.Elem()
		}
		if st.Kind() != reflect.Struct {
			return nil, errs.ErrMemberNotPointer.WithArgs(iface, mt)
		}
		if !mt.Implements(iface) {
			return nil, errs.ErrMemberNotImplementing.WithArgs(mt, iface)
		}

		switch {
		case embeds(st, commandType):
		case embeds(st, passThroughType):
			passThroughs = append(passThroughs, st)
			continue
		default:
			return nil, errs.ErrAmbiguousLeaf.WithArgs(st, iface)
		}

		s, err := b.schema(st)
		if err != nil {
			return nil, err
		}
		if len(s.Commands) == 0 {
			return nil, errs.ErrCommandWithoutName.WithArgs(st)
		}

		m := &Member{Names: s.Commands, Schema: s, Pointer: pointer}
		node := g.Root
		for _, layer := range passThroughLayers(st) {
			node = node.child(layer, s)
			m.Path = append(m.Path, node)
			used[layer] = true
		}
		node.Leaves = append(node.Leaves, m)

		for _, name := range m.Names {
			key := lower(name)
			if v, ok := g.index.Get(key); ok {
				return nil, errs.ErrDuplicateCommand.WithArgs(name, st, v.(*Member).Schema.Type, iface)
			}
			g.index.Set(key, m)
		}
		g.Members = append(g.Members, m)
	}

	for _, pt := range passThroughs {
		if !used[pt] {
			return nil, errs.ErrDeadBranch.WithArgs(pt, iface)
		}
	}
	if len(g.Members) == 0 {
		return nil, errs.ErrEmptyGroup.WithArgs(iface)
	}

	b.groups[iface] = g
	return g, nil
}

func (n *Node) child(layer reflect.Type, s *Schema) *Node {
	for _, c := range n.Children {
		if c.Layer == layer {
			return c
		}
	}
	c := &Node{Layer: layer}
	for _, f := range s.Fields {
		if f.Owner == layer {
			c.Fields = append(c.Fields, f)
		}
	}
	n.Children = append(n.Children, c)
	return c
}

// embeds reports whether t directly embeds the marker type
func embeds(t, marker reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type == marker {
			return true
		}
	}
	return false
}

// passThroughLayers returns the pass-through layers embedded by t, most base first
func passThroughLayers(t reflect.Type) []reflect.Type {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous || f.Type.Kind() != reflect.Struct {
			continue
		}
		if embeds(f.Type, passThroughType) {
			return append(passThroughLayers(f.Type), f.Type)
		}
	}
	return nil
}
