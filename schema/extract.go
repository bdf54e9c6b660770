package schema

import (
	"reflect"
	"strings"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/markup"
	"github.com/napalu/cmdline/parse"
	"github.com/napalu/cmdline/text"
	"github.com/napalu/cmdline/types"
)

const (
	nameTagKey   = "name"
	docTagKey    = "doc"
	docFmtTagKey = "docfmt"
	// validateTagKey is read by go-playground/validator
	validateTagKey = "validate"
	columnSep      = "||"
)

type extractor struct {
	b      *builder
	s      *Schema
	fields []*Field
	decl   int
}

// walk collects the fields of t and of every struct it embeds. Embedded structs are base
// levels, one deeper than t.
func (x *extractor) walk(t reflect.Type, index []int, depth int) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int(nil), index...), i)

		if sf.Anonymous {
			switch {
			case sf.Type == commandType:
				if depth == 0 {
					if err := x.command(sf); err != nil {
						return err
					}
				}
				continue
			case sf.Type == passThroughType:
				continue
			case sf.Type.Kind() == reflect.Struct && sf.Tag.Get(parse.TagKey) == "":
				if err := x.walk(sf.Type, idx, depth+1); err != nil {
					return err
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if sf.Tag.Get(validateTagKey) != "" {
			x.s.Constraints = true
		}

		f, err := x.field(t, sf, idx, depth)
		if err != nil {
			return err
		}
		if f != nil {
			x.fields = append(x.fields, f)
		}
	}
	return nil
}

func (x *extractor) command(sf reflect.StructField) error {
	x.s.Commands = parse.Names(sf.Tag.Get(nameTagKey))
	x.s.Undocumented = sf.Tag.Get("undocumented") == "true"
	doc, err := docColumns(sf)
	if err != nil {
		return err
	}
	if len(doc) > 0 {
		x.s.Doc = text.Join(text.Plain(" "), doc)
	}
	return nil
}

func (x *extractor) field(owner reflect.Type, sf reflect.StructField, idx []int, depth int) (*Field, error) {
	cfg := &types.TagConfig{}
	if tag, ok := sf.Tag.Lookup(parse.TagKey); ok {
		var err error
		if cfg, err = parse.UnmarshalTagFormat(tag, sf); err != nil {
			return nil, errs.ErrInvalidTag.WithArgs(owner.Name(), sf.Name, tag).Wrap(err)
		}
	}
	if cfg.Ignore {
		return nil, nil
	}

	f := &Field{
		Name:         sf.Name,
		Owner:        owner,
		Index:        idx,
		Type:         sf.Type,
		Elem:         sf.Type,
		Order:        cfg.Order,
		Mandatory:    cfg.Mandatory,
		Section:      cfg.Section,
		Undocumented: cfg.Undocumented,
		depth:        depth,
		decl:         x.decl,
	}
	x.decl++

	doc, err := docColumns(sf)
	if err != nil {
		return nil, err
	}
	f.Doc = doc

	if sf.Type.Kind() == reflect.Interface {
		return x.groupField(f, cfg)
	}

	if sf.Type.Kind() == reflect.Slice {
		f.Elem = sf.Type.Elem()
		f.Value = types.Array
	}
	enum, err := enumOf(f, sf.Tag.Get(docFmtTagKey))
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.Option:
		f.Kind = types.Option
		f.Names = SortNames(cfg.Names)
		for _, n := range f.Names {
			if !strings.HasPrefix(n, "-") {
				return nil, errs.ErrOptionName.WithArgs(n, owner.Name(), sf.Name)
			}
		}
	case cfg.Positional:
		f.Kind = types.Positional
	case enum != nil && cfg.Enum != types.EnumDefault:
		f.Kind = types.Option
		f.Flags = true
	default:
		return nil, errs.ErrFieldNotMapped.WithArgs(owner.Name(), sf.Name)
	}

	if enum != nil {
		return x.enumField(f, cfg, enum)
	}

	if !util.CanConvert(f.Elem) {
		return nil, errs.ErrUnsupportedType.WithArgs(owner.Name(), sf.Name, sf.Type)
	}
	if f.Value != types.Array && f.Kind == types.Option && f.Elem.Kind() == reflect.Bool {
		f.Value = types.Boolean
	}
	return f, nil
}

func (x *extractor) groupField(f *Field, cfg *types.TagConfig) (*Field, error) {
	if !IsGroup(f.Type) {
		return nil, errs.ErrGroupNotRegistered.WithArgs(f.Owner.Name(), f.Name, f.Type)
	}
	if cfg.Option {
		return nil, errs.ErrGroupNotPositional.WithArgs(f.Owner.Name(), f.Name)
	}
	g, err := x.b.group(f.Type, x.s.Type)
	if err != nil {
		return nil, err
	}
	f.Kind = types.Positional
	f.Value = types.SubcommandGroup
	f.Group = g
	return f, nil
}

func (x *extractor) enumField(f *Field, cfg *types.TagConfig, enum *Enum) (*Field, error) {
	f.Enum = enum
	switch {
	case f.Value == types.Array:
		if f.Flags {
			return nil, errs.ErrUnsupportedType.WithArgs(f.Owner.Name(), f.Name, f.Type)
		}
	case cfg.Enum == types.EnumMultipleValues:
		f.Value = types.EnumMultiple
		if !util.IsInteger(f.Elem) {
			return nil, errs.ErrEnumMultiNotInteger.WithArgs(f.Owner.Name(), f.Name, f.Elem)
		}
	default:
		f.Value = types.EnumSingle
	}

	if f.Flags {
		for _, e := range enum.Enumerants {
			if len(e.Options) == 0 {
				return nil, errs.ErrEnumerantNotMapped.WithArgs(e.Value.Interface(), enum.Type, f.Owner.Name(), f.Name)
			}
			for _, n := range e.Options {
				if !strings.HasPrefix(n, "-") {
					return nil, errs.ErrOptionName.WithArgs(n, f.Owner.Name(), f.Name)
				}
			}
		}
	}
	return f, nil
}

// enumOf returns the enumerants of the element type of f, or nil if it is not an enum type
func enumOf(f *Field, dialect string) (*Enum, error) {
	t := f.Elem
	if !t.Implements(enumType) {
		return nil, nil
	}
	list := reflect.Zero(t).Interface().(types.EnumType).Enumerants()
	e := &Enum{Type: t, Enumerants: make([]Enumerant, 0, len(list))}
	for _, en := range list {
		v := reflect.ValueOf(en.Value)
		if !v.IsValid() || !v.Type().ConvertibleTo(t) {
			return nil, errs.ErrUnsupportedType.WithArgs(f.Owner.Name(), f.Name, t)
		}
		var doc text.Text
		if en.Doc != "" {
			var err error
			if doc, err = markup.Convert(dialect, en.Doc); err != nil {
				return nil, err
			}
		}
		e.Enumerants = append(e.Enumerants, Enumerant{
			Value:        v.Convert(t),
			Options:      SortNames(en.Options),
			Names:        en.Names,
			Doc:          doc,
			Undocumented: en.Undocumented,
		})
	}
	return e, nil
}

func docColumns(sf reflect.StructField) ([]text.Text, error) {
	raw, ok := sf.Tag.Lookup(docTagKey)
	if !ok || raw == "" {
		return nil, nil
	}
	dialect := sf.Tag.Get(docFmtTagKey)
	var cols []text.Text
	for _, col := range strings.Split(raw, columnSep) {
		t, err := markup.Convert(dialect, strings.TrimSpace(col))
		if err != nil {
			return nil, err
		}
		cols = append(cols, t)
	}
	return cols, nil
}

func lower(s string) string {
	return strings.ToLower(s)
}
