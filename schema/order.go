package schema

import (
	"reflect"
	"sort"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types"
)

// sortFields orders fields base levels first, keeping declaration order within a level
func sortFields(fields []*Field) []*Field {
	out := append([]*Field(nil), fields...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].depth > out[j].depth
	})
	return out
}

// sortPositionals returns the positional fields in slot order: by declared order, then base
// levels first, then declaration order
func sortPositionals(fields []*Field) []*Field {
	var pos []*Field
	for _, f := range fields {
		if f.Kind == types.Positional {
			pos = append(pos, f)
		}
	}
	sort.SliceStable(pos, func(i, j int) bool {
		a, b := pos[i], pos[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.depth != b.depth {
			return a.depth > b.depth
		}
		return a.decl < b.decl
	})
	return pos
}

// checkSlots verifies that a positional array comes last and that there is at most one
// subcommand field
func checkSlots(s *Schema) error {
	groupFields := 0
	for i, f := range s.Positionals {
		if f.Value == types.SubcommandGroup {
			if groupFields++; groupFields > 1 {
				return errs.ErrMultipleGroups.WithArgs(s.Type)
			}
		}
		if f.Value == types.Array && i != len(s.Positionals)-1 {
			return errs.ErrArrayNotLast.WithArgs(f.Owner.Name(), f.Name, s.Type.Name())
		}
	}
	return nil
}

// validateOrder checks, separately for every level, that no mandatory positional parameter
// follows an optional one. Fields of plain embedded structs count at the level of the type
// embedding them; a pass-through layer is a level of its own.
func validateOrder(t reflect.Type, positionals []*Field) error {
	optional := make(map[reflect.Type]*Field)
	for _, f := range positionals {
		lvl := levelOf(t, f.Index)
		first, seen := optional[lvl]
		switch {
		case !f.Mandatory && !seen:
			optional[lvl] = f
		case f.Mandatory && seen:
			return errs.ErrInvalidPositionalOrder.WithArgs(first.QualifiedName(), f.QualifiedName())
		}
	}
	return nil
}

// levelOf returns the innermost pass-through layer on the embedding path of the field at
// index, or t when there is none
func levelOf(t reflect.Type, index []int) reflect.Type {
	lvl := t
	cur := t
	for _, i := range index[:len(index)-1] {
		cur = cur.Field(i).Type
		if embeds(cur, passThroughType) {
			lvl = cur
		}
	}
	return lvl
}
