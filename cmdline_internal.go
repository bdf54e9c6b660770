package cmdline

import (
	"errors"
	"reflect"
	"strings"

	"github.com/ef-ds/deque"
	"github.com/napalu/cmdline/internal/messages"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/parse"
	"github.com/napalu/cmdline/schema"
	"github.com/napalu/cmdline/text"
	"github.com/napalu/cmdline/types"
)

const literalMarker = "--"

// run holds the state of a single parse
type run struct {
	p     *Parser
	state parse.State
	// stack holds the levels whose fields can still be filled, innermost at the back
	stack *deque.Deque
	// chain lists every level reached, root first
	chain []*level
}

func (p *Parser) newRun(s *schema.Schema, ptr reflect.Value, args []string) *run {
	root := newLevel(s, ptr, nil, nil, nil)
	r := &run{
		p:     p,
		state: parse.NewState(args),
		stack: deque.New(),
		chain: []*level{root},
	}
	r.stack.PushBack(root)
	return r
}

func (r *run) top() *level {
	l, _ := r.stack.Back()
	return l.(*level)
}

func (r *run) parse() error {
	for r.state.Advance() {
		arg := r.state.CurrentArg()
		if !r.state.Literal() {
			if arg == literalMarker {
				r.p.logger.Debug("literal mode", "pos", r.state.Pos())
				r.state.EnterLiteral()
				continue
			}
			if r.isHelpRequest(arg) {
				return r.fail(&HelpRequestedError{failure{kind: KindHelpRequested, message: r.msg(messages.HelpRequestedKey).Color(text.Gray)}})
			}
			if strings.HasPrefix(arg, "-") && arg != "-" {
				if err := r.option(arg); err != nil {
					return err
				}
				continue
			}
		}
		if err := r.positional(arg); err != nil {
			return err
		}
	}

	if err := r.checkMandatory(); err != nil {
		return err
	}
	return r.postProcess()
}

// lookup finds an option in the innermost level declaring it
func (r *run) lookup(name string) (schema.OptionRef, *level, bool) {
	for l := r.top(); l != nil; l = l.parent {
		if ref, ok := l.schema.Lookup(name); ok {
			return ref, l, true
		}
	}
	return schema.OptionRef{}, nil, false
}

func (r *run) isHelpRequest(arg string) bool {
	for _, h := range r.p.helpOptions {
		if strings.EqualFold(h, arg) {
			_, _, declared := r.lookup(arg)
			return !declared
		}
	}
	return false
}

func (r *run) option(arg string) error {
	ref, l, ok := r.lookup(arg)
	if !ok {
		return r.unrecognized(arg)
	}
	f := ref.Field
	target := l.field(f)
	r.p.logger.Debug("option matched", "option", arg, "field", f.QualifiedName())

	switch {
	case ref.Enumerant >= 0:
		e := f.Enum.Enumerants[ref.Enumerant]
		if f.Value == types.EnumMultiple {
			orValue(target, e.Value)
		} else {
			target.Set(e.Value)
		}
	case f.Value == types.Boolean:
		target.SetBool(true)
	default:
		if _, ok := r.state.Peek(); !ok {
			return r.fail(&IncompleteOptionError{
				failure: failure{kind: KindIncompleteOption, message: text.Fmtf(r.p.template(messages.IncompleteOptionKey), text.New(arg, text.White))},
				Option:  arg,
			})
		}
		r.state.Advance()
		if err := r.assign(f, target, r.state.CurrentArg()); err != nil {
			return err
		}
	}
	l.set[f] = true
	return nil
}

func (r *run) positional(arg string) error {
	for {
		l := r.top()
		if l.slot < len(l.schema.Positionals) {
			f := l.schema.Positionals[l.slot]
			switch f.Value {
			case types.SubcommandGroup:
				return r.selectCommand(l, f, arg)
			case types.Array:
				if err := r.assign(f, l.field(f), arg); err != nil {
					return err
				}
			default:
				if err := r.assign(f, l.field(f), arg); err != nil {
					return err
				}
				l.slot++
			}
			l.set[f] = true
			return nil
		}

		if r.stack.Len() == 1 {
			args := r.state.Remaining()
			return r.fail(&UnexpectedArgumentError{
				failure: failure{kind: KindUnexpectedArgument, message: text.Fmtf(r.p.template(messages.UnexpectedArgumentKey), text.New(truncateArg(args[0]), UnexpectedArgumentColor))},
				Args:    append([]string(nil), args...),
			})
		}
		r.stack.PopBack()
	}
}

func (r *run) selectCommand(l *level, f *schema.Field, name string) error {
	m, ok := f.Group.Lookup(name)
	if !ok {
		return r.unrecognized(name)
	}
	r.p.logger.Debug("subcommand selected", "command", name, "type", m.Schema.Name())

	ptr := m.Instantiate()
	l.field(f).Set(m.Stored(ptr))
	l.set[f] = true
	l.slot++

	child := newLevel(m.Schema, ptr, m, f, l)
	r.chain = append(r.chain, child)
	r.stack.PushBack(child)
	return nil
}

// assign converts raw and stores it in target according to the value kind of f
func (r *run) assign(f *schema.Field, target reflect.Value, raw string) error {
	var v reflect.Value
	if f.Enum != nil {
		e, ok := enumerantByName(f.Enum, raw)
		if !ok {
			return r.unrecognized(raw)
		}
		v = e.Value
	} else {
		var err error
		if v, err = util.ConvertString(raw, f.Elem); err != nil {
			return r.conversionFailure(f, raw, err)
		}
	}

	switch f.Value {
	case types.Array:
		target.Set(reflect.Append(target, v))
	case types.EnumMultiple:
		orValue(target, v)
	default:
		target.Set(v)
	}
	return nil
}

func (r *run) conversionFailure(f *schema.Field, raw string, err error) error {
	if errors.Is(err, util.ErrNotNumeric) {
		return r.fail(&InvalidNumericError{
			failure: failure{kind: KindInvalidNumericParameter, message: text.Fmtf(r.p.template(messages.InvalidNumericKey), fieldName(f)), cause: err},
			Field:   f,
			Value:   raw,
		})
	}
	msg := text.Fmtf(r.p.template(messages.InvalidValueKey), fieldRef(f), text.New(truncateArg(raw), UnexpectedArgumentColor))
	return r.fail(&ValidationError{failure{kind: KindValidation, message: msg, cause: err}})
}

func (r *run) unrecognized(name string) error {
	return r.fail(&UnrecognizedError{
		failure: failure{kind: KindUnrecognizedCommandOrOption, message: text.Fmtf(r.p.template(messages.UnrecognizedKey), text.New(truncateArg(name), text.White))},
		Name:    name,
	})
}

// checkMandatory reports the first unset mandatory field, root level first, positional
// parameters before options
func (r *run) checkMandatory() error {
	for i, l := range r.chain {
		for j, f := range l.schema.Positionals {
			if !f.Mandatory || l.set[f] {
				continue
			}
			var before *schema.Field
			if j+1 < len(l.schema.Positionals) {
				before = l.schema.Positionals[j+1]
			}
			return r.missing(f, before, false)
		}
		for _, f := range l.schema.Options {
			if !f.Mandatory || l.set[f] {
				continue
			}
			var before *schema.Field
			if i+1 < len(r.chain) {
				before = r.chain[i+1].via
			}
			return r.missing(f, before, true)
		}
	}
	return nil
}

func (r *run) missing(f, before *schema.Field, isOption bool) error {
	usage := parameterUsage(f, true)
	var msg text.Text
	switch {
	case isOption && before != nil:
		msg = text.Fmtf(r.p.template(messages.MissingOptionBeforeKey), usage, fieldName(before))
	case isOption:
		msg = text.Fmtf(r.p.template(messages.MissingOptionKey), usage)
	case before != nil:
		msg = text.Fmtf(r.p.template(messages.MissingParameterBeforeKey), usage, fieldName(before))
	default:
		msg = text.Fmtf(r.p.template(messages.MissingParameterKey), usage)
	}
	return r.fail(&MissingParameterError{
		failure:  failure{kind: KindMissingParameter, message: msg},
		Field:    f,
		Before:   before,
		IsOption: isOption,
	})
}

func (r *run) msg(key string) text.Text {
	return text.Plain(r.p.template(key))
}

// fail binds err to the levels reached so far
func (r *run) fail(err error) error {
	var b interface{ base() *failure }
	if errors.As(err, &b) {
		b.base().ctx = &helpContext{p: r.p, chain: append([]*level(nil), r.chain...)}
	}
	return err
}

func enumerantByName(e *schema.Enum, name string) (schema.Enumerant, bool) {
	for _, en := range e.Enumerants {
		for _, n := range en.Names {
			if strings.EqualFold(n, name) {
				return en, true
			}
		}
	}
	return schema.Enumerant{}, false
}

// orValue combines v into the integer target with a bitwise OR
func orValue(target, v reflect.Value) {
	switch target.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		target.SetUint(target.Uint() | v.Uint())
	default:
		target.SetInt(target.Int() | v.Int())
	}
}

// fieldRef renders a field the way it is named in messages: its first option name, or its
// name in angle brackets for positional parameters
func fieldRef(f *schema.Field) text.Text {
	if f.Kind == types.Option {
		if name := firstOptionName(f); name != "" {
			return text.New(name, OptionColor)
		}
	}
	return fieldName(f)
}

func fieldName(f *schema.Field) text.Text {
	return text.Concat(text.New("<", FieldBracketsColor), text.New(f.Name, FieldColor), text.New(">", FieldBracketsColor))
}

func firstOptionName(f *schema.Field) string {
	if len(f.Names) > 0 {
		return f.Names[0]
	}
	if f.IsEnumFlags() {
		for _, e := range f.Enum.Enumerants {
			if len(e.Options) > 0 {
				return e.Options[0]
			}
		}
	}
	return ""
}
