package cmdline

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/napalu/cmdline/internal/messages"
	"github.com/napalu/cmdline/text"
	"github.com/napalu/cmdline/types"
)

// postProcess runs the hooks of every level, innermost first. Once a level is done its
// value is stored in the subcommand field of its parent.
func (r *run) postProcess() error {
	for i := len(r.chain) - 1; i >= 0; i-- {
		l := r.chain[i]
		if err := r.checkConstraints(l); err != nil {
			return err
		}
		if l.schema.Validatable {
			if err := l.ptr.Interface().(types.Validatable).Validate(); err != nil {
				return r.hookFailure(err)
			}
		}
		if l.schema.Processor {
			if err := l.ptr.Interface().(types.Processor).Process(); err != nil {
				return r.hookFailure(err)
			}
		}
		if l.parent != nil {
			l.parent.field(l.via).Set(l.member.Stored(l.ptr))
		}
	}
	return nil
}

// checkConstraints validates the validate struct tags of a level. Subcommand fields are
// skipped, their levels are checked on their own.
func (r *run) checkConstraints(l *level) error {
	if r.p.validate == nil || !l.schema.Constraints {
		return nil
	}

	var except []string
	if gf := l.schema.GroupField(); gf != nil {
		except = append(except, fieldPath(l.schema.Type, gf.Index))
	}
	err := r.p.validate.StructExcept(l.ptr.Interface(), except...)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return r.fail(&ValidationError{failure{kind: KindValidation, message: text.Plain(err.Error()), cause: err}})
	}
	fe := verrs[0]
	name := text.Plain(fe.Field())
	for _, f := range l.schema.Fields {
		if f.Name == fe.StructField() {
			name = fieldRef(f)
			break
		}
	}
	constraint := fe.Tag()
	if fe.Param() != "" {
		constraint += "=" + fe.Param()
	}
	msg := text.Fmtf(r.p.template(messages.ConstraintKey), name, text.New(constraint, EnumValueColor))
	return r.fail(&ValidationError{failure{kind: KindValidation, message: msg, cause: err}})
}

// hookFailure turns the error of a hook into a failure bound to the help of this parse
func (r *run) hookFailure(err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		c := *ve
		return r.fail(&c)
	}
	var ie *IncompatibleError
	if errors.As(err, &ie) {
		c := *newIncompatible(r.p.template, ie.Earlier, ie.Later)
		return r.fail(&c)
	}
	return r.fail(&ValidationError{failure{kind: KindValidation, message: text.Plain(err.Error()), cause: err}})
}

// fieldPath returns the namespace of a possibly promoted field relative to t, as used by
// validator.StructExcept
func fieldPath(t reflect.Type, index []int) string {
	names := make([]string, 0, len(index))
	for _, i := range index {
		sf := t.Field(i)
		names = append(names, sf.Name)
		t = sf.Type
	}
	return strings.Join(names, ".")
}
