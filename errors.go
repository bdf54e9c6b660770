package cmdline

import (
	"errors"
	"reflect"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/i18n"
	"github.com/napalu/cmdline/internal/messages"
	"github.com/napalu/cmdline/schema"
	"github.com/napalu/cmdline/text"
)

// ErrorKind identifies the kind of a parse failure. Kinds are errors themselves so that
// errors.Is(err, KindMissingParameter) tests the kind of any failure.
type ErrorKind int

const (
	KindUnrecognizedCommandOrOption ErrorKind = iota + 1
	KindIncompatibleCommandOrOption
	KindMissingParameter
	KindUnexpectedArgument
	KindIncompleteOption
	KindInvalidNumericParameter
	KindInvalidOrderOfPositionalParameters
	KindValidation
	KindHelpRequested
	KindSchema
)

// String returns the name of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindUnrecognizedCommandOrOption:
		return "UnrecognizedCommandOrOption"
	case KindIncompatibleCommandOrOption:
		return "IncompatibleCommandOrOption"
	case KindMissingParameter:
		return "MissingParameter"
	case KindUnexpectedArgument:
		return "UnexpectedArgument"
	case KindIncompleteOption:
		return "IncompleteOption"
	case KindInvalidNumericParameter:
		return "InvalidNumericParameter"
	case KindInvalidOrderOfPositionalParameters:
		return "InvalidOrderOfPositionalParameters"
	case KindValidation:
		return "Validation"
	case KindHelpRequested:
		return "HelpRequested"
	case KindSchema:
		return "Schema"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) Error() string {
	return k.String()
}

// ParseError is implemented by every failure returned from parsing
type ParseError interface {
	error
	Kind() ErrorKind
	// Message returns the styled message; Error returns it without styling
	Message() text.Text
	// GenerateHelp renders the help screen of the command level the failure occurred in
	GenerateHelp(width int) text.Text
	// GenerateErrorText renders the message prefixed with "Error:"
	GenerateErrorText(width int) text.Text
	// UsageInfo renders the help screen followed by the error text when WriteErrorText is set
	UsageInfo(width int) text.Text
	// WriteErrorText is false only for help requests
	WriteErrorText() bool
}

// failure is the state shared by every parse failure
type failure struct {
	kind    ErrorKind
	message text.Text
	cause   error
	ctx     *helpContext
}

// helpContext binds a failure to the levels reached when it occurred
type helpContext struct {
	p     *Parser
	chain []*level
}

func (f *failure) Kind() ErrorKind {
	return f.kind
}

func (f *failure) Message() text.Text {
	return f.message
}

func (f *failure) Error() string {
	return f.message.String()
}

func (f *failure) Unwrap() error {
	return f.cause
}

func (f *failure) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == f.kind
}

func (f *failure) WriteErrorText() bool {
	return f.kind != KindHelpRequested
}

func (f *failure) GenerateHelp(width int) text.Text {
	if f.ctx == nil {
		return text.Text{}
	}
	return f.ctx.p.renderHelp(f.ctx.chain, width)
}

func (f *failure) GenerateErrorText(width int) text.Text {
	if f.ctx == nil {
		p, _ := NewParser()
		return p.renderErrorText(f.message, width)
	}
	return f.ctx.p.renderErrorText(f.message, width)
}

func (f *failure) UsageInfo(width int) text.Text {
	help := f.GenerateHelp(width)
	if !f.WriteErrorText() {
		return help
	}
	return text.Concat(help, text.Plain("\n"), f.GenerateErrorText(width))
}

func (f *failure) base() *failure {
	return f
}

// UnrecognizedError reports a token which names no option or command
type UnrecognizedError struct {
	failure
	Name string
}

// IncompatibleError reports two tokens which cannot be used together
type IncompatibleError struct {
	failure
	Earlier string
	Later   string
}

// MissingParameterError reports a mandatory field left unset. Before is the field the
// missing one must precede, if any.
type MissingParameterError struct {
	failure
	Field    *schema.Field
	Before   *schema.Field
	IsOption bool
}

// UnexpectedArgumentError reports tokens left over once every field is satisfied
type UnexpectedArgumentError struct {
	failure
	Args []string
}

// IncompleteOptionError reports a value-taking option given as the last token
type IncompleteOptionError struct {
	failure
	Option string
}

// InvalidNumericError reports a token which does not parse as the number a field expects
type InvalidNumericError struct {
	failure
	Field *schema.Field
	Value string
}

// ValidationError reports semantically invalid input, typically raised by a Validate or
// Process hook
type ValidationError struct {
	failure
}

// HelpRequestedError is returned when one of the help options is given. It is not a true
// error: WriteErrorText is false.
type HelpRequestedError struct {
	failure
}

// SchemaError reports a command type which cannot be turned into a schema
type SchemaError struct {
	failure
	Type reflect.Type
	Err  error
}

// NewValidationError returns a validation failure carrying msg. Hooks return it to reject
// the parsed values.
func NewValidationError(msg string) *ValidationError {
	return NewStyledValidationError(text.Plain(msg))
}

// NewStyledValidationError is NewValidationError with a styled message
func NewStyledValidationError(msg text.Text) *ValidationError {
	return &ValidationError{failure{kind: KindValidation, message: msg}}
}

// Incompatible returns the failure reporting that the options or commands earlier and later
// cannot be combined
func Incompatible(earlier, later string) *IncompatibleError {
	return newIncompatible(defaultTemplates, earlier, later)
}

func newIncompatible(tpl templateFunc, earlier, later string) *IncompatibleError {
	msg := text.Fmtf(tpl(messages.IncompatibleKey), text.New(later, text.White), text.New(earlier, text.White))
	return &IncompatibleError{failure: failure{kind: KindIncompatibleCommandOrOption, message: msg}, Earlier: earlier, Later: later}
}

// newSchemaError renders err with provider when it is translatable; a nil provider uses the
// default language
func newSchemaError(t reflect.Type, err error, provider i18n.MessageProvider) *SchemaError {
	kind := KindSchema
	if errors.Is(err, errs.ErrInvalidPositionalOrder) {
		kind = KindInvalidOrderOfPositionalParameters
	}
	msg := err.Error()
	if tr, ok := err.(*i18n.TrError); ok && provider != nil {
		msg = tr.Format(provider)
	}
	return &SchemaError{failure: failure{kind: kind, message: text.Plain(msg), cause: err}, Type: t, Err: err}
}

type templateFunc func(key string) string

func defaultTemplates(key string) string {
	return i18n.Default().T(key)
}

const (
	maxArgLen       = 50
	truncatedArgLen = 47
)

// truncateArg shortens arguments longer than maxArgLen runes for display
func truncateArg(arg string) string {
	r := []rune(arg)
	if len(r) <= maxArgLen {
		return arg
	}
	return string(r[:truncatedArgLen]) + "..."
}
