package cmdline

import (
	"log/slog"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/napalu/cmdline/i18n"
	"github.com/napalu/cmdline/schema"
	"github.com/napalu/cmdline/text"
	"github.com/napalu/cmdline/types"
	"golang.org/x/text/language"
)

// Command marks a struct as a named member of a command group. See types.Command.
type Command = types.Command

// PassThrough marks a struct as an intermediate layer of a command group. See types.PassThrough.
type PassThrough = types.PassThrough

// Enumerant describes one value of an enum type
type Enumerant = types.Enumerant

// EnumType is implemented by the named types usable as enum fields
type EnumType = types.EnumType

// Processor is implemented by command types needing to act once they are populated
type Processor = types.Processor

// Validatable is implemented by command types checking their fields after population
type Validatable = types.Validatable

// Parser parses argument vectors into command structs. A Parser is immutable once
// configured and may be shared by concurrent callers.
type Parser struct {
	programName string
	helpOptions []string
	wrapWidth   int
	formatting  HelpFormatting
	messages    map[string]string
	bundle      *i18n.Bundle
	lang        language.Tag
	wrapper     text.Wrapper
	logger      *slog.Logger
	validate    *validator.Validate
}

// HelpFormatting controls the layout of the help table
type HelpFormatting struct {
	// ColumnSpacing is the number of spaces between two columns
	ColumnSpacing int
	// RowSpacing is the number of blank lines between two rows
	RowSpacing int
	// BlankLinesBeforeSection and BlankLinesAfterSection surround section headings
	BlankLinesBeforeSection int
	BlankLinesAfterSection  int
	// LeftMargin is the number of spaces before the first column
	LeftMargin int
}

// DefaultHelpFormatting is the layout used unless configured otherwise
var DefaultHelpFormatting = HelpFormatting{
	ColumnSpacing:           3,
	RowSpacing:              1,
	BlankLinesBeforeSection: 1,
	BlankLinesAfterSection:  1,
	LeftMargin:              3,
}

// DefaultHelpOptions are the tokens requesting the help screen unless a command declares them
var DefaultHelpOptions = []string{"-?", "/?", "-h", "--help"}

// ConfigureParserFunc configures a Parser. Implementations report failures through err.
type ConfigureParserFunc func(p *Parser, err *error)

// Colours of the usage line, help screen and error messages
const (
	OptionColor                     = text.Yellow
	FieldBracketsColor              = text.DarkCyan
	FieldColor                      = text.Cyan
	CommandColor                    = text.Green
	EnumValueColor                  = text.Green
	UsageLinePrefixColor            = text.Green
	OptionalityDelimitersColor      = text.DarkGray
	SubcommandsPresentAsteriskColor = text.DarkYellow
	UnexpectedArgumentColor         = text.Magenta
	ErrorColor                      = text.Red
	HelpHeadingColor                = text.White
)

// level is one populated struct of the value tree: the root or a selected subcommand
type level struct {
	schema *schema.Schema
	ptr    reflect.Value
	member *schema.Member
	// via is the subcommand field of parent which selected this level
	via    *schema.Field
	parent *level
	slot   int
	set    map[*schema.Field]bool
}

func newLevel(s *schema.Schema, ptr reflect.Value, member *schema.Member, via *schema.Field, parent *level) *level {
	return &level{
		schema: s,
		ptr:    ptr,
		member: member,
		via:    via,
		parent: parent,
		set:    make(map[*schema.Field]bool),
	}
}

func (l *level) field(f *schema.Field) reflect.Value {
	return l.ptr.Elem().FieldByIndex(f.Index)
}
