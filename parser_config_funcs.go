package cmdline

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/i18n"
	"github.com/napalu/cmdline/text"
	"golang.org/x/text/language"
)

// NewParser returns a parser configured by the given option functions. The caller should
// always test for error on return because Parser will be nil when an error occurs during
// initialization.
//
// Configuration example:
//
//	parser, err := cmdline.NewParser(
//		cmdline.WithProgramName("store"),
//		cmdline.WithWrapWidth(100),
//		cmdline.WithLanguage(language.German))
func NewParser(configs ...ConfigureParserFunc) (*Parser, error) {
	p := &Parser{
		programName: filepath.Base(os.Args[0]),
		helpOptions: append([]string(nil), DefaultHelpOptions...),
		formatting:  DefaultHelpFormatting,
		bundle:      i18n.Default(),
		lang:        language.English,
		wrapper:     text.DefaultWrapper,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate:    validator.New(),
	}

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, errs.ErrConfiguringParser.Wrap(err)
		}
	}

	return p, nil
}

// WithProgramName sets the name shown on the usage line. It defaults to the base name of
// the running executable.
func WithProgramName(name string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.programName = name
	}
}

// WithHelpOptions replaces the tokens requesting the help screen
func WithHelpOptions(options ...string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.helpOptions = append([]string(nil), options...)
	}
}

// WithWrapWidth sets the width used when GenerateHelp or GenerateErrorText are called with a
// width of zero. It defaults to the width of the terminal.
func WithWrapWidth(width int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.wrapWidth = width
	}
}

// WithHelpFormatting replaces the whole help table layout
func WithHelpFormatting(f HelpFormatting) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.formatting = f
	}
}

// WithColumnSpacing sets the number of spaces between the columns of the help table
func WithColumnSpacing(spaces int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.formatting.ColumnSpacing = spaces
	}
}

// WithRowSpacing sets the number of blank lines between the rows of the help table
func WithRowSpacing(lines int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.formatting.RowSpacing = lines
	}
}

// WithSectionSpacing sets the number of blank lines before and after section headings
func WithSectionSpacing(before, after int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.formatting.BlankLinesBeforeSection = before
		p.formatting.BlankLinesAfterSection = after
	}
}

// WithLeftMargin sets the indentation of the help table
func WithLeftMargin(spaces int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.formatting.LeftMargin = spaces
	}
}

// WithMessages overrides message templates by key (see internal/messages for the keys).
// Templates use {0}, {1}, ... as placeholders.
func WithMessages(templates map[string]string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if p.messages == nil {
			p.messages = make(map[string]string, len(templates))
		}
		for k, v := range templates {
			p.messages[k] = v
		}
	}
}

// WithBundle selects the bundle message templates are read from. It defaults to i18n.Default().
func WithBundle(b *i18n.Bundle) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.bundle = b
	}
}

// WithLanguage selects the language of the message templates. The closest language of the
// bundle is used; a language without any match is an error.
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		matched := p.bundle.Match(lang)
		want, _ := lang.Base()
		got, _ := matched.Base()
		if want != got {
			*err = errs.ErrUnknownLanguage.WithArgs(lang)
			return
		}
		p.lang = matched
	}
}

// WithWrapper replaces the word wrapper used by the help screen and error text
func WithWrapper(w text.Wrapper) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.wrapper = w
	}
}

// WithLogger sets the logger receiving debug records of schema builds and parse decisions.
// Nothing is logged by default.
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithStructValidation enables or disables the checking of validate struct tags. It is
// enabled by default.
func WithStructValidation(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if !enabled {
			p.validate = nil
		} else if p.validate == nil {
			p.validate = validator.New()
		}
	}
}

func (p *Parser) template(key string) string {
	if tpl, ok := p.messages[key]; ok {
		return tpl
	}
	return p.bundle.TL(p.lang, key)
}

// width resolves the wrap width of a rendering request
func (p *Parser) width(requested int) int {
	if requested > 0 {
		return requested
	}
	if p.wrapWidth > 0 {
		return p.wrapWidth
	}
	return text.TerminalWidth()
}
