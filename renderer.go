package cmdline

import (
	"strings"

	"github.com/napalu/cmdline/internal/messages"
	"github.com/napalu/cmdline/schema"
	"github.com/napalu/cmdline/text"
	"github.com/napalu/cmdline/types"
)

// renderHelp renders the usage line, the documentation and the help table of the innermost
// level of chain
func (p *Parser) renderHelp(chain []*level, width int) text.Text {
	width = p.width(width)
	leaf := chain[len(chain)-1]

	var lines []text.Text
	prefix := text.New(p.template(messages.UsagePrefixKey), UsageLinePrefixColor)
	usage := text.Concat(prefix, text.Plain(" "), text.Plain(p.programName), p.usage(chain, 0))
	lines = append(lines, p.wrapper.Wrap(usage, width, prefix.Len()+1)...)

	if !leaf.schema.Doc.IsEmpty() {
		lines = append(lines, text.Text{})
		lines = append(lines, p.wrapper.Wrap(leaf.schema.Doc, width, 0)...)
	}

	rows := helpRows(leaf.schema)
	if len(rows) > 0 {
		if rows[0].heading.IsEmpty() {
			lines = append(lines, text.Text{})
		}
		lines = append(lines, p.table(rows, width)...)
	}

	return joinLines(lines)
}

// renderErrorText renders msg prefixed with "Error:", continuation lines aligned after the prefix
func (p *Parser) renderErrorText(msg text.Text, width int) text.Text {
	prefix := text.New(p.template(messages.ErrorPrefixKey), ErrorColor)
	full := text.Concat(prefix, text.Plain(" "), msg)
	return joinLines(p.wrapper.Wrap(full, p.width(width), prefix.Len()+1))
}

// usage renders the fields of chain[i] and, through the resolved subcommand, of every level below it
func (p *Parser) usage(chain []*level, i int) text.Text {
	l := chain[i]
	var parts []text.Text
	for _, f := range l.schema.Options {
		if f.IsEnumFlags() && f.Value == types.EnumMultiple {
			parts = append(parts, enumFlagsUsage(f)...)
			continue
		}
		parts = append(parts, parameterUsage(f, f.Mandatory))
	}
	for _, f := range l.schema.Positionals {
		if f.Value != types.SubcommandGroup {
			parts = append(parts, parameterUsage(f, f.Mandatory))
			continue
		}
		if i+1 < len(chain) {
			next := chain[i+1]
			parts = append(parts, text.Concat(text.New(next.member.Names[0], CommandColor), p.usage(chain, i+1)))
			continue
		}
		parts = append(parts, parameterUsage(f, f.Mandatory).Append(text.New("*", SubcommandsPresentAsteriskColor)))
	}

	out := text.Text{}
	for _, part := range parts {
		out = text.Concat(out, text.Plain(" "), part)
	}
	return out
}

// parameterUsage renders a field the way it is given on the command line
func parameterUsage(f *schema.Field, mandatory bool) text.Text {
	name := fieldName(f)
	delimited := func(mandatoryTpl, optionalTpl string, args ...text.Text) text.Text {
		tpl := optionalTpl
		if mandatory {
			tpl = mandatoryTpl
		}
		return text.Fmt(text.New(tpl, OptionalityDelimitersColor), args...)
	}

	if f.Kind == types.Positional {
		return delimited("{0}", "[{0}]", name)
	}

	if f.IsEnumFlags() {
		if f.Value == types.EnumMultiple {
			return text.Join(text.Plain(" "), enumFlagsUsage(f))
		}
		options := flagOptions(f)
		joined := text.Join(text.New("|", OptionalityDelimitersColor), options)
		if !mandatory {
			return text.Fmt(text.New("[{0}]", OptionalityDelimitersColor), joined)
		}
		if len(options) > 1 {
			return text.Concat(text.New("{", OptionalityDelimitersColor), joined, text.New("}", OptionalityDelimitersColor))
		}
		return joined
	}

	option := text.New(firstOptionName(f), OptionColor)
	switch f.Value {
	case types.Array, types.EnumMultiple:
		return delimited("{0} {1} [{0} {1} [...]]", "[{0} {1} [{0} {1} [...]]]", option, name)
	case types.Boolean:
		return delimited("[{0}]", "[{0}]", option)
	default:
		return delimited("{0} {1}", "[{0} {1}]", option, name)
	}
}

// enumFlagsUsage renders a multi-value enum used as flags: [-t] [-u] [-v]
func enumFlagsUsage(f *schema.Field) []text.Text {
	options := flagOptions(f)
	out := make([]text.Text, len(options))
	for i, o := range options {
		out[i] = text.Fmt(text.New("[{0}]", OptionalityDelimitersColor), o)
	}
	return out
}

// flagOptions returns the first option name of every documented enumerant of f
func flagOptions(f *schema.Field) []text.Text {
	var out []text.Text
	for _, e := range f.Enum.Enumerants {
		if e.Undocumented || len(e.Options) == 0 {
			continue
		}
		out = append(out, text.New(e.Options[0], OptionColor))
	}
	return out
}

// helpRow is a row of the help table, or a section heading when heading is set
type helpRow struct {
	heading text.Text
	cells   []text.Text
}

// helpRows lists the rows of the help table of s in declaration order
func helpRows(s *schema.Schema) []helpRow {
	var rows []helpRow
	for _, f := range s.Fields {
		if f.Section != "" {
			rows = append(rows, helpRow{heading: text.New(f.Section, HelpHeadingColor)})
		}
		if f.Undocumented {
			continue
		}
		switch {
		case f.Value == types.SubcommandGroup:
			rows = append(rows, commandRows(f)...)
		case f.IsEnumFlags():
			for _, e := range f.Enum.Enumerants {
				if e.Undocumented || len(e.Options) == 0 {
					continue
				}
				rows = append(rows, helpRow{cells: []text.Text{optionNames(e.Options), e.Doc}})
			}
		default:
			rows = append(rows, helpRow{cells: append([]text.Text{fieldLabel(f)}, f.Doc...)})
			if f.Enum != nil {
				rows = append(rows, enumValueRows(f)...)
			}
		}
	}
	return rows
}

func fieldLabel(f *schema.Field) text.Text {
	if f.Kind == types.Option {
		return optionNames(f.Names)
	}
	return fieldName(f)
}

func optionNames(names []string) text.Text {
	parts := make([]text.Text, len(names))
	for i, n := range names {
		parts[i] = text.New(n, OptionColor)
	}
	return text.Join(text.Plain(", "), parts)
}

// commandRows lists the documented members of the group of f. Members with subcommands of
// their own are marked with an asterisk.
func commandRows(f *schema.Field) []helpRow {
	var rows []helpRow
	for _, m := range f.Group.Members {
		if m.Schema.Undocumented {
			continue
		}
		names := make([]text.Text, len(m.Names))
		for i, n := range m.Names {
			names[i] = text.New(n, CommandColor)
		}
		label := text.Join(text.Plain(", "), names)
		if m.HasSubcommands() {
			label = label.Append(text.New(" *", SubcommandsPresentAsteriskColor))
		}
		rows = append(rows, helpRow{cells: []text.Text{label, m.Schema.Doc}})
	}
	return rows
}

// enumValueRows lists the value names of the enumerants accepted by an enum field
func enumValueRows(f *schema.Field) []helpRow {
	var rows []helpRow
	for _, e := range f.Enum.Enumerants {
		if e.Undocumented || len(e.Names) == 0 {
			continue
		}
		names := make([]text.Text, len(e.Names))
		for i, n := range e.Names {
			names[i] = text.New(n, EnumValueColor)
		}
		rows = append(rows, helpRow{cells: []text.Text{{}, text.Join(text.Plain(", "), names), e.Doc}})
	}
	return rows
}

// minLastColumn is the narrowest the last column of the help table gets, whatever the width
const minLastColumn = 10

// table lays out rows in columns sized to their content. The last cell of a row takes the
// remaining width and is wrapped.
func (p *Parser) table(rows []helpRow, width int) []text.Text {
	f := p.formatting
	var widths []int
	for _, r := range rows {
		for i, c := range r.cells {
			if i == len(r.cells)-1 {
				continue
			}
			for len(widths) <= i {
				widths = append(widths, 0)
			}
			if n := c.Len(); n > widths[i] {
				widths[i] = n
			}
		}
	}

	margin := strings.Repeat(" ", f.LeftMargin)
	var lines []text.Text
	first := true
	for _, r := range rows {
		if !r.heading.IsEmpty() {
			lines = appendBlank(lines, f.BlankLinesBeforeSection)
			lines = append(lines, r.heading)
			lines = appendBlank(lines, f.BlankLinesAfterSection)
			first = true
			continue
		}
		if !first {
			lines = appendBlank(lines, f.RowSpacing)
		}
		first = false
		lines = append(lines, p.row(r.cells, widths, width, margin)...)
	}
	return lines
}

func (p *Parser) row(cells []text.Text, widths []int, width int, margin string) []text.Text {
	spacing := p.formatting.ColumnSpacing
	wrapped := make([][]text.Text, len(cells))
	height := 0
	offset := p.formatting.LeftMargin
	for i, c := range cells {
		if i == len(cells)-1 {
			w := width - offset
			if w < minLastColumn {
				w = minLastColumn
			}
			wrapped[i] = p.wrapper.Wrap(c, w, 0)
		} else {
			wrapped[i] = p.wrapper.Wrap(c, widths[i], 0)
			offset += widths[i] + spacing
		}
		if len(wrapped[i]) > height {
			height = len(wrapped[i])
		}
	}

	lines := make([]text.Text, height)
	for n := range lines {
		line := text.Plain(margin)
		for i := range cells {
			var cell text.Text
			if n < len(wrapped[i]) {
				cell = wrapped[i][n]
			}
			if i == len(cells)-1 {
				line = line.Append(cell)
				break
			}
			line = line.Append(cell, text.Repeat(" ", widths[i]-cell.Len()+spacing))
		}
		lines[n] = trimRight(line)
	}
	return lines
}

func appendBlank(lines []text.Text, n int) []text.Text {
	for i := 0; i < n; i++ {
		lines = append(lines, text.Text{})
	}
	return lines
}

// trimRight drops trailing blanks left by empty cells
func trimRight(t text.Text) text.Text {
	spans := t.Spans()
	for len(spans) > 0 {
		last := &spans[len(spans)-1]
		last.Text = strings.TrimRight(last.Text, " ")
		if last.Text != "" {
			break
		}
		spans = spans[:len(spans)-1]
	}
	return text.FromSpans(spans...)
}

// joinLines terminates every line with a newline
func joinLines(lines []text.Text) text.Text {
	out := make([]text.Text, 0, len(lines)*2)
	for _, l := range lines {
		out = append(out, l, text.Plain("\n"))
	}
	return text.Concat(out...)
}
