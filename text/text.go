// Package text provides styled text: an immutable sequence of coloured spans used for
// usage strings, help screens and error messages. Rendering to a terminal is left to
// the caller (see ANSI and WriteTo).
package text

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Color identifies one of the 16 console colours. Default leaves the text unstyled.
type Color int

const (
	Default Color = iota
	Black
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

// String returns the name of the colour
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case DarkBlue:
		return "darkblue"
	case DarkGreen:
		return "darkgreen"
	case DarkCyan:
		return "darkcyan"
	case DarkRed:
		return "darkred"
	case DarkMagenta:
		return "darkmagenta"
	case DarkYellow:
		return "darkyellow"
	case Gray:
		return "gray"
	case DarkGray:
		return "darkgray"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	case Red:
		return "red"
	case Magenta:
		return "magenta"
	case Yellow:
		return "yellow"
	case White:
		return "white"
	default:
		return "default"
	}
}

// Span is a run of text in a single colour
type Span struct {
	Text  string
	Color Color
}

// Text is a sequence of spans. The zero value is the empty text. Text values are never
// modified in place; every operation returns a new value.
type Text struct {
	spans []Span
}

// New returns text consisting of s in colour c
func New(s string, c Color) Text {
	if s == "" {
		return Text{}
	}
	return Text{spans: []Span{{Text: s, Color: c}}}
}

// Plain returns unstyled text
func Plain(s string) Text {
	return New(s, Default)
}

// FromSpans builds text from the given spans, merging adjacent spans of the same colour
func FromSpans(spans ...Span) Text {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		out = appendSpan(out, s)
	}
	return Text{spans: out}
}

// Concat joins the given texts
func Concat(parts ...Text) Text {
	n := 0
	for _, p := range parts {
		n += len(p.spans)
	}
	out := make([]Span, 0, n)
	for _, p := range parts {
		for _, s := range p.spans {
			out = appendSpan(out, s)
		}
	}
	return Text{spans: out}
}

// Join concatenates parts, placing sep between consecutive elements
func Join(sep Text, parts []Text) Text {
	all := make([]Text, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			all = append(all, sep)
		}
		all = append(all, p)
	}
	return Concat(all...)
}

// Append returns t followed by parts
func (t Text) Append(parts ...Text) Text {
	return Concat(append([]Text{t}, parts...)...)
}

// Spans returns a copy of the spans making up t
func (t Text) Spans() []Span {
	out := make([]Span, len(t.spans))
	copy(out, t.spans)
	return out
}

// String returns the text without any styling
func (t Text) String() string {
	var sb strings.Builder
	for _, s := range t.spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Len returns the number of runes in t
func (t Text) Len() int {
	n := 0
	for _, s := range t.spans {
		n += utf8.RuneCountInString(s.Text)
	}
	return n
}

// IsEmpty reports whether t contains no characters
func (t Text) IsEmpty() bool {
	return len(t.spans) == 0
}

// Color returns a copy of t in which every span without a colour is given colour c
func (t Text) Color(c Color) Text {
	out := make([]Span, 0, len(t.spans))
	for _, s := range t.spans {
		if s.Color == Default {
			s.Color = c
		}
		out = appendSpan(out, s)
	}
	return Text{spans: out}
}

// Fmt substitutes the placeholders {0}, {1}, ... in template with the styled arguments.
// Characters of the template keep their own colour. Placeholders referring to a missing
// argument are left as they are.
func Fmt(template Text, args ...Text) Text {
	out := make([]Span, 0, len(template.spans)+len(args))
	for _, s := range template.spans {
		rest := s.Text
		for rest != "" {
			open := strings.IndexByte(rest, '{')
			if open < 0 {
				out = appendSpan(out, Span{Text: rest, Color: s.Color})
				break
			}
			end := strings.IndexByte(rest[open:], '}')
			if end < 0 {
				out = appendSpan(out, Span{Text: rest, Color: s.Color})
				break
			}
			end += open
			idx, err := strconv.Atoi(rest[open+1 : end])
			if err != nil || idx < 0 || idx >= len(args) {
				out = appendSpan(out, Span{Text: rest[:open+1], Color: s.Color})
				rest = rest[open+1:]
				continue
			}
			out = appendSpan(out, Span{Text: rest[:open], Color: s.Color})
			for _, a := range args[idx].spans {
				out = appendSpan(out, a)
			}
			rest = rest[end+1:]
		}
	}
	return Text{spans: out}
}

// Fmtf is Fmt with an unstyled template
func Fmtf(template string, args ...Text) Text {
	return Fmt(Plain(template), args...)
}

// Repeat returns n unstyled copies of s
func Repeat(s string, n int) Text {
	if n <= 0 {
		return Text{}
	}
	return Plain(strings.Repeat(s, n))
}

func appendSpan(spans []Span, s Span) []Span {
	if s.Text == "" {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].Color == s.Color {
		spans[n-1].Text += s.Text
		return spans
	}
	return append(spans, s)
}
