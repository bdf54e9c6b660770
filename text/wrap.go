package text

import "unicode"

// Wrapper breaks styled text into lines no wider than width. Continuation lines of a
// paragraph are indented by hangingIndent spaces.
type Wrapper interface {
	Wrap(t Text, width, hangingIndent int) []Text
}

// WrapperFunc adapts an ordinary function to the Wrapper interface
type WrapperFunc func(t Text, width, hangingIndent int) []Text

// Wrap calls f(t, width, hangingIndent)
func (f WrapperFunc) Wrap(t Text, width, hangingIndent int) []Text {
	return f(t, width, hangingIndent)
}

// DefaultWrapper is the greedy word wrapper used when no other wrapper is configured
var DefaultWrapper Wrapper = WrapperFunc(Wrap)

type cell struct {
	r rune
	c Color
}

// Wrap performs greedy word wrapping of t. Newlines in t start a new paragraph. Words
// longer than the available width are split. A width below one is treated as unlimited.
func Wrap(t Text, width, hangingIndent int) []Text {
	var paragraphs [][]cell
	cur := []cell{}
	for _, s := range t.spans {
		for _, r := range s.Text {
			if r == '\n' {
				paragraphs = append(paragraphs, cur)
				cur = []cell{}
				continue
			}
			cur = append(cur, cell{r: r, c: s.Color})
		}
	}
	paragraphs = append(paragraphs, cur)

	var lines []Text
	for _, p := range paragraphs {
		lines = append(lines, wrapParagraph(p, width, hangingIndent)...)
	}
	return lines
}

func wrapParagraph(p []cell, width, indent int) []Text {
	if width < 1 {
		return []Text{cellsToText(p)}
	}
	if indent >= width {
		indent = 0
	}

	// leading whitespace of a paragraph is kept as is
	lead := 0
	for lead < len(p) && unicode.IsSpace(p[lead].r) {
		lead++
	}
	words := splitWords(p[lead:])

	if lead >= width {
		lead = 0
	}

	var lines []Text
	line := append([]cell{}, p[:lead]...)
	empty := true
	flush := func() {
		lines = append(lines, cellsToText(line))
		line = make([]cell, indent)
		for i := range line {
			line[i] = cell{r: ' '}
		}
		empty = true
	}

	for _, w := range words {
		for len(w) > 0 {
			sep := 1
			if empty {
				sep = 0
			}
			if len(line)+sep+len(w) <= width {
				if sep == 1 {
					line = append(line, cell{r: ' '})
				}
				line = append(line, w...)
				empty = false
				w = nil
				continue
			}
			if !empty {
				flush()
				continue
			}
			// the word does not fit on an empty line: split it
			room := width - len(line)
			line = append(line, w[:room]...)
			w = w[room:]
			flush()
		}
	}
	if !empty || len(lines) == 0 {
		lines = append(lines, cellsToText(line))
	}
	return lines
}

func splitWords(cells []cell) [][]cell {
	var words [][]cell
	var cur []cell
	for _, c := range cells {
		if unicode.IsSpace(c.r) {
			if len(cur) > 0 {
				words = append(words, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, c)
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

func cellsToText(cells []cell) Text {
	spans := make([]Span, 0, 4)
	for _, c := range cells {
		spans = appendSpan(spans, Span{Text: string(c.r), Color: c.c})
	}
	return Text{spans: spans}
}
