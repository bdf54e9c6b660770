package text

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

var palette = map[Color][]color.Attribute{
	Black:       {color.FgBlack},
	DarkBlue:    {color.FgBlue},
	DarkGreen:   {color.FgGreen},
	DarkCyan:    {color.FgCyan},
	DarkRed:     {color.FgRed},
	DarkMagenta: {color.FgMagenta},
	DarkYellow:  {color.FgYellow},
	Gray:        {color.FgWhite},
	DarkGray:    {color.FgHiBlack},
	Blue:        {color.FgHiBlue},
	Green:       {color.FgHiGreen},
	Cyan:        {color.FgHiCyan},
	Red:         {color.FgHiRed},
	Magenta:     {color.FgHiMagenta},
	Yellow:      {color.FgHiYellow},
	White:       {color.FgHiWhite},
}

func colorFor(c Color, force bool) *color.Color {
	attrs, ok := palette[c]
	if !ok {
		return nil
	}
	cc := color.New(attrs...)
	if force {
		cc.EnableColor()
	}
	return cc
}

// ANSI renders t with ANSI escape sequences regardless of the output stream.
func (t Text) ANSI() string {
	var sb strings.Builder
	for _, s := range t.spans {
		if cc := colorFor(s.Color, true); cc != nil {
			sb.WriteString(cc.Sprint(s.Text))
		} else {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

// WriteTo writes t to w. Colours are emitted unless colour output has been disabled
// globally (color.NoColor, which honours NO_COLOR and non-terminal stdout).
func (t Text) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, s := range t.spans {
		var (
			m   int
			err error
		)
		if cc := colorFor(s.Color, false); cc != nil {
			m, err = cc.Fprint(w, s.Text)
		} else {
			m, err = io.WriteString(w, s.Text)
		}
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// WriteLines writes each line followed by a newline
func WriteLines(w io.Writer, lines []Text) error {
	for _, l := range lines {
		if _, err := l.WriteTo(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
