package completion

import (
	"strings"
)

// quoteShell single-quotes s for POSIX shells and fish
func quoteShell(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quoteFish(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func quotePowerShell(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// zshItem renders a _describe entry: colons in the word are escaped, the description follows the first colon
func zshItem(word, desc string) string {
	item := strings.ReplaceAll(word, ":", `\:`)
	if desc != "" {
		item += ":" + desc
	}
	return quoteShell(item)
}

// lastWord returns the final element of a command path
func lastWord(path string) string {
	if i := strings.LastIndexByte(path, ' '); i >= 0 {
		return path[i+1:]
	}
	return path
}

// parentPath returns the command path above path, empty for top-level commands
func parentPath(path string) string {
	if i := strings.LastIndexByte(path, ' '); i >= 0 {
		return path[:i]
	}
	return ""
}

// children lists the commands directly below parent, in the order of d.Commands
func (d *Data) children(parent string) []string {
	var out []string
	for _, c := range d.Commands {
		if parentPath(c) == parent {
			out = append(out, c)
		}
	}
	return out
}

// scope is an option visible at a command path together with the path that declares it
type scope struct {
	path   string
	option string
}

// visible lists the options usable at path: root options first, then those of every command
// on the way down to path
func (d *Data) visible(path string) []scope {
	var out []scope
	for _, o := range d.Options {
		out = append(out, scope{option: o})
	}
	if path == "" {
		return out
	}
	var chain []string
	for p := path; p != ""; p = parentPath(p) {
		chain = append([]string{p}, chain...)
	}
	for _, p := range chain {
		for _, o := range d.CommandOptions[p] {
			out = append(out, scope{path: p, option: o})
		}
	}
	return out
}

// paths lists the root path followed by every command path
func (d *Data) paths() []string {
	return append([]string{""}, d.Commands...)
}

// valueCases lists the options taking enum values, keyed the way the generators match them:
// root options anywhere, command options at their command and below
func (d *Data) valueCases() []scope {
	var out []scope
	for _, o := range d.Options {
		if len(d.OptionValues[o]) > 0 {
			out = append(out, scope{option: o})
		}
	}
	for _, c := range d.Commands {
		for _, o := range d.CommandOptions[c] {
			if len(d.OptionValues[Key(c, o)]) > 0 {
				out = append(out, scope{path: c, option: o})
			}
		}
	}
	return out
}

func (s scope) key() string {
	return Key(s.path, s.option)
}

// shellPattern matches "<path>@<option>" case labels in bash and zsh
func (s scope) shellPattern() string {
	if s.path == "" {
		return "*@" + quoteShell(s.option)
	}
	return quoteShell(s.path) + "@" + quoteShell(s.option) + "|" + quoteShell(s.path+" ") + "*@" + quoteShell(s.option)
}

func words(vs []Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Word
	}
	return out
}
