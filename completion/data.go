package completion

import (
	"strings"

	"github.com/napalu/cmdline/schema"
	"github.com/napalu/cmdline/text"
)

// Value is a word accepted after an option
type Value struct {
	Word        string
	Description string
}

// Data lists the words a shell can complete for one program. Commands are space-separated
// paths from the root ("remote add"). Per-command maps are keyed by path, option maps by
// option name for root options and by path + "@" + option for command options.
type Data struct {
	Commands            []string
	Options             []string
	CommandOptions      map[string][]string
	Descriptions        map[string]string
	CommandDescriptions map[string]string
	OptionValues        map[string][]Value
}

// FromSchema collects the options, commands and enum value names reachable from the root schema s.
// Undocumented fields, enumerants and commands are left out.
func FromSchema(s *schema.Schema) *Data {
	d := &Data{
		CommandOptions:      make(map[string][]string),
		Descriptions:        make(map[string]string),
		CommandDescriptions: make(map[string]string),
		OptionValues:        make(map[string][]Value),
	}
	d.Options = d.options("", s)
	d.commands("", s)
	return d
}

// Key returns the key of option in the option maps of the command at path
func Key(path, option string) string {
	if path == "" {
		return option
	}
	return path + "@" + option
}

func (d *Data) options(path string, s *schema.Schema) []string {
	var names []string
	for _, f := range s.Options {
		if f.Undocumented {
			continue
		}
		if f.IsEnumFlags() {
			for _, e := range f.Enum.Enumerants {
				if e.Undocumented {
					continue
				}
				for _, o := range e.Options {
					names = append(names, o)
					d.Descriptions[Key(path, o)] = e.Doc.String()
				}
			}
			continue
		}

		desc := describe(f.Doc)
		values := enumValues(f)
		for _, n := range f.Names {
			names = append(names, n)
			d.Descriptions[Key(path, n)] = desc
			if len(values) > 0 {
				d.OptionValues[Key(path, n)] = values
			}
		}
	}
	return names
}

func (d *Data) commands(parent string, s *schema.Schema) {
	f := s.GroupField()
	if f == nil {
		return
	}
	for _, m := range f.Group.Members {
		if m.Schema.Undocumented {
			continue
		}
		for _, name := range m.Names {
			path := strings.TrimSpace(parent + " " + name)
			d.Commands = append(d.Commands, path)
			d.CommandDescriptions[path] = m.Schema.Doc.String()
			if opts := d.options(path, m.Schema); len(opts) > 0 {
				d.CommandOptions[path] = opts
			}
			d.commands(path, m.Schema)
		}
	}
}

func enumValues(f *schema.Field) []Value {
	if f.Enum == nil {
		return nil
	}
	var values []Value
	for _, e := range f.Enum.Enumerants {
		if e.Undocumented {
			continue
		}
		for _, n := range e.Names {
			values = append(values, Value{Word: n, Description: e.Doc.String()})
		}
	}
	return values
}

func describe(doc []text.Text) string {
	parts := make([]string, 0, len(doc))
	for _, c := range doc {
		if s := c.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
