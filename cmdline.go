// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package cmdline parses command lines into annotated structs.
//
// A command type is a struct whose fields are tagged as options or positional parameters:
//
//	type Cmd struct {
//		Verbose bool     `cmdline:"opt:-v,--verbose" doc:"Prints more."`
//		Output  string   `cmdline:"opt:-o;mandatory" doc:"The output file."`
//		Files   []string `cmdline:"pos" doc:"The input files."`
//	}
//
// Subcommands are interface fields whose interface is registered as a command group with
// RegisterGroup. Members embed Command with a name tag; intermediate layers shared by
// several members embed PassThrough. Parsing fills the fields of the root and of every
// selected subcommand, then runs the Validate and Process hooks of the populated levels,
// innermost first. Every failure implements ParseError and can render the help screen of
// the command level it occurred in.
package cmdline

import (
	"reflect"

	"github.com/napalu/cmdline/completion"
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/i18n"
	"github.com/napalu/cmdline/parse"
	"github.com/napalu/cmdline/schema"
)

// Parse parses args into a new T using a parser configured by configs
func Parse[T any](args []string, configs ...ConfigureParserFunc) (*T, error) {
	p, err := NewParser(configs...)
	if err != nil {
		return nil, err
	}

	dst := new(T)
	if err := p.Parse(dst, args); err != nil {
		return nil, err
	}

	return dst, nil
}

// ParseString splits cmd into arguments with POSIX shell quoting rules and parses them into a new T
func ParseString[T any](cmd string, configs ...ConfigureParserFunc) (*T, error) {
	args, err := parse.Split(cmd)
	if err != nil {
		return nil, errs.ErrSplitCommandLine.Wrap(err)
	}

	return Parse[T](args, configs...)
}

// Parse populates the struct dst points to from args. Schema problems of the type of dst
// are reported as *SchemaError, everything else as one of the failures implementing ParseError.
func (p *Parser) Parse(dst any, args []string) error {
	v := reflect.ValueOf(dst)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return errs.ErrNilTarget.WithArgs(reflect.TypeOf(dst))
	}

	t := v.Elem().Type()
	cached := schema.Cached(t)
	s, err := schema.Build(t)
	if err != nil {
		return newSchemaError(t, err, i18n.NewMessageProvider(p.bundle, p.lang))
	}
	if !cached {
		p.logger.Debug("schema built", "type", t.String(), "fields", len(s.Fields))
	}

	return p.newRun(s, v, args).parse()
}

// Check builds the schema of T and reports structural problems without parsing anything.
// It is intended to run from a test of the program declaring T.
func Check[T any]() error {
	return CheckType(reflect.TypeOf((*T)(nil)).Elem())
}

// CheckType is Check for a reflect.Type. Pointer types are checked through their element type.
func CheckType(t reflect.Type) error {
	if t == nil {
		return errs.ErrNilTarget.WithArgs(t)
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if _, err := schema.Build(t); err != nil {
		return newSchemaError(t, err, nil)
	}

	return nil
}

// CompletionData collects the options, commands and enum value names of the command type T
// for the shell completion generators
func CompletionData[T any]() (*completion.Data, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	s, err := schema.Build(t)
	if err != nil {
		return nil, newSchemaError(t, err, nil)
	}

	return completion.FromSchema(s), nil
}

// RegisterGroup registers the members of the command group G, which must be an interface
// type. Members are values of struct or pointer-to-struct types implementing G; only their
// types are used. Named members embed Command, intermediate layers embed PassThrough.
//
//	cmdline.RegisterGroup[StoreCmd](&AddCmd{}, &DelCmd{}, &ItemBase{})
func RegisterGroup[G any](members ...G) {
	types := make([]reflect.Type, 0, len(members))
	for _, m := range members {
		if t := reflect.TypeOf(any(m)); t != nil {
			types = append(types, t)
		}
	}
	schema.Register(reflect.TypeOf((*G)(nil)).Elem(), types...)
}
