// Command cmdline-demo parses a small item store command line and prints the populated
// command tree as YAML.
//
//	cmdline-demo -t fruit add apple -n 3
//	cmdline-demo rm --force apple
//	cmdline-demo completion zsh --install
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/completion"
	"github.com/napalu/cmdline/text"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const programName = "cmdline-demo"

// Exit codes
const (
	exitOK = iota
	exitFailure
	exitUsage
)

type priority int

const (
	priorityLow priority = iota + 1
	priorityNormal
	priorityHigh
)

func (priority) Enumerants() []cmdline.Enumerant {
	return []cmdline.Enumerant{
		{Value: priorityLow, Names: []string{"low"}, Doc: "Processed last."},
		{Value: priorityNormal, Names: []string{"normal"}},
		{Value: priorityHigh, Names: []string{"high", "urgent"}, Doc: "Processed first."},
	}
}

func (p priority) MarshalYAML() (interface{}, error) {
	for _, e := range p.Enumerants() {
		if e.Value == p {
			return e.Names[0], nil
		}
	}
	return int(p), nil
}

type output int

const (
	outputYAML output = iota
	outputQuiet
)

func (output) Enumerants() []cmdline.Enumerant {
	return []cmdline.Enumerant{
		{Value: outputYAML, Options: []string{"--yaml"}, Doc: "Prints the parsed command line as YAML."},
		{Value: outputQuiet, Options: []string{"-q", "--quiet"}, Doc: "Prints nothing."},
	}
}

type storeCmd interface{ storeCmd() }

type app struct {
	Output output   `cmdline:"enum:single" yaml:"-"`
	Tags   []string `cmdline:"opt:-t,--tag" doc:"Tags the operation. May be repeated." yaml:"tags,omitempty"`
	Cmd    storeCmd `cmdline:"pos;mandatory" doc:"The command to run." yaml:"command"`
}

// itemBase is shared by the commands acting on a single item
type itemBase struct {
	cmdline.PassThrough `yaml:"-"`
	Item                string `cmdline:"pos;mandatory" doc:"The item." validate:"printascii" yaml:"item"`
}

func (*itemBase) storeCmd() {}

type addCmd struct {
	cmdline.Command `name:"add,a" doc:"Adds an item to the store." yaml:"-"`
	itemBase        `yaml:",inline"`
	Count           int       `cmdline:"opt:-n,--count" doc:"The number of copies." validate:"omitempty,min=1,max=100" yaml:"count,omitempty"`
	Priority        priority  `cmdline:"opt:-p" doc:"The processing priority." yaml:"priority,omitempty"`
	Expires         time.Time `cmdline:"opt:--expires" doc:"Drops the item at this date." yaml:"expires,omitempty"`
}

func (c *addCmd) Process() error {
	if c.Count == 0 {
		c.Count = 1
	}
	if c.Priority == 0 {
		c.Priority = priorityNormal
	}
	return nil
}

type delCmd struct {
	cmdline.Command `name:"del,rm" doc:"Removes an item from the store." yaml:"-"`
	itemBase        `yaml:",inline"`
	Force           bool `cmdline:"opt:-f,--force" doc:"Removes the item even when it is in use." yaml:"force"`
	Keep            bool `cmdline:"opt:-k,--keep" doc:"Keeps a backup copy." yaml:"keep"`
}

func (c *delCmd) Validate() error {
	if c.Force && c.Keep {
		return cmdline.Incompatible("--force", "--keep")
	}
	return nil
}

type listCmd struct {
	cmdline.Command `name:"list,ls" doc:"Lists the stored items." yaml:"-"`
	Since           time.Duration `cmdline:"opt:--since" doc:"Lists only the items added within this duration." yaml:"since,omitempty"`
	Columns         []string      `cmdline:"pos" doc:"The columns to print." yaml:"columns,omitempty"`
}

func (*listCmd) storeCmd() {}

type completionCmd struct {
	cmdline.Command `name:"completion" doc:"Prints or installs the shell completion script." yaml:"-"`
	Install         bool   `cmdline:"opt:--install" doc:"Writes the script to the completion directory of the user." yaml:"install"`
	Shell           string `cmdline:"pos;mandatory" doc:"One of bash, zsh, fish or powershell." yaml:"shell"`
}

func (*completionCmd) storeCmd() {}

func init() {
	cmdline.RegisterGroup[storeCmd](&itemBase{}, &addCmd{}, &delCmd{}, &listCmd{}, &completionCmd{})
}

// console is where the program writes, with colour only on terminals
type console struct {
	out, err           io.Writer
	colorOut, colorErr bool
}

func (c console) write(w io.Writer, colored bool, t text.Text) {
	if colored {
		_, _ = io.WriteString(w, t.ANSI())
		return
	}
	_, _ = io.WriteString(w, t.String())
}

func main() {
	c := console{
		out:      os.Stdout,
		err:      os.Stderr,
		colorOut: term.IsTerminal(int(os.Stdout.Fd())),
		colorErr: term.IsTerminal(int(os.Stderr.Fd())),
	}
	os.Exit(run(os.Args[1:], c))
}

func run(args []string, c console) int {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if os.Getenv("CMDLINE_DEMO_DEBUG") != "" {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(c.err, &slog.HandlerOptions{Level: level}))

	cfg, err := cmdline.Parse[app](args,
		cmdline.WithProgramName(programName),
		cmdline.WithLogger(logger),
	)
	if err != nil {
		return report(c, err)
	}

	if cc, ok := cfg.Cmd.(*completionCmd); ok {
		return cc.run(c)
	}
	if cfg.Output == outputQuiet {
		return exitOK
	}

	b, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(c.err, "%s: %v\n", programName, err)
		return exitFailure
	}
	_, _ = c.out.Write(b)
	return exitOK
}

func report(c console, err error) int {
	var pe cmdline.ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintf(c.err, "%s: %v\n", programName, err)
		return exitFailure
	}

	switch pe.Kind() {
	case cmdline.KindHelpRequested:
		c.write(c.out, c.colorOut, pe.GenerateHelp(0))
		return exitOK
	case cmdline.KindSchema, cmdline.KindInvalidOrderOfPositionalParameters:
		c.write(c.err, c.colorErr, pe.GenerateErrorText(0))
		return exitFailure
	default:
		c.write(c.err, c.colorErr, pe.UsageInfo(0))
		return exitUsage
	}
}

func (cc *completionCmd) run(c console) int {
	data, err := cmdline.CompletionData[app]()
	if err != nil {
		return report(c, err)
	}

	if cc.Install {
		path, err := completion.Install(cc.Shell, programName, data)
		if err != nil {
			fmt.Fprintf(c.err, "%s: %v\n", programName, err)
			return exitFailure
		}
		fmt.Fprintf(c.out, "completion script written to %s\n", path)
		return exitOK
	}

	g, err := completion.ForShell(cc.Shell)
	if err != nil {
		fmt.Fprintf(c.err, "%s: %v\n", programName, err)
		return exitFailure
	}
	_, _ = io.WriteString(c.out, g.Generate(programName, data))
	return exitOK
}
