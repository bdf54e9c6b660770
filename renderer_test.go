package cmdline

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/napalu/cmdline/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type helpCmd struct {
	Verbose bool   `cmdline:"opt:-v,--verbose" doc:"Prints more."`
	Output  string `cmdline:"opt:-o;mandatory" doc:"The output file."`
	Input   string `cmdline:"pos;mandatory" doc:"The input file."`
}

type wrapCmd struct {
	Name string `cmdline:"opt:-n" doc:"The name of the thing to create in the store."`
}

type sectionCmd struct {
	Verbose bool   `cmdline:"opt:-v" doc:"Verbose output."`
	Secret  string `cmdline:"opt:--secret;undocumented" doc:"Hidden."`
	Input   string `cmdline:"pos;section:Parameters" doc:"The input."`
}

type shade int

const (
	shadeLight shade = iota + 1
	shadeDark
)

func (shade) Enumerants() []Enumerant {
	return []Enumerant{
		{Value: shadeLight, Options: []string{"--light", "-l"}, Names: []string{"light"}, Doc: "A light shade."},
		{Value: shadeDark, Options: []string{"-d", "--dark"}, Names: []string{"dark"}, Doc: "A dark shade."},
	}
}

type perm uint8

const (
	permRead perm = 1 << iota
	permWrite
	permExec
)

func (perm) Enumerants() []Enumerant {
	return []Enumerant{
		{Value: permRead, Options: []string{"-r"}, Names: []string{"read"}},
		{Value: permWrite, Options: []string{"-w"}, Names: []string{"write"}},
		{Value: permExec, Options: []string{"-x"}, Names: []string{"exec"}},
	}
}

type enumCmd struct {
	Shade  shade   `cmdline:"enum:single"`
	Perms  perm    `cmdline:"enum:multi"`
	Mode   shade   `cmdline:"opt:-m"`
	Shades []shade `cmdline:"opt:-s"`
}

type outerCmd interface{ outer() }

type innerCmd interface{ inner() }

type nestRoot struct {
	Cmd outerCmd `cmdline:"pos"`
}

type remoteCmd struct {
	Command `name:"remote" doc:"Manages remotes."`
	Sub     innerCmd `cmdline:"pos;mandatory"`
}

type remoteAddCmd struct {
	Command `name:"add" doc:"Adds a remote."`
	Name    string `cmdline:"pos;mandatory"`
}

func (*remoteCmd) outer()    {}
func (*remoteAddCmd) inner() {}

func init() {
	RegisterGroup[outerCmd](&remoteCmd{})
	RegisterGroup[innerCmd](&remoteAddCmd{})
}

func helpFor[T any](t *testing.T, args []string, width int, configs ...ConfigureParserFunc) string {
	t.Helper()
	_, err := Parse[T](args, configs...)
	var pe ParseError
	require.True(t, errors.As(err, &pe), "%v", err)
	return pe.GenerateHelp(width).String()
}

func TestHelp_Table(t *testing.T) {
	got := helpFor[helpCmd](t, []string{"-h"}, 80, WithProgramName("prog"))
	want := "Usage: prog [-v] -o <Output> <Input>\n" +
		"\n" +
		"   -v, --verbose   Prints more.\n" +
		"\n" +
		"   -o              The output file.\n" +
		"\n" +
		"   <Input>         The input file.\n"
	assert.Equal(t, want, got)
}

func TestHelp_Formatting(t *testing.T) {
	got := helpFor[helpCmd](t, []string{"-h"}, 80,
		WithProgramName("prog"), WithRowSpacing(0), WithLeftMargin(1), WithColumnSpacing(2))
	want := "Usage: prog [-v] -o <Output> <Input>\n" +
		"\n" +
		" -v, --verbose  Prints more.\n" +
		" -o             The output file.\n" +
		" <Input>        The input file.\n"
	assert.Equal(t, want, got)
}

func TestHelp_WrapsLastColumn(t *testing.T) {
	got := helpFor[wrapCmd](t, []string{"-h"}, 0, WithProgramName("prog"), WithWrapWidth(30))
	want := "Usage: prog [-n <Name>]\n" +
		"\n" +
		"   -n   The name of the thing\n" +
		"        to create in the\n" +
		"        store.\n"
	assert.Equal(t, want, got)
}

func TestHelp_SectionsAndUndocumented(t *testing.T) {
	got := helpFor[sectionCmd](t, []string{"-?"}, 80, WithProgramName("prog"))
	want := "Usage: prog [-v] [--secret <Secret>] [<Input>]\n" +
		"\n" +
		"   -v        Verbose output.\n" +
		"\n" +
		"Parameters\n" +
		"\n" +
		"   <Input>   The input.\n"
	assert.Equal(t, want, got)

	got = helpFor[sectionCmd](t, []string{"-?"}, 80, WithProgramName("prog"), WithSectionSpacing(0, 0))
	assert.Contains(t, got, "   -v        Verbose output.\nParameters\n   <Input>   The input.\n")
}

func TestHelp_Enums(t *testing.T) {
	got := helpFor[enumCmd](t, []string{"--help"}, 200, WithProgramName("enums"))
	lines := strings.Split(got, "\n")
	assert.Equal(t, "Usage: enums [-l|-d] [-r] [-w] [-x] [-m <Mode>] [-s <Shades> [-s <Shades> [...]]]", lines[0])
	assert.Contains(t, got, "\n   -l, --light   A light shade.\n")
	assert.Contains(t, got, "\n   -d, --dark    A dark shade.\n")
	assert.Contains(t, got, "\n   -x\n")
	assert.Contains(t, got, "\n                 light   A light shade.\n")
	assert.Contains(t, got, "\n                 dark    A dark shade.\n")
}

func TestParse_Enums(t *testing.T) {
	c, err := Parse[enumCmd]([]string{"-d", "-r", "-x", "-r", "-m", "LIGHT", "-s", "dark", "-s", "light"})
	require.NoError(t, err)
	want := &enumCmd{Shade: shadeDark, Perms: permRead | permExec, Mode: shadeLight, Shades: []shade{shadeDark, shadeLight}}
	assert.Empty(t, cmp.Diff(want, c))

	c, err = Parse[enumCmd]([]string{"--light", "--dark"})
	require.NoError(t, err)
	assert.Equal(t, shadeDark, c.Shade)

	_, err = Parse[enumCmd]([]string{"-m", "purple"})
	require.Error(t, err)
	assert.Equal(t, "The specified command or option, purple, is not recognized.", err.Error())
}

func TestHelp_Subcommands(t *testing.T) {
	got := helpFor[test2Cmd](t, []string{"-h"}, 200, WithProgramName("test2"))
	assert.Equal(t, "Usage: test2 [-b] [<Subcommand>]*\n\n   -b\n\n   add\n\n   del\n", got)

	// only the selected branch is shown
	got = helpFor[test2Cmd](t, []string{"add", "--help"}, 200, WithProgramName("test2"))
	assert.Equal(t, "Usage: test2 [-b] add [-k <SharedString>] <Name>\n\n   -k\n\n   <Name>\n", got)
	assert.NotContains(t, got, "del")
}

func TestHelp_NestedGroups(t *testing.T) {
	got := helpFor[nestRoot](t, []string{"-h"}, 80, WithProgramName("nest"))
	assert.Equal(t, "Usage: nest [<Cmd>]*\n\n   remote *   Manages remotes.\n", got)

	got = helpFor[nestRoot](t, []string{"remote", "-h"}, 80, WithProgramName("nest"))
	assert.Equal(t, "Usage: nest remote <Sub>*\n\nManages remotes.\n\n   add   Adds a remote.\n", got)

	c, err := Parse[nestRoot]([]string{"remote", "add", "origin"})
	require.NoError(t, err)
	want := &nestRoot{Cmd: &remoteCmd{Sub: &remoteAddCmd{Name: "origin"}}}
	assert.Empty(t, cmp.Diff(want, c))

	_, err = Parse[nestRoot]([]string{"remote"})
	require.Error(t, err)
	assert.Equal(t, "The parameter <Sub> is mandatory and must be specified.", err.Error())
}

func TestErrorText(t *testing.T) {
	_, err := Parse[commandLineWithOption](nil)
	var pe ParseError
	require.True(t, errors.As(err, &pe))

	assert.Equal(t, "Error: The parameter <Arg> is\n       mandatory and must be\n       specified.\n", pe.GenerateErrorText(30).String())

	usage := pe.UsageInfo(200).String()
	assert.True(t, strings.HasSuffix(usage, "\nError: The parameter <Arg> is mandatory and must be specified.\n"))
	assert.True(t, strings.HasPrefix(usage, pe.GenerateHelp(200).String()))

	spans := pe.GenerateErrorText(200).Spans()
	require.NotEmpty(t, spans)
	assert.Equal(t, text.Span{Text: "Error:", Color: ErrorColor}, spans[0])

	spans = pe.GenerateHelp(200).Spans()
	assert.Equal(t, text.Span{Text: "Usage:", Color: UsageLinePrefixColor}, spans[0])
}

func TestErrorText_WithoutHelpContext(t *testing.T) {
	ve := NewValidationError("bad input")
	assert.Equal(t, "Error: bad input\n", ve.GenerateErrorText(80).String())
	assert.True(t, ve.GenerateHelp(80).IsEmpty())
}
