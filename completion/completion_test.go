package completion

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/schema"
	"github.com/napalu/cmdline/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type colour int

const (
	red colour = iota + 1
	green
)

func (colour) Enumerants() []types.Enumerant {
	return []types.Enumerant{
		{Value: red, Names: []string{"red"}, Doc: "Warm."},
		{Value: green, Names: []string{"green"}},
	}
}

type vcsCmd interface{ vcs() }

type remoteCmd interface{ remote() }

type vcsRoot struct {
	Verbose bool   `cmdline:"opt:-v,--verbose" doc:"Prints more."`
	Colour  colour `cmdline:"opt:--color" doc:"Output colour."`
	Cmd     vcsCmd `cmdline:"pos"`
}

type vcsRemote struct {
	types.Command `name:"remote" doc:"Manages remotes."`
	Sub           remoteCmd `cmdline:"pos;mandatory"`
}

type vcsRemoteAdd struct {
	types.Command `name:"add" doc:"Adds a remote."`
	Track         colour `cmdline:"opt:-t" doc:"Track colour."`
	Name          string `cmdline:"pos;mandatory"`
}

type vcsCommit struct {
	types.Command `name:"commit,ci" doc:"Records changes."`
	Message       string `cmdline:"opt:-m;mandatory" doc:"The message."`
	Secret        bool   `cmdline:"opt:--secret;undocumented"`
}

func (*vcsRemote) vcs()       {}
func (*vcsCommit) vcs()       {}
func (*vcsRemoteAdd) remote() {}

func init() {
	schema.Register(reflect.TypeOf((*vcsCmd)(nil)).Elem(), reflect.TypeOf(&vcsRemote{}), reflect.TypeOf(&vcsCommit{}))
	schema.Register(reflect.TypeOf((*remoteCmd)(nil)).Elem(), reflect.TypeOf(&vcsRemoteAdd{}))
}

func testData(t *testing.T) *Data {
	t.Helper()
	s, err := schema.Build(reflect.TypeOf(vcsRoot{}))
	require.NoError(t, err)
	return FromSchema(s)
}

func TestFromSchema(t *testing.T) {
	colours := []Value{{Word: "red", Description: "Warm."}, {Word: "green"}}
	want := &Data{
		Commands: []string{"remote", "remote add", "commit", "ci"},
		Options:  []string{"-v", "--verbose", "--color"},
		CommandOptions: map[string][]string{
			"remote add": {"-t"},
			"commit":     {"-m"},
			"ci":         {"-m"},
		},
		Descriptions: map[string]string{
			"-v":            "Prints more.",
			"--verbose":     "Prints more.",
			"--color":       "Output colour.",
			"remote add@-t": "Track colour.",
			"commit@-m":     "The message.",
			"ci@-m":         "The message.",
		},
		CommandDescriptions: map[string]string{
			"remote":     "Manages remotes.",
			"remote add": "Adds a remote.",
			"commit":     "Records changes.",
			"ci":         "Records changes.",
		},
		OptionValues: map[string][]Value{
			"--color":       colours,
			"remote add@-t": colours,
		},
	}
	assert.Equal(t, want, testData(t))
}

func TestFromSchema_EnumFlags(t *testing.T) {
	type flagsRoot struct {
		Perm flagPerm `cmdline:"enum:multi"`
	}
	s, err := schema.Build(reflect.TypeOf(flagsRoot{}))
	require.NoError(t, err)
	d := FromSchema(s)
	assert.Equal(t, []string{"-r", "-w"}, d.Options)
	assert.Equal(t, "Readable.", d.Descriptions["-r"])
	assert.Empty(t, d.OptionValues)
	assert.Empty(t, d.Commands)
}

type flagPerm uint8

func (flagPerm) Enumerants() []types.Enumerant {
	return []types.Enumerant{
		{Value: flagPerm(1), Options: []string{"-r"}, Names: []string{"read"}, Doc: "Readable."},
		{Value: flagPerm(2), Options: []string{"-w"}, Names: []string{"write"}},
		{Value: flagPerm(4), Options: []string{"-x"}, Names: []string{"exec"}, Undocumented: true},
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "-v", Key("", "-v"))
	assert.Equal(t, "remote add@-t", Key("remote add", "-t"))
}

func TestBashCompletion(t *testing.T) {
	script := (&BashGenerator{}).Generate("vcs", testData(t))

	expectations := []string{
		"# bash completion for vcs",
		"_vcs_completion() {",
		"'remote'|'remote add'|'commit'|'ci')",
		"*@'--color')\n            COMPREPLY=( $(compgen -W 'red green' -- \"$cur\") )",
		"'remote add'@'-t'|'remote add '*@'-t')",
		"'')\n            candidates='-v --verbose --color remote commit ci'",
		"'remote')\n            candidates='-v --verbose --color add'",
		"'remote add')\n            candidates='-v --verbose --color -t'",
		"complete -F _vcs_completion vcs\n",
	}
	for _, expected := range expectations {
		assert.Contains(t, script, expected)
	}
	assert.NotContains(t, script, "--secret")
}

func TestZshCompletion(t *testing.T) {
	script := (&ZshGenerator{}).Generate("vcs", testData(t))

	expectations := []string{
		"#compdef vcs\n",
		"_vcs() {",
		"values=('red:Warm.' 'green')",
		"options=('-v:Prints more.' '--verbose:Prints more.' '--color:Output colour.')\n            commands=('remote:Manages remotes.' 'commit:Records changes.' 'ci:Records changes.')",
		"'commit')\n            options=('-v:Prints more.' '--verbose:Prints more.' '--color:Output colour.' '-m:The message.')\n            commands=()",
		"compdef _vcs vcs\n",
	}
	for _, expected := range expectations {
		assert.Contains(t, script, expected)
	}
}

func TestZshItem(t *testing.T) {
	assert.Equal(t, `'a\:b:Says it'\''s so.'`, zshItem("a:b", "Says it's so."))
	assert.Equal(t, `'plain'`, zshItem("plain", ""))
}

func TestFishCompletion(t *testing.T) {
	script := (&FishGenerator{}).Generate("vcs", testData(t))

	expectations := []string{
		"function __vcs_path\n",
		"contains -- $next 'remote' 'remote add' 'commit' 'ci'; and set cmdpath $next",
		"complete -c vcs -f\n",
		"complete -c vcs -s v -d 'Prints more.'\n",
		"complete -c vcs -l verbose -d 'Prints more.'\n",
		"complete -c vcs -l color -x -a 'red green' -d 'Output colour.'\n",
		`complete -c vcs -n '__vcs_at \'\'' -a 'remote' -d 'Manages remotes.'` + "\n",
		`complete -c vcs -n '__vcs_at \'remote\'' -a 'add' -d 'Adds a remote.'` + "\n",
		`complete -c vcs -n '__vcs_under \'remote add\'' -s t -x -a 'red green' -d 'Track colour.'` + "\n",
		`complete -c vcs -n '__vcs_under \'ci\'' -s m -d 'The message.'` + "\n",
	}
	for _, expected := range expectations {
		assert.Contains(t, script, expected)
	}
}

func TestPowerShellCompletion(t *testing.T) {
	script := (&PowerShellGenerator{}).Generate("vcs", testData(t))

	expectations := []string{
		"Register-ArgumentCompleter -Native -CommandName 'vcs' -ScriptBlock {",
		"$commands = @('remote', 'remote add', 'commit', 'ci')",
		"'*@--color' { @(@{ Word = 'red'; Tip = 'Warm.' }; @{ Word = 'green'; Tip = 'green' }); break }",
		"'remote add@-t' {",
		"'remote add *@-t' {",
		"'remote' { @(@{ Word = '-v'; Tip = 'Prints more.' }; @{ Word = '--verbose'; Tip = 'Prints more.' }; @{ Word = '--color'; Tip = 'Output colour.' }; @{ Word = 'add'; Tip = 'Adds a remote.' }); break }",
	}
	for _, expected := range expectations {
		assert.Contains(t, script, expected)
	}
}

func TestForShell(t *testing.T) {
	tests := []struct {
		shell string
		want  Generator
	}{
		{"bash", &BashGenerator{}},
		{"ZSH", &ZshGenerator{}},
		{"fish", &FishGenerator{}},
		{"pwsh", &PowerShellGenerator{}},
		{"powershell", &PowerShellGenerator{}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			g, err := ForShell(tt.shell)
			require.NoError(t, err)
			assert.IsType(t, tt.want, g)
		})
	}

	_, err := ForShell("tcsh")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedShell))
}

func TestFunctionName(t *testing.T) {
	assert.Equal(t, "my_app_2", functionName("my-app.2"))
}

func TestLocation(t *testing.T) {
	home := filepath.Join("home", "u")
	tests := []struct {
		goos  string
		shell string
		want  Location
	}{
		{"linux", "bash", Location{Dir: filepath.Join(home, ".local", "share", "bash-completion", "completions"), File: "vcs"}},
		{"linux", "zsh", Location{Dir: filepath.Join(home, ".zsh", "completion"), File: "_vcs"}},
		{"darwin", "fish", Location{Dir: filepath.Join(home, ".config", "fish", "completions"), File: "vcs.fish"}},
		{"darwin", "powershell", Location{Dir: filepath.Join(home, "Library", "PowerShell", "Completions"), File: "vcs.ps1"}},
		{"linux", "pwsh", Location{Dir: filepath.Join(home, ".config", "powershell", "Completions"), File: "vcs.ps1"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.shell, func(t *testing.T) {
			got, err := location(home, tt.goos, tt.shell, "vcs")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := location(home, "linux", "csh", "vcs")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedShell))
}

func TestInstall(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home directory is not taken from HOME")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := Install("fish", "/usr/local/bin/vcs", testData(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "fish", "completions", "vcs.fish"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "# fish completion for vcs\n"))

	_, err = Install("tcsh", "vcs", testData(t))
	assert.True(t, errors.Is(err, errs.ErrUnsupportedShell))
}
