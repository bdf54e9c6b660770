package main

import (
	"bytes"
	"testing"

	"github.com/napalu/cmdline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runArgs(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := run(args, console{out: &out, err: &errOut})
	return code, out.String(), errOut.String()
}

func TestSchema(t *testing.T) {
	require.NoError(t, cmdline.Check[app]())
}

func TestRun_Add(t *testing.T) {
	code, out, errOut := runArgs("-t", "fruit", "--tag", "red", "add", "apple", "-p", "urgent")
	require.Equal(t, exitOK, code, errOut)

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []interface{}{"fruit", "red"}, got["tags"])
	assert.Equal(t, map[string]interface{}{"item": "apple", "count": 1, "priority": "high"}, got["command"])
}

func TestRun_List(t *testing.T) {
	code, out, _ := runArgs("ls", "--since", "90m", "name", "size")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "command:\n    since: 1h30m0s\n    columns:\n        - name\n        - size\n", out)
}

func TestRun_Quiet(t *testing.T) {
	code, out, _ := runArgs("-q", "rm", "apple")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, out)
}

func TestRun_Help(t *testing.T) {
	code, out, errOut := runArgs("--help")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Usage: cmdline-demo")
	assert.Contains(t, out, "add, a")
	assert.Contains(t, out, "completion")

	_, out, _ = runArgs("add", "-h")
	assert.Contains(t, out, "Adds an item to the store.")
	assert.Contains(t, out, "urgent")
}

func TestRun_Errors(t *testing.T) {
	code, out, errOut := runArgs("rm", "-f", "-k", "apple")
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage: cmdline-demo")
	assert.Contains(t, errOut, "Error: The command or option, --keep, cannot be used in conjunction with")

	code, _, errOut = runArgs("add")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "Error: The parameter <Item> is mandatory and must be specified.")

	code, _, errOut = runArgs("add", "apple", "-n", "500")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "max=100")
}

func TestRun_Completion(t *testing.T) {
	code, out, _ := runArgs("completion", "bash")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "complete -F _cmdline_demo_completion cmdline-demo")
	assert.Contains(t, out, "'low normal high urgent'")

	code, _, errOut := runArgs("completion", "tcsh")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "tcsh")
}
