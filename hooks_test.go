package cmdline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobCmd interface{ job() }

type jobRoot struct {
	Workers int    `cmdline:"opt:-w" validate:"omitempty,min=1,max=8"`
	Job     jobCmd `cmdline:"pos;mandatory"`
}

var hookCalls []string

func (r *jobRoot) Validate() error {
	hookCalls = append(hookCalls, "root.validate")
	return nil
}

func (r *jobRoot) Process() error {
	hookCalls = append(hookCalls, "root.process")
	return nil
}

type runJob struct {
	Command `name:"run,r" doc:"Runs a job."`
	Fast    bool   `cmdline:"opt:-f"`
	Slow    bool   `cmdline:"opt:-s"`
	Name    string `cmdline:"pos;mandatory" validate:"alphanum"`
	Fail    string `cmdline:"opt:--fail"`
}

func (j *runJob) Validate() error {
	hookCalls = append(hookCalls, "run.validate")
	if j.Fast && j.Slow {
		return Incompatible("-f", "-s")
	}
	switch j.Fail {
	case "validation":
		return NewValidationError("the job cannot run")
	case "plain":
		return errors.New("disk full")
	}
	return nil
}

func (j *runJob) Process() error {
	hookCalls = append(hookCalls, "run.process")
	return nil
}

func (*runJob) job() {}

func init() {
	RegisterGroup[jobCmd](&runJob{})
}

func TestHooks_RunLeafToRoot(t *testing.T) {
	hookCalls = nil
	c, err := Parse[jobRoot]([]string{"run", "nightly"})
	require.NoError(t, err)
	assert.Equal(t, []string{"run.validate", "run.process", "root.validate", "root.process"}, hookCalls)
	assert.Equal(t, "nightly", c.Job.(*runJob).Name)

	// a failing leaf hook stops before the outer levels
	hookCalls = nil
	_, err = Parse[jobRoot]([]string{"run", "nightly", "--fail", "plain"})
	require.Error(t, err)
	assert.Equal(t, []string{"run.validate"}, hookCalls)
}

func TestHooks_ValidationError(t *testing.T) {
	_, err := Parse[jobRoot]([]string{"run", "nightly", "--fail", "validation"}, WithProgramName("jobs"))
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "the job cannot run", ve.Error())
	assert.True(t, ve.WriteErrorText())
	assert.Equal(t, "Error: the job cannot run\n", ve.GenerateErrorText(80).String())

	// the failure is bound to the help of the selected command
	assert.Contains(t, ve.GenerateHelp(200).String(), "Usage: jobs [-w <Workers>] run")
}

func TestHooks_PlainErrorIsWrapped(t *testing.T) {
	_, err := Parse[jobRoot]([]string{"run", "nightly", "--fail", "plain"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, KindValidation))
	assert.Equal(t, "disk full", err.Error())
}

func TestHooks_Incompatible(t *testing.T) {
	_, err := Parse[jobRoot]([]string{"r", "-f", "-s", "nightly"})
	require.Error(t, err)
	var ie *IncompatibleError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "-f", ie.Earlier)
	assert.Equal(t, "-s", ie.Later)
	assert.Equal(t, "The command or option, -s, cannot be used in conjunction with -f. Please specify only one of the two.", err.Error())
	assert.NotEmpty(t, ie.GenerateHelp(80).String())

	_, err = Parse[jobRoot]([]string{"r", "-f", "-s", "nightly"}, WithMessages(map[string]string{
		"cmdline.msg.incompatible": "{1} and {0} clash",
	}))
	require.Error(t, err)
	assert.Equal(t, "-f and -s clash", err.Error())
}

func TestHooks_StructValidation(t *testing.T) {
	_, err := Parse[jobRoot]([]string{"-w", "9", "run", "nightly"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, KindValidation))
	assert.Equal(t, "The value of -w does not satisfy the constraint max=8.", err.Error())

	_, err = Parse[jobRoot]([]string{"run", "night-ly"})
	require.Error(t, err)
	assert.Equal(t, "The value of <Name> does not satisfy the constraint alphanum.", err.Error())

	c, err := Parse[jobRoot]([]string{"-w", "9", "run", "night-ly"}, WithStructValidation(false))
	require.NoError(t, err)
	assert.Equal(t, 9, c.Workers)
}
