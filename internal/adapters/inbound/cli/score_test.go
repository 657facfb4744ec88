package cli_test

import (
	"bytes"
	"testing"

	"github.com/agds-alt/inspekta/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../../../testdata"

func TestScoreCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"score", fixtureDir + "/responses-trio-best.yaml", "--template", fixtureDir + "/ordinal-trio.yaml", "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"percentage": 100`)
	assert.Contains(t, buf.String(), `"status": "excellent"`)
	assert.Contains(t, buf.String(), `"criteria"`)
}

func TestScoreCommand_DefaultTUI(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"score", fixtureDir + "/responses-trio-best.yaml", "--template", fixtureDir + "/ordinal-trio.yaml"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "inspekta")
	assert.Contains(t, buf.String(), "100%")
	assert.Contains(t, buf.String(), "excellent")
}

func TestScoreCommand_CIFails(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"score", fixtureDir + "/responses-trio-low.yaml", "--template", fixtureDir + "/ordinal-trio.yaml", "--ci", "--min", "80"})
	assert.Error(t, cmd.Execute())
}

func TestScoreCommand_CIPasses(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"score", fixtureDir + "/responses-trio-best.yaml", "--template", fixtureDir + "/ordinal-trio.yaml", "--ci", "--min", "80"})
	assert.NoError(t, cmd.Execute())
}

func TestScoreCommand_InvalidSubmission(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"score", fixtureDir + "/responses-invalid.yaml", "--template", fixtureDir + "/restroom-daily.yaml"})
	assert.Error(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Validation failed")
	assert.Contains(t, buf.String(), "out-of-range")
	assert.Contains(t, buf.String(), "unknown-criterion")
}

func TestScoreCommand_NoTemplate(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"score", fixtureDir + "/responses-trio-best.yaml"})
	assert.Error(t, cmd.Execute())
}
