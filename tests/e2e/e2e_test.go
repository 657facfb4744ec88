package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/agds-alt/inspekta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "inspekta-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "inspekta")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/inspekta")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Score Tests ---

func TestE2E_Score(t *testing.T) {
	out, code := run(t, "score", fixturePath("responses-trio-best.yaml"), "--template", fixturePath("ordinal-trio.yaml"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "inspekta")
	assert.Contains(t, out, "100")
}

func TestE2E_ScoreJSON(t *testing.T) {
	out, code := run(t, "score", fixturePath("responses-trio-best.yaml"), "--template", fixturePath("ordinal-trio.yaml"), "--json")
	assert.Equal(t, 0, code)

	var result domain.ScoreResult
	err := json.Unmarshal([]byte(out), &result)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, domain.StatusExcellent, result.Status)
	assert.Len(t, result.Criteria, 3)
}

func TestE2E_ScoreCI(t *testing.T) {
	_, code := run(t, "score", fixturePath("responses-trio-low.yaml"), "--template", fixturePath("ordinal-trio.yaml"), "--ci", "--min", "80")
	assert.Equal(t, 1, code, "should exit 1 when below minimum")
}

func TestE2E_ScoreOrdering(t *testing.T) {
	bestOut, _ := run(t, "score", fixturePath("responses-trio-best.yaml"), "--template", fixturePath("ordinal-trio.yaml"), "--json")
	lowOut, _ := run(t, "score", fixturePath("responses-trio-low.yaml"), "--template", fixturePath("ordinal-trio.yaml"), "--json")

	var best, low domain.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(bestOut), &best))
	require.NoError(t, json.Unmarshal([]byte(lowOut), &low))

	assert.Greater(t, best.Percentage, low.Percentage, "best > low")
}

func TestE2E_ScoreRejectsInvalid(t *testing.T) {
	out, code := run(t, "score", fixturePath("responses-invalid.yaml"), "--template", fixturePath("restroom-daily.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Validation failed")
}

// --- Validate Tests ---

func TestE2E_Validate(t *testing.T) {
	out, code := run(t, "validate", fixturePath("responses-pass.yaml"), "--template", fixturePath("restroom-daily.yaml"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "valid")
}

func TestE2E_ValidateJSON(t *testing.T) {
	out, code := run(t, "validate", fixturePath("responses-invalid.yaml"), "--template", fixturePath("restroom-daily.yaml"), "--json")
	assert.Equal(t, 1, code)

	var result domain.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

// --- Template Tests ---

func TestE2E_Template(t *testing.T) {
	out, code := run(t, "template", fixturePath("restroom-daily.yaml"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "restroom-daily")
	assert.Contains(t, out, "13")
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "inspekta")
}
