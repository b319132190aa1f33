package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirchhoff"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSets(t *testing.T) {
	out, err := run(t, "sets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "SET"))
	assert.True(t, strings.HasPrefix(lines[1], "1 "))
	assert.Contains(t, lines[1], "circuit_set_1.png")
	assert.True(t, strings.HasPrefix(lines[10], "10 "))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"exact", []string{"--set=1", "81.05", "57.08", "23.97"}, "Correct! All currents exactly match"},
		{"within tolerance", []string{"--set=1", "81.5", "57.08", "23.97"}, "I1: off by 0.45 mA"},
		{"mismatch", []string{"--set=1", "10", "20", "30"}, "Incorrect. Try again!"},
		{"NaN", []string{"--set=1", "NaN", "NaN", "NaN"}, "Incorrect. Try again!"},
		{"v1 tolerance", []string{"--variant=v1", "--set=1", "81.75", "57.08", "23.97"}, "Incorrect. Try again!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"check"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCheck_UnknownSet(t *testing.T) {
	out, err := run(t, "check", "--set=0", "1", "2", "3")
	require.ErrorIs(t, err, kirchhoff.ErrUnknownSet)
	assert.Contains(t, out, "Invalid set number")
}

func TestCheck_BadInput(t *testing.T) {
	_, err := run(t, "check", "--set=1", "1", "two", "3")
	assert.ErrorContains(t, err, `I2: "two" is not a number`)

	_, err = run(t, "check", "--set=1", "1", "2")
	assert.Error(t, err)
}

func TestEquations(t *testing.T) {
	out, err := run(t, "equations", "--set=1",
		"--eq=1,-1,-1,0",
		"--eq=-120,0,-220,15",
		"--eq=0,180,220,-5")
	require.NoError(t, err)

	assert.Contains(t, out, "Equation 1 is correctly set up.")
	assert.Contains(t, out, "Equation 2 is correctly set up.")
	assert.Contains(t, out, "Equation 3 does not match")
	assert.NotContains(t, out, "not linearly independent")
}

func TestEquations_Independence(t *testing.T) {
	out, err := run(t, "--variant=v3", "equations", "--set=1",
		"--eq=1,-1,-1,0",
		"--eq=2,-2,-2,0",
		"--eq=0,1,-1,0")
	require.NoError(t, err)
	assert.Contains(t, out, "not linearly independent")
}

func TestEquations_DisabledInV1(t *testing.T) {
	_, err := run(t, "--variant=v1", "equations", "--set=1", "--eq=1,-1,-1,0")
	assert.ErrorIs(t, err, kirchhoff.ErrEquationCheckingDisabled)
}

func TestEquations_TooMany(t *testing.T) {
	_, err := run(t, "--variant=v3", "equations", "--set=1",
		"--eq=1,-1,-1,0",
		"--eq=-120,0,-220,15",
		"--eq=0,180,-220,-5",
		"--eq=-120,-180,0,20",
		"--eq=1,-1,-1,0")
	assert.ErrorContains(t, err, "at most 4 equations, got 5")
}

func TestEquations_NaNDoesNotMatch(t *testing.T) {
	out, err := run(t, "equations", "--set=1", "--eq=NaN,0,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "Equation 1 does not match")
}

func TestParseEquation(t *testing.T) {
	eq, err := parseEquation(" -120, 0 ,-220,15")
	require.NoError(t, err)
	assert.Equal(t, kirchhoff.Equation{-120, 0, -220, 15}, eq)

	_, err = parseEquation("1,2,3")
	assert.ErrorContains(t, err, "want 4")

	_, err = parseEquation("1,2,x,4")
	assert.ErrorContains(t, err, "coefficient 3")
}

func TestKey(t *testing.T) {
	out, err := run(t, "key", "--set=1")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "81.05 / 57.08 / 23.97"))
	assert.Contains(t, out, "file")
}

func TestKey_Print(t *testing.T) {
	out, err := run(t, "key", "--set=3", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "Set 3")
	assert.Contains(t, out, "71.54 / 39.23 / 32.31")
}

func TestKey_UnknownSet(t *testing.T) {
	_, err := run(t, "key", "--set=42")
	assert.ErrorIs(t, err, kirchhoff.ErrUnknownSet)
}

func TestConfigAndProblemsFiles(t *testing.T) {
	problems := writeFile(t, "problems.yaml", `
sets:
  - id: 1
    circuit: {v1: 15, v2: 5, r1: 120, r2: 180, r3: 220}
`)
	config := writeFile(t, "kirchhoff.yaml", "variant: v1\nproblems_path: "+problems+"\n")

	out, err := run(t, "--config="+config, "key")
	require.NoError(t, err)
	assert.Contains(t, out, "derived")
	assert.Equal(t, 2, strings.Count(out, "81.05 / 57.08 / 23.97"))

	_, err = run(t, "--config="+config, "equations", "--set=1", "--eq=1,-1,-1,0")
	assert.ErrorIs(t, err, kirchhoff.ErrEquationCheckingDisabled)
}

func TestFlagErrors(t *testing.T) {
	_, err := run(t, "--config=x.yaml", "--variant=v3", "sets")
	assert.Error(t, err)

	_, err = run(t, "--log-format=xml", "sets")
	assert.ErrorContains(t, err, "unknown log format")

	_, err = run(t, "--log-level=loud", "sets")
	assert.ErrorContains(t, err, "unknown log level")

	_, err = run(t, "--variant=v9", "sets")
	assert.ErrorContains(t, err, "unknown variant")
}
