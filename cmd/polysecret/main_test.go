// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/polysecret/basedecode"
	"github.com/katalvlaran/polysecret/config"
	"github.com/katalvlaran/polysecret/secret"
	"github.com/katalvlaran/polysecret/sharefile"
)

var (
	workedFile = filepath.Join("..", "..", "sharefile", "testdata", "worked.json")
	hexFile    = filepath.Join("..", "..", "sharefile", "testdata", "hex.json")
)

// run executes the command tree with a silent logger and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{config.EnvWorkers, config.EnvLogLevel, config.EnvFormat, config.EnvVerify} {
		t.Setenv(k, "")
	}

	a := &app{logger: zap.NewNop()}
	root := a.rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestSolve_Text(t *testing.T) {
	out, err := run(t, "solve", workedFile)
	require.NoError(t, err)
	assert.Contains(t, out, "worked.json: 3  k=3 fp=")
	assert.NotContains(t, out, "verified")

	out, err = run(t, "solve", "--verify", workedFile)
	require.NoError(t, err)
	assert.Contains(t, out, "verified=1")
}

func TestSolve_JSON(t *testing.T) {
	out, err := run(t, "solve", "--format", "json", "--workers", "2", workedFile, hexFile)
	require.NoError(t, err)

	var reports []report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, 3.0, reports[0].Secret)
	assert.Equal(t, 3, reports[0].Used)
	assert.Len(t, reports[0].Fingerprint, 64)
	assert.Equal(t, 1234.0, reports[1].Secret)
	assert.Equal(t, hexFile, reports[1].File)
}

// TestSolve_ConfigFile picks the output format from a YAML config.
func TestSolve_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polysecret.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0o600))

	out, err := run(t, "--config", path, "solve", workedFile)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)

	out, err = run(t, "--config", path, "solve", "--format", "text", workedFile) // flag wins
	require.NoError(t, err)
	assert.False(t, json.Valid([]byte(out)))
}

func TestSolve_Plot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	_, err := run(t, "solve", "--plot", dir, workedFile)
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(dir, "worked.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "polynomial")
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "solve")
	require.Error(t, err) // needs at least one file

	_, err = run(t, "solve", filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "solve", "--workers", "0", workedFile)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"keys": {"n": 1, "k": 1}, "1": {"base": "2", "value": "102"}}`), 0o600))
	_, err = run(t, "solve", bad)
	require.ErrorIs(t, err, basedecode.ErrInvalidDigit)
}

func TestSplit_Stdout(t *testing.T) {
	out, err := run(t, "split", "--secret", "1234", "--coeffs", "5", "--xs", "1,2,3", "--base", "16")
	require.NoError(t, err)

	in, err := sharefile.ParseJSON([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, &secret.Metadata{N: 3, K: 2}, in.Meta)
	assert.Equal(t, "4d7", in.Shares[0].Value)

	v, err := secret.Secret(in, secret.WithVerify())
	require.NoError(t, err)
	assert.Equal(t, 1234.0, v)
}

// TestSplitThenSolve feeds a generated file back into solve.
func TestSplitThenSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.json")
	_, err := run(t, "split", "--secret", "42", "--coeffs", "1,2", "--xs", "2,4,5,9", "--base", "7", "-o", path)
	require.NoError(t, err)

	out, err := run(t, "solve", "--verify", path)
	require.NoError(t, err)
	assert.Contains(t, out, "gen.json: 42  k=3")
}

func TestSplit_Errors(t *testing.T) {
	_, err := run(t, "split", "--secret", "1")
	require.Error(t, err) // --xs is required

	_, err = run(t, "split", "--secret", "1", "--xs", "1", "--base", "40")
	require.ErrorIs(t, err, basedecode.ErrInvalidBase)

	_, err = run(t, "split", "--secret", "1", "--coeffs", "2", "--xs", "1")
	require.Error(t, err)
}

// fakeAsk answers survey prompts from a fixed script.
func fakeAsk(t *testing.T, answers ...any) func(survey.Prompt, interface{}, ...survey.AskOpt) error {
	t.Helper()
	return func(_ survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		if len(answers) == 0 {
			return errors.New("unexpected prompt")
		}
		ans := answers[0]
		answers = answers[1:]
		switch r := response.(type) {
		case *string:
			*r = ans.(string)
		case *bool:
			*r = ans.(bool)
		default:
			t.Fatalf("unsupported response type %T", response)
		}
		return nil
	}
}

func withAsk(t *testing.T, fn func(survey.Prompt, interface{}, ...survey.AskOpt) error) {
	t.Helper()
	prev := askOne
	askOne = fn
	t.Cleanup(func() { askOne = prev })
}

func TestPrompt_Worked(t *testing.T) {
	withAsk(t, fakeAsk(t,
		"3", "4",
		"1", "10", "4",
		"2", "2", "111",
		"3", "10", "12",
		"6", "4", "213",
		true, // verify extra share
	))

	out, err := run(t, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "secret: 3\n", out)
}

func TestPrompt_Errors(t *testing.T) {
	withAsk(t, fakeAsk(t, "3", "2"))
	_, err := run(t, "prompt")
	require.ErrorContains(t, err, "1 <= k <= n")

	withAsk(t, fakeAsk(t, "2", "2", "1", "10", "5", "2", "10", "5")) // same y twice is fine
	out, err := run(t, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "secret: 5\n", out)

	withAsk(t, fakeAsk(t, "2", "2", "1", "10", "5", "1", "10", "5")) // same x twice
	_, err = run(t, "prompt")
	require.Error(t, err)
}
