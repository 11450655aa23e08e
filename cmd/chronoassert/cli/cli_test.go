package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = Execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestCheck_Passing(t *testing.T) {
	code, out, stderr := execute("check", "testdata/pass.yaml")

	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "build-before-deploy")
	assert.Contains(t, out, "cooldown")
	assert.Contains(t, out, "2 assertions, 2 passed, 0 failed")
}

func TestCheck_FailingExitsNonZero(t *testing.T) {
	code, out, stderr := execute("check", "testdata/pass.yaml", "testdata/fail.yaml")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "response-sla: Expected date and/or time <2024-03-01 10:00:00> "+
		"to be less than 2s before <2024-03-01 10:00:05> because responses must be quick, "+
		"but it differs 5s.")
	assert.Contains(t, out, "3 assertions, 2 passed, 1 failed")
	assert.NotContains(t, stderr, "error:", "a failed assertion is reported, not an error")
}

func TestCheck_JSONOutput(t *testing.T) {
	code, out, _ := execute("check", "-o", "json", "testdata/fail.yaml")
	require.Equal(t, 1, code)

	var doc struct {
		Summary struct {
			Total  int `json:"total"`
			Failed int `json:"failed"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 1, doc.Summary.Total)
	assert.Equal(t, 1, doc.Summary.Failed)
}

func TestCheck_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"invalid bank", []string{"check", "testdata/invalid.yaml"}, "target is required"},
		{"missing path", []string{"check", "testdata/nope.yaml"}, "nope.yaml"},
		{"unknown format", []string{"check", "-o", "xml", "testdata/pass.yaml"}, "unknown report format"},
		{"no args", []string{"check"}, "requires at least 1 arg"},
		{"duplicate names", []string{"check", "testdata/pass.yaml", "testdata/pass.yaml"}, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := execute(tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Contains(t, stderr, tt.msg)
		})
	}
}

func TestCheck_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: markdown\n"), 0o644))

	code, out, stderr := execute("check", "-c", cfg, "testdata/pass.yaml")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "| Pass Rate | 100% |")
}

func TestCheck_FlagOverridesConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: markdown\n"), 0o644))

	code, out, _ := execute("check", "-c", cfg, "-o", "json", "testdata/pass.yaml")
	require.Equal(t, 0, code)
	assert.True(t, json.Valid([]byte(out)))
}

func TestCheck_DebugLogging(t *testing.T) {
	code, _, stderr := execute("check", "--log-level", "debug", "--log-structured", "testdata/pass.yaml")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, `"msg":"config loaded"`)
}

func TestConditions(t *testing.T) {
	code, out, _ := execute("conditions")
	require.Equal(t, 0, code)

	for _, want := range []string{
		"more_than", "at_least", "exactly", "within", "less_than",
		"more than", "distance <= tolerance",
	} {
		assert.Contains(t, out, want)
	}
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var out, errOut bytes.Buffer
	root := newRootCmd(viper.New())
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{
		"serve", "--addr", "127.0.0.1:0", "--interval", "50ms",
		"--log-level", "info", "testdata/pass.yaml",
	})

	require.NoError(t, root.ExecuteContext(ctx))
	assert.Contains(t, errOut.String(), "evaluation pass complete")
	assert.Contains(t, errOut.String(), "monitor listening")
}
