package assertion

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.chronoassert/pkg/condition"
)

func TestLoadFile(t *testing.T) {
	defs, err := LoadFile(filepath.Join("testdata", "deploy.yaml"))
	require.NoError(t, err)

	expected := []Definition{
		{
			Name:      "build-before-deploy",
			Subject:   t0,
			Target:    t0.Add(5 * time.Second),
			Condition: condition.Within,
			Tolerance: 10 * time.Second,
			Direction: Before,
			Reason:    "the pipeline is fast",
		},
		{
			Name:      "cooldown",
			Subject:   t0,
			Target:    t0.Add(-3 * time.Second),
			Check:     "exactly:3s:after",
			Condition: condition.Exactly,
			Tolerance: 3 * time.Second,
			Direction: After,
		},
	}

	if diff := cmp.Diff(expected, defs); diff != "" {
		t.Errorf("unexpected definitions (-want +got):\n%s", diff)
	}

	results := NewEngine().EvaluateAll(defs)
	assert.True(t, AllPassed(results))
}

func TestLoadDir(t *testing.T) {
	defs, err := LoadDir(filepath.Join("testdata", "bank"))
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "response-sla", defs[0].Name)
	assert.Equal(t, condition.LessThan, defs[0].Condition)
	assert.Equal(t, "retention", defs[1].Name)
	assert.Equal(t, condition.AtLeast, defs[1].Condition)
	assert.Equal(t, 168*time.Hour, defs[1].Tolerance)
	assert.Equal(t, After, defs[1].Direction)

	results := NewEngine().EvaluateAll(defs)
	require.Len(t, results, 2)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Message, "because responses must be quick")
	assert.True(t, results[1].Passed)
}

func TestLoadDir_DuplicatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("testdata", "bank", "a_sla.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.yaml"), data, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.yml"), data, 0o644))

	_, err = LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate name")
}

func TestLoadFile_Invalid(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "invalid", "broken.yaml"))
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "target is required")
	assert.Contains(t, msg, "tolerance must not be negative")
	assert.Contains(t, msg, "assertion twice: duplicate name")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read assertions file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assertions: [\n"), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse assertions")

	require.NoError(t, os.WriteFile(path, []byte(
		"assertions:\n  - name: x\n    condition: roughly\n"), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, condition.ErrInvalidCondition)
}

func TestLoad_FileOrDir(t *testing.T) {
	defs, err := Load(filepath.Join("testdata", "bank"))
	require.NoError(t, err)
	assert.Len(t, defs, 2)

	defs, err = Load(filepath.Join("testdata", "deploy.yaml"))
	require.NoError(t, err)
	assert.Len(t, defs, 2)

	_, err = Load(filepath.Join("testdata", "nope"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	defs, err := LoadFile(filepath.Join("testdata", "deploy.yaml"))
	require.NoError(t, err)

	data, err := Marshal(defs)
	require.NoError(t, err)
	assert.Contains(t, string(data), "condition: within")
	assert.Contains(t, string(data), "tolerance: 10s")

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	again, err := LoadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(defs, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
