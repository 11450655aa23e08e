package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.chronoassert/pkg/assertion"
	"digital.vasic.chronoassert/pkg/condition"
)

func sampleResults() []assertion.Result {
	return []assertion.Result{
		{
			Name:      "build",
			Condition: condition.Within,
			Direction: assertion.Before,
			Tolerance: 10 * time.Second,
			Actual:    5 * time.Second,
			Passed:    true,
			Message:   "within 10s before: differs 5s",
		},
		{
			Name:      "sla",
			Condition: condition.LessThan,
			Direction: assertion.Before,
			Tolerance: 2 * time.Second,
			Actual:    5 * time.Second,
			Passed:    false,
			Message:   "Expected date and/or time <x> to be less than 2s before <y>, but it differs 5s.",
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleResults())
	assert.Equal(t, Summary{Total: 2, Passed: 1, Failed: 1, PassRate: 0.5}, s)
	assert.Equal(t, "2 assertions, 1 passed, 1 failed", s.String())

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestNew(t *testing.T) {
	tests := []struct {
		format   string
		expected Reporter
	}{
		{"", TableReporter{}},
		{"table", TableReporter{}},
		{"JSON", JSONReporter{Pretty: true}},
		{"markdown", MarkdownReporter{}},
		{"md", MarkdownReporter{}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := New(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}

	_, err := New("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestTableReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableReporter{}.Write(&buf, sampleResults()))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "build")
	assert.Contains(t, out, "less_than")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "sla: Expected date and/or time")
	assert.Contains(t, out, "2 assertions, 1 passed, 1 failed")
	assert.NotContains(t, out, "build: within")
}

func TestTableReporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableReporter{}.Write(&buf, nil))
	assert.Equal(t, "No assertions evaluated\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONReporter{}.Write(&buf, sampleResults()))

	var doc struct {
		Summary Summary          `json:"summary"`
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 2, doc.Summary.Total)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "within", doc.Results[0]["condition"])
	assert.Equal(t, "10s", doc.Results[0]["tolerance"])
	assert.Equal(t, "5s", doc.Results[0]["actual"])
	assert.Equal(t, false, doc.Results[1]["passed"])
}

func TestJSONReporter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONReporter{Pretty: true}.Write(&buf, sampleResults()))
	assert.Contains(t, buf.String(), "\n  \"summary\"")
}

func TestMarkdownReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarkdownReporter{}.Write(&buf, sampleResults()))

	out := buf.String()
	assert.Contains(t, out, "# Time Assertions")
	assert.Contains(t, out, "| build | within | 10s | before | 5s | PASS |")
	assert.Contains(t, out, "## Failures")
	assert.Contains(t, out, "- **sla**: Expected date")
	assert.Contains(t, out, "| Pass Rate | 50% |")
}

func TestEscapeCell(t *testing.T) {
	assert.Equal(t, `a\|b c`, escapeCell("a|b\nc"))
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Condition", "Label"})
	table.Append([]string{"at_least", "at least"})
	table.Render()

	out := buf.String()
	assert.Contains(t, out, "CONDITION")
	assert.Contains(t, out, "at_least")
	assert.NotContains(t, out, "|")
}
