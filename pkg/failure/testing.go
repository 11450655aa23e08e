package failure

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

type testingReporter struct {
	t assert.TestingT
}

// Testing returns a Reporter that records a non-fatal failure on t, so the
// test keeps running and later assertions are still evaluated.
func Testing(t assert.TestingT) Reporter {
	return testingReporter{t: t}
}

func (r testingReporter) FailWith(because []any, template string, args ...any) {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	assert.Fail(r.t, NewError(because, template, args...).Message)
}

type fatalReporter struct {
	t require.TestingT
}

// Fatal returns a Reporter that fails t and stops the test via FailNow.
func Fatal(t require.TestingT) Reporter {
	return fatalReporter{t: t}
}

func (r fatalReporter) FailWith(because []any, template string, args ...any) {
	if h, ok := r.t.(tHelper); ok {
		h.Helper()
	}
	require.Fail(r.t, NewError(because, template, args...).Message)
}
