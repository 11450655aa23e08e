package timeassert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.chronoassert/pkg/failure"
)

func TestThat_KeepsCopyOfSubject(t *testing.T) {
	subject := base
	a := That(failure.NewRecorder(), subject)
	subject = subject.Add(time.Hour)

	require.NotNil(t, a.Subject())
	assert.Equal(t, base, *a.Subject())
}

func TestHaveValue(t *testing.T) {
	rec := failure.NewRecorder()

	ThatPtr(rec, &base).HaveValue()
	assert.False(t, rec.Failed())

	ThatPtr(rec, nil).HaveValue("the job has started")
	assert.Equal(t,
		[]string{"Expected a value because the job has started, but found <null>."},
		rec.Messages())
}

func TestBeNil(t *testing.T) {
	rec := failure.NewRecorder()

	ThatPtr(rec, nil).BeNil()
	assert.False(t, rec.Failed())

	That(rec, base).BeNil()
	assert.Equal(t,
		[]string{"Expected no value, but found <2024-03-01 10:00:00>."},
		rec.Messages())
}

func TestConditionBuilders(t *testing.T) {
	a := That(failure.NewRecorder(), base)

	tests := []struct {
		name  string
		r     *RangeAssertion
		label string
	}{
		{"more than", a.BeMoreThan(time.Second), "more than"},
		{"at least", a.BeAtLeast(time.Second), "at least"},
		{"exactly", a.BeExactly(time.Second), "exactly"},
		{"within", a.BeWithin(time.Second), "within"},
		{"less than", a.BeLessThan(time.Second), "less than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.r.Label())
			assert.Same(t, a, tt.r.parent)
		})
	}
}
