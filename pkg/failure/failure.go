// Package failure defines how assertion mismatches are signalled. An
// assertion never decides what a failure means: it hands a message template
// and its arguments to a Reporter, which renders the message and turns it
// into a test failure, a panic, a recorded error or anything else the host
// needs.
package failure

import (
	"errors"

	"digital.vasic.chronoassert/pkg/message"
	"digital.vasic.chronoassert/pkg/reason"
)

// ErrAssertionFailed matches every *Error via errors.Is.
var ErrAssertionFailed = errors.New("assertion failed")

// Reporter receives assertion failures.
type Reporter interface {
	// FailWith signals a failure. because follows testify's
	// msgAndArgs convention; template uses {0}..{n} for args and
	// {reason} for the because clause.
	FailWith(because []any, template string, args ...any)
}

// Func adapts a plain function to the Reporter interface.
type Func func(because []any, template string, args ...any)

// FailWith calls f.
func (f Func) FailWith(because []any, template string, args ...any) {
	f(because, template, args...)
}

// Error is a rendered assertion failure.
type Error struct {
	// Message is the fully rendered failure message.
	Message string

	// Template is the unrendered message template.
	Template string

	// Reason is the caller's reason text without the connective.
	Reason string

	// Args are the positional template arguments.
	Args []any
}

// NewError renders template with the reason clause and args.
func NewError(because []any, template string, args ...any) *Error {
	return &Error{
		Message:  message.Render(template, reason.Clause(because...), args...),
		Template: template,
		Reason:   reason.Text(because...),
		Args:     args,
	}
}

// Error returns the rendered message.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is ErrAssertionFailed.
func (e *Error) Is(target error) bool {
	return target == ErrAssertionFailed
}
