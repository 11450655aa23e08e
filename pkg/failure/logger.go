package failure

import "digital.vasic.chronoassert/pkg/logging"

type loggingReporter struct {
	next   Reporter
	logger logging.Logger
}

// WithLogger returns a Reporter that logs each failure at warn level and
// then forwards it to next.
func WithLogger(next Reporter, logger logging.Logger) Reporter {
	return loggingReporter{next: next, logger: logging.OrNull(logger)}
}

func (r loggingReporter) FailWith(because []any, template string, args ...any) {
	err := NewError(because, template, args...)
	r.logger.Warn("assertion failed",
		logging.StringField("message", err.Message),
		logging.StringField("reason", err.Reason),
	)
	r.next.FailWith(because, template, args...)
}
