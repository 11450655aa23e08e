package assertion

import (
	"fmt"

	"digital.vasic.chronoassert/pkg/failure"
	"digital.vasic.chronoassert/pkg/logging"
	"digital.vasic.chronoassert/pkg/timeassert"
)

// Engine defines the interface for assertion evaluation engines.
type Engine interface {
	// Evaluate checks a single definition.
	Evaluate(def Definition) Result

	// EvaluateAll checks every definition in order.
	EvaluateAll(defs []Definition) []Result
}

// DefaultEngine is the standard Engine implementation. It holds
// no per-evaluation state and is safe for concurrent use as long
// as the configured reporter is.
type DefaultEngine struct {
	logger    logging.Logger
	reporter  failure.Reporter
	observers []func(Result)
}

// Option configures a DefaultEngine.
type Option func(*DefaultEngine)

// WithLogger sets the logger used for evaluation events.
func WithLogger(l logging.Logger) Option {
	return func(e *DefaultEngine) { e.logger = logging.OrNull(l) }
}

// WithReporter sets an additional reporter that receives every
// failure, e.g. a monitor collector or a testing reporter.
func WithReporter(r failure.Reporter) Option {
	return func(e *DefaultEngine) { e.reporter = r }
}

// WithObserver registers fn to be called with every Result,
// passed or failed, after it is produced.
func WithObserver(fn func(Result)) Option {
	return func(e *DefaultEngine) { e.observers = append(e.observers, fn) }
}

// NewEngine creates a DefaultEngine.
func NewEngine(opts ...Option) *DefaultEngine {
	e := &DefaultEngine{logger: logging.NullLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate validates def and runs it through timeassert. An
// invalid definition produces a failed Result describing the
// validation errors; it is never passed to the reporter.
func (e *DefaultEngine) Evaluate(def Definition) Result {
	result := e.evaluate(def)
	for _, fn := range e.observers {
		fn(result)
	}
	return result
}

func (e *DefaultEngine) evaluate(def Definition) Result {
	if err := Validate(def); err != nil {
		e.logger.Error("invalid assertion",
			logging.StringField("name", def.Name),
			logging.ErrorField(err),
		)
		def, _ = normalize(def)
		return Result{
			Name:      def.Name,
			Condition: def.Condition,
			Direction: def.Direction,
			Tolerance: def.Tolerance,
			Passed:    false,
			Message:   fmt.Sprintf("invalid assertion: %v", err),
		}
	}

	def, _ = normalize(def)

	rec := failure.NewRecorder()
	parent := timeassert.That(failure.Tee(rec, e.reporter), def.Subject)
	ra := timeassert.NewRangeAssertion(
		parent, parent.Subject(), def.Condition, def.Tolerance,
	)

	var because []any
	if def.Reason != "" {
		because = []any{def.Reason}
	}

	before := def.Direction == Before
	if before {
		ra.Before(def.Target, because...)
	} else {
		ra.After(def.Target, because...)
	}
	actual := ra.Distance(def.Target, before)

	result := Result{
		Name:      def.Name,
		Condition: def.Condition,
		Direction: def.Direction,
		Tolerance: def.Tolerance,
		Actual:    actual,
		Passed:    !rec.Failed(),
	}
	if result.Passed {
		result.Message = fmt.Sprintf(
			"%s %s %s: differs %s",
			ra.Label(), def.Tolerance, def.Direction, actual,
		)
	} else {
		result.Message = rec.Messages()[0]
	}

	e.logger.Debug("assertion evaluated",
		logging.StringField("name", def.Name),
		logging.StringField("condition", def.Condition.String()),
		logging.TimeField("subject", def.Subject),
		logging.TimeField("target", def.Target),
		logging.DurationField("tolerance", def.Tolerance),
		logging.DurationField("actual", actual),
		logging.BoolField("passed", result.Passed),
	)

	return result
}

// EvaluateAll runs every definition in order.
func (e *DefaultEngine) EvaluateAll(defs []Definition) []Result {
	results := make([]Result, 0, len(defs))
	for _, def := range defs {
		results = append(results, e.Evaluate(def))
	}
	return results
}
