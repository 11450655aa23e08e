package failure

type teeReporter []Reporter

// Tee returns a Reporter that forwards every failure to each of reporters
// in order. Nil reporters are skipped.
func Tee(reporters ...Reporter) Reporter {
	out := make(teeReporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (t teeReporter) FailWith(because []any, template string, args ...any) {
	for _, r := range t {
		r.FailWith(because, template, args...)
	}
}
