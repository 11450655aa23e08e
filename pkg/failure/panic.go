package failure

type panicReporter struct{}

// Panic returns a Reporter that panics with an *Error on every failure.
func Panic() Reporter {
	return panicReporter{}
}

func (panicReporter) FailWith(because []any, template string, args ...any) {
	panic(NewError(because, template, args...))
}
