package failure

import "sync"

// Recorder is a Reporter that keeps every failure for later inspection.
// It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	failures []*Error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailWith records the rendered failure.
func (r *Recorder) FailWith(because []any, template string, args ...any) {
	err := NewError(because, template, args...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, err)
}

// Failures returns a copy of the recorded failures.
func (r *Recorder) Failures() []*Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Error, len(r.failures))
	copy(out, r.failures)
	return out
}

// Messages returns the rendered message of every recorded failure.
func (r *Recorder) Messages() []string {
	failures := r.Failures()
	out := make([]string, len(failures))
	for i, f := range failures {
		out[i] = f.Message
	}
	return out
}

// Failed reports whether anything was recorded.
func (r *Recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failures) > 0
}

// Reset discards all recorded failures.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = nil
}
