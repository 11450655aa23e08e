package failure

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
)

// Scope collects failures so that several assertions can be evaluated
// before any of them is reported. It is safe for concurrent use.
type Scope struct {
	mu   sync.Mutex
	errs *multierror.Error
}

// NewScope creates an empty Scope.
func NewScope() *Scope {
	return &Scope{}
}

// FailWith adds the rendered failure to the scope.
func (s *Scope) FailWith(because []any, template string, args ...any) {
	err := NewError(because, template, args...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = multierror.Append(s.errs, err)
	s.errs.ErrorFormat = formatScope
}

// Len returns the number of collected failures.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errs == nil {
		return 0
	}
	return len(s.errs.Errors)
}

// Err returns the collected failures as a *multierror.Error, or nil when
// nothing failed.
func (s *Scope) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs.ErrorOrNil()
}

// Release reports all collected failures on t as a single failure and
// clears the scope. It returns true when there was nothing to report.
func (s *Scope) Release(t assert.TestingT) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	s.mu.Lock()
	err := s.errs.ErrorOrNil()
	s.errs = nil
	s.mu.Unlock()

	if err == nil {
		return true
	}
	return assert.Fail(t, err.Error())
}

func formatScope(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}

	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = fmt.Sprintf("%d) %s", i+1, err)
	}
	return fmt.Sprintf(
		"%d assertions failed:\n%s",
		len(errs), strings.Join(lines, "\n"),
	)
}
