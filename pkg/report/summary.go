package report

import (
	"fmt"
	"strings"

	"digital.vasic.chronoassert/pkg/assertion"
)

// Summary aggregates a set of results.
type Summary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	PassRate float64 `json:"pass_rate"`
}

// Summarize counts passed and failed results.
func Summarize(results []assertion.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	if s.Total > 0 {
		s.PassRate = float64(s.Passed) / float64(s.Total)
	}
	return s
}

// String renders the one-line form used at the end of a run.
func (s Summary) String() string {
	return fmt.Sprintf(
		"%d assertions, %d passed, %d failed",
		s.Total, s.Passed, s.Failed,
	)
}

func status(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

// escapeCell keeps a message on one table row.
func escapeCell(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
