package report

import (
	"fmt"
	"io"
	"strings"

	"digital.vasic.chronoassert/pkg/assertion"
)

// MarkdownReporter renders results as a Markdown document.
type MarkdownReporter struct{}

// Write renders results to w.
func (MarkdownReporter) Write(w io.Writer, results []assertion.Result) error {
	var sb strings.Builder
	summary := Summarize(results)

	sb.WriteString("# Time Assertions\n\n")
	sb.WriteString("| Name | Condition | Tolerance | Direction | Actual | Result |\n")
	sb.WriteString("|------|-----------|-----------|-----------|--------|--------|\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf(
			"| %s | %s | %s | %s | %s | %s |\n",
			escapeCell(r.Name), r.Condition, r.Tolerance,
			r.Direction, r.Actual, status(r.Passed),
		))
	}

	var failed []assertion.Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	if len(failed) > 0 {
		sb.WriteString("\n## Failures\n\n")
		for _, r := range failed {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", r.Name, r.Message))
		}
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total | %d |\n", summary.Total))
	sb.WriteString(fmt.Sprintf("| Passed | %d |\n", summary.Passed))
	sb.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.Failed))
	sb.WriteString(fmt.Sprintf("| Pass Rate | %.0f%% |\n", summary.PassRate*100))

	_, err := io.WriteString(w, sb.String())
	return err
}
