package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"digital.vasic.chronoassert/pkg/assertion"
)

// TableReporter renders results as an aligned text table followed
// by a summary line.
type TableReporter struct{}

// Write renders results to w.
func (TableReporter) Write(w io.Writer, results []assertion.Result) error {
	if len(results) == 0 {
		_, err := io.WriteString(w, "No assertions evaluated\n")
		return err
	}

	table := NewTable(w, []string{"Name", "Condition", "Tolerance", "Direction", "Actual", "Result"})

	for _, r := range results {
		table.Append([]string{
			r.Name,
			r.Condition.String(),
			r.Tolerance.String(),
			string(r.Direction),
			r.Actual.String(),
			status(r.Passed),
		})
	}
	table.Render()

	for _, r := range results {
		if r.Passed {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s: %s\n", r.Name, r.Message); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", Summarize(results))
	return err
}

// NewTable returns a borderless, left-aligned table writing to w.
func NewTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}
