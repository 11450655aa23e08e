package report

import (
	"encoding/json"
	"fmt"
	"io"

	"digital.vasic.chronoassert/pkg/assertion"
)

// JSONReporter renders results and their summary as JSON.
type JSONReporter struct {
	// Pretty indents the output.
	Pretty bool
}

// jsonResult renders durations in their String() form.
type jsonResult struct {
	Name      string `json:"name"`
	Condition string `json:"condition"`
	Direction string `json:"direction"`
	Tolerance string `json:"tolerance"`
	Actual    string `json:"actual"`
	Passed    bool   `json:"passed"`
	Message   string `json:"message"`
}

type jsonDocument struct {
	Summary Summary      `json:"summary"`
	Results []jsonResult `json:"results"`
}

// Write renders results to w.
func (r JSONReporter) Write(w io.Writer, results []assertion.Result) error {
	doc := jsonDocument{
		Summary: Summarize(results),
		Results: make([]jsonResult, 0, len(results)),
	}
	for _, res := range results {
		doc.Results = append(doc.Results, jsonResult{
			Name:      res.Name,
			Condition: res.Condition.String(),
			Direction: string(res.Direction),
			Tolerance: res.Tolerance.String(),
			Actual:    res.Actual.String(),
			Passed:    res.Passed,
			Message:   res.Message,
		})
	}

	enc := json.NewEncoder(w)
	if r.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode JSON report: %w", err)
	}
	return nil
}
