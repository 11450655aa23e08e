// Package report renders assertion results for humans and machines.
package report

import (
	"fmt"
	"io"
	"strings"

	"digital.vasic.chronoassert/pkg/assertion"
)

// Reporter writes a rendering of results to w.
type Reporter interface {
	Write(w io.Writer, results []assertion.Result) error
}

// Format names an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTable, FormatJSON, FormatMarkdown}

// New returns the Reporter for the named format.
func New(format string) (Reporter, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatTable, "":
		return TableReporter{}, nil
	case FormatJSON:
		return JSONReporter{Pretty: true}, nil
	case FormatMarkdown, "md":
		return MarkdownReporter{}, nil
	default:
		return nil, fmt.Errorf(
			"unknown report format %q (options: %v)", format, Formats,
		)
	}
}
