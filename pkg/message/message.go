// Package message renders failure message templates. Templates use
// positional placeholders {0}, {1}, ... for arguments and {reason} for the
// caller-supplied reason clause.
package message

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReasonPlaceholder is replaced by the rendered reason clause.
const ReasonPlaceholder = "{reason}"

const timeLayout = "2006-01-02 15:04:05.999999999"

// Render substitutes placeholders in template. Placeholders that do not
// name a supplied argument are left untouched.
func Render(template, reasonClause string, args ...any) string {
	var b strings.Builder
	b.Grow(len(template) + 32)

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			b.WriteString(rest)
			break
		}
		closing += open

		b.WriteString(rest[:open])
		b.WriteString(substitute(rest[open:closing+1], reasonClause, args))
		rest = rest[closing+1:]
	}

	return b.String()
}

func substitute(placeholder, reasonClause string, args []any) string {
	if placeholder == ReasonPlaceholder {
		return reasonClause
	}
	idx, err := strconv.Atoi(placeholder[1 : len(placeholder)-1])
	if err != nil || idx < 0 || idx >= len(args) {
		return placeholder
	}
	return Value(args[idx])
}

// Value renders a single argument the way it appears in failure messages.
// Points in time are wrapped in angle brackets, durations use
// time.Duration's notation and strings are quoted.
func Value(v any) string {
	switch val := v.(type) {
	case nil:
		return "<null>"
	case time.Time:
		return formatTime(val)
	case *time.Time:
		if val == nil {
			return "<null>"
		}
		return formatTime(*val)
	case time.Duration:
		return val.String()
	case string:
		return strconv.Quote(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatTime(t time.Time) string {
	s := t.Format(timeLayout)
	if _, offset := t.Zone(); offset != 0 {
		s += t.Format(" -07:00")
	}
	return "<" + s + ">"
}
