// Package reason formats the optional "because" clause that callers attach
// to an assertion.
package reason

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const connective = "because"

// Clause turns a testify-style msgAndArgs list into the clause inserted
// into a failure message. The first element is the reason (a format string
// when more elements follow). A blank reason yields "". Otherwise the clause
// starts with a single space and the word "because", which is only added
// when the reason does not already begin with it.
func Clause(because ...any) string {
	text := Text(because...)
	if text == "" {
		return ""
	}
	if !hasConnective(text) {
		text = connective + " " + text
	}
	return " " + text
}

// Text renders the raw reason without the connective.
func Text(because ...any) string {
	if len(because) == 0 {
		return ""
	}

	var text string
	switch first := because[0].(type) {
	case string:
		if len(because) > 1 {
			text = fmt.Sprintf(first, because[1:]...)
		} else {
			text = first
		}
	case nil:
		return ""
	default:
		text = fmt.Sprintf("%+v", first)
	}

	return strings.TrimSpace(text)
}

// hasConnective reports whether text starts with the whole word "because".
func hasConnective(text string) bool {
	if len(text) < len(connective) ||
		!strings.EqualFold(text[:len(connective)], connective) {
		return false
	}
	rest := text[len(connective):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}
