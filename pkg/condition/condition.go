// Package condition holds the closed set of relational conditions a time
// comparison can be made under, and the fixed table mapping each one to its
// comparator and display label.
package condition

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidCondition is returned (or panicked with) when a Condition
// outside the closed set is resolved or parsed.
var ErrInvalidCondition = errors.New("invalid condition")

// Condition selects which relational comparator governs an assertion.
type Condition int

const (
	// MoreThan requires the distance to be strictly greater than the
	// tolerance.
	MoreThan Condition = iota + 1
	// AtLeast requires the distance to be greater than or equal to the
	// tolerance.
	AtLeast
	// Exactly requires the distance to equal the tolerance.
	Exactly
	// Within requires the distance to be at most the tolerance. The
	// bound is one-sided: negative distances always satisfy it.
	Within
	// LessThan requires the distance to be strictly less than the
	// tolerance.
	LessThan

	conditionCount
)

// Predicate binds a comparator to the label used in failure messages.
type Predicate struct {
	// Compare reports whether actual satisfies the condition relative
	// to expected.
	Compare func(actual, expected time.Duration) bool

	// Label is inserted verbatim into failure messages,
	// e.g. "more than".
	Label string
}

type entry struct {
	name      string
	predicate Predicate
}

// table is indexed by Condition. Index 0 is the unset zero value.
var table = [...]entry{
	MoreThan: {"more_than", Predicate{
		Compare: func(actual, expected time.Duration) bool { return actual > expected },
		Label:   "more than",
	}},
	AtLeast: {"at_least", Predicate{
		Compare: func(actual, expected time.Duration) bool { return actual >= expected },
		Label:   "at least",
	}},
	Exactly: {"exactly", Predicate{
		Compare: func(actual, expected time.Duration) bool { return actual == expected },
		Label:   "exactly",
	}},
	Within: {"within", Predicate{
		Compare: func(actual, expected time.Duration) bool { return actual <= expected },
		Label:   "within",
	}},
	LessThan: {"less_than", Predicate{
		Compare: func(actual, expected time.Duration) bool { return actual < expected },
		Label:   "less than",
	}},
}

// A condition declared without a table entry makes the index negative and
// the package stops compiling.
var _ = [1]struct{}{}[len(table)-int(conditionCount)]

// Valid reports whether c is one of the declared conditions.
func (c Condition) Valid() bool {
	return c >= MoreThan && c < conditionCount
}

// String returns the snake-case tag of the condition.
func (c Condition) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Condition(%d)", int(c))
	}
	return table[c].name
}

// Resolve returns the predicate bound to c.
func Resolve(c Condition) (Predicate, error) {
	if !c.Valid() {
		return Predicate{}, fmt.Errorf("%w: %d", ErrInvalidCondition, int(c))
	}
	return table[c].predicate, nil
}

// MustResolve is like Resolve but panics on an invalid condition.
func MustResolve(c Condition) Predicate {
	p, err := Resolve(c)
	if err != nil {
		panic(err)
	}
	return p
}

// All returns every condition in declaration order.
func All() []Condition {
	all := make([]Condition, 0, int(conditionCount)-1)
	for c := MoreThan; c < conditionCount; c++ {
		all = append(all, c)
	}
	return all
}

// Parse converts a tag such as "within", "at-least" or "Less Than" into a
// Condition.
func Parse(s string) (Condition, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	for c := MoreThan; c < conditionCount; c++ {
		if table[c].name == norm {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCondition, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Condition) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCondition, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Condition) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
