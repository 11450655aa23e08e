package assertion

import (
	"fmt"
	"strings"
	"time"

	"digital.vasic.chronoassert/pkg/condition"
)

// ParseAssertionString parses a compact assertion string of the
// form "condition:tolerance[:direction]". The direction defaults
// to before.
//
// Examples:
//
//	"within:10s"           -> Within, 10s, before
//	"at_least:1m:after"    -> AtLeast, 1m, after
//	"less-than:250ms"      -> LessThan, 250ms, before
func ParseAssertionString(
	s string,
) (c condition.Condition, tolerance time.Duration, dir Direction, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, "", fmt.Errorf(
			"assertion %q: expected condition:tolerance[:direction]", s,
		)
	}

	c, err = condition.Parse(parts[0])
	if err != nil {
		return 0, 0, "", fmt.Errorf("assertion %q: %w", s, err)
	}

	tolerance, err = time.ParseDuration(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, "", fmt.Errorf("assertion %q: %w", s, err)
	}

	dir = Before
	if len(parts) == 3 {
		dir = Direction(strings.ToLower(strings.TrimSpace(parts[2])))
		if !dir.Valid() {
			return 0, 0, "", fmt.Errorf(
				"assertion %q: unknown direction %q", s, parts[2],
			)
		}
	}

	return c, tolerance, dir, nil
}

// normalize applies Check and the default direction.
func normalize(def Definition) (Definition, error) {
	if def.Check != "" {
		c, tol, dir, err := ParseAssertionString(def.Check)
		if err != nil {
			return def, err
		}
		def.Condition, def.Tolerance, def.Direction = c, tol, dir
	}
	if def.Direction == "" {
		def.Direction = Before
	}
	return def, nil
}
