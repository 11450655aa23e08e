package assertion

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks a single definition and reports every problem
// found, not only the first.
func Validate(def Definition) error {
	var errs *multierror.Error

	if def.Name == "" {
		errs = multierror.Append(errs, fmt.Errorf("name is required"))
	}
	if def.Subject.IsZero() {
		errs = multierror.Append(errs, fmt.Errorf("subject is required"))
	}
	if def.Target.IsZero() {
		errs = multierror.Append(errs, fmt.Errorf("target is required"))
	}

	def, err := normalize(def)
	if err != nil {
		return multierror.Append(errs, err)
	}
	if !def.Condition.Valid() {
		errs = multierror.Append(errs, fmt.Errorf(
			"condition is required (one of more_than, at_least, exactly, within, less_than)",
		))
	}
	if def.Tolerance < 0 {
		errs = multierror.Append(errs, fmt.Errorf(
			"tolerance must not be negative, got %s", def.Tolerance,
		))
	}
	if !def.Direction.Valid() {
		errs = multierror.Append(errs, fmt.Errorf(
			"unknown direction %q", def.Direction,
		))
	}

	return errs.ErrorOrNil()
}

// ValidateAll validates every definition and additionally rejects
// duplicate names.
func ValidateAll(defs []Definition) error {
	var errs *multierror.Error
	seen := make(map[string]int, len(defs))

	for i, def := range defs {
		label := def.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if err := Validate(def); err != nil {
			errs = multierror.Append(errs, fmt.Errorf(
				"assertion %s: %w", label, err,
			))
		}
		if def.Name == "" {
			continue
		}
		if first, dup := seen[def.Name]; dup {
			errs = multierror.Append(errs, fmt.Errorf(
				"assertion %s: duplicate name (first defined at #%d)",
				def.Name, first,
			))
			continue
		}
		seen[def.Name] = i
	}

	return errs.ErrorOrNil()
}
