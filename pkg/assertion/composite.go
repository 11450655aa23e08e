package assertion

import "fmt"

// AllPassed reports whether every result passed. An empty slice
// counts as passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// AllPassComposite evaluates every definition and folds the
// outcome into one Result that passes only if all of them pass.
func AllPassComposite(engine Engine, defs []Definition) Result {
	results := engine.EvaluateAll(defs)

	for _, r := range results {
		if !r.Passed {
			return Result{
				Name:   "all_pass",
				Passed: false,
				Message: fmt.Sprintf(
					"assertion '%s' failed: %s", r.Name, r.Message,
				),
			}
		}
	}

	return Result{
		Name:   "all_pass",
		Passed: true,
		Message: fmt.Sprintf(
			"all %d assertions passed", len(results),
		),
	}
}

// AnyPassComposite evaluates every definition and folds the
// outcome into one Result that passes if at least one passes.
func AnyPassComposite(engine Engine, defs []Definition) Result {
	results := engine.EvaluateAll(defs)

	for _, r := range results {
		if r.Passed {
			return Result{
				Name:   "any_pass",
				Passed: true,
				Message: fmt.Sprintf(
					"assertion '%s' passed", r.Name,
				),
			}
		}
	}

	return Result{
		Name:   "any_pass",
		Passed: false,
		Message: fmt.Sprintf(
			"none of %d assertions passed", len(results),
		),
	}
}
