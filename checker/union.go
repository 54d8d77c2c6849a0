package checker

import "fmt"

// Union accepts a value when any branch accepts it. Branches run in order and the
// first success stops the evaluation. Branch failures are discarded; when every
// branch fails the error reports the whole description.
func Union(param, description string, branches ...Checker) Checker {
	return func(value any) error {
		for _, branch := range branches {
			if branch(value) == nil {
				return nil
			}
		}
		return newTypeError(param, description, value,
			fmt.Sprintf("the type of parameter `%s` should be one of %s, but got %s instead.", param, description, Repr(value)))
	}
}
