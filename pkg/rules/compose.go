package rules

// Combine merges several validation functions into one. The combined function
// runs every input function in the supplied order against the same value and
// folds all non-nil results into a single Errors map; on a shared validator
// name the later function wins, keeping the merge deterministic. It returns
// nil only when every function passes.
//
// There is no short-circuiting: a field reports every violation at once, so a
// value can fail `size` and `pattern` simultaneously.
func Combine(funcs []Func) Func {
	// Drop nil entries once so the hot path stays branch-free.
	compact := make([]Func, 0, len(funcs))
	for _, fn := range funcs {
		if fn != nil {
			compact = append(compact, fn)
		}
	}

	if len(compact) == 0 {
		return passAll
	}
	if len(compact) == 1 {
		return compact[0]
	}

	return func(value any) Errors {
		var merged Errors
		for _, fn := range compact {
			merged = merged.merge(fn(value))
		}
		return merged
	}
}

func passAll(any) Errors { return nil }
