package validate

// CheckFunc performs rule checking on a context.
// It returns the issues found, or nil if none were detected.
type CheckFunc func(ctx *Context) []Issue

// SimpleRule creates a rule from a check function.
//
//nolint:ireturn // Builder functions should return interfaces
func SimpleRule(name, description string, check CheckFunc) Rule {
	return &simpleRule{
		name:        name,
		description: description,
		check:       check,
	}
}

type simpleRule struct {
	name        string
	description string
	check       CheckFunc
}

func (r *simpleRule) Name() string {
	return r.name
}

func (r *simpleRule) Description() string {
	return r.description
}

func (r *simpleRule) Check(ctx *Context) []Issue {
	return r.check(ctx)
}
