package validate

// Rule defines the interface that all validation rules implement.
type Rule interface {
	// Name returns a unique kebab-case identifier such as "structure".
	Name() string

	// Description returns a human-readable description of what the rule checks.
	Description() string

	// Check examines the message in ctx and returns any issues found.
	Check(ctx *Context) []Issue
}
