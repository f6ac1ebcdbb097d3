package validate

import (
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/errors"
	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/tag"
)

// Validator runs an ordered rule pipeline over a message.
// A Validator holds no per-run state and is safe for concurrent use.
type Validator struct {
	rules  []Rule
	hints  []Rule
	logger *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger configures the validator with a logger.
// If logger is nil, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithRules replaces the blocking rule pipeline.
func WithRules(rules ...Rule) Option {
	return func(v *Validator) {
		v.rules = rules
	}
}

// WithHints enables or disables the advisory hints attached to a structural mismatch.
func WithHints(enabled bool) Option {
	return func(v *Validator) {
		if enabled {
			v.hints = DefaultHints()
		} else {
			v.hints = nil
		}
	}
}

// New creates a Validator with the default pipeline and hints.
func New(opts ...Option) *Validator {
	v := &Validator{
		rules: DefaultRules(),
		hints: DefaultHints(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks message and returns the verdict. Rules run in order and
// the first blocking issue ends the run.
func (v *Validator) Validate(message string) Result {
	ctx := NewContext(message)

	for _, rule := range v.rules {
		issues := rule.Check(ctx)
		blocking, ok := firstBlocking(issues)
		if !ok {
			v.debug("rule passed", "rule", rule.Name())
			continue
		}

		reason := reasonFor(blocking.Code)
		v.debug("rule rejected message",
			"rule", rule.Name(),
			"reason", reason.String(),
			"detail", blocking.Message)

		all := issues
		if reason == ReasonStructuralMismatch {
			all = append(all, v.runHints(ctx)...)
		}
		return Rejected(reason, blocking.Message, all...)
	}

	t, err := tag.Parse(message)
	if err != nil {
		// Only reachable with a custom pipeline that skips the structure rule.
		return Rejected(ReasonStructuralMismatch, err.Error(),
			NewIssue(RuleStructure, errors.CodeStructuralMismatch, err.Error()))
	}
	v.debug("message accepted", "tag", t.String())
	return Accepted(t)
}

func (v *Validator) runHints(ctx *Context) []Issue {
	var out []Issue
	for _, h := range v.hints {
		out = append(out, h.Check(ctx)...)
	}
	return out
}

func (v *Validator) debug(msg string, args ...any) {
	if v.logger != nil {
		v.logger.Debug(msg, args...)
	}
}

func firstBlocking(issues []Issue) (Issue, bool) {
	for _, i := range issues {
		if i.Blocking() {
			return i, true
		}
	}
	return Issue{}, false
}

var defaultValidator = New()

// Validate checks message with the default pipeline and hints.
func Validate(message string) Result {
	return defaultValidator.Validate(message)
}
