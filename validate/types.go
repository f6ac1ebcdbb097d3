// Package validate checks commit messages against the tag grammar.
//
// Validation is an ordered pipeline of rules. The first rule that reports an
// error-severity issue ends the run and determines the rejection reason.
// Rules can also be run on their own, which keeps each diagnostic reachable.
package validate

import (
	"fmt"

	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/errors"
)

// Severity represents the severity level of an issue.
type Severity int

const (
	// SeverityError rejects the message.
	SeverityError Severity = iota
	// SeverityInfo is advisory and never changes the verdict.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue is a single finding produced by a rule.
type Issue struct {
	// Rule is the identifier of the rule that found this issue.
	Rule string `json:"rule"`
	// Severity indicates whether the issue rejects the message.
	Severity Severity `json:"severity"`
	// Code classifies error-severity issues.
	Code errors.ErrorCode `json:"code,omitempty"`
	// Message is a human-readable description of the issue.
	Message string `json:"message"`
	// Context provides additional metadata about the issue.
	Context map[string]interface{} `json:"context,omitempty"`
}

// String returns a formatted string representation of the issue.
func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Rule, i.Message)
}

// IsValid checks if the issue has all required fields.
func (i Issue) IsValid() bool {
	return i.Rule != "" && i.Message != ""
}

// Blocking reports whether the issue rejects the message.
func (i Issue) Blocking() bool {
	return i.Severity == SeverityError
}

// NewIssue creates an error-severity issue.
func NewIssue(rule string, code errors.ErrorCode, message string) Issue {
	return Issue{
		Rule:     rule,
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Context:  make(map[string]interface{}),
	}
}

// NewHint creates an info-severity issue.
func NewHint(rule, message string) Issue {
	return Issue{
		Rule:     rule,
		Severity: SeverityInfo,
		Message:  message,
		Context:  make(map[string]interface{}),
	}
}

// WithContext adds context metadata to an issue and returns the modified issue.
func (i Issue) WithContext(key string, value interface{}) Issue {
	if i.Context == nil {
		i.Context = make(map[string]interface{})
	}
	i.Context[key] = value
	return i
}
