package validate

import (
	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/errors"
	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/tag"
)

// Reason explains why a message was rejected.
type Reason int

const (
	// ReasonNone is the reason of an accepted result.
	ReasonNone Reason = iota
	// ReasonMissingInput means no message source was provided.
	ReasonMissingInput
	// ReasonStructuralMismatch means the message failed the combined grammar.
	ReasonStructuralMismatch
	// ReasonInvalidCategory means the extracted category is not a known code.
	ReasonInvalidCategory
	// ReasonInvalidSequence means the extracted sequence is not two digits.
	ReasonInvalidSequence
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonMissingInput:
		return "MissingInput"
	case ReasonStructuralMismatch:
		return "StructuralMismatch"
	case ReasonInvalidCategory:
		return "InvalidCategory"
	case ReasonInvalidSequence:
		return "InvalidSequence"
	default:
		return "Unknown"
	}
}

// MarshalText renders the reason by name in JSON output.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Code maps the reason onto the error taxonomy.
func (r Reason) Code() errors.ErrorCode {
	switch r {
	case ReasonNone:
		return ""
	case ReasonMissingInput:
		return errors.CodeMissingInput
	case ReasonStructuralMismatch:
		return errors.CodeStructuralMismatch
	case ReasonInvalidCategory:
		return errors.CodeInvalidCategory
	case ReasonInvalidSequence:
		return errors.CodeInvalidSequence
	default:
		return errors.CodeUnknown
	}
}

// reasonFor is the inverse of Reason.Code.
func reasonFor(code errors.ErrorCode) Reason {
	switch code {
	case errors.CodeMissingInput:
		return ReasonMissingInput
	case errors.CodeStructuralMismatch:
		return ReasonStructuralMismatch
	case errors.CodeInvalidCategory:
		return ReasonInvalidCategory
	case errors.CodeInvalidSequence:
		return ReasonInvalidSequence
	default:
		return ReasonNone
	}
}

// Result is the verdict of one validation run. It is built once and not
// modified afterwards.
type Result struct {
	accepted bool
	reason   Reason
	detail   string
	tag      tag.Tag
	issues   []Issue
}

// Accepted builds an accepting result for t.
func Accepted(t tag.Tag) Result {
	return Result{accepted: true, tag: t}
}

// Rejected builds a rejecting result. Issues are copied.
func Rejected(reason Reason, detail string, issues ...Issue) Result {
	r := Result{reason: reason, detail: detail}
	if len(issues) > 0 {
		r.issues = make([]Issue, len(issues))
		copy(r.issues, issues)
	}
	return r
}

// MissingInput builds the result for an absent message source.
func MissingInput(detail string) Result {
	return Rejected(ReasonMissingInput, detail, NewIssue("input", errors.CodeMissingInput, detail))
}

// IsAccepted reports whether the message was accepted.
func (r Result) IsAccepted() bool {
	return r.accepted
}

// Reason returns the rejection reason, or ReasonNone.
func (r Result) Reason() Reason {
	return r.reason
}

// Detail returns the rejection detail.
func (r Result) Detail() string {
	return r.detail
}

// Tag returns the parsed tag of an accepted message.
func (r Result) Tag() (tag.Tag, bool) {
	return r.tag, r.accepted
}

// Issues returns a copy of every issue recorded, blocking and advisory.
func (r Result) Issues() []Issue {
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// Hints returns the advisory issues.
func (r Result) Hints() []Issue {
	var out []Issue
	for _, i := range r.issues {
		if !i.Blocking() {
			out = append(out, i)
		}
	}
	return out
}

// Err converts a rejection to a coded error. It returns nil when accepted.
func (r Result) Err() error {
	if r.accepted {
		return nil
	}
	return errors.New(r.reason.Code(), r.detail)
}
