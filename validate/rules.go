package validate

import (
	"fmt"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/errors"
	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/tag"
)

// Rule names.
const (
	RuleStructure = "structure"
	RuleCategory  = "category"
	RuleSequence  = "sequence"
)

// StructureRule matches the whole message against the tag grammar.
// It covers category, separators, digit count and title in one pass.
type StructureRule struct{}

// NewStructureRule creates a new structure rule.
func NewStructureRule() *StructureRule {
	return &StructureRule{}
}

// Name returns the unique identifier for this rule.
func (r *StructureRule) Name() string {
	return RuleStructure
}

// Description returns a human-readable description of what this rule checks.
func (r *StructureRule) Description() string {
	return "Message must match " + tag.Pattern()
}

// Check reports a structural mismatch when the grammar does not match.
func (r *StructureRule) Check(ctx *Context) []Issue {
	if tag.Matches(ctx.Message) {
		return nil
	}

	msg := fmt.Sprintf(
		"commit message must start with CATEGORY-NN: followed by a title, e.g. %q",
		tag.Example,
	)
	return []Issue{
		NewIssue(r.Name(), errors.CodeStructuralMismatch, msg).
			WithContext("first_line", ctx.FirstLine()),
	}
}

// CategoryRule re-checks the text before the first "-" against the category set.
type CategoryRule struct{}

// NewCategoryRule creates a new category rule.
func NewCategoryRule() *CategoryRule {
	return &CategoryRule{}
}

// Name returns the unique identifier for this rule.
func (r *CategoryRule) Name() string {
	return RuleCategory
}

// Description returns a human-readable description of what this rule checks.
func (r *CategoryRule) Description() string {
	return "Category before the first '-' must be one of " + categoryList()
}

// Check reports an invalid category.
func (r *CategoryRule) Check(ctx *Context) []Issue {
	field := ctx.CategoryField()
	if _, err := tag.ParseCategory(field); err != nil {
		return []Issue{
			NewIssue(r.Name(), errors.CodeInvalidCategory,
				fmt.Sprintf("invalid category %q, expected one of %s", field, categoryList())).
				WithContext("category", field),
		}
	}
	return nil
}

// SequenceRule re-checks the text between the first "-" and the following ":"
// as a two digit sequence.
type SequenceRule struct{}

// NewSequenceRule creates a new sequence rule.
func NewSequenceRule() *SequenceRule {
	return &SequenceRule{}
}

// Name returns the unique identifier for this rule.
func (r *SequenceRule) Name() string {
	return RuleSequence
}

// Description returns a human-readable description of what this rule checks.
func (r *SequenceRule) Description() string {
	return "Sequence between '-' and ':' must be exactly two digits"
}

// Check reports an invalid sequence.
func (r *SequenceRule) Check(ctx *Context) []Issue {
	field := ctx.SequenceField()
	if _, err := tag.ParseSequence(field); err != nil {
		return []Issue{
			NewIssue(r.Name(), errors.CodeInvalidSequence,
				fmt.Sprintf("invalid sequence %q, expected exactly two digits such as 01", field)).
				WithContext("sequence", field),
		}
	}
	return nil
}

// DefaultRules returns the ordered pipeline: structure, category, sequence.
func DefaultRules() []Rule {
	return []Rule{
		NewStructureRule(),
		NewCategoryRule(),
		NewSequenceRule(),
	}
}

func categoryList() string {
	cs := tag.Categories()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
