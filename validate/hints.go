package validate

import (
	"fmt"
	"strings"

	"github.com/leodido/go-conventionalcommits"
	"github.com/leodido/go-conventionalcommits/parser"

	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/tag"
)

// Hint rule names.
const (
	HintConventional = "hint-conventional-commit"
	HintCase         = "hint-category-case"
	HintDigits       = "hint-sequence-digits"
)

// conventionalCategories suggests a category for Conventional Commit types
// with an obvious counterpart.
var conventionalCategories = map[string]tag.Category{
	"ci":    tag.CategoryCI,
	"docs":  tag.CategoryDOC,
	"test":  tag.CategoryQE,
	"build": tag.CategoryDEV,
	"chore": tag.CategoryDEV,
}

// ConventionalCommitHint recognises Conventional Commit subjects such as
// "feat(ui): add menu" and suggests the tag form instead.
//
//nolint:ireturn // Builder functions should return interfaces
func ConventionalCommitHint() Rule {
	return SimpleRule(HintConventional, "Suggests a tag when the subject is a Conventional Commit",
		func(ctx *Context) []Issue {
			line := ctx.FirstLine()
			if line == "" {
				return nil
			}

			machine := parser.NewMachine(conventionalcommits.WithTypes(conventionalcommits.TypesConventional))
			msg, err := machine.Parse([]byte(line))
			if err != nil || msg == nil {
				return nil
			}
			cc, ok := msg.(*conventionalcommits.ConventionalCommit)
			if !ok || cc.Type == "" {
				return nil
			}

			suggestion := "a tag such as FE-01"
			if c, ok := conventionalCategories[cc.Type]; ok {
				suggestion = fmt.Sprintf("a tag such as %s-01", c)
			}
			return []Issue{
				NewHint(HintConventional, fmt.Sprintf(
					"subject looks like a Conventional Commit of type %q; replace the type with %s",
					cc.Type, suggestion)).
					WithContext("type", cc.Type),
			}
		})
}

// CategoryCaseHint flags a category written in the wrong case.
//
//nolint:ireturn // Builder functions should return interfaces
func CategoryCaseHint() Rule {
	return SimpleRule(HintCase, "Flags categories that only fail because of letter case",
		func(ctx *Context) []Issue {
			line := ctx.FirstLine()
			i := strings.Index(line, tag.CategorySeparator)
			if i <= 0 {
				return nil
			}
			prefix := line[:i]
			upper := strings.ToUpper(prefix)
			if upper == prefix || !tag.Matches(upper+line[i:]) {
				return nil
			}
			return []Issue{
				NewHint(HintCase, fmt.Sprintf("categories are case-sensitive; use %q instead of %q", upper, prefix)),
			}
		})
}

// SequenceDigitsHint flags a single digit sequence after a valid category.
//
//nolint:ireturn // Builder functions should return interfaces
func SequenceDigitsHint() Rule {
	return SimpleRule(HintDigits, "Flags sequences that are missing a leading zero",
		func(ctx *Context) []Issue {
			line := ctx.FirstLine()
			i := strings.Index(line, tag.CategorySeparator)
			if i <= 0 {
				return nil
			}
			if _, err := tag.ParseCategory(line[:i]); err != nil {
				return nil
			}
			rest := line[i+1:]
			if len(rest) < 2 || rest[0] < '0' || rest[0] > '9' || rest[1] != ':' {
				return nil
			}
			padded := line[:i+1] + "0" + rest
			if !tag.Matches(padded) {
				return nil
			}
			return []Issue{
				NewHint(HintDigits, fmt.Sprintf("sequence must be two digits; use %q instead of %q",
					"0"+rest[:1], rest[:1])),
			}
		})
}

// DefaultHints returns the advisory rules run after a structural mismatch.
func DefaultHints() []Rule {
	return []Rule{
		ConventionalCommitHint(),
		CategoryCaseHint(),
		SequenceDigitsHint(),
	}
}
