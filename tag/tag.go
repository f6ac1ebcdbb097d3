// Package tag defines the structured prefix every commit message must start with.
//
// A tag has the form CATEGORY-NN followed by ": " and a title, for example
//
//	FE-01: Implement navigation bar
//
// Category is a closed enumeration and Sequence is a fixed-width two digit
// identifier. Both are parsed explicitly rather than by sub-pattern matching.
package tag

import (
	"fmt"
	"regexp"
	"strings"
)

// Category identifies the kind of change a commit makes.
type Category string

const (
	// CategoryFE is a frontend change.
	CategoryFE Category = "FE"
	// CategoryBE is a backend change.
	CategoryBE Category = "BE"
	// CategoryCI is a continuous integration change.
	CategoryCI Category = "CI"
	// CategoryDEV is a developer tooling change.
	CategoryDEV Category = "DEV"
	// CategoryQE is a quality engineering change.
	CategoryQE Category = "QE"
	// CategoryDOC is a documentation change.
	CategoryDOC Category = "DOC"
)

// categories is the closed set in display order.
var categories = []Category{
	CategoryFE,
	CategoryBE,
	CategoryCI,
	CategoryDEV,
	CategoryQE,
	CategoryDOC,
}

// Example is a well-formed message shown in remediation guidance.
const Example = "FE-01: Implement navigation bar"

const (
	// CategorySeparator separates the category from the sequence.
	CategorySeparator = "-"
	// TitleSeparator separates the sequence from the title.
	TitleSeparator = ": "
)

// pattern is the full grammar. It anchors at the start of the text only;
// '.' does not cross a newline so the title must be non-empty on the first line.
var pattern = regexp.MustCompile(`^(` + strings.Join(categoryStrings(), "|") + `)-[0-9]{2}: .+`)

func categoryStrings() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// Categories returns the valid categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Pattern returns the textual grammar pattern.
func Pattern() string {
	return pattern.String()
}

// String returns the category code.
func (c Category) String() string {
	return string(c)
}

// Description returns a short explanation of the category.
func (c Category) Description() string {
	switch c {
	case CategoryFE:
		return "frontend"
	case CategoryBE:
		return "backend"
	case CategoryCI:
		return "continuous integration"
	case CategoryDEV:
		return "developer tooling"
	case CategoryQE:
		return "quality engineering"
	case CategoryDOC:
		return "documentation"
	default:
		return ""
	}
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts s to a Category. Matching is case-sensitive.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%q is not one of %s", s, strings.Join(categoryStrings(), ", "))
	}
	return c, nil
}

// Sequence is a two digit identifier such as "01".
type Sequence string

// String returns the sequence as written.
func (s Sequence) String() string {
	return string(s)
}

// Int returns the numeric value of the sequence.
func (s Sequence) Int() int {
	if len(s) != 2 {
		return 0
	}
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

// ParseSequence accepts exactly two ASCII digits.
func ParseSequence(s string) (Sequence, error) {
	if len(s) != 2 {
		return "", fmt.Errorf("%q must be exactly two digits, got %d characters", s, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("%q must be exactly two digits, %q is not a digit", s, s[i])
		}
	}
	return Sequence(s), nil
}

// Tag is the parsed prefix of a commit message.
type Tag struct {
	Category Category `json:"category"`
	Sequence Sequence `json:"sequence"`
	Title    string   `json:"title"`
}

// String renders the tag prefix, e.g. "FE-01".
func (t Tag) String() string {
	return t.Category.String() + CategorySeparator + t.Sequence.String()
}

// Matches reports whether message satisfies the full grammar.
func Matches(message string) bool {
	return pattern.MatchString(message)
}

// Parse extracts a Tag from a message that satisfies the grammar.
// The title is the rest of the first line after ": ".
func Parse(message string) (Tag, error) {
	if !Matches(message) {
		return Tag{}, fmt.Errorf("message does not match %s", pattern.String())
	}

	catEnd := strings.Index(message, CategorySeparator)
	seqEnd := catEnd + 1 + strings.Index(message[catEnd+1:], ":")

	category, err := ParseCategory(message[:catEnd])
	if err != nil {
		return Tag{}, err
	}
	sequence, err := ParseSequence(message[catEnd+1 : seqEnd])
	if err != nil {
		return Tag{}, err
	}

	title := message[seqEnd+len(TitleSeparator):]
	if nl := strings.IndexByte(title, '\n'); nl >= 0 {
		title = title[:nl]
	}

	return Tag{Category: category, Sequence: sequence, Title: title}, nil
}
