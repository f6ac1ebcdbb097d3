package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConventionalCommitHint(t *testing.T) {
	rule := ConventionalCommitHint()

	t.Run("suggests a mapped category", func(t *testing.T) {
		issues := rule.Check(NewContext("docs: explain the hook"))
		require.Len(t, issues, 1)
		assert.Equal(t, HintConventional, issues[0].Rule)
		assert.Equal(t, SeverityInfo, issues[0].Severity)
		assert.Contains(t, issues[0].Message, `"docs"`)
		assert.Contains(t, issues[0].Message, "DOC-01")
	})

	t.Run("suggests a generic tag for unmapped types", func(t *testing.T) {
		issues := rule.Check(NewContext("feat(ui): add menu\n\nbody"))
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Message, "FE-01")
		assert.Equal(t, "feat", issues[0].Context["type"])
	})

	t.Run("ignores other subjects", func(t *testing.T) {
		for _, msg := range []string{"", "Update things", "fe-01: lowercase", "XY-01: unknown"} {
			assert.Empty(t, rule.Check(NewContext(msg)), msg)
		}
	})
}

func TestCategoryCaseHint(t *testing.T) {
	rule := CategoryCaseHint()

	issues := rule.Check(NewContext("doc-03: lowercase"))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"DOC"`)

	for _, msg := range []string{"FE-01: already upper", "xy-01: unknown", "fe-1: two problems", "nodash"} {
		assert.Empty(t, rule.Check(NewContext(msg)), msg)
	}
}

func TestSequenceDigitsHint(t *testing.T) {
	rule := SequenceDigitsHint()

	issues := rule.Check(NewContext("BE-7: add cache"))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"07"`)

	for _, msg := range []string{"BE-07: fine", "XY-7: unknown", "BE-7:no space", "BE-: empty", "BE-x: letter"} {
		assert.Empty(t, rule.Check(NewContext(msg)), msg)
	}
}
