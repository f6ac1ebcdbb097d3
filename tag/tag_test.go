package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Run("accepts every known category", func(t *testing.T) {
		for _, c := range Categories() {
			got, err := ParseCategory(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	})

	t.Run("rejects unknown and lowercase codes", func(t *testing.T) {
		for _, s := range []string{"", "XY", "fe", "Doc", "FE ", "FEAT"} {
			_, err := ParseCategory(s)
			assert.Error(t, err, s)
		}
	})
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		wantInt int
	}{
		{in: "00", wantInt: 0},
		{in: "01", wantInt: 1},
		{in: "42", wantInt: 42},
		{in: "99", wantInt: 99},
		{in: "", wantErr: true},
		{in: "1", wantErr: true},
		{in: "001", wantErr: true},
		{in: "1a", wantErr: true},
		{in: " 1", wantErr: true},
		{in: "٠١", wantErr: true}, // non-ASCII digits
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			seq, err := ParseSequence(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantInt, seq.Int())
			assert.Equal(t, tt.in, seq.String())
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{name: "reference example", message: Example, want: true},
		{name: "every category", message: "DOC-10: Update README", want: true},
		{name: "trailing newline", message: "BE-02: Add endpoint\n", want: true},
		{name: "multi-line body", message: "CI-03: Cache modules\n\nSpeeds up builds.\n", want: true},
		{name: "title of whitespace", message: "QE-04:  ", want: true},
		{name: "lowercase category", message: "fe-01: lowercase category", want: false},
		{name: "single digit", message: "FE-1: single digit sequence", want: false},
		{name: "three digits", message: "FE-001: three digits", want: false},
		{name: "unknown category", message: "XY-01: unknown category", want: false},
		{name: "no space after colon", message: "FE-01:no space before title", want: false},
		{name: "empty title", message: "FE-01: ", want: false},
		{name: "empty title then body", message: "FE-01: \nbody", want: false},
		{name: "empty", message: "", want: false},
		{name: "tag on second line", message: "WIP\nFE-01: later", want: false},
		{name: "leading space", message: " FE-01: indented", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.message))
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("extracts fields from the first line", func(t *testing.T) {
		got, err := Parse("DEV-07: Add make target\n\nLonger body text")
		require.NoError(t, err)
		assert.Equal(t, CategoryDEV, got.Category)
		assert.Equal(t, Sequence("07"), got.Sequence)
		assert.Equal(t, "Add make target", got.Title)
		assert.Equal(t, "DEV-07", got.String())
	})

	t.Run("keeps colons inside the title", func(t *testing.T) {
		got, err := Parse("BE-12: Fix parser: handle empty input")
		require.NoError(t, err)
		assert.Equal(t, "Fix parser: handle empty input", got.Title)
	})

	t.Run("rejects malformed messages", func(t *testing.T) {
		_, err := Parse("not a tag")
		assert.Error(t, err)
	})
}

func TestCategoriesIsACopy(t *testing.T) {
	cs := Categories()
	require.Len(t, cs, 6)
	cs[0] = "ZZ"
	assert.Equal(t, CategoryFE, Categories()[0])
}

func TestPatternText(t *testing.T) {
	assert.Equal(t, `^(FE|BE|CI|DEV|QE|DOC)-[0-9]{2}: .+`, Pattern())
}
