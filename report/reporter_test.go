package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/validate"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: " JSON ", want: FormatJSON},
		{in: "sarif", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "unknown", Format(7).String())
}

func TestReportText(t *testing.T) {
	t.Run("accepted message prints a confirmation line", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewReporter(&buf, FormatText).Report(validate.Validate("FE-01: Implement navigation bar"))
		require.NoError(t, err)
		assert.Equal(t, "Commit message accepted: FE-01\n", buf.String())
	})

	t.Run("rejection prints reason, delimiter and guidance", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewReporter(&buf, FormatText).Report(validate.Validate("fe-01: lowercase"))
		require.NoError(t, err)

		out := buf.String()
		lines := strings.Split(out, "\n")
		assert.True(t, strings.HasPrefix(lines[0], "ERROR: StructuralMismatch: "))
		assert.True(t, strings.HasPrefix(lines[1], "hint: categories are case-sensitive"))
		assert.Equal(t, Delimiter, lines[2])
		for _, code := range []string{"FE", "BE", "CI", "DEV", "QE", "DOC"} {
			assert.Contains(t, out, "  "+code)
		}
		assert.Contains(t, out, `Example: "FE-01: Implement navigation bar"`)
	})

	t.Run("missing input uses its own reason", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewReporter(&buf, FormatText).Report(validate.MissingInput("no commit message file given"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(buf.String(), "ERROR: MissingInput: no commit message file given\n"+Delimiter))
	})

	t.Run("write errors are returned", func(t *testing.T) {
		err := NewReporter(failingWriter{}, FormatText).Report(validate.Validate("FE-01: ok"))
		assert.Error(t, err)
	})
}

func TestReportJSON(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewReporter(&buf, FormatJSON).Report(validate.Validate("BE-03: Add cache")))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, true, got["accepted"])
		assert.Equal(t, map[string]interface{}{
			"category": "BE",
			"sequence": "03",
			"title":    "Add cache",
		}, got["tag"])
		assert.NotContains(t, got, "reason")
	})

	t.Run("rejected", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewReporter(&buf, FormatJSON).Report(validate.Validate("XY-01: unknown")))

		var got struct {
			Accepted bool   `json:"accepted"`
			Reason   string `json:"reason"`
			Code     string `json:"code"`
			Issues   []struct {
				Rule     string `json:"rule"`
				Severity string `json:"severity"`
			} `json:"issues"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.False(t, got.Accepted)
		assert.Equal(t, "StructuralMismatch", got.Reason)
		assert.Equal(t, "STRUCTURAL_MISMATCH", got.Code)
		require.NotEmpty(t, got.Issues)
		assert.Equal(t, "structure", got.Issues[0].Rule)
		assert.Equal(t, "error", got.Issues[0].Severity)
	})
}

func TestReportUnsupportedFormat(t *testing.T) {
	err := NewReporter(&bytes.Buffer{}, Format(9)).Report(validate.Validate("FE-01: ok"))
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}
