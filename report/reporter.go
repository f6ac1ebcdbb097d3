// Package report renders validation verdicts for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/tag"
	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/validate"
)

// Format represents the output format for reporting a verdict.
type Format int

const (
	// FormatText outputs a human-readable diagnostic with remediation guidance.
	FormatText Format = iota
	// FormatJSON outputs a single JSON document.
	FormatJSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unsupported format: %q", s)
	}
}

// Delimiter separates the diagnostic from the guidance in text output.
const Delimiter = "----------------------------------------"

// Reporter writes verdicts to an output writer.
type Reporter struct {
	writer io.Writer
	format Format
}

// NewReporter creates a new Reporter with the specified output writer and format.
func NewReporter(writer io.Writer, format Format) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Report writes the result in the reporter's format.
func (r *Reporter) Report(result validate.Result) error {
	switch r.format {
	case FormatText:
		return r.reportText(result)
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) reportText(result validate.Result) error {
	var b strings.Builder

	if t, ok := result.Tag(); ok {
		fmt.Fprintf(&b, "Commit message accepted: %s\n", t)
		return r.write(b.String())
	}

	fmt.Fprintf(&b, "ERROR: %s: %s\n", result.Reason(), result.Detail())
	for _, h := range result.Hints() {
		fmt.Fprintf(&b, "hint: %s\n", h.Message)
	}
	b.WriteString(Delimiter + "\n")
	b.WriteString(Guidance())

	return r.write(b.String())
}

func (r *Reporter) write(s string) error {
	if _, err := io.WriteString(r.writer, s); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}

// Guidance returns the remediation text listing the format and valid categories.
func Guidance() string {
	var b strings.Builder
	b.WriteString("Commit messages must follow the format:\n")
	b.WriteString("  CATEGORY-NN: Title\n")
	b.WriteString("\n")
	b.WriteString("Valid categories:\n")
	for _, c := range tag.Categories() {
		fmt.Fprintf(&b, "  %-4s %s\n", c, c.Description())
	}
	b.WriteString("\n")
	b.WriteString("NN is a two digit sequence number.\n")
	fmt.Fprintf(&b, "Example: %q\n", tag.Example)
	return b.String()
}

type jsonReport struct {
	Accepted bool             `json:"accepted"`
	Reason   string           `json:"reason,omitempty"`
	Code     string           `json:"code,omitempty"`
	Detail   string           `json:"detail,omitempty"`
	Tag      *tag.Tag         `json:"tag,omitempty"`
	Issues   []validate.Issue `json:"issues,omitempty"`
}

func (r *Reporter) reportJSON(result validate.Result) error {
	out := jsonReport{Accepted: result.IsAccepted()}
	if t, ok := result.Tag(); ok {
		out.Tag = &t
	} else {
		out.Reason = result.Reason().String()
		out.Code = result.Reason().Code().String()
		out.Detail = result.Detail()
		out.Issues = result.Issues()
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
