// Package report renders validation outcomes for the CLI.
//
// The core validator reports problems as plain data; this package owns the
// user-visible presentation, in human-readable text (colorized on capable
// terminals) or machine-readable JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Result is the outcome of validating one skill document.
type Result struct {
	// Valid is true when no problems were found.
	Valid bool `json:"valid"`
	// Path is the validated skill path, empty for inline input.
	Path string `json:"path,omitempty"`
	// Problems lists the validation findings, nil when valid.
	Problems []string `json:"problems,omitempty"`
}

// NewResult builds a Result from a problem list.
func NewResult(path string, problems []string) *Result {
	r := &Result{
		Valid: len(problems) == 0,
		Path:  path,
	}
	if len(problems) > 0 {
		r.Problems = problems
	}
	return r
}

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a Reporter writing to out in the given format.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Report writes the result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

func (r *Reporter) reportText(result *Result) error {
	if result.Valid {
		fmt.Fprintln(r.out, color.GreenString("✓ Skill is valid"))
		return nil
	}

	fmt.Fprintf(r.out, "%s: %s\n\n",
		color.RedString("✗ Skill validation failed"),
		fmt.Sprintf("%d problem(s)", len(result.Problems)))

	for _, p := range result.Problems {
		fmt.Fprintf(r.out, "  • %s\n", p)
	}
	return nil
}
