package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/depstub/depstub/internal/errors"
)

// DiagnosticReporter prints generation diagnostics the way a compiler
// would: location, severity, code, message, then suggestions.
type DiagnosticReporter struct {
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{verbose: verbose}
}

// ReportDiagnostics prints every diagnostic in the list
func (r *DiagnosticReporter) ReportDiagnostics(diags *errors.DiagnosticList) {
	for _, diag := range diags.All() {
		r.reportOne(diag)
	}
}

func (r *DiagnosticReporter) reportOne(diag errors.Diagnostic) {
	label := color.New(color.FgRed, color.Bold)
	if diag.Severity == errors.SeverityWarning {
		label = color.New(color.FgYellow, color.Bold)
	}

	if loc := diag.Err.Location(); !loc.IsEmpty() {
		fmt.Fprintf(os.Stderr, "%s: ", loc)
	}
	label.Fprintf(os.Stderr, "%s", diag.Severity)
	fmt.Fprintf(os.Stderr, " [%s]: %s\n", diag.Err.Code, diag.Err.Message)

	for _, hint := range diag.Err.Suggestions() {
		fmt.Fprintf(os.Stderr, "    hint: %s\n", hint)
	}

	if r.verbose && diag.Err.Cause != nil {
		fmt.Fprintf(os.Stderr, "    cause: %s\n", diag.Err.Cause)
	}
}

// ReportError prints a plain error that is not a structured diagnostic
func (r *DiagnosticReporter) ReportError(err error) {
	label := color.New(color.FgRed, color.Bold)
	label.Fprint(os.Stderr, "error")

	if genErr, ok := err.(*errors.BaseError); ok {
		fmt.Fprintf(os.Stderr, " [%s]: %s\n", genErr.Code, genErr.Error())
		for _, hint := range genErr.Suggestions() {
			fmt.Fprintf(os.Stderr, "    hint: %s\n", hint)
		}
		return
	}

	fmt.Fprintf(os.Stderr, ": %s\n", err)
}
