package errors

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic as fatal or advisory
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns the string representation of the severity
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one structured compile-time message produced during generation
type Diagnostic struct {
	Severity Severity
	Err      *BaseError
}

// String formats the diagnostic the way a compiler would
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Err.Code, d.Err.Error())
}

// DiagnosticList collects the diagnostics emitted while generating one batch
type DiagnosticList struct {
	items []Diagnostic
}

// Error records a fatal diagnostic
func (l *DiagnosticList) Error(err *BaseError) {
	l.items = append(l.items, Diagnostic{Severity: SeverityError, Err: err})
}

// Warn records an advisory diagnostic
func (l *DiagnosticList) Warn(err *BaseError) {
	l.items = append(l.items, Diagnostic{Severity: SeverityWarning, Err: err})
}

// Merge appends all diagnostics from another list
func (l *DiagnosticList) Merge(other *DiagnosticList) {
	if other == nil {
		return
	}
	l.items = append(l.items, other.items...)
}

// HasErrors returns true if any fatal diagnostic was recorded
func (l *DiagnosticList) HasErrors() bool {
	for _, d := range l.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasCode returns true if any diagnostic carries the given error code
func (l *DiagnosticList) HasCode(code ErrorCode) bool {
	for _, d := range l.items {
		if d.Err.Code == code {
			return true
		}
	}
	return false
}

// All returns every recorded diagnostic in emission order
func (l *DiagnosticList) All() []Diagnostic {
	return l.items
}

// Count returns the number of recorded diagnostics
func (l *DiagnosticList) Count() int {
	return len(l.items)
}

// IsEmpty returns true if nothing was recorded
func (l *DiagnosticList) IsEmpty() bool {
	return len(l.items) == 0
}

// Summary formats all diagnostics as a multi-line report
func (l *DiagnosticList) Summary() string {
	if len(l.items) == 0 {
		return "no diagnostics"
	}
	var lines []string
	for _, d := range l.items {
		lines = append(lines, d.String())
	}
	return strings.Join(lines, "\n")
}
