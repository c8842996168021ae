package utils

import (
	"fmt"
	"go/format"

	"golang.org/x/tools/imports"
)

// FormatGoSource formats generated Go source and fixes up its import block.
// When goimports-style processing fails the plain gofmt pass is tried, and
// when that fails too the unformatted source is returned alongside the
// error so the author can inspect what was generated.
func FormatGoSource(filename string, source []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, source, nil)
	if err == nil {
		return formatted, nil
	}

	gofmted, fmtErr := format.Source(source)
	if fmtErr == nil {
		return gofmted, nil
	}

	return source, fmt.Errorf("generated source does not format: %w", err)
}
