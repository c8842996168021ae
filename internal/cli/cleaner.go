package cli

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/depstub/depstub/internal/templates"
)

// Cleaner removes generated *_depstub.go files
type Cleaner struct {
	removed []string
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// RemovedFiles returns the files deleted by the last Clean call
func (c *Cleaner) RemovedFiles() []string {
	return c.removed
}

// Clean deletes generated files under the given paths. Only files that both
// carry the _depstub.go suffix and open with the generated-code header are
// touched, so hand-written files are never at risk.
func (c *Cleaner) Clean(paths []string) error {
	c.removed = nil

	for _, arg := range paths {
		path := strings.TrimSuffix(arg, "/...")
		if path == "" {
			path = "."
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if !info.IsDir() {
			if err := c.cleanFile(path); err != nil {
				return err
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if p != path && (strings.HasPrefix(name, ".") || name == "vendor") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(d.Name(), "_depstub.go") {
				return c.cleanFile(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to clean %s: %w", arg, err)
		}
	}

	return nil
}

func (c *Cleaner) cleanFile(path string) error {
	generated, err := isGeneratedFile(path)
	if err != nil {
		return err
	}
	if !generated {
		return nil
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	c.removed = append(c.removed, path)
	return nil
}

// isGeneratedFile reports whether the file's first line is the generated-code
// header
func isGeneratedFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	return strings.TrimSpace(scanner.Text()) == templates.Header, nil
}
