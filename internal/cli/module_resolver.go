package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// ModuleResolver resolves Go module information for generated imports
type ModuleResolver struct {
	customModule string
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{}
}

// SetCustomModule overrides go.mod module detection with an explicit path
func (r *ModuleResolver) SetCustomModule(modulePath string) {
	r.customModule = modulePath
}

// ResolveModulePath finds the go.mod enclosing dir and returns its module
// path, unless a custom module override is set
func (r *ModuleResolver) ResolveModulePath(dir string) (string, error) {
	if r.customModule != "" {
		return r.customModule, nil
	}

	root, err := findModuleRoot(dir)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	file, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if file.Module == nil || file.Module.Mod.Path == "" {
		return "", fmt.Errorf("module declaration not found in %s", filepath.Join(root, "go.mod"))
	}

	return file.Module.Mod.Path, nil
}

// ExpandImportPath turns a relative manifest import declaration such as
// "./internal/player" into the full module-qualified import path for the
// manifest's directory. Absolute import paths pass through unchanged.
func (r *ModuleResolver) ExpandImportPath(manifestDir, declared string) (string, error) {
	if !strings.HasPrefix(declared, "./") && !strings.HasPrefix(declared, "../") {
		return declared, nil
	}

	root, err := findModuleRoot(manifestDir)
	if err != nil {
		return "", err
	}

	modulePath, err := r.ResolveModulePath(manifestDir)
	if err != nil {
		return "", err
	}

	target, err := filepath.Abs(filepath.Join(manifestDir, declared))
	if err != nil {
		return "", fmt.Errorf("failed to resolve import directory %s: %w", declared, err)
	}

	rel, err := filepath.Rel(root, target)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("import %s escapes the module rooted at %s", declared, root)
	}

	if rel == "." {
		return modulePath, nil
	}
	return modulePath + "/" + filepath.ToSlash(rel), nil
}

// findModuleRoot walks up from dir looking for a go.mod file
func findModuleRoot(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		current = parent
	}
}
