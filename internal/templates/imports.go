package templates

import (
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/depstub/depstub/internal/models"
)

// Import is one import declaration of a generated file
type Import struct {
	Alias string // "" when the path's base name already matches
	Path  string
}

// ComputeImports merges the imports synthesis introduced (runtime package,
// context, placeholder imports) with the manifest-declared imports whose
// alias is actually referenced by a generated declaration. Unreferenced
// declarations are dropped so generated files never carry unused imports.
func ComputeImports(declared map[string]string, interfaces []*models.GeneratedInterface) []Import {
	set := make(map[string]Import)

	for _, gen := range interfaces {
		for _, p := range gen.Imports {
			set[p] = Import{Path: p}
		}
	}

	for alias, importPath := range declared {
		if _, exists := set[importPath]; exists {
			continue
		}
		if !aliasReferenced(alias, interfaces) {
			continue
		}
		imp := Import{Path: importPath}
		if path.Base(importPath) != alias {
			imp.Alias = alias
		}
		set[importPath] = imp
	}

	imports := make([]Import, 0, len(set))
	for _, imp := range set {
		imports = append(imports, imp)
	}
	sort.Slice(imports, func(i, j int) bool { return imports[i].Path < imports[j].Path })
	return imports
}

// aliasReferenced reports whether `alias.` appears in any generated
// declaration text of the batch
func aliasReferenced(alias string, interfaces []*models.GeneratedInterface) bool {
	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\.`)
	for _, gen := range interfaces {
		for _, field := range gen.Fields {
			if pattern.MatchString(field.FuncType) || pattern.MatchString(field.Default) {
				return true
			}
		}
		for _, wrapper := range gen.Wrappers {
			for _, arg := range wrapper.Params {
				if pattern.MatchString(arg.Type) {
					return true
				}
			}
			if pattern.MatchString(strings.Join(wrapper.Forward, " ")) {
				return true
			}
		}
	}
	return false
}

// stdlib reports whether an import path belongs to the standard library;
// the first path segment of a module path always carries a dot
func stdlib(importPath string) bool {
	first, _, _ := strings.Cut(importPath, "/")
	return !strings.Contains(first, ".")
}
