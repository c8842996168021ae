package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// manifestSuffix is what a depstub manifest file is expected to end with
const manifestSuffix = ".depstub.yaml"

// DiscoverManifests resolves CLI path arguments to manifest files. A
// directory is scanned for *.depstub.yaml files; the Go-style "dir/..."
// pattern scans recursively; plain files are taken as-is.
func DiscoverManifests(args []string) ([]string, error) {
	var manifests []string

	for _, arg := range args {
		recursive := false
		path := arg
		if strings.HasSuffix(path, "/...") {
			recursive = true
			path = strings.TrimSuffix(path, "/...")
			if path == "" {
				path = "."
			}
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if !info.IsDir() {
			manifests = append(manifests, path)
			continue
		}

		found, err := scanDirectory(path, recursive)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, found...)
	}

	sort.Strings(manifests)
	return dedupe(manifests), nil
}

func scanDirectory(dir string, recursive bool) ([]string, error) {
	var manifests []string

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), manifestSuffix) {
				manifests = append(manifests, filepath.Join(dir, entry.Name()))
			}
		}
		return manifests, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden and vendor directories during recursive scans
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), manifestSuffix) {
			manifests = append(manifests, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	return manifests, nil
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	result := paths[:0]
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	return result
}
