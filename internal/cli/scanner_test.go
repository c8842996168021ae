package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("package: demo\n"), 0o644))
}

func TestDiscoverManifestsSingleFile(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "player.depstub.yaml")
	touch(t, manifest)

	found, err := DiscoverManifests([]string{manifest})
	require.NoError(t, err)
	assert.Equal(t, []string{manifest}, found)
}

func TestDiscoverManifestsDirectoryIsNotRecursive(t *testing.T) {
	dir := t.TempDir()
	top := filepath.Join(dir, "player.depstub.yaml")
	nested := filepath.Join(dir, "nested", "deep.depstub.yaml")
	touch(t, top)
	touch(t, nested)
	touch(t, filepath.Join(dir, "notes.yaml")) // wrong suffix

	found, err := DiscoverManifests([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{top}, found)
}

func TestDiscoverManifestsRecursivePattern(t *testing.T) {
	dir := t.TempDir()
	top := filepath.Join(dir, "player.depstub.yaml")
	nested := filepath.Join(dir, "nested", "deep.depstub.yaml")
	skippedVendor := filepath.Join(dir, "vendor", "dep.depstub.yaml")
	skippedHidden := filepath.Join(dir, ".git", "hook.depstub.yaml")
	touch(t, top)
	touch(t, nested)
	touch(t, skippedVendor)
	touch(t, skippedHidden)

	found, err := DiscoverManifests([]string{dir + "/..."})
	require.NoError(t, err)
	assert.Equal(t, []string{nested, top}, found)
}

func TestDiscoverManifestsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "player.depstub.yaml")
	touch(t, manifest)

	found, err := DiscoverManifests([]string{manifest, dir, dir + "/..."})
	require.NoError(t, err)
	assert.Equal(t, []string{manifest}, found)
}

func TestDiscoverManifestsMissingPath(t *testing.T) {
	_, err := DiscoverManifests([]string{filepath.Join(t.TempDir(), "absent")})
	assert.Error(t, err)
}
