package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depstub/depstub/internal/errors"
	"github.com/depstub/depstub/internal/registry"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "player.depstub.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDecodesBothEndpointShapes(t *testing.T) {
	path := writeManifest(t, `
package: audioplayer

imports:
  uuid: github.com/google/uuid

interfaces:
  - name: AudioPlayerClient
    doc: controls the audio playback engine.
    endpoints:
      - "Play() async throws"
      - signature: "Now() -> time.Time"
        ignored: true
        default: time.Now
`)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "audioplayer", m.Package)
	assert.Equal(t, path, m.Path)
	assert.Equal(t, "github.com/google/uuid", m.Imports["uuid"])

	require.Len(t, m.Interfaces, 1)
	decl := m.Interfaces[0]
	assert.Equal(t, "AudioPlayerClient", decl.Name)
	require.Len(t, decl.Endpoints, 2)

	assert.Equal(t, "Play() async throws", decl.Endpoints[0].Signature)
	assert.False(t, decl.Endpoints[0].Ignored)

	assert.Equal(t, "Now() -> time.Time", decl.Endpoints[1].Signature)
	assert.True(t, decl.Endpoints[1].Ignored)
	assert.Equal(t, "time.Now", decl.Endpoints[1].Default)
}

func TestLoadRequiresPackage(t *testing.T) {
	path := writeManifest(t, `
interfaces:
  - name: Client
    endpoints:
      - "Ping()"
`)

	_, err := Load(path)
	require.Error(t, err)
	genErr, ok := err.(*errors.BaseError)
	require.True(t, ok)
	assert.Equal(t, errors.ManifestSyntaxCode, genErr.Code)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := writeManifest(t, "package: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	genErr, ok := err.(*errors.BaseError)
	require.True(t, ok)
	assert.Equal(t, errors.ManifestSyntaxCode, genErr.Code)
}

func TestLoadReportsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.depstub.yaml"))
	require.Error(t, err)
	genErr, ok := err.(*errors.BaseError)
	require.True(t, ok)
	assert.Equal(t, errors.FileSystemErrorCode, genErr.Code)
}

func TestBuildTranslatesDeclarations(t *testing.T) {
	path := writeManifest(t, `
package: audioplayer

interfaces:
  - name: AudioPlayerClient
    endpoints:
      - "LoadTrack(trackID id: uuid.UUID) async throws -> Track"
      - "Pause()"
`)

	m, err := Load(path)
	require.NoError(t, err)

	interfaces, diags := m.Build()
	assert.False(t, diags.HasErrors())
	require.Len(t, interfaces, 1)

	iface := interfaces[0]
	assert.Equal(t, "AudioPlayerClient", iface.Name)
	require.Len(t, iface.Endpoints, 2)
	assert.Equal(t, "LoadTrack", iface.Endpoints[0].Name)
	assert.True(t, iface.Endpoints[0].Effects.Suspends)
	assert.Equal(t, "Pause", iface.Endpoints[1].Name)
}

func TestBuildDropsMalformedInterfaceOnly(t *testing.T) {
	path := writeManifest(t, `
package: audioplayer

interfaces:
  - name: Broken
    endpoints:
      - "not a signature ("
  - name: Fine
    endpoints:
      - "Ping()"
`)

	m, err := Load(path)
	require.NoError(t, err)

	interfaces, diags := m.Build()
	assert.True(t, diags.HasErrors())
	assert.True(t, diags.HasCode(errors.SignatureSyntaxCode))

	require.Len(t, interfaces, 1)
	assert.Equal(t, "Fine", interfaces[0].Name)
}

func TestBuildRejectsDuplicateInterfaceNames(t *testing.T) {
	path := writeManifest(t, `
package: audioplayer

interfaces:
  - name: Client
    endpoints:
      - "Ping()"
  - name: Client
    endpoints:
      - "Pong()"
`)

	m, err := Load(path)
	require.NoError(t, err)

	interfaces, diags := m.Build()
	require.True(t, diags.HasErrors())
	assert.True(t, diags.HasCode(errors.DuplicateInterfaceNameCode))

	// The first declaration wins; the duplicate is dropped.
	require.Len(t, interfaces, 1)
	require.Len(t, interfaces[0].Endpoints, 1)
	assert.Equal(t, "Ping", interfaces[0].Endpoints[0].Name)
}

func TestBuildDiagnosticsCarryManifestLines(t *testing.T) {
	path := writeManifest(t, `package: audioplayer
interfaces:
  - name: Broken
    endpoints:
      - "Ping()"
      - "Broken("
`)

	m, err := Load(path)
	require.NoError(t, err)

	_, diags := m.Build()
	require.True(t, diags.HasErrors())

	diag := diags.All()[0]
	assert.Equal(t, path, diag.Err.Location().File)
	assert.Equal(t, 6, diag.Err.Location().Line)
}

func TestRegisterPlaceholders(t *testing.T) {
	path := writeManifest(t, `
package: audioplayer

placeholders:
  - type: Volume
    expr: Volume(1)
  - type: int
    expr: "42"

interfaces: []
`)

	m, err := Load(path)
	require.NoError(t, err)

	reg := registry.NewPlaceholderRegistry()
	diags := &errors.DiagnosticList{}
	m.RegisterPlaceholders(reg, diags)

	// The custom rule lands; the builtin conflict is diagnosed.
	assert.True(t, reg.Has("Volume"))
	assert.True(t, diags.HasCode(errors.PlaceholderConflictCode))
}
