package templates

import (
	"go/format"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depstub/depstub/internal/models"
	"github.com/depstub/depstub/internal/registry"
	"github.com/depstub/depstub/internal/synth"
)

func renderInterface(t *testing.T, iface *models.Interface, declared map[string]string) string {
	t.Helper()

	gen, diags := synth.New(registry.NewPlaceholderRegistry()).Synthesize(iface)
	require.NotNil(t, gen, "diagnostics: %s", diags.Summary())

	file := File{
		Package:    "audioplayer",
		Imports:    ComputeImports(declared, []*models.GeneratedInterface{gen}),
		Interfaces: []*models.GeneratedInterface{gen},
	}

	content, err := Render(file)
	require.NoError(t, err)
	return content
}

func TestRenderProducesValidGoSource(t *testing.T) {
	iface := &models.Interface{
		Name: "AudioPlayerClient",
		Doc:  "controls the audio playback engine.",
		Endpoints: []models.Endpoint{
			{
				Name:       "LoadTrack",
				Parameters: []models.Parameter{{Label: "trackID", Name: "id", Type: "uuid.UUID"}},
				Effects:    models.Effects{Suspends: true, Fails: true},
				Return:     "Track",
				Signature:  "LoadTrack(trackID id: uuid.UUID) async throws -> Track",
			},
			{Name: "Pause", Signature: "Pause()"},
			{
				Name: "Seek",
				Parameters: []models.Parameter{
					{Label: "to", Name: "position", Type: "float64"},
					{Name: "animated", Type: "bool", Default: "true"},
				},
				Effects:   models.Effects{Suspends: true, Fails: true},
				Signature: "Seek(to position: float64, animated: bool = true) async throws",
			},
		},
	}

	content := renderInterface(t, iface, map[string]string{"uuid": "github.com/google/uuid"})

	// The rendered text must already be parseable Go; gofmt only tidies it.
	_, err := format.Source([]byte(content))
	require.NoError(t, err, "rendered source does not parse:\n%s", content)

	assert.True(t, strings.HasPrefix(content, Header))
	assert.Contains(t, content, "package audioplayer")
	assert.Contains(t, content, "// AudioPlayerClient controls the audio playback engine.")
	assert.Contains(t, content, "type AudioPlayerClient struct {")
	assert.Contains(t, content, "// LoadTrack(trackID id: uuid.UUID) async throws -> Track")
	assert.Contains(t, content, "LoadTrackFn func(ctx context.Context, id uuid.UUID) (Track, error)")
	assert.Contains(t, content, "func (c *AudioPlayerClient) LoadTrack(ctx context.Context, trackID uuid.UUID) (Track, error)")
	assert.Contains(t, content, "return c.LoadTrackFn(ctx, trackID)")
	assert.Contains(t, content, "func (c *AudioPlayerClient) Seek(ctx context.Context, to float64) error")
	assert.Contains(t, content, "c.SeekFn(ctx, to, true)")
	assert.Contains(t, content, "func NewAudioPlayerClient(")
	assert.Contains(t, content, "func NewUnimplementedAudioPlayerClient() *AudioPlayerClient")
}

func TestRenderImportGrouping(t *testing.T) {
	iface := &models.Interface{
		Name: "Client",
		Endpoints: []models.Endpoint{
			{
				Name:       "Identify",
				Effects:    models.Effects{Suspends: true},
				Return:     "uuid.UUID",
				Parameters: []models.Parameter{},
			},
		},
	}

	content := renderInterface(t, iface, nil)

	// Standard library imports precede module imports.
	ctxIdx := strings.Index(content, `"context"`)
	uuidIdx := strings.Index(content, `"github.com/google/uuid"`)
	require.NotEqual(t, -1, ctxIdx)
	require.NotEqual(t, -1, uuidIdx)
	assert.Less(t, ctxIdx, uuidIdx)
}

func TestRenderEmptyInterface(t *testing.T) {
	iface := &models.Interface{Name: "NullClient"}

	content := renderInterface(t, iface, nil)
	assert.Contains(t, content, "type NullClient struct{}")
	assert.Contains(t, content, "func NewNullClient() *NullClient")

	_, err := format.Source([]byte(content))
	require.NoError(t, err)
}

func TestComputeImportsDropsUnreferencedDeclarations(t *testing.T) {
	gen := &models.GeneratedInterface{
		Name: "Client",
		Fields: []models.Field{
			{Name: "IdentifyFn", FuncType: "func() uuid.UUID", Default: "func() uuid.UUID {\n\treturn uuid.Nil\n}"},
		},
		Imports: []string{"github.com/google/uuid"},
	}

	declared := map[string]string{
		"uuid":   "github.com/google/uuid",
		"unused": "github.com/example/unused",
	}

	imports := ComputeImports(declared, []*models.GeneratedInterface{gen})
	require.Len(t, imports, 1)
	assert.Equal(t, "github.com/google/uuid", imports[0].Path)
}

func TestComputeImportsAliasesMismatchedBase(t *testing.T) {
	gen := &models.GeneratedInterface{
		Name: "Client",
		Fields: []models.Field{
			{Name: "DecodeFn", FuncType: "func(data []byte) (yaml.Node, error)"},
		},
	}

	imports := ComputeImports(map[string]string{"yaml": "gopkg.in/yaml.v3"}, []*models.GeneratedInterface{gen})
	require.Len(t, imports, 1)
	assert.Equal(t, "gopkg.in/yaml.v3", imports[0].Path)
	assert.Equal(t, "yaml", imports[0].Alias)
}

func TestComputeImportsScansWrapperForwards(t *testing.T) {
	gen := &models.GeneratedInterface{
		Name: "Client",
		Wrappers: []models.Wrapper{
			{
				Name:    "Wait",
				Field:   "WaitFn",
				Forward: []string{"time.Second"},
			},
		},
	}

	imports := ComputeImports(map[string]string{"time": "time"}, []*models.GeneratedInterface{gen})
	require.Len(t, imports, 1)
	assert.Equal(t, "time", imports[0].Path)
	assert.Empty(t, imports[0].Alias)
}

func TestStdlibDetection(t *testing.T) {
	assert.True(t, stdlib("context"))
	assert.True(t, stdlib("net/http"))
	assert.False(t, stdlib("github.com/google/uuid"))
	assert.False(t, stdlib("gopkg.in/yaml.v3"))
}
