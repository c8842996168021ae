package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depstub/depstub/internal/models"
)

func synthesizeOne(t *testing.T, ep models.Endpoint) *models.GeneratedInterface {
	t.Helper()
	gen, diags := newSynthesizer(t).Synthesize(&models.Interface{
		Name:      "Client",
		Endpoints: []models.Endpoint{ep},
	})
	require.NotNil(t, gen, "diagnostics: %s", diags.Summary())
	return gen
}

func TestWrapperSkippedForZeroParameters(t *testing.T) {
	gen := synthesizeOne(t, models.Endpoint{Name: "Pause"})
	assert.Empty(t, gen.Wrappers)
}

func TestWrapperSkippedForSingleUnlabeledParameter(t *testing.T) {
	gen := synthesizeOne(t, models.Endpoint{
		Name:       "SetSpeed",
		Parameters: []models.Parameter{{Name: "value", Type: "float64"}},
	})
	assert.Empty(t, gen.Wrappers, "the direct field call is already ergonomic")
}

func TestWrapperEmittedForLabeledParameter(t *testing.T) {
	gen := synthesizeOne(t, models.Endpoint{
		Name:       "SetVolume",
		Parameters: []models.Parameter{{Label: "to", Name: "volume", Type: "float64"}},
	})

	require.Len(t, gen.Wrappers, 1)
	w := gen.Wrappers[0]
	assert.Equal(t, "SetVolume", w.Name)
	assert.Equal(t, "SetVolumeFn", w.Field)
	require.Len(t, w.Params, 1)
	assert.Equal(t, "to", w.Params[0].Name)
	assert.Equal(t, "float64", w.Params[0].Type)
	assert.Equal(t, []string{"to"}, w.Forward)
	assert.False(t, w.HasValue)
}

func TestWrapperRedundantLabelDoesNotForceWrapper(t *testing.T) {
	gen := synthesizeOne(t, models.Endpoint{
		Name:       "SetSpeed",
		Parameters: []models.Parameter{{Label: "value", Name: "value", Type: "float64"}},
	})
	assert.Empty(t, gen.Wrappers)
}

func TestWrapperEmittedForMultipleParameters(t *testing.T) {
	gen := synthesizeOne(t, models.Endpoint{
		Name: "Crossfade",
		Parameters: []models.Parameter{
			{Name: "from", Type: "int"},
			{Name: "to", Type: "int"},
		},
	})

	require.Len(t, gen.Wrappers, 1)
	assert.Equal(t, []string{"from", "to"}, gen.Wrappers[0].Forward)
}

func TestWrapperForwardsContextFirst(t *testing.T) {
	gen := synthesizeOne(t, models.Endpoint{
		Name:       "LoadTrack",
		Parameters: []models.Parameter{{Label: "trackID", Name: "id", Type: "uuid.UUID"}},
		Effects:    models.Effects{Suspends: true, Fails: true},
		Return:     "Track",
	})

	require.Len(t, gen.Wrappers, 1)
	w := gen.Wrappers[0]
	require.Len(t, w.Params, 2)
	assert.Equal(t, models.Arg{Name: "ctx", Type: "context.Context"}, w.Params[0])
	assert.Equal(t, models.Arg{Name: "trackID", Type: "uuid.UUID"}, w.Params[1])
	assert.Equal(t, []string{"ctx", "trackID"}, w.Forward)
	assert.Equal(t, "(Track, error)", w.Results)
	assert.True(t, w.HasValue)
}

func TestWrapperOmitsDefaultedParameters(t *testing.T) {
	gen := synthesizeOne(t, models.Endpoint{
		Name: "Seek",
		Parameters: []models.Parameter{
			{Label: "to", Name: "position", Type: "float64"},
			{Name: "animated", Type: "bool", Default: "true"},
		},
		Effects: models.Effects{Suspends: true, Fails: true},
	})

	require.Len(t, gen.Wrappers, 1)
	w := gen.Wrappers[0]

	// The defaulted parameter vanishes from the signature; its declared
	// expression is forwarded positionally.
	require.Len(t, w.Params, 2)
	assert.Equal(t, "to", w.Params[1].Name)
	assert.Equal(t, []string{"ctx", "to", "true"}, w.Forward)
}

func TestWrapperEmittedForSingleDefaultedParameter(t *testing.T) {
	gen := synthesizeOne(t, models.Endpoint{
		Name: "Retry",
		Parameters: []models.Parameter{
			{Name: "attempts", Type: "int", Default: "3"},
		},
	})

	// A lone defaulted parameter still earns a wrapper: the wrapper is the
	// only way to call with the default applied.
	require.Len(t, gen.Wrappers, 1)
	w := gen.Wrappers[0]
	assert.Empty(t, w.Params)
	assert.Equal(t, []string{"3"}, w.Forward)
}

func TestWrapperVoidFailableResult(t *testing.T) {
	gen := synthesizeOne(t, models.Endpoint{
		Name: "Publish",
		Parameters: []models.Parameter{
			{Label: "onto", Name: "topic", Type: "string"},
		},
		Effects: models.Effects{Fails: true},
	})

	require.Len(t, gen.Wrappers, 1)
	w := gen.Wrappers[0]
	assert.Equal(t, "error", w.Results)
	assert.True(t, w.HasValue)
}
