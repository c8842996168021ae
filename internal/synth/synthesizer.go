// Package synth turns validated interface descriptions into generated
// artifact models: per-endpoint unimplemented defaults, label-preserving
// wrappers, and the two constructors. Synthesis is a pure function of its
// input; it performs no I/O and is safe to run concurrently across
// independent interfaces.
package synth

import (
	"sort"

	"github.com/depstub/depstub/internal/errors"
	"github.com/depstub/depstub/internal/models"
	"github.com/depstub/depstub/internal/registry"
)

// Synthesizer assembles the generated surface of dependency-client
// interfaces. Placeholder capability comes from the registry; everything
// else is derived from the interface description alone. The synthesizer
// itself holds no per-interface state, so one instance may serve
// concurrent Synthesize calls.
type Synthesizer struct {
	registry *registry.PlaceholderRegistry
}

// New creates a synthesizer backed by the given placeholder registry
func New(reg *registry.PlaceholderRegistry) *Synthesizer {
	return &Synthesizer{registry: reg}
}

// Synthesize produces the full generated surface for one interface. On any
// generation-time error the interface's artifacts are withheld entirely:
// the returned GeneratedInterface is nil and the diagnostics carry the
// failures. Other interfaces in the same batch are unaffected.
func (s *Synthesizer) Synthesize(iface *models.Interface) (*models.GeneratedInterface, *errors.DiagnosticList) {
	diags := iface.Validate()
	if diags.HasErrors() {
		return nil, diags
	}

	imports := make(map[string]bool)

	gen := &models.GeneratedInterface{
		Name: iface.Name,
		Doc:  iface.Doc,
	}

	anyDefault := false
	for idx := range iface.Endpoints {
		ep := &iface.Endpoints[idx]

		if ep.Effects.Suspends {
			imports["context"] = true
		}

		field := models.Field{
			Name:     ep.FieldName(),
			Endpoint: ep.Name,
			FuncType: funcType(ep),
			Comment:  ep.Signature,
		}

		switch {
		case ep.HasExplicitDefault():
			// An author-supplied default preempts synthesis, for ignored
			// and regular endpoints alike.
			field.Default = ep.Default
		case ep.Ignored:
			// Ignored endpoints are plain stored values: no synthesized
			// default, no report-on-invocation machinery.
		default:
			body, err := s.synthesizeDefault(iface, ep, "\t\t", imports)
			if err != nil {
				diags.Error(err)
				continue
			}
			field.Default = body
			anyDefault = true
		}

		gen.Fields = append(gen.Fields, field)

		if wrapper := s.wrapperFor(ep); wrapper != nil {
			gen.Wrappers = append(gen.Wrappers, *wrapper)
		}
	}

	if diags.HasErrors() {
		// A single unsynthesizable endpoint withholds the whole interface
		// rather than silently omitting the zero-argument constructor.
		return nil, diags
	}

	if anyDefault {
		imports[RuntimePackage] = true
	}

	gen.FullConstructor = fullConstructor(iface)
	gen.ZeroConstructor = zeroConstructor(iface, gen.Fields)
	gen.Imports = sortedImports(imports)

	return gen, diags
}

// fullConstructor builds the live constructor: one required parameter per
// endpoint, declaration order, ignored endpoints included.
func fullConstructor(iface *models.Interface) models.Constructor {
	ctor := models.Constructor{Name: "New" + iface.Name}
	for idx := range iface.Endpoints {
		ep := &iface.Endpoints[idx]
		param := lowerCamel(ep.Name)
		ctor.Params = append(ctor.Params, models.Arg{Name: param, Type: funcType(ep)})
		ctor.Assignments = append(ctor.Assignments, models.Assignment{Field: ep.FieldName(), Expr: param})
	}
	return ctor
}

// zeroConstructor builds the convenience constructor that assigns every
// synthesized or explicit default. Fields without one (ignored endpoints
// lacking an explicit default) are left at their zero value.
func zeroConstructor(iface *models.Interface, fields []models.Field) models.Constructor {
	ctor := models.Constructor{Name: "NewUnimplemented" + iface.Name}
	for _, field := range fields {
		if field.Default == "" {
			continue
		}
		ctor.Assignments = append(ctor.Assignments, models.Assignment{Field: field.Name, Expr: field.Default})
	}
	return ctor
}

func sortedImports(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	paths := make([]string, 0, len(set))
	for path := range set {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
