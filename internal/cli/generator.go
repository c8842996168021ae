package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/depstub/depstub/internal/errors"
	"github.com/depstub/depstub/internal/manifest"
	"github.com/depstub/depstub/internal/models"
	"github.com/depstub/depstub/internal/registry"
	"github.com/depstub/depstub/internal/synth"
	"github.com/depstub/depstub/internal/templates"
	"github.com/depstub/depstub/internal/utils"
)

// Config carries the generation options from the command line
type Config struct {
	OutDir  string // output directory; "" writes next to each manifest
	Module  string // module path override; "" resolves from go.mod
	Verbose bool
}

// Summary contains information about one generation run
type Summary struct {
	ManifestsProcessed  int
	InterfacesGenerated int
	InterfacesFailed    int
	WrappersGenerated   int
	GeneratedFiles      []string
}

// Generator drives the whole pipeline: discover manifests, build interface
// models, synthesize, render, format, write. Each interface is processed in
// isolation; one interface's diagnostics never withhold another's output.
type Generator struct {
	cfg      Config
	diag     *utils.DiagnosticSystem
	reporter *DiagnosticReporter
	resolver *ModuleResolver
	summary  Summary
}

// NewGenerator creates a generation driver
func NewGenerator(cfg Config, diag *utils.DiagnosticSystem) *Generator {
	resolver := NewModuleResolver()
	if cfg.Module != "" {
		resolver.SetCustomModule(cfg.Module)
	}

	return &Generator{
		cfg:      cfg,
		diag:     diag,
		reporter: NewDiagnosticReporter(cfg.Verbose),
		resolver: resolver,
	}
}

// Summary returns the statistics of the last Generate call
func (g *Generator) Summary() Summary {
	return g.summary
}

// Generate processes every manifest reachable from the given paths
func (g *Generator) Generate(paths []string) error {
	manifests, err := DiscoverManifests(paths)
	if err != nil {
		return err
	}
	if len(manifests) == 0 {
		return fmt.Errorf("no %s manifests found under %s", manifestSuffix, strings.Join(paths, ", "))
	}

	for _, path := range manifests {
		g.diag.Verbose("Processing manifest %s", path)
		if err := g.processManifest(path); err != nil {
			g.reporter.ReportError(err)
			g.summary.InterfacesFailed++
			continue
		}
		g.summary.ManifestsProcessed++
	}

	if g.summary.InterfacesFailed > 0 {
		return fmt.Errorf("%d interface(s) failed to generate", g.summary.InterfacesFailed)
	}
	return nil
}

// processManifest runs the pipeline for one manifest file
func (g *Generator) processManifest(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	if err := g.expandImports(m); err != nil {
		return err
	}

	diags := &errors.DiagnosticList{}
	reg := registry.NewPlaceholderRegistry()
	m.RegisterPlaceholders(reg, diags)

	interfaces, buildDiags := m.Build()
	diags.Merge(buildDiags)

	// Interfaces dropped at the parse stage fail the run just like
	// synthesis-stage failures do.
	g.summary.InterfacesFailed += len(m.Interfaces) - len(interfaces)

	synthesizer := synth.New(reg)
	var generated []*models.GeneratedInterface
	for _, iface := range interfaces {
		gen, synthDiags := synthesizer.Synthesize(iface)
		diags.Merge(synthDiags)
		if gen == nil {
			g.summary.InterfacesFailed++
			continue
		}
		generated = append(generated, gen)
		g.summary.InterfacesGenerated++
		g.summary.WrappersGenerated += len(gen.Wrappers)
	}

	g.reporter.ReportDiagnostics(diags)

	if len(generated) == 0 {
		if !diags.HasErrors() {
			g.diag.Warn("Manifest %s declares no interfaces", path)
		}
		return nil
	}

	return g.writeGenerated(path, m, generated)
}

// expandImports resolves relative manifest import declarations to full
// module-qualified paths
func (g *Generator) expandImports(m *manifest.Manifest) error {
	dir := filepath.Dir(m.Path)
	for alias, declared := range m.Imports {
		expanded, err := g.resolver.ExpandImportPath(dir, declared)
		if err != nil {
			return errors.Wrapf(errors.GenerationErrorCode, err,
				"manifest %s: cannot resolve import %q", m.Path, declared)
		}
		m.Imports[alias] = expanded
	}
	return nil
}

// writeGenerated renders, formats, and writes the output file for one
// manifest
func (g *Generator) writeGenerated(path string, m *manifest.Manifest, generated []*models.GeneratedInterface) error {
	file := templates.File{
		Package:    m.Package,
		Imports:    templates.ComputeImports(m.Imports, generated),
		Interfaces: generated,
	}

	content, err := templates.Render(file)
	if err != nil {
		return err
	}

	outPath := g.outputPath(path)
	formatted, err := utils.FormatGoSource(outPath, []byte(content))
	if err != nil {
		g.diag.Warn("Generated output for %s did not format cleanly: %v", path, err)
	}

	if err := os.WriteFile(outPath, formatted, 0o644); err != nil {
		return errors.Wrapf(errors.FileSystemErrorCode, err, "failed to write %s", outPath)
	}

	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, outPath)
	g.diag.Info("Generated %s", outPath)
	return nil
}

// outputPath derives the generated file path for a manifest: the manifest
// base name with the .depstub.yaml suffix swapped for _depstub.go
func (g *Generator) outputPath(manifestPath string) string {
	base := filepath.Base(manifestPath)
	base = strings.TrimSuffix(base, manifestSuffix)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	dir := filepath.Dir(manifestPath)
	if g.cfg.OutDir != "" {
		dir = g.cfg.OutDir
	}

	return filepath.Join(dir, base+"_depstub.go")
}
