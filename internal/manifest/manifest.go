// Package manifest loads the structured input surface of the generator: a
// YAML file declaring dependency-client interfaces, their endpoints (in the
// signature DSL), custom placeholders, and the imports the declared types
// need.
package manifest

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/depstub/depstub/internal/errors"
	"github.com/depstub/depstub/internal/models"
	"github.com/depstub/depstub/internal/registry"
)

// Manifest is one decoded manifest file
type Manifest struct {
	Package      string            `yaml:"package"`      // target Go package name
	Imports      map[string]string `yaml:"imports"`      // alias -> import path for types used in signatures
	Placeholders []PlaceholderDecl `yaml:"placeholders"` // custom placeholder rules
	Interfaces   []InterfaceDecl   `yaml:"interfaces"`

	Path string `yaml:"-"` // manifest file path, for diagnostics
}

// PlaceholderDecl registers a custom placeholder rule from the manifest
type PlaceholderDecl struct {
	Type   string `yaml:"type"`
	Expr   string `yaml:"expr"`
	Import string `yaml:"import"`
}

// InterfaceDecl declares one dependency-client interface
type InterfaceDecl struct {
	Name      string         `yaml:"name"`
	Doc       string         `yaml:"doc"`
	Endpoints []EndpointDecl `yaml:"endpoints"`
}

// EndpointDecl declares one endpoint. Two YAML shapes are accepted: a bare
// signature string, or a mapping carrying the signature plus attributes.
type EndpointDecl struct {
	Signature string `yaml:"signature"`
	Ignored   bool   `yaml:"ignored"`
	Default   string `yaml:"default"` // explicit default expression for the stored field

	line int
}

// UnmarshalYAML accepts both declaration shapes and records the source line
// for diagnostics
func (d *EndpointDecl) UnmarshalYAML(value *yaml.Node) error {
	d.line = value.Line

	if value.Kind == yaml.ScalarNode {
		return value.Decode(&d.Signature)
	}

	type plain EndpointDecl
	var decoded plain
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	decoded.line = value.Line
	*d = EndpointDecl(decoded)
	return nil
}

// Load reads and decodes a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.FileSystemErrorCode, err, "failed to read manifest %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.NewManifestSyntaxError(path, err)
	}
	m.Path = path

	if m.Package == "" {
		return nil, errors.NewManifestSyntaxError(path, nil).
			WithSuggestion("Declare the target Go package with a top-level 'package' key")
	}

	return &m, nil
}

// Build translates the declarations into interface models, parsing every
// endpoint signature. A malformed or duplicate interface reports its
// diagnostics and is dropped; the remaining interfaces are unaffected.
func (m *Manifest) Build() ([]*models.Interface, *errors.DiagnosticList) {
	diags := &errors.DiagnosticList{}

	seen := make(map[string]bool, len(m.Interfaces))
	var interfaces []*models.Interface
	for _, decl := range m.Interfaces {
		if seen[decl.Name] {
			diags.Error(errors.NewDuplicateInterfaceNameError(decl.Name).
				WithLocation(errors.SourceLocation{File: m.Path}))
			continue
		}
		seen[decl.Name] = true

		iface, ok := m.buildInterface(decl, diags)
		if ok {
			interfaces = append(interfaces, iface)
		}
	}

	return interfaces, diags
}

func (m *Manifest) buildInterface(decl InterfaceDecl, diags *errors.DiagnosticList) (*models.Interface, bool) {
	iface := &models.Interface{
		Name: decl.Name,
		Doc:  decl.Doc,
		Loc:  errors.SourceLocation{File: m.Path},
	}

	ok := true
	for _, epDecl := range decl.Endpoints {
		loc := errors.SourceLocation{File: m.Path, Line: epDecl.line}
		ep, err := ParseSignature(epDecl.Signature, loc)
		if err != nil {
			diags.Error(err)
			ok = false
			continue
		}
		ep.Ignored = epDecl.Ignored
		ep.Default = epDecl.Default
		iface.Endpoints = append(iface.Endpoints, *ep)
	}

	return iface, ok
}

// RegisterPlaceholders installs the manifest's custom placeholder rules
// into the registry, reporting conflicts as diagnostics
func (m *Manifest) RegisterPlaceholders(reg *registry.PlaceholderRegistry, diags *errors.DiagnosticList) {
	for _, decl := range m.Placeholders {
		err := reg.Register(registry.Placeholder{
			TypeName: decl.Type,
			Expr:     decl.Expr,
			Import:   decl.Import,
		})
		if err != nil {
			if genErr, isGen := err.(*errors.BaseError); isGen {
				diags.Error(genErr.WithLocation(errors.SourceLocation{File: m.Path}))
			} else {
				diags.Error(errors.Wrap(errors.PlaceholderConflictCode, err.Error(), err))
			}
		}
	}
}
