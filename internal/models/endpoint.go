package models

import "github.com/depstub/depstub/internal/errors"

// TypeRef is the textual form of a Go type expression. The empty string is
// the Void sentinel: there is no value to fabricate.
type TypeRef string

// Void marks an endpoint that returns nothing
const Void TypeRef = ""

// IsVoid returns true when the type carries no value
func (t TypeRef) IsVoid() bool {
	return t == Void
}

// String returns the type expression
func (t TypeRef) String() string {
	return string(t)
}

// Effects are the independent qualifiers an endpoint may carry
type Effects struct {
	Suspends bool // endpoint takes a context.Context and may block on it
	Fails    bool // endpoint returns a trailing error
}

// Parameter is one declared parameter of an endpoint
type Parameter struct {
	Label   string  // external label shown at wrapper call sites; "" means same as Name
	Name    string  // internal positional name used by the stored closure
	Type    TypeRef // parameter type
	Default string  // default expression forwarded when omitted at the wrapper; "" means none
}

// External returns the name callers see: the label when present, the
// internal name otherwise
func (p Parameter) External() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Name
}

// HasDefault returns true when the parameter declares a default expression
func (p Parameter) HasDefault() bool {
	return p.Default != ""
}

// Labeled returns true when the external label differs from the internal name
func (p Parameter) Labeled() bool {
	return p.Label != "" && p.Label != p.Name
}

// Endpoint is one named, typed operation of a dependency-client interface
type Endpoint struct {
	Name       string      // unique within the owning interface
	Parameters []Parameter // declaration order, preserved everywhere
	Effects    Effects
	Return     TypeRef // Void when nothing is returned
	Ignored    bool    // excluded from default synthesis and zero-arg defaulting
	Default    string  // explicit default expression for the stored field; "" means synthesize
	Signature  string  // declared signature text, carried through for field comments
	Loc        errors.SourceLocation
}

// FieldName returns the stored closure field name for the endpoint
func (e *Endpoint) FieldName() string {
	return e.Name + "Fn"
}

// HasExplicitDefault returns true when the author supplied a default
// expression for the stored field
func (e *Endpoint) HasExplicitDefault() bool {
	return e.Default != ""
}

// Interface is a named, ordered collection of endpoints describing one
// dependency's surface. Construction happens once, from the manifest; the
// synthesizers only ever read it.
type Interface struct {
	Name      string
	Doc       string // optional doc comment for the generated struct
	Endpoints []Endpoint
	Loc       errors.SourceLocation
}
