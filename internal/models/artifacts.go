package models

// The artifact models are the structured output surface of the synthesizers.
// They describe generated declarations without committing to source text;
// the templates package renders them.

// Arg is a named, typed parameter of a generated declaration
type Arg struct {
	Name string
	Type string // rendered Go type expression
}

// Field is one stored closure field of the generated client struct
type Field struct {
	Name     string // field name, e.g. LoadTrackFn
	Endpoint string // owning endpoint name
	FuncType string // rendered func type with internal positional names
	Default  string // default expression assigned by the zero-arg constructor; "" for none
	Comment  string // one-line field comment, usually the declared signature
}

// Wrapper is a generated label-preserving call helper. Its parameter names
// are the external labels; its body forwards positionally to the stored
// field, substituting declared defaults for omitted trailing parameters.
type Wrapper struct {
	Name     string // method name = endpoint name
	Field    string // stored field the wrapper forwards to
	Params   []Arg  // declaration order, context first when the endpoint suspends
	Results  string // rendered result list, "" for void non-failable
	Forward  []string // argument expressions, including baked-in defaults
	HasValue bool     // whether the forward call's results are returned
}

// Constructor is a generated constructor declaration
type Constructor struct {
	Name        string
	Params      []Arg        // one per endpoint for the full constructor; empty for zero-arg
	Assignments []Assignment // field initializers in declaration order
}

// Assignment initializes one struct field inside a constructor body
type Assignment struct {
	Field string
	Expr  string
}

// GeneratedInterface is the full generated surface for one client interface
type GeneratedInterface struct {
	Name            string // generated struct name
	Doc             string
	Fields          []Field   // declaration order
	Wrappers        []Wrapper // declaration order, only endpoints that earn one
	FullConstructor Constructor
	ZeroConstructor Constructor
	Imports         []string // import paths the synthesized expressions require
}
