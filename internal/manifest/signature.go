package manifest

import (
	"regexp"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/depstub/depstub/internal/errors"
	"github.com/depstub/depstub/internal/models"
)

// The endpoint signature DSL is depstub's own declaration format, parsed
// with participle:
//
//	LoadTrack(trackID id: uuid.UUID) async throws -> Track
//	SetSpeed(value: float64, ramp: time.Duration = time.Second) async
//	Volume() -> float64
//
// A parameter is `internal: Type` or `label internal: Type`; `async` and
// `throws` are the effect qualifiers; a missing `-> Type` means void.

type signatureAST struct {
	Name    string     `parser:"@Term"`
	Params  []paramAST `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
	Effects []string   `parser:"( @'async' | @'throws' )*"`
	Return  string     `parser:"( Arrow @Term )?"`
}

type paramAST struct {
	First   string  `parser:"@Term"`
	Second  *string `parser:"@Term?"`
	Type    string  `parser:"':' @Term"`
	Default *string `parser:"( '=' ( @String | @Number | @Term ) )?"`
}

// Term deliberately swallows whole Go type expressions ([]T, map[K]V, *T,
// struct{}) as single tokens; identifier-ness of names is checked after
// parsing, not in the lexer.
var signatureLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Term", Pattern: `[\w\.\*\[\]\{\}]+`},
	{Name: "Punct", Pattern: `[(),:=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var signatureParser = participle.MustBuild[signatureAST](
	participle.Lexer(signatureLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

var identifier = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// ParseSignature parses one endpoint signature into the endpoint model.
// Effect flags, ignored state, and explicit defaults declared outside the
// signature are applied by the caller.
func ParseSignature(signature string, loc errors.SourceLocation) (*models.Endpoint, *errors.BaseError) {
	ast, err := signatureParser.ParseString("", signature)
	if err != nil {
		return nil, errors.NewSignatureSyntaxError(signature, err).WithLocation(loc)
	}

	if !identifier.MatchString(ast.Name) {
		return nil, errors.NewSignatureSyntaxError(signature, nil).
			WithContext("name", ast.Name).
			WithLocation(loc).
			WithSuggestion("Endpoint names must be Go identifiers")
	}

	ep := &models.Endpoint{
		Name:      ast.Name,
		Return:    models.TypeRef(ast.Return),
		Signature: signature,
		Loc:       loc,
	}

	for _, effect := range ast.Effects {
		switch effect {
		case "async":
			if ep.Effects.Suspends {
				return nil, errors.NewSignatureSyntaxError(signature, nil).
					WithLocation(loc).
					WithSuggestion("'async' may appear at most once")
			}
			ep.Effects.Suspends = true
		case "throws":
			if ep.Effects.Fails {
				return nil, errors.NewSignatureSyntaxError(signature, nil).
					WithLocation(loc).
					WithSuggestion("'throws' may appear at most once")
			}
			ep.Effects.Fails = true
		}
	}

	for _, p := range ast.Params {
		param, perr := buildParameter(p, signature, loc)
		if perr != nil {
			return nil, perr
		}
		ep.Parameters = append(ep.Parameters, param)
	}

	return ep, nil
}

func buildParameter(p paramAST, signature string, loc errors.SourceLocation) (models.Parameter, *errors.BaseError) {
	param := models.Parameter{Type: models.TypeRef(p.Type)}

	// One term before the colon is the internal name; two terms are
	// external label then internal name.
	if p.Second != nil {
		param.Label = p.First
		param.Name = *p.Second
	} else {
		param.Name = p.First
	}

	if !identifier.MatchString(param.Name) || (param.Label != "" && !identifier.MatchString(param.Label)) {
		return models.Parameter{}, errors.NewSignatureSyntaxError(signature, nil).
			WithContext("parameter", param.Name).
			WithLocation(loc).
			WithSuggestion("Parameter labels and names must be Go identifiers")
	}

	if p.Default != nil {
		param.Default = *p.Default
	}

	return param, nil
}
