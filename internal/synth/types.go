package synth

import (
	"strings"
	"unicode"

	"github.com/depstub/depstub/internal/models"
)

// RuntimePackage is the import path of the runtime package every
// synthesized default calls into.
const RuntimePackage = "github.com/depstub/depstub/pkg/depstub"

// runtimeQualifier is the package qualifier used in generated expressions
const runtimeQualifier = "depstub"

// funcType renders the stored closure type for an endpoint: positional
// internal parameter names, context first when the endpoint suspends,
// trailing error when it fails.
func funcType(ep *models.Endpoint) string {
	var b strings.Builder
	b.WriteString("func(")
	b.WriteString(strings.Join(paramList(ep), ", "))
	b.WriteString(")")
	if results := resultList(ep); results != "" {
		b.WriteString(" ")
		b.WriteString(results)
	}
	return b.String()
}

// paramList renders the positional parameter declarations of an endpoint
func paramList(ep *models.Endpoint) []string {
	params := make([]string, 0, len(ep.Parameters)+1)
	if ep.Effects.Suspends {
		params = append(params, "ctx context.Context")
	}
	for _, p := range ep.Parameters {
		params = append(params, p.Name+" "+p.Type.String())
	}
	return params
}

// resultList renders the result declarations of an endpoint
func resultList(ep *models.Endpoint) string {
	switch {
	case ep.Effects.Fails && !ep.Return.IsVoid():
		return "(" + ep.Return.String() + ", error)"
	case ep.Effects.Fails:
		return "error"
	case !ep.Return.IsVoid():
		return ep.Return.String()
	default:
		return ""
	}
}

// lowerCamel lowers the first rune of an identifier, for constructor
// parameter names derived from endpoint names
func lowerCamel(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
