package synth

import (
	"fmt"
	"strings"

	"github.com/depstub/depstub/internal/errors"
	"github.com/depstub/depstub/internal/models"
)

// synthesizeDefault produces the unimplemented default closure for one
// endpoint. The closure's runtime contract, in order:
//
//  1. report the invocation through the runtime reporter (never aborts),
//  2. if the endpoint may fail, return the unimplemented-endpoint error,
//  3. else if the return is void, return normally,
//  4. else return the type's placeholder value.
//
// When no placeholder is derivable for a non-failable, non-void return,
// synthesis fails with NoPlaceholderAvailable and the owning interface's
// artifacts are withheld.
func (s *Synthesizer) synthesizeDefault(iface *models.Interface, ep *models.Endpoint, indent string, imports map[string]bool) (string, *errors.BaseError) {
	inner := indent + "\t"

	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", funcType(ep))
	fmt.Fprintf(&b, "%s%s.ReportUnimplemented(%q, %q)\n", inner, runtimeQualifier, iface.Name, ep.Name)

	switch {
	case ep.Effects.Fails:
		// No value needs fabricating: the zero value of the result type
		// travels alongside the unimplemented error.
		failure := fmt.Sprintf("%s.NewUnimplementedError(%q, %q)", runtimeQualifier, iface.Name, ep.Name)
		if ep.Return.IsVoid() {
			fmt.Fprintf(&b, "%sreturn %s\n", inner, failure)
		} else {
			fmt.Fprintf(&b, "%svar zero %s\n", inner, ep.Return)
			fmt.Fprintf(&b, "%sreturn zero, %s\n", inner, failure)
		}

	case ep.Return.IsVoid():
		// Report, then return normally.

	default:
		rule, ok := s.registry.Resolve(ep.Return)
		if !ok {
			return "", errors.NewNoPlaceholderError(iface.Name, ep.Name, ep.Return.String()).WithLocation(ep.Loc)
		}
		if rule.Import != "" {
			imports[rule.Import] = true
		}
		fmt.Fprintf(&b, "%sreturn %s\n", inner, rule.Expr)
	}

	fmt.Fprintf(&b, "%s}", indent)
	return b.String(), nil
}

// wrapperFor produces the label-preserving wrapper declaration for an
// endpoint, or nil when the direct field call is already ergonomic: zero
// parameters, or a single parameter whose label matches its internal name.
func (s *Synthesizer) wrapperFor(ep *models.Endpoint) *models.Wrapper {
	if len(ep.Parameters) == 0 {
		return nil
	}
	if len(ep.Parameters) == 1 && !ep.Parameters[0].Labeled() && !ep.Parameters[0].HasDefault() {
		return nil
	}

	w := &models.Wrapper{
		Name:     ep.Name,
		Field:    ep.FieldName(),
		Results:  resultList(ep),
		HasValue: ep.Effects.Fails || !ep.Return.IsVoid(),
	}

	if ep.Effects.Suspends {
		w.Params = append(w.Params, models.Arg{Name: "ctx", Type: "context.Context"})
		w.Forward = append(w.Forward, "ctx")
	}

	for _, p := range ep.Parameters {
		if p.HasDefault() {
			// Trailing defaulted parameters are omitted from the wrapper
			// signature; their declared defaults are forwarded positionally.
			w.Forward = append(w.Forward, p.Default)
			continue
		}
		w.Params = append(w.Params, models.Arg{Name: p.External(), Type: p.Type.String()})
		w.Forward = append(w.Forward, p.External())
	}

	return w
}
