package models

import "github.com/depstub/depstub/internal/errors"

// Validate checks the construction-time invariants of the interface
// description: unique endpoint names, unique internal parameter names per
// endpoint, and trailing-only default expressions. All violations are
// collected so the author sees every problem at once.
func (i *Interface) Validate() *errors.DiagnosticList {
	diags := &errors.DiagnosticList{}

	seenEndpoints := make(map[string]bool, len(i.Endpoints))
	for idx := range i.Endpoints {
		ep := &i.Endpoints[idx]
		if seenEndpoints[ep.Name] {
			diags.Error(errors.NewDuplicateEndpointNameError(i.Name, ep.Name).WithLocation(ep.Loc))
		}
		seenEndpoints[ep.Name] = true

		validateParameters(i.Name, ep, diags)
	}

	return diags
}

func validateParameters(ifaceName string, ep *Endpoint, diags *errors.DiagnosticList) {
	seen := make(map[string]bool, len(ep.Parameters))
	sawDefault := false
	for _, param := range ep.Parameters {
		if seen[param.Name] {
			diags.Error(errors.NewDuplicateParameterNameError(ifaceName, ep.Name, param.Name).WithLocation(ep.Loc))
		}
		seen[param.Name] = true

		if param.HasDefault() {
			sawDefault = true
		} else if sawDefault {
			// Defaults apply by omitting trailing arguments at the wrapper,
			// so a defaulted parameter cannot precede a required one. Every
			// required parameter after the first default is a violation.
			diags.Error(errors.NewMisplacedDefaultError(ifaceName, ep.Name, param.Name).WithLocation(ep.Loc))
		}
	}
}
