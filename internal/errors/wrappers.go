package errors

// Constructors for the well-known generation errors. Keeping them here means
// every package reports the same message shape and the same suggestions.

// NewDuplicateInterfaceNameError reports two interfaces of one manifest
// sharing a name
func NewDuplicateInterfaceNameError(ifaceName string) *BaseError {
	return Newf(DuplicateInterfaceNameCode,
		"interface %s is declared more than once", ifaceName).
		WithContext("interface", ifaceName).
		WithSuggestion("Rename one of the interfaces; interface names must be unique within a manifest")
}

// NewDuplicateEndpointNameError reports two endpoints of one interface
// sharing a name
func NewDuplicateEndpointNameError(ifaceName, endpointName string) *BaseError {
	return Newf(DuplicateEndpointNameCode,
		"interface %s declares endpoint %s more than once", ifaceName, endpointName).
		WithContext("interface", ifaceName).
		WithContext("endpoint", endpointName).
		WithSuggestion("Rename one of the endpoints; endpoint names must be unique within an interface")
}

// NewDuplicateParameterNameError reports two parameters of one endpoint
// sharing an internal name
func NewDuplicateParameterNameError(ifaceName, endpointName, paramName string) *BaseError {
	return Newf(DuplicateParameterNameCode,
		"endpoint %s.%s declares parameter %s more than once", ifaceName, endpointName, paramName).
		WithContext("interface", ifaceName).
		WithContext("endpoint", endpointName).
		WithContext("parameter", paramName).
		WithSuggestion("Rename one of the parameters; internal parameter names must be unique within an endpoint")
}

// NewMisplacedDefaultError reports a required parameter that follows a
// defaulted one
func NewMisplacedDefaultError(ifaceName, endpointName, paramName string) *BaseError {
	return Newf(MisplacedDefaultCode,
		"endpoint %s.%s: parameter %s has no default expression but follows a defaulted parameter",
		ifaceName, endpointName, paramName).
		WithContext("interface", ifaceName).
		WithContext("endpoint", endpointName).
		WithContext("parameter", paramName).
		WithSuggestion("Move defaulted parameters to the end of the parameter list")
}

// NewNoPlaceholderError reports a return type with no derivable placeholder
func NewNoPlaceholderError(ifaceName, endpointName, typeName string) *BaseError {
	return Newf(NoPlaceholderAvailableCode,
		"endpoint %s.%s: no placeholder value is derivable for return type %s",
		ifaceName, endpointName, typeName).
		WithContext("interface", ifaceName).
		WithContext("endpoint", endpointName).
		WithContext("type", typeName).
		WithSuggestion("Mark the endpoint 'throws' so the default can fail instead of fabricating a value").
		WithSuggestion("Register a placeholder for the type in the manifest 'placeholders' section").
		WithSuggestion("Supply an explicit 'default' expression on the endpoint")
}

// NewPlaceholderConflictError reports a duplicate placeholder registration
func NewPlaceholderConflictError(typeName string) *BaseError {
	return Newf(PlaceholderConflictCode,
		"a placeholder for type %s is already registered", typeName).
		WithContext("type", typeName).
		WithSuggestion("Each type can carry only one placeholder rule; remove the duplicate registration")
}

// NewSignatureSyntaxError reports an endpoint signature that failed to parse
func NewSignatureSyntaxError(signature string, cause error) *BaseError {
	return Wrapf(SignatureSyntaxCode, cause, "invalid endpoint signature %q", signature).
		WithContext("signature", signature).
		WithSuggestion("Expected shape: Name(label internal: Type, ...) [async] [throws] [-> Type]")
}

// NewManifestSyntaxError reports a manifest file that failed to decode
func NewManifestSyntaxError(path string, cause error) *BaseError {
	return Wrapf(ManifestSyntaxCode, cause, "failed to decode manifest %s", path).
		WithLocation(SourceLocation{File: path}).
		WithSuggestion("Check the YAML structure: package, imports, placeholders, interfaces")
}
