// Package depstub is the runtime support package for generated dependency
// clients. Synthesized unimplemented defaults call into it to report the
// invocation and, for failable endpoints, to build the failure value.
package depstub

import (
	"errors"
	"fmt"
)

// ErrUnimplemented is the sentinel every unimplemented-endpoint failure
// matches via errors.Is
var ErrUnimplemented = errors.New("unimplemented endpoint")

// UnimplementedError identifies the endpoint whose default was invoked
// without being overridden
type UnimplementedError struct {
	Interface string
	Endpoint  string
}

// Error implements the error interface
func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s.%s: unimplemented endpoint invoked", e.Interface, e.Endpoint)
}

// Is matches the ErrUnimplemented sentinel
func (e *UnimplementedError) Is(target error) bool {
	return target == ErrUnimplemented
}

// NewUnimplementedError builds the failure a synthesized failable default
// returns after reporting
func NewUnimplementedError(ifaceName, endpointName string) error {
	return &UnimplementedError{Interface: ifaceName, Endpoint: endpointName}
}
