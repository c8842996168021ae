package registry

import (
	"regexp"
	"strings"
	"sync"

	"github.com/depstub/depstub/internal/errors"
	"github.com/depstub/depstub/internal/models"
)

// Placeholder is one capability rule: how to fabricate the canonical
// "empty" value of a type when an unimplemented endpoint must return
// something without failing.
type Placeholder struct {
	TypeName string // type expression the rule serves, e.g. "uuid.UUID"
	Expr     string // Go expression producing the value, e.g. "uuid.Nil"
	Import   string // import path the expression needs, "" for none
	Builtin  bool   // shipped with depstub rather than registered by a manifest
}

// PlaceholderRegistry maps known type shapes to placeholder-construction
// rules. Unknown types fail closed: Resolve returns false and the caller
// surfaces NoPlaceholderAvailable rather than guessing.
type PlaceholderRegistry struct {
	rules map[string]Placeholder
	mu    sync.RWMutex
}

var arrayType = regexp.MustCompile(`^\[\d+\]`)

// NewPlaceholderRegistry creates a registry seeded with the built-in rules
func NewPlaceholderRegistry() *PlaceholderRegistry {
	registry := &PlaceholderRegistry{
		rules: make(map[string]Placeholder, len(builtinPlaceholders)),
	}

	for _, rule := range builtinPlaceholders {
		registry.rules[rule.TypeName] = rule
	}

	return registry
}

// Register adds a custom placeholder rule for a type
func (r *PlaceholderRegistry) Register(rule Placeholder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[rule.TypeName]; exists {
		return errors.NewPlaceholderConflictError(rule.TypeName)
	}

	rule.Builtin = false
	r.rules[rule.TypeName] = rule
	return nil
}

// Resolve returns the placeholder rule for a type. Named types resolve
// through the rule table; composite shapes (slices, maps, pointers, funcs,
// channels, fixed arrays) derive structurally. Anything else fails closed.
func (r *PlaceholderRegistry) Resolve(t models.TypeRef) (Placeholder, bool) {
	typeName := strings.TrimSpace(t.String())

	r.mu.RLock()
	rule, exists := r.rules[typeName]
	r.mu.RUnlock()
	if exists {
		return rule, true
	}

	return derivePlaceholder(typeName)
}

// Has checks whether a rule exists for a type, registered or derivable
func (r *PlaceholderRegistry) Has(t models.TypeRef) bool {
	_, ok := r.Resolve(t)
	return ok
}

// List returns all registered rule type names
func (r *PlaceholderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.rules))
	for typeName := range r.rules {
		types = append(types, typeName)
	}
	return types
}

// ClearCustom removes manifest-registered rules, keeping the built-ins
func (r *PlaceholderRegistry) ClearCustom() {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make(map[string]Placeholder, len(builtinPlaceholders))
	for typeName, rule := range r.rules {
		if rule.Builtin {
			kept[typeName] = rule
		}
	}
	r.rules = kept
}

// All returns a copy of every registered rule
func (r *PlaceholderRegistry) All() map[string]Placeholder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Placeholder, len(r.rules))
	for k, v := range r.rules {
		result[k] = v
	}
	return result
}

// derivePlaceholder handles composite type shapes whose empty value is
// structural rather than registered
func derivePlaceholder(typeName string) (Placeholder, bool) {
	switch {
	case typeName == "":
		return Placeholder{}, false
	case strings.HasPrefix(typeName, "[]"),
		strings.HasPrefix(typeName, "map["),
		strings.HasPrefix(typeName, "*"),
		strings.HasPrefix(typeName, "func("),
		strings.HasPrefix(typeName, "func "),
		strings.HasPrefix(typeName, "chan "),
		strings.HasPrefix(typeName, "<-chan "),
		strings.HasPrefix(typeName, "chan<- "):
		return Placeholder{TypeName: typeName, Expr: "nil"}, true
	case arrayType.MatchString(typeName):
		return Placeholder{TypeName: typeName, Expr: typeName + "{}"}, true
	default:
		return Placeholder{}, false
	}
}
