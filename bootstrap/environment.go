package bootstrap

import (
	"sort"
	"strings"
)

// Environment is an immutable snapshot of configuration state: the
// inherited process environment overlaid with entries parsed from the
// secrets file.
//
// It is populated once by Run, before the server registers any routes,
// and never mutated afterwards, so it is safe for concurrent readers
// without locking.
type Environment struct {
	values map[string]string
}

// NewEnvironment builds an Environment from environ-style "KEY=VALUE"
// strings, typically os.Environ().
func NewEnvironment(environ []string) *Environment {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return &Environment{values: values}
}

// Get returns the value for key, or "" when unset.
func (e *Environment) Get(key string) string {
	return e.values[key]
}

// Lookup returns the value for key and whether it is set.
func (e *Environment) Lookup(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// GetDefault returns the value for key, or def when unset.
func (e *Environment) GetDefault(key, def string) string {
	if v, ok := e.values[key]; ok {
		return v
	}
	return def
}

// Keys returns all keys in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries.
func (e *Environment) Len() int {
	return len(e.values)
}

// set is only called during bootstrap, before the Environment is handed
// out to handlers.
func (e *Environment) set(key, value string) {
	e.values[key] = value
}
