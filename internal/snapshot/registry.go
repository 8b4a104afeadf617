// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package snapshot

import (
	"reflect"
	"sort"
)

// Registry maps attribute/span types to their stable snapshot prefix
// (spec.md §4.10: "ab", "br", "cf", ...). Domain packages build one and
// pass it to Build; the core itself knows nothing about domain types.
type Registry struct {
	prefixOf map[reflect.Type]string
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{prefixOf: make(map[reflect.Type]string)}
}

// Register associates T with prefix. Registering the same prefix twice
// for different types, or the same type twice, is a caller bug and panics
// immediately rather than producing silently ambiguous snapshot IDs.
func Register[T any](r *Registry, prefix string) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if existing, ok := r.prefixOf[t]; ok {
		panic("snapshot: type " + t.String() + " already registered with prefix " + existing)
	}
	for registeredType, p := range r.prefixOf {
		if p == prefix {
			panic("snapshot: prefix " + prefix + " already used by " + registeredType.String())
		}
	}
	r.prefixOf[t] = prefix
}

// prefixFor returns the registered prefix for t, if any.
func (r *Registry) prefixFor(t reflect.Type) (string, bool) {
	p, ok := r.prefixOf[t]
	return p, ok
}

// sortedTypes returns every registered type, sorted lexicographically by
// prefix (spec.md §4.10 traversal order).
func (r *Registry) sortedTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(r.prefixOf))
	for t := range r.prefixOf {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return r.prefixOf[types[i]] < r.prefixOf[types[j]]
	})
	return types
}
