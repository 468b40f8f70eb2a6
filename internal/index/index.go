// Package index flattens the column table into a (target, field) lookup
// used by cell rendering.
package index

import (
	"dynsheet/internal/registry"
	"dynsheet/record"
)

// Key identifies one cell rule: a discriminator value and a field.
type Key struct {
	Target int64
	Field  record.FieldKey
}

// Index maps every (target, field) pair of a registry to its descriptor.
// It is never mutated after Build.
type Index struct {
	entries map[Key]registry.Descriptor
}

// Build flattens reg once.
func Build(reg *registry.Registry) *Index {
	idx := &Index{entries: map[Key]registry.Descriptor{}}

	for _, t := range reg.Targets() {
		for _, c := range t.Columns {
			idx.entries[Key{Target: t.ID, Field: c.Key}] = c.Descriptor
		}
	}

	return idx
}

// Lookup returns the descriptor of key under target. A nil target or an
// undeclared pair is reported as not found.
func (i *Index) Lookup(target *int64, key record.FieldKey) (registry.Descriptor, bool) {
	if target == nil {
		return registry.Descriptor{}, false
	}

	d, ok := i.entries[Key{Target: *target, Field: key}]
	if !ok {
		return registry.Descriptor{}, false
	}

	return d.Clone(), true
}

// Len returns the number of indexed pairs.
func (i *Index) Len() int {
	return len(i.entries)
}
