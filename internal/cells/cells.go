// Package cells answers per-cell questions the grid asks while rendering:
// whether a cell can be edited and which rule governs it.
package cells

import (
	"dynsheet/internal/index"
	"dynsheet/internal/registry"
	"dynsheet/record"
)

// Resolver reads the constraint index. It caches nothing per row, so every
// answer reflects the row's current target.
type Resolver struct {
	idx *index.Index
}

// New returns a resolver over idx.
func New(idx *index.Index) *Resolver {
	return &Resolver{idx: idx}
}

// Editable reports whether the cell (target, key) accepts input. Cells of
// unclassified rows and undeclared pairs stay editable.
func (r *Resolver) Editable(target *int64, key record.FieldKey) bool {
	d, ok := r.idx.Lookup(target, key)
	if !ok {
		return true
	}

	return d.Editable()
}

// Constraint returns the descriptor governing (target, key) for type hints.
func (r *Resolver) Constraint(target *int64, key record.FieldKey) (registry.Descriptor, bool) {
	return r.idx.Lookup(target, key)
}

// Matrix returns, for each row, the editability of every field in
// record.Fields order.
func (r *Resolver) Matrix(rows []record.Row) [][]bool {
	out := make([][]bool, len(rows))

	for i, row := range rows {
		out[i] = make([]bool, len(record.Fields))
		for j, key := range record.Fields {
			out[i][j] = r.Editable(row.Target(), key)
		}
	}

	return out
}
