package cells

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynsheet/internal/index"
	"dynsheet/internal/registry"
	"dynsheet/primitive"
	"dynsheet/record"
)

func newResolver() *Resolver {
	return New(index.Build(registry.Default()))
}

func TestEditable(t *testing.T) {
	r := newResolver()

	tests := []struct {
		name     string
		target   *int64
		key      record.FieldKey
		expected bool
	}{
		{"target 3 id is locked", record.Int(3), record.FieldID, false},
		{"target 4 id is locked", record.Int(4), record.FieldID, false},
		{"target 3 name", record.Int(3), record.FieldName, true},
		{"target 1 id", record.Int(1), record.FieldID, true},
		{"nil target", nil, record.FieldID, true},
		{"unknown target", record.Int(99), record.FieldID, true},
		{"unknown key", record.Int(3), record.FieldKey("price"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Editable(tt.target, tt.key))
		})
	}
}

func TestConstraint(t *testing.T) {
	r := newResolver()

	d, ok := r.Constraint(record.Int(4), record.FieldDynamicValue)
	require.True(t, ok)
	assert.Equal(t, primitive.KindString, d.Kind)
	assert.Equal(t, "default string value", *d.Default)

	_, ok = r.Constraint(nil, record.FieldDynamicValue)
	assert.False(t, ok)
}

func TestMatrixFollowsTarget(t *testing.T) {
	r := newResolver()

	row := record.Row{TargetID: record.Int(1)}
	assert.Equal(t, [][]bool{{true, true, true, true, true}}, r.Matrix([]record.Row{row}))

	row.TargetID = record.Int(3)
	assert.Equal(t, [][]bool{{false, true, true, true, true}}, r.Matrix([]record.Row{row}))

	assert.Empty(t, r.Matrix(nil))
}
