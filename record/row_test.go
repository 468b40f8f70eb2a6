package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynsheet/record"
)

func TestBlank(t *testing.T) {
	t.Parallel()

	row := record.Blank()
	for _, key := range record.Fields {
		_, set := row.Cell(key)
		assert.False(t, set, key)
	}

	assert.Nil(t, row.Target())
}

func TestSetCell(t *testing.T) {
	t.Parallel()

	t.Run("integer fields parse", func(t *testing.T) {
		var row record.Row
		require.NoError(t, row.SetCell(record.FieldTargetID, " 3 "))
		require.NotNil(t, row.TargetID)
		assert.Equal(t, int64(3), *row.TargetID)

		v, set := row.Cell(record.FieldTargetID)
		assert.True(t, set)
		assert.Equal(t, "3", v)
	})

	t.Run("integer fields reject text", func(t *testing.T) {
		var row record.Row
		err := row.SetCell(record.FieldID, "1.5")
		require.ErrorIs(t, err, record.ErrNotInteger)
		assert.Nil(t, row.ID)
	})

	t.Run("payload keeps raw text", func(t *testing.T) {
		var row record.Row
		require.NoError(t, row.SetCell(record.FieldDynamicValue, " 12 "))
		v, set := row.Cell(record.FieldDynamicValue)
		assert.True(t, set)
		assert.Equal(t, " 12 ", v)
	})

	t.Run("empty unsets", func(t *testing.T) {
		row := record.Seed()[0]
		require.NoError(t, row.SetCell(record.FieldName, ""))
		assert.Nil(t, row.Name)
	})

	t.Run("unknown field", func(t *testing.T) {
		var row record.Row
		require.ErrorIs(t, row.SetCell("color", "red"), record.ErrUnknownField)

		_, err := row.Lookup("color")
		require.ErrorIs(t, err, record.ErrUnknownField)
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	orig := record.Seed()[1]
	cp := orig.Clone()
	*cp.Name = "changed"
	*cp.ID = 99

	assert.Equal(t, "floatValue", *orig.Name)
	assert.Equal(t, int64(2), *orig.ID)
}

func TestSeedIsFresh(t *testing.T) {
	t.Parallel()

	a := record.Seed()
	*a[0].Name = "mutated"

	b := record.Seed()
	assert.Equal(t, "uintValue", *b[0].Name)
	assert.Len(t, b, 4)
}

func TestParse(t *testing.T) {
	t.Parallel()

	rows, err := record.Parse([]byte(`
- id: 7
  targetId: 2
  name: "x"
  dynamicValue: "1.5"
- targetId: null
  dynamicValue2: ""
`))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(7), *rows[0].ID)
	assert.Equal(t, "1.5", *rows[0].DynamicValue)
	assert.Nil(t, rows[0].DynamicValue2)

	assert.Nil(t, rows[1].TargetID)
	require.NotNil(t, rows[1].DynamicValue2)
	assert.Empty(t, *rows[1].DynamicValue2)
}
