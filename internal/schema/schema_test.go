package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"dynsheet/internal/messages"
	"dynsheet/internal/registry"
	"dynsheet/primitive"
	"dynsheet/record"
)

func f64(v float64) *float64 { return &v }

func rawLabels(key record.FieldKey) string { return string(key) }

func validRow(target int64) record.Row {
	return record.Row{
		ID:            record.Int(1),
		TargetID:      record.Int(target),
		Name:          record.Str("row"),
		DynamicValue:  record.Str("100"),
		DynamicValue2: record.Str("5.5"),
	}
}

func messagesOf(t *testing.T, err error) []string {
	t.Helper()

	if err == nil {
		return nil
	}

	list, ok := AsViolations(err)
	require.True(t, ok, "unexpected fault: %v", err)

	return list.Messages()
}

func TestBuildTable(t *testing.T) {
	table := BuildTable(registry.Default(), Options{})

	require.Len(t, table, 4)

	v, ok := table.For(record.Int(2))
	require.True(t, ok)
	assert.Equal(t, int64(2), *v.Target())
	assert.Equal(t, record.Fields, v.Fields())

	_, ok = table.For(nil)
	assert.False(t, ok)

	_, ok = table.For(record.Int(7))
	assert.False(t, ok)
}

func TestValidateDefaultTable(t *testing.T) {
	table := BuildTable(registry.Default(), Options{})

	tests := []struct {
		name     string
		row      func() record.Row
		expected []string
	}{
		{
			name: "valid uint row",
			row:  func() record.Row { return validRow(1) },
		},
		{
			name: "seed row 1",
			row:  func() record.Row { return record.Seed()[0] },
			expected: []string{
				"Dynamic Value 2: must be between 0 and 9999.9",
			},
		},
		{
			name: "fractional uint",
			row: func() record.Row {
				r := validRow(1)
				r.DynamicValue = record.Str("100.5")
				return r
			},
			expected: []string{"Dynamic Value: must be between 0 and 9999"},
		},
		{
			name: "below min",
			row: func() record.Row {
				r := validRow(1)
				r.ID = record.Int(0)
				return r
			},
			expected: []string{"ID: must be at least 1"},
		},
		{
			name: "above max float",
			row: func() record.Row {
				r := validRow(2)
				r.DynamicValue = record.Str("10000")
				return r
			},
			expected: []string{"Dynamic Value: must be between 0 and 9999.9"},
		},
		{
			name: "fractional float accepted",
			row: func() record.Row {
				r := validRow(2)
				r.DynamicValue = record.Str("1.0")
				return r
			},
		},
		{
			name: "string target accepts any text",
			row: func() record.Row {
				r := validRow(3)
				r.DynamicValue = record.Str("hoge")
				return r
			},
		},
		{
			name: "empty string is absent",
			row: func() record.Row {
				r := validRow(3)
				r.DynamicValue = record.Str("")
				r.Name = record.Str("")
				return r
			},
			expected: []string{"Name: required", "Dynamic Value: required"},
		},
		{
			name: "required numeric blank reports range and presence",
			row: func() record.Row {
				return record.Row{TargetID: record.Int(1)}
			},
			expected: []string{
				"ID: must be at least 1",
				"ID: required",
				"Name: required",
				"Dynamic Value: must be between 0 and 9999",
				"Dynamic Value: required",
				"Dynamic Value 2: must be between 0 and 9999.9",
				"Dynamic Value 2: required",
			},
		},
		{
			name: "whitespace is zero",
			row: func() record.Row {
				r := validRow(1)
				r.DynamicValue = record.Str("  ")
				return r
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tt.row()
			v, ok := table.For(row.TargetID)
			require.True(t, ok)

			assert.Equal(t, tt.expected, messagesOf(t, v.Validate(row)))
		})
	}
}

func TestMessagePriority(t *testing.T) {
	cols := []registry.Column{
		{Key: record.FieldName, Descriptor: registry.Descriptor{Kind: primitive.KindUint, Required: true}},
		{Key: record.FieldTargetID, Descriptor: registry.Descriptor{Kind: primitive.KindUint, Required: true, Max: f64(5)}},
		{Key: record.FieldDynamicValue, Descriptor: registry.Descriptor{Kind: primitive.KindFloat}},
		{Key: record.FieldDynamicValue2, Descriptor: registry.Descriptor{Kind: primitive.KindFloat, Max: f64(2.5)}},
		{Key: record.FieldID, Descriptor: registry.Descriptor{Kind: primitive.KindBinary}},
	}

	v := Synthesize(9, cols, rawLabels, Options{})

	row := record.Row{
		TargetID:      record.Int(6),
		Name:          record.Str("abc"),
		DynamicValue:  record.Str("abc"),
		DynamicValue2: record.Str("3"),
	}

	err := v.Validate(row)
	require.Error(t, err)
	assert.Equal(t, "name: required (and 3 more)", err.Error())

	assert.Equal(t, []string{
		"name: required",
		"targetId: must be at most 5",
		"dynamicValue: must be numeric",
		"dynamicValue2: must be at most 2.5",
	}, messagesOf(t, err))

	// optional fields accept unset and empty values
	row.Name = record.Str("7")
	row.TargetID = record.Int(5)
	row.DynamicValue = nil
	row.DynamicValue2 = record.Str("")
	assert.NoError(t, v.Validate(row))
}

func TestFallback(t *testing.T) {
	reg := registry.Default()
	v := FallbackFor(reg, Options{})

	assert.Nil(t, v.Target())
	assert.Equal(t, []record.FieldKey{record.FieldID, record.FieldTargetID, record.FieldName}, v.Fields())

	assert.Equal(t, []string{
		"ID: required",
		"Target ID: required",
		"Name: required",
	}, messagesOf(t, v.Validate(record.Blank())))

	// presence only: empty text and unknown targets pass
	row := record.Row{ID: record.Int(-5), TargetID: record.Int(99), Name: record.Str("")}
	assert.NoError(t, v.Validate(row))

	bare := Fallback(rawLabels, nil)
	assert.Equal(t, []string{"name: required"},
		messagesOf(t, bare.Validate(record.Row{ID: record.Int(1), TargetID: record.Int(1)})))
}

func TestFaults(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		v := Synthesize(1, []registry.Column{{Key: record.FieldName}}, rawLabels, Options{})

		err := v.Validate(validRow(1))
		require.ErrorIs(t, err, ErrInvalidKind)

		_, ok := AsViolations(err)
		assert.False(t, ok)
	})

	t.Run("unknown field", func(t *testing.T) {
		cols := []registry.Column{{Key: "price", Descriptor: registry.Descriptor{Kind: primitive.KindFloat}}}
		v := Synthesize(1, cols, rawLabels, Options{})

		require.ErrorIs(t, v.Validate(validRow(1)), record.ErrUnknownField)
	})
}

func TestOptions(t *testing.T) {
	reg := registry.Default()

	t.Run("japanese", func(t *testing.T) {
		table := BuildTable(reg, Options{Printer: messages.NewPrinter(language.Japanese)})
		v, _ := table.For(record.Int(1))

		assert.Equal(t, []string{"動的型値2: 0〜9999.9の範囲で入力してください"},
			messagesOf(t, v.Validate(record.Seed()[0])))

		fallback := FallbackFor(reg, Options{Printer: messages.NewPrinter(language.Japanese)})
		assert.Equal(t, []string{"ID: 必須です", "ターゲットID: 必須です", "名前: 必須です"},
			messagesOf(t, fallback.Validate(record.Blank())))
	})

	t.Run("fold width", func(t *testing.T) {
		row := validRow(1)
		row.DynamicValue = record.Str("１００")

		plain, _ := BuildTable(reg, Options{}).For(record.Int(1))
		assert.Error(t, plain.Validate(row))

		folded, _ := BuildTable(reg, Options{FoldWidth: true}).For(record.Int(1))
		assert.NoError(t, folded.Validate(row))
	})
}

func TestSynthesizeDoesNotRetainColumns(t *testing.T) {
	cols := []registry.Column{
		{Key: record.FieldDynamicValue, Descriptor: registry.Descriptor{Kind: primitive.KindFloat, Max: f64(10)}},
	}

	v := Synthesize(1, cols, rawLabels, Options{})
	*cols[0].Descriptor.Max = 1

	row := record.Row{DynamicValue: record.Str("5")}
	assert.NoError(t, v.Validate(row))
}

func TestCheckDefaults(t *testing.T) {
	res := CheckDefaults(registry.Default(), Options{})
	assert.True(t, res.IsValid())
	assert.Empty(t, res.Warnings)

	reg, err := registry.Parse([]byte(`
targets:
  - targetId: 1
    columns:
      - {key: id, type: uint, default: x}
      - {key: name, type: string, required: true, default: ""}
      - {key: dynamicValue, type: uint, min: 0, max: 10, default: "11"}
      - {key: dynamicValue2, type: float, default: "2.5"}
`))
	require.NoError(t, err)

	res = CheckDefaults(reg, Options{})
	require.Len(t, res.Warnings, 3)

	fields := make([]string, len(res.Warnings))
	for i, w := range res.Warnings {
		assert.Equal(t, "invalid_default", w.Code)
		fields[i] = w.Field
	}

	assert.Equal(t, []string{"id", "name", "dynamicValue"}, fields)
	assert.Contains(t, res.Warnings[2].Message, "must be between 0 and 10")
}
