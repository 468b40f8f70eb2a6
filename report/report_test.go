package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "a", Join([]string{"a"}))
	assert.Equal(t, "a | b | c", Join([]string{"a", "b", "c"}))
}

func TestForRow(t *testing.T) {
	r := Report{{Row: 1, Message: "a"}, {Row: 3, Message: "c"}, {Row: 7, Message: "g"}}

	e, ok := r.ForRow(3)
	require.True(t, ok)
	assert.Equal(t, "c", e.Message)

	_, ok = r.ForRow(2)
	assert.False(t, ok)

	_, ok = Report(nil).ForRow(1)
	assert.False(t, ok)
}

func TestEqualAndClone(t *testing.T) {
	r := Report{{Row: 1, Message: "a"}}
	c := r.Clone()

	assert.True(t, r.Equal(c))
	assert.Equal(t, 1, c.Len())

	c[0].Message = "b"
	assert.False(t, r.Equal(c))
	assert.Equal(t, "a", r[0].Message)

	assert.Nil(t, Report(nil).Clone())
	assert.True(t, Report(nil).Equal(Report{}))
}

func TestWriteTable(t *testing.T) {
	r := Report{
		{Row: 1, Message: "Dynamic Value 2: must be between 0 and 9999.9"},
		{Row: 12, Message: "ID: required | Name: required"},
	}

	var buf bytes.Buffer
	require.NoError(t, r.WriteTable(&buf))

	assert.Equal(t, "ROW  MESSAGE\n"+
		"1    Dynamic Value 2: must be between 0 and 9999.9\n"+
		"12   ID: required | Name: required\n", buf.String())
}
