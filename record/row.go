// Package record defines the row shape exchanged with the grid component,
// the blank-row factory and the built-in seed dataset.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrNotInteger   = errors.New("value is not an integer")
)

// FieldKey names one field of a Row.
type FieldKey string

const (
	FieldID            FieldKey = "id"
	FieldTargetID      FieldKey = "targetId"
	FieldName          FieldKey = "name"
	FieldDynamicValue  FieldKey = "dynamicValue"
	FieldDynamicValue2 FieldKey = "dynamicValue2"
)

// Fields lists every field key in grid column order.
var Fields = []FieldKey{FieldID, FieldName, FieldTargetID, FieldDynamicValue, FieldDynamicValue2}

// IsValid reports whether k names a field of Row.
func (k FieldKey) IsValid() bool {
	switch k {
	case FieldID, FieldTargetID, FieldName, FieldDynamicValue, FieldDynamicValue2:
		return true
	default:
		return false
	}
}

// IsInteger reports whether the field holds an integer at the grid boundary.
func (k FieldKey) IsInteger() bool {
	return k == FieldID || k == FieldTargetID
}

// Row is one record of the sheet. A nil field is unset.
//
// TargetID is the discriminator: it selects which column constraints apply
// to the rest of the row. Payload values stay string-encoded; numeric
// interpretation happens during validation.
type Row struct {
	ID            *int64  `yaml:"id" json:"id"`
	TargetID      *int64  `yaml:"targetId" json:"targetId"`
	Name          *string `yaml:"name" json:"name"`
	DynamicValue  *string `yaml:"dynamicValue" json:"dynamicValue"`
	DynamicValue2 *string `yaml:"dynamicValue2" json:"dynamicValue2"`
}

// Cell is the string-encoded view of one field.
type Cell struct {
	Value string
	Set   bool
}

// Blank returns a row with every field unset.
func Blank() Row {
	return Row{}
}

// Target returns the row's discriminator, or nil when unclassified.
func (r Row) Target() *int64 {
	return r.TargetID
}

// Lookup returns the string-encoded value of key.
func (r Row) Lookup(key FieldKey) (Cell, error) {
	switch key {
	case FieldID:
		return intCell(r.ID), nil
	case FieldTargetID:
		return intCell(r.TargetID), nil
	case FieldName:
		return strCell(r.Name), nil
	case FieldDynamicValue:
		return strCell(r.DynamicValue), nil
	case FieldDynamicValue2:
		return strCell(r.DynamicValue2), nil
	default:
		return Cell{}, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
}

// Cell is Lookup without the error; unknown keys read as unset.
func (r Row) Cell(key FieldKey) (string, bool) {
	c, err := r.Lookup(key)
	if err != nil {
		return "", false
	}

	return c.Value, c.Set
}

// SetCell stores raw grid input into key. An empty raw value unsets the field.
// Integer fields must parse as base-10 integers; other fields keep raw as is.
func (r *Row) SetCell(key FieldKey, raw string) error {
	if raw == "" {
		return r.Clear(key)
	}

	switch key {
	case FieldID, FieldTargetID:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w: %q", key, ErrNotInteger, raw)
		}

		if key == FieldID {
			r.ID = &n
		} else {
			r.TargetID = &n
		}
	case FieldName:
		r.Name = &raw
	case FieldDynamicValue:
		r.DynamicValue = &raw
	case FieldDynamicValue2:
		r.DynamicValue2 = &raw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}

	return nil
}

// Clear unsets key.
func (r *Row) Clear(key FieldKey) error {
	switch key {
	case FieldID:
		r.ID = nil
	case FieldTargetID:
		r.TargetID = nil
	case FieldName:
		r.Name = nil
	case FieldDynamicValue:
		r.DynamicValue = nil
	case FieldDynamicValue2:
		r.DynamicValue2 = nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}

	return nil
}

// Clone returns a deep copy so callers never share field storage.
func (r Row) Clone() Row {
	return Row{
		ID:            clonePtr(r.ID),
		TargetID:      clonePtr(r.TargetID),
		Name:          clonePtr(r.Name),
		DynamicValue:  clonePtr(r.DynamicValue),
		DynamicValue2: clonePtr(r.DynamicValue2),
	}
}

// CloneAll deep-copies a row slice.
func CloneAll(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i := range rows {
		out[i] = rows[i].Clone()
	}

	return out
}

func intCell(p *int64) Cell {
	if p == nil {
		return Cell{}
	}

	return Cell{Value: strconv.FormatInt(*p, 10), Set: true}
}

func strCell(p *string) Cell {
	if p == nil {
		return Cell{}
	}

	return Cell{Value: *p, Set: true}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
