package sheet

import (
	"fmt"
	"slices"

	"dynsheet/internal/registry"
	"dynsheet/record"
)

// Batch is a working copy of the rows handed to Editor.Batch. Row indexes
// are 0-based.
type Batch struct {
	reg  *registry.Registry
	rows []record.Row
}

// Len returns the current number of rows.
func (b *Batch) Len() int {
	return len(b.rows)
}

// Row returns a copy of the row at index at.
func (b *Batch) Row(at int) (record.Row, error) {
	if err := b.check(at, len(b.rows)); err != nil {
		return record.Row{}, err
	}

	return b.rows[at].Clone(), nil
}

// SetRows replaces every row.
func (b *Batch) SetRows(rows []record.Row) {
	b.rows = record.CloneAll(rows)
}

// SetCell stores raw input into the cell at index at.
func (b *Batch) SetCell(at int, key record.FieldKey, raw string) error {
	if err := b.check(at, len(b.rows)); err != nil {
		return err
	}

	if err := b.rows[at].SetCell(key, raw); err != nil {
		return fmt.Errorf("row %d: %w", at+1, err)
	}

	return nil
}

// InsertRow inserts a blank row before index at.
func (b *Batch) InsertRow(at int) error {
	if err := b.check(at, len(b.rows)+1); err != nil {
		return err
	}

	b.rows = slices.Insert(b.rows, at, record.Blank())

	return nil
}

// AppendRow adds a blank row at the end.
func (b *Batch) AppendRow() {
	b.rows = append(b.rows, record.Blank())
}

// DeleteRow removes the row at index at.
func (b *Batch) DeleteRow(at int) error {
	if err := b.check(at, len(b.rows)); err != nil {
		return err
	}

	b.rows = slices.Delete(b.rows, at, at+1)

	return nil
}

// FillDefaults sets the unset fields of the row at index at to the defaults
// of its target. Rows without a declared target are left alone.
func (b *Batch) FillDefaults(at int) error {
	if err := b.check(at, len(b.rows)); err != nil {
		return err
	}

	row := b.rows[at].Clone()

	t := row.Target()
	if t == nil {
		return nil
	}

	for key, def := range b.reg.Defaults(*t) {
		if _, set := row.Cell(key); set {
			continue
		}

		if err := row.SetCell(key, def); err != nil {
			return fmt.Errorf("row %d default: %w", at+1, err)
		}
	}

	b.rows[at] = row

	return nil
}

func (b *Batch) check(at, n int) error {
	if at < 0 || at >= n {
		return fmt.Errorf("%w: %d (rows: %d)", ErrRowOutOfRange, at, len(b.rows))
	}

	return nil
}
