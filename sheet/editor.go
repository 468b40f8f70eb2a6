// Package sheet is the editor core behind a spreadsheet grid whose column
// rules depend on each row's targetId.
//
// An Editor owns the rows and the current error report. Every mutation is
// followed by exactly one full validation pass, after which subscribers
// receive the new report.
package sheet

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"

	"dynsheet/internal/cells"
	"dynsheet/internal/index"
	"dynsheet/internal/registry"
	"dynsheet/internal/schema"
	"dynsheet/internal/validate"
	"dynsheet/record"
	"dynsheet/report"
)

// ErrRowOutOfRange is returned for a row index outside the table.
var ErrRowOutOfRange = errors.New("row index out of range")

// Column describes one grid column. Editable is evaluated per cell against
// the row's current target.
type Column struct {
	Key      record.FieldKey
	Title    string
	Editable func(target *int64) bool
}

// Editor holds the sheet state. It is safe for concurrent use.
type Editor struct {
	reg       *registry.Registry
	validator *validate.Validator
	resolver  *cells.Resolver
	seed      []record.Row
	lang      language.Tag

	mu        sync.Mutex
	rows      []record.Row
	report    report.Report
	listeners map[int]func(report.Report)
	nextID    int
}

// New builds the rule engines once, loads the seed rows and validates them.
func New(opts ...Option) (*Editor, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	if s.err != nil {
		return nil, fmt.Errorf("failed to configure editor: %w", s.err)
	}

	if s.reg == nil {
		s.reg = registry.Default()
	}

	if s.seed == nil {
		s.seed = record.Seed()
	}

	so := schema.Options{FoldWidth: s.foldWidth, Printer: s.printer}

	e := &Editor{
		reg: s.reg,
		validator: validate.New(schema.BuildTable(s.reg, so), schema.FallbackFor(s.reg, so),
			validate.WithLogger(s.logger)),
		resolver:  cells.New(index.Build(s.reg)),
		seed:      s.seed,
		lang:      s.printer.Language(),
		listeners: map[int]func(report.Report){},
	}

	e.rows = record.CloneAll(e.seed)
	e.report = e.validator.Validate(e.rows)

	return e, nil
}

// Registry returns the column table the editor was built with.
func (e *Editor) Registry() *registry.Registry {
	return e.reg
}

// Rows returns a copy of the current rows.
func (e *Editor) Rows() []record.Row {
	e.mu.Lock()
	defer e.mu.Unlock()

	return record.CloneAll(e.rows)
}

// Report returns the report of the last validation pass.
func (e *Editor) Report() report.Report {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.report.Clone()
}

// Stats returns the counters of the last validation pass.
func (e *Editor) Stats() validate.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.validator.Stats()
}

// NewRow returns the row the grid inserts: every field unset.
func (e *Editor) NewRow() record.Row {
	return record.Blank()
}

// Columns describes the grid columns in display order, titled in the
// message language.
func (e *Editor) Columns() []Column {
	out := make([]Column, len(record.Fields))

	for i, key := range record.Fields {
		out[i] = Column{
			Key:   key,
			Title: e.reg.SharedLabelIn(e.lang, key),
			Editable: func(target *int64) bool {
				return e.resolver.Editable(target, key)
			},
		}
	}

	return out
}

// Editable reports whether the cell at row index at and key accepts input.
// Indexes outside the table read as unclassified rows.
func (e *Editor) Editable(at int, key record.FieldKey) bool {
	return e.resolver.Editable(e.targetAt(at), key)
}

// Matrix returns the editability of every cell of the current rows, one
// slice per row in Columns order.
func (e *Editor) Matrix() [][]bool {
	return e.resolver.Matrix(e.Rows())
}

// Constraint returns the descriptor governing the cell at row index at.
func (e *Editor) Constraint(at int, key record.FieldKey) (registry.Descriptor, bool) {
	return e.resolver.Constraint(e.targetAt(at), key)
}

func (e *Editor) targetAt(at int) *int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if at < 0 || at >= len(e.rows) {
		return nil
	}

	return e.rows[at].Clone().Target()
}

// Subscribe registers fn to receive the report after every validation pass.
// fn runs on the mutating goroutine after the editor lock is released.
// The returned function removes the subscription.
func (e *Editor) Subscribe(fn func(report.Report)) (cancel func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		delete(e.listeners, id)
	}
}

// SetRows replaces the whole table, as the grid does on every change.
func (e *Editor) SetRows(rows []record.Row) {
	_ = e.Batch(func(b *Batch) error {
		b.SetRows(rows)
		return nil
	})
}

// SetCell stores raw input into the cell at row index at.
func (e *Editor) SetCell(at int, key record.FieldKey, raw string) error {
	return e.Batch(func(b *Batch) error {
		return b.SetCell(at, key, raw)
	})
}

// InsertRow inserts a blank row before index at; at may equal the row count.
func (e *Editor) InsertRow(at int) error {
	return e.Batch(func(b *Batch) error {
		return b.InsertRow(at)
	})
}

// AppendRow adds a blank row at the end.
func (e *Editor) AppendRow() {
	_ = e.Batch(func(b *Batch) error {
		b.AppendRow()
		return nil
	})
}

// DeleteRow removes the row at index at.
func (e *Editor) DeleteRow(at int) error {
	return e.Batch(func(b *Batch) error {
		return b.DeleteRow(at)
	})
}

// FillDefaults sets every unset field of the row at index at to the default
// its target declares.
func (e *Editor) FillDefaults(at int) error {
	return e.Batch(func(b *Batch) error {
		return b.FillDefaults(at)
	})
}

// Reset restores the seed rows.
func (e *Editor) Reset() {
	_ = e.Batch(func(b *Batch) error {
		b.SetRows(e.seed)
		return nil
	})
}

// Batch applies several mutations and validates once afterwards. If fn
// returns an error nothing is applied and no pass runs.
func (e *Editor) Batch(fn func(b *Batch) error) error {
	rep, listeners, err := e.apply(fn)
	if err != nil {
		return err
	}

	for _, l := range listeners {
		l(rep.Clone())
	}

	return nil
}

// apply runs fn and the validation pass under the lock. The lock is released
// even when fn panics or exits the goroutine.
func (e *Editor) apply(fn func(b *Batch) error) (report.Report, []func(report.Report), error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	b := &Batch{reg: e.reg, rows: record.CloneAll(e.rows)}
	if err := fn(b); err != nil {
		return nil, nil, err
	}

	e.rows = b.rows
	e.report = e.validator.Validate(e.rows)

	listeners := make([]func(report.Report), 0, len(e.listeners))

	for id := 0; id < e.nextID; id++ {
		if l, ok := e.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}

	return e.report, listeners, nil
}
