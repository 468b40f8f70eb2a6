// Package validate runs the per-row validators over a whole table and folds
// the results into a report.
//
// Each row is checked by the validator of its target, or by the fallback when
// the target is unset or undeclared. Rule failures become report entries.
// Anything else a validator returns, including a panic, is logged and the
// row is left out of the report so one broken rule cannot stop the pass.
package validate

import (
	"fmt"
	"log"
	"os"

	"dynsheet/internal/schema"
	"dynsheet/record"
	"dynsheet/report"
)

// Logger receives internal faults. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// RowValidator checks one row; *schema.Validator satisfies it.
type RowValidator interface {
	Validate(row record.Row) error
}

// Stats counts the outcome of the last pass.
type Stats struct {
	Rows    int
	Invalid int
	Faults  int
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the fault sink.
func WithLogger(l Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// Validator validates whole tables. It keeps no row state between passes
// and is not safe for concurrent use.
type Validator struct {
	table    map[int64]RowValidator
	fallback RowValidator
	logger   Logger
	stats    Stats
}

// New builds a table validator from the synthesized schema table and the
// fallback validator.
func New(table schema.Table, fallback RowValidator, opts ...Option) *Validator {
	v := &Validator{
		table:    make(map[int64]RowValidator, len(table)),
		fallback: fallback,
		logger:   log.New(os.Stderr, "dynsheet: ", log.LstdFlags),
	}

	for id, sv := range table {
		v.table[id] = sv
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Override replaces the validator of one target. It is meant for tests and
// embedders that supply custom rules.
func (v *Validator) Override(target int64, rv RowValidator) {
	v.table[target] = rv
}

// Validate checks every row and returns the full report. Rows are numbered
// from 1. The result depends only on rows.
func (v *Validator) Validate(rows []record.Row) report.Report {
	var out report.Report

	stats := Stats{Rows: len(rows)}

	for i, row := range rows {
		err := v.run(v.pick(row), row)
		if err == nil {
			continue
		}

		if list, ok := schema.AsViolations(err); ok {
			out = append(out, report.RowError{Row: i + 1, Message: report.Join(list.Messages())})
			stats.Invalid++

			continue
		}

		stats.Faults++
		v.logger.Printf("unexpected error validating row %d: %v", i+1, err)
	}

	v.stats = stats

	return out
}

// Stats returns the counters of the last pass.
func (v *Validator) Stats() Stats {
	return v.stats
}

func (v *Validator) pick(row record.Row) RowValidator {
	if t := row.Target(); t != nil {
		if rv, ok := v.table[*t]; ok {
			return rv
		}
	}

	return v.fallback
}

func (v *Validator) run(rv RowValidator, row record.Row) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validator panicked: %v", r)
		}
	}()

	return rv.Validate(row)
}
