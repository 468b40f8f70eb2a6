// Package schema turns column descriptors into per-target row validators.
//
// A Validator checks every declared column of a row and reports all
// failures at once. Messages are rendered when the validator is built, so
// validating a row never touches the message catalog.
package schema

import (
	"errors"
	"fmt"

	"dynsheet/internal/messages"
	"dynsheet/internal/registry"
	"dynsheet/primitive"
	"dynsheet/record"
)

// ErrInvalidKind is returned by Validate for a column whose kind has no rule.
var ErrInvalidKind = errors.New("invalid column kind")

// Options tune validator construction.
type Options struct {
	// FoldWidth maps full-width digits and signs to ASCII before numeric
	// parsing.
	FoldWidth bool
	// Printer renders messages; nil means English.
	Printer *messages.Printer
}

func (o Options) printer() *messages.Printer {
	if o.Printer == nil {
		return messages.Default()
	}

	return o.Printer
}

// Labels resolves the display label of a field.
type Labels func(key record.FieldKey) string

// Validator checks rows against the rules of one target.
type Validator struct {
	target    *int64
	foldWidth bool
	rules     []fieldRule
}

type fieldRule struct {
	key      record.FieldKey
	kind     primitive.KindEnum
	required bool
	minV     *float64
	maxV     *float64
	// presenceOnly rules accept any set value, empty text included.
	presenceOnly bool

	kindMsg     string
	requiredMsg string
}

// Synthesize builds the validator for target from its columns. It reads
// cols without retaining them.
func Synthesize(target int64, cols []registry.Column, labels Labels, opts Options) *Validator {
	p := opts.printer()
	v := &Validator{target: &target, foldWidth: opts.FoldWidth, rules: make([]fieldRule, 0, len(cols))}

	for _, c := range cols {
		d := c.Descriptor.Clone()
		label := labels(c.Key)

		v.rules = append(v.rules, fieldRule{
			key:         c.Key,
			kind:        d.Kind,
			required:    d.Required,
			minV:        d.Min,
			maxV:        d.Max,
			kindMsg:     kindMessage(p, label, d),
			requiredMsg: p.Sprintf(messages.Required, label),
		})
	}

	return v
}

// Fallback builds the validator used for rows without a recognized target:
// id, targetId and name must be set, and nothing else is checked.
func Fallback(labels Labels, p *messages.Printer) *Validator {
	if p == nil {
		p = messages.Default()
	}

	v := &Validator{}

	for _, key := range []record.FieldKey{record.FieldID, record.FieldTargetID, record.FieldName} {
		msg := p.Sprintf(messages.Required, labels(key))
		v.rules = append(v.rules, fieldRule{
			key:          key,
			required:     true,
			presenceOnly: true,
			kindMsg:      msg,
			requiredMsg:  msg,
		})
	}

	return v
}

// kindMessage picks the single message shown when the kind rule fails.
func kindMessage(p *messages.Printer, label string, d registry.Descriptor) string {
	if !d.Kind.IsNumber() {
		return p.Sprintf(messages.Required, label)
	}

	switch {
	case d.Required && !d.HasBounds():
		return p.Sprintf(messages.Required, label)
	case d.Min != nil && d.Max != nil:
		return p.Sprintf(messages.Between, label, formatBound(*d.Min), formatBound(*d.Max))
	case d.Min != nil:
		return p.Sprintf(messages.AtLeast, label, formatBound(*d.Min))
	case d.Max != nil:
		return p.Sprintf(messages.AtMost, label, formatBound(*d.Max))
	default:
		return p.Sprintf(messages.Numeric, label)
	}
}

// Target returns the discriminator the validator was built for, or nil for
// the fallback.
func (v *Validator) Target() *int64 {
	if v.target == nil {
		return nil
	}

	t := *v.target

	return &t
}

// Fields lists the checked fields in rule order.
func (v *Validator) Fields() []record.FieldKey {
	out := make([]record.FieldKey, len(v.rules))
	for i, r := range v.rules {
		out[i] = r.key
	}

	return out
}

// Validate checks row. It returns nil when every rule passes, Violations when
// some fail, and any other error when a rule cannot be evaluated at all.
func (v *Validator) Validate(row record.Row) error {
	var out Violations

	for _, r := range v.rules {
		cell, err := row.Lookup(r.key)
		if err != nil {
			return fmt.Errorf("column %s: %w", r.key, err)
		}

		msgs, err := r.check(cell, v.foldWidth)
		if err != nil {
			return err
		}

		for _, m := range msgs {
			out = append(out, Violation{Field: r.key, Message: m})
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// check returns the messages of every failed check on cell.
func (r fieldRule) check(cell record.Cell, foldWidth bool) ([]string, error) {
	if r.presenceOnly {
		if cell.Set {
			return nil, nil
		}

		return []string{r.kindMsg}, nil
	}

	absent := !cell.Set || cell.Value == ""
	if absent && !r.required {
		return nil, nil
	}

	var ok bool

	switch {
	case r.kind.IsNumber():
		if absent {
			break
		}

		f, parsed := parseNumber(cell.Value, foldWidth)
		ok = parsed && numberFits(f, r.minV, r.maxV, r.kind.IsInteger())
	case r.kind.IsText():
		ok = !absent
	default:
		return nil, fmt.Errorf("column %s: %w: %s", r.key, ErrInvalidKind, r.kind)
	}

	var msgs []string
	if !ok {
		msgs = append(msgs, r.kindMsg)
	}

	// a required blank cell also fails the presence check; identical text is
	// reported once
	if absent && r.requiredMsg != r.kindMsg {
		msgs = append(msgs, r.requiredMsg)
	}

	return msgs, nil
}
