package schema

import (
	"fmt"
	"strconv"
	"strings"

	"dynsheet/internal/diagnostic"
	"dynsheet/internal/registry"
	"dynsheet/record"
)

// Table holds one validator per declared target.
type Table map[int64]*Validator

// BuildTable synthesizes a validator for every target of reg. Labels come
// from the registry titles in the printer's language.
func BuildTable(reg *registry.Registry, opts Options) Table {
	t := Table{}
	lang := opts.printer().Language()

	for _, target := range reg.Targets() {
		id := target.ID
		labels := func(key record.FieldKey) string { return reg.LabelIn(lang, id, key) }
		t[id] = Synthesize(id, target.Columns, labels, opts)
	}

	return t
}

// For returns the validator of target; nil or undeclared targets are not
// found.
func (t Table) For(target *int64) (*Validator, bool) {
	if target == nil {
		return nil, false
	}

	v, ok := t[*target]

	return v, ok
}

// FallbackFor builds the fallback validator labelled with reg's shared titles.
func FallbackFor(reg *registry.Registry, opts Options) *Validator {
	p := opts.printer()

	return Fallback(func(key record.FieldKey) string {
		return reg.SharedLabelIn(p.Language(), key)
	}, p)
}

// CheckDefaults reports every configured default that its own column would
// reject.
func CheckDefaults(reg *registry.Registry, opts Options) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	table := BuildTable(reg, opts)

	for _, target := range reg.Targets() {
		v := table[target.ID]
		tName := strconv.FormatInt(target.ID, 10)

		for i, c := range target.Columns {
			if c.Descriptor.Default == nil {
				continue
			}

			row := record.Blank()
			if err := row.SetCell(c.Key, *c.Descriptor.Default); err != nil {
				res.AddWarning("invalid_default", fmt.Sprintf("default %q: %v", *c.Descriptor.Default, err),
					tName, string(c.Key))

				continue
			}

			cell, _ := row.Lookup(c.Key)

			msgs, err := v.rules[i].check(cell, v.foldWidth)
			if err != nil {
				res.AddWarning("invalid_default", err.Error(), tName, string(c.Key))
				continue
			}

			if len(msgs) > 0 {
				res.AddWarning("invalid_default",
					fmt.Sprintf("default %q is rejected: %s", *c.Descriptor.Default, strings.Join(msgs, ", ")),
					tName, string(c.Key))
			}
		}
	}

	return res
}
