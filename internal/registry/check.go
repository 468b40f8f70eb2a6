package registry

import (
	"fmt"

	"golang.org/x/text/language"

	"dynsheet/internal/diagnostic"
	"dynsheet/internal/match"
	"dynsheet/record"
)

// SupportedVersion is the only table format version understood.
const SupportedVersion = "1"

// New validates the structure of targets and builds an immutable Registry.
// The returned error lists every structural problem found.
func New(version string, targets []Target) (*Registry, error) {
	if version == "" {
		version = SupportedVersion
	}

	if res := Check(version, targets); res.HasErrors() {
		return nil, fmt.Errorf("invalid column table: %w", res.Error())
	}

	reg := &Registry{
		version: version,
		targets: make([]Target, len(targets)),
		byID:    make(map[int64]int, len(targets)),
		titles:  map[record.FieldKey]string{},
		local:   map[language.Tag]map[record.FieldKey]string{},
	}

	for i, t := range targets {
		reg.targets[i] = Target{ID: t.ID, Columns: cloneColumns(t.Columns)}
		reg.byID[t.ID] = i

		for _, c := range t.Columns {
			if _, ok := reg.titles[c.Key]; !ok && c.Title != "" {
				reg.titles[c.Key] = c.Title
			}

			for lang, title := range c.Titles {
				if reg.local[lang] == nil {
					reg.local[lang] = map[record.FieldKey]string{}
				}

				if _, ok := reg.local[lang][c.Key]; !ok && title != "" {
					reg.local[lang][c.Key] = title
				}
			}
		}
	}

	return reg, nil
}

// Check reports structural errors of a table: unsupported version, duplicate
// targets, unknown or duplicate field keys and invalid kinds.
func Check(version string, targets []Target) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if version != SupportedVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported table version %q (expected %q)", version, SupportedVersion), "", "")
	}

	knownKeys := make([]string, len(record.Fields))
	for i, k := range record.Fields {
		knownKeys[i] = string(k)
	}

	seenTargets := map[int64]struct{}{}

	for _, t := range targets {
		tName := targetName(t.ID)

		if _, ok := seenTargets[t.ID]; ok {
			res.AddError("duplicate_target", fmt.Sprintf("target %d is declared more than once", t.ID), tName, "")
			continue
		}

		seenTargets[t.ID] = struct{}{}

		seenKeys := map[record.FieldKey]struct{}{}

		for _, c := range t.Columns {
			if !c.Key.IsValid() {
				res.AddError("unknown_key", fmt.Sprintf("unknown field %q", c.Key), tName, string(c.Key),
					match.Suggest(string(c.Key), knownKeys, match.DefaultThreshold, 2)...)

				continue
			}

			if _, ok := seenKeys[c.Key]; ok {
				res.AddError("duplicate_key", "column is declared more than once", tName, string(c.Key))
				continue
			}

			seenKeys[c.Key] = struct{}{}

			if !c.Descriptor.Kind.IsValid() {
				res.AddError("invalid_kind", fmt.Sprintf("invalid column type %s", c.Descriptor.Kind), tName, string(c.Key))
			}
		}
	}

	return res
}
