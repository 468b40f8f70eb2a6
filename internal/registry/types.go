package registry

import (
	"maps"
	"slices"
	"strconv"

	"golang.org/x/text/language"

	"dynsheet/primitive"
	"dynsheet/record"
)

// Descriptor is the rule set governing one field under one target.
type Descriptor struct {
	Kind     primitive.KindEnum
	Required bool
	// Disabled makes the cell read-only; editability is its inverse.
	Disabled bool
	Min      *float64
	Max      *float64
	// Default is the string-encoded value offered for unset cells.
	Default *string
}

// Editable reports whether the grid should allow editing the cell.
func (d Descriptor) Editable() bool {
	return !d.Disabled
}

// HasBounds reports whether either numeric bound is declared.
func (d Descriptor) HasBounds() bool {
	return d.Min != nil || d.Max != nil
}

// Clone returns a copy that shares no pointers with d.
func (d Descriptor) Clone() Descriptor {
	out := d
	if d.Min != nil {
		v := *d.Min
		out.Min = &v
	}

	if d.Max != nil {
		v := *d.Max
		out.Max = &v
	}

	if d.Default != nil {
		v := *d.Default
		out.Default = &v
	}

	return out
}

// Column binds a descriptor to a field key and its optional display title.
// Titles holds translations of Title keyed by message language.
type Column struct {
	Key        record.FieldKey
	Title      string
	Titles     map[language.Tag]string
	Descriptor Descriptor
}

// Target is the ordered column list for one discriminator value.
type Target struct {
	ID      int64
	Columns []Column
}

// Registry is the immutable, validated column table.
type Registry struct {
	version string
	targets []Target
	byID    map[int64]int
	titles  map[record.FieldKey]string
	local   map[language.Tag]map[record.FieldKey]string
}

// Version returns the table format version.
func (r *Registry) Version() string {
	return r.version
}

// TargetIDs returns the declared discriminator values in table order.
func (r *Registry) TargetIDs() []int64 {
	ids := make([]int64, len(r.targets))
	for i, t := range r.targets {
		ids[i] = t.ID
	}

	return ids
}

// Targets returns a deep copy of the table.
func (r *Registry) Targets() []Target {
	out := make([]Target, len(r.targets))
	for i, t := range r.targets {
		out[i] = Target{ID: t.ID, Columns: cloneColumns(t.Columns)}
	}

	return out
}

// Columns returns the columns declared for target in declaration order.
func (r *Registry) Columns(target int64) ([]Column, bool) {
	i, ok := r.byID[target]
	if !ok {
		return nil, false
	}

	return cloneColumns(r.targets[i].Columns), true
}

// Titles returns, for every key that has one, the first title declared for
// it in table order.
func (r *Registry) Titles() map[record.FieldKey]string {
	return maps.Clone(r.titles)
}

// Title returns the shared title of key, or "" when none is declared.
func (r *Registry) Title(key record.FieldKey) string {
	return r.titles[key]
}

// Label returns the text used for key in messages about rows of target:
// the column's own title, else the shared title, else the raw key.
func (r *Registry) Label(target int64, key record.FieldKey) string {
	if i, ok := r.byID[target]; ok {
		for _, c := range r.targets[i].Columns {
			if c.Key == key && c.Title != "" {
				return c.Title
			}
		}
	}

	return r.SharedLabel(key)
}

// SharedLabel is Label for rows without a recognized target.
func (r *Registry) SharedLabel(key record.FieldKey) string {
	if t := r.titles[key]; t != "" {
		return t
	}

	return string(key)
}

// LabelIn is Label for messages rendered in lang. Titles translated to lang
// win over the untranslated ones.
func (r *Registry) LabelIn(lang language.Tag, target int64, key record.FieldKey) string {
	if i, ok := r.byID[target]; ok {
		for _, c := range r.targets[i].Columns {
			if c.Key == key && c.Titles[lang] != "" {
				return c.Titles[lang]
			}
		}
	}

	if t := r.local[lang][key]; t != "" {
		return t
	}

	return r.Label(target, key)
}

// SharedLabelIn is SharedLabel for messages rendered in lang.
func (r *Registry) SharedLabelIn(lang language.Tag, key record.FieldKey) string {
	if t := r.local[lang][key]; t != "" {
		return t
	}

	return r.SharedLabel(key)
}

// Defaults returns the string-encoded defaults declared for target.
func (r *Registry) Defaults(target int64) map[record.FieldKey]string {
	i, ok := r.byID[target]
	if !ok {
		return nil
	}

	out := map[record.FieldKey]string{}
	for _, c := range r.targets[i].Columns {
		if c.Descriptor.Default != nil {
			out[c.Key] = *c.Descriptor.Default
		}
	}

	return out
}

// Keys returns every field key declared by at least one target, in first
// declaration order.
func (r *Registry) Keys() []record.FieldKey {
	var keys []record.FieldKey

	for _, t := range r.targets {
		for _, c := range t.Columns {
			if !slices.Contains(keys, c.Key) {
				keys = append(keys, c.Key)
			}
		}
	}

	return keys
}

func targetName(id int64) string {
	return strconv.FormatInt(id, 10)
}

func cloneColumns(cols []Column) []Column {
	out := make([]Column, len(cols))
	for i, c := range cols {
		out[i] = Column{Key: c.Key, Title: c.Title, Titles: maps.Clone(c.Titles), Descriptor: c.Descriptor.Clone()}
	}

	return out
}
