package registry

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"dynsheet/internal/diagnostic"
)

// Lint reports constraints that load fine but behave surprisingly:
// bounds on text kinds, inverted bounds, fractional bounds on uint columns,
// required columns users cannot edit, and keys some targets leave out.
// Checking defaults against their own column needs the synthesized rules and
// lives in the schema package.
func (r *Registry) Lint() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if len(r.targets) == 0 {
		res.AddWarning("empty_table", "no targets declared; every row uses the fallback rules", "", "")
		return res
	}

	allKeys := r.Keys()

	for _, t := range r.targets {
		tName := targetName(t.ID)

		var declared []string

		for _, c := range t.Columns {
			d := c.Descriptor
			key := string(c.Key)
			declared = append(declared, key)

			if d.HasBounds() && !d.Kind.IsNumber() {
				res.AddWarning("bounds_on_text",
					fmt.Sprintf("min/max are ignored for %s columns", d.Kind.Name()), tName, key)
			}

			if d.Min != nil && d.Max != nil && *d.Min > *d.Max {
				res.AddWarning("inverted_bounds",
					fmt.Sprintf("min %s is greater than max %s; no value can pass", formatBound(*d.Min), formatBound(*d.Max)),
					tName, key)
			}

			if d.Kind.IsInteger() {
				for _, b := range []*float64{d.Min, d.Max} {
					if b != nil && *b != math.Trunc(*b) {
						res.AddWarning("fractional_bound",
							fmt.Sprintf("bound %s of an integer column is not integral", formatBound(*b)), tName, key)
					}
				}
			}

			if d.Required && d.Disabled && d.Default == nil {
				res.AddInfo("required_readonly",
					"required column is not editable and has no default", tName, key)
			}
		}

		for _, k := range allKeys {
			if !slices.Contains(declared, string(k)) {
				res.AddInfo("missing_column",
					"column declared by other targets is not constrained here", tName, string(k))
			}
		}
	}

	return res
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
