// Package registry provides the column constraint table: for every known
// discriminator value (targetId) the ordered list of columns that apply to a
// row carrying it, with each column's kind, required/disabled flags, numeric
// bounds and default.
//
// The table is declarative YAML and is the single source of truth for
// validation and editability. Adding a target or changing a bound means
// editing the table only.
//
// # Schema Overview
//
//	version: "1"
//	targets:
//	  - targetId: 1
//	    columns:
//	      - key: id              # one of id, targetId, name, dynamicValue, dynamicValue2
//	        title: ID            # optional; reused by other targets for the same key
//	        titles: {ja: ID}     # optional translations of title per language
//	        type: uint           # string | uint | float | binary
//	        required: true
//	        disabled: false      # true makes the cell read-only in the grid
//	        min: 1               # optional, numeric kinds only
//	        max: 9999            # optional, numeric kinds only
//	        default: "1000"      # optional, string-encoded
//
// A table that ships with the module is embedded and returned by Default.
// New and Parse reject structurally broken tables; Lint reports constraints
// that load fine but can never behave as written.
package registry
