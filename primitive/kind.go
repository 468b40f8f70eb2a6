package primitive

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindString // free text
	KindUint   // integral number, bounded by the column's min/max
	KindFloat  // real number, bounded by the column's min/max
	KindBinary // opaque value without numeric interpretation

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// names maps the spelling used in column tables to a kind.
var names = map[string]KindEnum{
	"string": KindString,
	"uint":   KindUint,
	"float":  KindFloat,
	"binary": KindBinary,
}

// ParseKind resolves a column-table spelling ("string", "uint", "float",
// "binary") to its kind. Matching is case-insensitive.
func ParseKind(s string) (KindEnum, error) {
	k, ok := names[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown kind %q (expected string, uint, float or binary)", s)
	}

	return k, nil
}

// Name returns the column-table spelling of the kind, or "" for invalid kinds.
func (k KindEnum) Name() string {
	for name, kind := range names {
		if kind == k {
			return name
		}
	}

	return ""
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindUint, KindFloat:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	return k == KindUint
}

// IsText reports whether values of this kind are validated as plain strings.
func (k KindEnum) IsText() bool {
	switch k {
	default:
		return false
	case KindString, KindBinary:
		return true
	}
}
