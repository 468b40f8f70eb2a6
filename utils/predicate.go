package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// IsWithin checks value against optional inclusive bounds; a nil bound is open.
func IsWithin[T number](min *T, value T, max *T) bool {
	switch {
	case min != nil && max != nil:
		return IsInRange(*min, value, *max)
	case min != nil:
		return *min <= value
	case max != nil:
		return value <= *max
	default:
		return true
	}
}
