package validate

import "strings"

// NonZero accepts values different from the type's zero value.
func NonZero[T comparable]() func(T) bool {
	return func(v T) bool {
		var zero T
		return v != zero
	}
}

// OneOf accepts values equal to one of the allowed values.
func OneOf[T comparable](allowed ...T) func(T) bool {
	return func(v T) bool {
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}
}

// OneOfFold accepts strings equal to one of the allowed values under
// case-insensitive comparison.
func OneOfFold(allowed ...string) func(string) bool {
	return func(v string) bool {
		for _, a := range allowed {
			if strings.EqualFold(v, a) {
				return true
			}
		}
		return false
	}
}
