package validate

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min accepts values greater than or equal to min.
func Min[T Numeric](min T) func(T) bool {
	return func(v T) bool {
		return v >= min
	}
}

// Max accepts values less than or equal to max.
func Max[T Numeric](max T) func(T) bool {
	return func(v T) bool {
		return v <= max
	}
}

// Between accepts values in the inclusive range [min, max].
func Between[T Numeric](min, max T) func(T) bool {
	return func(v T) bool {
		return v >= min && v <= max
	}
}

// Positive accepts values strictly greater than zero.
func Positive[T Numeric]() func(T) bool {
	return func(v T) bool {
		return v > 0
	}
}
