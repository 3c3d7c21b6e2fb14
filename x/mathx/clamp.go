package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampU8 clamps an int channel value into a byte.
func ClampU8(v int) uint8 { return uint8(Clamp(v, 0, 255)) }

// WrapBelow returns v, or reset when v has gone below lo.
func WrapBelow[T constraints.Signed](v, lo, reset T) T {
	if v < lo {
		return reset
	}
	return v
}
