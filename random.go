package i64

import (
	"math/bits"
	"math/rand/v2"
)

// RandSource is a source of uniformly distributed 64-bit random values.
// [math/rand/v2.Rand] and [math/rand/v2.Source] implementations satisfy it.
type RandSource interface {
	Uint64() uint64
}

// globalSource draws from the goroutine-safe top-level generator of
// math/rand/v2.
type globalSource struct{}

func (globalSource) Uint64() uint64 {
	return rand.Uint64()
}

// Random returns a uniformly distributed integer between x and y inclusive.
// The bounds may be given in either order.
// It uses the top-level generator of math/rand/v2 and is safe for concurrent use.
func (x Int64) Random(y Int64) Int64 {
	return RandomFrom(globalSource{}, x, y)
}

// RandomFrom is like [Int64.Random] but draws from src.
// The sample is computed entirely in the 64-bit domain, without an
// intermediate float.
func RandomFrom(src RandSource, a, b Int64) Int64 {
	lo, hi := a, b
	if lo.v > hi.v {
		lo, hi = hi, lo
	}
	span := uint64(hi.v) - uint64(lo.v)
	if span == 1<<64-1 {
		return Int64{v: int64(src.Uint64())}
	}
	return Int64{v: int64(uint64(lo.v) + uint64n(src, span+1))}
}

// uint64n returns a uniformly distributed value in [0, n) using
// Lemire's multiply-shift method with rejection.
func uint64n(src RandSource, n uint64) uint64 {
	if n&(n-1) == 0 { // n is a power of two
		return src.Uint64() & (n - 1)
	}
	hi, lo := bits.Mul64(src.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(src.Uint64(), n)
		}
	}
	return hi
}
