package i64

import (
	"github.com/pkg/errors"
)

// Add returns the (possibly wrapped) sum of x and y.
func (x Int64) Add(y Int64) Int64 {
	return Int64{v: x.v + y.v}
}

// Subtract returns the (possibly wrapped) difference of x and y.
func (x Int64) Subtract(y Int64) Int64 {
	return Int64{v: x.v - y.v}
}

// Multiply returns the (possibly wrapped) product of x and y.
func (x Int64) Multiply(y Int64) Int64 {
	return Int64{v: x.v * y.v}
}

// Divide returns the quotient of x and y, truncated toward zero.
//
// Divide returns an error if y is 0.
// [MinInt64] divided by -1 wraps around to [MinInt64], the same way
// a hardware 64-bit division overflows.
func (x Int64) Divide(y Int64) (Int64, error) {
	if y.v == 0 {
		return Int64{}, errors.Wrapf(ErrDivisionByZero, "computing %v / %v", x, y)
	}
	if y.v == -1 {
		return x.Negative(), nil
	}
	return Int64{v: x.v / y.v}, nil
}

// Mod returns the remainder of the truncated division of x by y.
// The result has the sign of x, so that
//
//	x == y * (x / y) + x % y
//
// Mod returns an error if y is 0.
// [MinInt64] modulo -1 is 0.
func (x Int64) Mod(y Int64) (Int64, error) {
	if y.v == 0 {
		return Int64{}, errors.Wrapf(ErrDivisionByZero, "computing %v %% %v", x, y)
	}
	if y.v == -1 {
		return Int64{}, nil
	}
	return Int64{v: x.v % y.v}, nil
}

// DivMod returns the truncated quotient and the remainder of x and y.
// See [Int64.Divide] and [Int64.Mod] for details.
func (x Int64) DivMod(y Int64) (q, r Int64, err error) {
	q, err = x.Divide(y)
	if err != nil {
		return Int64{}, Int64{}, err
	}
	return q, x.Subtract(q.Multiply(y)), nil
}

// Pow returns x raised to the power of y, wrapping around at the boundary
// of a 64-bit integer.
// Any x, including 0, raised to the power of 0 is 1.
//
// Pow returns an error if y is negative.
func (x Int64) Pow(y Int64) (Int64, error) {
	if y.v < 0 {
		return Int64{}, errors.Wrapf(ErrInvalidInput, "the exponent %v is smaller than zero", y)
	}

	// Exponentiation by squaring
	b, e, z := x.v, uint64(y.v), int64(1)
	for e > 0 {
		if e&1 == 1 {
			z *= b
		}
		e >>= 1
		if e > 0 {
			b *= b
		}
	}
	return Int64{v: z}, nil
}

// Negative returns the (possibly wrapped) negation of x.
// Negating [MinInt64] yields [MinInt64], which is the only
// non-zero fixed point of two's-complement negation.
func (x Int64) Negative() Int64 {
	return Int64{v: -x.v}
}

// Abs returns the (possibly wrapped) absolute value of x.
// Abs of [MinInt64] is [MinInt64].
func (x Int64) Abs() Int64 {
	if x.v < 0 {
		return x.Negative()
	}
	return x
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int64) Sign() int {
	switch {
	case x.v < 0:
		return -1
	case x.v > 0:
		return 1
	}
	return 0
}

// IsNeg returns:
//
//	true  if x < 0
//	false otherwise
func (x Int64) IsNeg() bool {
	return x.v < 0
}

// IsPos returns:
//
//	true  if x > 0
//	false otherwise
func (x Int64) IsPos() bool {
	return x.v > 0
}

// IsZero returns:
//
//	true  if x == 0
//	false otherwise
func (x Int64) IsZero() bool {
	return x.v == 0
}
