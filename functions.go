package i64

// The functions in this file accept any input representation supported by
// [Resolve] and are safe for concurrent use.
// They return an error if an operand cannot be resolved, in addition to the
// errors of the corresponding [Int64] method.

func apply(a, b any, op func(Int64, Int64) Int64) (Int64, error) {
	x, y, err := resolve2(a, b)
	if err != nil {
		return Int64{}, err
	}
	return op(x, y), nil
}

func applyErr(a, b any, op func(Int64, Int64) (Int64, error)) (Int64, error) {
	x, y, err := resolve2(a, b)
	if err != nil {
		return Int64{}, err
	}
	return op(x, y)
}

func apply1(a any, op func(Int64) Int64) (Int64, error) {
	x, err := Resolve(a)
	if err != nil {
		return Int64{}, err
	}
	return op(x), nil
}

func test(a, b any, op func(Int64, Int64) bool) (bool, error) {
	x, y, err := resolve2(a, b)
	if err != nil {
		return false, err
	}
	return op(x, y), nil
}

// Add computes a + b, wrapping around at the boundary of a 64-bit integer.
func Add(a, b any) (Int64, error) {
	return apply(a, b, Int64.Add)
}

// Subtract computes a - b, wrapping around at the boundary of a 64-bit integer.
func Subtract(a, b any) (Int64, error) {
	return apply(a, b, Int64.Subtract)
}

// Multiply computes a * b, wrapping around at the boundary of a 64-bit integer.
func Multiply(a, b any) (Int64, error) {
	return apply(a, b, Int64.Multiply)
}

// Divide computes a / b, truncated toward zero.
// See [Int64.Divide].
func Divide(a, b any) (Int64, error) {
	return applyErr(a, b, Int64.Divide)
}

// Mod computes a % b.
// See [Int64.Mod].
func Mod(a, b any) (Int64, error) {
	return applyErr(a, b, Int64.Mod)
}

// Pow computes a ^ b, wrapping around at the boundary of a 64-bit integer.
// See [Int64.Pow].
func Pow(a, b any) (Int64, error) {
	return applyErr(a, b, Int64.Pow)
}

// ShiftLeft computes a << (b mod 64).
func ShiftLeft(a, b any) (Int64, error) {
	return apply(a, b, Int64.ShiftLeft)
}

// ShiftRight computes a >> (b mod 64), preserving the sign bit.
func ShiftRight(a, b any) (Int64, error) {
	return apply(a, b, Int64.ShiftRight)
}

// ShiftRightUnsigned computes a >>> (b mod 64), filling with zero bits.
func ShiftRightUnsigned(a, b any) (Int64, error) {
	return apply(a, b, Int64.ShiftRightUnsigned)
}

// RotateLeft rotates the bits of a to the left by (n mod 64), wrapping the
// truncated bits to the end of the resulting integer.
func RotateLeft(a, n any) (Int64, error) {
	return apply(a, n, Int64.RotateLeft)
}

// RotateRight rotates the bits of a to the right by (n mod 64), wrapping the
// truncated bits to the beginning of the resulting integer.
func RotateRight(a, n any) (Int64, error) {
	return apply(a, n, Int64.RotateRight)
}

// And computes a & b.
func And(a, b any) (Int64, error) {
	return apply(a, b, Int64.And)
}

// Or computes a | b.
func Or(a, b any) (Int64, error) {
	return apply(a, b, Int64.Or)
}

// Xor computes a ^ b.
func Xor(a, b any) (Int64, error) {
	return apply(a, b, Int64.Xor)
}

// Nand computes ^(a & b).
func Nand(a, b any) (Int64, error) {
	return apply(a, b, Int64.Nand)
}

// Nor computes ^(a | b).
func Nor(a, b any) (Int64, error) {
	return apply(a, b, Int64.Nor)
}

// Xnor computes ^(a ^ b).
func Xnor(a, b any) (Int64, error) {
	return apply(a, b, Int64.Xnor)
}

// Not computes ^a.
func Not(a any) (Int64, error) {
	return apply1(a, Int64.Not)
}

// Negative computes -a, wrapping around at the boundary of a 64-bit integer.
func Negative(a any) (Int64, error) {
	return apply1(a, Int64.Negative)
}

// Eq computes a == b.
func Eq(a, b any) (bool, error) {
	return test(a, b, Int64.Eq)
}

// Ne computes a != b.
func Ne(a, b any) (bool, error) {
	return test(a, b, Int64.Ne)
}

// Gt computes a > b.
func Gt(a, b any) (bool, error) {
	return test(a, b, Int64.Gt)
}

// Gte computes a >= b.
func Gte(a, b any) (bool, error) {
	return test(a, b, Int64.Gte)
}

// Lt computes a < b.
func Lt(a, b any) (bool, error) {
	return test(a, b, Int64.Lt)
}

// Lte computes a <= b.
func Lte(a, b any) (bool, error) {
	return test(a, b, Int64.Lte)
}

// Comp returns 1 if a > b, -1 if a < b and 0 if a == b.
func Comp(a, b any) (int, error) {
	x, y, err := resolve2(a, b)
	if err != nil {
		return 0, err
	}
	return x.Comp(y), nil
}

// Random returns a uniformly distributed integer between a and b inclusive,
// in either order.
func Random(a, b any) (Int64, error) {
	return apply(a, b, Int64.Random)
}
