package i64

import "math/bits"

// shiftCount normalizes a shift or rotation count to n mod 64.
// Negative counts are taken on their bit pattern, so that -1 is 63.
func shiftCount(n Int64) int {
	return int(uint64(n.v) & 63)
}

// ShiftLeft returns x << (n mod 64).
func (x Int64) ShiftLeft(n Int64) Int64 {
	return Int64{v: x.v << shiftCount(n)}
}

// ShiftRight returns x >> (n mod 64), preserving the sign bit.
func (x Int64) ShiftRight(n Int64) Int64 {
	return Int64{v: x.v >> shiftCount(n)}
}

// ShiftRightUnsigned returns x >>> (n mod 64), filling the vacated bits
// with zeros regardless of the sign of x.
func (x Int64) ShiftRightUnsigned(n Int64) Int64 {
	return Int64{v: int64(uint64(x.v) >> shiftCount(n))}
}

// RotateLeft returns x rotated left by (n mod 64) bits.
// The bits shifted out on the left reappear on the right.
func (x Int64) RotateLeft(n Int64) Int64 {
	return Int64{v: int64(bits.RotateLeft64(uint64(x.v), shiftCount(n)))}
}

// RotateRight returns x rotated right by (n mod 64) bits.
// The bits shifted out on the right reappear on the left.
func (x Int64) RotateRight(n Int64) Int64 {
	return Int64{v: int64(bits.RotateLeft64(uint64(x.v), -shiftCount(n)))}
}

// And returns x & y.
func (x Int64) And(y Int64) Int64 {
	return Int64{v: x.v & y.v}
}

// Or returns x | y.
func (x Int64) Or(y Int64) Int64 {
	return Int64{v: x.v | y.v}
}

// Xor returns x ^ y.
func (x Int64) Xor(y Int64) Int64 {
	return Int64{v: x.v ^ y.v}
}

// AndNot returns x &^ y.
func (x Int64) AndNot(y Int64) Int64 {
	return Int64{v: x.v &^ y.v}
}

// Nand returns ^(x & y).
func (x Int64) Nand(y Int64) Int64 {
	return Int64{v: ^(x.v & y.v)}
}

// Nor returns ^(x | y).
func (x Int64) Nor(y Int64) Int64 {
	return Int64{v: ^(x.v | y.v)}
}

// Xnor returns ^(x ^ y).
func (x Int64) Xnor(y Int64) Int64 {
	return Int64{v: ^(x.v ^ y.v)}
}

// Not returns the bitwise complement ^x.
func (x Int64) Not() Int64 {
	return Int64{v: ^x.v}
}

// OnesCount returns the number of one bits in x.
func (x Int64) OnesCount() int {
	return bits.OnesCount64(uint64(x.v))
}

// LeadingZeros returns the number of leading zero bits in x.
// The result is 64 for 0 and 0 for negative values.
func (x Int64) LeadingZeros() int {
	return bits.LeadingZeros64(uint64(x.v))
}

// TrailingZeros returns the number of trailing zero bits in x.
// The result is 64 for 0.
func (x Int64) TrailingZeros() int {
	return bits.TrailingZeros64(uint64(x.v))
}
