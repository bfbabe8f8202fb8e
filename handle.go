package i64

import "fmt"

// Handle is a mutable container holding exactly one [Int64].
// The zero value holds 0.
//
// Every mutating method replaces the held value and returns the same
// handle, so that calls can be chained.
// Methods that can fail return the handle together with an error; a failed
// call leaves the held value unchanged.
//
// Handle is not safe for concurrent use by multiple goroutines.
// Use [Handle.Clone], [Handle.Value] or the package-level functions to
// share values between goroutines.
type Handle struct {
	v Int64
}

// From returns a new handle holding the integer represented by a.
// See [Resolve] for the accepted representations.
func From(a any) (*Handle, error) {
	x, err := Resolve(a)
	if err != nil {
		return nil, err
	}
	return &Handle{v: x}, nil
}

// NewHandle returns a new handle holding x.
func NewHandle(x Int64) *Handle {
	return &Handle{v: x}
}

// Value returns the integer held by h.
func (h *Handle) Value() Int64 {
	return h.v
}

// Clone returns a new handle holding the same integer as h.
// The handles do not share state.
func (h *Handle) Clone() *Handle {
	return &Handle{v: h.v}
}

func (h *Handle) update(a any, op func(Int64, Int64) Int64) (*Handle, error) {
	y, err := Resolve(a)
	if err != nil {
		return h, err
	}
	h.v = op(h.v, y)
	return h, nil
}

func (h *Handle) updateErr(a any, op func(Int64, Int64) (Int64, error)) (*Handle, error) {
	y, err := Resolve(a)
	if err != nil {
		return h, err
	}
	z, err := op(h.v, y)
	if err != nil {
		return h, err
	}
	h.v = z
	return h, nil
}

func (h *Handle) test(a any, op func(Int64, Int64) bool) (bool, error) {
	y, err := Resolve(a)
	if err != nil {
		return false, err
	}
	return op(h.v, y), nil
}

// Set replaces the value of h with a.
func (h *Handle) Set(a any) (*Handle, error) {
	return h.update(a, func(_, y Int64) Int64 { return y })
}

// Add sets h to h + a, wrapping around at the boundary of a 64-bit integer.
func (h *Handle) Add(a any) (*Handle, error) {
	return h.update(a, Int64.Add)
}

// Subtract sets h to h - a, wrapping around at the boundary of a 64-bit integer.
func (h *Handle) Subtract(a any) (*Handle, error) {
	return h.update(a, Int64.Subtract)
}

// Multiply sets h to h * a, wrapping around at the boundary of a 64-bit integer.
func (h *Handle) Multiply(a any) (*Handle, error) {
	return h.update(a, Int64.Multiply)
}

// Divide sets h to h / a, truncated toward zero.
func (h *Handle) Divide(a any) (*Handle, error) {
	return h.updateErr(a, Int64.Divide)
}

// Mod sets h to h % a.
func (h *Handle) Mod(a any) (*Handle, error) {
	return h.updateErr(a, Int64.Mod)
}

// Pow sets h to h ^ a, wrapping around at the boundary of a 64-bit integer.
func (h *Handle) Pow(a any) (*Handle, error) {
	return h.updateErr(a, Int64.Pow)
}

// ShiftLeft sets h to h << (a mod 64).
func (h *Handle) ShiftLeft(a any) (*Handle, error) {
	return h.update(a, Int64.ShiftLeft)
}

// ShiftRight sets h to h >> (a mod 64).
func (h *Handle) ShiftRight(a any) (*Handle, error) {
	return h.update(a, Int64.ShiftRight)
}

// ShiftRightUnsigned sets h to h >>> (a mod 64).
func (h *Handle) ShiftRightUnsigned(a any) (*Handle, error) {
	return h.update(a, Int64.ShiftRightUnsigned)
}

// RotateLeft rotates the bits of h to the left by (a mod 64).
func (h *Handle) RotateLeft(a any) (*Handle, error) {
	return h.update(a, Int64.RotateLeft)
}

// RotateRight rotates the bits of h to the right by (a mod 64).
func (h *Handle) RotateRight(a any) (*Handle, error) {
	return h.update(a, Int64.RotateRight)
}

// And sets h to h & a.
func (h *Handle) And(a any) (*Handle, error) {
	return h.update(a, Int64.And)
}

// Or sets h to h | a.
func (h *Handle) Or(a any) (*Handle, error) {
	return h.update(a, Int64.Or)
}

// Xor sets h to h ^ a.
func (h *Handle) Xor(a any) (*Handle, error) {
	return h.update(a, Int64.Xor)
}

// Nand sets h to ^(h & a).
func (h *Handle) Nand(a any) (*Handle, error) {
	return h.update(a, Int64.Nand)
}

// Nor sets h to ^(h | a).
func (h *Handle) Nor(a any) (*Handle, error) {
	return h.update(a, Int64.Nor)
}

// Xnor sets h to ^(h ^ a).
func (h *Handle) Xnor(a any) (*Handle, error) {
	return h.update(a, Int64.Xnor)
}

// Not sets h to ^h.
func (h *Handle) Not() *Handle {
	h.v = h.v.Not()
	return h
}

// Negative sets h to -h.
func (h *Handle) Negative() *Handle {
	h.v = h.v.Negative()
	return h
}

// Eq reports whether h == a.
func (h *Handle) Eq(a any) (bool, error) {
	return h.test(a, Int64.Eq)
}

// Ne reports whether h != a.
func (h *Handle) Ne(a any) (bool, error) {
	return h.test(a, Int64.Ne)
}

// Gt reports whether h > a.
func (h *Handle) Gt(a any) (bool, error) {
	return h.test(a, Int64.Gt)
}

// Gte reports whether h >= a.
func (h *Handle) Gte(a any) (bool, error) {
	return h.test(a, Int64.Gte)
}

// Lt reports whether h < a.
func (h *Handle) Lt(a any) (bool, error) {
	return h.test(a, Int64.Lt)
}

// Lte reports whether h <= a.
func (h *Handle) Lte(a any) (bool, error) {
	return h.test(a, Int64.Lte)
}

// Comp returns 1 if h > a, -1 if h < a and 0 if h == a.
func (h *Handle) Comp(a any) (int, error) {
	y, err := Resolve(a)
	if err != nil {
		return 0, err
	}
	return h.v.Comp(y), nil
}

// Random returns a uniformly distributed integer between h and a inclusive.
// It does not modify h.
func (h *Handle) Random(a any) (Int64, error) {
	y, err := Resolve(a)
	if err != nil {
		return Int64{}, err
	}
	return h.v.Random(y), nil
}

// String implements the [fmt.Stringer] interface and returns the decimal
// representation of the held value.
func (h *Handle) String() string {
	return h.v.String()
}

// Decimal returns the decimal representation of the held value.
func (h *Handle) Decimal() string {
	return h.v.String()
}

// Binary is like [Int64.Binary].
func (h *Handle) Binary(format bool) string {
	return h.v.Binary(format)
}

// Octal is like [Int64.Octal].
func (h *Handle) Octal(format bool) string {
	return h.v.Octal(format)
}

// Hex is like [Int64.Hex].
func (h *Handle) Hex(format, upper bool) string {
	return h.v.Hex(format, upper)
}

// Bytes is like [Int64.Bytes].
func (h *Handle) Bytes() []byte {
	return h.v.Bytes()
}

// Float64 is like [Int64.Float64].
func (h *Handle) Float64() (float64, error) {
	return h.v.Float64()
}

// Format implements [fmt.Formatter] interface, see [Int64.Format].
func (h *Handle) Format(state fmt.State, verb rune) {
	h.v.Format(state, verb)
}
