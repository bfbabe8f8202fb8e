package i64

import "fmt"

// MustResolve is like [Resolve] but panics if the input cannot be resolved.
func MustResolve(a any) Int64 {
	x, err := Resolve(a)
	if err != nil {
		panic(fmt.Sprintf("MustResolve(%#v) failed: %v", a, err))
	}
	return x
}

// MustFrom is like [From] but panics if the input cannot be resolved.
func MustFrom(a any) *Handle {
	h, err := From(a)
	if err != nil {
		panic(fmt.Sprintf("MustFrom(%#v) failed: %v", a, err))
	}
	return h
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics if the conversion fails.
func MustNewFromFloat64(f float64) Int64 {
	x, err := NewFromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64(%v) failed: %v", f, err))
	}
	return x
}

// MustNewFromBytes is like [NewFromBytes] but panics if the conversion fails.
func MustNewFromBytes(b []byte) Int64 {
	x, err := NewFromBytes(b)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromBytes(%x) failed: %v", b, err))
	}
	return x
}

// MustDivide is like [Int64.Divide] but panics if computing error.
func (x Int64) MustDivide(y Int64) Int64 {
	z, err := x.Divide(y)
	if err != nil {
		panic(fmt.Sprintf("MustDivide(%v) failed: %v", y, err))
	}
	return z
}

// MustMod is like [Int64.Mod] but panics if computing error.
func (x Int64) MustMod(y Int64) Int64 {
	z, err := x.Mod(y)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", y, err))
	}
	return z
}

// MustPow is like [Int64.Pow] but panics if computing error.
func (x Int64) MustPow(y Int64) Int64 {
	z, err := x.Pow(y)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", y, err))
	}
	return z
}
