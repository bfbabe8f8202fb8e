package i64

import (
	"math"

	"github.com/pkg/errors"
)

// Resolve converts any accepted input representation to an integer.
// The following types are accepted:
//
//   - Int64, *Int64, Handle, *Handle: copied by value.
//   - int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
//     converted exactly; unsigned values greater than [math.MaxInt64]
//     are an error.
//   - float32, float64: see [NewFromFloat64].
//   - string: see [Parse].
//   - []byte, [8]byte: see [NewFromBytes].
//
// Resolve returns an error wrapping [ErrInvalidInput] for any other type
// or for a nil pointer.
func Resolve(a any) (Int64, error) {
	switch a := a.(type) {
	case Int64:
		return a, nil
	case *Int64:
		if a == nil {
			return Int64{}, errors.Wrap(ErrInvalidInput, "nil *i64.Int64")
		}
		return *a, nil
	case Handle:
		return a.v, nil
	case *Handle:
		if a == nil {
			return Int64{}, errors.Wrap(ErrInvalidInput, "nil *i64.Handle")
		}
		return a.v, nil
	case int:
		return New(int64(a)), nil
	case int8:
		return New(int64(a)), nil
	case int16:
		return New(int64(a)), nil
	case int32:
		return New(int64(a)), nil
	case int64:
		return New(a), nil
	case uint:
		return resolveUint64(uint64(a))
	case uint8:
		return New(int64(a)), nil
	case uint16:
		return New(int64(a)), nil
	case uint32:
		return New(int64(a)), nil
	case uint64:
		return resolveUint64(a)
	case float32:
		return NewFromFloat64(float64(a))
	case float64:
		return NewFromFloat64(a)
	case string:
		return Parse(a)
	case []byte:
		return NewFromBytes(a)
	case [Size]byte:
		return NewFromBytes(a[:])
	}
	return Int64{}, errors.Wrapf(ErrInvalidInput, "unsupported type %T", a)
}

func resolveUint64(u uint64) (Int64, error) {
	if u > math.MaxInt64 {
		return Int64{}, errors.Wrapf(ErrOverflow, "%v is bigger than %v", u, uint64(math.MaxInt64))
	}
	return New(int64(u)), nil
}

// resolve2 resolves a pair of operands.
func resolve2(a, b any) (x, y Int64, err error) {
	x, err = Resolve(a)
	if err != nil {
		return Int64{}, Int64{}, err
	}
	y, err = Resolve(b)
	if err != nil {
		return Int64{}, Int64{}, err
	}
	return x, y, nil
}
