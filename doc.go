/*
Package i64 implements 64-bit two's-complement signed integers with
wraparound arithmetic.
It is specifically designed for exchanging integers with environments whose
native numbers are float64 and cannot represent the full signed 64-bit range,
such as JavaScript.

# Representation

[Int64] is a struct holding a single native int64.
All operations on [Int64] are pure: they never modify the receiver and
always return a new value.

[Handle] is a mutable container holding one [Int64].
Its methods replace the held value and return the handle itself,
so that calls can be chained:

	h := i64.MustFrom(1)
	h.Multiply(2)
	h.ShiftLeft(3)
	fmt.Println(h) // 16

# Constraints

The range of an integer is:

	| Minimum              | Maximum             |
	| -------------------- | ------------------- |
	| -9223372036854775808 | 9223372036854775807 |

Integers between [MinSafeInteger] and [MaxSafeInteger] inclusive can be
converted to float64 exactly.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [Int64.String], [Int64.Binary], [Int64.Octal], [Int64.Hex], [Int64.Format].
  - from/to byte buffer:
    [NewFromBytes], [Int64.Bytes].
  - from/to float64:
    [NewFromFloat64], [Int64.Float64].
  - from/to int64:
    [New], [Int64.Int64].
  - from any of the above:
    [Resolve].

The canonical byte buffer format is 8 bytes in little-endian byte order,
holding the two's-complement bit pattern.
The canonical text format is an optional '-' followed by ASCII digits.

# Operations

Each operation is available in three forms:

  - as a method of [Int64], taking and returning [Int64] values:
    x.Add(y).
  - as a method of [*Handle], taking any representation accepted by [Resolve]
    and modifying the handle: h.Add("123").
  - as a package-level function taking any two representations accepted by
    [Resolve]: i64.Add(1, "123").

Arithmetic follows these rules:

  - [Int64.Add], [Int64.Subtract], [Int64.Multiply], [Int64.Pow] and
    [Int64.Negative] wrap around at the boundary of a 64-bit integer.
  - [Int64.Divide] truncates toward zero, [Int64.Mod] returns a remainder
    with the sign of the dividend.
    [MinInt64] / -1 is [MinInt64].
  - shift and rotation counts are reduced modulo 64.

# Errors

All methods are panic-free, except for the MustXxx helpers.
Errors are returned in the following cases:

  - [ErrInvalidInput]: malformed text, non-integral or non-finite floats,
    buffers that are not 8 bytes long, unsupported types and negative exponents.
  - [ErrOverflow]: parsed values that do not fit into 64 bits.
    Unlike parsing, arithmetic never overflows: it wraps around.
  - [ErrDivisionByZero]: [Int64.Divide] and [Int64.Mod] by 0.
  - [ErrPrecisionLoss]: [Int64.Float64] of a value that float64 cannot
    represent exactly.

Returned errors wrap these sentinels and can be matched with [errors.Is].
*/
package i64
