package i64

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Int64 type is a representation of a 64-bit two's-complement signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// All arithmetic, except division, wraps around at the boundary of
// a 64-bit integer: the result is reduced modulo 2^64 and reinterpreted
// as a signed value.
// Division truncates toward zero.
type Int64 struct {
	v int64 // the two's-complement value
}

const (
	MaxSafeInteger = 1<<53 - 1    // largest integer exactly representable by float64
	MinSafeInteger = -(1<<53 - 1) // smallest integer exactly representable by float64
	Size           = 8            // length of the byte buffer representation
)

var (
	MaxInt64 = New(math.MaxInt64) // 9223372036854775807
	MinInt64 = New(math.MinInt64) // -9223372036854775808
	Zero     = New(0)
	One      = New(1)
	NegOne   = New(-1)
)

var (
	// ErrInvalidInput is returned for malformed text, non-integral or
	// non-finite floats, buffers of the wrong length and out-of-domain
	// arguments such as negative exponents.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOverflow is returned when a parsed value does not fit into 64 bits.
	// Arithmetic never returns it.
	ErrOverflow = errors.New("integer overflow")
	// ErrDivisionByZero is returned by division and remainder by 0.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrPrecisionLoss is returned when a value cannot be represented
	// exactly by float64.
	ErrPrecisionLoss = errors.New("precision loss")
)

// New returns an integer equal to v.
func New(v int64) Int64 {
	return Int64{v: v}
}

// NewFromUint64Bits returns an integer with the same bit pattern as u.
// For example, NewFromUint64Bits(math.MaxUint64) is equal to -1.
func NewFromUint64Bits(u uint64) Int64 {
	return Int64{v: int64(u)}
}

// NewFromFloat64 converts a float to an integer.
//
// NewFromFloat64 returns an error:
//   - if f is NaN or infinite, or has a fractional part.
//   - if f is outside the range [-2^63, 2^63).
//
// Floats beyond ±(2^53 - 1) are accepted as long as they are integral
// and in range; they are converted exactly.
func NewFromFloat64(f float64) (Int64, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return Int64{}, errors.Wrapf(ErrInvalidInput, "%v is not finite", f)
	case f != math.Trunc(f):
		return Int64{}, errors.Wrapf(ErrInvalidInput, "%v is not an integer", f)
	case f < -(1<<63) || f >= 1<<63:
		return Int64{}, errors.Wrapf(ErrOverflow, "%v is out of range", f)
	}
	return Int64{v: int64(f)}, nil
}

// NewFromBytes converts an 8-byte little-endian two's-complement buffer
// to an integer.
// NewFromBytes returns an error if the length of b is not [Size].
// Shorter buffers are not sign- or zero-extended.
func NewFromBytes(b []byte) (Int64, error) {
	if len(b) != Size {
		return Int64{}, errors.Wrapf(ErrInvalidInput, "the length of the input buffer is %v, not %v", len(b), Size)
	}
	return Int64{v: int64(binary.LittleEndian.Uint64(b))}, nil
}

// Parse converts a string to an integer.
// The input string must be in one of the following formats:
//
//	1234
//	-1234
//	+1234
//	0b10011010010
//	0o2322
//	0x4d2
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	prefix         ::= '0b' | '0B' | '0o' | '0O' | '0x' | '0X'
//	numeric-string ::= [sign] digits | prefix base-digits
//
// Decimal numerals are signed.
// Prefixed numerals are read as the unsigned 64-bit pattern, so that
// 0xffffffffffffffff is equal to -1.
//
// Parse returns an error:
//   - if string does not represent a valid integer ([ErrInvalidInput]).
//   - if the value does not fit into 64 bits ([ErrOverflow]).
func Parse(s string) (Int64, error) {
	x, err := parse(s)
	if err != nil {
		return Int64{}, errors.Wrapf(err, "parsing %q", s)
	}
	return x, nil
}

func parse(s string) (Int64, error) {
	// Prefixed bit pattern
	if len(s) >= 2 && s[0] == '0' {
		base := uint64(0)
		switch s[1] {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'x', 'X':
			base = 16
		}
		if base != 0 {
			x, ok, valid := parseDigits(s[2:], base)
			switch {
			case !valid:
				return Int64{}, ErrInvalidInput
			case !ok:
				return Int64{}, ErrOverflow
			}
			return Int64{v: int64(x)}, nil
		}
	}

	// Sign
	neg := false
	if len(s) > 0 {
		switch s[0] {
		case '-':
			neg = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}

	// Magnitude
	x, ok, valid := parseDigits(s, 10)
	switch {
	case !valid:
		return Int64{}, ErrInvalidInput
	case !ok:
		return Int64{}, ErrOverflow
	case neg && x > maxNeg:
		return Int64{}, ErrOverflow
	case !neg && x >= maxNeg:
		return Int64{}, ErrOverflow
	}
	if neg {
		x = -x
	}
	return Int64{v: int64(x)}, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int64 {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// String method implements the [fmt.Stringer] interface and returns
// a canonical decimal representation of an integer:
// no leading zeros, and a leading '-' for negative values.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int64) String() string {
	var buf [24]byte
	return string(x.appendDecimal(buf[:0]))
}

// Decimal is an alias for [Int64.String].
func (x Int64) Decimal() string {
	return x.String()
}

func (x Int64) appendDecimal(buf []byte) []byte {
	u := word(x.v)
	if x.v < 0 {
		buf = append(buf, '-')
		u = -u
	}
	return u.appendDecimal(buf)
}

// Binary returns the two's-complement bit pattern of x in base 2.
// If format is true, the result is prefixed with "0b" and zero-padded
// to 64 digits.
func (x Int64) Binary(format bool) string {
	return x.text(2, "0b", format, false)
}

// Octal returns the two's-complement bit pattern of x in base 8.
// If format is true, the result is prefixed with "0o" and zero-padded
// to 22 digits.
func (x Int64) Octal(format bool) string {
	return x.text(8, "0o", format, false)
}

// Hex returns the two's-complement bit pattern of x in base 16.
// If format is true, the result is prefixed with "0x" and zero-padded
// to 16 digits.
// If upper is true, the digits a-f are rendered in uppercase.
func (x Int64) Hex(format, upper bool) string {
	return x.text(16, "0x", format, upper)
}

func (x Int64) text(base int, prefix string, format, upper bool) string {
	var buf [68]byte
	b := buf[:0]
	if format {
		b = append(b, prefix...)
	}
	return string(word(x.v).appendPow2(b, base, format, upper))
}

// Bytes returns the 8-byte little-endian two's-complement representation of x.
// Also see [NewFromBytes].
func (x Int64) Bytes() []byte {
	return x.AppendBytes(make([]byte, 0, Size))
}

// AppendBytes appends the 8-byte little-endian representation of x to b.
func (x Int64) AppendBytes(b []byte) []byte {
	return binary.LittleEndian.AppendUint64(b, uint64(x.v))
}

// PutBytes writes the 8-byte little-endian representation of x into b.
// PutBytes panics if b is shorter than [Size].
func (x Int64) PutBytes(b []byte) {
	binary.LittleEndian.PutUint64(b, uint64(x.v))
}

// Int64 returns the value of x as a native integer.
func (x Int64) Int64() int64 {
	return x.v
}

// Uint64Bits returns the two's-complement bit pattern of x.
func (x Int64) Uint64Bits() uint64 {
	return uint64(x.v)
}

// Float64 returns the value of x as a float.
// Float64 returns an error if x is greater than [MaxSafeInteger] or
// less than [MinSafeInteger], since such integers cannot be represented
// exactly.
func (x Int64) Float64() (float64, error) {
	switch {
	case x.v > MaxSafeInteger:
		return 0, errors.Wrapf(ErrPrecisionLoss, "%v is bigger than %v", x.v, MaxSafeInteger)
	case x.v < MinSafeInteger:
		return 0, errors.Wrapf(ErrPrecisionLoss, "%v is smaller than %v", x.v, MinSafeInteger)
	}
	return float64(x.v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int64) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int64.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int64) MarshalText() ([]byte, error) {
	return x.appendDecimal(nil), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// Also see method [NewFromBytes].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (x *Int64) UnmarshalBinary(data []byte) error {
	var err error
	*x, err = NewFromBytes(data)
	return err
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// Also see method [Int64.Bytes].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (x Int64) MarshalBinary() ([]byte, error) {
	return x.Bytes(), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -1234
//	%q:        "-1234"
//	%b:         1111111111111111111111111111111111111111111111111111101100101110
//	%o, %O:     1777777777777777775456
//	%x:         fffffffffffffb2e
//	%X:         FFFFFFFFFFFFFB2E
//
// Base verbs render the two's-complement bit pattern, so they never
// produce a sign.
// The '#' flag adds the "0b", "0o" or "0x" prefix and zero-pads the
// digits to the full 64-bit width; %O always adds the prefix.
// The '+' and ' ' flags are supported by decimal verbs.
// Width is supported by all verbs together with the '-' and '0' flags.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int64) Format(state fmt.State, verb rune) {

	// Digits
	var (
		buf    [68]byte
		digs   []byte
		prefix string
		pad    bool
	)
	switch verb {
	case 'b':
		prefix, pad = "0b", state.Flag('#')
		digs = word(x.v).appendPow2(buf[:0], 2, pad, false)
	case 'o', 'O':
		prefix, pad = "0o", state.Flag('#')
		digs = word(x.v).appendPow2(buf[:0], 8, pad, false)
		if verb == 'O' {
			pad = true
		}
	case 'x', 'X':
		prefix, pad = "0x", state.Flag('#')
		digs = word(x.v).appendPow2(buf[:0], 16, pad, verb == 'X')
	default:
		u := word(x.v)
		if x.v < 0 {
			u = -u
		}
		digs = u.appendDecimal(buf[:0])
	}
	if !pad {
		prefix = ""
	}

	// Arithmetic sign
	sign := ""
	switch verb {
	case 'b', 'o', 'O', 'x', 'X':
	default:
		switch {
		case x.v < 0:
			sign = "-"
		case state.Flag('+'):
			sign = "+"
		case state.Flag(' '):
			sign = " "
		}
	}

	// Quotes
	quote := ""
	if verb == 'q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(sign) + len(prefix) + len(digs) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'q':
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	out := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		out = append(out, ' ')
	}
	out = append(out, quote...)
	out = append(out, sign...)
	out = append(out, prefix...)
	for i := 0; i < lzeroes; i++ {
		out = append(out, '0')
	}
	out = append(out, digs...)
	out = append(out, quote...)
	for i := 0; i < tspaces; i++ {
		out = append(out, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 's', 'v', 'd', 'b', 'o', 'O', 'x', 'X':
		state.Write(out)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(i64.Int64="))
		state.Write(out)
		state.Write([]byte(")"))
	}
}
