package i64

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64_ZeroValue(t *testing.T) {
	got := Int64{}
	want := MustParse("0")
	assert.Equal(t, want, got)
	assert.Equal(t, "0", got.String())
}

func TestInt64_Size(t *testing.T) {
	x := Int64{}
	got := unsafe.Sizeof(x)
	assert.Equal(t, uintptr(8), got)
}

func TestInt64_Interfaces(t *testing.T) {
	var x any

	x = Int64{}
	assert.Implements(t, (*fmt.Stringer)(nil), x)
	assert.Implements(t, (*fmt.Formatter)(nil), x)
	assert.Implements(t, (*encoding.TextMarshaler)(nil), x)
	assert.Implements(t, (*encoding.BinaryMarshaler)(nil), x)
	assert.Implements(t, (*driver.Valuer)(nil), x)
	assert.Implements(t, (*cbor.Marshaler)(nil), x)

	x = &Int64{}
	assert.Implements(t, (*encoding.TextUnmarshaler)(nil), x)
	assert.Implements(t, (*encoding.BinaryUnmarshaler)(nil), x)
	assert.Implements(t, (*sql.Scanner)(nil), x)
	assert.Implements(t, (*cbor.Unmarshaler)(nil), x)

	x = &Handle{}
	assert.Implements(t, (*fmt.Stringer)(nil), x)
	assert.Implements(t, (*fmt.Formatter)(nil), x)
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want int64
		}{
			// Decimal
			{"0", 0},
			{"-0", 0},
			{"+0", 0},
			{"1", 1},
			{"-1", -1},
			{"+7", 7},
			{"00012", 12},
			{"-00012", -12},
			{"894453210654871", 894453210654871},
			{"243290200817664000", 243290200817664000},
			{"9223372036854775807", math.MaxInt64},
			{"-9223372036854775807", -math.MaxInt64},
			{"-9223372036854775808", math.MinInt64},

			// Prefixed
			{"0b0", 0},
			{"0b101", 5},
			{"0B11", 3},
			{"0o17", 15},
			{"0O7", 7},
			{"0x10", 16},
			{"0X10", 16},
			{"0xff", 255},
			{"0xFF", 255},
			{"0x7fffffffffffffff", math.MaxInt64},
			{"0x8000000000000000", math.MinInt64},
			{"0xFFFFFFFFFFFFFFFF", -1},
			{"0x0000000000000000000001", 1},
			{"0o1777777777777777777777", -1},
			{"0b1111111111111111111111111111111111111111111111111111111111111111", -1},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if !assert.NoError(t, err, "Parse(%q)", tt.s) {
				continue
			}
			assert.Equal(t, New(tt.want), got, "Parse(%q)", tt.s)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty":          {"", ErrInvalidInput},
			"sign only 1":    {"-", ErrInvalidInput},
			"sign only 2":    {"+", ErrInvalidInput},
			"double sign":    {"--1", ErrInvalidInput},
			"letters":        {"abc", ErrInvalidInput},
			"fraction":       {"1.5", ErrInvalidInput},
			"exponent":       {"1e3", ErrInvalidInput},
			"leading space":  {" 1", ErrInvalidInput},
			"trailing space": {"1 ", ErrInvalidInput},
			"separator":      {"1_000", ErrInvalidInput},
			"thousands":      {"1,000", ErrInvalidInput},
			"unicode digit":  {"٣", ErrInvalidInput},
			"prefix only":    {"0x", ErrInvalidInput},
			"hex digit":      {"0xg", ErrInvalidInput},
			"binary digit":   {"0b2", ErrInvalidInput},
			"octal digit":    {"0o8", ErrInvalidInput},
			"signed prefix":  {"-0x1", ErrInvalidInput},
			"overflow 1":     {"9223372036854775808", ErrOverflow},
			"overflow 2":     {"-9223372036854775809", ErrOverflow},
			"overflow 3":     {"99999999999999999999999", ErrOverflow},
			"overflow 4":     {"18446744073709551616", ErrOverflow},
			"overflow 5":     {"0x10000000000000000", ErrOverflow},
			"overflow 6":     {"0o2000000000000000000000", ErrOverflow},
			"invalid first":  {"99999999999999999999999x", ErrInvalidInput},
		}
		for name, tt := range tests {
			_, err := Parse(tt.s)
			if assert.Error(t, err, "%v: Parse(%q)", name, tt.s) {
				assert.ErrorIs(t, err, tt.want, "%v: Parse(%q)", name, tt.s)
			}
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		assert.Panics(t, func() { MustParse("x") })
	})
}

func TestNewFromFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f    float64
			want int64
		}{
			{0, 0},
			{math.Copysign(0, -1), 0},
			{1, 1},
			{-1, -1},
			{1e18, 1_000_000_000_000_000_000},
			{MaxSafeInteger, MaxSafeInteger},
			{MinSafeInteger, MinSafeInteger},
			{1 << 62, 1 << 62},
			{-(1 << 63), math.MinInt64},
		}
		for _, tt := range tests {
			got, err := NewFromFloat64(tt.f)
			if !assert.NoError(t, err, "NewFromFloat64(%v)", tt.f) {
				continue
			}
			assert.Equal(t, New(tt.want), got, "NewFromFloat64(%v)", tt.f)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			f    float64
			want error
		}{
			"fraction 1":  {1.5, ErrInvalidInput},
			"fraction 2":  {-0.1, ErrInvalidInput},
			"nan":         {math.NaN(), ErrInvalidInput},
			"inf 1":       {math.Inf(1), ErrInvalidInput},
			"inf 2":       {math.Inf(-1), ErrInvalidInput},
			"overflow 1":  {1 << 63, ErrOverflow},
			"overflow 2":  {1e19, ErrOverflow},
			"overflow 3":  {-1e19, ErrOverflow},
			"max float64": {math.MaxFloat64, ErrOverflow},
		}
		for name, tt := range tests {
			_, err := NewFromFloat64(tt.f)
			assert.ErrorIs(t, err, tt.want, "%v: NewFromFloat64(%v)", name, tt.f)
		}
	})
}

func TestNewFromBytes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b    []byte
			want int64
		}{
			{[]byte{0, 0, 0, 0, 0, 0, 0, 0}, 0},
			{[]byte{1, 0, 0, 0, 0, 0, 0, 0}, 1},
			{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, -1},
			{[]byte{0, 0, 0, 0, 0, 0, 0, 0x80}, math.MinInt64},
			{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}, math.MaxInt64},
			{[]byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01}, 0x0123456789abcdef},
		}
		for _, tt := range tests {
			got, err := NewFromBytes(tt.b)
			if !assert.NoError(t, err, "NewFromBytes(%x)", tt.b) {
				continue
			}
			assert.Equal(t, New(tt.want), got, "NewFromBytes(%x)", tt.b)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]byte{
			"nil":   nil,
			"empty": {},
			"short": {1, 2, 3, 4},
			"long":  {1, 2, 3, 4, 5, 6, 7, 8, 9},
		}
		for name, b := range tests {
			_, err := NewFromBytes(b)
			assert.ErrorIs(t, err, ErrInvalidInput, "%v: NewFromBytes(%x)", name, b)
		}
	})
}

func TestNewFromUint64Bits(t *testing.T) {
	assert.Equal(t, New(-1), NewFromUint64Bits(math.MaxUint64))
	assert.Equal(t, MinInt64, NewFromUint64Bits(1<<63))
	assert.Equal(t, uint64(math.MaxUint64), New(-1).Uint64Bits())
}

func TestInt64_String(t *testing.T) {
	tests := []struct {
		x    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{10, "10"},
		{-10, "-10"},
		{987664550000, "987664550000"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		x := New(tt.x)
		assert.Equal(t, tt.want, x.String(), "%d.String()", tt.x)
		assert.Equal(t, tt.want, x.Decimal(), "%d.Decimal()", tt.x)
		text, err := x.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(text), "%d.MarshalText()", tt.x)
	}
}

func TestInt64_Binary(t *testing.T) {
	tests := []struct {
		x      int64
		format bool
		want   string
	}{
		{0, false, "0"},
		{5, false, "101"},
		{5, true, "0b0000000000000000000000000000000000000000000000000000000000000101"},
		{-1, false, "1111111111111111111111111111111111111111111111111111111111111111"},
		{-1, true, "0b1111111111111111111111111111111111111111111111111111111111111111"},
		{-1234, false, "1111111111111111111111111111111111111111111111111111101100101110"},
		{math.MinInt64, false, "1000000000000000000000000000000000000000000000000000000000000000"},
	}
	for _, tt := range tests {
		got := New(tt.x).Binary(tt.format)
		assert.Equal(t, tt.want, got, "%d.Binary(%t)", tt.x, tt.format)
	}
}

func TestInt64_Octal(t *testing.T) {
	tests := []struct {
		x      int64
		format bool
		want   string
	}{
		{0, false, "0"},
		{0, true, "0o0000000000000000000000"},
		{8, false, "10"},
		{8, true, "0o0000000000000000000010"},
		{-1, false, "1777777777777777777777"},
		{-1, true, "0o1777777777777777777777"},
		{-1234, false, "1777777777777777775456"},
		{0x0123456789abcdef, false, "4432126361152746757"},
	}
	for _, tt := range tests {
		got := New(tt.x).Octal(tt.format)
		assert.Equal(t, tt.want, got, "%d.Octal(%t)", tt.x, tt.format)
	}
}

func TestInt64_Hex(t *testing.T) {
	tests := []struct {
		x             int64
		format, upper bool
		want          string
	}{
		{0, false, false, "0"},
		{255, false, false, "ff"},
		{255, false, true, "FF"},
		{255, true, false, "0x00000000000000ff"},
		{255, true, true, "0x00000000000000FF"},
		{-1, false, false, "ffffffffffffffff"},
		{-1234, false, true, "FFFFFFFFFFFFFB2E"},
		{math.MinInt64, true, false, "0x8000000000000000"},
		{math.MaxInt64, false, false, "7fffffffffffffff"},
	}
	for _, tt := range tests {
		got := New(tt.x).Hex(tt.format, tt.upper)
		assert.Equal(t, tt.want, got, "%d.Hex(%t, %t)", tt.x, tt.format, tt.upper)
	}
}

func TestInt64_Bytes(t *testing.T) {
	tests := []struct {
		x    int64
		want []byte
	}{
		{0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{1, []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{math.MinInt64, []byte{0, 0, 0, 0, 0, 0, 0, 0x80}},
		{0x0123456789abcdef, []byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01}},
	}
	for _, tt := range tests {
		x := New(tt.x)
		assert.Equal(t, tt.want, x.Bytes(), "%d.Bytes()", tt.x)
		bin, err := x.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, tt.want, bin, "%d.MarshalBinary()", tt.x)
		assert.Equal(t, append([]byte{0xaa}, tt.want...), x.AppendBytes([]byte{0xaa}))
		buf := make([]byte, Size)
		x.PutBytes(buf)
		assert.Equal(t, tt.want, buf, "%d.PutBytes()", tt.x)
	}
}

func TestInt64_Float64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x    int64
			want float64
		}{
			{0, 0},
			{7, 7},
			{-7, -7},
			{MaxSafeInteger, 9007199254740991},
			{MinSafeInteger, -9007199254740991},
		}
		for _, tt := range tests {
			got, err := New(tt.x).Float64()
			if !assert.NoError(t, err, "%d.Float64()", tt.x) {
				continue
			}
			assert.Equal(t, tt.want, got, "%d.Float64()", tt.x)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []int64{
			MaxSafeInteger + 1,
			MinSafeInteger - 1,
			math.MaxInt64,
			math.MinInt64,
		}
		for _, x := range tests {
			_, err := New(x).Float64()
			assert.ErrorIs(t, err, ErrPrecisionLoss, "%d.Float64()", x)
		}
	})
}

func TestInt64_UnmarshalText(t *testing.T) {
	var x Int64
	require.NoError(t, x.UnmarshalText([]byte("-42")))
	assert.Equal(t, New(-42), x)

	err := x.UnmarshalText([]byte("4.2"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInt64_UnmarshalBinary(t *testing.T) {
	var x Int64
	require.NoError(t, x.UnmarshalBinary([]byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}))
	assert.Equal(t, New(-2), x)

	err := x.UnmarshalBinary([]byte{1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, Int64{}, x)
}

func TestInt64_Format(t *testing.T) {
	tests := []struct {
		format string
		x      int64
		want   string
	}{
		// Decimal
		{"%v", -1234, "-1234"},
		{"%s", -1234, "-1234"},
		{"%d", 1234, "1234"},
		{"%+d", 5, "+5"},
		{"% d", 5, " 5"},
		{"%+d", -5, "-5"},
		{"%q", -1234, `"-1234"`},
		{"%8d", -12, "     -12"},
		{"%-8d|", -12, "-12     |"},
		{"%08d", -12, "-0000012"},
		{"%v", math.MinInt64, "-9223372036854775808"},

		// Bases
		{"%b", 5, "101"},
		{"%#b", 5, "0b0000000000000000000000000000000000000000000000000000000000000101"},
		{"%o", 8, "10"},
		{"%O", 8, "0o10"},
		{"%#o", 8, "0o0000000000000000000010"},
		{"%x", 255, "ff"},
		{"%X", 255, "FF"},
		{"%#x", 255, "0x00000000000000ff"},
		{"%#X", 255, "0x00000000000000FF"},
		{"%x", -1, "ffffffffffffffff"},
		{"%+x", 1, "1"},
		{"%6x", 255, "    ff"},
		{"%06x", 255, "0000ff"},

		// Unsupported
		{"%k", 1, "%!k(i64.Int64=1)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, New(tt.x))
		assert.Equal(t, tt.want, got, "fmt.Sprintf(%q, %d)", tt.format, tt.x)
	}
}

func TestInt64_CBOR(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x    int64
			want []byte
		}{
			{0, []byte{0x00}},
			{1, []byte{0x01}},
			{-1, []byte{0x20}},
			{24, []byte{0x18, 0x18}},
			{-25, []byte{0x38, 0x18}},
			{math.MaxInt64, []byte{0x1b, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
			{math.MinInt64, []byte{0x3b, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		}
		for _, tt := range tests {
			x := New(tt.x)
			data, err := cbor.Marshal(x)
			if !assert.NoError(t, err, "cbor.Marshal(%d)", tt.x) {
				continue
			}
			assert.Equal(t, tt.want, data, "cbor.Marshal(%d)", tt.x)

			var got Int64
			require.NoError(t, cbor.Unmarshal(data, &got))
			assert.Equal(t, x, got, "cbor.Unmarshal(%x)", data)
		}
	})

	t.Run("struct", func(t *testing.T) {
		type record struct {
			A Int64
			B Int64
		}
		want := record{A: MinInt64, B: New(42)}
		data, err := cbor.Marshal(want)
		require.NoError(t, err)

		var got record
		require.NoError(t, cbor.Unmarshal(data, &got))
		assert.Equal(t, want, got)
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]byte{
			"uint overflow": {0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			"nint overflow": {0x3b, 0x80, 0, 0, 0, 0, 0, 0, 0},
			"text string":   {0x61, 0x31},
		}
		for name, data := range tests {
			var got Int64
			err := cbor.Unmarshal(data, &got)
			assert.True(t, errors.Is(err, ErrInvalidInput), "%v: cbor.Unmarshal(%x) = %v", name, data, err)
		}
	})
}

/******************************************************
* Fuzzing
******************************************************/

var corpus = []int64{
	0,
	1,
	-1,
	7,
	-7,
	98766455,
	894453210654871,
	MaxSafeInteger,
	MinSafeInteger,
	math.MaxInt32,
	math.MinInt32,
	math.MaxInt64,
	math.MinInt64,
}

func FuzzParse(f *testing.F) {
	for _, c := range corpus {
		f.Add(New(c).String())
		f.Add(New(c).Hex(true, false))
		f.Add(New(c).Binary(true))
	}

	f.Fuzz(
		func(t *testing.T, s string) {
			x, err := Parse(s)
			if err != nil {
				if !errors.Is(err, ErrInvalidInput) && !errors.Is(err, ErrOverflow) {
					t.Errorf("Parse(%q) failed with unexpected error: %v", s, err)
				}
				t.Skip()
				return
			}
			got, err := Parse(x.String())
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", x.String(), err)
				return
			}
			if got != x {
				t.Errorf("Parse(%q) = %v, want %v", x.String(), got, x)
			}
		},
	)
}

func FuzzInt64_String(f *testing.F) {
	for _, c := range corpus {
		f.Add(c)
	}

	f.Fuzz(
		func(t *testing.T, v int64) {
			want := New(v)
			for _, s := range []string{
				want.String(),
				want.Binary(true),
				want.Octal(true),
				want.Hex(true, false),
				want.Hex(true, true),
			} {
				got, err := Parse(s)
				if err != nil {
					t.Errorf("Parse(%q) failed: %v", s, err)
					continue
				}
				if got != want {
					t.Errorf("Parse(%q) = %v, want %v", s, got, want)
				}
			}
			if s := fmt.Sprintf("%d", v); s != want.String() {
				t.Errorf("%d.String() = %q, want %q", v, want.String(), s)
			}
		},
	)
}

func FuzzInt64_Bytes(f *testing.F) {
	for _, c := range corpus {
		f.Add(c)
	}

	f.Fuzz(
		func(t *testing.T, v int64) {
			want := New(v)
			b := want.Bytes()
			if len(b) != Size {
				t.Errorf("%v.Bytes() has length %v, want %v", want, len(b), Size)
				return
			}
			got, err := NewFromBytes(b)
			if err != nil {
				t.Errorf("NewFromBytes(%x) failed: %v", b, err)
				return
			}
			if got != want {
				t.Errorf("NewFromBytes(%x) = %v, want %v", b, got, want)
			}
		},
	)
}
