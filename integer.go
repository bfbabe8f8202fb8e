package i64

import (
	"math/bits"
)

// word (Fast INTeger) is a wrapper around uint64 holding the unsigned
// bit pattern of an Int64 during parsing and rendering.
type word uint64

// maxNeg is the magnitude of [MinInt64], the largest magnitude a decimal
// numeral may have.
const maxNeg = word(1 << 63)

// digitsLower and digitsUpper map a digit value to its ASCII representation.
const (
	digitsLower = "0123456789abcdef"
	digitsUpper = "0123456789ABCDEF"
)

// fsa (Fused Shift and Addition) calculates x * base + d.
// If the result overflows uint64, fsa returns false.
func (x word) fsa(base, d uint64) (z word, ok bool) {
	hi, lo := bits.Mul64(uint64(x), base)
	if hi != 0 {
		return 0, false
	}
	lo, carry := bits.Add64(lo, d, 0)
	if carry != 0 {
		return 0, false
	}
	return word(lo), true
}

// digit returns the value of the ASCII character c in the given base.
// If c is not a valid digit in that base, digit returns false.
func digit(c byte, base uint64) (uint64, bool) {
	var d uint64
	switch {
	case '0' <= c && c <= '9':
		d = uint64(c - '0')
	case 'a' <= c && c <= 'f':
		d = uint64(c-'a') + 10
	case 'A' <= c && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}

// parseDigits accumulates a run of digits in the given base.
// valid is false if the run is empty or contains a character that is not
// a digit of the base, ok is false if the value does not fit into 64 bits.
func parseDigits(s string, base uint64) (x word, ok bool, valid bool) {
	if len(s) == 0 {
		return 0, true, false
	}
	ok = true
	for i := 0; i < len(s); i++ {
		d, isDigit := digit(s[i], base)
		if !isDigit {
			return 0, true, false
		}
		if ok {
			x, ok = x.fsa(base, d)
		}
	}
	return x, ok, true
}

// shift returns log2 of a power-of-two base.
func shift(base int) uint {
	switch base {
	case 2:
		return 1
	case 8:
		return 3
	case 16:
		return 4
	}
	panic("unsupported base")
}

// width returns the number of digits needed to render all 64 bits in the
// given power-of-two base.
func width(base int) int {
	s := shift(base)
	return (64 + int(s) - 1) / int(s)
}

// appendPow2 appends the unsigned bit pattern of x in a power-of-two base.
// If pad is true, the output is zero-padded to [width] digits.
func (x word) appendPow2(buf []byte, base int, pad, upper bool) []byte {
	var (
		tmp  [64]byte
		pos  int
		s    uint
		mask word
		digs string
	)

	s = shift(base)
	mask = word(base - 1)
	digs = digitsLower
	if upper {
		digs = digitsUpper
	}

	pos = len(tmp)
	for {
		pos--
		tmp[pos] = digs[x&mask]
		x >>= s
		if x == 0 {
			break
		}
	}

	if pad {
		for len(tmp)-pos < width(base) {
			pos--
			tmp[pos] = '0'
		}
	}

	return append(buf, tmp[pos:]...)
}

// appendDecimal appends the decimal digits of x without a sign.
func (x word) appendDecimal(buf []byte) []byte {
	var (
		tmp [20]byte
		pos int
	)

	pos = len(tmp)
	for {
		pos--
		tmp[pos] = byte(x%10) + '0'
		x /= 10
		if x == 0 {
			break
		}
	}

	return append(buf, tmp[pos:]...)
}
