package i64

// Comp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int64) Comp(y Int64) int {
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}
	return 0
}

// Eq returns x == y.
func (x Int64) Eq(y Int64) bool {
	return x.v == y.v
}

// Ne returns x != y.
func (x Int64) Ne(y Int64) bool {
	return x.v != y.v
}

// Gt returns x > y.
func (x Int64) Gt(y Int64) bool {
	return x.v > y.v
}

// Gte returns x >= y.
func (x Int64) Gte(y Int64) bool {
	return x.v >= y.v
}

// Lt returns x < y.
func (x Int64) Lt(y Int64) bool {
	return x.v < y.v
}

// Lte returns x <= y.
func (x Int64) Lte(y Int64) bool {
	return x.v <= y.v
}

// Max returns the larger of x and y.
func (x Int64) Max(y Int64) Int64 {
	if x.v >= y.v {
		return x
	}
	return y
}

// Min returns the smaller of x and y.
func (x Int64) Min(y Int64) Int64 {
	if x.v <= y.v {
		return x
	}
	return y
}

// Clamp returns the integer closest to x within the range between
// lo and hi, inclusive.
// The bounds may be given in either order.
func (x Int64) Clamp(lo, hi Int64) Int64 {
	if lo.v > hi.v {
		lo, hi = hi, lo
	}
	return x.Max(lo).Min(hi)
}
