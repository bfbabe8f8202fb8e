package i64

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genInt64() gopter.Gen {
	return gen.Int64().Map(New)
}

func TestInt64_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("addition is commutative", prop.ForAll(
		func(x, y Int64) bool {
			return x.Add(y) == y.Add(x)
		},
		genInt64(),
		genInt64(),
	))

	properties.Property("addition is associative", prop.ForAll(
		func(x, y, z Int64) bool {
			return x.Add(y).Add(z) == x.Add(y.Add(z))
		},
		genInt64(),
		genInt64(),
		genInt64(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(x, y, z Int64) bool {
			return x.Multiply(y.Add(z)) == x.Multiply(y).Add(x.Multiply(z))
		},
		genInt64(),
		genInt64(),
		genInt64(),
	))

	properties.Property("subtraction undoes addition", prop.ForAll(
		func(x, y Int64) bool {
			return x.Add(y).Subtract(y) == x
		},
		genInt64(),
		genInt64(),
	))

	properties.Property("negation is an involution", prop.ForAll(
		func(x Int64) bool {
			return x.Negative().Negative() == x && x.Add(x.Negative()).IsZero()
		},
		genInt64(),
	))

	properties.Property("division and remainder reconstruct the dividend", prop.ForAll(
		func(x, y Int64) bool {
			q, r, err := x.DivMod(y)
			if err != nil {
				return y.IsZero()
			}
			if !r.IsZero() && r.Sign() != x.Sign() {
				return false
			}
			return q.Multiply(y).Add(r) == x
		},
		genInt64(),
		genInt64(),
	))

	properties.Property("rotations are inverse", prop.ForAll(
		func(x, n Int64) bool {
			return x.RotateLeft(n).RotateRight(n) == x
		},
		genInt64(),
		genInt64(),
	))

	properties.Property("not is xor with -1", prop.ForAll(
		func(x Int64) bool {
			return x.Not() == x.Xor(NegOne) && x.Not().Not() == x
		},
		genInt64(),
	))

	properties.Property("comparison is antisymmetric", prop.ForAll(
		func(x, y Int64) bool {
			return x.Comp(y) == -y.Comp(x) && (x.Comp(y) == 0) == x.Eq(y)
		},
		genInt64(),
		genInt64(),
	))

	properties.Property("decimal text round trip", prop.ForAll(
		func(x Int64) bool {
			y, err := Parse(x.String())
			return err == nil && y == x
		},
		genInt64(),
	))

	properties.Property("prefixed text round trip", prop.ForAll(
		func(x Int64) bool {
			for _, s := range []string{x.Binary(true), x.Octal(true), x.Hex(true, false), x.Hex(true, true)} {
				y, err := Parse(s)
				if err != nil || y != x {
					return false
				}
			}
			return true
		},
		genInt64(),
	))

	properties.Property("bytes round trip", prop.ForAll(
		func(x Int64) bool {
			y, err := NewFromBytes(x.Bytes())
			return err == nil && y == x
		},
		genInt64(),
	))

	properties.Property("random stays within bounds", prop.ForAll(
		func(x, y Int64) bool {
			z := x.Random(y)
			return z.Gte(x.Min(y)) && z.Lte(x.Max(y))
		},
		genInt64(),
		genInt64(),
	))

	properties.TestingRun(t)
}
