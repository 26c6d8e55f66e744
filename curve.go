// Copyright (c) 2024 The tinyecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tinyecc

// Curve is a short-Weierstrass elliptic curve y^2 = x^3 + ax + b over a
// prime field. A Curve is immutable after construction and safe to share
// read-only across goroutines.
type Curve struct {
	field        *Field
	a, b         *FieldElement
	inverseOfTwo *FieldElement
}

// NewCurve constructs a curve over field with the given coefficients,
// rejecting any (a, b) pair for which the curve is singular, i.e.
// 4a^3 + 27b^2 = 0 (mod p).
func NewCurve(field *Field, a, b *FieldElement) (*Curve, error) {
	discriminant := a.Mul(a).Mul(a).MulWord(4).Add(b.Mul(b).MulWord(27))
	if discriminant.IsZero() {
		return nil, makeError(ErrInvalidCurve, "tinyecc: curve discriminant 4a^3+27b^2 is zero")
	}

	two, err := field.SmallElement(2)
	if err != nil {
		return nil, err
	}
	inverseOfTwo, err := field.One().Div(two)
	if err != nil {
		return nil, err
	}

	return &Curve{field: field, a: a, b: b, inverseOfTwo: inverseOfTwo}, nil
}

// Field returns the prime field this curve is defined over.
func (c *Curve) Field() *Field { return c.field }

// A returns the curve's a coefficient.
func (c *Curve) A() *FieldElement { return c.a }

// B returns the curve's b coefficient.
func (c *Curve) B() *FieldElement { return c.b }

// Valid reports whether this curve's coefficients satisfy
// 4a^3 + 27b^2 != 0 (mod p). NewCurve already enforces this invariant at
// construction time; Valid exists for callers that parsed or otherwise
// obtained a Curve's coefficients separately and want to re-check them.
func (c *Curve) Valid() bool {
	discriminant := c.a.Mul(c.a).Mul(c.a).MulWord(4).Add(c.b.Mul(c.b).MulWord(27))
	return !discriminant.IsZero()
}

// Contains reports whether (x, y) satisfies the curve equation.
func (c *Curve) Contains(x, y *FieldElement) bool {
	lhs := y.Mul(y)
	rhs := x.Mul(x).Mul(x).Add(c.a.Mul(x)).Add(c.b)
	return lhs.Equal(rhs)
}

// Infinity returns the point at infinity for this curve, the group's
// identity element.
func (c *Curve) Infinity() *Point { return Infinity(c) }
