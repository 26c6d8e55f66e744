// Copyright (c) 2024 The tinyecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tinyecc

// Point is a point on a Curve, held internally in Jacobian-projective
// coordinates (X, Y, Z), whose affine image is (X/Z^2, Y/Z^3). Working in
// Jacobian coordinates lets Add and Double avoid a field inversion on
// every operation; AffineX/AffineY pay for that inversion only when the
// caller actually needs affine output.
//
// A Point is immutable after construction; no arithmetic method mutates
// its receiver or its operand, and where the point at infinity is
// involved a method may return an existing Point itself.
type Point struct {
	curve    *Curve
	infinity bool
	x, y, z  *FieldElement
}

// Infinity returns the point at infinity on curve.
func Infinity(curve *Curve) *Point {
	return &Point{curve: curve, infinity: true}
}

// NewPoint constructs the affine point (x, y) on curve, rejecting it if
// it does not satisfy the curve equation.
func NewPoint(curve *Curve, x, y *FieldElement) (*Point, error) {
	if !curve.Contains(x, y) {
		return nil, makeError(ErrPointNotOnCurve, "tinyecc: point does not satisfy the curve equation")
	}
	return &Point{curve: curve, x: x, y: y, z: curve.field.One()}, nil
}

// Curve returns the curve this point lies on.
func (p *Point) Curve() *Curve { return p.curve }

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool { return p.infinity }

// AffineX returns the affine x-coordinate X/Z^2 of p.
func (p *Point) AffineX() (*FieldElement, error) {
	if p.infinity {
		return nil, makeError(ErrInvalidArgument, "tinyecc: point at infinity has no affine coordinates")
	}
	if p.z.Equal(p.curve.field.One()) {
		return p.x, nil
	}
	zInv, err := p.z.Inverse()
	if err != nil {
		return nil, err
	}
	return p.x.Mul(zInv.Mul(zInv)), nil
}

// AffineY returns the affine y-coordinate Y/Z^3 of p.
func (p *Point) AffineY() (*FieldElement, error) {
	if p.infinity {
		return nil, makeError(ErrInvalidArgument, "tinyecc: point at infinity has no affine coordinates")
	}
	if p.z.Equal(p.curve.field.One()) {
		return p.y, nil
	}
	zInv, err := p.z.Inverse()
	if err != nil {
		return nil, err
	}
	zInv2 := zInv.Mul(zInv)
	return p.y.Mul(zInv2.Mul(zInv)), nil
}

// Equal reports whether p and q are the same projective point, i.e. have
// identical (X, Y, Z). Two affine-equal points represented with different
// Z compare unequal here; compare AffineX and AffineY to test affine
// equality.
func (p *Point) Equal(q *Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y) && p.z.Equal(q.z)
}

// Negate returns -p.
func (p *Point) Negate() *Point {
	if p.infinity {
		return p
	}
	return &Point{curve: p.curve, x: p.x, y: p.y.Negate(), z: p.z}
}

// Double returns p + p.
//
//	lambda1 = 3*X^2 + a*Z^4
//	lambda2 = 4*X*Y^2
//	lambda3 = 8*Y^4
//	Z3 = 2*Y*Z
//	X3 = lambda1^2 - 2*lambda2
//	Y3 = lambda1*(lambda2 - X3) - lambda3
func (p *Point) Double() *Point {
	if p.infinity || p.y.IsZero() {
		return Infinity(p.curve)
	}

	x, y, z := p.x, p.y, p.z
	a := p.curve.a

	z2 := z.Mul(z)
	z4 := z2.Mul(z2)
	y2 := y.Mul(y)
	y4 := y2.Mul(y2)

	lambda1 := x.Mul(x).MulWord(3).Add(a.Mul(z4))
	lambda2 := x.Mul(y2).MulWord(4)
	lambda3 := y4.MulWord(8)

	z3 := y.MulWord(2).Mul(z)
	x3 := lambda1.Mul(lambda1).Sub(lambda2.MulWord(2))
	y3 := lambda1.Mul(lambda2.Sub(x3)).Sub(lambda3)

	return &Point{curve: p.curve, x: x3, y: y3, z: z3}
}

// Add returns p + q.
//
//	lambda1 = X1*Z2^2, lambda2 = X2*Z1^2
//	lambda3 = lambda1 - lambda2,  lambda7 = lambda1 + lambda2
//	lambda4 = Y1*Z2^3,  lambda5 = Y2*Z1^3
//	lambda6 = lambda4 - lambda5, lambda8 = lambda4 + lambda5
//	Z3 = Z1*Z2*lambda3 -- if Z3 == 0, the points share an affine x:
//	                      equal points (lambda6 == 0) are doubled,
//	                      inverses give infinity
//	X3 = lambda6^2 - lambda7*lambda3^2
//	lambda9 = lambda7*lambda3^2 - 2*X3
//	Y3 = (lambda9*lambda6 - lambda8*lambda3^3) * 2^-1
//
// p and q projectively equal (identical X, Y and Z) delegates to Double
// directly; either operand being infinity returns the other unchanged.
func (p *Point) Add(q *Point) *Point {
	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	if p.Equal(q) {
		return p.Double()
	}

	curve := p.curve
	z1, z2 := p.z, q.z
	z1sq := z1.Mul(z1)
	z2sq := z2.Mul(z2)
	z1cb := z1sq.Mul(z1)
	z2cb := z2sq.Mul(z2)

	lambda1 := p.x.Mul(z2sq)
	lambda2 := q.x.Mul(z1sq)
	lambda3 := lambda1.Sub(lambda2)
	lambda7 := lambda1.Add(lambda2)
	lambda4 := p.y.Mul(z2cb)
	lambda5 := q.y.Mul(z1cb)
	lambda6 := lambda4.Sub(lambda5)
	lambda8 := lambda4.Add(lambda5)

	lambda3sq := lambda3.Mul(lambda3)
	z3 := z1.Mul(z2).Mul(lambda3)
	if z3.IsZero() {
		if lambda6.IsZero() {
			return p.Double()
		}
		return Infinity(curve)
	}

	x3 := lambda6.Mul(lambda6).Sub(lambda7.Mul(lambda3sq))
	lambda9 := lambda7.Mul(lambda3sq).Sub(x3.MulWord(2))
	lambda3cb := lambda3sq.Mul(lambda3)
	y3 := lambda9.Mul(lambda6).Sub(lambda8.Mul(lambda3cb)).Mul(curve.inverseOfTwo)

	return &Point{curve: curve, x: x3, y: y3, z: z3}
}

// Sub returns p - q.
func (p *Point) Sub(q *Point) *Point {
	return p.Add(q.Negate())
}

// widthForBitLen selects the wNAF window width for a scalar of the given
// bit length by estimating the number of point additions a window of
// width w costs -- (2^(w-2)-1) precompute additions plus roughly
// bitLen/(w+1) additions during the main loop -- and walking up from w=2
// while the estimate keeps strictly improving.
func widthForBitLen(bitLen int) int {
	cost := func(w int) float64 {
		return float64(int(1)<<uint(w-2)-1) + float64(bitLen)/float64(w+1)
	}

	w := 2
	best := cost(w)
	for w < 6 {
		next := cost(w + 1)
		if next >= best {
			break
		}
		w++
		best = next
	}
	return w
}

// PrecomputeNAFPoints returns the odd multiples 1*p, 3*p, 5*p, ...,
// (2^width-1)*p needed to evaluate a width-w wNAF scalar multiplication
// against p. width must be between 2 and 6.
func (p *Point) PrecomputeNAFPoints(width int) ([]*Point, error) {
	if width < 2 || width > 6 {
		return nil, makeError(ErrInvalidArgument, "tinyecc: wNAF width must be between 2 and 6")
	}

	count := 1 << uint(width-1)
	table := make([]*Point, count)
	table[0] = p
	twiceP := p.Double()
	for i := 1; i < count; i++ {
		table[i] = table[i-1].Add(twiceP)
	}
	return table, nil
}

// Multiply returns k*p using width-w wNAF scalar multiplication, choosing
// the window width from k's bit length.
func (p *Point) Multiply(k *FieldElement) (*Point, error) {
	return p.MultiplyWidth(k, widthForBitLen(k.BitLen()))
}

// MultiplyWidth returns k*p using width-w wNAF scalar multiplication with
// an explicit window width, recomputing the odd-multiple table from
// scratch. Callers that multiply the same point by many scalars should
// precompute the table once with PrecomputeNAFPoints and call
// MultiplyWithTable instead.
func (p *Point) MultiplyWidth(k *FieldElement, width int) (*Point, error) {
	naf, err := k.ToNAF(width)
	if err != nil {
		return nil, err
	}
	table, err := p.PrecomputeNAFPoints(width)
	if err != nil {
		return nil, err
	}
	return MultiplyWithTable(p.curve, naf, table), nil
}

// MultiplyWithTable evaluates a width-w wNAF digit sequence against a
// precomputed odd-multiple table via left-to-right double-and-add. table
// must hold the odd multiples 1*base, 3*base, ..., produced by
// PrecomputeNAFPoints for the same width the digits were computed with.
func MultiplyWithTable(curve *Curve, naf []int8, table []*Point) *Point {
	result := Infinity(curve)
	for i := len(naf) - 1; i >= 0; i-- {
		result = result.Double()
		d := naf[i]
		if d == 0 {
			continue
		}
		idx := (absInt8(d) - 1) / 2
		if d > 0 {
			result = result.Add(table[idx])
		} else {
			result = result.Add(table[idx].Negate())
		}
	}
	return result
}

func absInt8(d int8) int {
	if d < 0 {
		return int(-d)
	}
	return int(d)
}
