// Copyright (c) 2024 The tinyecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tinyecc

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func eccp79Curve(t *testing.T) (*Field, *Curve, *Point) {
	t.Helper()
	f := mustField(t, eccp79Prime)
	a, err := f.Element("39C95E6DDDB1BC45733C")
	if err != nil {
		t.Fatalf("a: %v", err)
	}
	b, err := f.Element("1F16D880E89D5A1C0ED1")
	if err != nil {
		t.Fatalf("b: %v", err)
	}
	curve, err := NewCurve(f, a, b)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	px, err := f.Element("315D4B201C208475057D")
	if err != nil {
		t.Fatalf("px: %v", err)
	}
	py, err := f.Element("035F3DF5AB370252450A")
	if err != nil {
		t.Fatalf("py: %v", err)
	}
	base, err := NewPoint(curve, px, py)
	if err != nil {
		t.Fatalf("NewPoint(base): %v", err)
	}
	return f, curve, base
}

func affineEqual(t *testing.T, p, q *Point) bool {
	t.Helper()
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	px, err := p.AffineX()
	if err != nil {
		t.Fatalf("AffineX: %v", err)
	}
	py, err := p.AffineY()
	if err != nil {
		t.Fatalf("AffineY: %v", err)
	}
	qx, err := q.AffineX()
	if err != nil {
		t.Fatalf("AffineX: %v", err)
	}
	qy, err := q.AffineY()
	if err != nil {
		t.Fatalf("AffineY: %v", err)
	}
	return px.Equal(qx) && py.Equal(qy)
}

func TestCurveRejectsSingularDiscriminant(t *testing.T) {
	f := mustField(t, eccp79Prime)
	zero := f.Zero()
	if _, err := NewCurve(f, zero, zero); !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("NewCurve(0,0) error = %v, want ErrInvalidCurve", err)
	}
}

func TestNewPointRejectsOffCurve(t *testing.T) {
	_, curve, base := eccp79Curve(t)
	x, err := curve.Field().Element("315D4B201C208475057D")
	if err != nil {
		t.Fatalf("x: %v", err)
	}
	y, err := curve.Field().Element("035F3DF5AB370252450B")
	if err != nil {
		t.Fatalf("y: %v", err)
	}
	if _, err := NewPoint(curve, x, y); !errors.Is(err, ErrPointNotOnCurve) {
		t.Errorf("NewPoint(off curve) error = %v, want ErrPointNotOnCurve", err)
	}
	_ = base
}

func TestPointIdentityAndInverse(t *testing.T) {
	_, curve, base := eccp79Curve(t)
	inf := curve.Infinity()

	if got := base.Add(inf); !affineEqual(t, got, base) {
		t.Errorf("P+O != P\ngot=%s", spew.Sdump(got))
	}
	if got := inf.Add(base); !affineEqual(t, got, base) {
		t.Errorf("O+P != P")
	}

	negBase := base.Negate()
	if got := base.Add(negBase); !got.IsInfinity() {
		t.Errorf("P+(-P) != O\ngot=%s", spew.Sdump(got))
	}
}

func TestPointAdditionCommutative(t *testing.T) {
	_, curve, base := eccp79Curve(t)
	two, err := curve.Field().SmallElement(2)
	if err != nil {
		t.Fatalf("SmallElement(2): %v", err)
	}
	q, err := base.Multiply(two)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}

	pq := base.Add(q)
	qp := q.Add(base)
	if !affineEqual(t, pq, qp) {
		t.Errorf("P+Q != Q+P\nP+Q=%s\nQ+P=%s", spew.Sdump(pq), spew.Sdump(qp))
	}
}

func TestPointDoublingMatchesSelfAddition(t *testing.T) {
	_, _, base := eccp79Curve(t)
	doubled := base.Double()
	added := base.Add(base)
	if !affineEqual(t, doubled, added) {
		t.Errorf("2P != P+P\n2P=%s\nP+P=%s", spew.Sdump(doubled), spew.Sdump(added))
	}
}

func TestScalarMultiplicationIncrement(t *testing.T) {
	f, _, base := eccp79Curve(t)
	rng := NewDeterministicRNG([]byte("scalar-increment"))

	for i := 0; i < 20; i++ {
		n := f.Random(rng)
		if n.IsZero() {
			continue
		}
		nOne := n.Add(f.One())

		nP, err := base.Multiply(n)
		if err != nil {
			t.Fatalf("Multiply(n): %v", err)
		}
		nOneP, err := base.Multiply(nOne)
		if err != nil {
			t.Fatalf("Multiply(n+1): %v", err)
		}

		got := nP.Add(base)
		if !affineEqual(t, got, nOneP) {
			t.Fatalf("(n+1)*P != n*P+P for n=%s", spew.Sdump(n))
		}
	}
}

func TestPrecomputedTableMatchesDirectMultiply(t *testing.T) {
	f := mustField(t, eccp131Prime)
	a, err := f.Element("041CB121CE2B31F608A76FC8F23D73CB66")
	if err != nil {
		t.Fatalf("a: %v", err)
	}
	b, err := f.Element("02F74F717E8DEC90991E5EA9B2FF03DA58")
	if err != nil {
		t.Fatalf("b: %v", err)
	}
	curve, err := NewCurve(f, a, b)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	px, err := f.Element("03DF84A96B5688EF574FA91A32E197198A")
	if err != nil {
		t.Fatalf("px: %v", err)
	}
	py, err := f.Element("014721161917A44FB7B4626F36F0942E71")
	if err != nil {
		t.Fatalf("py: %v", err)
	}
	base, err := NewPoint(curve, px, py)
	if err != nil {
		t.Fatalf("NewPoint(base): %v", err)
	}

	rng := NewDeterministicRNG([]byte("table-vs-direct"))
	for i := 0; i < 10; i++ {
		n := f.Random(rng)
		if n.IsZero() {
			continue
		}

		wide, err := base.MultiplyWidth(n, 6)
		if err != nil {
			t.Fatalf("MultiplyWidth(6): %v", err)
		}
		narrow, err := base.MultiplyWidth(n, 2)
		if err != nil {
			t.Fatalf("MultiplyWidth(2): %v", err)
		}

		if !affineEqual(t, wide, narrow) {
			t.Fatalf("width-6 and width-2 scalar mult disagree for n=%s", spew.Sdump(n))
		}
	}
}
