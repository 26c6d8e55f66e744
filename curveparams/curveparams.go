// Copyright (c) 2024 The tinyecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curveparams

import "github.com/ModChain/tinyecc"

// Domain is a fully constructed ECDSA domain for one named curve, along
// with the sample key pair the Certicom challenge ships it with.
type Domain struct {
	ID    CurveID
	Field *tinyecc.Field
	Curve *tinyecc.Curve
	Base  *tinyecc.Point
	ECDSA *tinyecc.ECDSA

	PrivateKey *tinyecc.FieldElement
	PublicKey  *tinyecc.Point
}

// Load parses id's hex parameter set and constructs the corresponding
// Field, Curve, base Point and ECDSA domain, plus the sample key pair.
func Load(id CurveID) (*Domain, error) {
	p, ok := registry[id]
	if !ok {
		return nil, errUnknownCurve(id)
	}

	field, err := tinyecc.NewField(p.p)
	if err != nil {
		return nil, err
	}
	a, err := field.Element(p.a)
	if err != nil {
		return nil, err
	}
	b, err := field.Element(p.b)
	if err != nil {
		return nil, err
	}
	curve, err := tinyecc.NewCurve(field, a, b)
	if err != nil {
		return nil, err
	}

	px, err := field.Element(p.px)
	if err != nil {
		return nil, err
	}
	py, err := field.Element(p.py)
	if err != nil {
		return nil, err
	}
	base, err := tinyecc.NewPoint(curve, px, py)
	if err != nil {
		return nil, err
	}

	ecdsa, err := tinyecc.NewECDSA(field, curve, base)
	if err != nil {
		return nil, err
	}

	priv, err := field.Element(p.priv)
	if err != nil {
		return nil, err
	}
	qx, err := field.Element(p.qx)
	if err != nil {
		return nil, err
	}
	qy, err := field.Element(p.qy)
	if err != nil {
		return nil, err
	}
	pub, err := tinyecc.NewPoint(curve, qx, qy)
	if err != nil {
		return nil, err
	}

	return &Domain{
		ID:         id,
		Field:      field,
		Curve:      curve,
		Base:       base,
		ECDSA:      ecdsa,
		PrivateKey: priv,
		PublicKey:  pub,
	}, nil
}
