// Copyright (c) 2024 The tinyecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tinyecc

// Signature is an ECDSA signature, a pair of field elements (r, s).
type Signature struct {
	R *FieldElement
	S *FieldElement
}

// ECDSA holds a field, a curve over it, and a base point, plus a
// precomputed width-6 wNAF odd-multiple table for the base point so that
// every sign and verify call reuses it instead of rebuilding it.
type ECDSA struct {
	field *Field
	curve *Curve
	base  *Point

	baseTable []*Point
}

const baseTableWidth = 6

// NewECDSA constructs an ECDSA domain over (field, curve, base),
// precomputing base's wNAF table at width 6.
func NewECDSA(field *Field, curve *Curve, base *Point) (*ECDSA, error) {
	table, err := base.PrecomputeNAFPoints(baseTableWidth)
	if err != nil {
		return nil, err
	}
	return &ECDSA{field: field, curve: curve, base: base, baseTable: table}, nil
}

// Field returns the domain's prime field.
func (e *ECDSA) Field() *Field { return e.field }

// Curve returns the domain's curve.
func (e *ECDSA) Curve() *Curve { return e.curve }

// Base returns the domain's base point.
func (e *ECDSA) Base() *Point { return e.base }

// Sign signs message (already reduced to a field element by the caller;
// hashing is out of scope here) under privateKey, drawing nonces from
// rng. It hides the nonce k used to produce the signature; see
// SignWithNonce for a test-only accessor that returns it.
func (e *ECDSA) Sign(message, privateKey *FieldElement, rng RNG) (*Signature, error) {
	sig, _, err := e.sign(message, privateKey, rng)
	return sig, err
}

// SignWithNonce behaves like Sign but additionally returns the nonce k
// used, for cross-implementation conformance testing. Production callers
// must treat k as secret and should use Sign instead.
func (e *ECDSA) SignWithNonce(message, privateKey *FieldElement, rng RNG) (*Signature, *FieldElement, error) {
	return e.sign(message, privateKey, rng)
}

func (e *ECDSA) sign(message, privateKey *FieldElement, rng RNG) (*Signature, *FieldElement, error) {
	f := e.field

	for {
		var r, k *FieldElement
		for {
			k = f.Random(rng)
			if k.IsZero() {
				continue
			}

			naf, err := k.ToNAF(baseTableWidth)
			if err != nil {
				return nil, nil, err
			}
			R := MultiplyWithTable(e.curve, naf, e.baseTable)

			x, err := R.AffineX()
			if err != nil {
				// R was the point at infinity; redraw k.
				continue
			}
			if !x.IsZero() {
				r = x
				break
			}
		}

		kInv, err := k.Inverse()
		if err != nil {
			return nil, nil, err
		}
		s := kInv.Mul(message.Add(privateKey.Mul(r)))
		if !s.IsZero() {
			return &Signature{R: r, S: s}, k, nil
		}
	}
}

// Verify reports whether sig is a valid signature over message under
// publicKey.
func (e *ECDSA) Verify(publicKey *Point, message *FieldElement, sig *Signature) bool {
	if sig.R == nil || sig.S == nil || sig.R.IsZero() || sig.S.IsZero() {
		return false
	}

	w, err := sig.S.Inverse()
	if err != nil {
		return false
	}
	u1 := message.Mul(w)
	u2 := sig.R.Mul(w)

	naf, err := u1.ToNAF(baseTableWidth)
	if err != nil {
		return false
	}
	p1 := MultiplyWithTable(e.curve, naf, e.baseTable)

	p2, err := publicKey.Multiply(u2)
	if err != nil {
		return false
	}

	x := p1.Add(p2)
	if x.IsInfinity() {
		return false
	}

	xAffine, err := x.AffineX()
	if err != nil {
		return false
	}
	return xAffine.Equal(sig.R)
}
