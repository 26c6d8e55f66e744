// Copyright (c) 2024 The tinyecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tinyecc

// ECDH computes a Diffie-Hellman shared secret as the affine
// x-coordinate of priv*pub.
func ECDH(priv *FieldElement, pub *Point) (*FieldElement, error) {
	shared, err := pub.Multiply(priv)
	if err != nil {
		return nil, err
	}
	if shared.IsInfinity() {
		return nil, makeError(ErrInvalidArgument, "tinyecc: ECDH shared point is the point at infinity")
	}
	return shared.AffineX()
}
