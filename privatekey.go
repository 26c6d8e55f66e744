// Copyright (c) 2024 The tinyecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tinyecc

// PrivateKey pairs an ECDSA domain with a private scalar, as an ergonomic
// wrapper over ECDSA.Sign for callers that would otherwise thread the
// same domain and scalar through every call. Unlike crypto.Signer, Sign
// here still takes a pre-reduced FieldElement rather than a []byte
// digest: message hashing remains out of scope for this package.
type PrivateKey struct {
	ECDSA *ECDSA
	D     *FieldElement
}

// NewPrivateKey pairs domain with scalar d.
func NewPrivateKey(domain *ECDSA, d *FieldElement) *PrivateKey {
	return &PrivateKey{ECDSA: domain, D: d}
}

// Public returns the public point D*base.
func (priv *PrivateKey) Public() (*Point, error) {
	return priv.ECDSA.Base().Multiply(priv.D)
}

// Sign signs message under this key, drawing nonces from rng.
func (priv *PrivateKey) Sign(message *FieldElement, rng RNG) (*Signature, error) {
	return priv.ECDSA.Sign(message, priv.D, rng)
}
