// Copyright (c) 2024 The tinyecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package tinyecc implements arbitrary-precision prime-field arithmetic,
short-Weierstrass elliptic curve group operations, and ECDSA on top of
them, targeting small and resource-constrained devices.

Unlike curve-specific packages such as secp256k1 implementations that hard
code a single field and a fixed limb count, tinyecc works over any prime
field whose modulus is supplied as a hex string: the field width is
discovered from the modulus at construction time and every FieldElement,
Curve and Point carries its limb count implicitly through its magnitude
slice. This makes the package suitable for the small odd-width curves used
in constrained-device cryptography (Certicom's ECCp challenge curves, for
instance, range from 79 to 359 bits) as well as for the named curves used
elsewhere.

The package provides:

  - Field and FieldElement: a prime field and non-negative integers in
    [0, p), with addition, subtraction, negation, multiplication, division
    and multiplicative inverse, all reduced via Barrett's algorithm.
  - Curve and Point: a short-Weierstrass curve y^2 = x^3 + ax + b and
    points on it held internally in Jacobian-projective coordinates, with
    point addition, doubling, negation and width-w NAF scalar
    multiplication with precomputed odd multiples of the base.
  - ECDSA: signing and verification built on the above, plus a reusable
    precomputed table of odd multiples of the domain base point.

None of the arithmetic here runs in constant time: the algorithms
(binary extended gcd, width-w NAF, the scalar-multiplication window-width
heuristic) are all variable-time by design, favouring throughput on small
devices over protection against timing side channels. Callers operating
under a threat model where timing leaks matter should not use this
package for secret-dependent operations.

Message hashing, secure random byte generation below the RNG interface,
and curve-parameter serialization formats are all considered external to
the core and are not implemented here; see the curveparams subpackage for
a minimal loader of a fixed set of named curves.
*/
package tinyecc
