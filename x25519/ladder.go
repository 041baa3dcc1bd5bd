package x25519

import "fmt"

// basePoint is the Curve25519 base point u=9, little-endian encoded.
var basePoint = [32]byte{9}

// clampScalar applies RFC 7748's fixed-bit mask: clear the low 3 bits (so
// the scalar is a multiple of the cofactor 8), clear the top bit, and set
// the second-highest bit (so every scalar lands at exactly 255 bits).
func clampScalar(k [32]byte) [32]byte {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
	return k
}

// ladder runs the RFC 7748 section 5 Montgomery ladder over the clamped
// scalar k against the u-coordinate in, returning the resulting
// u-coordinate. Variable names (x2, z2, x3, z3, A, AA, B, BB, E, C, D, DA,
// CB) mirror the RFC's pseudocode directly; swap tracks whether x2/x3 and
// z2/z3 need to be exchanged before the next iteration, per k_t.
func ladder(k [32]byte, in [32]byte) [32]byte {
	x1 := feUnpack(in)
	x2 := feFromLimbs(1)
	z2 := fieldElement{}
	x3 := x1
	z3 := feFromLimbs(1)

	var swap int64
	for t := 254; t >= 0; t-- {
		kt := int64((k[t>>3] >> uint(t&7)) & 1)
		swap ^= kt
		feSel(&x2, &x3, swap)
		feSel(&z2, &z3, swap)
		swap = kt

		a := feAdd(x2, z2)
		aa := feSquare(a)
		b := feSub(x2, z2)
		bb := feSquare(b)
		e := feSub(aa, bb)
		c := feAdd(x3, z3)
		d := feSub(x3, z3)
		da := feMul(d, a)
		cb := feMul(c, b)

		x3 = feSquare(feAdd(da, cb))
		z3 = feMul(x1, feSquare(feSub(da, cb)))
		x2 = feMul(aa, bb)
		z2 = feMul(e, feAdd(aa, feMul(a24, e)))
	}
	feSel(&x2, &x3, swap)
	feSel(&z2, &z3, swap)

	return fePack(feMul(x2, feInvert(z2)))
}

// GenKeypair derives the public key for a 32-byte private scalar. The
// scalar is clamped internally; callers supply raw random bytes — this
// takes an already-drawn private value, not a random-number source.
func GenKeypair(priv [32]byte) ([32]byte, error) {
	return ladder(clampScalar(priv), basePoint), nil
}

// CombineKeys performs the Diffie-Hellman combination: ladder(priv, pub).
// Calling it with one side's private scalar and the other side's public
// value from GenKeypair yields the same shared secret on both ends, per
// property 2 (ECDH symmetry): combineKeys(a.priv, B.pub) ==
// combineKeys(b.priv, A.pub).
func CombineKeys(priv, pub [32]byte) ([32]byte, error) {
	return ladder(clampScalar(priv), pub), nil
}

// validateLen is a defensive shape check for callers that assemble a
// private or public value from a slice rather than an array literal; a
// wrong-length key is a fatal shape error, not a recoverable one.
func validateLen(b []byte) ([32]byte, error) {
	var out [32]byte
	if len(b) != 32 {
		return out, fmt.Errorf("x25519: key must be exactly 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

// GenKeypairBytes is the slice-based convenience wrapper over GenKeypair.
func GenKeypairBytes(priv []byte) ([]byte, error) {
	p, err := validateLen(priv)
	if err != nil {
		return nil, err
	}
	pub, err := GenKeypair(p)
	if err != nil {
		return nil, err
	}
	return pub[:], nil
}

// CombineKeysBytes is the slice-based convenience wrapper over CombineKeys.
func CombineKeysBytes(priv, pub []byte) ([]byte, error) {
	p, err := validateLen(priv)
	if err != nil {
		return nil, err
	}
	q, err := validateLen(pub)
	if err != nil {
		return nil, err
	}
	shared, err := CombineKeys(p, q)
	if err != nil {
		return nil, err
	}
	return shared[:], nil
}
