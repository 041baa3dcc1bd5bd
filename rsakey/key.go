package rsakey

import (
	"fmt"

	"github.com/vaultkey/cryptocore/internal/bigint"
)

// Key holds RSA key material: always the modulus and public exponent,
// optionally the private exponent and — when available — the CRT
// parameters that accelerate the private operation.
//
// When P, Q, Dp, Dq, and Coeff are all present, the invariant N = P*Q and
// P > Q must hold; Generate and ParsePrivateKey both enforce it.
type Key struct {
	N *bigint.Int
	E uint32

	D     *bigint.Int
	P     *bigint.Int
	Q     *bigint.Int
	Dp    *bigint.Int // d mod (p-1)
	Dq    *bigint.Int // d mod (q-1)
	Coeff *bigint.Int // q^-1 mod p
}

// CanEncrypt reports whether the key carries enough material for the
// public operation.
func (k *Key) CanEncrypt() bool {
	return k.N != nil && k.E != 0
}

// CanDecrypt reports whether the key carries enough material for the
// private operation.
func (k *Key) CanDecrypt() bool {
	return k.CanEncrypt() && k.D != nil
}

// hasCRT reports whether the CRT shortcut parameters are all present.
func (k *Key) hasCRT() bool {
	return k.P != nil && k.Q != nil && k.Dp != nil && k.Dq != nil && k.Coeff != nil
}

// BlockSize returns k = ceil(bitLength(N)/8), the width of every
// ciphertext or signature block this key produces.
func (k *Key) BlockSize() int {
	return (k.N.BitLen() + 7) / 8
}

// ParsePublicKey builds a public-only Key from unsigned, big-endian hex
// strings.
func ParsePublicKey(nHex, eHex string) (*Key, error) {
	n, err := bigint.FromHex(nHex)
	if err != nil {
		return nil, fmt.Errorf("rsakey: invalid modulus: %w", err)
	}
	e, err := bigint.FromHex(eHex)
	if err != nil {
		return nil, fmt.Errorf("rsakey: invalid exponent: %w", err)
	}
	if e.BitLen() > 31 {
		return nil, fmt.Errorf("rsakey: public exponent exceeds 2^31")
	}
	return &Key{N: n, E: uint32(exponentUint(e))}, nil
}

// ParsePrivateKey builds a Key from unsigned, big-endian hex strings. The
// CRT fields (p, q, dmp1, dmq1, iqmp) are optional; pass empty strings to
// omit them, leaving only the plain d-based private operation available.
func ParsePrivateKey(nHex, eHex, dHex, pHex, qHex, dmp1Hex, dmq1Hex, iqmpHex string) (*Key, error) {
	k, err := ParsePublicKey(nHex, eHex)
	if err != nil {
		return nil, err
	}
	d, err := bigint.FromHex(dHex)
	if err != nil {
		return nil, fmt.Errorf("rsakey: invalid private exponent: %w", err)
	}
	k.D = d

	if pHex == "" && qHex == "" && dmp1Hex == "" && dmq1Hex == "" && iqmpHex == "" {
		return k, nil
	}

	p, err := bigint.FromHex(pHex)
	if err != nil {
		return nil, fmt.Errorf("rsakey: invalid p: %w", err)
	}
	q, err := bigint.FromHex(qHex)
	if err != nil {
		return nil, fmt.Errorf("rsakey: invalid q: %w", err)
	}
	dmp1, err := bigint.FromHex(dmp1Hex)
	if err != nil {
		return nil, fmt.Errorf("rsakey: invalid dmp1: %w", err)
	}
	dmq1, err := bigint.FromHex(dmq1Hex)
	if err != nil {
		return nil, fmt.Errorf("rsakey: invalid dmq1: %w", err)
	}
	coeff, err := bigint.FromHex(iqmpHex)
	if err != nil {
		return nil, fmt.Errorf("rsakey: invalid iqmp: %w", err)
	}
	if p.Cmp(q) <= 0 {
		return nil, fmt.Errorf("rsakey: invariant violated: p must be greater than q")
	}
	if p.Mul(q).Cmp(k.N) != 0 {
		return nil, fmt.Errorf("rsakey: invariant violated: p*q != n")
	}

	k.P, k.Q, k.Dp, k.Dq, k.Coeff = p, q, dmp1, dmq1, coeff
	return k, nil
}

// exponentUint extracts a small unsigned value from a BigInt known to fit
// in 31 bits.
func exponentUint(e *bigint.Int) uint64 {
	b := e.ToArray()
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
