package rsakey

import (
	"fmt"

	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"
)

// millerRabinRounds is the default number of Miller-Rabin rounds used at
// every call site in this package.
const millerRabinRounds = 10

// Generate produces a B-bit RSA key using public exponent eHex (an
// unsigned, big-endian hex string): sample p and q of complementary bit
// length, reject any candidate whose p-1 isn't coprime to e or that fails
// Miller-Rabin, swap so p > q, and restart the whole search if phi(N)
// turns out not to be coprime to e.
func Generate(bits int, eHex string, rng randsrc.Source) (*Key, error) {
	e, err := bigint.FromHex(eHex)
	if err != nil {
		return nil, fmt.Errorf("rsakey: invalid exponent: %w", err)
	}
	if e.BitLen() > 31 {
		return nil, fmt.Errorf("rsakey: public exponent exceeds 2^31")
	}

	qBits := bits / 2
	pBits := bits - qBits

	for {
		p, err := randomPrimeCoprimeToE(pBits, e, rng)
		if err != nil {
			return nil, err
		}
		q, err := randomPrimeCoprimeToE(qBits, e, rng)
		if err != nil {
			return nil, err
		}

		if p.Cmp(q) <= 0 {
			p, q = q, p
		}

		pMinus1 := p.Sub(bigint.One)
		qMinus1 := q.Sub(bigint.One)
		phi := pMinus1.Mul(qMinus1)

		if phi.GCD(e).Cmp(bigint.One) != 0 {
			// phi(n) isn't coprime to e: restart the whole search.
			continue
		}

		d := e.ModInverse(phi)
		return &Key{
			N:     p.Mul(q),
			E:     uint32(exponentUint(e)),
			D:     d,
			P:     p,
			Q:     q,
			Dp:    d.Mod(pMinus1),
			Dq:    d.Mod(qMinus1),
			Coeff: q.ModInverse(p),
		}, nil
	}
}

// randomPrimeCoprimeToE draws bigRandom(bits) candidates until one both
// passes Miller-Rabin and has p-1 coprime to e. Rejections are silent:
// a candidate simply gets discarded and the loop draws another.
func randomPrimeCoprimeToE(bits int, e *bigint.Int, rng randsrc.Source) (*bigint.Int, error) {
	for {
		p, err := bigRandom(bits, rng)
		if err != nil {
			return nil, err
		}
		if !p.IsProbablePrime(millerRabinRounds) {
			continue
		}
		if p.Sub(bigint.One).GCD(e).Cmp(bigint.One) != 0 {
			continue
		}
		return p, nil
	}
}

// bigRandom draws ceil(bits/8) random bytes, constructs an unsigned
// integer from them, then forces it to a probable prime of exactly bits
// bits via a single Miller-Rabin round. The caller is responsible for a
// further primality check if a higher confidence is required before use.
func bigRandom(bits int, rng randsrc.Source) (*bigint.Int, error) {
	n := (bits + 7) / 8
	b, err := rng.RandomBytes(n)
	if err != nil {
		return nil, err
	}
	return bigint.FromBytes(b).Primify(bits, 1), nil
}
