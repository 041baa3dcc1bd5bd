package bigint

import (
	"fmt"
	"math/big"
)

// Int is a non-negative arbitrary-precision integer. The zero value is not
// usable; construct one with FromHex, FromBytes, or FromUint64. Once
// constructed, an Int is never mutated in place — every operation below
// returns a new value.
type Int struct {
	v *big.Int
}

var (
	// Zero and One are shared read-only constants, set once at package
	// initialization, mirroring the "cached constants" carve-out in the
	// concurrency model: safe to read from many goroutines, never written.
	Zero = &Int{v: big.NewInt(0)}
	One  = &Int{v: big.NewInt(1)}
	two  = big.NewInt(2)
)

func wrap(v *big.Int) *Int {
	if v.Sign() < 0 {
		panic("bigint: negative value where non-negative is required")
	}
	return &Int{v: v}
}

// FromHex parses an unsigned, big-endian hexadecimal string. A leading
// "0x"/"0X" prefix is tolerated.
func FromHex(s string) (*Int, error) {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("bigint: invalid hex string %q", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("bigint: negative hex string %q", s)
	}
	return &Int{v: v}, nil
}

// FromBytes interprets b as a big-endian unsigned integer.
func FromBytes(b []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(b)}
}

// FromUint64 constructs a small non-negative integer.
func FromUint64(u uint64) *Int {
	return &Int{v: new(big.Int).SetUint64(u)}
}

// Add returns x+y.
func (x *Int) Add(y *Int) *Int {
	return &Int{v: new(big.Int).Add(x.v, y.v)}
}

// Sub returns x-y. Panics if the result would be negative, per the
// "asserting nonnegative result where contract demands" requirement.
func (x *Int) Sub(y *Int) *Int {
	r := new(big.Int).Sub(x.v, y.v)
	if r.Sign() < 0 {
		panic("bigint: subtraction produced a negative result")
	}
	return &Int{v: r}
}

// Mul returns x*y.
func (x *Int) Mul(y *Int) *Int {
	return &Int{v: new(big.Int).Mul(x.v, y.v)}
}

// DivMod returns (x/y, x%y). Panics on division by zero.
func (x *Int) DivMod(y *Int) (q, r *Int) {
	if y.v.Sign() == 0 {
		panic("bigint: division by zero")
	}
	qv, rv := new(big.Int), new(big.Int)
	qv.DivMod(x.v, y.v, rv)
	return &Int{v: qv}, &Int{v: rv}
}

// Mod returns x mod m.
func (x *Int) Mod(m *Int) *Int {
	if m.v.Sign() == 0 {
		panic("bigint: division by zero")
	}
	return &Int{v: new(big.Int).Mod(x.v, m.v)}
}

// GCD returns gcd(x, y).
func (x *Int) GCD(y *Int) *Int {
	return &Int{v: new(big.Int).GCD(nil, nil, x.v, y.v)}
}

// ModInverse returns z such that x*z ≡ 1 (mod m). Panics if gcd(x, m) != 1:
// callers are expected to only invert values already known to be coprime
// to the modulus, so a failure here means caller error, not bad input.
func (x *Int) ModInverse(m *Int) *Int {
	z := new(big.Int).ModInverse(x.v, m.v)
	if z == nil {
		panic("bigint: modInverse: operands are not coprime")
	}
	return &Int{v: z}
}

// ModPowInt returns x^e mod m for a machine-word exponent.
func (x *Int) ModPowInt(e uint64, m *Int) *Int {
	return &Int{v: new(big.Int).Exp(x.v, new(big.Int).SetUint64(e), m.v)}
}

// ModPow returns x^e mod m for an arbitrary-precision exponent.
func (x *Int) ModPow(e *Int, m *Int) *Int {
	return &Int{v: new(big.Int).Exp(x.v, e.v, m.v)}
}

// BitLen returns the number of bits required to represent x, with
// BitLen(0) == 0.
func (x *Int) BitLen() int {
	return x.v.BitLen()
}

// Sign returns -1, 0, or +1. Since Int is non-negative by invariant, this
// is always 0 or +1.
func (x *Int) Sign() int {
	return x.v.Sign()
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x *Int) Cmp(y *Int) int {
	return x.v.Cmp(y.v)
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return x.v.Sign() == 0
}

// Bit returns the value of the i'th bit of x, where bit 0 is the
// least-significant bit.
func (x *Int) Bit(i int) uint {
	return x.v.Bit(i)
}

// IsProbablePrime reports whether x passes t rounds of Miller-Rabin.
func (x *Int) IsProbablePrime(t int) bool {
	return x.v.ProbablyPrime(t)
}

// Primify drops any bits of x at or above position bits, forces bit 0 and
// bit (bits-1) to 1, then advances by +2 until the result passes t rounds
// of Miller-Rabin, wrapping back below 2^bits if the search overflows. The
// returned value always has exactly bits significant bits.
func (x *Int) Primify(bits, t int) *Int {
	top := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	v := new(big.Int).Mod(x.v, new(big.Int).Lsh(top, 1))
	v.SetBit(v, bits-1, 1)
	v.SetBit(v, 0, 1)
	for !v.ProbablyPrime(t) {
		v.Add(v, two)
		if v.BitLen() > bits {
			v.Sub(v, top)
		}
	}
	return &Int{v: v}
}

// ToArray returns the minimal big-endian byte representation of x. The
// caller (the RSA layer) is responsible for left-padding to the modulus
// width; this never emits a leading zero byte, except that a zero value
// serializes to a single 0x00 byte.
func (x *Int) ToArray() []byte {
	b := x.v.Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

func (x *Int) String() string {
	return x.v.Text(16)
}
