// Package rsakey holds RSA key material and drives the four high-level
// operations — encrypt, decrypt, sign, verify — through a pluggable
// padding.Scheme, plus key generation via probabilistic primality testing.
//
// Key owns its own arithmetic end to end through the bigint package,
// rather than wrapping crypto/rsa — the RSA primitives themselves are
// what this package exists to implement.
package rsakey
