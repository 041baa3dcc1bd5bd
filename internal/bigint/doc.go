// Package bigint provides the arbitrary-precision non-negative integer type
// the RSA core is built on: modular exponentiation, modular inverse, gcd,
// and probabilistic primality.
//
// Int wraps math/big.Int in value semantics rather than exposing it
// directly, so that callers get the exact operation set the RSA layer
// needs (Primify, ModPowInt, ToArray, ...) without leaking mutation through
// an aliased pointer.
package bigint
