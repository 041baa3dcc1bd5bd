// Package x25519 implements X25519 elliptic-curve Diffie-Hellman over
// Curve25519 (RFC 7748), built from the same field-arithmetic primitives
// TweetNaCl uses (16-limb radix-2^16 field elements, a fixed
// addition-chain inverse) but driving the explicit Montgomery-ladder
// variable names from RFC 7748 section 5 rather than TweetNaCl's
// single-pass formula, for closer fidelity to the wire-level description
// this package is built from.
package x25519
