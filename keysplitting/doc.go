// Package keysplitting implements threshold RSA signing on top of rsakey
// and bigint: a private exponent D is split into k shards, each party
// signs with its own shard, and the partial signatures are combined into
// one valid signature without ever reassembling D.
//
// This is the same scheme bastionzero/keysplitting builds over
// crypto/rsa and math/big; this package re-derives it over this
// repository's own Key and Int types, since both SplitD's prime-factor
// arithmetic and SignFirst/SignNext's RSA operation are naturally
// expressed in terms of them.
//
// # The additive vs. multiplicative split schemes
//
// Both Additive and Multiplicative produce shards whose combination
// recovers D modulo phi(N), but they differ in how partial signatures
// combine: Multiplicative chains exponentiation (each party must sign in
// turn, one after another), while Additive chains multiplication (every
// party can sign in parallel and a broker multiplies the results
// together). Pick one and use it consistently for both SplitD and
// SignNext — the two schemes are not interoperable.
package keysplitting
