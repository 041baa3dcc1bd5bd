// Package hash defines the hash capability the padding schemes consume and
// the MGF1 mask-generation function built on top of it.
//
// Hash primitives are treated as an external collaborator: anything
// exposing BlockSize, Size, and Hash(bytes) is acceptable. This package
// only owns the interface and MGF1; StdHash below is a thin convenience
// adapter over the standard library's hash.Hash constructors, provided so
// callers don't have to write their own adapter for SHA-1/SHA-256/SHA-512.
package hash
