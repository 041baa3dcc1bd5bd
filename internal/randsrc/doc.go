// Package randsrc is the randomness-provider abstraction consumed by RSA
// key generation, OAEP seeds, PSS salts, and PKCS#1 type-2 padding.
//
// Every call site reads straight from crypto/rand in production; Source
// names that as a one-method interface so padding and key generation can
// be exercised against a deterministic source in tests.
package randsrc
