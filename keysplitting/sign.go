package keysplitting

import (
	"fmt"

	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"
	"github.com/vaultkey/cryptocore/padding"
	"github.com/vaultkey/cryptocore/rsakey"

	"github.com/vaultkey/cryptocore/hash"
)

// digestPrefixes holds the precomputed ASN.1 DigestInfo prefix for each
// hash this package knows how to sign for, so RSASSA-PKCS1-v1_5's T =
// prefix || hash can be built without invoking a general ASN.1 encoder.
// Ported from bastionzero/keysplitting's hashPrefixes table, trimmed to
// SHA-1, SHA-256, and SHA-512 — the hashes this repository's own hash
// package constructs.
var digestPrefixes = map[int][]byte{
	20: {0x30, 0x21, 0x30, 0x09, 0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1a, 0x05, 0x00, 0x04, 0x14},
	32: {0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04,
		0x20},
	64: {0x30, 0x51, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03, 0x05, 0x00, 0x04,
		0x40},
}

// digestInfo builds T = prefix || hashed for RSASSA-PKCS1-v1_5, keyed off
// the hash's output size.
func digestInfo(h hash.Hash, hashed []byte) ([]byte, error) {
	prefix, ok := digestPrefixes[h.Size()]
	if !ok {
		return nil, fmt.Errorf("keysplitting: no DigestInfo prefix registered for a %d-byte hash", h.Size())
	}
	out := make([]byte, 0, len(prefix)+len(hashed))
	out = append(out, prefix...)
	out = append(out, hashed...)
	return out, nil
}

// SignFirst produces the initial partial signature over message using
// shard. For Multiplicative shards only the first party calls it, and
// each later party folds in its shard with SignNext; for Additive shards
// every party may call SignFirst independently and the partial
// signatures combine by multiplying them together modulo N.
func SignFirst(shard *Shard, h hash.Hash, message []byte, rng randsrc.Source) ([]byte, error) {
	hashed := h.Hash(message)
	t, err := digestInfo(h, hashed)
	if err != nil {
		return nil, err
	}

	k := &rsakey.Key{N: shard.Public.N, E: shard.Public.E, D: shard.D}
	return k.Sign(t, padding.PKCS1v15{}, rng)
}

// SignNext folds shard's contribution into partialSig, per the rule fixed
// at split time: Multiplicative chains exponentiation (partialSig^D mod
// N); Additive chains multiplication (SignFirst(shard) * partialSig mod
// N, which is why it needs rng and message even though the multiplicative
// branch does not).
func SignNext(shard *Shard, h hash.Hash, message []byte, partialSig []byte, rng randsrc.Source) ([]byte, error) {
	blockSize := shard.Public.BlockSize()
	partial := bigint.FromBytes(partialSig)

	switch shard.SplitBy {
	case Multiplicative:
		next := partial.ModPow(shard.D, shard.Public.N)
		return leftPad(next.ToArray(), blockSize), nil
	case Additive:
		nextBase, err := SignFirst(shard, h, message, rng)
		if err != nil {
			return nil, err
		}
		nextBaseInt := bigint.FromBytes(nextBase)
		next := nextBaseInt.Mul(partial).Mod(shard.Public.N)
		return leftPad(next.ToArray(), blockSize), nil
	default:
		return nil, fmt.Errorf("keysplitting: unrecognized SplitBy value %v", shard.SplitBy)
	}
}

func leftPad(b []byte, width int) []byte {
	if len(b) == width {
		return b
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out
}
