package hash

// Hash is the capability the padding schemes need: block size, digest
// size, and a pure hash function. Implementations are expected to be
// stateless and safe for concurrent use from distinct callers.
type Hash interface {
	BlockSize() int
	Size() int
	Hash(data []byte) []byte
}

// incCounter increments a four byte, big-endian counter, matching the
// MGF1 counter construction from PKCS#1 v2.1.
func incCounter(c *[4]byte) {
	if c[3]++; c[3] != 0 {
		return
	}
	if c[2]++; c[2] != 0 {
		return
	}
	if c[1]++; c[1] != 0 {
		return
	}
	c[0]++
}

// MGF1 concatenates h(seed‖counter) for counter = 0, 1, 2, ... until at
// least length bytes are produced, then truncates to length. The loop
// body is straight-line with no early exit on any input-dependent
// condition.
func MGF1(seed []byte, length int, h Hash) []byte {
	out := make([]byte, 0, length+h.Size())
	var counter [4]byte
	in := make([]byte, len(seed)+4)
	copy(in, seed)

	for len(out) < length {
		copy(in[len(seed):], counter[:])
		out = append(out, h.Hash(in)...)
		incCounter(&counter)
	}
	return out[:length]
}

// MGF1XOR XORs dst in place with MGF1(seed, len(dst), h).
func MGF1XOR(dst []byte, seed []byte, h Hash) {
	mask := MGF1(seed, len(dst), h)
	for i := range dst {
		dst[i] ^= mask[i]
	}
}
