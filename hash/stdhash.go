package hash

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	stdhash "hash"
)

// StdHash adapts one of the standard library's hash.Hash constructors to
// the Hash interface above.
type StdHash struct {
	newFn     func() stdhash.Hash
	blockSize int
	size      int
}

func (h StdHash) BlockSize() int { return h.blockSize }
func (h StdHash) Size() int      { return h.size }

func (h StdHash) Hash(data []byte) []byte {
	d := h.newFn()
	d.Write(data)
	return d.Sum(nil)
}

// SHA1 adapts crypto/sha1, still required for interop with OAEP/PSS
// callers that haven't migrated off it.
func SHA1() Hash {
	return StdHash{newFn: func() stdhash.Hash { return sha1.New() }, blockSize: sha1.BlockSize, size: sha1.Size}
}

// SHA256 adapts crypto/sha256.
func SHA256() Hash {
	return StdHash{newFn: func() stdhash.Hash { return sha256.New() }, blockSize: sha256.BlockSize, size: sha256.Size}
}

// SHA512 adapts crypto/sha512.
func SHA512() Hash {
	return StdHash{newFn: func() stdhash.Hash { return sha512.New() }, blockSize: sha512.BlockSize, size: sha512.Size}
}
