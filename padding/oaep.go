package padding

import (
	"crypto/subtle"
	"fmt"

	"github.com/vaultkey/cryptocore/hash"
	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"
)

// OAEP implements RSAES-OAEP with an empty label.
type OAEP struct {
	Hash hash.Hash
}

func (o OAEP) Pad(src []byte, p, end, blockSize int, _ Type, rng randsrc.Source) ([]byte, int, error) {
	hLen := o.Hash.Size()
	maxMsg := blockSize - 2*hLen - 2
	if maxMsg < 0 {
		return nil, 0, fmt.Errorf("padding: block size %d too small for OAEP with %d-byte hash", blockSize, hLen)
	}

	n := end - p
	if n > maxMsg {
		n = maxMsg
	}
	msg := src[p : p+n]
	next := p + n

	lHash := o.Hash.Hash(nil)
	dbLen := blockSize - hLen - 1
	db := make([]byte, dbLen)
	copy(db[:hLen], lHash)
	db[dbLen-n-1] = 0x01
	copy(db[dbLen-n:], msg)

	seed, err := rng.RandomBytes(hLen)
	if err != nil {
		return nil, 0, err
	}

	maskedDB := append([]byte{}, db...)
	hash.MGF1XOR(maskedDB, seed, o.Hash)

	maskedSeed := append([]byte{}, seed...)
	hash.MGF1XOR(maskedSeed, maskedDB, o.Hash)

	em := make([]byte, blockSize)
	copy(em[1:1+hLen], maskedSeed)
	copy(em[1+hLen:], maskedDB)

	return em, next, nil
}

func (o OAEP) Unpad(x *bigint.Int, blockSize int, _ Type, _ []byte) ([]byte, error) {
	hLen := o.Hash.Size()
	if blockSize < 2*hLen+2 {
		return nil, ErrDecode
	}

	em := leftPad(x.ToArray(), blockSize)
	if em[0] != 0x00 {
		return nil, ErrDecode
	}

	maskedSeed := append([]byte{}, em[1:1+hLen]...)
	maskedDB := append([]byte{}, em[1+hLen:]...)

	seed := append([]byte{}, maskedSeed...)
	hash.MGF1XOR(seed, maskedDB, o.Hash)

	db := append([]byte{}, maskedDB...)
	hash.MGF1XOR(db, seed, o.Hash)

	lHash := o.Hash.Hash(nil)
	if subtle.ConstantTimeCompare(db[:hLen], lHash) != 1 {
		return nil, ErrDecode
	}

	rest := db[hLen:]
	i := 0
	for i < len(rest) && rest[i] == 0x00 {
		i++
	}
	if i >= len(rest) || rest[i] != 0x01 {
		return nil, ErrDecode
	}

	return rest[i+1:], nil
}

// leftPad returns b left-padded with zero bytes to exactly width bytes.
// b is never longer than width for a value that is known to be < n.
func leftPad(b []byte, width int) []byte {
	if len(b) == width {
		return b
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out
}
