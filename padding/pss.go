package padding

import (
	"crypto/subtle"
	"fmt"

	"github.com/vaultkey/cryptocore/hash"
	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"
)

// PSS implements RSASSA-PSS. Unlike PKCS1v15 and OAEP, it consumes its
// entire message window in one call — a PSS block always carries the hash
// of the whole message plus a salt, never a raw chunk of it — so Pad
// always returns next == end. SaltLen defaults to the hash size when zero.
//
// M' is built per RFC 8017 (eight leading zero bytes).
//
// ModBits, when set by the RSA layer to the modulus's bit length, clears
// the leftmost 8*blockSize-(ModBits-1) bits of the encoded message so EM,
// read as a big-endian integer, is guaranteed < N — the same masking
// monnand-rsa/pss.go applies via emBits. Left zero, Pad uses the full
// byte width, which is only safe for standalone testing against a
// blockSize that isn't backing a real modulus.
type PSS struct {
	Hash    hash.Hash
	SaltLen int
	ModBits int
}

func (p PSS) saltLen() int {
	if p.SaltLen > 0 {
		return p.SaltLen
	}
	return p.Hash.Size()
}

// topMask returns a mask for the leftmost octet of EM that zeroes any bits
// beyond emBits = ModBits-1.
func (p PSS) topMask(blockSize int) byte {
	if p.ModBits == 0 {
		return 0xFF
	}
	emBits := p.ModBits - 1
	clear := 8*blockSize - emBits
	if clear <= 0 {
		return 0xFF
	}
	if clear >= 8 {
		return 0x00
	}
	return 0xFF >> uint(clear)
}

func (p PSS) Pad(src []byte, pos, end, blockSize int, _ Type, rng randsrc.Source) ([]byte, int, error) {
	hLen := p.Hash.Size()
	sLen := p.saltLen()
	if blockSize < sLen+hLen+2 {
		return nil, 0, fmt.Errorf("padding: block size %d too small for PSS with %d-byte hash and %d-byte salt", blockSize, hLen, sLen)
	}

	message := src[pos:end]
	mHash := p.Hash.Hash(message)

	salt, err := rng.RandomBytes(sLen)
	if err != nil {
		return nil, 0, err
	}

	hVal := p.Hash.Hash(emsaMPrime(mHash, salt))

	psLen := blockSize - sLen - hLen - 2
	db := make([]byte, blockSize-hLen-1)
	db[psLen] = 0x01
	copy(db[psLen+1:], salt)

	maskedDB := append([]byte{}, db...)
	hash.MGF1XOR(maskedDB, hVal, p.Hash)

	em := make([]byte, blockSize)
	copy(em, maskedDB)
	copy(em[len(maskedDB):], hVal)
	em[blockSize-1] = 0xBC
	em[0] &= p.topMask(blockSize)

	return em, end, nil
}

func (p PSS) Unpad(x *bigint.Int, blockSize int, _ Type, original []byte) ([]byte, error) {
	hLen := p.Hash.Size()
	sLen := p.saltLen()
	if blockSize < sLen+hLen+2 {
		return nil, ErrDecode
	}

	em := leftPad(x.ToArray(), blockSize)
	if em[blockSize-1] != 0xBC {
		return nil, ErrDecode
	}
	mask := p.topMask(blockSize)
	if em[0]&^mask != 0 {
		return nil, ErrDecode
	}

	dbLen := blockSize - hLen - 1
	maskedDB := em[:dbLen]
	hVal := em[dbLen : blockSize-1]

	db := append([]byte{}, maskedDB...)
	hash.MGF1XOR(db, hVal, p.Hash)
	db[0] &= mask

	psLen := blockSize - sLen - hLen - 2
	for i := 0; i < psLen; i++ {
		if db[i] != 0x00 {
			return nil, ErrDecode
		}
	}
	if db[psLen] != 0x01 {
		return nil, ErrDecode
	}
	salt := db[psLen+1:]

	mHash := p.Hash.Hash(original)
	hPrime := p.Hash.Hash(emsaMPrime(mHash, salt))

	if subtle.ConstantTimeCompare(hPrime, hVal) != 1 {
		return nil, ErrDecode
	}

	return original, nil
}

// emsaMPrime builds M' = 0x00 * 8 || mHash || salt per RFC 8017 section
// 9.1.1.
func emsaMPrime(mHash, salt []byte) []byte {
	mPrime := make([]byte, 0, 8+len(mHash)+len(salt))
	mPrime = append(mPrime, make([]byte, 8)...)
	mPrime = append(mPrime, mHash...)
	mPrime = append(mPrime, salt...)
	return mPrime
}
