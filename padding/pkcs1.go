package padding

import (
	"fmt"

	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"
)

// minPaddingBytes is the minimum width of PS demanded by PKCS#1 v1.5:
// 0x00 || type || PS(>=8 bytes) || 0x00 || M.
const minPaddingBytes = 8

// PKCS1v15 implements RSAES-PKCS1-v1_5 (type 2) and RSASSA-PKCS1-v1_5
// (type 1) encoding.
type PKCS1v15 struct{}

func (PKCS1v15) Pad(src []byte, p, end, blockSize int, typ Type, rng randsrc.Source) ([]byte, int, error) {
	if typ != TypeEncryption && typ != TypeSignature {
		return nil, 0, fmt.Errorf("padding: unrecognized PKCS#1 type %d", typ)
	}
	maxMsg := blockSize - minPaddingBytes - 3
	if maxMsg < 0 {
		return nil, 0, fmt.Errorf("padding: block size %d too small for PKCS#1 v1.5", blockSize)
	}

	n := end - p
	if n > maxMsg {
		n = maxMsg
	}
	msg := src[p : p+n]
	next := p + n

	out := make([]byte, blockSize)
	out[0] = 0x00
	out[1] = byte(typ)

	psLen := blockSize - 3 - n
	ps := out[2 : 2+psLen]
	switch typ {
	case TypeSignature:
		for i := range ps {
			ps[i] = 0xFF
		}
	case TypeEncryption:
		b, err := rng.RandomBytes(psLen)
		if err != nil {
			return nil, 0, err
		}
		for i, v := range b {
			if v == 0x00 {
				v = 0x01
			}
			ps[i] = v
		}
	}
	out[2+psLen] = 0x00
	copy(out[3+psLen:], msg)

	return out, next, nil
}

func (PKCS1v15) Unpad(x *bigint.Int, blockSize int, typ Type, _ []byte) ([]byte, error) {
	em := x.ToArray()

	i := 0
	for i < len(em) && em[i] == 0x00 {
		i++
	}
	rest := em[i:]

	if len(rest) != blockSize-1 {
		return nil, ErrDecode
	}
	if rest[0] != byte(typ) {
		return nil, ErrDecode
	}

	j := 1
	for j < len(rest) && rest[j] != 0x00 {
		j++
	}
	if j >= len(rest) {
		return nil, ErrDecode
	}
	if j-1 < minPaddingBytes {
		return nil, ErrDecode
	}

	return rest[j+1:], nil
}
