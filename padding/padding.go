package padding

import (
	"errors"

	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"
)

// Type selects encryption (2) vs. signature (1) framing. Only PKCS1v15
// dispatches on it; OAEP ignores it (always encryption) and PSS ignores it
// (always signature).
type Type int

const (
	TypeSignature  Type = 1
	TypeEncryption Type = 2
)

// ErrDecode is the single typed error the padding layer raises on any
// malformed PKCS#1/OAEP/PSS encoding. Callers must treat it as "invalid
// ciphertext or signature", never attempt to recover a partial plaintext.
var ErrDecode = errors.New("padding: decode error")

// Scheme is the stable ABI every padding implementation satisfies. Pad
// reads the message window src[p:end], consumes as many bytes of it
// starting at p as one block of the scheme can carry (for PSS, the whole
// window), and returns the padded block alongside the new cursor position. Unpad reverses the transform given the integer recovered from
// an RSA private or public operation; original is non-nil only when a PSS
// verification needs the original message to recompute its hash.
type Scheme interface {
	Pad(src []byte, p, end, blockSize int, typ Type, rng randsrc.Source) (out []byte, next int, err error)
	Unpad(x *bigint.Int, blockSize int, typ Type, original []byte) ([]byte, error)
}
