package padding

import (
	"testing"

	"github.com/vaultkey/cryptocore/hash"
	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPadding(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Padding Suite")
}

const blockSize = 64 // 512-bit modulus

func roundtrip(scheme Scheme, msg []byte, typ Type) ([]byte, error) {
	block, next, err := scheme.Pad(msg, 0, len(msg), blockSize, typ, randsrc.Default)
	if err != nil {
		return nil, err
	}
	Expect(next).To(Equal(len(msg)))
	Expect(len(block)).To(Equal(blockSize))
	x := bigint.FromBytes(block)
	return scheme.Unpad(x, blockSize, typ, msg)
}

var _ = Describe("PKCS1v15", func() {
	scheme := PKCS1v15{}

	It("round-trips an encryption-type message", func() {
		got, err := roundtrip(scheme, []byte("hi"), TypeEncryption)
		Expect(err).To(BeNil())
		Expect(got).To(Equal([]byte("hi")))
	})

	It("round-trips a signature-type message", func() {
		got, err := roundtrip(scheme, []byte("sign me"), TypeSignature)
		Expect(err).To(BeNil())
		Expect(got).To(Equal([]byte("sign me")))
	})

	It("accepts a zero-length message", func() {
		got, err := roundtrip(scheme, []byte{}, TypeEncryption)
		Expect(err).To(BeNil())
		Expect(got).To(Equal([]byte{}))
	})

	It("succeeds at exactly k-11 bytes and carries no more than that in one block", func() {
		maxLen := blockSize - 11
		_, err := roundtrip(scheme, make([]byte, maxLen), TypeEncryption)
		Expect(err).To(BeNil())

		// one byte over maxLen can't fit in a single block: Pad silently
		// truncates to maxLen, so assert the truncation boundary directly.
		block, next, err := scheme.Pad(make([]byte, maxLen+1), 0, maxLen+1, blockSize, TypeEncryption, randsrc.Default)
		Expect(err).To(BeNil())
		Expect(next).To(Equal(maxLen))
		Expect(len(block)).To(Equal(blockSize))
	})

	It("rejects a malformed block with no separator", func() {
		bad := make([]byte, blockSize)
		bad[0] = 0x00
		bad[1] = 0x02
		for i := 2; i < blockSize; i++ {
			bad[i] = 0xAB // never zero: no 0x00 separator exists
		}
		_, err := scheme.Unpad(bigint.FromBytes(bad), blockSize, TypeEncryption, nil)
		Expect(err).To(MatchError(ErrDecode))
	})

	It("rejects a block whose type byte doesn't match", func() {
		block, _, err := scheme.Pad([]byte("hi"), 0, 2, blockSize, TypeSignature, randsrc.Default)
		Expect(err).To(BeNil())
		_, err = scheme.Unpad(bigint.FromBytes(block), blockSize, TypeEncryption, nil)
		Expect(err).To(MatchError(ErrDecode))
	})
})

var _ = Describe("OAEP", func() {
	scheme := OAEP{Hash: hash.SHA1()}
	hLen := hash.SHA1().Size()

	It("round-trips a message and produces a full-width block", func() {
		block, next, err := scheme.Pad([]byte("hello"), 0, 5, blockSize, TypeEncryption, randsrc.Default)
		Expect(err).To(BeNil())
		Expect(next).To(Equal(5))
		Expect(len(block)).To(Equal(blockSize))

		got, err := scheme.Unpad(bigint.FromBytes(block), blockSize, TypeEncryption, nil)
		Expect(err).To(BeNil())
		Expect(got).To(Equal([]byte("hello")))
	})

	It("accepts a zero-length message", func() {
		got, err := roundtrip(scheme, []byte{}, TypeEncryption)
		Expect(err).To(BeNil())
		Expect(got).To(Equal([]byte{}))
	})

	It("succeeds at exactly k-2hLen-2 bytes", func() {
		maxLen := blockSize - 2*hLen - 2
		got, err := roundtrip(scheme, make([]byte, maxLen), TypeEncryption)
		Expect(err).To(BeNil())
		Expect(len(got)).To(Equal(maxLen))
	})

	It("detects any single bit flip in the ciphertext (S6)", func() {
		block, _, err := scheme.Pad([]byte("hello"), 0, 5, blockSize, TypeEncryption, randsrc.Default)
		Expect(err).To(BeNil())

		tampered := append([]byte{}, block...)
		tampered[len(tampered)-1] ^= 0x01

		_, err = scheme.Unpad(bigint.FromBytes(tampered), blockSize, TypeEncryption, nil)
		Expect(err).To(MatchError(ErrDecode))
	})
})

var _ = Describe("PSS", func() {
	scheme := PSS{Hash: hash.SHA1()}

	It("verifies its own signature block", func() {
		msg := []byte("a message to sign")
		block, next, err := scheme.Pad(msg, 0, len(msg), blockSize, TypeSignature, randsrc.Default)
		Expect(err).To(BeNil())
		Expect(next).To(Equal(len(msg)))

		got, err := scheme.Unpad(bigint.FromBytes(block), blockSize, TypeSignature, msg)
		Expect(err).To(BeNil())
		Expect(got).To(Equal(msg))
	})

	It("accepts a zero-length message", func() {
		block, _, err := scheme.Pad([]byte{}, 0, 0, blockSize, TypeSignature, randsrc.Default)
		Expect(err).To(BeNil())
		_, err = scheme.Unpad(bigint.FromBytes(block), blockSize, TypeSignature, []byte{})
		Expect(err).To(BeNil())
	})

	It("rejects verification against a different message", func() {
		msg := []byte("original")
		block, _, err := scheme.Pad(msg, 0, len(msg), blockSize, TypeSignature, randsrc.Default)
		Expect(err).To(BeNil())

		_, err = scheme.Unpad(bigint.FromBytes(block), blockSize, TypeSignature, []byte("tampered"))
		Expect(err).To(MatchError(ErrDecode))
	})

	It("rejects a trailer byte other than 0xBC", func() {
		msg := []byte("x")
		block, _, err := scheme.Pad(msg, 0, len(msg), blockSize, TypeSignature, randsrc.Default)
		Expect(err).To(BeNil())
		block[len(block)-1] = 0x00

		_, err = scheme.Unpad(bigint.FromBytes(block), blockSize, TypeSignature, msg)
		Expect(err).To(MatchError(ErrDecode))
	})
})
