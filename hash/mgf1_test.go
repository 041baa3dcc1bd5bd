package hash

import (
	"encoding/binary"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestHash(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hash Suite")
}

var _ = Describe("MGF1", func() {
	h := SHA256()

	It("produces output of exactly the requested length", func() {
		for _, n := range []int{0, 1, h.Size() - 1, h.Size(), h.Size() + 1, 3 * h.Size()} {
			out := MGF1([]byte("seed"), n, h)
			Expect(len(out)).To(Equal(n))
		}
	})

	It("starts with H(seed || 0x00000000)", func() {
		seed := []byte("the seed")
		out := MGF1(seed, h.Size(), h)

		var counter [4]byte
		binary.BigEndian.PutUint32(counter[:], 0)
		want := h.Hash(append(append([]byte{}, seed...), counter[:]...))

		Expect(out).To(Equal(want))
	})

	It("XORs in place and is self-inverting", func() {
		data := []byte("arbitrary plaintext block")
		seed := []byte("mgf1 seed")

		masked := append([]byte{}, data...)
		MGF1XOR(masked, seed, h)
		Expect(masked).NotTo(Equal(data))

		MGF1XOR(masked, seed, h)
		Expect(masked).To(Equal(data))
	})
})

var _ = Describe("StdHash adapters", func() {
	It("reports the documented sizes", func() {
		Expect(SHA1().Size()).To(Equal(20))
		Expect(SHA256().Size()).To(Equal(32))
		Expect(SHA512().Size()).To(Equal(64))
	})
})
