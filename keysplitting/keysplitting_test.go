package keysplitting

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vaultkey/cryptocore/hash"
	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"
	"github.com/vaultkey/cryptocore/rsakey"
)

func TestKeysplitting(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Keysplitting Suite")
}

func genKey() *rsakey.Key {
	k, err := rsakey.Generate(512, "10001", randsrc.Default)
	Expect(err).To(BeNil())
	return k
}

var _ = Describe("SplitD", func() {
	It("rejects a split into fewer than 2 shards", func() {
		_, err := SplitD(genKey(), 1, Additive, randsrc.Default)
		Expect(err).NotTo(BeNil())
	})

	DescribeTable("shards recombine to D mod phi(N)",
		func(splitBy SplitBy, k int) {
			priv := genKey()
			phi := priv.P.Sub(bigint.One).Mul(priv.Q.Sub(bigint.One))

			shards, err := SplitD(priv, k, splitBy, randsrc.Default)
			Expect(err).To(BeNil())
			Expect(shards).To(HaveLen(k))

			var combined *bigint.Int
			switch splitBy {
			case Additive:
				combined = bigint.Zero
				for _, s := range shards {
					combined = combined.Add(s.D)
				}
				combined = combined.Mod(phi)
			case Multiplicative:
				combined = bigint.One
				for _, s := range shards {
					combined = combined.Mul(s.D).Mod(phi)
				}
			}

			Expect(congruentModN(combined, priv.D, phi)).To(BeTrue())
		},
		Entry("additive, 2 shards", Additive, 2),
		Entry("additive, 4 shards", Additive, 4),
		Entry("multiplicative, 2 shards", Multiplicative, 2),
		Entry("multiplicative, 3 shards", Multiplicative, 3),
	)
})

var _ = Describe("SignFirst/SignNext", func() {
	It("produces a valid signature via the multiplicative scheme", func() {
		priv := genKey()
		shards, err := SplitD(priv, 2, Multiplicative, randsrc.Default)
		Expect(err).To(BeNil())

		message := []byte("multiplicative threshold signature")
		h := hash.SHA256()

		partial, err := SignFirst(shards[0], h, message, randsrc.Default)
		Expect(err).To(BeNil())
		full, err := SignNext(shards[1], h, message, partial, randsrc.Default)
		Expect(err).To(BeNil())

		out, err := priv.Verify(full, nil, nil)
		Expect(err).To(BeNil())
		hashed := h.Hash(message)
		t, err := digestInfo(h, hashed)
		Expect(err).To(BeNil())
		Expect(out).To(Equal(t))
	})

	It("produces a valid signature via the additive scheme, combined out of order", func() {
		priv := genKey()
		shards, err := SplitD(priv, 3, Additive, randsrc.Default)
		Expect(err).To(BeNil())

		message := []byte("additive threshold signature")
		h := hash.SHA256()

		partial1, err := SignFirst(shards[2], h, message, randsrc.Default)
		Expect(err).To(BeNil())
		partial2, err := SignNext(shards[0], h, message, partial1, randsrc.Default)
		Expect(err).To(BeNil())
		full, err := SignNext(shards[1], h, message, partial2, randsrc.Default)
		Expect(err).To(BeNil())

		_, err = priv.Verify(full, nil, nil)
		Expect(err).To(BeNil())
	})
})

var _ = Describe("shard PEM round-trip", func() {
	It("encodes and decodes a shard losslessly", func() {
		priv := genKey()
		shards, err := SplitD(priv, 2, Additive, randsrc.Default)
		Expect(err).To(BeNil())

		encoded, err := shards[0].EncodePEM()
		Expect(err).To(BeNil())

		decoded, err := DecodeShardPEM(encoded)
		Expect(err).To(BeNil())
		Expect(decoded.D.Cmp(shards[0].D)).To(Equal(0))
		Expect(decoded.Public.N.Cmp(shards[0].Public.N)).To(Equal(0))
		Expect(decoded.Public.E).To(Equal(shards[0].Public.E))
		Expect(decoded.SplitBy).To(Equal(shards[0].SplitBy))
	})

	It("rejects a PEM block of the wrong type", func() {
		_, err := DecodeShardPEM("-----BEGIN NOT A SHARD-----\nAA==\n-----END NOT A SHARD-----\n")
		Expect(err).NotTo(BeNil())
	})
})
