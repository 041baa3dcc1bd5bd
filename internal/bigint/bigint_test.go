package bigint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBigint(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Bigint Suite")
}

var _ = Describe("Int", func() {
	Context("construction", func() {
		It("parses hex with and without a 0x prefix identically", func() {
			a, err := FromHex("ff")
			Expect(err).To(BeNil())
			b, err := FromHex("0xFF")
			Expect(err).To(BeNil())
			Expect(a.Cmp(b)).To(Equal(0))
		})

		It("round-trips through ToArray/FromBytes", func() {
			a, _ := FromHex("deadbeef")
			Expect(FromBytes(a.ToArray()).Cmp(a)).To(Equal(0))
		})

		It("serializes zero as a single zero byte", func() {
			Expect(cmp.Equal(Zero.ToArray(), []byte{0})).To(BeTrue())
		})

		It("rejects malformed hex", func() {
			_, err := FromHex("not hex")
			Expect(err).NotTo(BeNil())
		})
	})

	Context("arithmetic", func() {
		It("adds and subtracts inverses", func() {
			a := FromUint64(100)
			b := FromUint64(42)
			Expect(a.Add(b).Sub(b).Cmp(a)).To(Equal(0))
		})

		It("panics when subtraction would go negative", func() {
			a := FromUint64(1)
			b := FromUint64(2)
			Expect(func() { a.Sub(b) }).To(Panic())
		})

		It("computes gcd", func() {
			a := FromUint64(54)
			b := FromUint64(24)
			Expect(a.GCD(b).Cmp(FromUint64(6))).To(Equal(0))
		})

		It("computes a modular inverse satisfying a*x ≡ 1 (mod m)", func() {
			a := FromUint64(3)
			m := FromUint64(11)
			x := a.ModInverse(m)
			got := a.Mul(x).Mod(m)
			Expect(got.Cmp(One)).To(Equal(0))
		})

		It("panics on modInverse of non-coprime operands", func() {
			a := FromUint64(6)
			m := FromUint64(9)
			Expect(func() { a.ModInverse(m) }).To(Panic())
		})

		It("computes modular exponentiation", func() {
			base := FromUint64(4)
			exp := FromUint64(13)
			m := FromUint64(497)
			Expect(base.ModPow(exp, m).Cmp(base.ModPowInt(13, m))).To(Equal(0))
			Expect(base.ModPowInt(13, m).Cmp(FromUint64(445))).To(Equal(0))
		})

		It("panics on division by zero", func() {
			a := FromUint64(10)
			Expect(func() { a.DivMod(Zero) }).To(Panic())
		})
	})

	Context("primality", func() {
		It("identifies small primes", func() {
			Expect(FromUint64(97).IsProbablePrime(20)).To(BeTrue())
			Expect(FromUint64(100).IsProbablePrime(20)).To(BeFalse())
		})

		It("primify always returns a value with the requested bit length", func() {
			seed := FromUint64(0)
			p := seed.Primify(16, 10)
			Expect(p.BitLen()).To(Equal(16))
			Expect(p.IsProbablePrime(10)).To(BeTrue())
			Expect(p.Bit(0)).To(Equal(uint(1)))
		})
	})

	Context("comparisons", func() {
		It("orders values correctly", func() {
			Expect(FromUint64(1).Cmp(FromUint64(2))).To(Equal(-1))
			Expect(FromUint64(2).Cmp(FromUint64(2))).To(Equal(0))
			Expect(FromUint64(3).Cmp(FromUint64(2))).To(Equal(1))
		})

		It("reports zero sign correctly", func() {
			Expect(Zero.Sign()).To(Equal(0))
			Expect(One.Sign()).To(Equal(1))
			Expect(Zero.IsZero()).To(BeTrue())
		})
	})
})
