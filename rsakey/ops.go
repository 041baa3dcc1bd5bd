package rsakey

import (
	"fmt"

	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"
	"github.com/vaultkey/cryptocore/padding"
)

// defaultScheme is used whenever a caller passes a nil padding.Scheme.
var defaultScheme padding.Scheme = padding.PKCS1v15{}

func schemeOrDefault(s padding.Scheme) padding.Scheme {
	if s == nil {
		return defaultScheme
	}
	return s
}

// bindModulus gives a PSS scheme this key's modulus bit length so its
// encoded message is guaranteed to be < N. Every other scheme ignores the
// key entirely.
func (k *Key) bindModulus(s padding.Scheme) padding.Scheme {
	if pss, ok := s.(padding.PSS); ok {
		pss.ModBits = k.N.BitLen()
		return pss
	}
	return s
}

// Encrypt is the public-key operation with type=2 (encryption) padding,
// defaulting to PKCS#1 v1.5.
func (k *Key) Encrypt(src []byte, scheme padding.Scheme, rng randsrc.Source) ([]byte, error) {
	if !k.CanEncrypt() {
		return nil, fmt.Errorf("rsakey: key cannot encrypt: missing n or e")
	}
	return k.processBlocks(src, k.bindModulus(schemeOrDefault(scheme)), padding.TypeEncryption, rng, k.doPublic, nil)
}

// Decrypt is the private-key operation with type=2 unpadding.
func (k *Key) Decrypt(src []byte, scheme padding.Scheme) ([]byte, error) {
	if !k.CanDecrypt() {
		return nil, fmt.Errorf("rsakey: key cannot decrypt: missing private material")
	}
	return k.unprocessBlocks(src, k.bindModulus(schemeOrDefault(scheme)), padding.TypeEncryption, k.doPrivate, nil)
}

// Sign is the private-key operation with type=1 padding.
func (k *Key) Sign(src []byte, scheme padding.Scheme, rng randsrc.Source) ([]byte, error) {
	if !k.CanDecrypt() {
		return nil, fmt.Errorf("rsakey: key cannot sign: missing private material")
	}
	return k.processBlocks(src, k.bindModulus(schemeOrDefault(scheme)), padding.TypeSignature, rng, k.doPrivate, nil)
}

// Verify is the public-key operation with type=1 unpadding. original is
// forwarded to the scheme for PSS, which needs the source message to
// recompute its hash; PKCS1v15 ignores it.
func (k *Key) Verify(src []byte, scheme padding.Scheme, original []byte) ([]byte, error) {
	if !k.CanEncrypt() {
		return nil, fmt.Errorf("rsakey: key cannot verify: missing n or e")
	}
	return k.unprocessBlocks(src, k.bindModulus(schemeOrDefault(scheme)), padding.TypeSignature, k.doPublic, original)
}

// processBlocks drives pad -> exponentiate -> zero-left-pad-to-k across
// successive blocks of src. It always runs at least once, so a
// zero-length message still produces exactly one block.
func (k *Key) processBlocks(
	src []byte,
	scheme padding.Scheme,
	typ padding.Type,
	rng randsrc.Source,
	exponentiate func(*bigint.Int) *bigint.Int,
	_ []byte,
) ([]byte, error) {
	blockSize := k.BlockSize()
	var out []byte
	p, end := 0, len(src)

	for first := true; first || p < end; first = false {
		block, next, err := scheme.Pad(src, p, end, blockSize, typ, rng)
		if err != nil {
			return nil, err
		}
		x := bigint.FromBytes(block)
		y := exponentiate(x)
		out = append(out, leftPadTo(y.ToArray(), blockSize)...)
		p = next
	}
	return out, nil
}

// unprocessBlocks reverses processBlocks: split src into k-byte blocks,
// exponentiate each, and unpad. Decode errors propagate from the first
// failing block.
func (k *Key) unprocessBlocks(
	src []byte,
	scheme padding.Scheme,
	typ padding.Type,
	exponentiate func(*bigint.Int) *bigint.Int,
	original []byte,
) ([]byte, error) {
	blockSize := k.BlockSize()
	if len(src)%blockSize != 0 {
		return nil, fmt.Errorf("rsakey: ciphertext length %d is not a multiple of block size %d", len(src), blockSize)
	}

	var out []byte
	for off := 0; off < len(src); off += blockSize {
		x := bigint.FromBytes(src[off : off+blockSize])
		y := exponentiate(x)
		msg, err := scheme.Unpad(y, blockSize, typ, original)
		if err != nil {
			return nil, err
		}
		out = append(out, msg...)
	}
	return out, nil
}

// doPublic computes x^e mod n.
func (k *Key) doPublic(x *bigint.Int) *bigint.Int {
	return x.ModPowInt(uint64(k.E), k.N)
}

// doPrivate computes the private RSA operation, preferring the CRT
// shortcut when p and q are present. The xp<xq correction folds Cmp's
// {-1,0,+1} result into a 0/1 mask through integer division rather than
// an explicit if, and applies it through multiplication rather than a
// conditional add. This avoids a branch in this function's own control
// flow, but Cmp and the arithmetic around it still run through math/big,
// which offers no constant-time guarantee underneath — see DESIGN.md's
// rsakey entry for the scope of that caveat.
func (k *Key) doPrivate(x *bigint.Int) *bigint.Int {
	if !k.hasCRT() {
		return x.ModPow(k.D, k.N)
	}

	xp := x.Mod(k.P).ModPow(k.Dp, k.P)
	xq := x.Mod(k.Q).ModPow(k.Dq, k.Q)

	cmp := int64(xp.Cmp(xq))
	mask := uint64((1 - cmp) / 2) // cmp==-1 -> 1, cmp==0 or +1 -> 0
	correction := k.P.Mul(bigint.FromUint64(mask))
	xp = xp.Add(correction)

	h := xp.Sub(xq).Mul(k.Coeff).Mod(k.P)
	return h.Mul(k.Q).Add(xq)
}

func leftPadTo(b []byte, width int) []byte {
	if len(b) == width {
		return b
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out
}
