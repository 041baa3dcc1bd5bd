package keysplitting

import (
	"bytes"
	"encoding/asn1"
	"encoding/pem"
	"fmt"

	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/rsakey"
)

const pemType = "RSA SPLIT PRIVATE KEY"

// derPublicKey is a DER-friendly stand-in for rsakey.Key's public fields;
// asn1.Marshal can't walk a *bigint.Int directly.
type derPublicKey struct {
	N []byte
	E int
}

type derShard struct {
	PublicKey derPublicKey
	D         []byte
	SplitBy   int
}

// EncodePEM serializes a shard to ASN.1 DER wrapped in a PEM block, per
// bastionzero/keysplitting's PrivateKeyShard.EncodePEM.
func (s *Shard) EncodePEM() (string, error) {
	der, err := asn1.Marshal(derShard{
		PublicKey: derPublicKey{N: s.Public.N.ToArray(), E: int(s.Public.E)},
		D:         s.D.ToArray(),
		SplitBy:   int(s.SplitBy),
	})
	if err != nil {
		return "", fmt.Errorf("keysplitting: failed to DER-encode shard: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := pem.Encode(buf, &pem.Block{Type: pemType, Bytes: der}); err != nil {
		return "", fmt.Errorf("keysplitting: failed to PEM-encode shard: %w", err)
	}
	return buf.String(), nil
}

// DecodeShardPEM reverses EncodePEM.
func DecodeShardPEM(encoded string) (*Shard, error) {
	block, rest := pem.Decode([]byte(encoded))
	if block == nil || block.Type != pemType {
		return nil, fmt.Errorf("keysplitting: failed to decode PEM block containing a key shard")
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("keysplitting: trailing data after PEM block")
	}

	var ds derShard
	if _, err := asn1.Unmarshal(block.Bytes, &ds); err != nil {
		return nil, fmt.Errorf("keysplitting: failed to unmarshal DER-encoded shard: %w", err)
	}

	return &Shard{
		Public: &rsakey.Key{
			N: bigint.FromBytes(ds.PublicKey.N),
			E: uint32(ds.PublicKey.E),
		},
		D:       bigint.FromBytes(ds.D),
		SplitBy: SplitBy(ds.SplitBy),
	}, nil
}
