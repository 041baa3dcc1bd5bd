package main

import (
	"fmt"

	"github.com/vaultkey/cryptocore/hash"
	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"
	"github.com/vaultkey/cryptocore/keysplitting"
	"github.com/vaultkey/cryptocore/rsakey"
)

func runAdditiveBrokered() {
	fmt.Println("Running brokered additive script -- a split/sign workflow with a central broker to combine")
	msg := []byte("test message")
	h := hash.SHA512()

	// This operation is performed on a trusted server. It securely
	// distributes the shards, then destroys them.
	key, err := rsakey.Generate(2048, "10001", randsrc.Default)
	if err != nil {
		panic(err)
	}
	shards, err := keysplitting.SplitD(key, 3, keysplitting.Additive, randsrc.Default)
	if err != nil {
		panic(err)
	}
	shard0, shard1, shard2 := shards[0], shards[1], shards[2]
	shards = nil

	// In this model all parties sign in parallel, then send their partial
	// signatures to a central broker.
	sig1, err := keysplitting.SignFirst(shard0, h, msg, randsrc.Default)
	if err != nil {
		panic(err)
	}
	sig2, err := keysplitting.SignFirst(shard1, h, msg, randsrc.Default)
	if err != nil {
		panic(err)
	}
	sig3, err := keysplitting.SignFirst(shard2, h, msg, randsrc.Default)
	if err != nil {
		panic(err)
	}

	// The broker rolls up all partial signatures by converting each to an
	// integer, multiplying, and reducing mod N -- it never needs a shard
	// of its own to do this.
	blockSize := key.BlockSize()
	sig1Int := bigint.FromBytes(sig1)
	sig2Int := bigint.FromBytes(sig2)
	sig3Int := bigint.FromBytes(sig3)
	combined := sig1Int.Mul(sig2Int).Mod(key.N).Mul(sig3Int).Mod(key.N)

	final := make([]byte, blockSize)
	raw := combined.ToArray()
	copy(final[blockSize-len(raw):], raw)

	if _, err := key.Verify(final, nil, nil); err != nil {
		panic(err)
	}

	// none of the 3 partial signatures verify on their own
	for i, s := range [][]byte{sig1, sig2, sig3} {
		if _, err := key.Verify(s, nil, nil); err == nil {
			panic(fmt.Sprintf("partial signature %d should not have verified", i))
		}
	}

	fmt.Println("Success!")
}
