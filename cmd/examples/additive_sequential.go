package main

import (
	"fmt"

	"github.com/vaultkey/cryptocore/hash"
	"github.com/vaultkey/cryptocore/internal/randsrc"
	"github.com/vaultkey/cryptocore/keysplitting"
	"github.com/vaultkey/cryptocore/rsakey"
)

func runAdditiveSequential() {
	fmt.Println("Running sequential additive script -- a basic split/sign workflow")
	msg := []byte("test message")
	h := hash.SHA512()

	// This operation is performed on a trusted server. It securely
	// distributes the shards, then destroys them. Optionally, the server
	// may be one of the signing parties and keep a shard for itself.
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

	// Although the overall order doesn't matter, someone has to make the
	// first signature. The first signing party signs the message and
	// sends the partially-signed message to the next party in the clear.
	sig1, err := keysplitting.SignFirst(shard0, h, msg, randsrc.Default)
	if err != nil {
		panic(err)
	}

	// Upon receiving sig1 and the message, the second party adds their
	// signature and sends it to the third party.
	sig2, err := keysplitting.SignNext(shard1, h, msg, sig1, randsrc.Default)
	if err != nil {
		panic(err)
	}

	// Upon receiving sig2 and the message, the third party adds their
	// signature. Only this signature will verify.
	sig3, err := keysplitting.SignNext(shard2, h, msg, sig2, randsrc.Default)
	if err != nil {
		panic(err)
	}

	if _, err := key.Verify(sig3, nil, nil); err != nil {
		panic(err)
	}

	// neither of the partial signatures will verify
	if _, err := key.Verify(sig1, nil, nil); err == nil {
		panic("sig1 should not have verified")
	}
	if _, err := key.Verify(sig2, nil, nil); err == nil {
		panic("sig2 should not have verified")
	}

	fmt.Println("Success!")
}
