package main

import (
	"fmt"

	"github.com/vaultkey/cryptocore/hash"
	"github.com/vaultkey/cryptocore/internal/randsrc"
	"github.com/vaultkey/cryptocore/keysplitting"
	"github.com/vaultkey/cryptocore/rsakey"
)

func runMultiplicative() {
	fmt.Println("Running multiplicative script -- a sequential split/sign workflow")
	msg := []byte("test message")
	h := hash.SHA512()

	key, err := rsakey.Generate(2048, "10001", randsrc.Default)
	if err != nil {
		panic(err)
	}
	shards, err := keysplitting.SplitD(key, 3, keysplitting.Multiplicative, randsrc.Default)
	if err != nil {
		panic(err)
	}

	sig, err := keysplitting.SignFirst(shards[0], h, msg, randsrc.Default)
	if err != nil {
		panic(err)
	}
	for _, shard := range shards[1:] {
		sig, err = keysplitting.SignNext(shard, h, msg, sig, randsrc.Default)
		if err != nil {
			panic(err)
		}
	}

	if _, err := key.Verify(sig, nil, nil); err != nil {
		panic(err)
	}

	fmt.Println("Success!")
}
