package main

import (
	"fmt"

	"github.com/vaultkey/cryptocore/internal/randsrc"
	"github.com/vaultkey/cryptocore/x25519"
)

func runDH() {
	fmt.Println("Running dh script -- an X25519 key exchange between two parties")

	var alicePriv, bobPriv [32]byte
	ab, err := randsrc.Default.RandomBytes(32)
	if err != nil {
		panic(err)
	}
	bb, err := randsrc.Default.RandomBytes(32)
	if err != nil {
		panic(err)
	}
	copy(alicePriv[:], ab)
	copy(bobPriv[:], bb)

	alicePub, err := x25519.GenKeypair(alicePriv)
	if err != nil {
		panic(err)
	}
	bobPub, err := x25519.GenKeypair(bobPriv)
	if err != nil {
		panic(err)
	}

	aliceShared, err := x25519.CombineKeys(alicePriv, bobPub)
	if err != nil {
		panic(err)
	}
	bobShared, err := x25519.CombineKeys(bobPriv, alicePub)
	if err != nil {
		panic(err)
	}

	if aliceShared != bobShared {
		panic("shared secrets disagree")
	}

	fmt.Printf("shared secret: %x\n", aliceShared)
	fmt.Println("Success!")
}
