package main

import (
	"encoding/json"
	"fmt"
	mrand "math/rand"
	"runtime"
	"time"

	"github.com/vaultkey/cryptocore/hash"
	"github.com/vaultkey/cryptocore/internal/randsrc"
	"github.com/vaultkey/cryptocore/keysplitting"
	"github.com/vaultkey/cryptocore/rsakey"
)

// monitor mirrors the field set used by most lightweight runtime
// dashboards: allocation counters, live object count, and GC pause time.
type monitor struct {
	Alloc,
	TotalAlloc,
	Sys,
	Mallocs,
	Frees,
	LiveObjects,
	PauseTotalNs uint64

	NumGC        uint32
	NumGoroutine int
}

func watchMemory(interval time.Duration) {
	var m monitor
	var rtm runtime.MemStats
	for {
		<-time.After(interval)

		runtime.ReadMemStats(&rtm)
		m.NumGoroutine = runtime.NumGoroutine()
		m.Alloc = rtm.Alloc
		m.TotalAlloc = rtm.TotalAlloc
		m.Sys = rtm.Sys
		m.Mallocs = rtm.Mallocs
		m.Frees = rtm.Frees
		m.LiveObjects = m.Mallocs - m.Frees
		m.PauseTotalNs = rtm.PauseTotalNs
		m.NumGC = rtm.NumGC

		b, _ := json.Marshal(m)
		fmt.Println(string(b))
	}
}

// runMetrics hammers key generation, splitting, and threshold signing in a
// loop so it can be left running under a profiler or memory monitor.
func runMetrics() {
	fmt.Println("Running metrics script -- a continuous random workflow to sanity check memory usage")
	msg := []byte("test message")
	h := hash.SHA512()

	go watchMemory(30 * time.Second)
	rng := mrand.New(mrand.NewSource(time.Now().UnixNano()))

	for {
		key, err := rsakey.Generate(1024, "10001", randsrc.Default)
		if err != nil {
			panic(err)
		}
		nShards := 2 + rng.Intn(8)
		shards, err := keysplitting.SplitD(key, nShards, keysplitting.Additive, randsrc.Default)
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
	}
}
