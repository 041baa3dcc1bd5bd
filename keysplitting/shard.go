package keysplitting

import (
	"fmt"

	"github.com/vaultkey/cryptocore/internal/bigint"
	"github.com/vaultkey/cryptocore/internal/randsrc"
	"github.com/vaultkey/cryptocore/rsakey"
)

// SplitBy selects the algorithm used to split a private exponent and later
// combine partial signatures. Either is suitable from a security
// standpoint; see the package doc for the operational tradeoff.
type SplitBy int

const (
	Multiplicative SplitBy = iota
	Additive
)

// Shard is one piece of a split RSA private key. Public carries only N and
// E — none of the original key's P, Q, or D survive the split.
type Shard struct {
	Public  *rsakey.Key
	D       *bigint.Int
	SplitBy SplitBy
}

// SplitD splits priv's private exponent into k shards such that combining
// them (via SplitBy's rule, modulo phi(N)) recovers D, without ever
// storing D directly in more than one place at rest. priv must carry its
// P and Q factors (e.g. as returned by rsakey.Generate).
func SplitD(priv *rsakey.Key, k int, splitBy SplitBy, rng randsrc.Source) ([]*Shard, error) {
	if k < 2 {
		return nil, fmt.Errorf("keysplitting: cannot split a key into fewer than 2 shards")
	}
	if priv.P == nil || priv.Q == nil {
		return nil, fmt.Errorf("keysplitting: private key is missing its prime factors")
	}

	phi := priv.P.Sub(bigint.One).Mul(priv.Q.Sub(bigint.One))
	pub := &rsakey.Key{N: priv.N, E: priv.E}

	var ds []*bigint.Int
	var err error
	switch splitBy {
	case Multiplicative:
		ds, err = splitMultiplicative(priv.D, k, phi, rng)
	case Additive:
		ds, err = splitAdditive(priv.D, k, phi, rng)
	default:
		return nil, fmt.Errorf("keysplitting: unrecognized SplitBy value %v", splitBy)
	}
	if err != nil {
		return nil, err
	}

	shards := make([]*Shard, k)
	for i, d := range ds {
		shards[i] = &Shard{Public: pub, D: d, SplitBy: splitBy}
	}
	return shards, nil
}

// splitMultiplicative produces k shards whose product is congruent to seed
// mod phi, by repeatedly peeling a fresh pair (shardA, shardB) off a
// shrinking seed and folding shardB back in as the next seed. Mirrors
// bastionzero/keysplitting's splitMultiplicative.
func splitMultiplicative(seed *bigint.Int, k int, phi *bigint.Int, rng randsrc.Source) ([]*bigint.Int, error) {
	shards := make([]*bigint.Int, 0, k)

	for len(shards) < k {
		shardA, shardB, err := splitSeed(seed, phi, rng)
		if err != nil {
			return nil, err
		}
		shards = append(shards, shardA)

		if len(shards) == k-1 {
			shards = append(shards, shardB)
			break
		}
		seed = shardB
	}
	return shards, nil
}

// splitSeed finds shardA, shardB such that shardA*shardB ≡ seed (mod phi).
// validRandomNumber already guarantees shardA is coprime to phi, so the
// inverse below always exists.
func splitSeed(seed, phi *bigint.Int, rng randsrc.Source) (shardA, shardB *bigint.Int, err error) {
	shardA, err = validRandomNumber(phi, seed, rng)
	if err != nil {
		return nil, nil, err
	}
	shardB = seed.Mul(shardA.ModInverse(phi)).Mod(phi)
	return shardA, shardB, nil
}

// splitAdditive picks k-1 random shards below phi and sets the last to
// whatever makes the sum congruent to D, restarting the whole search if an
// astronomically unlikely collision makes that impossible. Mirrors
// bastionzero/keysplitting's splitAdditive.
func splitAdditive(d *bigint.Int, k int, phi *bigint.Int, rng randsrc.Source) ([]*bigint.Int, error) {
restart:
	for {
		shards := make([]*bigint.Int, k)

		for i := 0; i < k-1; i++ {
			for {
				candidate, err := validRandomNumber(phi, d, rng)
				if err != nil {
					return nil, err
				}
				if !shardIn(shards, candidate) {
					shards[i] = candidate
					break
				}
			}
		}

		// Reduce mod phi before comparing: bigint.Sub panics on a negative
		// result, so the sum must already be bounded below phi, unlike
		// math/big's Sub which would just go negative and get fixed up
		// later. Congruence mod phi is all the additive scheme needs.
		sum := shardSum(shards[:k-1]).Mod(phi)
		var last *bigint.Int
		switch sum.Cmp(d) {
		case -1:
			last = d.Sub(sum)
		case 1:
			last = phi.Sub(sum).Add(d).Mod(phi)
		default:
			continue restart
		}
		if shardIn(shards[:k-1], last) {
			continue restart
		}
		shards[k-1] = last
		return shards, nil
	}
}

func shardSum(shards []*bigint.Int) *bigint.Int {
	sum := bigint.Zero
	for _, s := range shards {
		if s != nil {
			sum = sum.Add(s)
		}
	}
	return sum
}

func shardIn(shards []*bigint.Int, candidate *bigint.Int) bool {
	for _, s := range shards {
		if s != nil && s.Cmp(candidate) == 0 {
			return true
		}
	}
	return false
}

// validRandomNumber draws a value in [2, phi) coprime to phi and different
// from seed, rejecting and redrawing otherwise.
func validRandomNumber(phi, seed *bigint.Int, rng randsrc.Source) (*bigint.Int, error) {
	for {
		r, err := randBelow(phi, rng)
		if err != nil {
			return nil, err
		}
		if r.Cmp(bigint.Zero) == 0 || r.Cmp(bigint.One) == 0 || r.Cmp(seed) == 0 {
			continue
		}
		if r.GCD(phi).Cmp(bigint.One) != 0 {
			continue
		}
		return r, nil
	}
}

// randBelow draws a uniformly random value in [0, n) by rejection
// sampling over n's byte width.
func randBelow(n *bigint.Int, rng randsrc.Source) (*bigint.Int, error) {
	width := (n.BitLen() + 7) / 8
	if width == 0 {
		width = 1
	}
	for {
		b, err := rng.RandomBytes(width)
		if err != nil {
			return nil, err
		}
		r := bigint.FromBytes(b)
		if r.Cmp(n) < 0 {
			return r, nil
		}
	}
}
