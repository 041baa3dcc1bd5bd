package keysplitting

import "github.com/vaultkey/cryptocore/internal/bigint"

// congruentModN reports whether n divides (a - b), i.e. a ≡ b (mod n).
// Ported from bastionzero/keysplitting's math.go/congruence.go, which
// carried two copies of this helper across its mpcrsa and keysplitting
// packages; this repository keeps exactly one.
func congruentModN(a, b, n *bigint.Int) bool {
	return a.Mod(n).Cmp(b.Mod(n)) == 0
}
