package deck

import (
	"encoding/binary"
	"math/rand"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Uniform Fisher-Yates shuffle of the shoe.
func (s *Shoe) shuffle() {
	perm := permutation(s.rng, len(s.cards))
	tmp := make([]int, len(s.cards))
	copy(tmp, s.cards)
	for i, p := range perm {
		s.cards[i] = tmp[p]
	}
}

// Helper function to generate a random permutation of size permSize
func permutation(rng *rand.Rand, permSize int) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	rng.Shuffle(permSize, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// RandomSeed reads a seed from the cipher stream of the Ed25519 suite, the
// same source the encrypted deck draws its secrets from.
func RandomSeed() int64 {
	buf := make([]byte, 8)
	suite.RandomStream().XORKeyStream(buf, buf)
	return int64(binary.LittleEndian.Uint64(buf) &^ (1 << 63))
}

// NewRand returns the shuffle source of a session. A zero seed means "pick one
// at random"; any other value makes every shuffle reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = RandomSeed()
	}
	return rand.New(rand.NewSource(seed))
}
