package tetromino

import "math/rand/v2"

// KindSource picks the kind of each newly spawned piece.
type KindSource interface {
	Next() Kind
}

// RandomSource draws kinds uniformly at random.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a uniform KindSource seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// Next returns a uniformly random kind.
func (r *RandomSource) Next() Kind {
	return Kind(r.rng.IntN(NumKinds))
}

// Sequence replays a fixed list of kinds, wrapping around at the end.
// Used to make sessions deterministic.
type Sequence struct {
	kinds []Kind
	next  int
}

// NewSequence returns a KindSource cycling through kinds.
func NewSequence(kinds ...Kind) *Sequence {
	return &Sequence{kinds: kinds}
}

// Next returns the next kind in the sequence.
func (s *Sequence) Next() Kind {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return k
}
