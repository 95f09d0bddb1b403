// Package rng provides explicit, seeded random streams for dataset generation.
//
// Every generator phase draws from its own Stream, derived from the run seed
// and a fixed StreamID, so changing the volume of one phase leaves the draws
// of the others untouched.
package rng

import (
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat/distuv"
)

// StreamID identifies a generator phase.
type StreamID uint64

const (
	Businesses StreamID = iota + 1
	Estimators
	Expertise
	Projects
	Estimates
	Reviews
)

// idSalt separates the id stream from the value stream of the same phase.
const idSalt = 0x9e3779b97f4a7c15

// Stream is a deterministic source of draws. Not safe for concurrent use.
type Stream struct {
	src   *rand.PCG
	r     *rand.Rand
	ids   *rand.ChaCha8
	faker *gofakeit.Faker
}

// New returns the stream for phase id under seed.
func New(seed int64, id StreamID) *Stream {
	src := rand.NewPCG(uint64(seed), uint64(id))

	keySrc := rand.NewPCG(uint64(seed)^idSalt, uint64(id))
	var key [32]byte
	for i := 0; i < len(key); i += 8 {
		v := keySrc.Uint64()
		for j := 0; j < 8; j++ {
			key[i+j] = byte(v >> (8 * j))
		}
	}

	return &Stream{
		src: src,
		r:   rand.New(src),
		ids: rand.NewChaCha8(key),
	}
}

// Float64 returns a draw in [0,1).
func (s *Stream) Float64() float64 { return s.r.Float64() }

// IntN returns a draw in [0,n). It panics if n <= 0.
func (s *Stream) IntN(n int) int { return s.r.IntN(n) }

// Uniform returns a draw in [lo,hi).
func (s *Stream) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// IntRange returns a draw in [lo,hi], both ends inclusive.
func (s *Stream) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Bernoulli returns true with probability p.
func (s *Stream) Bernoulli(p float64) bool {
	return s.r.Float64() < p
}

// LogNormal draws from a log-normal distribution with the given parameters
// of the underlying normal.
func (s *Stream) LogNormal(mu, sigma float64) float64 {
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Beta draws from Beta(alpha, beta).
func (s *Stream) Beta(alpha, beta float64) float64 {
	return distuv.Beta{Alpha: alpha, Beta: beta, Src: s.src}.Rand()
}

// Between returns a time uniformly distributed in [start,end), truncated to
// the second.
func (s *Stream) Between(start, end time.Time) time.Time {
	span := int64(end.Sub(start) / time.Second)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(s.r.Int64N(span)) * time.Second)
}

// UUID returns a version 4 UUID string from the stream's id generator.
func (s *Stream) UUID() string {
	id, err := uuid.NewRandomFromReader(s.ids)
	if err != nil {
		// ChaCha8.Read never fails.
		panic(err)
	}
	return id.String()
}

// Faker returns a gofakeit instance seeded from this stream. The same
// instance is returned on every call.
func (s *Stream) Faker() *gofakeit.Faker {
	if s.faker == nil {
		seed := int64(s.r.Uint64()>>1) | 1 // gofakeit treats 0 as "seed from crypto/rand"
		s.faker = gofakeit.NewUnlocked(seed)
	}
	return s.faker
}

// Pick returns a uniformly chosen element. It panics on an empty slice.
func Pick[T any](s *Stream, items []T) T {
	return items[s.r.IntN(len(items))]
}

// Sample returns k distinct elements chosen without replacement. If k
// exceeds len(items), every element is returned in shuffled order.
func Sample[T any](s *Stream, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	out := make([]T, k)
	for i := 0; i < k; i++ {
		j := i + s.r.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = items[idx[i]]
	}
	return out
}

// Weighted returns items[i] with probability weights[i]/sum(weights).
// Both slices must be the same non-zero length.
func Weighted[T any](s *Stream, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := s.r.Float64() * total
	for i, w := range weights {
		if x < w {
			return items[i]
		}
		x -= w
	}
	return items[len(items)-1]
}
