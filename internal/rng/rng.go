// Package rng provides the random sources used by the generators.
// Every Source is safe for concurrent use.
package rng

import (
	"crypto/rand"
	"math/big"
	"strings"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
)

// Source is a uniform random source.
type Source interface {
	// Intn returns an int in [0, n). It panics if n <= 0.
	Intn(n int) int
	// Float64 returns a float64 in [0, 1).
	Float64() float64
}

// Crypto returns a Source backed by crypto/rand.
func Crypto() Source {
	return cryptoSource{}
}

type cryptoSource struct{}

func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}

// Float64 draws 53 random bits, the precision of a float64 mantissa.
func (cryptoSource) Float64() float64 {
	v, err := rand.Int(rand.Reader, big.NewInt(1<<53))
	if err != nil {
		panic("crypto/rand: " + err.Error())
	}
	return float64(v.Int64()) / (1 << 53)
}

// Seeded returns a deterministic Source. Two sources with the same seed
// produce the same sequence as long as they are called in the same order.
func Seeded(seed int64) Source {
	return &seededSource{f: gofakeit.New(seed)}
}

type seededSource struct {
	mu sync.Mutex
	f  *gofakeit.Faker
}

func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Number(0, n-1)
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Faker.Float64 spans the whole float64 range
	return s.f.Rand.Float64()
}

// Pick returns a uniformly chosen element of items. It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Between returns an int in [lo, hi].
func Between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}

// Digits returns n uniformly random decimal digits.
func Digits(src Source, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(byte('0' + src.Intn(10)))
	}
	return b.String()
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
