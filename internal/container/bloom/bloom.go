// Package bloom implements a bloom filter over byte keys.
package bloom

import "github.com/twmb/murmur3"

const (
	DefaultM = 1024
	DefaultK = 3
)

// Filter is a fixed-size bloom filter. Each key sets k bits chosen by seeded
// murmur3 sums; MayContain reports false positives but never false negatives.
type Filter struct {
	bits []byte
	m    uint32
	k    uint32
}

// New creates a filter with an m-bit set and k hash functions. Non-positive
// arguments fall back to the defaults.
func New(m, k int) *Filter {
	if m <= 0 {
		m = DefaultM
	}
	if k <= 0 {
		k = DefaultK
	}
	return &Filter{
		bits: make([]byte, (m+7)/8),
		m:    uint32(m),
		k:    uint32(k),
	}
}

// Add records key in the filter.
func (f *Filter) Add(key []byte) {
	for seed := uint32(0); seed < f.k; seed++ {
		bit := murmur3.SeedSum32(seed, key) % f.m
		f.bits[bit/8] |= 1 << (bit % 8)
	}
}

// MayContain reports whether key might have been added. A false result is
// definitive.
func (f *Filter) MayContain(key []byte) bool {
	for seed := uint32(0); seed < f.k; seed++ {
		bit := murmur3.SeedSum32(seed, key) % f.m
		if f.bits[bit/8]&(1<<(bit%8)) == 0 {
			return false
		}
	}
	return true
}
