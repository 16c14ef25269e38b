// Package bloom provides probabilistic seen-before tracking for asset
// downloads. A class page frequently embeds the same diagram as its
// siblings; the filter lets the crawler skip re-downloading it.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by asset file name.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected assets with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records an asset name.
func (f *Filter) Add(name string) {
	f.f.AddString(name)
}

// Seen returns true if the asset might have been recorded already.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(name string) bool {
	return f.f.TestString(name)
}

// EstimatedCount returns the approximate number of recorded assets.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
