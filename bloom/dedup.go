// Package bloom provides probabilistic deduplication of batch inputs
// using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Dedup tracks which sources a batch run has already processed. False
// positives are possible (a new source may be skipped); false negatives
// are not (a processed source is never reprocessed).
type Dedup struct {
	f *bloom.BloomFilter
}

// NewDedup creates a deduplicator sized for n expected sources with the
// given false positive rate.
func NewDedup(n uint, fpRate float64) *Dedup {
	return &Dedup{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records the source and reports whether it had been recorded before.
func (d *Dedup) Seen(source string) bool {
	if d.f.TestString(source) {
		return true
	}
	d.f.AddString(source)
	return false
}

// EstimatedCount returns the approximate number of recorded sources.
func (d *Dedup) EstimatedCount() uint {
	return uint(d.f.ApproximatedSize())
}
