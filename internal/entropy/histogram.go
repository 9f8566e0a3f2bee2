package entropy

import "math"

// Symbols is the number of distinct byte values
const Symbols = 256

// MaxEntropy is log2(Symbols), the entropy of a uniform byte distribution
const MaxEntropy = 8.0

// Histogram counts occurrences of every byte value. It satisfies io.Writer,
// so any byte stream can be copied into it. The zero value is ready to use.
//
// Counters are float64 so the entropy pass needs no conversion; they stay
// exact for inputs shorter than 2^53 bytes.
type Histogram struct {
	counts [Symbols]float64
	total  int64
}

// Write adds every byte of p to the histogram. It never fails.
func (h *Histogram) Write(p []byte) (int, error) {
	for _, b := range p {
		h.counts[b]++
	}
	h.total += int64(len(p))
	return len(p), nil
}

// Count returns how many times b has been written
func (h *Histogram) Count(b byte) float64 {
	return h.counts[b]
}

// Total returns the number of bytes written
func (h *Histogram) Total() int64 {
	return h.total
}

// Entropy returns the Shannon entropy of the recorded distribution in bits
// per byte. An empty histogram has entropy 0.
func (h *Histogram) Entropy() float64 {
	if h.total == 0 {
		return 0
	}

	total := float64(h.total)
	entropy := 0.0
	for _, count := range h.counts {
		// p*log2(p) tends to 0 as p tends to 0, so empty buckets add nothing
		if count > 0 {
			p := count / total
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}
