package sim

import "climatesim"

// HistoryCap bounds every room's sample history.
const HistoryCap = 72

// HistoryBuffer is one room's bounded rolling sample sequence. Appending
// past capacity evicts the oldest sample first.
type HistoryBuffer struct {
	samples []climatesim.Sample
}

func NewHistoryBuffer() *HistoryBuffer {
	return &HistoryBuffer{samples: make([]climatesim.Sample, 0, HistoryCap)}
}

// Append pushes a sample to the tail, evicting the head once full.
func (h *HistoryBuffer) Append(s climatesim.Sample) {
	if len(h.samples) == HistoryCap {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:HistoryCap-1]
	}
	h.samples = append(h.samples, s)
}

// Samples returns an ordered copy for charting; mutating the result does
// not touch the buffer.
func (h *HistoryBuffer) Samples() []climatesim.Sample {
	out := make([]climatesim.Sample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Len returns the current sample count.
func (h *HistoryBuffer) Len() int {
	return len(h.samples)
}

// Restore replaces the buffer from a persisted snapshot, keeping only the
// newest HistoryCap samples.
func (h *HistoryBuffer) Restore(samples []climatesim.Sample) {
	if len(samples) > HistoryCap {
		samples = samples[len(samples)-HistoryCap:]
	}
	h.samples = h.samples[:0]
	h.samples = append(h.samples, samples...)
}
