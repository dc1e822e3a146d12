package tui

import "slices"

// sparklineChars holds the eight block heights, lowest first.
var sparklineChars = []rune("▁▂▃▄▅▆▇█")

// RingBuffer keeps the newest samples of a series, at most its capacity.
type RingBuffer struct {
	samples []float64
	limit   int
}

// NewRingBuffer creates a buffer holding up to capacity samples. A
// non-positive capacity is treated as one.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{limit: max(capacity, 1)}
}

// Push appends v and drops the oldest sample once the buffer is full.
func (r *RingBuffer) Push(v float64) {
	if len(r.samples) == r.limit {
		copy(r.samples, r.samples[1:])
		r.samples[len(r.samples)-1] = v
		return
	}
	r.samples = append(r.samples, v)
}

// Len returns the number of samples held.
func (r *RingBuffer) Len() int { return len(r.samples) }

// Last returns the newest sample, or 0 when empty.
func (r *RingBuffer) Last() float64 {
	if len(r.samples) == 0 {
		return 0
	}
	return r.samples[len(r.samples)-1]
}

// Slice returns a copy of the samples, oldest first, or nil when empty.
func (r *RingBuffer) Slice() []float64 {
	if len(r.samples) == 0 {
		return nil
	}
	return slices.Clone(r.samples)
}

// Resize changes the capacity to follow the terminal width, keeping the
// newest samples that still fit.
func (r *RingBuffer) Resize(capacity int) {
	r.limit = max(capacity, 1)
	if drop := len(r.samples) - r.limit; drop > 0 {
		r.samples = slices.Clone(r.samples[drop:])
	}
}

// Reset drops every sample.
func (r *RingBuffer) Reset() { r.samples = r.samples[:0] }

// RenderSparkline draws percentages (clamped to 0..100) as block characters.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	top := len(sparklineChars) - 1
	out := make([]rune, len(values))
	for i, v := range values {
		idx := int(min(max(v, 0), 100) / 100 * float64(top))
		out[i] = sparklineChars[idx]
	}
	return string(out)
}
