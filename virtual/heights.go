package virtual

// DefaultEstimate is the row height assumed for unmeasured entries when
// the caller does not supply a positive estimate.
const DefaultEstimate = 1

// Measurer is the port a rendering surface reports finalized sizes
// through. Measure returns true when the report changed engine state and
// a new layout is therefore required.
type Measurer interface {
	Measure(position, size int) bool
}

// HeightCache maps flat positions to their last measured height. Absent
// positions fall back to the estimate.
//
// Writes are idempotent: recording the value already cached, or a
// non-positive value, changes nothing, not even Version. Renderers rely
// on that to stop the measure, render, measure cycle.
type HeightCache struct {
	estimate int
	heights  map[int]int
	version  uint64
}

var _ Measurer = (*HeightCache)(nil)

// NewHeightCache returns an empty cache. A non-positive estimate is
// replaced by DefaultEstimate.
func NewHeightCache(estimate int) *HeightCache {
	if estimate <= 0 {
		estimate = DefaultEstimate
	}
	return &HeightCache{
		estimate: estimate,
		heights:  make(map[int]int),
	}
}

// Height returns the measured height at pos, or the estimate.
func (c *HeightCache) Height(pos int) int {
	if h, ok := c.heights[pos]; ok {
		return h
	}
	return c.estimate
}

// Measured reports whether pos has a real measurement.
func (c *HeightCache) Measured(pos int) bool {
	_, ok := c.heights[pos]
	return ok
}

// Record stores a measurement. It returns false, leaving the cache
// untouched, when measured <= 0 or equals the cached value.
func (c *HeightCache) Record(pos, measured int) bool {
	if measured <= 0 || pos < 0 {
		return false
	}
	if h, ok := c.heights[pos]; ok && h == measured {
		return false
	}
	c.heights[pos] = measured
	c.version++
	return true
}

// Measure implements Measurer.
func (c *HeightCache) Measure(position, size int) bool {
	return c.Record(position, size)
}

// Reset drops every measurement. Used when the list shape changes and
// positions no longer name the same rows.
func (c *HeightCache) Reset() {
	if len(c.heights) == 0 {
		return
	}
	c.heights = make(map[int]int)
	c.version++
}

// Estimate is the fallback height.
func (c *HeightCache) Estimate() int { return c.estimate }

// Len is the number of measured positions.
func (c *HeightCache) Len() int { return len(c.heights) }

// Version increases on every state change.
func (c *HeightCache) Version() uint64 { return c.version }
