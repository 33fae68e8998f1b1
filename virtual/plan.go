package virtual

// FallbackViewport is used before the real viewport height is known.
const FallbackViewport = 20

// Scroll is the per-event scroll state.
type Scroll struct {
	Top      int
	Viewport int
}

// Options configures a Planner.
type Options struct {
	Overscan         int
	FallbackViewport int
	Scan             Scan
}

// Window is everything a renderer needs for one frame.
type Window struct {
	Range

	// RenderStart is Start after Backtrack; rendering begins here.
	RenderStart int
	// Spacer is the height of all positions strictly before RenderStart.
	// The backtracked header renders in flow below it.
	Spacer int
	// Total is the summed height of the whole list.
	Total int
	// Top is the scroll offset after clamping into [0, Total-Viewport].
	Top int
	// Viewport is the viewport height used, after the fallback.
	Viewport int
	// Sticky is the group whose header must be pinned at the top of the
	// viewport, or -1 when that header is already fully in view.
	Sticky int
}

// Empty reports whether there is nothing to render.
func (w Window) Empty() bool { return w.End <= w.RenderStart }

// Planner turns a flat sequence and a scroll state into a Window. It
// owns the prefix index built over its HeightCache.
type Planner struct {
	heights *HeightCache
	offsets *OffsetIndex
	opts    Options
}

// NewPlanner returns a Planner reading heights.
func NewPlanner(heights *HeightCache, opts Options) *Planner {
	if opts.Overscan < 0 {
		opts.Overscan = 0
	}
	if opts.FallbackViewport <= 0 {
		opts.FallbackViewport = FallbackViewport
	}
	return &Planner{
		heights: heights,
		offsets: NewOffsetIndex(heights),
		opts:    opts,
	}
}

// Heights returns the cache the planner reads.
func (p *Planner) Heights() *HeightCache { return p.heights }

// Options returns the planner configuration.
func (p *Planner) Options() Options { return p.opts }

// Plan computes the Window for flat at scroll s.
func (p *Planner) Plan(flat []Entry, s Scroll) Window {
	n := len(flat)
	viewport := s.Viewport
	if viewport <= 0 {
		viewport = p.opts.FallbackViewport
	}
	w := Window{Viewport: viewport, Sticky: -1}
	if n == 0 {
		return w
	}

	total := p.total(n)
	w.Total = total
	w.Top = min(max(s.Top, 0), max(total-viewport, 0))

	if p.opts.Scan == ScanLinear {
		w.Range = ComputeVisible(flat, p.heights, w.Top, viewport, p.opts.Overscan)
	} else {
		w.Range = p.offsets.Visible(n, w.Top, viewport, p.opts.Overscan)
	}
	w.RenderStart = Backtrack(flat, w.Start)
	w.Spacer = p.Offset(n, w.RenderStart)

	if w.Spacer < w.Top {
		w.Sticky = flat[w.Start].Group
	}
	return w
}

func (p *Planner) total(n int) int {
	if p.opts.Scan == ScanLinear {
		return TotalHeight(p.heights, n)
	}
	p.offsets.Sync(n)
	return p.offsets.Total()
}

// Offset is the height of all positions before pos in a list of n
// entries, computed the way the configured Scan computes it.
func (p *Planner) Offset(n, pos int) int {
	if p.opts.Scan == ScanLinear {
		return OffsetOf(p.heights, min(max(pos, 0), n))
	}
	p.offsets.Sync(n)
	return p.offsets.Offset(pos)
}
