package virtual

import "testing"

func newPlanner(estimate int, opts Options) *Planner {
	return NewPlanner(NewHeightCache(estimate), opts)
}

func TestPlan_Empty(t *testing.T) {
	p := newPlanner(1, Options{})
	w := p.Plan(nil, Scroll{Top: 5, Viewport: 10})
	if !w.Empty() || w.Total != 0 || w.Sticky != -1 {
		t.Errorf("empty plan: %+v", w)
	}
}

func TestPlan_SpacerFromRenderStart(t *testing.T) {
	for _, scan := range []Scan{ScanIndexed, ScanLinear} {
		t.Run(scan.String(), func(t *testing.T) {
			p := newPlanner(1, Options{Scan: scan})
			flat := Flatten([]int{3, 2})
			w := p.Plan(flat, Scroll{Top: 2, Viewport: 3})
			if w.Start != 2 || w.End != 5 {
				t.Errorf("range: want [2,5), got [%d,%d)", w.Start, w.End)
			}
			if w.RenderStart != 0 {
				t.Errorf("render start: want 0, got %d", w.RenderStart)
			}
			if w.Spacer != 0 {
				t.Errorf("spacer: want 0, got %d", w.Spacer)
			}
			if w.Sticky != 0 {
				t.Errorf("sticky: want group 0, got %d", w.Sticky)
			}
			if w.Total != 7 {
				t.Errorf("total: want 7, got %d", w.Total)
			}
		})
	}
}

func TestPlan_HeaderAtTopIsNotSticky(t *testing.T) {
	p := newPlanner(1, Options{})
	w := p.Plan(Flatten([]int{3, 2}), Scroll{Top: 4, Viewport: 3})
	if w.Start != 4 || w.RenderStart != 4 || w.Spacer != 4 {
		t.Errorf("got %+v", w)
	}
	if w.Sticky != -1 {
		t.Errorf("header fully in view must not be pinned, got %d", w.Sticky)
	}
}

func TestPlan_ClampsTop(t *testing.T) {
	p := newPlanner(2, Options{})
	flat := Flatten([]int{5}) // 6 entries, 12 lines
	w := p.Plan(flat, Scroll{Top: 100, Viewport: 4})
	if w.Top != 8 {
		t.Errorf("want top clamped to 8, got %d", w.Top)
	}
	if w.End != len(flat) {
		t.Errorf("bottom must reach the end, got %d", w.End)
	}
	w = p.Plan(flat, Scroll{Top: -3, Viewport: 4})
	if w.Top != 0 || w.Start != 0 || w.RenderStart != 0 {
		t.Errorf("negative top: %+v", w)
	}
}

func TestPlan_FallbackViewport(t *testing.T) {
	p := newPlanner(1, Options{FallbackViewport: 6})
	w := p.Plan(Flatten([]int{20}), Scroll{})
	if w.Viewport != 6 || w.End != 6 {
		t.Errorf("want fallback viewport 6 covering 6 rows, got %+v", w)
	}
	if NewPlanner(NewHeightCache(1), Options{}).Options().FallbackViewport != FallbackViewport {
		t.Error("zero fallback must default")
	}
}

func TestPlan_FollowsMeasurements(t *testing.T) {
	p := newPlanner(1, Options{})
	flat := Flatten([]int{4})
	before := p.Plan(flat, Scroll{Top: 0, Viewport: 2})
	p.Heights().Record(0, 2)
	after := p.Plan(flat, Scroll{Top: 0, Viewport: 2})
	if before.End != 2 || after.End != 1 {
		t.Errorf("want end 2 then 1, got %d then %d", before.End, after.End)
	}
	if after.Total != 6 {
		t.Errorf("want total 6, got %d", after.Total)
	}
}
