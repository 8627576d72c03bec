package catmullrom

import (
	"fmt"
	"strings"

	"github.com/irfannaqieb/catmull-rom/vecn"
)

// Evaluate samples a Catmull-Rom spline through path and returns the
// dense sample sequence. A nil cfg selects the documented defaults.
//
// A path with fewer than 2 knots is not an error: it is echoed back
// unchanged (as an independent copy), with empty metadata.
//
// The input is never mutated; all slices in the Result are newly
// allocated.
func Evaluate(path []vecn.Point, cfg *Config) (*Result, error) {
	s, err := newSettings(cfg)
	if err != nil {
		return nil, err
	}
	n := len(path)
	if n < 2 {
		res := &Result{Points: clonePath(path)}
		if s.includeMeta {
			res.Meta = []SampleMeta{}
			res.SegmentStarts = []int{0}
		}
		return res, nil
	}
	dim := s.dimension
	if dim == 0 {
		dim = path[0].Dim()
	}
	if err := validate(path, dim); err != nil {
		return nil, err
	}
	tracer().Debugf("evaluating %s over %d knots, dim %d, alpha %g",
		pathString(path, s.closed), n, dim, s.alpha)

	// Clamp once; everything downstream works on dim-length copies.
	pts := make([]vecn.Point, n)
	for i, p := range path {
		pts[i] = p.Clamped(dim)
	}
	if !s.closed {
		pts = padOpen(pts, s.endpoints, dim)
	}

	segments := n - 1
	if s.closed {
		segments = n
	}
	res := &Result{
		Points: make([]vecn.Point, 0, segments*s.samples+2),
	}
	if s.includeMeta {
		res.Meta = make([]SampleMeta, 0, segments*s.samples+2)
		res.SegmentStarts = make([]int, 0, segments)
	}
	if s.includeOriginal {
		res.Points = append(res.Points, pts[1].Clone()) // pts[0] is virtual
		if s.includeMeta {
			res.Meta = append(res.Meta, SampleMeta{Segment: 0, U: 0})
		}
	}
	for i := 0; i < segments; i++ {
		p0, p1, p2, p3 := window(pts, i, s.closed)
		t0, t1, t2, t3 := knotTimes(p0, p1, p2, p3, s.alpha, s.epsilon, dim)
		tracer().Debugf("segment %d: t = (%g, %g, %g, %g)", i, t0, t1, t2, t3)
		if s.includeMeta {
			res.SegmentStarts = append(res.SegmentStarts, len(res.Points))
		}
		// Sampling starts at 1: the segment-start boundary belongs to
		// the previous segment (or to IncludeOriginal).
		for j := 1; j <= s.samples; j++ {
			t := t1 + float64(j)*(t2-t1)/float64(s.samples)
			res.Points = append(res.Points, evalSegment(p0, p1, p2, p3, t0, t1, t2, t3, t, s.epsilon, dim))
			if s.includeMeta {
				res.Meta = append(res.Meta, SampleMeta{Segment: i, U: (t - t1) / (t2 - t1)})
			}
		}
	}
	if s.includeOriginal {
		res.Points = append(res.Points, pts[n].Clone()) // pts[n+1] is virtual
		if s.includeMeta {
			res.Meta = append(res.Meta, SampleMeta{Segment: segments - 1, U: 1})
		}
	}
	tracer().Infof("spline over %d knots sampled as %d points", n, len(res.Points))
	return res, nil
}

// MustEvaluate is a compatibility helper which panics on errors.
func MustEvaluate(path []vecn.Point, cfg *Config) *Result {
	res, err := Evaluate(path, cfg)
	if err != nil {
		panic(err)
	}
	return res
}

// validate rejects knots with too few coordinates for dim, and knots
// with non-finite coordinates. Degenerate geometry (coincident knots)
// is not an error; that is absorbed by the knot-time guards.
func validate(path []vecn.Point, dim int) error {
	for i, p := range path {
		if p.Dim() < dim {
			return fmt.Errorf("%w: knot %d has %d of %d", ErrDimension, i, p.Dim(), dim)
		}
		if !p.Clamped(dim).IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	return nil
}

func clonePath(path []vecn.Point) []vecn.Point {
	out := make([]vecn.Point, len(path))
	for i, p := range path {
		out[i] = p.Clone()
	}
	return out
}

// pathString renders a path in MetaPost-like notation, for tracing.
func pathString(path []vecn.Point, closed bool) string {
	var sb strings.Builder
	for i, p := range path {
		if i > 0 {
			sb.WriteString(" .. ")
		}
		sb.WriteString(p.String())
	}
	if closed {
		sb.WriteString(" .. cycle")
	}
	return sb.String()
}
