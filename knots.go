package catmullrom

import (
	"math"

	"github.com/irfannaqieb/catmull-rom/vecn"
)

// knotTimes assigns monotonically increasing knot parameters to a
// 4-knot window: t0 = 0, each following knot advanced by the chord
// length raised to alpha. Every delta is bumped to at least eps, in
// order, so that coincident knots never produce a zero interval. Each
// guard sees the already-bumped predecessor.
func knotTimes(p0, p1, p2, p3 vecn.Point, alpha, eps float64, dim int) (t0, t1, t2, t3 float64) {
	t0 = 0
	t1 = t0 + math.Pow(vecn.Dist(p0, p1, dim), alpha)
	if t1-t0 < eps {
		t1 = t0 + eps
	}
	t2 = t1 + math.Pow(vecn.Dist(p1, p2, dim), alpha)
	if t2-t1 < eps {
		t2 = t1 + eps
	}
	t3 = t2 + math.Pow(vecn.Dist(p2, p3, dim), alpha)
	if t3-t2 < eps {
		t3 = t2 + eps
	}
	return t0, t1, t2, t3
}

// lerpT interpolates componentwise between x and y, with the parameter
// taken relative to the knot interval [ta,tb]. A degenerate interval
// returns x unchanged (as a copy), keeping NaN out of the pipeline.
func lerpT(x, y vecn.Point, ta, tb, t, eps float64, dim int) vecn.Point {
	if math.Abs(tb-ta) < eps {
		return x.Clone()
	}
	u := (t - ta) / (tb - ta)
	return vecn.Lerp(x, y, u, dim)
}

// evalSegment computes the curve point at time t ∈ [t1,t2] via the
// Barry-Goldman pyramid of nested lerps. Mathematically this equals
// evaluating the local cubic Catmull-Rom basis.
func evalSegment(p0, p1, p2, p3 vecn.Point, t0, t1, t2, t3, t, eps float64, dim int) vecn.Point {
	a1 := lerpT(p0, p1, t0, t1, t, eps, dim)
	a2 := lerpT(p1, p2, t1, t2, t, eps, dim)
	a3 := lerpT(p2, p3, t2, t3, t, eps, dim)
	b1 := lerpT(a1, a2, t0, t2, t, eps, dim)
	b2 := lerpT(a2, a3, t1, t3, t, eps, dim)
	return lerpT(b1, b2, t1, t2, t, eps, dim)
}
