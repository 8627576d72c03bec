package catmullrom

import "github.com/irfannaqieb/catmull-rom/vecn"

// mirrorKnot synthesizes the virtual neighbor beyond the terminal knot
// end, whose real neighbor on the inside is inner.
func mirrorKnot(end, inner vecn.Point, mode EndpointMode, dim int) vecn.Point {
	if mode != Extrapolate {
		return end.Clone()
	}
	// end + (end − inner), the linear mirror of the terminal secant
	v := make(vecn.Point, dim)
	for i := 0; i < dim; i++ {
		v[i] = 2*end.At(i) - inner.At(i)
	}
	return v
}

// padOpen wraps an open path with one virtual knot on each side, so
// that every real segment has a complete 4-knot window. len(pts) ≥ 2.
func padOpen(pts []vecn.Point, mode EndpointMode, dim int) []vecn.Point {
	n := len(pts)
	padded := make([]vecn.Point, 0, n+2)
	padded = append(padded, mirrorKnot(pts[0], pts[1], mode, dim))
	padded = append(padded, pts...)
	padded = append(padded, mirrorKnot(pts[n-1], pts[n-2], mode, dim))
	return padded
}

// window returns the 4-knot window (p0,p1,p2,p3) for segment i. For
// closed curves the window indexes the real knots modulo n and the
// sub-curve lies between pts[i] and pts[i+1]; for open curves it
// indexes the padded sequence sequentially.
func window(pts []vecn.Point, i int, closed bool) (p0, p1, p2, p3 vecn.Point) {
	if closed {
		n := len(pts)
		return pts[(i-1+n)%n], pts[i], pts[(i+1)%n], pts[(i+2)%n]
	}
	return pts[i], pts[i+1], pts[i+2], pts[i+3]
}
