package catmullrom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/irfannaqieb/catmull-rom/vecn"
)

func TestKnotTimesEquallySpaced(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1, p2, p3 := vecn.P(0, 0), vecn.P(1, 0), vecn.P(2, 0), vecn.P(3, 0)
	t0, t1, t2, t3 := knotTimes(p0, p1, p2, p3, 0.5, DefaultEpsilon, 2)
	assert.Equal(t, 0.0, t0)
	assert.InDelta(t, 1.0, t1, 1e-12)
	assert.InDelta(t, 2.0, t2, 1e-12)
	assert.InDelta(t, 3.0, t3, 1e-12)
}

func TestKnotTimesGuardBumpsInOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// p0 == p1 == p2: first two deltas collapse, third is real
	p := vecn.P(1, 1)
	t0, t1, t2, t3 := knotTimes(p, p, p, vecn.P(2, 1), 0.5, 1e-9, 2)
	assert.Equal(t, 0.0, t0)
	assert.Equal(t, 1e-9, t1)
	assert.Equal(t, 2e-9, t2, "second guard must build on the bumped t1")
	assert.Greater(t, t3, t2)
}

func TestKnotTimesUniformIgnoresChords(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// With alpha = 0 every chord contributes 1, long or short.
	t0, t1, t2, t3 := knotTimes(vecn.P(0, 0), vecn.P(100, 0), vecn.P(100.5, 0), vecn.P(200, 0),
		0, DefaultEpsilon, 2)
	assert.Equal(t, []float64{0, 1, 2, 3}, []float64{t0, t1, t2, t3})
}

func TestLerpTDegenerateIntervalReturnsFirst(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, y := vecn.P(1, 2), vecn.P(5, 6)
	got := lerpT(x, y, 3, 3, 3, 1e-9, 2)
	assert.Equal(t, x, got)
	got[0] = 99
	assert.Equal(t, 1.0, x[0], "degenerate lerp must return a copy, not x itself")
}

func TestLerpTMidpoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	got := lerpT(vecn.P(0, 0), vecn.P(2, 4), 0, 1, 0.5, 1e-9, 2)
	assert.Equal(t, vecn.P(1, 2), got)
}

func TestEvalSegmentHitsBoundaries(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1, p2, p3 := vecn.P(0, 0), vecn.P(1, 2), vecn.P(2, 1), vecn.P(3, 3)
	t0, t1, t2, t3 := knotTimes(p0, p1, p2, p3, 0.5, DefaultEpsilon, 2)
	atStart := evalSegment(p0, p1, p2, p3, t0, t1, t2, t3, t1, DefaultEpsilon, 2)
	atEnd := evalSegment(p0, p1, p2, p3, t0, t1, t2, t3, t2, DefaultEpsilon, 2)
	assert.InDelta(t, p1[0], atStart[0], 1e-9)
	assert.InDelta(t, p1[1], atStart[1], 1e-9)
	assert.InDelta(t, p2[0], atEnd[0], 1e-9)
	assert.InDelta(t, p2[1], atEnd[1], 1e-9)
}

func TestMirrorKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	end, inner := vecn.P(0, 0), vecn.P(1, 2)
	assert.Equal(t, vecn.P(0, 0), mirrorKnot(end, inner, Duplicate, 2))
	assert.Equal(t, vecn.P(-1, -2), mirrorKnot(end, inner, Extrapolate, 2))
}

func TestWindowClosedWrapsAround(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []vecn.Point{vecn.P(0, 0), vecn.P(1, 0), vecn.P(1, 1), vecn.P(0, 1)}
	p0, p1, p2, p3 := window(pts, 0, true)
	assert.Equal(t, pts[3], p0)
	assert.Equal(t, pts[0], p1)
	assert.Equal(t, pts[1], p2)
	assert.Equal(t, pts[2], p3)
	p0, _, _, p3 = window(pts, 3, true)
	assert.Equal(t, pts[2], p0)
	assert.Equal(t, pts[1], p3)
}
