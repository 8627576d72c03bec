/*
Package vecn implements arithmetic for points of arbitrary dimension.

It is the numeric base layer for the Catmull-Rom evaluator in the
repository root: Euclidean distance, componentwise linear interpolation,
dimension clamping and epsilon-aware comparison over plain float slices.

# BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package vecn

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'vecn'
func tracer() tracing.Trace {
	return tracing.Select("vecn")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// === Point Data Type =======================================================

// Point is a point in D-dimensional space, D ≥ 1. The zero value is a
// point of dimension 0, which is useless for arithmetic but safe to
// append to.
type Point []float64

// P is a quick notation for constructing a point from floats.
func P(coords ...float64) Point {
	p := make(Point, len(coords))
	copy(p, coords)
	return p
}

// Pretty Stringer for points, e.g. "(1,2.5,0)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Dim returns the number of coordinates of p.
func (p Point) Dim() int {
	return len(p)
}

// At returns coordinate i, or 0 if p has fewer than i+1 coordinates.
func (p Point) At(i int) float64 {
	if i < 0 || i >= len(p) {
		return 0
	}
	return p[i]
}

// X is the first coordinate of a point.
func (p Point) X() float64 {
	return p.At(0)
}

// Y is the second coordinate of a point.
func (p Point) Y() float64 {
	return p.At(1)
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)
	return q
}

// Clamped returns a copy of p truncated to its leading dim coordinates.
// If p is shorter than dim, the copy is padded with zeros; callers that
// consider short points an error must check Dim beforehand.
func (p Point) Clamped(dim int) Point {
	q := make(Point, dim)
	if len(p) < dim {
		tracer().Errorf("clamping %v to %d coordinates, padding with 0", p, dim)
	}
	copy(q, p)
	return q
}

// Zap rounds all coordinates to Epsilon.
func (p Point) Zap() Point {
	q := p.Clone()
	for i, c := range q {
		q[i] = Zap(c)
	}
	return q
}

// Equal compares two points. Points of different dimension are never
// equal; coordinates are compared up to Epsilon.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !Is0(p[i] - q[i]) {
			return false
		}
	}
	return true
}

// IsFinite is a predicate: are all coordinates free of NaN and ±Inf?
func (p Point) IsFinite() bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Dist returns the Euclidean distance between a and b over their
// leading dim coordinates. Missing coordinates count as 0.
func Dist(a, b Point, dim int) float64 {
	sum := 0.0
	for i := 0; i < dim; i++ {
		d := a.At(i) - b.At(i)
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Lerp interpolates componentwise between a and b over the leading dim
// coordinates: (1−u)·a + u·b. The result is newly allocated.
func Lerp(a, b Point, u float64, dim int) Point {
	p := make(Point, dim)
	for i := 0; i < dim; i++ {
		p[i] = (1-u)*a.At(i) + u*b.At(i)
	}
	return p
}
