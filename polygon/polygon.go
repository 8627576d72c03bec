// Package polygon implements planar polygons built from knot rings,
// including smooth outlines traced through the knots and boolean
// clipping operations.
/*

Polygons are built with a small builder, starting from NullPolygon():

   pg := polygon.NullPolygon().Knot(vecn.P(0, 0)).Knot(vecn.P(1, 3)).Knot(vecn.P(3, 0)).Cycle()

Knots are N-dimensional points of which the first two coordinates are
significant. A polygon may be handed to Trace(...), which interpolates a
smooth closed Catmull-Rom curve through its knots and returns the dense
sample ring as a new polygon. Boolean operations (union, intersection,
difference, xor) are delegated to the polyclip package.

# BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"

	catmullrom "github.com/irfannaqieb/catmull-rom"
	"github.com/irfannaqieb/catmull-rom/vecn"
)

// L traces to a tracer with key 'polygon'.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a ring of knots in the plane. The zero value is an empty
// polygon; build it up with the Knot(...) builder and terminate the
// builder chain with Cycle().
type Polygon struct {
	knots []vecn.Point
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p vecn.Point) *Polygon {
	pg.knots = append(pg.knots, p.Clone())
	return pg
}

// Cycle closes the knot ring. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if pg.N() < 3 {
		panic("cannot close polygon with fewer than 3 knots")
	}
	pg.cycle = true
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
func Box(c1, c2 vecn.Point) *Polygon {
	return NullPolygon().
		Knot(vecn.P(c1.X(), c1.Y())).
		Knot(vecn.P(c2.X(), c1.Y())).
		Knot(vecn.P(c2.X(), c2.Y())).
		Knot(vecn.P(c1.X(), c2.Y())).
		Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Pt returns the knot at position (i mod N).
func (pg *Polygon) Pt(i int) vecn.Point {
	n := pg.N()
	return pg.knots[((i%n)+n)%n]
}

// IsCycle is a predicate: has this polygon been closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Area returns the signed shoelace area of the knot ring. Positive for
// counterclockwise orientation.
func (pg *Polygon) Area() float64 {
	a := 0.0
	n := pg.N()
	for i := 0; i < n; i++ {
		p, q := pg.Pt(i), pg.Pt(i+1)
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return a / 2
}

// IsCCW is a predicate: is the knot ring oriented counterclockwise?
func (pg *Polygon) IsCCW() bool {
	return pg.Area() > 0
}

// Trace interpolates a smooth closed Catmull-Rom curve through the
// knot ring and returns the dense sample ring as a new polygon, with
// samples knots per edge. Polygons with fewer than 3 knots are
// returned as a copy, untraced.
func (pg *Polygon) Trace(samples int) (*Polygon, error) {
	if pg.N() < 3 {
		return &Polygon{knots: clone(pg.knots), cycle: pg.cycle}, nil
	}
	res, err := catmullrom.Evaluate(pg.knots, &catmullrom.Config{
		Closed:    true,
		Samples:   samples,
		Dimension: 2,
	})
	if err != nil {
		return nil, err
	}
	L().Debugf("traced %d-knot polygon as %d-knot outline", pg.N(), len(res.Points))
	return &Polygon{knots: res.Points, cycle: true}, nil
}

// Union returns the union of pg and other. The result may consist of
// multiple contours, each returned as a closed polygon.
func (pg *Polygon) Union(other *Polygon) []*Polygon {
	return pg.construct(polyclip.UNION, other)
}

// Intersect returns the intersection of pg and other.
func (pg *Polygon) Intersect(other *Polygon) []*Polygon {
	return pg.construct(polyclip.INTERSECTION, other)
}

// Difference returns pg minus other.
func (pg *Polygon) Difference(other *Polygon) []*Polygon {
	return pg.construct(polyclip.DIFFERENCE, other)
}

// Xor returns the symmetric difference of pg and other.
func (pg *Polygon) Xor(other *Polygon) []*Polygon {
	return pg.construct(polyclip.XOR, other)
}

func (pg *Polygon) construct(op polyclip.Op, other *Polygon) []*Polygon {
	subject := polyclip.Polygon{pg.contour()}
	clipping := polyclip.Polygon{other.contour()}
	result := subject.Construct(op, clipping)
	out := make([]*Polygon, 0, len(result))
	for _, contour := range result {
		out = append(out, fromContour(contour))
	}
	L().Debugf("clip op %v produced %d contour(s)", op, len(out))
	return out
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, pg.N())
	for i, p := range pg.knots {
		c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return c
}

func fromContour(c polyclip.Contour) *Polygon {
	knots := make([]vecn.Point, len(c))
	for i, p := range c {
		knots[i] = vecn.P(p.X, p.Y)
	}
	return &Polygon{knots: knots, cycle: true}
}

func clone(knots []vecn.Point) []vecn.Point {
	out := make([]vecn.Point, len(knots))
	for i, p := range knots {
		out[i] = p.Clone()
	}
	return out
}

// AsString renders a polygon in MetaPost-like notation.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, p := range pg.knots {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		fmt.Fprintf(&sb, "(%s,%s)", trim(p.X()), trim(p.Y()))
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}

func trim(x float64) string {
	return fmt.Sprintf("%g", round(x))
}

func round(x float64) float64 {
	return math.Round(x*10000) / 10000
}
