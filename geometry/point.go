// Package geometry provides the 2-D point and curve primitives that back
// lane geometry: plain points with vector helpers, and the two curve
// variants (straight, arc) used to build junction lane maps.
package geometry

import "math"

// Point is a 2-D coordinate. Values are in simulation length units.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// ApproxEqual reports whether p and q are within eps of each other on
// both axes, used by geometry tests that compare interpolated endpoints.
func (p Point) ApproxEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Bearing is an angle in radians measured the way the junction model
// defines it: 0 points along +Y ("north"), increasing clockwise towards
// +X ("east"). This matches the convention used to build Road/Arc/Tee
// junctions, where a bearing of 0 runs south-to-north.
type Bearing = float64

// Unit returns the unit vector pointing along bearing b.
func Unit(b Bearing) Point {
	return Point{X: math.Sin(b), Y: math.Cos(b)}
}

// Right returns the unit vector 90 degrees clockwise of bearing b — the
// direction from a lane's forward line to its parallel, separated
// opposite-direction lane.
func Right(b Bearing) Point {
	return Unit(b + math.Pi/2)
}

// Left returns the unit vector 90 degrees counter-clockwise of bearing b.
func Left(b Bearing) Point {
	return Unit(b - math.Pi/2)
}

// NormalizeBearing wraps b into (-pi, pi], the range Arc.Interpolate
// reports bearings in. Straight.Interpolate returns its construction
// bearing unchanged.
func NormalizeBearing(b Bearing) Bearing {
	for b > math.Pi {
		b -= 2 * math.Pi
	}
	for b <= -math.Pi {
		b += 2 * math.Pi
	}
	return b
}
