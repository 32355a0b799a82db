package geometry

import "math"

// Sense is the rotation direction of an Arc as its arc-length parameter
// increases: bearing increases with Clockwise, decreases with
// Counterclockwise.
type Sense int

const (
	Clockwise Sense = iota
	Counterclockwise
)

// Curve is the common interface implemented by the two concrete lane
// geometries, Straight and Arc. It mirrors the trait the source assigns
// to lane primitives: a fixed start/end pair, a length, and an
// arc-length parameterized interpolation that reports both position and
// tangent bearing.
type Curve interface {
	Start() Point
	End() Point
	Length() float64
	// Interpolate returns the point and tangent bearing at arc-length s,
	// which must lie in [0, Length()].
	Interpolate(s float64) (Point, Bearing)
}

// Straight is a constant-bearing line segment.
type Straight struct {
	start   Point
	bearing Bearing
	length  float64
}

// NewStraight builds a straight lane starting at start, heading along
// bearing, for the given length. length must be non-negative.
func NewStraight(start Point, bearing Bearing, length float64) Straight {
	if length < 0 {
		panic("geometry: negative straight length")
	}
	return Straight{start: start, bearing: bearing, length: length}
}

func (s Straight) Start() Point    { return s.start }
func (s Straight) Length() float64 { return s.length }

func (s Straight) End() Point {
	p, _ := s.Interpolate(s.length)
	return p
}

func (s Straight) Interpolate(arcLen float64) (Point, Bearing) {
	return s.start.Add(Unit(s.bearing).Scale(arcLen)), s.bearing
}

// Arc is a circular arc of constant radius and a fixed rotation sense.
type Arc struct {
	start         Point
	startBearing  Bearing
	radius        float64
	angularLength float64
	sense         Sense
	focus         Point
}

// NewArc builds an arc lane starting at start with the given start
// tangent bearing, turning through angularLength radians (>= 0) at the
// given radius (> 0) and rotation sense.
func NewArc(start Point, startBearing Bearing, radius, angularLength float64, sense Sense) Arc {
	if radius <= 0 {
		panic("geometry: non-positive arc radius")
	}
	if angularLength < 0 {
		panic("geometry: negative arc angular length")
	}
	a := Arc{
		start:         start,
		startBearing:  startBearing,
		radius:        radius,
		angularLength: angularLength,
		sense:         sense,
	}
	a.focus = start.Sub(a.normal(startBearing).Scale(radius))
	return a
}

// normal returns the outward radial direction (from focus to the curve
// point) for a tangent bearing b on this arc's sense.
func (a Arc) normal(b Bearing) Point {
	if a.sense == Clockwise {
		return Unit(b - math.Pi/2)
	}
	return Unit(b + math.Pi/2)
}

func (a Arc) Radius() float64 { return a.radius }
func (a Arc) Focus() Point    { return a.focus }
func (a Arc) Sense() Sense    { return a.sense }
func (a Arc) Start() Point    { return a.start }
func (a Arc) Length() float64 { return a.angularLength * a.radius }

func (a Arc) End() Point {
	p, _ := a.Interpolate(a.Length())
	return p
}

func (a Arc) EndBearing() Bearing {
	_, b := a.Interpolate(a.Length())
	return b
}

func (a Arc) Interpolate(arcLen float64) (Point, Bearing) {
	phi := arcLen / a.radius
	var b Bearing
	if a.sense == Clockwise {
		b = a.startBearing + phi
	} else {
		b = a.startBearing - phi
	}
	return a.focus.Add(a.normal(b).Scale(a.radius)), NormalizeBearing(b)
}
