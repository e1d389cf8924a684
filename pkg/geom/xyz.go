package geom

import (
	"fmt"
	"math"
)

// XYZ represents a point or vector in 3D space.
type XYZ struct {
	X, Y, Z float64
}

var (
	Zero  = XYZ{}
	XAxis = XYZ{X: 1}
	YAxis = XYZ{Y: 1}
	ZAxis = XYZ{Z: 1}
)

// New creates a point from its coordinates.
func New(x, y, z float64) XYZ {
	return XYZ{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum.
func (p XYZ) Add(o XYZ) XYZ {
	return XYZ{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Sub returns the component-wise difference.
func (p XYZ) Sub(o XYZ) XYZ {
	return XYZ{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Scale multiplies every component by f.
func (p XYZ) Scale(f float64) XYZ {
	return XYZ{p.X * f, p.Y * f, p.Z * f}
}

// Dot returns the scalar product.
func (p XYZ) Dot(o XYZ) float64 {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

// Cross returns the vector product.
func (p XYZ) Cross(o XYZ) XYZ {
	return XYZ{
		X: p.Y*o.Z - p.Z*o.Y,
		Y: p.Z*o.X - p.X*o.Z,
		Z: p.X*o.Y - p.Y*o.X,
	}
}

// Length returns the Euclidean norm.
func (p XYZ) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

// Distance returns the Euclidean distance to another point.
func (p XYZ) Distance(o XYZ) float64 {
	return p.Sub(o).Length()
}

// Normalize returns the unit vector in the direction of p.
// The zero vector is returned unchanged.
func (p XYZ) Normalize() XYZ {
	l := p.Length()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

// Equal reports exact component equality.
func (p XYZ) Equal(o XYZ) bool {
	return p == o
}

// IsFinite reports whether no component is NaN or infinite.
func (p XYZ) IsFinite() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Array returns the components as a fixed-size array.
func (p XYZ) Array() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

// FromArray builds a point from a fixed-size array.
func FromArray(a [3]float64) XYZ {
	return XYZ{X: a[0], Y: a[1], Z: a[2]}
}

func (p XYZ) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
