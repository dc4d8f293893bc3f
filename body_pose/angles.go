package bodypose

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// JointAngle returns the angle in degrees at vertex between the segments
// vertex→a and vertex→c. The result is in [0, 180], rounded to one
// decimal. Coincident points or non-finite coordinates yield
// ErrDegenerateAngle rather than NaN.
func JointAngle(a, vertex, c r3.Vector) (float64, error) {
	v1 := a.Sub(vertex)
	v2 := c.Sub(vertex)

	n1 := v1.Norm()
	n2 := v2.Norm()
	if n1 == 0 || n2 == 0 {
		return 0, ErrDegenerateAngle
	}

	cos := v1.Dot(v2) / (n1 * n2)
	if math.IsNaN(cos) || math.IsInf(cos, 0) {
		return 0, ErrDegenerateAngle
	}
	return degreesFromCos(cos), nil
}

// PlanarAngle is the 2-D variant of JointAngle for call sites that project
// landmarks onto the image plane.
func PlanarAngle(a, vertex, c r2.Point) (float64, error) {
	v1 := a.Sub(vertex)
	v2 := c.Sub(vertex)

	n1 := v1.Norm()
	n2 := v2.Norm()
	if n1 == 0 || n2 == 0 {
		return 0, ErrDegenerateAngle
	}

	cos := v1.Dot(v2) / (n1 * n2)
	if math.IsNaN(cos) || math.IsInf(cos, 0) {
		return 0, ErrDegenerateAngle
	}
	return degreesFromCos(cos), nil
}

// degreesFromCos converts a cosine to degrees, clamping against floating
// point overshoot at near-parallel vectors.
func degreesFromCos(cos float64) float64 {
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	deg := math.Acos(cos) * 180.0 / math.Pi
	return roundTo(deg, 1)
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// midpoint returns the point halfway between two landmarks. Used for
// virtual joints like the lumbar vertex (hip midpoint).
func midpoint(a, b r3.Vector) r3.Vector {
	return a.Add(b).Mul(0.5)
}
