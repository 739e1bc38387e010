// Package physics provides the steering and rotation math shared by game objects.
package physics

import "math"

// RotatePoint rotates (x, y) around the origin by angle degrees,
// counter-clockwise as seen on a y-down screen.
func RotatePoint(x, y, angle float64) (float64, float64) {
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return x*cos + y*sin, -x*sin + y*cos
}
