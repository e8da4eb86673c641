// Package geom supplies the geometry the turn core depends on: points,
// distances, field of view and shortest paths over an abstract grid.
package geom

import "math"

// Point is an integer grid coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Distance is the Pythagorean distance between a and b.
func Distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
