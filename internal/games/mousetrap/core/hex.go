// Package core provides the pure simulation logic for MouseTrap: hex board
// generation, adjacency queries, the mouse agent and the session state machine.
// It has no terminal or rendering dependencies.
package core

import "math"

const sqrt3 = 1.7320508075688772

// Point is a position in world space. The board origin is (0, 0) and Y grows upward.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Axial is a flat-top hex coordinate (q, r). The third cube coordinate is -q-r.
type Axial struct {
	Q, R int
}

// Ring returns the hex distance from the origin.
func (a Axial) Ring() int {
	q, r, s := abs(a.Q), abs(a.R), abs(-a.Q-a.R)
	return max(q, r, s)
}

// Row returns the doubled-height row of the coordinate, growing upward.
// Vertically adjacent cells differ by 2, diagonal neighbors by 1.
func (a Axial) Row() int {
	return 2*a.R + a.Q
}

// spiralSteps are the unit moves of the spiral generator on a flat-top lattice,
// in emission order: down-right, down, down-left, up-left, up, up-right.
var spiralSteps = [6]Point{
	{X: 1.5, Y: -sqrt3 * 0.5},
	{X: 0, Y: -sqrt3},
	{X: -1.5, Y: -sqrt3 * 0.5},
	{X: -1.5, Y: sqrt3 * 0.5},
	{X: 0, Y: sqrt3},
	{X: 1.5, Y: sqrt3 * 0.5},
}

// stepUp is the index of the "up" move after which each ring emits its extra cell.
const stepUp = 4

// PointToAxial converts a world position to the nearest axial coordinate
// for a lattice with the given hex side.
func PointToAxial(p Point, side float64) Axial {
	fq := p.X / (1.5 * side)
	fr := p.Y/(sqrt3*side) - fq/2
	return roundAxial(fq, fr)
}

// AxialToPoint converts an axial coordinate to its world position.
func AxialToPoint(a Axial, side float64) Point {
	return Point{
		X: side * 1.5 * float64(a.Q),
		Y: side * sqrt3 * (float64(a.R) + float64(a.Q)/2),
	}
}

// roundAxial performs cube rounding of fractional axial coordinates.
func roundAxial(fq, fr float64) Axial {
	fs := -fq - fr
	q, r, s := math.Round(fq), math.Round(fr), math.Round(fs)

	dq, dr, ds := math.Abs(q-fq), math.Abs(r-fr), math.Abs(s-fs)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Axial{Q: int(q), R: int(r)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
