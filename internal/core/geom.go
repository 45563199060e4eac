// Package core provides the platform types shared by games and hosts.
// It has no terminal dependencies so game logic stays pure and testable.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Centered returns a w x h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	cx, cy := r.Center()
	return NewRect(cx-w/2, cy-h/2, w, h)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
