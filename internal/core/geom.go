// Package core provides fundamental types and utilities shared by the game
// and the terminal platform. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an integer, cell-aligned rectangle used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a point or direction in world space (pixels, Y grows downward).
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Box is an axis-aligned world rectangle stored by its center,
// matching how platforms and bodies are positioned.
type Box struct {
	Center Vec
	W, H   float64
}

// BoxAt creates a box centered on (x, y).
func BoxAt(x, y, w, h float64) Box {
	return Box{Center: Vec{X: x, Y: y}, W: w, H: h}
}

// Left returns the x of the left edge.
func (b Box) Left() float64 { return b.Center.X - b.W/2 }

// Right returns the x of the right edge.
func (b Box) Right() float64 { return b.Center.X + b.W/2 }

// Top returns the y of the top edge.
func (b Box) Top() float64 { return b.Center.Y - b.H/2 }

// Bottom returns the y of the bottom edge.
func (b Box) Bottom() float64 { return b.Center.Y + b.H/2 }

// Overlaps reports whether two boxes share any interior area.
func (b Box) Overlaps(o Box) bool {
	if b.Left() >= o.Right() || o.Left() >= b.Right() {
		return false
	}
	if b.Top() >= o.Bottom() || o.Top() >= b.Bottom() {
		return false
	}
	return true
}

// ContainsPoint reports whether p lies inside the box (edges inclusive).
func (b Box) ContainsPoint(p Vec) bool {
	return p.X >= b.Left() && p.X <= b.Right() && p.Y >= b.Top() && p.Y <= b.Bottom()
}

// SegmentIntersectsBox reports whether the segment a→b touches the box.
// Liang-Barsky clipping against the four slabs.
func SegmentIntersectsBox(a, b Vec, box Box) bool {
	t0, t1 := 0.0, 1.0
	d := b.Sub(a)

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}

	return clip(-d.X, a.X-box.Left()) &&
		clip(d.X, box.Right()-a.X) &&
		clip(-d.Y, a.Y-box.Top()) &&
		clip(d.Y, box.Bottom()-a.Y)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or +1.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
