// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D coordinate or velocity in world units (pixels).
type Vec2 struct {
	X, Y float64
}

// Dimensions is the size of a hitbox or sprite in world units.
type Dimensions struct {
	Width  float64
	Height float64
}

// Box is an axis-aligned hitbox in world units.
// Y grows downward, so Top < Bottom.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox builds a hitbox from a position and a size.
func NewBox(pos Vec2, dim Dimensions) Box {
	return Box{X: pos.X, Y: pos.Y, W: dim.Width, H: dim.Height}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Inset shrinks the box by dx on the left and right and dy on the top and bottom.
func (b Box) Inset(dx, dy float64) Box {
	return Box{X: b.X + dx, Y: b.Y + dy, W: b.W - 2*dx, H: b.H - 2*dy}
}

// Overlaps reports whether two boxes share any point. Touching edges count
// as overlap.
func (b Box) Overlaps(other Box) bool {
	return !(b.Right() < other.X ||
		b.X > other.Right() ||
		b.Bottom() < other.Y ||
		b.Y > other.Bottom())
}

// Rect is an integer rectangle in screen cells.
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

// Scale maps world coordinates onto a screen of cells.
type Scale struct {
	worldW, worldH float64
	cellsX, cellsY float64
}

// NewScale returns the scale that fits a world of worldW x worldH units onto
// a screen of screenW x screenH cells.
func NewScale(worldW, worldH float64, screenW, screenH int) Scale {
	if worldW <= 0 || worldH <= 0 {
		return Scale{}
	}
	return Scale{worldW: worldW, worldH: worldH, cellsX: float64(screenW), cellsY: float64(screenH)}
}

func (s Scale) col(x float64) float64 {
	if s.worldW == 0 {
		return 0
	}
	return x * s.cellsX / s.worldW
}

func (s Scale) row(y float64) float64 {
	if s.worldH == 0 {
		return 0
	}
	return y * s.cellsY / s.worldH
}

// Rect converts a world box to the covering cell rectangle. Any box with a
// positive area covers at least one cell.
func (s Scale) Rect(b Box) Rect {
	x0 := int(math.Floor(s.col(b.X)))
	y0 := int(math.Floor(s.row(b.Y)))
	x1 := int(math.Ceil(s.col(b.Right())))
	y1 := int(math.Ceil(s.row(b.Bottom())))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// Row converts a world y-coordinate to a screen row.
func (s Scale) Row(y float64) int {
	return int(math.Floor(s.row(y)))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
