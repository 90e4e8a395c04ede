// Package gamemath holds the pure geometry used by the simulation:
// rectangle overlap, penetration-based resolution and patrol stepping.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Side is the face of a solid that a box was pushed out of.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Overlaps reports whether a and b share interior area. Touching edges
// do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// Penetration returns how far box would have to move to leave solid
// through each of its faces.
func Penetration(box, solid Rect) (fromTop, fromBottom, fromLeft, fromRight float64) {
	fromTop = box.Bottom() - solid.Y
	fromBottom = solid.Bottom() - box.Y
	fromLeft = box.Right() - solid.X
	fromRight = solid.Right() - box.X
	return fromTop, fromBottom, fromLeft, fromRight
}

// Resolve pushes box out of solid along the axis of least penetration.
// Sides are tried top, bottom, left, right; the first one that both has
// the least penetration and matches the velocity (moving into that face,
// or at rest on it) wins. When none qualifies the box is returned
// unchanged with SideNone.
//
// The caller owns the velocity: zero vy on SideTop/SideBottom, vx on
// SideLeft/SideRight, and mark the body grounded on SideTop.
func Resolve(box Rect, vx, vy float64, solid Rect) (Rect, Side) {
	if !Overlaps(box, solid) {
		return box, SideNone
	}

	fromTop, fromBottom, fromLeft, fromRight := Penetration(box, solid)
	least := math.Min(math.Min(fromTop, fromBottom), math.Min(fromLeft, fromRight))

	switch {
	case least == fromTop && vy >= 0:
		box.Y = solid.Y - box.H
		return box, SideTop
	case least == fromBottom && vy <= 0:
		box.Y = solid.Bottom()
		return box, SideBottom
	case least == fromLeft && vx >= 0:
		box.X = solid.X - box.W
		return box, SideLeft
	case least == fromRight && vx <= 0:
		box.X = solid.Right()
		return box, SideRight
	}
	return box, SideNone
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
