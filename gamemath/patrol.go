package gamemath

import "math"

// Patrol advances x by speed in direction and keeps it within distance of
// origin. Reaching past a boundary snaps x onto it and reverses direction.
func Patrol(x, origin, distance, speed, direction float64) (newX, newDirection float64) {
	x += speed * direction
	switch {
	case x > origin+distance:
		return origin + distance, -1
	case x < origin-distance:
		return origin - distance, 1
	}
	return x, direction
}

// Bounce is the cosmetic vertical bob for a patrolling body.
func Bounce(frame int, rate, height float64) float64 {
	return math.Sin(float64(frame)*rate) * height
}
