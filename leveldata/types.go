// Package leveldata describes level layouts: authored TMX maps and
// procedurally generated ones. It has no dependencies on ebitengine,
// donburi, or resolv. Pure data only.
package leveldata

import "github.com/automoto/coindash/gamemath"

// Level is everything needed to populate a world for one level.
type Level struct {
	Name      string
	Width     float64
	EndX      float64
	Platforms []gamemath.Rect
	Enemies   []EnemySpawn
	Coins     []CoinSpawn

	// Generated is true for levels past the authored set.
	Generated bool
	// Difficulty counts generated levels: 0 for authored levels and the
	// first generated one, then 1, 2, ...
	Difficulty int
}

// EnemySpawn is a patrolling enemy's start position. A nil Speed or
// MoveDistance uses the configured default; zero is a valid value.
type EnemySpawn struct {
	X, Y         float64
	Speed        *float64
	MoveDistance *float64
}

// Float returns a pointer to v, for the optional spawn fields.
func Float(v float64) *float64 {
	return &v
}

// CoinSpawn is a coin's top-left corner.
type CoinSpawn struct {
	X, Y float64
}
