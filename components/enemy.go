package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Speed     float64
	Direction float64 // -1 or 1

	// Patrol is confined to [StartX-MoveDistance, StartX+MoveDistance]
	StartX       float64
	MoveDistance float64

	BounceOffset float64 // cosmetic; never affects collision
}

var Enemy = donburi.NewComponentType[EnemyData]()
