package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Intent for this frame, written by the input system
	MoveLeft  bool
	MoveRight bool

	Direction   float64 // -1 facing left, 1 facing right
	Speed       float64
	JumpImpulse float64

	// Where enemy contact sends the player
	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
