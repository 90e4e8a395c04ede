package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	Grounded bool // resting on top of a platform this frame
}

var Physics = donburi.NewComponentType[PhysicsData]()
