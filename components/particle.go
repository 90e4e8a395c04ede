package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type ParticleData struct {
	X, Y   float64
	SpeedX float64
	SpeedY float64
	Size   float64
	Life   float64 // 1 at spawn, removed at or below 0
	Color  color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()
