package systems

import (
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/gamemath"
)

// stepBody applies gravity, integrates velocity and keeps the body inside
// the level horizontally. There is no vertical bound.
func stepBody(obj *components.ObjectData, physics *components.PhysicsData, levelWidth float64) {
	physics.SpeedY += physics.Gravity

	x := gamemath.Clamp(obj.X+physics.SpeedX, 0, levelWidth-obj.W)
	y := obj.Y + physics.SpeedY
	obj.SetPosition(x, y)
}
