package systems

import (
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player OffsetX pixels from the left edge once it
// has moved past that point, bounded by the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	offset := components.Session.Get(components.Session.MustFirst(e.World)).Settings.Camera.OffsetX
	camera.Position.X = CameraX(camera.Position.X, playerObject.X, offset, currentLevelWidth(e), float64(config.C.Width))
}

// CameraX returns the next camera position. The camera only follows once
// the player is past offset; it never leaves [0, levelWidth-viewWidth].
func CameraX(current, playerX, offset, levelWidth, viewWidth float64) float64 {
	if playerX > offset {
		current = playerX - offset
	}
	return gamemath.Clamp(current, 0, levelWidth-viewWidth)
}
