package systems

import (
	"github.com/automoto/coindash/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the session frame counter that drives animation.
func UpdateClock(e *ecs.ECS) {
	if entry, ok := components.Session.First(e.World); ok {
		components.Session.Get(entry).Frame++
	}
}
