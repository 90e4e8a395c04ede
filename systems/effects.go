package systems

import (
	"github.com/automoto/coindash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSquashStretch eases sprite scale back to normal after a jump
func UpdateSquashStretch(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		if ss.TweenX != nil {
			v, done := ss.TweenX.Update(1)
			ss.ScaleX = float64(v)
			if done {
				ss.TweenX = nil
				ss.ScaleX = 1
			}
		}
		if ss.TweenY != nil {
			v, done := ss.TweenY.Update(1)
			ss.ScaleY = float64(v)
			if done {
				ss.TweenY = nil
				ss.ScaleY = 1
			}
		}
	})
}
