package systems

import (
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	session := components.Session.Get(components.Session.MustFirst(ecs.World))
	e := session.Settings.Enemy
	frame := session.Frame

	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry)

		x, dir := gamemath.Patrol(obj.X, enemy.StartX, enemy.MoveDistance, enemy.Speed, enemy.Direction)
		enemy.Direction = dir
		enemy.BounceOffset = gamemath.Bounce(frame, e.BounceRate, e.BounceHeight)
		obj.SetPosition(x, obj.Y)
	})
}
