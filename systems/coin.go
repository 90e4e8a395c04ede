package systems

import (
	"math"

	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Ticks per second of animation time
const ticksPerSecond = 60

// UpdateCoins animates every coin and removes the ones already collected.
func UpdateCoins(ecs *ecs.ECS) {
	session := components.Session.Get(components.Session.MustFirst(ecs.World))
	c := session.Settings.Coin
	var collected []*donburi.Entry

	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		obj := components.Object.Get(e)
		if UpdateCoin(coin, obj, session.Frame, c.RotationSpeed, c.FloatSpeed, c.FloatHeight) {
			collected = append(collected, e)
		}
	})

	for _, e := range collected {
		removeWithObject(ecs, e)
	}
}

// UpdateCoin spins and bobs a coin. It returns true, without animating,
// once the coin has been collected.
func UpdateCoin(coin *components.CoinData, obj *components.ObjectData, frame int, spin, floatSpeed, floatHeight float64) bool {
	if coin.Collected {
		return true
	}

	t := float64(frame)/ticksPerSecond + coin.PhaseOffset
	coin.Rotation = t * spin
	obj.SetPosition(obj.X, coin.BaseY+math.Sin(t*floatSpeed)*floatHeight)
	return false
}

// removeWithObject takes e out of the collision space and the world.
func removeWithObject(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
