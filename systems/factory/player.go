package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, settings cfg.Settings) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	p := settings.Player

	obj := resolv.NewObject(p.SpawnX, p.SpawnY, p.Width, p.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	AddToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction:   cfg.DirectionRight,
		Speed:       p.Speed,
		JumpImpulse: p.JumpImpulse,
		SpawnX:      p.SpawnX,
		SpawnY:      p.SpawnY,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.Idle,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: settings.Physics.Gravity,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Image:    sprites.hero,
		Fallback: cfg.PlayerColor,
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX: 1,
		ScaleY: 1,
	})

	return player
}
