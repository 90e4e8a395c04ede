package archetypes

import (
	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.State,
		components.Sprite,
		components.SquashStretch,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Sprite,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.FinishLine,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
		components.Lives,
		components.HighLevel,
		components.LevelComplete,
		components.Input,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
