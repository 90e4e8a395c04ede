package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/leveldata"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a patroller. Spawn speed and distance override the
// configured defaults when set, including when set to zero.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn, e cfg.EnemyConfig) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, e.Width, e.Height, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	AddToSpace(ecs, obj)

	speed := e.Speed
	if spawn.Speed != nil {
		speed = *spawn.Speed
	}
	distance := e.MoveDistance
	if spawn.MoveDistance != nil {
		distance = *spawn.MoveDistance
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed:        speed,
		Direction:    cfg.DirectionRight,
		StartX:       spawn.X,
		MoveDistance: distance,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Image:    sprites.enemy,
		Fallback: cfg.EnemyColor,
	})

	return enemy
}
