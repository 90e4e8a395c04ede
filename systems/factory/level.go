package factory

import (
	"math"

	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/leveldata"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// Collision space cell size in pixels
const spaceCellSize = 16

// CreateLevelAtIndex spawns the level singleton and populates the world
// with the level at levelIndex.
func CreateLevelAtIndex(ecs *ecs.ECS, source *leveldata.Source, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Source: source,
	})

	LoadLevel(ecs, levelIndex)
	return level
}

// LoadLevel replaces every per-level entity with the contents of the level
// at levelIndex and resets the camera and completion state. Score and lives
// are left untouched.
func LoadLevel(ecs *ecs.ECS, levelIndex int) {
	levelEntry := components.Level.MustFirst(ecs.World)
	levelData := components.Level.Get(levelEntry)
	session := components.Session.Get(components.Session.MustFirst(ecs.World))
	settings := session.Settings

	clearLevelEntities(ecs)

	if levelIndex < 0 {
		levelIndex = 0
	}
	def := levelData.Source.Level(levelIndex)
	levelData.LevelIndex = levelIndex
	levelData.CurrentLevel = def

	height := max(cfg.C.Height, int(settings.Generator.GroundY+settings.Generator.GroundHeight))
	CreateSpace(ecs, int(math.Ceil(def.Width)), height, spaceCellSize, spaceCellSize)

	for _, r := range def.Platforms {
		CreatePlatform(ecs, r)
	}
	for _, spawn := range def.Enemies {
		CreateEnemy(ecs, spawn, settings.Enemy)
	}
	for _, spawn := range def.Coins {
		CreateCoin(ecs, spawn, settings.Coin.Size, session.Rand.Float64()*2*math.Pi)
	}
	CreateFinishLine(ecs, def.EndX, settings.Generator.GroundY)
	CreatePlayer(ecs, settings)

	if entry, ok := components.Camera.First(ecs.World); ok {
		components.Camera.Get(entry).Position.X = 0
	}
	if entry, ok := components.LevelComplete.First(ecs.World); ok {
		components.LevelComplete.SetValue(entry, components.LevelCompleteData{})
	}
}

// clearLevelEntities removes everything that belongs to a single level,
// including the collision space.
func clearLevelEntities(ecs *ecs.ECS) {
	perLevel := filter.Or(
		filter.Contains(tags.Player),
		filter.Contains(tags.Platform),
		filter.Contains(tags.Enemy),
		filter.Contains(tags.Coin),
		filter.Contains(tags.Particle),
		filter.Contains(tags.FinishLine),
		filter.Contains(components.Space),
	)

	var stale []*donburi.Entry
	donburi.NewQuery(perLevel).Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		ecs.World.Remove(e.Entity())
	}
}
