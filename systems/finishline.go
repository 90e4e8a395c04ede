package systems

import (
	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelProgress completes the level once the player reaches its end x.
func UpdateLevelProgress(ecs *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(ecs)
	if levelComplete.IsComplete {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(components.Level.MustFirst(ecs.World))

	if components.Object.Get(playerEntry).X < levelData.CurrentLevel.EndX {
		return
	}

	levelComplete.IsComplete = true
	levelComplete.Outcome = cfg.OutcomeLevelComplete
	if levelData.Source.IsFinalAuthored(levelData.LevelIndex) {
		levelComplete.Outcome = cfg.OutcomeGameComplete
	}

	if entry, ok := tags.FinishLine.First(ecs.World); ok {
		components.FinishLine.Get(entry).Activated = true
	}
	PlaySFX(ecs, cfg.SoundLevelComplete)
}
