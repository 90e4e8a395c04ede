package factory

import (
	"math/rand/v2"

	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton that carries score, lives, input and
// tuning across level changes.
func CreateSession(ecs *ecs.ECS, settings cfg.Settings, seed uint64, highLevel int) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Session.SetValue(session, components.SessionData{
		Rand:     rand.New(rand.NewPCG(seed, ^seed)),
		Settings: settings,
	})
	components.Lives.SetValue(session, components.LivesData{
		Lives:    settings.Player.StartingLives,
		MaxLives: settings.Player.StartingLives,
	})
	components.HighLevel.SetValue(session, components.HighLevelData{
		Best: highLevel,
	})
	components.Audio.SetValue(session, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})

	return session
}
