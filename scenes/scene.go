package scenes

import (
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/leveldata"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// GameOptions is everything a play session is started from.
type GameOptions struct {
	Settings   cfg.Settings
	Levels     []leveldata.Level // authored levels, in play order
	Seed       uint64            // seeds generated levels and cosmetic randomness
	StartLevel int               // zero-based
}
