package components

import (
	"github.com/automoto/coindash/config"
	"github.com/yohamta/donburi"
)

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool
	Outcome    config.Outcome
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
