package components

import (
	"github.com/automoto/coindash/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a tick (singleton component)
type AudioData struct {
	PendingSFX []config.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
