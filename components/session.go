package components

import (
	"math/rand/v2"

	"github.com/automoto/coindash/config"
	"github.com/yohamta/donburi"
)

// SessionData is per-run state that survives level changes.
type SessionData struct {
	Score int
	Frame int // ticks since the session started

	// Rand drives cosmetic randomness (particles, coin phases)
	Rand *rand.Rand

	Settings config.Settings
}

var Session = donburi.NewComponentType[SessionData]()
