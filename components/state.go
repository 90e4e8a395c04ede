package components

import (
	"github.com/automoto/coindash/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // frames spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
