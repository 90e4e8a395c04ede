package components

import (
	"github.com/automoto/coindash/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [config.ActionCount]bool // Current frame's Pressed state
	Previous        [config.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod              // Most recently used input method
}

// Action returns the temporal state of an action this frame.
func (d *InputData) Action(id config.ActionID) ActionState {
	return ActionState{
		Pressed:      d.Current[id],
		JustPressed:  d.Current[id] && !d.Previous[id],
		JustReleased: !d.Current[id] && d.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()
