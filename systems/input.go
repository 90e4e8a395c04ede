package systems

import (
	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the session's InputData.
// Must run BEFORE every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	PollInput(components.Input.Get(entry))
}

// PollInput advances input by one frame and records which actions are held.
func PollInput(input *components.InputData) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
		gamepadUsed = true
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return left, right
}

// GetAction returns the temporal state of an action from the session input.
func GetAction(ecs *ecs.ECS, action cfg.ActionID) components.ActionState {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return components.ActionState{}
	}
	return components.Input.Get(entry).Action(action)
}
