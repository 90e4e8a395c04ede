package systems

import (
	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	levelWidth := currentLevelWidth(ecs)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry, levelWidth)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, levelWidth float64) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	player.MoveLeft = GetAction(ecs, cfg.ActionMoveLeft).Pressed
	player.MoveRight = GetAction(ecs, cfg.ActionMoveRight).Pressed
	if GetAction(ecs, cfg.ActionJump).JustPressed {
		Jump(ecs, playerEntry)
	}

	setState(state, AnimationStateFor(physics.Grounded, player.MoveLeft, player.MoveRight))
	handleMovement(player, physics)
	stepBody(obj, physics, levelWidth)
}

// AnimationStateFor derives the player's state from its contact and intent.
func AnimationStateFor(grounded, left, right bool) cfg.StateID {
	switch {
	case !grounded:
		return cfg.Jumping
	case left || right:
		return cfg.Walking
	default:
		return cfg.Idle
	}
}

func setState(state *components.StateData, next cfg.StateID) {
	if state.CurrentState == next {
		state.StateTimer++
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

// handleMovement snaps horizontal speed to the intent. Left wins when both
// directions are held.
func handleMovement(player *components.PlayerData, physics *components.PhysicsData) {
	switch {
	case player.MoveLeft:
		physics.SpeedX = -player.Speed
		player.Direction = cfg.DirectionLeft
	case player.MoveRight:
		physics.SpeedX = player.Speed
		player.Direction = cfg.DirectionRight
	default:
		physics.SpeedX = 0
	}
}

// Jump launches a grounded player. Airborne players are unaffected.
func Jump(ecs *ecs.ECS, playerEntry *donburi.Entry) bool {
	physics := components.Physics.Get(playerEntry)
	if !physics.Grounded {
		return false
	}

	physics.SpeedY = components.Player.Get(playerEntry).JumpImpulse
	physics.Grounded = false

	if playerEntry.HasComponent(components.SquashStretch) {
		startJumpSquash(ecs, components.SquashStretch.Get(playerEntry))
	}
	PlaySFX(ecs, cfg.SoundJump)
	return true
}

func startJumpSquash(ecs *ecs.ECS, ss *components.SquashStretchData) {
	s := components.Session.Get(components.Session.MustFirst(ecs.World)).Settings.SquashStretch
	frames := float32(s.Frames)

	ss.ScaleX = s.JumpScaleX
	ss.ScaleY = s.JumpScaleY
	ss.TweenX = gween.New(float32(s.JumpScaleX), 1, frames, ease.OutQuad)
	ss.TweenY = gween.New(float32(s.JumpScaleY), 1, frames, ease.OutQuad)
}

func currentLevelWidth(ecs *ecs.ECS) float64 {
	if entry, ok := components.Level.First(ecs.World); ok {
		return components.Level.Get(entry).CurrentLevel.Width
	}
	return float64(cfg.C.Width)
}
