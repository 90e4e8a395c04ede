package systems

import (
	"fmt"

	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/fonts"
	"github.com/automoto/coindash/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateLevelAdvance moves on to the next level once the current one is
// complete and advance is pressed. It runs even while gameplay is frozen.
func UpdateLevelAdvance(e *ecs.ECS) {
	if !IsLevelComplete(e) {
		return
	}
	if !GetAction(e, cfg.ActionAdvance).JustPressed {
		return
	}
	AdvanceLevel(e)
}

// AdvanceLevel loads the level after the current one. Score carries over.
func AdvanceLevel(e *ecs.ECS) {
	levelData := components.Level.Get(components.Level.MustFirst(e.World))
	factory.LoadLevel(e, levelData.LevelIndex+1)
	PlaySFX(e, cfg.SoundMenuSelect)
}

// DrawLevelComplete renders the level or game complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	overlay := cfg.LevelComplete.OverlayColor
	title := fmt.Sprintf(cfg.LevelComplete.Title, currentLevelNumber(e))
	msg := cfg.LevelComplete.ContinueHint
	if levelComplete.Outcome == cfg.OutcomeGameComplete {
		overlay = cfg.LevelComplete.FinalOverlayColor
		title = cfg.LevelComplete.FinalTitle
		msg = cfg.LevelComplete.FinalMessage
	}

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlay, false)

	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2), cfg.LevelComplete.TextColor)

	msgFont := fonts.Bold.Get()
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(height/2)+50, cfg.LevelComplete.TextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

func currentLevelNumber(e *ecs.ECS) int {
	if entry, ok := components.Level.First(e.World); ok {
		return components.Level.Get(entry).LevelIndex + 1
	}
	return 1
}
