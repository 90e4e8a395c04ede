package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/fonts"
	"github.com/automoto/coindash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	enemyQuery    = donburi.NewQuery(filter.Contains(tags.Enemy))
	platformQuery = donburi.NewQuery(filter.Contains(tags.Platform))
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	camX := cameraX(ecs)
	face := fonts.Regular.Get()

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(playerEntry)
		text.Draw(screen, fmt.Sprintf("Player: %.0f, %.0f", obj.X, obj.Y), face, hudMargin, 120, cfg.DebugYellow)
	}
	text.Draw(screen, fmt.Sprintf("Camera: %.0f", camX), face, hudMargin, 140, cfg.DebugYellow)
	text.Draw(screen, fmt.Sprintf("Enemies: %d", enemyQuery.Count(ecs.World)), face, hudMargin, 160, cfg.DebugYellow)
	text.Draw(screen, fmt.Sprintf("Platforms: %d", platformQuery.Count(ecs.World)), face, hudMargin, 180, cfg.DebugYellow)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width := float64(screen.Bounds().Dx())

	for _, obj := range space.Objects() {
		if obj.X+obj.W < camX || obj.X > camX+width {
			continue
		}

		c := color.RGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = cfg.DebugRed
		case obj.HasTags(tags.ResolvCoin):
			c = cfg.DebugYellow
		}
		vector.StrokeRect(screen, float32(obj.X-camX), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
