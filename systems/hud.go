package systems

import (
	"fmt"

	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin      = 20
	hudLineLevel   = 40
	hudLineScore   = 70
	hudLivesY      = 80
	hudLifeSize    = 30
	hudLifeSpacing = 40
)

// DrawHUD renders the level number, score, remaining lives and the best
// level reached.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	face := fonts.Bold.Get()

	text.Draw(screen, fmt.Sprintf("Level: %d", currentLevelNumber(ecs)), face, hudMargin, hudLineLevel, cfg.White)
	text.Draw(screen, fmt.Sprintf("Score: %d", session.Score), face, hudMargin, hudLineScore, cfg.White)

	if sessionEntry.HasComponent(components.Lives) {
		lives := components.Lives.Get(sessionEntry)
		for i := 0; i < lives.Lives; i++ {
			x := float32(hudMargin + i*hudLifeSpacing)
			vector.DrawFilledRect(screen, x, hudLivesY, hudLifeSize, hudLifeSize, cfg.PlayerColor, false)
		}
	}

	high := fmt.Sprintf("High Level: %d", DisplayedHighLevel(ecs))
	bounds := text.BoundString(face, high)
	text.Draw(screen, high, face, screen.Bounds().Dx()-hudMargin-bounds.Dx(), hudLineLevel, cfg.White)
}
