package factory

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

var sprites struct {
	hero  *ebiten.Image
	enemy *ebiten.Image
}

// SetSprites installs the character images used by later spawns. A nil
// image leaves that character drawn as a solid rectangle.
func SetSprites(hero, enemy image.Image) {
	sprites.hero = toEbitenImage(hero)
	sprites.enemy = toEbitenImage(enemy)
}

func toEbitenImage(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
