package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image    *ebiten.Image // nil draws a Fallback rectangle
	Fallback color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
