package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData tracks sprite scale deformation for jump feel
type SquashStretchData struct {
	ScaleX, ScaleY float64 // current scale
	TweenX, TweenY *gween.Tween
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
