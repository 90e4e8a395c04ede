package components

import (
	"github.com/automoto/coindash/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// SetPosition moves the object and refreshes its place in the space.
func (o *ObjectData) SetPosition(x, y float64) {
	o.X = x
	o.Y = y
	if o.Space != nil {
		o.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()
