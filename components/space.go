package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the collision broadphase shared by every object in a level.
var Space = donburi.NewComponentType[resolv.Space]()
