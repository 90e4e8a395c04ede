package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Flag pole dimensions, measured up from the ground line
const (
	flagPoleWidth  = 10
	flagPoleHeight = 100
)

// CreateFinishLine places the level-end flag with its pole standing on groundY.
func CreateFinishLine(ecs *ecs.ECS, x, groundY float64) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)

	obj := resolv.NewObject(x, groundY-flagPoleHeight, flagPoleWidth, flagPoleHeight, tags.ResolvFinishLine)
	obj.Data = finishLine
	components.Object.SetValue(finishLine, components.ObjectData{Object: obj})

	return finishLine
}
