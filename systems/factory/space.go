package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// AddToSpace registers obj with the level's collision space, if there is one.
func AddToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if entry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(entry).Add(obj)
	}
}
