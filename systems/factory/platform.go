package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	AddToSpace(ecs, object)

	return platform
}
