package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/leveldata"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCoin spawns a coin. phase desynchronizes its spin and float from
// its neighbours.
func CreateCoin(ecs *ecs.ECS, spawn leveldata.CoinSpawn, size, phase float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, size, size, tags.ResolvCoin)
	obj.Data = coin
	components.Object.SetValue(coin, components.ObjectData{Object: obj})
	AddToSpace(ecs, obj)

	components.Coin.SetValue(coin, components.CoinData{
		BaseY:       spawn.Y,
		PhaseOffset: phase,
	})

	return coin
}
