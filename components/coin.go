package components

import (
	"github.com/yohamta/donburi"
)

type CoinData struct {
	BaseY       float64
	Collected   bool
	Rotation    float64 // radians
	PhaseOffset float64 // seconds added to the animation clock
}

// Collect marks the coin as taken. It cannot be undone.
func (c *CoinData) Collect() {
	c.Collected = true
}

var Coin = donburi.NewComponentType[CoinData]()
