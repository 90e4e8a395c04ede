package components

import (
	"github.com/automoto/coindash/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Source       *leveldata.Source
	CurrentLevel leveldata.Level
	LevelIndex   int // 0-based
}

var Level = donburi.NewComponentType[LevelData]()
