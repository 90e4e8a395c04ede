package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
}

var Lives = donburi.NewComponentType[LivesData]()

// HighLevelData caches the best 1-based level reached across sessions
type HighLevelData struct {
	Best int
}

var HighLevel = donburi.NewComponentType[HighLevelData]()
