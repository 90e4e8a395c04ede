package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/coindash/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from authored maps
const (
	GroupPlatforms  = "Platforms"
	GroupEnemies    = "Enemies"
	GroupCoins      = "Coins"
	GroupFinishLine = "FinishLine"
)

// LoadTMX parses an authored level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
//
// Platforms are rectangle objects. Enemies and coins use their object's
// top-left corner; enemies may carry optional "speed" and "moveDistance"
// float properties. The first FinishLine object's x is the level end.
func LoadTMX(fsys fs.FS, tmxPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width * levelMap.TileWidth),
	}

	foundEnd := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, gamemath.Rect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, EnemySpawn{
					X:            o.X,
					Y:            o.Y,
					Speed:        optionalFloat(o.Properties, "speed"),
					MoveDistance: optionalFloat(o.Properties, "moveDistance"),
				})
			}
		case GroupCoins:
			for _, o := range og.Objects {
				level.Coins = append(level.Coins, CoinSpawn{X: o.X, Y: o.Y})
			}
		case GroupFinishLine:
			if len(og.Objects) > 0 && !foundEnd {
				level.EndX = og.Objects[0].X
				foundEnd = true
			}
		}
	}

	if !foundEnd {
		return Level{}, fmt.Errorf("load TMX %s: no %s object", tmxPath, GroupFinishLine)
	}
	if len(level.Platforms) == 0 {
		return Level{}, fmt.Errorf("load TMX %s: no platforms", tmxPath)
	}

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and loads them
// in file name order.
func LoadAll(fsys fs.FS, levelsDir string) ([]Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]Level, 0, len(matches))
	for _, path := range matches {
		level, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// optionalFloat returns the named float property, or nil when the object
// does not set it.
func optionalFloat(props tiled.Properties, name string) *float64 {
	for _, p := range props {
		if p.Name == name {
			return Float(props.GetFloat(name))
		}
	}
	return nil
}
