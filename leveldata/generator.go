package leveldata

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/automoto/coindash/gamemath"
)

// GeneratorConfig drives procedural levels past the authored set.
// Counts grow as Base + floor(PerLevel * levelNumber).
type GeneratorConfig struct {
	LevelWidth float64 `toml:"level_width"`
	EndX       float64 `toml:"end_x"`

	GroundY      float64 `toml:"ground_y"`
	GroundHeight float64 `toml:"ground_height"`

	PlatformBase     int     `toml:"platform_base"`
	PlatformPerLevel float64 `toml:"platform_per_level"`
	PlatformMinX     float64 `toml:"platform_min_x"`
	PlatformRangeX   float64 `toml:"platform_range_x"`
	PlatformMinY     float64 `toml:"platform_min_y"`
	PlatformRangeY   float64 `toml:"platform_range_y"`
	PlatformMinWidth float64 `toml:"platform_min_width"`
	PlatformRangeW   float64 `toml:"platform_range_width"`
	PlatformHeight   float64 `toml:"platform_height"`
	EnemyBase        int     `toml:"enemy_base"`
	EnemyPerLevel    float64 `toml:"enemy_per_level"`
	EnemyMinX        float64 `toml:"enemy_min_x"`
	EnemyRangeX      float64 `toml:"enemy_range_x"`
	EnemyMinY        float64 `toml:"enemy_min_y"`
	EnemyRangeY      float64 `toml:"enemy_range_y"`
	CoinBase         int     `toml:"coin_base"`
	CoinPerLevel     float64 `toml:"coin_per_level"`
	CoinMinX         float64 `toml:"coin_min_x"`
	CoinRangeX       float64 `toml:"coin_range_x"`
	CoinMinY         float64 `toml:"coin_min_y"`
	CoinRangeY       float64 `toml:"coin_range_y"`
	EnemySpeedBase   float64 `toml:"enemy_speed_base"`
	EnemySpeedStep   float64 `toml:"enemy_speed_step"`
	EnemyPatrolBase  float64 `toml:"enemy_patrol_base"`
	EnemyPatrolStep  float64 `toml:"enemy_patrol_step"`
}

// DefaultGeneratorConfig returns the stock generator tuning.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		LevelWidth:       3000,
		EndX:             2800,
		GroundY:          350,
		GroundHeight:     50,
		PlatformBase:     10,
		PlatformPerLevel: 0.5,
		PlatformMinX:     300,
		PlatformRangeX:   2400,
		PlatformMinY:     150,
		PlatformRangeY:   150,
		PlatformMinWidth: 100,
		PlatformRangeW:   150,
		PlatformHeight:   20,
		EnemyBase:        5,
		EnemyPerLevel:    0.3,
		EnemyMinX:        400,
		EnemyRangeX:      2200,
		EnemyMinY:        100,
		EnemyRangeY:      200,
		CoinBase:         15,
		CoinPerLevel:     0.5,
		CoinMinX:         300,
		CoinRangeX:       2400,
		CoinMinY:         100,
		CoinRangeY:       200,
		EnemySpeedBase:   2,
		EnemySpeedStep:   0.5,
		EnemyPatrolBase:  100,
		EnemyPatrolStep:  20,
	}
}

// Counts returns how many platforms (excluding the ground), enemies and
// coins a generated level with the given 1-based number holds.
func (g GeneratorConfig) Counts(levelNumber int) (platforms, enemies, coins int) {
	n := float64(levelNumber)
	platforms = g.PlatformBase + int(math.Floor(n*g.PlatformPerLevel))
	enemies = g.EnemyBase + int(math.Floor(n*g.EnemyPerLevel))
	coins = g.CoinBase + int(math.Floor(n*g.CoinPerLevel))
	return platforms, enemies, coins
}

// Generate builds the level at index, which lies past the authored levels.
// The ground slab always comes first. Enemy speed and patrol width grow
// with each generated level. All randomness is drawn from rng, so a seeded
// source reproduces the same layout.
func Generate(index, authored int, rng *rand.Rand, g GeneratorConfig) Level {
	platformCount, enemyCount, coinCount := g.Counts(index + 1)
	difficulty := max(index-authored, 0)

	level := Level{
		Name:       fmt.Sprintf("generated-%d", index+1),
		Width:      g.LevelWidth,
		EndX:       g.EndX,
		Generated:  true,
		Difficulty: difficulty,
		Platforms:  make([]gamemath.Rect, 0, platformCount+1),
		Enemies:    make([]EnemySpawn, 0, enemyCount),
		Coins:      make([]CoinSpawn, 0, coinCount),
	}

	level.Platforms = append(level.Platforms, gamemath.Rect{
		X: 0,
		Y: g.GroundY,
		W: g.LevelWidth,
		H: g.GroundHeight,
	})

	for range platformCount {
		level.Platforms = append(level.Platforms, gamemath.Rect{
			X: g.PlatformMinX + rng.Float64()*g.PlatformRangeX,
			Y: g.PlatformMinY + rng.Float64()*g.PlatformRangeY,
			W: g.PlatformMinWidth + rng.Float64()*g.PlatformRangeW,
			H: g.PlatformHeight,
		})
	}

	speed := g.EnemySpeedBase + float64(difficulty)*g.EnemySpeedStep
	patrol := g.EnemyPatrolBase + float64(difficulty)*g.EnemyPatrolStep
	for range enemyCount {
		level.Enemies = append(level.Enemies, EnemySpawn{
			X:            g.EnemyMinX + rng.Float64()*g.EnemyRangeX,
			Y:            g.EnemyMinY + rng.Float64()*g.EnemyRangeY,
			Speed:        Float(speed),
			MoveDistance: Float(patrol),
		})
	}

	for range coinCount {
		level.Coins = append(level.Coins, CoinSpawn{
			X: g.CoinMinX + rng.Float64()*g.CoinRangeX,
			Y: g.CoinMinY + rng.Float64()*g.CoinRangeY,
		})
	}

	return level
}
