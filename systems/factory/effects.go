package factory

import (
	"image/color"
	"math/rand/v2"

	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticleBurst emits the configured number of particles from (x, y),
// each drifting upward with a random spread.
func SpawnParticleBurst(ecs *ecs.ECS, x, y float64, c color.RGBA, rng *rand.Rand, p cfg.ParticleConfig) {
	for range p.BurstCount {
		entry := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(entry, components.ParticleData{
			X:      x,
			Y:      y,
			Size:   p.MinSize + rng.Float64()*p.SizeRange,
			SpeedX: (rng.Float64() - 0.5) * p.SpreadX,
			SpeedY: -rng.Float64()*p.LiftRange - p.MinLift,
			Life:   1,
			Color:  c,
		})
	}
}
