package systems

import (
	"github.com/automoto/coindash/components"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles moves, pulls down and fades every particle, removing the
// ones that have faded out.
func UpdateParticles(ecs *ecs.ECS) {
	p := components.Session.Get(components.Session.MustFirst(ecs.World)).Settings.Particles
	var expired []*donburi.Entry

	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		particle := components.Particle.Get(e)
		if UpdateParticle(particle, p.Gravity, p.Fade) {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		ecs.World.Remove(e.Entity())
	}
}

// UpdateParticle advances one particle and reports whether it has expired.
func UpdateParticle(p *components.ParticleData, gravity, fade float64) bool {
	p.X += p.SpeedX
	p.Y += p.SpeedY
	p.SpeedY += gravity
	p.Life -= fade
	return p.Life <= 0
}
