package systems

import (
	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/systems/factory"
	"github.com/automoto/coindash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves the player against platforms, then checks
// enemy contact and coin pickup. Candidates come from the collision space;
// the rectangle test decides.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolvePlatforms(physics, obj)

		if touchingEnemy(obj) || fellOut(ecs, obj) {
			respawnPlayer(ecs, e)
		}

		collectCoins(ecs, obj)
	})
}

// resolvePlatforms pushes the body out of each overlapping platform in a
// single pass.
func resolvePlatforms(physics *components.PhysicsData, obj *components.ObjectData) {
	physics.Grounded = false

	for _, solid := range candidates(obj, tags.ResolvSolid) {
		box, side := gamemath.Resolve(obj.Rect(), physics.SpeedX, physics.SpeedY, rectOf(solid))
		switch side {
		case gamemath.SideTop:
			physics.SpeedY = 0
			physics.Grounded = true
		case gamemath.SideBottom:
			physics.SpeedY = 0
		case gamemath.SideLeft, gamemath.SideRight:
			physics.SpeedX = 0
		default:
			continue
		}
		obj.SetPosition(box.X, box.Y)
	}
}

func touchingEnemy(obj *components.ObjectData) bool {
	box := obj.Rect()
	for _, enemy := range candidates(obj, tags.ResolvEnemy) {
		if gamemath.Overlaps(box, rectOf(enemy)) {
			return true
		}
	}
	return false
}

// fellOut reports a player below the viewport when the fall-out rule is on.
func fellOut(ecs *ecs.ECS, obj *components.ObjectData) bool {
	rules := components.Session.Get(components.Session.MustFirst(ecs.World)).Settings.Rules
	return rules.FallRespawn && obj.Y > float64(cfg.C.Height)
}

// respawnPlayer sends the player back to the level start and snaps the
// camera home. Lives and velocity are left as they are.
func respawnPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	components.Object.Get(e).SetPosition(player.SpawnX, player.SpawnY)

	if entry, ok := components.Camera.First(ecs.World); ok {
		components.Camera.Get(entry).Position.X = 0
	}
	PlaySFX(ecs, cfg.SoundHit)
}

// collectCoins picks up every coin the player overlaps, newest first.
func collectCoins(ecs *ecs.ECS, obj *components.ObjectData) {
	box := obj.Rect()
	coins := candidates(obj, tags.ResolvCoin)
	for i := len(coins) - 1; i >= 0; i-- {
		coinObj := coins[i]
		if !gamemath.Overlaps(box, rectOf(coinObj)) {
			continue
		}
		entry, ok := coinObj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		pickUpCoin(ecs, entry)
	}
}

func pickUpCoin(ecs *ecs.ECS, e *donburi.Entry) {
	coin := components.Coin.Get(e)
	if coin.Collected {
		return
	}
	coin.Collect()

	sessionEntry := components.Session.MustFirst(ecs.World)
	session := components.Session.Get(sessionEntry)
	session.Score++

	obj := components.Object.Get(e)
	factory.SpawnParticleBurst(ecs, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.CoinOuter, session.Rand, session.Settings.Particles)
	PlaySFX(ecs, cfg.SoundCoin)

	removeWithObject(ecs, e)
}

// candidateProbes pad the broadphase query by a pixel on every side. The
// space maps an object to cells from its last whole pixel, so an overlap
// under a pixel that crosses a cell boundary is otherwise missed.
var candidateProbes = [...][2]float64{{0, 0}, {0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// candidates returns the objects tagged tag that share a cell with obj or
// lie within a pixel of it, each once, in the order the space reports them.
func candidates(obj *components.ObjectData, tag string) []*resolv.Object {
	var found []*resolv.Object
	seen := map[*resolv.Object]bool{}

	for _, probe := range candidateProbes {
		check := obj.Check(probe[0], probe[1], tag)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tag) {
			if seen[o] {
				continue
			}
			seen[o] = true
			found = append(found, o)
		}
	}
	return found
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
