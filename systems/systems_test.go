package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/gamemath"
	"github.com/automoto/coindash/leveldata"
	"github.com/automoto/coindash/systems/factory"
	"github.com/automoto/coindash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

// brokenStore refuses every write.
type brokenStore struct{ memStore }

func (brokenStore) SaveItem(string, []byte) error { return errors.New("disk full") }

var ground = gamemath.Rect{X: 0, Y: 350, W: 3000, H: 50}

func flatLevel(name string) leveldata.Level {
	return leveldata.Level{
		Name:      name,
		Width:     3000,
		EndX:      2800,
		Platforms: []gamemath.Rect{ground},
	}
}

func newTestWorld(t *testing.T, settings cfg.Settings, levels ...leveldata.Level) *ecs.ECS {
	t.Helper()
	UseStore(memStore{})
	t.Cleanup(func() { UseStore(nil) })

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, settings, 1, 1)
	factory.CreateCamera(e)
	factory.CreateLevelAtIndex(e, leveldata.NewSource(levels, 1, settings.Generator), 0)
	return e
}

func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := components.Input.Get(components.Input.MustFirst(e.World))
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func player(e *ecs.ECS) *donburi.Entry {
	return tags.Player.MustFirst(e.World)
}

func session(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(e.World))
}

func count(e *ecs.ECS, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(e.World)
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	return components.Audio.Get(components.Audio.MustFirst(e.World)).PendingSFX
}

func hasSound(sounds []cfg.SoundID, want cfg.SoundID) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}

// settle runs player physics and collisions until the player lands.
func settle(t *testing.T, e *ecs.ECS) {
	t.Helper()
	for range 120 {
		UpdatePlayer(e)
		UpdateCollisions(e)
		if components.Physics.Get(player(e)).Grounded {
			return
		}
	}
	t.Fatal("player never landed")
}

func TestUpdatePlayerFirstFrameFromSpawn(t *testing.T) {
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"))
	hold(e, cfg.ActionMoveRight)

	UpdatePlayer(e)

	obj := components.Object.Get(player(e))
	physics := components.Physics.Get(player(e))
	if obj.X != 55 || obj.Y != 200.5 {
		t.Errorf("position = (%v, %v), want (55, 200.5)", obj.X, obj.Y)
	}
	if physics.SpeedY != 0.5 {
		t.Errorf("SpeedY = %v, want 0.5", physics.SpeedY)
	}
	if got := components.State.Get(player(e)).CurrentState; got != cfg.Jumping {
		t.Errorf("state = %v, want jumping", got)
	}
}

func TestLeftWinsWhenBothHeld(t *testing.T) {
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"))
	hold(e, cfg.ActionMoveLeft, cfg.ActionMoveRight)

	UpdatePlayer(e)

	if got := components.Object.Get(player(e)).X; got != 45 {
		t.Errorf("x = %v, want 45", got)
	}
	if got := components.Player.Get(player(e)).Direction; got != cfg.DirectionLeft {
		t.Errorf("direction = %v, want left", got)
	}
}

func TestPlayerStaysInsideLevel(t *testing.T) {
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"))
	hold(e, cfg.ActionMoveLeft)

	for range 20 {
		UpdatePlayer(e)
		UpdateCollisions(e)
	}

	if got := components.Object.Get(player(e)).X; got != 0 {
		t.Errorf("x = %v, want 0", got)
	}
}

func TestPlayerLandsOnGround(t *testing.T) {
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"))
	settle(t, e)

	obj := components.Object.Get(player(e))
	physics := components.Physics.Get(player(e))
	if obj.Y != 320 {
		t.Errorf("y = %v, want 320", obj.Y)
	}
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v, want 0", physics.SpeedY)
	}

	// standing still keeps it there
	UpdatePlayer(e)
	UpdateCollisions(e)
	if obj.Y != 320 || !physics.Grounded {
		t.Errorf("after idle frame y = %v grounded = %v", obj.Y, physics.Grounded)
	}
	if got := components.State.Get(player(e)).CurrentState; got != cfg.Idle {
		t.Errorf("state = %v, want idle", got)
	}
}

func TestRestingOnCellBoundaryPlatform(t *testing.T) {
	level := flatLevel("a")
	// 352 is a multiple of the collision cell size
	level.Platforms = []gamemath.Rect{{X: 0, Y: 352, W: 3000, H: 48}}
	e := newTestWorld(t, cfg.Defaults(), level)
	settle(t, e)

	obj := components.Object.Get(player(e))
	physics := components.Physics.Get(player(e))
	for frame := range 6 {
		UpdatePlayer(e)
		UpdateCollisions(e)
		if !physics.Grounded {
			t.Fatalf("frame %d: not grounded at y = %v", frame, obj.Y)
		}
		if obj.Y != 322 {
			t.Fatalf("frame %d: y = %v, want 322", frame, obj.Y)
		}
		if got := components.State.Get(player(e)).CurrentState; got != cfg.Idle {
			t.Fatalf("frame %d: state = %v, want idle", frame, got)
		}
	}
	if !Jump(e, player(e)) {
		t.Error("jump from a resting position failed")
	}
}

func TestJump(t *testing.T) {
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"))
	p := player(e)
	physics := components.Physics.Get(p)

	if Jump(e, p) {
		t.Fatal("jump while airborne should be a no-op")
	}
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v after airborne jump", physics.SpeedY)
	}

	settle(t, e)
	if !Jump(e, p) {
		t.Fatal("jump from the ground failed")
	}
	if physics.SpeedY != -12 || physics.Grounded {
		t.Errorf("after jump SpeedY = %v grounded = %v", physics.SpeedY, physics.Grounded)
	}
	if !hasSound(pendingSFX(e), cfg.SoundJump) {
		t.Error("jump sound not queued")
	}
	ss := components.SquashStretch.Get(p)
	if ss.ScaleX != 1.2 || ss.ScaleY != 0.8 {
		t.Errorf("squash = (%v, %v), want (1.2, 0.8)", ss.ScaleX, ss.ScaleY)
	}

	for range 10 {
		UpdateSquashStretch(e)
	}
	if ss.ScaleX != 1 || ss.ScaleY != 1 || ss.TweenX != nil {
		t.Errorf("squash did not settle: (%v, %v)", ss.ScaleX, ss.ScaleY)
	}
}

func TestCoinPickup(t *testing.T) {
	level := flatLevel("a")
	level.Coins = []leveldata.CoinSpawn{{X: 60, Y: 205}, {X: 1000, Y: 200}}
	e := newTestWorld(t, cfg.Defaults(), level)

	UpdateCollisions(e)

	if got := session(e).Score; got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
	if got := count(e, tags.Coin); got != 1 {
		t.Errorf("coins = %d, want 1", got)
	}
	if got := count(e, tags.Particle); got != 15 {
		t.Errorf("particles = %d, want 15", got)
	}
	if !hasSound(pendingSFX(e), cfg.SoundCoin) {
		t.Error("coin sound not queued")
	}

	// the same coin cannot be scored twice
	UpdateCollisions(e)
	if got := session(e).Score; got != 1 {
		t.Errorf("score after second pass = %d, want 1", got)
	}
}

func TestEnemyContactRespawns(t *testing.T) {
	level := flatLevel("a")
	level.Enemies = []leveldata.EnemySpawn{{X: 510, Y: 200}}
	e := newTestWorld(t, cfg.Defaults(), level)

	components.Object.Get(player(e)).SetPosition(500, 200)
	camera := components.Camera.Get(components.Camera.MustFirst(e.World))
	camera.Position.X = 200

	UpdateCollisions(e)

	obj := components.Object.Get(player(e))
	if obj.X != 50 || obj.Y != 200 {
		t.Errorf("position = (%v, %v), want spawn", obj.X, obj.Y)
	}
	if camera.Position.X != 0 {
		t.Errorf("camera = %v, want 0", camera.Position.X)
	}
	lives := components.Lives.Get(components.Lives.MustFirst(e.World))
	if lives.Lives != 3 {
		t.Errorf("lives = %d, want 3", lives.Lives)
	}
}

func TestFallRespawn(t *testing.T) {
	tests := []struct {
		name  string
		rule  bool
		wantY float64
	}{
		{"disabled", false, 500},
		{"enabled", true, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := cfg.Defaults()
			settings.Rules.FallRespawn = tt.rule
			e := newTestWorld(t, settings, flatLevel("a"))

			components.Object.Get(player(e)).SetPosition(1000, 500)
			UpdateCollisions(e)

			if got := components.Object.Get(player(e)).Y; got != tt.wantY {
				t.Errorf("y = %v, want %v", got, tt.wantY)
			}
		})
	}
}

func TestReachingEndCompletesLevel(t *testing.T) {
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"), flatLevel("b"))

	obj := components.Object.Get(player(e))
	obj.SetPosition(2799, 320)
	UpdateLevelProgress(e)
	if IsLevelComplete(e) {
		t.Fatal("completed before end x")
	}

	obj.SetPosition(2800, 320)
	UpdateLevelProgress(e)
	if !IsLevelComplete(e) {
		t.Fatal("not completed at end x")
	}
	if got := GetOrCreateLevelComplete(e).Outcome; got != cfg.OutcomeLevelComplete {
		t.Errorf("outcome = %v, want level complete", got)
	}
	if !components.FinishLine.Get(tags.FinishLine.MustFirst(e.World)).Activated {
		t.Error("finish line not activated")
	}

	// gameplay is frozen
	hold(e, cfg.ActionMoveRight)
	WithLevelCompleteCheck(UpdatePlayer)(e)
	if obj.X != 2800 {
		t.Errorf("player moved to %v while complete", obj.X)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		index int
		want  cfg.Outcome
	}{
		{0, cfg.OutcomeLevelComplete},
		{1, cfg.OutcomeGameComplete},
		{2, cfg.OutcomeGameComplete},
	}
	for _, tt := range tests {
		e := newTestWorld(t, cfg.Defaults(), flatLevel("a"), flatLevel("b"))
		factory.LoadLevel(e, tt.index)

		endX := components.Level.Get(components.Level.MustFirst(e.World)).CurrentLevel.EndX
		components.Object.Get(player(e)).SetPosition(endX, 100)
		UpdateLevelProgress(e)

		if got := GetOrCreateLevelComplete(e).Outcome; got != tt.want {
			t.Errorf("index %d: outcome = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestAdvanceLevel(t *testing.T) {
	second := flatLevel("b")
	second.Coins = []leveldata.CoinSpawn{{X: 400, Y: 200}, {X: 500, Y: 200}}
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"), second)

	session(e).Score = 7
	components.Object.Get(player(e)).SetPosition(2800, 320)
	UpdateLevelProgress(e)
	components.Camera.Get(components.Camera.MustFirst(e.World)).Position.X = 2200

	// advance is ignored until pressed
	hold(e)
	UpdateLevelAdvance(e)
	if got := components.Level.Get(components.Level.MustFirst(e.World)).LevelIndex; got != 0 {
		t.Fatalf("advanced without input to %d", got)
	}

	hold(e, cfg.ActionAdvance)
	UpdateLevelAdvance(e)

	levelData := components.Level.Get(components.Level.MustFirst(e.World))
	if levelData.LevelIndex != 1 || levelData.CurrentLevel.Name != "b" {
		t.Errorf("level = %d %q, want 1 \"b\"", levelData.LevelIndex, levelData.CurrentLevel.Name)
	}
	if IsLevelComplete(e) {
		t.Error("still complete after advance")
	}
	if got := session(e).Score; got != 7 {
		t.Errorf("score = %d, want 7", got)
	}
	if got := components.Camera.Get(components.Camera.MustFirst(e.World)).Position.X; got != 0 {
		t.Errorf("camera = %v, want 0", got)
	}
	if got := count(e, tags.Player); got != 1 {
		t.Errorf("players = %d, want 1", got)
	}
	if got := count(e, tags.Coin); got != 2 {
		t.Errorf("coins = %d, want 2", got)
	}
	if got := components.Object.Get(player(e)).X; got != 50 {
		t.Errorf("player x = %v, want 50", got)
	}
}

func TestAdvancePastAuthoredGenerates(t *testing.T) {
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"))

	AdvanceLevel(e)

	levelData := components.Level.Get(components.Level.MustFirst(e.World))
	if !levelData.CurrentLevel.Generated {
		t.Fatal("level after the last authored one should be generated")
	}
	platforms, enemies, coins := cfg.Defaults().Generator.Counts(2)
	if got := count(e, tags.Platform); got != platforms+1 {
		t.Errorf("platforms = %d, want %d", got, platforms+1)
	}
	if got := count(e, tags.Enemy); got != enemies {
		t.Errorf("enemies = %d, want %d", got, enemies)
	}
	if got := count(e, tags.Coin); got != coins {
		t.Errorf("coins = %d, want %d", got, coins)
	}
}

func TestCameraX(t *testing.T) {
	tests := []struct {
		name            string
		current, player float64
		want            float64
	}{
		{"before offset", 0, 250, 0},
		{"at offset", 0, 300, 0},
		{"past offset", 0, 450, 150},
		{"keeps position when walking back", 150, 200, 150},
		{"clamped to level end", 0, 2900, 2200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CameraX(tt.current, tt.player, 300, 3000, 800); got != tt.want {
				t.Errorf("CameraX = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateCamera(t *testing.T) {
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"))
	components.Object.Get(player(e)).SetPosition(1000, 320)

	UpdateCamera(e)

	if got := components.Camera.Get(components.Camera.MustFirst(e.World)).Position.X; got != 700 {
		t.Errorf("camera = %v, want 700", got)
	}
}

func TestParticlesExpire(t *testing.T) {
	level := flatLevel("a")
	level.Coins = []leveldata.CoinSpawn{{X: 60, Y: 205}}
	e := newTestWorld(t, cfg.Defaults(), level)
	UpdateCollisions(e)

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if p.Size < 1 || p.Size >= 4 {
			t.Errorf("size = %v, want [1, 4)", p.Size)
		}
		if p.SpeedX < -2 || p.SpeedX >= 2 {
			t.Errorf("vx = %v, want [-2, 2)", p.SpeedX)
		}
		if p.SpeedY > -2 || p.SpeedY <= -6 {
			t.Errorf("vy = %v, want (-6, -2]", p.SpeedY)
		}
	})

	UpdateParticles(e)
	if got := count(e, tags.Particle); got != 15 {
		t.Fatalf("particles after one tick = %d, want 15", got)
	}
	for range 25 {
		UpdateParticles(e)
	}
	if got := count(e, tags.Particle); got != 0 {
		t.Errorf("particles = %d, want 0", got)
	}
}

func TestUpdateParticle(t *testing.T) {
	p := &components.ParticleData{X: 10, Y: 10, SpeedX: 1, SpeedY: -3, Life: 1}
	if UpdateParticle(p, 0.1, 0.05) {
		t.Fatal("fresh particle expired")
	}
	if p.X != 11 || p.Y != 7 {
		t.Errorf("position = (%v, %v), want (11, 7)", p.X, p.Y)
	}
	if math.Abs(p.SpeedY-(-2.9)) > 1e-9 || math.Abs(p.Life-0.95) > 1e-9 {
		t.Errorf("vy = %v life = %v", p.SpeedY, p.Life)
	}

	p.Life = 0.05
	if !UpdateParticle(p, 0.1, 0.05) {
		t.Error("particle at zero life not expired")
	}
}

func TestUpdateCoin(t *testing.T) {
	level := flatLevel("a")
	level.Coins = []leveldata.CoinSpawn{{X: 1000, Y: 200}}
	e := newTestWorld(t, cfg.Defaults(), level)

	entry := tags.Coin.MustFirst(e.World)
	coin := components.Coin.Get(entry)
	obj := components.Object.Get(entry)
	coin.PhaseOffset = 0

	if UpdateCoin(coin, obj, 30, 3, 2, 3) {
		t.Fatal("uncollected coin signalled removal")
	}
	if math.Abs(coin.Rotation-1.5) > 1e-9 {
		t.Errorf("rotation = %v, want 1.5", coin.Rotation)
	}
	if want := 200 + math.Sin(1)*3; math.Abs(obj.Y-want) > 1e-9 {
		t.Errorf("y = %v, want %v", obj.Y, want)
	}

	coin.Collect()
	rotation := coin.Rotation
	if !UpdateCoin(coin, obj, 60, 3, 2, 3) {
		t.Error("collected coin not signalled")
	}
	if coin.Rotation != rotation {
		t.Error("collected coin kept animating")
	}

	UpdateCoins(e)
	if got := count(e, tags.Coin); got != 0 {
		t.Errorf("coins = %d, want 0", got)
	}
}

func TestEnemyPatrolStaysInBounds(t *testing.T) {
	level := flatLevel("a")
	level.Enemies = []leveldata.EnemySpawn{{X: 500, Y: 320}, {X: 1500, Y: 320, Speed: leveldata.Float(7), MoveDistance: leveldata.Float(40)}}
	e := newTestWorld(t, cfg.Defaults(), level)

	flipped := false
	for range 1000 {
		UpdateClock(e)
		UpdateEnemies(e)
		tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
			enemy := components.Enemy.Get(entry)
			x := components.Object.Get(entry).X
			if x < enemy.StartX-enemy.MoveDistance || x > enemy.StartX+enemy.MoveDistance {
				t.Fatalf("enemy at %v outside [%v, %v]", x, enemy.StartX-enemy.MoveDistance, enemy.StartX+enemy.MoveDistance)
			}
			if enemy.Direction == cfg.DirectionLeft {
				flipped = true
			}
			if math.Abs(enemy.BounceOffset) > 2 {
				t.Fatalf("bounce offset %v", enemy.BounceOffset)
			}
		})
	}
	if !flipped {
		t.Error("enemies never turned around")
	}
}

func TestEnemyExplicitZeroSpeedStandsStill(t *testing.T) {
	level := flatLevel("a")
	level.Enemies = []leveldata.EnemySpawn{{X: 700, Y: 320, Speed: leveldata.Float(0)}}
	e := newTestWorld(t, cfg.Defaults(), level)

	entry := tags.Enemy.MustFirst(e.World)
	enemy := components.Enemy.Get(entry)
	if enemy.Speed != 0 || enemy.MoveDistance != 100 {
		t.Fatalf("speed = %v distance = %v, want 0 and the default 100", enemy.Speed, enemy.MoveDistance)
	}
	for range 30 {
		UpdateEnemies(e)
	}
	if got := components.Object.Get(entry).X; got != 700 {
		t.Errorf("x = %v, want 700", got)
	}
}

func TestHighLevel(t *testing.T) {
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"))

	if got := LoadHighLevel(); got != 1 {
		t.Errorf("empty store high level = %d, want 1", got)
	}

	factory.LoadLevel(e, 2)
	if got := DisplayedHighLevel(e); got != 3 {
		t.Errorf("displayed = %d, want 3", got)
	}
	UpdateHighLevel(e)
	if got := LoadHighLevel(); got != 3 {
		t.Errorf("stored = %d, want 3", got)
	}

	// going back never lowers it
	factory.LoadLevel(e, 0)
	UpdateHighLevel(e)
	if got := LoadHighLevel(); got != 3 {
		t.Errorf("stored after replay = %d, want 3", got)
	}
	if got := DisplayedHighLevel(e); got != 3 {
		t.Errorf("displayed after replay = %d, want 3", got)
	}
}

func TestHighLevelSaveFailureKeepsBest(t *testing.T) {
	e := newTestWorld(t, cfg.Defaults(), flatLevel("a"))
	UseStore(brokenStore{memStore{}})

	factory.LoadLevel(e, 3)
	UpdateHighLevel(e)

	if got := components.HighLevel.Get(components.HighLevel.MustFirst(e.World)).Best; got != 4 {
		t.Errorf("best = %d, want 4", got)
	}
	if got := LoadHighLevel(); got != 1 {
		t.Errorf("stored = %d, want 1 after a failed write", got)
	}
}

func TestLoadHighLevelIgnoresGarbage(t *testing.T) {
	UseStore(memStore{"highLevel": []byte("not json")})
	t.Cleanup(func() { UseStore(nil) })

	if got := LoadHighLevel(); got != 1 {
		t.Errorf("high level = %d, want 1", got)
	}
}

func TestAnimationStateFor(t *testing.T) {
	tests := []struct {
		grounded, left, right bool
		want                  cfg.StateID
	}{
		{false, false, false, cfg.Jumping},
		{false, true, false, cfg.Jumping},
		{true, false, false, cfg.Idle},
		{true, true, false, cfg.Walking},
		{true, false, true, cfg.Walking},
		{true, true, true, cfg.Walking},
	}
	for _, tt := range tests {
		if got := AnimationStateFor(tt.grounded, tt.left, tt.right); got != tt.want {
			t.Errorf("AnimationStateFor(%v, %v, %v) = %v, want %v", tt.grounded, tt.left, tt.right, got, tt.want)
		}
	}
}
