package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/leveldata"
	"github.com/automoto/coindash/systems"
	"github.com/automoto/coindash/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	options      GameOptions
	once         sync.Once
}

// NewPlatformerScene creates the gameplay scene for options
func NewPlatformerScene(sc SceneChanger, options GameOptions) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, options: options}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.ecs = NewWorld(ps.options)
}

// NewWorld builds a ready-to-run world: systems and renderers registered,
// session and camera created and the starting level loaded.
func NewWorld(options GameOptions) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	registerSystems(e)

	factory.CreateSession(e, options.Settings, options.Seed, systems.LoadHighLevel())
	factory.CreateCamera(e)

	source := leveldata.NewSource(options.Levels, options.Seed, options.Settings.Generator)
	factory.CreateLevelAtIndex(e, source, options.StartLevel)

	return e
}

func registerSystems(e *ecs.ECS) {
	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateLevelAdvance)

	// Gameplay freezes while the completion overlay is up
	e.AddSystem(systems.WithLevelCompleteCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateEnemies))
	e.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateCoins))
	e.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateParticles))
	e.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateCamera))
	e.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateLevelProgress))

	e.AddSystem(systems.UpdateSquashStretch)
	e.AddSystem(systems.UpdateHighLevel)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawFinishLine)
	e.AddRenderer(cfg.Default, systems.DrawPlatforms)
	e.AddRenderer(cfg.Default, systems.DrawCoins)
	e.AddRenderer(cfg.Default, systems.DrawCharacters)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawLevelComplete)
}
