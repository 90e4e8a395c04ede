package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/systems"
	"github.com/automoto/coindash/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene shows the game title, the best level reached and Play/Quit.
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	options      GameOptions
	titleUI      *ui.TitleUI
	once         sync.Once
	shouldPlay   bool
	shouldQuit   bool
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger, options GameOptions) *TitleScene {
	return &TitleScene{sceneChanger: sc, options: options}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)

	ts.ecs.Update()
	ts.titleUI.Update()

	if systems.GetAction(ts.ecs, cfg.ActionMenuSelect).JustPressed {
		ts.shouldPlay = true
	}
	if systems.GetAction(ts.ecs, cfg.ActionMenuBack).JustPressed {
		ts.shouldQuit = true
	}

	if ts.shouldQuit {
		os.Exit(0)
	}
	if ts.shouldPlay {
		systems.PlaySFXNow(cfg.SoundMenuSelect)
		ts.sceneChanger.ChangeScene(NewPlatformerScene(ts.sceneChanger, ts.options))
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())
	ts.ecs.World.Create(components.Input, components.Audio)

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.titleUI = ui.NewTitleUI(
		systems.LoadHighLevel(),
		func() { ts.shouldPlay = true },
		func() { ts.shouldQuit = true },
	)
}
