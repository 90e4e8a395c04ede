package main

import (
	"flag"
	"image"
	"log"
	"os"
	"time"

	"github.com/automoto/coindash/assets"
	"github.com/automoto/coindash/config"
	"github.com/automoto/coindash/fonts"
	"github.com/automoto/coindash/scenes"
	"github.com/automoto/coindash/systems"
	"github.com/automoto/coindash/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(options scenes.GameOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, options)
	} else {
		g.scene = scenes.NewTitleScene(g, options)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding gameplay tuning")
	seed := flag.Uint64("seed", 0, "Seed for generated levels (0 picks one from the clock)")
	level := flag.Int("level", 1, "Level to start on (1-based)")
	assetsDir := flag.String("assets", "assets", "Directory holding hero.png and enemy.png")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "Show debug overlay")
	flag.BoolVar(&config.Audio.Muted, "mute", false, "Disable sound effects")
	volume := flag.Float64("volume", config.Audio.DefaultSFXVol, "Sound effect volume (0.0 - 1.0)")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Skip the title screen")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	settings, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	sprites, err := assets.LoadSprites(os.DirFS(*assetsDir), int(settings.Player.Width), int(settings.Player.Height))
	if err != nil {
		log.Printf("Warning: Could not load sprites, using fallback shapes: %v", err)
	}
	factory.SetSprites(sprites.Hero, sprites.Enemy)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Coin Dash")

	// Without a store the high level lives in memory only
	if err := systems.InitPersistence("coindash"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.SetSFXVolume(*volume)
	systems.PreloadAllSFX()

	options := scenes.GameOptions{
		Settings:   settings,
		Levels:     levels,
		Seed:       *seed,
		StartLevel: max(*level-1, 0),
	}
	if err := ebiten.RunGame(NewGame(options)); err != nil {
		log.Fatal(err)
	}
}
