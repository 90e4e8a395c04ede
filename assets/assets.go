package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/coindash/leveldata"
	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Sprite file names looked up in the sprite directory
const (
	HeroSprite  = "hero.png"
	EnemySprite = "enemy.png"
)

// LoadLevels parses every embedded authored level in file name order.
func LoadLevels() ([]leveldata.Level, error) {
	levels, err := leveldata.LoadAll(assetFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded levels: %w", err)
	}
	return levels, nil
}

// Sprites holds the decoded character images. A nil image means the
// renderer should fall back to a solid rectangle.
type Sprites struct {
	Hero  image.Image
	Enemy image.Image
}

// LoadSprites decodes the hero and enemy images from fsys in parallel and
// scales them to w×h. Each image fails independently: whatever decoded is
// returned alongside the first error.
func LoadSprites(fsys fs.FS, w, h int) (Sprites, error) {
	var sprites Sprites
	var g errgroup.Group

	g.Go(func() error {
		img, err := loadSprite(fsys, HeroSprite, w, h)
		sprites.Hero = img
		return err
	})
	g.Go(func() error {
		img, err := loadSprite(fsys, EnemySprite, w, h)
		sprites.Enemy = img
		return err
	})

	err := g.Wait()
	if sprites.Hero != nil && sprites.Enemy != nil {
		log.Println("Sprites loaded")
	}
	return sprites, err
}

func loadSprite(fsys fs.FS, name string, w, h int) (image.Image, error) {
	f, err := fsys.Open(path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite %s: %w", name, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", name, err)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}
