package systems

import (
	"image/color"
	"math"

	"github.com/automoto/coindash/components"
	cfg "github.com/automoto/coindash/config"
	"github.com/automoto/coindash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	skyImage  *ebiten.Image
	coinImage *ebiten.Image
)

// Viewport culling skips entities that are entirely off-screen.
const cullPadding = 64.0

// Walking bob, in radians per frame and pixels
const (
	walkBobRate   = 0.16
	walkBobHeight = 2
)

// Platforms at least this tall are drawn as ground
const groundMinHeight = 40

func cameraX(ecs *ecs.ECS) float64 {
	if entry, ok := components.Camera.First(ecs.World); ok {
		return components.Camera.Get(entry).Position.X
	}
	return 0
}

func visible(x, w, camX float64, screenW int) bool {
	return x+w >= camX-cullPadding && x <= camX+float64(screenW)+cullPadding
}

// DrawBackground paints the sky gradient and drifting clouds.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	if skyImage == nil || skyImage.Bounds().Dx() != width || skyImage.Bounds().Dy() != height {
		skyImage = verticalGradient(width, height, cfg.SkyTop, cfg.SkyBottom)
	}
	screen.DrawImage(skyImage, nil)

	camX := cameraX(ecs)
	frame := 0
	if entry, ok := components.Session.First(ecs.World); ok {
		frame = components.Session.Get(entry).Frame
	}
	levelWidth := currentLevelWidth(ecs)
	for i := range 5 {
		x := math.Mod(camX+float64(i)*400, levelWidth)
		y := 50 + math.Sin(float64(frame)/ticksPerSecond+float64(i))*10
		drawCloud(screen, float32(x-camX), float32(y))
	}
}

func drawCloud(screen *ebiten.Image, x, y float32) {
	vector.DrawFilledCircle(screen, x, y, 30, cfg.CloudColor, true)
	vector.DrawFilledCircle(screen, x+25, y-10, 25, cfg.CloudColor, true)
	vector.DrawFilledCircle(screen, x+25, y+10, 25, cfg.CloudColor, true)
	vector.DrawFilledCircle(screen, x+50, y, 30, cfg.CloudColor, true)
}

func verticalGradient(width, height int, top, bottom color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	for y := range height {
		t := float64(y) / float64(max(height-1, 1))
		vector.FillRect(img, 0, float32(y), float32(width), 1, lerpColor(top, bottom, t), false)
	}
	return img
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// DrawFinishLine draws the pole and a waving flag at the level end.
func DrawFinishLine(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.FinishLine.First(ecs.World)
	if !ok {
		return
	}
	o := components.Object.Get(entry)
	camX := cameraX(ecs)
	if !visible(o.X, 60, camX, screen.Bounds().Dx()) {
		return
	}

	frame := 0
	if s, ok := components.Session.First(ecs.World); ok {
		frame = components.Session.Get(s).Frame
	}
	x := float32(o.X - camX)
	top := float32(o.Y)
	vector.FillRect(screen, x, top, float32(o.W), float32(o.H), cfg.PoleColor, false)

	// flag cloth as stacked strips whose length sways with time
	wave := math.Sin(float64(frame)*0.16) * 10
	for i := range 50 {
		t := float64(i) / 50
		length := 40 * (1 - math.Abs(t-0.5)) * (1 + wave/40*math.Sin(t*math.Pi))
		vector.FillRect(screen, x+float32(o.W), top+float32(i), float32(length), 1, cfg.FlagColor, false)
	}
}

// DrawPlatforms draws the ground with an earthy gradient and floating
// platforms as green slabs with a highlight.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs)
	screenW := screen.Bounds().Dx()

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !visible(o.X, o.W, camX, screenW) {
			return
		}
		x := float32(o.X - camX)
		y := float32(o.Y)

		if o.H >= groundMinHeight {
			for row := 0; row < int(o.H); row++ {
				c := lerpColor(cfg.GroundTop, cfg.GroundBase, float64(row)/o.H)
				vector.FillRect(screen, x, y+float32(row), float32(o.W), 1, c, false)
			}
			return
		}

		vector.FillRect(screen, x, y, float32(o.W), float32(o.H), cfg.Platform, false)
		vector.FillRect(screen, x, y, float32(o.W), 5, cfg.Highlight, false)
	})
}

// DrawParticles draws particles shrinking and fading with their life.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs)
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Life <= 0 {
			return
		}
		c := p.Color
		c.A = uint8(float64(c.A) * p.Life)
		vector.DrawFilledCircle(screen, float32(p.X-camX), float32(p.Y), float32(p.Size*p.Life), c, true)
	})
}

// DrawCoins draws each coin spinning about its vertical axis.
func DrawCoins(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs)
	screenW := screen.Bounds().Dx()

	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		if coin.Collected {
			return
		}
		o := components.Object.Get(e)
		if !visible(o.X, o.W, camX, screenW) {
			return
		}
		img := getCoinImage(int(o.W))

		scaleX := math.Abs(math.Cos(coin.Rotation))*0.8 + 0.2
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-o.W/2, -o.H/2)
		drawOp.GeoM.Scale(scaleX, 1)
		drawOp.GeoM.Translate(o.X+o.W/2-camX, o.Y+o.H/2)
		screen.DrawImage(img, drawOp)
	})
}

func getCoinImage(size int) *ebiten.Image {
	if coinImage != nil && coinImage.Bounds().Dx() == size {
		return coinImage
	}
	r := float32(size) / 2
	coinImage = ebiten.NewImage(size, size)
	vector.DrawFilledCircle(coinImage, r, r, r, cfg.CoinOuter, true)
	vector.DrawFilledCircle(coinImage, r, r, r*0.7, cfg.CoinInner, true)
	vector.StrokeRect(coinImage, r-1, r*0.5, 2, r, 1, cfg.CoinEdge, false)
	return coinImage
}

// DrawCharacters draws enemies and the player with a drop shadow. Entities
// without an image fall back to a solid rectangle.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs)
	screenW := screen.Bounds().Dx()
	frame := 0
	if s, ok := components.Session.First(ecs.World); ok {
		frame = components.Session.Get(s).Frame
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !visible(o.X, o.W, camX, screenW) {
			return
		}
		enemy := components.Enemy.Get(e)
		drawCharacter(screen, e, o, camX, enemy.BounceOffset, enemy.Direction, 1, 1)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		player := components.Player.Get(e)

		bob := 0.0
		if components.State.Get(e).CurrentState == cfg.Walking {
			bob = math.Sin(float64(frame)*walkBobRate) * walkBobHeight
		}
		scaleX, scaleY := 1.0, 1.0
		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			scaleX, scaleY = ss.ScaleX, ss.ScaleY
		}
		drawCharacter(screen, e, o, camX, bob, player.Direction, scaleX, scaleY)
	})
}

func drawCharacter(screen *ebiten.Image, e *donburi.Entry, o *components.ObjectData, camX, offsetY, direction, scaleX, scaleY float64) {
	x := o.X - camX
	vector.FillRect(screen, float32(x-2), float32(o.Y+2), float32(o.W), float32(o.H), cfg.Shadow, false)

	sprite := components.Sprite.Get(e)
	if sprite.Image == nil {
		vector.FillRect(screen, float32(x), float32(o.Y+offsetY), float32(o.W), float32(o.H), sprite.Fallback, false)
		return
	}

	bounds := sprite.Image.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	// anchor at bottom-center so squash keeps the feet planted
	drawOp.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy()))
	drawOp.GeoM.Scale(o.W/float64(bounds.Dx())*scaleX, o.H/float64(bounds.Dy())*scaleY)
	if direction < 0 {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(x+o.W/2, o.Y+o.H+offsetY)
	screen.DrawImage(sprite.Image, drawOp)
}
