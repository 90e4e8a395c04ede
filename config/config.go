package config

import (
	"image/color"

	"github.com/automoto/coindash/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 `toml:"gravity"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed       float64 `toml:"speed"`        // horizontal speed, applied instantly
	JumpImpulse float64 `toml:"jump_impulse"` // vertical velocity set on jump (negative is up)

	// Spawn / respawn point
	SpawnX float64 `toml:"spawn_x"`
	SpawnY float64 `toml:"spawn_y"`

	StartingLives int `toml:"starting_lives"`

	// Dimensions
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// EnemyConfig contains patrol defaults for authored levels
type EnemyConfig struct {
	Speed        float64 `toml:"speed"`
	MoveDistance float64 `toml:"move_distance"` // patrol half-width around the spawn x
	BounceHeight float64 `toml:"bounce_height"`
	BounceRate   float64 `toml:"bounce_rate"` // radians per frame
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
}

// CoinConfig contains coin animation values
type CoinConfig struct {
	Size          float64 `toml:"size"`
	RotationSpeed float64 `toml:"rotation_speed"` // radians per second
	FloatSpeed    float64 `toml:"float_speed"`    // radians per second
	FloatHeight   float64 `toml:"float_height"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	OffsetX float64 `toml:"offset_x"` // distance from the left edge the player is kept at
}

// ParticleConfig contains the coin burst configuration
type ParticleConfig struct {
	BurstCount int     `toml:"burst_count"`
	MinSize    float64 `toml:"min_size"`
	SizeRange  float64 `toml:"size_range"`
	SpreadX    float64 `toml:"spread_x"` // horizontal speed range, centered on 0
	MinLift    float64 `toml:"min_lift"` // minimum upward speed
	LiftRange  float64 `toml:"lift_range"`
	Gravity    float64 `toml:"gravity"`
	Fade       float64 `toml:"fade"` // life lost per frame
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 `toml:"jump_scale_x"` // horizontal scale on jump
	JumpScaleY float64 `toml:"jump_scale_y"` // vertical scale on jump
	Frames     int     `toml:"frames"`       // frames to ease back to 1.0
}

// RulesConfig holds session rules
type RulesConfig struct {
	// FallRespawn teleports the player back to spawn after falling below
	// the viewport. Off by default: falling is left unguarded.
	FallRespawn bool `toml:"fall_respawn"`
}

// Settings is the complete simulation tuning. It is built once, handed to
// the factories and never mutated afterwards.
type Settings struct {
	Physics       PhysicsConfig             `toml:"physics"`
	Player        PlayerConfig              `toml:"player"`
	Enemy         EnemyConfig               `toml:"enemy"`
	Coin          CoinConfig                `toml:"coin"`
	Camera        CameraConfig              `toml:"camera"`
	Generator     leveldata.GeneratorConfig `toml:"generator"`
	Particles     ParticleConfig            `toml:"particles"`
	SquashStretch SquashStretchConfig       `toml:"squash_stretch"`
	Rules         RulesConfig               `toml:"rules"`
}

// Defaults returns the stock tuning.
func Defaults() Settings {
	return Settings{
		Physics: PhysicsConfig{
			Gravity: 0.5,
		},
		Player: PlayerConfig{
			Speed:         5,
			JumpImpulse:   -12,
			SpawnX:        50,
			SpawnY:        200,
			StartingLives: 3,
			Width:         30,
			Height:        30,
		},
		Enemy: EnemyConfig{
			Speed:        2,
			MoveDistance: 100,
			BounceHeight: 2,
			BounceRate:   0.083, // ~0.005 rad/ms at 60fps
			Width:        30,
			Height:       30,
		},
		Coin: CoinConfig{
			Size:          15,
			RotationSpeed: 3,
			FloatSpeed:    2,
			FloatHeight:   3,
		},
		Camera: CameraConfig{
			OffsetX: 300,
		},
		Generator: leveldata.DefaultGeneratorConfig(),
		Particles: ParticleConfig{
			BurstCount: 15,
			MinSize:    1,
			SizeRange:  3,
			SpreadX:    4,
			MinLift:    2,
			LiftRange:  4,
			Gravity:    0.1,
			Fade:       0.05,
		},
		SquashStretch: SquashStretchConfig{
			JumpScaleX: 1.2,
			JumpScaleY: 0.8,
			Frames:     6,
		},
	}
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// C is the window/viewport configuration.
var C = &Config{
	Width:  800,
	Height: 400,
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Draw position/camera/entity counts
}

var Debug DebugConfig

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor      color.RGBA
	FinalOverlayColor color.RGBA
	TextColor         color.RGBA
	Title             string // formatted with the 1-based level number
	ContinueHint      string
	FinalTitle        string
	FinalMessage      string
}

var LevelComplete = LevelCompleteConfig{
	OverlayColor:      color.RGBA{R: 0, G: 0, B: 0, A: 178},
	FinalOverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 128},
	TextColor:         White,
	Title:             "Level %d Complete!",
	ContinueHint:      "Press SPACE to continue",
	FinalTitle:        "Congratulations!",
	FinalMessage:      "You completed all levels!",
}

// Palette used by the renderers
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SkyTop      = color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 255}
	SkyBottom   = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 255}
	GroundTop   = color.RGBA{R: 0x5c, G: 0x3a, B: 0x21, A: 255}
	GroundBase  = color.RGBA{R: 0x3d, G: 0x28, B: 0x17, A: 255}
	Highlight   = color.RGBA{R: 255, G: 255, B: 255, A: 25}
	Platform    = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 255}
	PlayerColor = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 255}
	EnemyColor  = color.RGBA{R: 0x77, G: 0x22, B: 0x22, A: 255}
	Shadow      = color.RGBA{R: 0, G: 0, B: 0, A: 51}
	FlagColor   = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 255}
	PoleColor   = color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 255}
	CoinOuter   = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 255}
	CoinInner   = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 255}
	CoinEdge    = color.RGBA{R: 0xb8, G: 0x86, B: 0x0b, A: 255}
	CloudColor  = color.RGBA{R: 255, G: 255, B: 255, A: 128}
	DebugYellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	DebugRed    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
