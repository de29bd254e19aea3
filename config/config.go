package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only draw layer; renderers run in registration order.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values.
// Speeds are in units per second.
type PlayerConfig struct {
	// Movement
	RunSpeed   float64
	JumpSpeed  float64
	StompSpeed float64
	// Downward speed above which touching an enemy stomps it.
	StompThreshold float64
	Bounce     float64

	// Lives
	StartingLives int
	InvulnFrames  int

	// Sprite
	SpriteScale   float64
	BodyWidthPct  float64
	BodyHeightPct float64

	// Shape fallback
	FallbackWidth  float64
	FallbackHeight float64
	FallbackStep   float64 // pixels per frame
	HopHeight      float64
	HopDuration    time.Duration

	// Damage flash
	FlashDuration time.Duration
}

// EnemyConfig contains patrolling enemy values.
type EnemyConfig struct {
	PatrolSpeed  float64
	Width        float64
	Height       float64
	SpawnOffsetY float64
	MaxSpeedX    float64
	MaxSpeedY    float64
	BounceX      float64
	FrameWidth   int
	FrameHeight  int
}

// PhysicsConfig contains world physics values.
type PhysicsConfig struct {
	Gravity       float64 // units/s^2
	MaxFallSpeed  float64
	RestThreshold float64 // bounce speeds below this come to rest
	SpaceCellSize int
}

// ScoreConfig contains reward amounts.
type ScoreConfig struct {
	Coin  int
	Stomp int
	Flag  int
}

// CoinConfig contains collectible values.
type CoinConfig struct {
	Radius       float64
	BobAmplitude float64
	BobSeconds   float64
}

// FlagConfig contains the level-end trigger values.
type FlagConfig struct {
	Radius     float64
	PoleWidth  float64
	PoleHeight float64
}

// CameraConfig contains camera follow values.
type CameraConfig struct {
	FollowSmoothing float64
}

// HUDConfig contains heads-up display layout.
type HUDConfig struct {
	ScoreX, ScoreY int
	LivesX, LivesY int
	ScoreSize      float64
	LivesSize      float64
	BannerSize     float64
	SignSize       float64
	ScoreLabel     string
	LivesLabel     string
	BannerText     string
	BannerSeconds  float32
}

// TouchConfig contains on-screen control layout.
type TouchConfig struct {
	Enabled    bool
	ButtonSize int
	Margin     int
	Spacing    int
}

// ColorConfig contains the palette for primitive-drawn geometry.
type ColorConfig struct {
	Sky          color.RGBA
	Ground       color.RGBA
	GroundStroke color.RGBA
	Brick        color.RGBA
	BrickStroke  color.RGBA
	Question     color.RGBA
	QuestionEdge color.RGBA
	Pipe         color.RGBA
	PipeTop      color.RGBA
	Castle       color.RGBA
	CastleStroke color.RGBA
	Pole         color.RGBA
	Flag         color.RGBA
	Coin         color.RGBA
	Enemy        color.RGBA
	Player       color.RGBA
	PlayerHit    color.RGBA
	Text         color.RGBA
	Sign         color.RGBA
	Banner       color.RGBA
	BannerStroke color.RGBA
}

// PauseConfig contains the pause overlay values.
type PauseConfig struct {
	OverlayColor color.RGBA
	Text         string
}

type Config struct {
	Width  int
	Height int
	TPS    int
}

var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Score ScoreConfig
var Coin CoinConfig
var Flag FlagConfig
var Camera CameraConfig
var HUD HUDConfig
var Touch TouchConfig
var Colors ColorConfig
var Pause PauseConfig
var Debug DebugConfig

// DebugConfig toggles developer overlays.
type DebugConfig struct {
	Hitboxes bool
}

// Level is the embedded level document loaded by the scene.
const Level = "levels/level01.tmx"

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:       1000,
		MaxFallSpeed:  900,
		RestThreshold: 40,
		SpaceCellSize: 16,
	}

	Player = PlayerConfig{
		RunSpeed:   180,
		JumpSpeed:  -540,
		StompSpeed: -260,

		StompThreshold: 150,
		Bounce:     0.05,

		StartingLives: 3,
		InvulnFrames:  60,

		SpriteScale:   0.48,
		BodyWidthPct:  0.6,
		BodyHeightPct: 0.9,

		FallbackWidth:  30,
		FallbackHeight: 48,
		FallbackStep:   4,
		HopHeight:      60,
		HopDuration:    260 * time.Millisecond,

		FlashDuration: 300 * time.Millisecond,
	}

	Enemy = EnemyConfig{
		PatrolSpeed:  40,
		Width:        28,
		Height:       28,
		SpawnOffsetY: -8,
		MaxSpeedX:    200,
		MaxSpeedY:    900,
		BounceX:      1,
		FrameWidth:   32,
		FrameHeight:  32,
	}

	Score = ScoreConfig{
		Coin:  100,
		Stomp: 200,
		Flag:  400,
	}

	Coin = CoinConfig{
		Radius:       10,
		BobAmplitude: 3,
		BobSeconds:   0.6,
	}

	Flag = FlagConfig{
		Radius:     50,
		PoleWidth:  8,
		PoleHeight: 380,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	HUD = HUDConfig{
		ScoreX:        12,
		ScoreY:        12,
		LivesX:        12,
		LivesY:        42,
		ScoreSize:     20,
		LivesSize:     16,
		BannerSize:    26,
		SignSize:      22,
		ScoreLabel:    "Pontos",
		LivesLabel:    "Vidas",
		BannerText:    "Fase concluída!",
		BannerSeconds: 0.5,
	}

	Touch = TouchConfig{
		Enabled:    false,
		ButtonSize: 72,
		Margin:     16,
		Spacing:    12,
	}

	Colors = ColorConfig{
		Sky:          color.RGBA{0x87, 0xCE, 0xEB, 0xff},
		Ground:       color.RGBA{0x8B, 0x45, 0x13, 0xff},
		GroundStroke: color.RGBA{0x5c, 0x2f, 0x13, 0xff},
		Brick:        color.RGBA{0x8B, 0x45, 0x13, 0xff},
		BrickStroke:  color.RGBA{0x5c, 0x2f, 0x13, 0xff},
		Question:     color.RGBA{0xD9, 0xA4, 0x41, 0xff},
		QuestionEdge: color.RGBA{0x8B, 0x5A, 0x17, 0xff},
		Pipe:         color.RGBA{0x2e, 0xa4, 0x3f, 0xff},
		PipeTop:      color.RGBA{0x1b, 0x7a, 0x2b, 0xff},
		Castle:       color.RGBA{0xC8, 0x7D, 0x3A, 0xff},
		CastleStroke: color.RGBA{0x7a, 0x4f, 0x2e, 0xff},
		Pole:         color.RGBA{0x66, 0xff, 0x66, 0xff},
		Flag:         color.RGBA{0xff, 0xff, 0xff, 0xff},
		Coin:         color.RGBA{0xFF, 0xD7, 0x00, 0xff},
		Enemy:        color.RGBA{0x66, 0x33, 0x00, 0xff},
		Player:       color.RGBA{0xff, 0x99, 0x66, 0xff},
		PlayerHit:    color.RGBA{0xff, 0x66, 0x66, 0xff},
		Text:         color.RGBA{0xff, 0xff, 0xff, 0xff},
		Sign:         color.RGBA{0xff, 0xff, 0xff, 0xff},
		Banner:       color.RGBA{0xff, 0xff, 0x00, 0xff},
		BannerStroke: color.RGBA{0x00, 0x00, 0x00, 0xff},
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{0, 0, 0, 150},
		Text:         "PAUSADO",
	}
}

// Frames converts a duration to a tick count at the configured TPS,
// rounding up so short delays still wait at least one frame.
func Frames(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	n := int((d*time.Duration(C.TPS) + time.Second - 1) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}

// DeltaTime is the fixed step in seconds.
func DeltaTime() float64 {
	return 1.0 / float64(C.TPS)
}
