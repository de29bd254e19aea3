package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/flagpole/assets"
	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/systems"
	"github.com/automoto/flagpole/systems/factory"
	"github.com/automoto/flagpole/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	touch        *ui.TouchControls
	once         sync.Once
}

// NewPlatformerScene creates a fresh run of the level. The touch pad is
// optional and outlives the scene so its visibility survives restarts.
func NewPlatformerScene(sc SceneChanger, touch *ui.TouchControls) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, touch: touch}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	if ps.touch != nil {
		ps.touch.Update()
	}
	ps.ecs.Update()

	ps.checkRestart()
}

// checkRestart swaps in a new scene once the last life is gone.
func (ps *PlatformerScene) checkRestart() bool {
	state := systems.GetGameState(ps.ecs)
	if state == nil || !state.RestartPending {
		return false
	}
	ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.touch))
	return true
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if ps.touch != nil {
		ps.touch.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	level := assets.MustLoadLevel(cfg.Level)

	playerImage, err := assets.LoadImage(assets.PlayerImage)
	if err != nil {
		log.Printf("player sprite unavailable, using rectangle: %v", err)
		playerImage = nil
	}
	enemySheet, err := assets.LoadImage(assets.EnemiesSheet)
	if err != nil {
		log.Printf("enemy sheet unavailable, using rectangles: %v", err)
		enemySheet = nil
	}

	var touch components.TouchSource
	if ps.touch != nil {
		touch = ps.touch
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	for _, system := range systems.Gameplay {
		ecs.AddSystem(systems.WithGameplayChecks(system))
	}

	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawShapes)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawBanner)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	populate(ecs, level, playerImage, enemySheet, touch)
	ps.ecs = ecs
}

// populate creates every entity of a fresh run. Images may be nil; the
// player and enemies then fall back to plain rectangles.
func populate(ecs *ecs.ECS, level *assets.Level, playerImage, enemySheet *ebiten.Image, touch components.TouchSource) {
	// Create the level entity FIRST so factories can read the world size.
	factory.CreateLevel(ecs, level)
	factory.CreateSpace(ecs, level.Width, level.Height, cfg.Physics.SpaceCellSize, cfg.Physics.SpaceCellSize)
	factory.CreateCamera(ecs)
	factory.CreateGameState(ecs)
	factory.CreateBanner(ecs, cfg.HUD.BannerText)

	touchEntry := ecs.World.Entry(ecs.World.Create(components.Touch))
	components.Touch.SetValue(touchEntry, components.TouchData{Source: touch})

	for _, s := range level.Solids {
		factory.CreateSolid(ecs, s.X, s.Y, s.Width, s.Height)
	}
	for _, c := range level.Coins {
		factory.CreateCoin(ecs, c.X, c.Y)
	}
	for _, e := range level.EnemySpawns {
		factory.CreateEnemy(ecs, e.X, e.Y, e.MinX, e.MaxX, enemySheet, assets.EnemiesSheet)
	}
	for _, f := range level.Flags {
		factory.CreateFlag(ecs, f.X, f.Y)
	}

	spawn := level.PlayerSpawns[0]
	factory.CreatePlayer(ecs, spawn.X, spawn.Y, playerImage)
}
