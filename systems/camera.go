package systems

import (
	"math"

	"github.com/automoto/flagpole/components"
	"github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	targetX, targetY := components.Object.Get(playerEntry).Center()

	levelWidth, levelHeight := worldSize(e)
	if levelWidth == 0 {
		return
	}

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	// Camera bounds: ensure the level always fills the screen
	minCameraX := screenWidth / 2
	maxCameraX := math.Max(minCameraX, levelWidth-screenWidth/2)
	minCameraY := screenHeight / 2
	maxCameraY := math.Max(minCameraY, levelHeight-screenHeight/2)

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	if !camera.Snapped {
		camera.Position.X = targetX
		camera.Position.Y = targetY
		camera.Snapped = true
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// cameraOffset is the translation from world to screen space.
func cameraOffset(e *ecs.ECS, screenWidth, screenHeight int) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return -camera.Position.X + float64(screenWidth)/2, -camera.Position.Y + float64(screenHeight)/2
}
