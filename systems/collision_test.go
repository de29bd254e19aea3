package systems

import (
	"math"
	"testing"

	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/systems/factory"
)

func TestLandingRestsOnGround(t *testing.T) {
	e := newTestWorld(t)
	player := newSpritePlayer(e, 300, 200)
	settle(t, e, player)

	obj := components.Object.Get(player)
	physics := components.Physics.Get(player)
	if !near(obj.Y+obj.H, testGroundY) {
		t.Errorf("bottom = %v, want %v", obj.Y+obj.H, testGroundY)
	}
	if physics.VelY != 0 {
		t.Errorf("velY = %v, want 0 after a low bounce", physics.VelY)
	}

	stepFrames(e, 30)
	if !near(obj.Y+obj.H, testGroundY) || !components.Player.Get(player).Body.Grounded() {
		t.Error("player did not stay on the ground")
	}
}

func TestPlatformColliderStopsFall(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateSolid(e, 304, 376, 32, 32)
	player := newSpritePlayer(e, 320, 300)
	settle(t, e, player)

	obj := components.Object.Get(player)
	if !near(obj.Y+obj.H, 376) {
		t.Errorf("bottom = %v, want 376 on the platform", obj.Y+obj.H)
	}
}

func TestWorldBoundsClamp(t *testing.T) {
	e := newTestWorld(t)
	player := newSpritePlayer(e, 20, 480)
	components.Physics.Get(player).VelX = -cfg.Player.RunSpeed

	for i := 0; i < 30; i++ {
		UpdatePhysics(e)
		UpdateCollisions(e)
	}

	if x := components.Object.Get(player).X; x != 0 {
		t.Errorf("x = %v, want clamped at 0", x)
	}
}

func TestEnemyBouncesOffWorldEdge(t *testing.T) {
	e := newTestWorld(t)
	enemy := factory.CreateEnemy(e, testWorldWidth-20, 460, 0, testWorldWidth+100, nil, "")
	physics := components.Physics.Get(enemy)
	physics.VelX = cfg.Enemy.PatrolSpeed

	for i := 0; i < 120 && physics.VelX > 0; i++ {
		UpdatePhysics(e)
		UpdateCollisions(e)
	}

	if physics.VelX != -cfg.Enemy.PatrolSpeed {
		t.Errorf("velX = %v, want %v after the edge", physics.VelX, -cfg.Enemy.PatrolSpeed)
	}
}

func TestRebound(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		bounce float64
		want   float64
	}{
		{"full bounce", 40, 1, -40},
		{"small bounce rests", 500, 0.05, 0},
		{"no bounce", 300, 0, 0},
		{"large bounce keeps going", -400, 0.5, 200},
	}

	for _, tt := range tests {
		if got := rebound(tt.v, tt.bounce); got != tt.want {
			t.Errorf("%s: rebound(%v, %v) = %v, want %v", tt.name, tt.v, tt.bounce, got, tt.want)
		}
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
