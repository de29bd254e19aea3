package systems

import (
	"testing"

	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/systems/factory"
)

func TestJumpFromGround(t *testing.T) {
	e := newTestWorld(t)
	player := newSpritePlayer(e, 80, 420)
	settle(t, e, player)
	body := components.Player.Get(player).Body

	input := getOrCreateInput(e)
	input.JumpRequested = true
	UpdatePlayer(e)

	if got := body.VelocityY(); got != cfg.Player.JumpSpeed {
		t.Fatalf("velY = %v, want %v", got, cfg.Player.JumpSpeed)
	}
	if body.Grounded() {
		t.Fatal("grounded right after jumping")
	}
	if input.JumpRequested {
		t.Error("jump request not consumed")
	}
	if n := len(GetOrCreateAudio(e).PendingSFX); n != 1 {
		t.Errorf("queued sounds = %d, want 1", n)
	}

	airborne := 0
	for ; airborne < 240 && !body.Grounded(); airborne++ {
		Step(e)
	}
	if airborne < 30 {
		t.Errorf("landed after %d frames, expected a real arc", airborne)
	}
	if !body.Grounded() {
		t.Error("never landed")
	}
}

func TestJumpIgnoredInAir(t *testing.T) {
	e := newTestWorld(t)
	player := newSpritePlayer(e, 80, 100)
	body := components.Player.Get(player).Body

	getOrCreateInput(e).JumpRequested = true
	UpdatePlayer(e)

	if body.VelocityY() == cfg.Player.JumpSpeed {
		t.Error("jumped without ground under the player")
	}
}

func TestHorizontalIntent(t *testing.T) {
	tests := []struct {
		name       string
		left       bool
		right      bool
		wantVelX   float64
		wantFacing int
	}{
		{"left", true, false, -cfg.Player.RunSpeed, -1},
		{"right", false, true, cfg.Player.RunSpeed, 1},
		{"none", false, false, 0, 1},
		{"both held, left wins", true, true, -cfg.Player.RunSpeed, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t)
			player := newSpritePlayer(e, 300, 300)

			input := getOrCreateInput(e)
			input.Left, input.Right = tt.left, tt.right
			UpdatePlayer(e)

			if got := components.Physics.Get(player).VelX; got != tt.wantVelX {
				t.Errorf("velX = %v, want %v", got, tt.wantVelX)
			}
			data := components.Player.Get(player)
			if data.Facing != tt.wantFacing {
				t.Errorf("facing = %d, want %d", data.Facing, tt.wantFacing)
			}
			if got := components.Sprite.Get(player).FlipX; got != (tt.wantFacing < 0) {
				t.Errorf("flipX = %v", got)
			}
		})
	}
}

func TestInvulnerabilityWearsOff(t *testing.T) {
	e := newTestWorld(t)
	player := newSpritePlayer(e, 300, 300)
	components.Player.Get(player).InvulnFrames = 3

	for i := 0; i < 5; i++ {
		UpdatePlayer(e)
	}
	if got := components.Player.Get(player).InvulnFrames; got != 0 {
		t.Errorf("invuln frames = %d, want 0", got)
	}
}

func TestShapeBodyStepsAndHops(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 300, 420, nil)
	settle(t, e, player)

	body, ok := components.Player.Get(player).Body.(*components.ShapeBody)
	if !ok {
		t.Fatalf("fallback player body is %T", components.Player.Get(player).Body)
	}
	obj := components.Object.Get(player)

	x0 := obj.X
	input := getOrCreateInput(e)
	input.Right = true
	UpdatePlayer(e)
	input.Right = false
	if got := obj.X - x0; got != cfg.Player.FallbackStep {
		t.Errorf("step = %v, want %v", got, cfg.Player.FallbackStep)
	}

	y0 := obj.Y
	input.JumpRequested = true
	UpdatePlayer(e)
	if got := y0 - obj.Y; got != cfg.Player.HopHeight {
		t.Fatalf("hop height = %v, want %v", got, cfg.Player.HopHeight)
	}
	if body.Grounded() {
		t.Error("grounded mid-hop")
	}

	hopFrames := cfg.Frames(cfg.Player.HopDuration)
	stepFrames(e, hopFrames-1)
	if !body.Hopping() {
		t.Fatalf("hop ended early, before %d frames", hopFrames)
	}
	if obj.Y <= y0-cfg.Player.HopHeight {
		t.Errorf("no fall during hop: y = %v", obj.Y)
	}
	if vy := body.VelocityY(); vy <= cfg.Player.StompThreshold {
		t.Errorf("falling at %v by the end of the hop, want above %v", vy, cfg.Player.StompThreshold)
	}

	Step(e)
	if body.Hopping() {
		t.Fatal("hop still pending")
	}
	if obj.Y != y0 {
		t.Errorf("y after hop = %v, want %v", obj.Y, y0)
	}
	if vy := body.VelocityY(); vy != 0 {
		t.Errorf("velY after landing = %v, want 0", vy)
	}

	Step(e)
	if !body.Grounded() {
		t.Error("not grounded after landing")
	}
}

func TestShapeBodyStompsOutOfHop(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 300, 420, nil)
	settle(t, e, player)
	enemy := factory.CreateEnemy(e, 1500, 460, 1400, 1600, nil, "")
	body := components.Player.Get(player).Body.(*components.ShapeBody)

	getOrCreateInput(e).JumpRequested = true
	UpdatePlayer(e)
	stepFrames(e, 12)

	TouchEnemy(e, player, enemy)

	if enemy.Valid() {
		t.Error("enemy survived a falling hop")
	}
	if got := GetGameState(e).Score; got != cfg.Score.Stomp {
		t.Errorf("score = %d, want %d", got, cfg.Score.Stomp)
	}
	if got := body.VelocityY(); got != cfg.Player.StompSpeed {
		t.Errorf("velY = %v, want %v", got, cfg.Player.StompSpeed)
	}
	if body.Hopping() {
		t.Error("stomp bounce left the hop descent pending")
	}
}

func TestShapeBodyBlockedBySolid(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 300, 480, nil)
	obj := components.Object.Get(player)
	factory.CreateSolid(e, obj.X+obj.W+2, obj.Y, 32, obj.H)

	x0 := obj.X
	components.Player.Get(player).Body.SetVelocityX(cfg.Player.RunSpeed)

	if obj.X != x0 {
		t.Errorf("moved into a solid: x %v -> %v", x0, obj.X)
	}
}
