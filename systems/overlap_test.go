package systems

import (
	"testing"

	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/systems/factory"
	"github.com/automoto/flagpole/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCollectCoinAwardsOnce(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 300, 300, nil)
	cx, cy := components.Object.Get(player).Center()
	factory.CreateCoin(e, cx, cy)

	for i := 0; i < 5; i++ {
		UpdateOverlaps(e)
	}

	if got := GetGameState(e).Score; got != cfg.Score.Coin {
		t.Errorf("score = %d, want %d", got, cfg.Score.Coin)
	}
	if n := count(e, tags.Coin); n != 0 {
		t.Errorf("coins left = %d, want 0", n)
	}
}

func TestCollectCoinIgnoresRemovedCoin(t *testing.T) {
	e := newTestWorld(t)
	coin := factory.CreateCoin(e, 100, 100)

	CollectCoin(e, coin)
	CollectCoin(e, coin)

	if got := GetGameState(e).Score; got != cfg.Score.Coin {
		t.Errorf("score = %d, want %d", got, cfg.Score.Coin)
	}
}

func TestSpaceOverlapsSkipsDistantEntities(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 300, 300, nil)
	factory.CreateCoin(e, 600, 300)
	factory.CreateEnemy(e, 900, 300, 800, 1000, nil, "")

	coins, enemies := SpaceOverlaps(e, player)
	if len(coins) != 0 || len(enemies) != 0 {
		t.Errorf("got %d coins and %d enemies, want none", len(coins), len(enemies))
	}
}

func TestOverlapSystemUsesQuery(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlayer(e, 300, 300, nil)
	far := factory.CreateCoin(e, 2000, 100)

	query := func(_ *ecs.ECS, _ *donburi.Entry) (coins, enemies []*donburi.Entry) {
		return []*donburi.Entry{far}, nil
	}
	OverlapSystem(query)(e)

	if far.Valid() {
		t.Error("coin reported by the query was not collected")
	}
	if got := GetGameState(e).Score; got != cfg.Score.Coin {
		t.Errorf("score = %d, want %d", got, cfg.Score.Coin)
	}
}

func TestTouchEnemy(t *testing.T) {
	tests := []struct {
		name         string
		velY         float64
		invulnerable bool
		wantAlive    bool
		wantScore    int
		wantLives    int
		wantVelY     float64
		wantFlash    bool
	}{
		{
			name:      "stomp while falling fast",
			velY:      300,
			wantAlive: false,
			wantScore: 200,
			wantLives: 3,
			wantVelY:  cfg.Player.StompSpeed,
		},
		{
			name:      "slow fall is a hit",
			velY:      150,
			wantAlive: true,
			wantLives: 2,
			wantVelY:  150,
			wantFlash: true,
		},
		{
			name:      "walking into it is a hit",
			velY:      0,
			wantAlive: true,
			wantLives: 2,
			wantFlash: true,
		},
		{
			name:         "hit while invulnerable is ignored",
			velY:         0,
			invulnerable: true,
			wantAlive:    true,
			wantLives:    3,
		},
		{
			name:         "stomp still counts while invulnerable",
			velY:         400,
			invulnerable: true,
			wantAlive:    false,
			wantScore:    200,
			wantLives:    3,
			wantVelY:     cfg.Player.StompSpeed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t)
			player := newSpritePlayer(e, 300, 300)
			enemy := factory.CreateEnemy(e, 300, 330, 200, 400, nil, "")

			components.Physics.Get(player).VelY = tt.velY
			if tt.invulnerable {
				components.Player.Get(player).InvulnFrames = 10
			}

			TouchEnemy(e, player, enemy)

			if enemy.Valid() != tt.wantAlive {
				t.Errorf("enemy alive = %v, want %v", enemy.Valid(), tt.wantAlive)
			}
			state := GetGameState(e)
			if state.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", state.Score, tt.wantScore)
			}
			if state.Lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", state.Lives, tt.wantLives)
			}
			if got := components.Physics.Get(player).VelY; got != tt.wantVelY {
				t.Errorf("velY = %v, want %v", got, tt.wantVelY)
			}
			if got := components.Flash.Get(player).Active; got != tt.wantFlash {
				t.Errorf("flash = %v, want %v", got, tt.wantFlash)
			}
		})
	}
}

func TestStompAndTwoCoins(t *testing.T) {
	e := newTestWorld(t)
	player := newSpritePlayer(e, 300, 300)
	enemy := factory.CreateEnemy(e, 300, 330, 200, 400, nil, "")
	coinA := factory.CreateCoin(e, 500, 300)
	coinB := factory.CreateCoin(e, 540, 300)

	components.Physics.Get(player).VelY = 400
	TouchEnemy(e, player, enemy)
	CollectCoin(e, coinA)
	CollectCoin(e, coinB)

	state := GetGameState(e)
	if state.Score != 400 || state.Lives != 3 {
		t.Errorf("score=%d lives=%d, want 400 and 3", state.Score, state.Lives)
	}
}

func TestThreeHitsResetRun(t *testing.T) {
	e := newTestWorld(t)
	player := newSpritePlayer(e, 300, 300)
	enemy := factory.CreateEnemy(e, 300, 330, 200, 400, nil, "")
	state := GetGameState(e)
	state.AddScore(700)

	for hit := 1; hit <= 3; hit++ {
		components.Player.Get(player).InvulnFrames = 0
		TouchEnemy(e, player, enemy)

		if hit < 3 && state.RestartPending {
			t.Fatalf("restart requested after %d hits", hit)
		}
	}

	if !state.RestartPending {
		t.Fatal("expected restart after the last life")
	}
	if state.Score != 0 || state.Lives != cfg.Player.StartingLives {
		t.Errorf("after reset score=%d lives=%d", state.Score, state.Lives)
	}
	if !enemy.Valid() {
		t.Error("hits must leave the enemy alive")
	}
}

func TestOverlapWithEnemyHitsOnceWhileTouching(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 300, 300, nil)
	cx, cy := components.Object.Get(player).Center()
	factory.CreateEnemy(e, cx, cy-cfg.Enemy.SpawnOffsetY, 200, 400, nil, "")

	for i := 0; i < cfg.Player.InvulnFrames/2; i++ {
		UpdateOverlaps(e)
	}

	if got := GetGameState(e).Lives; got != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want %d", got, cfg.Player.StartingLives-1)
	}
}
