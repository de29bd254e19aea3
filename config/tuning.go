package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is an optional YAML overlay for gameplay constants.
// Zero values leave the built-in defaults untouched.
type Tuning struct {
	Player struct {
		RunSpeed       float64 `yaml:"runSpeed"`
		JumpSpeed      float64 `yaml:"jumpSpeed"`
		StompSpeed     float64 `yaml:"stompSpeed"`
		StompThreshold float64 `yaml:"stompThreshold"`
		StartingLives  int     `yaml:"startingLives"`
		InvulnFrames   int     `yaml:"invulnFrames"`
	} `yaml:"player"`

	Enemy struct {
		PatrolSpeed float64 `yaml:"patrolSpeed"`
	} `yaml:"enemy"`

	Physics struct {
		Gravity      float64 `yaml:"gravity"`
		MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	} `yaml:"physics"`

	Score struct {
		Coin  int `yaml:"coin"`
		Stomp int `yaml:"stomp"`
		Flag  int `yaml:"flag"`
	} `yaml:"score"`

	Audio struct {
		SFXVolume float64 `yaml:"sfxVolume"`
	} `yaml:"audio"`

	Touch struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"touch"`
}

// LoadTuning reads and validates a tuning overlay from path.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}

	return &t, nil
}

// Validate rejects values that would break gameplay invariants.
func (t *Tuning) Validate() error {
	if t.Player.RunSpeed < 0 {
		return errors.New("player.runSpeed must not be negative")
	}
	if t.Player.JumpSpeed > 0 {
		return errors.New("player.jumpSpeed must be negative (upward)")
	}
	if t.Player.StompSpeed > 0 {
		return errors.New("player.stompSpeed must be negative (upward)")
	}
	if t.Player.StompThreshold < 0 {
		return errors.New("player.stompThreshold must not be negative")
	}
	if t.Player.StartingLives < 0 {
		return errors.New("player.startingLives must not be negative")
	}
	if t.Player.InvulnFrames < 0 {
		return errors.New("player.invulnFrames must not be negative")
	}
	if t.Enemy.PatrolSpeed < 0 {
		return errors.New("enemy.patrolSpeed must not be negative")
	}
	if t.Physics.Gravity < 0 || t.Physics.MaxFallSpeed < 0 {
		return errors.New("physics values must not be negative")
	}
	if t.Score.Coin < 0 || t.Score.Stomp < 0 || t.Score.Flag < 0 {
		return errors.New("score rewards must not be negative")
	}
	if t.Audio.SFXVolume < 0 || t.Audio.SFXVolume > 1 {
		return errors.New("audio.sfxVolume must be between 0 and 1")
	}
	return nil
}

// Apply copies every non-zero field over the package defaults.
func (t *Tuning) Apply() {
	setFloat(&Player.RunSpeed, t.Player.RunSpeed)
	setFloat(&Player.JumpSpeed, t.Player.JumpSpeed)
	setFloat(&Player.StompSpeed, t.Player.StompSpeed)
	setFloat(&Player.StompThreshold, t.Player.StompThreshold)
	setInt(&Player.StartingLives, t.Player.StartingLives)
	setInt(&Player.InvulnFrames, t.Player.InvulnFrames)
	setFloat(&Enemy.PatrolSpeed, t.Enemy.PatrolSpeed)
	setFloat(&Physics.Gravity, t.Physics.Gravity)
	setFloat(&Physics.MaxFallSpeed, t.Physics.MaxFallSpeed)
	setInt(&Score.Coin, t.Score.Coin)
	setInt(&Score.Stomp, t.Score.Stomp)
	setInt(&Score.Flag, t.Score.Flag)
	setFloat(&Audio.DefaultSFXVol, t.Audio.SFXVolume)
	if t.Touch.Enabled {
		Touch.Enabled = true
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
