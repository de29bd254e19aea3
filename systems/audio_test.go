package systems

import (
	"testing"

	cfg "github.com/automoto/flagpole/config"
)

func TestSetSFXVolumeClamps(t *testing.T) {
	saved := globalSFXVolume
	t.Cleanup(func() { globalSFXVolume = saved })

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 0.4, 0.4},
		{"too loud", 1.5, 1},
		{"negative", -0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetSFXVolume(tt.in)
			if globalSFXVolume != tt.want {
				t.Errorf("volume = %v, want %v", globalSFXVolume, tt.want)
			}
		})
	}
}

func TestPlaySFXOnlyQueues(t *testing.T) {
	e := newTestWorld(t)
	PlaySFX(e, cfg.SoundCoin)
	PlaySFX(e, cfg.SoundJump)

	pending := GetOrCreateAudio(e).PendingSFX
	if len(pending) != 2 || pending[0] != cfg.SoundCoin || pending[1] != cfg.SoundJump {
		t.Errorf("pending = %v", pending)
	}
	if globalAudioContext != nil {
		t.Error("queueing a sound created the audio context")
	}
}
