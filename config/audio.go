package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundCoin
	SoundStomp
	SoundHurt
	SoundClear
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump:  "audio/sfx/jump.wav",
			SoundCoin:  "audio/sfx/coin.wav",
			SoundStomp: "audio/sfx/stomp.wav",
			SoundHurt:  "audio/sfx/hurt.wav",
			SoundClear: "audio/sfx/clear.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCoin: 0.7,
		},
	}
}
