package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundKick
	SoundGoal
	SoundMiss
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64 `env:"SFX_VOLUME"`
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
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundKick: "audio/sfx/kick.wav",
			SoundGoal: "audio/sfx/goal.wav",
			SoundMiss: "audio/sfx/miss.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundGoal: 0.6,
		},
	}
}
