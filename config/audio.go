package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundCoin
	SoundHit
	SoundLevelComplete
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Muted         bool
}

// Tone describes a synthesized square-wave blip. Frequency slides linearly
// from StartHz to EndHz over the duration.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Volume   float64 // 0.0 - 1.0
}

// SoundConfig maps sound IDs to their tone sequences
type SoundConfig struct {
	Tones map[SoundID][]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID][]Tone{
			SoundJump: {
				{StartHz: 300, EndHz: 600, Duration: 0.12, Volume: 0.4},
			},
			SoundCoin: {
				{StartHz: 988, EndHz: 988, Duration: 0.06, Volume: 0.35},
				{StartHz: 1319, EndHz: 1319, Duration: 0.14, Volume: 0.35},
			},
			SoundHit: {
				{StartHz: 220, EndHz: 80, Duration: 0.25, Volume: 0.5},
			},
			SoundLevelComplete: {
				{StartHz: 523, EndHz: 523, Duration: 0.1, Volume: 0.35},
				{StartHz: 659, EndHz: 659, Duration: 0.1, Volume: 0.35},
				{StartHz: 784, EndHz: 784, Duration: 0.1, Volume: 0.35},
				{StartHz: 1047, EndHz: 1047, Duration: 0.25, Volume: 0.35},
			},
			SoundMenuSelect: {
				{StartHz: 660, EndHz: 880, Duration: 0.08, Volume: 0.3},
			},
		},
	}
}
