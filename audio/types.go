package audio

import (
	"github.com/lixenwraith/sinkhole/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCollect SoundType = iota // Any object swallowed
	SoundCoin                     // Currency swallowed
	SoundLevelUp                  // Hole grew a size
	SoundMagnet                   // Magnet switched on
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"collect", "coin", "level_up", "magnet"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.MasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundCollect: parameter.CollectVolume,
			SoundCoin:    parameter.CoinVolume,
			SoundLevelUp: parameter.LevelUpVolume,
			SoundMagnet:  parameter.MagnetVolume,
		},
	}
}
