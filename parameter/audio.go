package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines output latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between two plays of the same sound; bursts of collections collapse into one chime
	MinSoundGap = 40 * time.Millisecond
)

// Volumes are linear gain in [0, 1]
const (
	MasterVolume = 0.6

	CollectVolume = 0.5
	CoinVolume    = 0.4
	LevelUpVolume = 0.7
	MagnetVolume  = 0.35
)

// Collect Sound
const (
	CollectSoundDuration           = 140 * time.Millisecond
	CollectSoundAttack             = 4 * time.Millisecond
	CollectSoundFundamentalRelease = 130 * time.Millisecond
	CollectSoundOvertoneRelease    = 60 * time.Millisecond
)

// Coin Sound
const (
	CoinSoundAttack        = 4 * time.Millisecond
	CoinSoundNote1Duration = 70 * time.Millisecond
	CoinSoundNote1Release  = 20 * time.Millisecond
	CoinSoundNote2Duration = 200 * time.Millisecond
	CoinSoundNote2Release  = 160 * time.Millisecond
)

// Level Up Sound
const (
	LevelUpNoteDuration = 90 * time.Millisecond
	LevelUpNoteAttack   = 5 * time.Millisecond
	LevelUpNoteRelease  = 60 * time.Millisecond
)

// Magnet Sound
const (
	MagnetSoundDuration = 350 * time.Millisecond
	MagnetSoundAttack   = 120 * time.Millisecond
	MagnetSoundRelease  = 200 * time.Millisecond
)
