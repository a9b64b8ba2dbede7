package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/sinkhole/parameter"
)

// WaveType selects the raw tone behind an effect
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// Tone returns d worth of the given wave
// Frequencies the generators reject (at or above Nyquist) play as silence of the same length
func Tone(wave WaveType, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)

	var src beep.Streamer
	var err error
	switch wave {
	case WaveSine:
		src, err = generators.SineTone(rate, freq)
	case WaveSquare:
		src, err = generators.SquareTone(rate, freq)
	case WaveNoise:
		src = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for i := range samples {
				v := rand.Float64()*2 - 1
				samples[i] = [2]float64{v, v}
			}
			return len(samples), true
		})
	}
	if err != nil || src == nil {
		return beep.Silence(n)
	}
	return beep.Take(n, src)
}

// Shape cuts s to d and applies a linear fade in over attack and fade out over release
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, att, rel := rate.N(d), rate.N(attack), rate.N(release)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		samples = samples[:min(len(samples), total-pos)]
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			g := envelopeGain(pos, total, att, rel)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

func envelopeGain(pos, total, att, rel int) float64 {
	g := 1.0
	if att > 0 && pos < att {
		g = float64(pos) / float64(att)
	}
	if rel > 0 && pos >= total-rel {
		g = min(g, float64(total-pos)/float64(rel))
	}
	return g
}

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is expressed as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one shaped tone of an effect
func note(wave WaveType, freq float64, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(wave, freq, d, rate), d, attack, release, rate)
}

// CreateCollectSound generates a short bell; pitch rises a semitone per size, capped at an octave
func CreateCollectSound(cfg *AudioConfig, size int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	base := 660.0 * math.Pow(2, float64(min(max(size-1, 0), 12))/12)
	d := parameter.CollectSoundDuration

	bell := beep.Mix(
		newVolume(note(WaveSine, base, d, parameter.CollectSoundAttack, parameter.CollectSoundFundamentalRelease, rate), 0.7),
		newVolume(note(WaveSine, base*2, d, parameter.CollectSoundAttack, parameter.CollectSoundOvertoneRelease, rate), 0.3),
	)
	return newVolume(bell, cfg.EffectVolumes[SoundCollect]*cfg.MasterVolume)
}

// CreateCoinSound generates a two-note chime for currency, B5 then E6
func CreateCoinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	chime := beep.Seq(
		note(WaveSquare, 987.77, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release, rate),
		note(WaveSquare, 1318.51, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release, rate),
	)
	return newVolume(chime, cfg.EffectVolumes[SoundCoin]*cfg.MasterVolume)
}

// levelUpNotes is a C major arpeggio, C5 to C6
var levelUpNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// CreateLevelUpSound generates a rising arpeggio
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	parts := make([]beep.Streamer, len(levelUpNotes))
	for i, f := range levelUpNotes {
		parts[i] = note(WaveSine, f, parameter.LevelUpNoteDuration, parameter.LevelUpNoteAttack, parameter.LevelUpNoteRelease, rate)
	}
	return newVolume(beep.Seq(parts...), cfg.EffectVolumes[SoundLevelUp]*cfg.MasterVolume)
}

// CreateMagnetSound generates a soft noise swell
func CreateMagnetSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	swell := note(WaveNoise, 0, parameter.MagnetSoundDuration, parameter.MagnetSoundAttack, parameter.MagnetSoundRelease, rate)
	return newVolume(swell, cfg.EffectVolumes[SoundMagnet]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for soundType; size only affects SoundCollect
func GetSoundEffect(soundType SoundType, cfg *AudioConfig, size int) beep.Streamer {
	switch soundType {
	case SoundCollect:
		return CreateCollectSound(cfg, size)
	case SoundCoin:
		return CreateCoinSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundMagnet:
		return CreateMagnetSound(cfg)
	default:
		return nil
	}
}
