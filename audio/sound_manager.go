package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/event"
	"github.com/lixenwraith/sinkhole/parameter"
)

// SoundManager plays short effects in response to engine events
// Without a working audio device every call is a silent no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	size        int
	lastPlayed  [soundTypeCount]time.Time
}

// NewSoundManager creates a new sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		size:  1,
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled configs succeed without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences new sounds without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues one effect; returns false when it was not played
// Repeats of the same sound inside MinSoundGap are dropped
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	if st < 0 || st >= soundTypeCount {
		return false
	}

	now := time.Now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(st, sm.cfg, sm.size)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[st] = now

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// HandleEvent implements engine.EventHandler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.LevelUpPayload); ok {
		sm.mu.Lock()
		sm.size = p.Level
		sm.mu.Unlock()
	}
	if st, ok := SoundFor(ev); ok {
		sm.Play(st)
	}
}

// EventTypes implements engine.EventHandler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventObjectCollected,
		event.EventHoleLevelUp,
		event.EventMagnetStarted,
		event.EventObjectivesComplete,
	}
}

// SoundFor maps an engine event to the effect it should trigger
func SoundFor(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventObjectCollected:
		if p, ok := ev.Payload.(*event.CollectedPayload); ok && isCurrency(p.Category) {
			return SoundCoin, true
		}
		return SoundCollect, true
	case event.EventHoleLevelUp, event.EventObjectivesComplete:
		return SoundLevelUp, true
	case event.EventMagnetStarted:
		return SoundMagnet, true
	default:
		return 0, false
	}
}

func isCurrency(c core.Category) bool {
	return c == core.CategoryCoin || c == core.CategoryGem
}
