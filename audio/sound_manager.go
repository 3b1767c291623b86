package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fireworks/parameter"
)

// SoundManager plays synthesized effects through a single mixer on the speaker
// All Play methods are fire-and-forget and degrade to no-ops without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	// voices currently sounding per type, decremented from the speaker goroutine
	active [soundTypeCount]atomic.Int32
	limits [soundTypeCount]int32
}

// NewSoundManager creates a new sound manager, cfg may be nil for defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	sm.limits[SoundExplosion] = parameter.MaxConcurrentExplosions
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return fmt.Errorf("audio disabled by config: %w", ErrNotInitialized)
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether a device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio system
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
	for i := range sm.active {
		sm.active[i].Store(0)
	}
	sm.initialized = false
}

// PlayExplosion plays the detonation boom
func (sm *SoundManager) PlayExplosion() {
	sm.play(SoundExplosion)
}

// PlayLaunch plays the rising whistle
func (sm *SoundManager) PlayLaunch() {
	sm.play(SoundLaunch)
}

// Play queues a sound, returning ErrNotInitialized without a device
func (sm *SoundManager) Play(st SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if st < 0 || st >= soundTypeCount {
		return fmt.Errorf("%w: %d", ErrUnknownSound, st)
	}

	streamer := sm.voice(st)
	if streamer == nil {
		return nil
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// play is the notifier path, failures are logged and swallowed
func (sm *SoundManager) play(st SoundType) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[AUDIO] %s playback panicked: %v", st, r)
		}
	}()

	if err := sm.Play(st); err != nil && !errors.Is(err, ErrNotInitialized) {
		log.Printf("[AUDIO] %s playback failed: %v", st, err)
	}
}

// voice builds the streamer for st, nil when the voice cap for st is reached
// The returned streamer releases its voice slot when drained
func (sm *SoundManager) voice(st SoundType) beep.Streamer {
	if limit := sm.limits[st]; limit > 0 {
		if sm.active[st].Add(1) > limit {
			sm.active[st].Add(-1)
			return nil
		}
	} else {
		sm.active[st].Add(1)
	}

	effect := GetSoundEffect(st, sm.cfg)
	if effect == nil {
		sm.active[st].Add(-1)
		return nil
	}

	return beep.Seq(effect, beep.Callback(func() {
		sm.active[st].Add(-1)
	}))
}

// Active returns the number of sounding voices of st
func (sm *SoundManager) Active(st SoundType) int {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return int(sm.active[st].Load())
}
