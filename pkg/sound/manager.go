package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/golangdaddy/highway/pkg/pickup"
	"github.com/golangdaddy/highway/pkg/session"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short sound effect
type Cue struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Volume   float64
}

var (
	CueLaneChange = Cue{Freq: 400, Duration: 100 * time.Millisecond, Wave: Sine, Volume: 0.3}
	CueLevelUp    = Cue{Freq: 800, Duration: 300 * time.Millisecond, Wave: Sine, Volume: 0.4}
	CueCrash      = Cue{Duration: 500 * time.Millisecond, Wave: Noise, Volume: 0.5}
	CueNitro      = Cue{Freq: 1000, Duration: 150 * time.Millisecond, Wave: Sine, Volume: 0.3}
	CuePothole    = Cue{Freq: 200, Duration: 120 * time.Millisecond, Wave: Saw, Volume: 0.3}
)

// CueFor maps a session event to its sound, if it has one
func CueFor(e session.Event) (Cue, bool) {
	switch e.Kind {
	case session.EventLaneChange:
		return CueLaneChange, true
	case session.EventLevelUp:
		return CueLevelUp, true
	case session.EventCrash:
		return CueCrash, true
	case session.EventPickup:
		if e.Item == pickup.Nitro {
			return CueNitro, true
		}
		return CuePothole, true
	}
	return Cue{}, false
}

// Streamer renders the cue as a finite beep stream
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(c.Freq, c.Duration, c.Wave, rate)
	return volume(NewDecay(osc, c.Duration, rate), c.Volume)
}

// Manager plays event cues through the speaker
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a silent manager; call Initialize to open the speaker
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops every sound and releases the speaker
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// Play queues a cue on the mixer
func (m *Manager) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(c.Streamer(sampleRate))
	speaker.Unlock()
}

// HandleEvents plays the cue of every event that has one
func (m *Manager) HandleEvents(events []session.Event) {
	for _, e := range events {
		if c, ok := CueFor(e); ok {
			m.Play(c)
		}
	}
}
