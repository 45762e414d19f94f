package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/golangdaddy/highway/pkg/pickup"
	"github.com/golangdaddy/highway/pkg/session"
)

func drain(s beep.Streamer) int {
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, Sine, rate)
	if got := drain(osc); got != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), got)
	}
}

func TestWavesInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, w := range []Wave{Sine, Square, Saw, Noise} {
		osc := NewOscillator(300, 20*time.Millisecond, w, rate)
		buf := make([][2]float64, 200)
		n, _ := osc.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("Wave %d sample %d invalid: %v", w, i, buf[i])
			}
		}
	}
}

func TestDecayFadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewDecay(NewOscillator(0, time.Second, Square, rate), time.Second, rate)
	buf := make([][2]float64, 1000)
	n, _ := s.Stream(buf)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if buf[0][0] != 1 {
		t.Errorf("Expected full volume at start, got %f", buf[0][0])
	}
	if buf[999][0] > 0.01 {
		t.Errorf("Expected near silence at the end, got %f", buf[999][0])
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event session.Event
		want  Cue
		ok    bool
	}{
		{session.Event{Kind: session.EventLaneChange}, CueLaneChange, true},
		{session.Event{Kind: session.EventLevelUp}, CueLevelUp, true},
		{session.Event{Kind: session.EventCrash}, CueCrash, true},
		{session.Event{Kind: session.EventPickup, Item: pickup.Nitro}, CueNitro, true},
		{session.Event{Kind: session.EventPickup, Item: pickup.Pothole}, CuePothole, true},
		{session.Event{Kind: session.EventPause}, Cue{}, false},
	}

	for _, tt := range tests {
		got, ok := CueFor(tt.event)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Event %s: expected %+v (%v), got %+v (%v)", tt.event.Kind, tt.want, tt.ok, got, ok)
		}
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	m := NewManager()
	m.HandleEvents([]session.Event{{Kind: session.EventCrash}})
	m.Close()
}
