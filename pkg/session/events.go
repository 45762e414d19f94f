package session

import "github.com/golangdaddy/highway/pkg/pickup"

// Status is the top-level game state
type Status int

const (
	Playing Status = iota
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// EventKind identifies something that happened during a tick
type EventKind int

const (
	EventLaneChange EventKind = iota
	EventLevelUp
	EventCrash
	EventPickup
	EventPause
	EventResume
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventLaneChange:
		return "lane_change"
	case EventLevelUp:
		return "level_up"
	case EventCrash:
		return "crash"
	case EventPickup:
		return "pickup"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

// Event is emitted by Tick for sound and logging
type Event struct {
	Kind  EventKind
	Level int         // new level, for EventLevelUp
	Item  pickup.Kind // for EventPickup
	Label string      // vehicle hit, for EventCrash
}

// Controls is the input sampled for one tick.
// Left, Right, TogglePause and Restart are edge-triggered; the frontend sets them
// only on the tick the key went down.
type Controls struct {
	Left        bool
	Right       bool
	Accelerate  bool
	Brake       bool
	TogglePause bool
	Restart     bool
}
