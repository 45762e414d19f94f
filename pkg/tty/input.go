package tty

import (
	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/highway/pkg/session"
)

// holdTicks is how long a throttle key counts as held after its last press.
// Terminals only report key repeats, never releases.
const holdTicks = 10

// Input turns terminal key events into per-tick session controls
type Input struct {
	pending    session.Controls
	accelTicks int
	brakeTicks int
}

// HandleKey records a key press and reports whether the player asked to quit
func (in *Input) HandleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		in.pending.Left = true
	case tcell.KeyRight:
		in.pending.Right = true
	case tcell.KeyUp:
		in.accelTicks, in.brakeTicks = holdTicks, 0
	case tcell.KeyDown:
		in.brakeTicks, in.accelTicks = holdTicks, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			in.pending.Left = true
		case 'd', 'D':
			in.pending.Right = true
		case 'w', 'W':
			in.accelTicks, in.brakeTicks = holdTicks, 0
		case 's', 'S':
			in.brakeTicks, in.accelTicks = holdTicks, 0
		case ' ':
			in.pending.TogglePause = true
		case 'r', 'R':
			in.pending.Restart = true
		case 'q', 'Q':
			return true
		}
	}
	return false
}

// Next returns the controls for the coming tick and clears the edge-triggered ones
func (in *Input) Next() session.Controls {
	c := in.pending
	c.Accelerate = in.accelTicks > 0
	c.Brake = in.brakeTicks > 0

	if in.accelTicks > 0 {
		in.accelTicks--
	}
	if in.brakeTicks > 0 {
		in.brakeTicks--
	}
	in.pending = session.Controls{}
	return c
}
