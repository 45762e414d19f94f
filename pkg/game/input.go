package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/highway/pkg/session"
)

// readControls samples the keyboard for one tick.
// Lane changes, pause and restart fire on the press only; throttle follows the held key.
func readControls() session.Controls {
	return session.Controls{
		Left:        justPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:       justPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Accelerate:  pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Brake:       pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		TogglePause: justPressed(ebiten.KeySpace),
		Restart:     justPressed(ebiten.KeyR),
	}
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
