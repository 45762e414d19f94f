package main

import (
	"github.com/golangdaddy/highway/pkg/session"
)

// lookAhead is how far up the lane the autopilot checks for traffic
const lookAhead = 320.0

// autopilot accelerates and swerves into the adjacent lane with the most room
type autopilot struct{}

func (autopilot) controls(s *session.Session) session.Controls {
	c := session.Controls{Accelerate: true}
	if s.Status == session.GameOver {
		return c
	}
	p := s.Player
	if p.IsChangingLane {
		return c
	}

	here := room(s, p.CurrentLane)
	if here > lookAhead {
		return c
	}

	best, bestRoom := 0, here
	for _, dir := range []int{-1, 1} {
		lane := p.CurrentLane + dir
		if lane < 0 || lane >= s.Config().Lanes {
			continue
		}
		if r := room(s, lane); r > bestRoom {
			best, bestRoom = dir, r
		}
	}

	switch best {
	case -1:
		c.Left = true
	case 1:
		c.Right = true
	default:
		c.Accelerate = false
		c.Brake = true
	}
	return c
}

// room is the free distance above the player in lane; cars alongside count as zero
func room(s *session.Session, lane int) float64 {
	p := s.Player
	free := 1e6
	for _, tc := range s.Traffic {
		if tc.Lane != lane {
			continue
		}
		if tc.Y+tc.Height > p.Y-10 && tc.Y < p.Y+p.Height+10 {
			return 0
		}
		if tc.Y < p.Y {
			free = min(free, p.Y-(tc.Y+tc.Height))
		}
	}
	return free
}
