package traffic

import "github.com/golangdaddy/highway/pkg/vehicle"

// Result summarises one traffic pass
type Result struct {
	Points  int                 // points credited for cars that left the screen
	Passed  int                 // number of cars that left the screen
	Crashed *vehicle.TrafficCar // car that hit the player, nil if none
}

// Advance updates every car, drops the ones below cullY and checks for a crash.
// The pass stops at the first crash; cars after it are kept untouched.
// cars is compacted in place and the surviving slice is returned.
func Advance(cars []*vehicle.TrafficCar, roadSpeed float64, player *vehicle.Car, cullY float64) ([]*vehicle.TrafficCar, Result) {
	var res Result
	kept := cars[:0]

	for i, tc := range cars {
		tc.Update(roadSpeed, player.X, player.Y)

		if tc.Y > cullY {
			res.Points += tc.Points
			res.Passed++
			continue
		}

		if vehicle.Collides(player, tc) {
			res.Crashed = tc
			kept = append(kept, cars[i:]...)
			break
		}

		kept = append(kept, tc)
	}

	clear(cars[len(kept):])
	return kept, res
}
