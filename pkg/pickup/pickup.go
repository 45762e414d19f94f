package pickup

import (
	"github.com/google/uuid"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

const (
	itemWidth  = 40.0
	itemHeight = 20.0
	itemDrift  = 2.0
	cullMargin = 200.0

	potholeFactor = 0.6
	nitroFactor   = 1.6
)

// Kind is the type of a road item
type Kind int

const (
	Pothole Kind = iota
	Nitro
)

func (k Kind) String() string {
	switch k {
	case Pothole:
		return "pothole"
	case Nitro:
		return "nitro"
	}
	return "unknown"
}

// Sampler is the random source for item placement
type Sampler interface {
	Float64() float64
	Intn(n int) int
}

// Item is a pothole or nitro can lying in a lane
type Item struct {
	ID   uuid.UUID
	Kind Kind
	Lane int
	X, Y float64
	W, H float64
}

// Bounds implements vehicle.Vehicle
func (it *Item) Bounds() vehicle.Rect {
	return vehicle.Rect{X: it.X, Y: it.Y, W: it.W, H: it.H}
}

// Manager spawns, scrolls and collects road items
type Manager struct {
	Items []*Item

	obstacleDensity float64
	powerupDensity  float64

	cfg    config.Config
	rng    Sampler
	ticks  int
	boost  int // nitro ticks remaining
	height float64
}

// NewManager creates a manager using the densities of the active environment
func NewManager(cfg config.Config, obstacleDensity, powerupDensity float64, rng Sampler) *Manager {
	return &Manager{
		obstacleDensity: obstacleDensity,
		powerupDensity:  powerupDensity,
		cfg:             cfg,
		rng:             rng,
		height:          float64(cfg.WindowHeight),
	}
}

// Reset removes every item and cancels any boost
func (m *Manager) Reset() {
	clear(m.Items)
	m.Items = m.Items[:0]
	m.ticks = 0
	m.boost = 0
}

// Boosting reports whether a nitro is active
func (m *Manager) Boosting() bool {
	return m.boost > 0
}

// Update runs one tick: maybe spawn, scroll, expire the boost and collect
// whatever the player drives over. The collected items are returned in list order.
func (m *Manager) Update(roadSpeed float64, player *vehicle.Car) []*Item {
	m.ticks++
	if m.cfg.PickupInterval > 0 && m.ticks%m.cfg.PickupInterval == 0 {
		m.roll()
	}

	if m.boost > 0 {
		m.boost--
		if m.boost == 0 {
			player.MaxSpeed = m.cfg.PlayerMaxSpeed
			player.Speed = min(player.Speed, player.MaxSpeed)
		}
	}

	var collected []*Item
	kept := m.Items[:0]
	for _, it := range m.Items {
		it.Y += itemDrift + roadSpeed
		if it.Y > m.height+cullMargin {
			continue
		}
		if vehicle.Collides(player, it) {
			m.apply(it, player)
			collected = append(collected, it)
			continue
		}
		kept = append(kept, it)
	}
	clear(m.Items[len(kept):])
	m.Items = kept

	return collected
}

// roll draws once and spawns at most one item
func (m *Manager) roll() {
	r := m.rng.Float64()
	switch {
	case r < m.obstacleDensity:
		m.Spawn(Pothole)
	case r < m.obstacleDensity+m.powerupDensity:
		m.Spawn(Nitro)
	}
}

// Spawn places an item of kind k in a random lane above the screen
func (m *Manager) Spawn(k Kind) *Item {
	lane := m.rng.Intn(m.cfg.Lanes)
	it := &Item{
		ID:   uuid.New(),
		Kind: k,
		Lane: lane,
		X:    m.cfg.LaneX(lane, itemWidth),
		Y:    -itemHeight - m.rng.Float64()*200,
		W:    itemWidth,
		H:    itemHeight,
	}
	m.Items = append(m.Items, it)
	return it
}

// apply changes the player for a collected item.
// A nitro picked up while boosting refreshes the timer instead of stacking.
func (m *Manager) apply(it *Item, player *vehicle.Car) {
	switch it.Kind {
	case Pothole:
		player.Speed = max(0, player.Speed*potholeFactor)
	case Nitro:
		player.MaxSpeed = m.cfg.PlayerMaxSpeed * nitroFactor
		m.boost = m.cfg.NitroDuration
	}
}
