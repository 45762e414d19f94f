package ui

import "github.com/golangdaddy/highway/pkg/environment"

// FreeDrive is the label of the entry that starts without a preset
const FreeDrive = "Free drive"

// Menu is a wrapping list of environment choices, free drive first
type Menu struct {
	presets []environment.Preset
	index   int
}

// NewMenu creates a menu over presets
func NewMenu(presets []environment.Preset) *Menu {
	return &Menu{presets: presets}
}

// Labels lists the entries in display order
func (m *Menu) Labels() []string {
	labels := make([]string, 0, len(m.presets)+1)
	labels = append(labels, FreeDrive)
	for _, p := range m.presets {
		name := p.Name
		if name == "" {
			name = p.ID
		}
		labels = append(labels, name)
	}
	return labels
}

// Index is the highlighted entry
func (m *Menu) Index() int {
	return m.index
}

// Move shifts the highlight by delta, wrapping at both ends
func (m *Menu) Move(delta int) {
	n := len(m.presets) + 1
	m.index = ((m.index+delta)%n + n) % n
}

// Selected returns the highlighted preset, nil for free drive
func (m *Menu) Selected() *environment.Preset {
	if m.index == 0 {
		return nil
	}
	p := m.presets[m.index-1]
	return &p
}
