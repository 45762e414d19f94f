package particles

import (
	"math/rand"
	"testing"
)

func TestExplosionLifecycle(t *testing.T) {
	s := NewSystem(0, rand.New(rand.NewSource(1)))
	s.AddExplosion(100, 100, 50)

	if s.Len() != 50 {
		t.Fatalf("Expected 50 particles, got %d", s.Len())
	}
	for _, p := range s.P {
		if p.Life < 1 || p.Life > 120 {
			t.Errorf("Life out of range: %f", p.Life)
		}
		if p.Size < 2 || p.Size > 5 {
			t.Errorf("Size out of range: %f", p.Size)
		}
	}

	// Every particle is gone after its maximum life
	for i := 0; i < 121; i++ {
		s.Update()
	}
	if s.Len() != 0 {
		t.Errorf("Expected all particles expired, %d remain", s.Len())
	}
}

func TestUpdateFadesAndMoves(t *testing.T) {
	s := NewSystem(0, rand.New(rand.NewSource(2)))
	s.Add(Particle{X: 0, Y: 0, VX: 1, VY: -2, Life: 10, MaxLife: 10, Size: 3})

	s.Update()

	p := s.P[0]
	if p.X != 1 || p.Y != -2 {
		t.Errorf("Expected position (1,-2), got (%f,%f)", p.X, p.Y)
	}
	if p.Life != 9 {
		t.Errorf("Expected life 9, got %f", p.Life)
	}
	// 255 * 9/10 truncates to 229
	if p.Color.A != 229 {
		t.Errorf("Expected alpha 229, got %d", p.Color.A)
	}
}

func TestUpdateAlphaTracksRemainingLife(t *testing.T) {
	tests := []struct {
		life, maxLife float64
		want          uint8
	}{
		{11, 10, 255},
		{6, 10, 127},
		{2, 4, 63},
		{1.5, 1, 127},
	}

	for _, tt := range tests {
		s := NewSystem(0, rand.New(rand.NewSource(7)))
		s.Add(Particle{Life: tt.life, MaxLife: tt.maxLife})
		s.Update()
		if s.Len() != 1 {
			t.Fatalf("Expected particle with life %v to survive", tt.life)
		}
		if got := s.P[0].Color.A; got != tt.want {
			t.Errorf("life %v/%v: Expected alpha %d, got %d", tt.life, tt.maxLife, tt.want, got)
		}
	}
}

func TestUpdatePreservesOrder(t *testing.T) {
	s := NewSystem(0, rand.New(rand.NewSource(3)))
	s.Add(Particle{Size: 1, Life: 5, MaxLife: 5})
	s.Add(Particle{Size: 2, Life: 1, MaxLife: 1})
	s.Add(Particle{Size: 3, Life: 5, MaxLife: 5})

	s.Update()

	if s.Len() != 2 {
		t.Fatalf("Expected 2 survivors, got %d", s.Len())
	}
	if s.P[0].Size != 1 || s.P[1].Size != 3 {
		t.Errorf("Expected survivors in original order, got sizes %f, %f", s.P[0].Size, s.P[1].Size)
	}
}

func TestLevelUpBurst(t *testing.T) {
	s := NewSystem(0, rand.New(rand.NewSource(4)))
	s.AddLevelUp(400, 300)
	if s.Len() != 20 {
		t.Fatalf("Expected 20 particles, got %d", s.Len())
	}
	for _, p := range s.P {
		if p.X < 300 || p.X > 500 || p.Y < 200 || p.Y > 400 {
			t.Errorf("Particle outside the burst box: (%f,%f)", p.X, p.Y)
		}
		if p.Life != 120 {
			t.Errorf("Expected life 120, got %f", p.Life)
		}
	}
}

func TestAddOverwritesWhenFull(t *testing.T) {
	s := NewSystem(4, rand.New(rand.NewSource(5)))
	for i := 0; i < 6; i++ {
		s.Add(Particle{Size: float64(i), Life: 10, MaxLife: 10})
	}
	if s.Len() != 4 {
		t.Fatalf("Expected cap of 4, got %d", s.Len())
	}
	if s.P[0].Size != 4 || s.P[1].Size != 5 {
		t.Errorf("Expected ring overwrite of oldest slots, got %v", s.P)
	}
}

func TestClear(t *testing.T) {
	s := NewSystem(0, rand.New(rand.NewSource(6)))
	s.AddExplosion(0, 0, 10)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty system, got %d", s.Len())
	}
}
