package game

import "testing"

func TestBodyIntegrate(t *testing.T) {
	b := Body{Y: 100, Vel: 0}

	b.Integrate(0.5, 1000)

	if b.Vel != 500 {
		t.Errorf("velocity after 0.5s at g=1000 = %v, expected 500", b.Vel)
	}
	if b.Y != 350 {
		t.Errorf("position = %v, expected 350", b.Y)
	}

	// Velocity keeps accumulating across ticks
	b.Integrate(0.5, 1000)
	if b.Vel != 1000 {
		t.Errorf("velocity after 1s = %v, expected 1000", b.Vel)
	}
}

func TestBodyImpulseIsAbsolute(t *testing.T) {
	b := Body{Y: 100, Vel: 300}

	b.Impulse(-450)
	if b.Vel != -450 {
		t.Errorf("impulse should set velocity, got %v", b.Vel)
	}

	// Repeated impulses do not stack
	b.Impulse(-450)
	if b.Vel != -450 {
		t.Errorf("repeated impulse stacked, got %v", b.Vel)
	}
}
