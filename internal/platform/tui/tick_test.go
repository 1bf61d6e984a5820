package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		name string
		rate int
		want time.Duration
	}{
		{"default rate", 60, time.Second / 60},
		{"slow rate", 10, 100 * time.Millisecond},
		{"zero clamps to one", 0, time.Second},
		{"negative clamps to one", -5, time.Second},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tickInterval(tc.rate); got != tc.want {
				t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.want)
			}
		})
	}
}
