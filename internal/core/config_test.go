package core

import (
	"testing"
	"time"
)

func TestDeltaMillis(t *testing.T) {
	cfg := DefaultConfig()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		prev     time.Time
		now      time.Time
		expected float64
	}{
		{"first tick", time.Time{}, base, 0},
		{"regular frame", base, base.Add(16 * time.Millisecond), 16},
		{"clock went backwards", base, base.Add(-time.Second), 0},
		{"long stall is capped", base, base.Add(5 * time.Second), 250},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cfg.DeltaMillis(tc.prev, tc.now)
			if got != tc.expected {
				t.Errorf("DeltaMillis() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q, expected %q", ActionJump.String(), "Jump")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected %q", Action(99).String(), "Unknown")
	}
}
