package game

import (
	"testing"
	"time"
)

func TestCooldownFiresOncePerPeriod(t *testing.T) {
	c := NewCooldown(60 * time.Millisecond)
	var fired []int
	for i := 1; i <= 12; i++ {
		if c.Step(16 * time.Millisecond) {
			fired = append(fired, i)
		}
	}
	// 16ms steps reach 60ms on the 4th step; the overshoot is dropped.
	want := []int{4, 8, 12}
	if len(fired) != len(want) {
		t.Fatalf("fired on %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired on %v, want %v", fired, want)
			break
		}
	}
}

func TestCooldownShorterThanTick(t *testing.T) {
	c := NewCooldown(10 * time.Millisecond)
	for i := 0; i < 5; i++ {
		if !c.Step(16 * time.Millisecond) {
			t.Fatalf("step %d: a period shorter than the tick should fire every tick", i)
		}
		if c.Remaining() != 10*time.Millisecond {
			t.Errorf("remaining after fire = %v, want 10ms", c.Remaining())
		}
	}
}
