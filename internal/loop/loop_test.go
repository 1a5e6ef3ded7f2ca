package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAdvanceCountsWholeSteps(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	l := New(clock, 50) // 20ms per tick

	if n := l.Advance(); n != 0 {
		t.Fatalf("no time elapsed, got %d ticks", n)
	}

	clock.Advance(50 * time.Millisecond)
	if n := l.Advance(); n != 2 {
		t.Errorf("50ms at 20ms/tick = %d ticks, expected 2", n)
	}

	// 10ms remainder + 10ms = one more tick
	clock.Advance(10 * time.Millisecond)
	if n := l.Advance(); n != 1 {
		t.Errorf("remainder should carry over, got %d ticks", n)
	}
}

func TestAdvanceCapsLongFrames(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	l := New(clock, 100) // 10ms per tick

	clock.Advance(5 * time.Second)
	if n := l.Advance(); n != int(maxFrame/(10*time.Millisecond)) {
		t.Errorf("long frame produced %d ticks, expected cap of %d", n, maxFrame/(10*time.Millisecond))
	}
}

func TestResetDropsAccumulatedTime(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	l := New(clock, 50)

	clock.Advance(15 * time.Millisecond)
	l.Advance()
	clock.Advance(100 * time.Millisecond)
	l.Reset()

	clock.Advance(10 * time.Millisecond)
	if n := l.Advance(); n != 0 {
		t.Errorf("after Reset 10ms should not produce a tick, got %d", n)
	}
}

func TestRunStopsWhenTickReturnsFalse(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	l := New(clock, 60)

	count := 0
	err := l.Run(context.Background(), func() bool {
		count++
		return count < 300
	})
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if count != 300 {
		t.Errorf("tick called %d times, expected 300", count)
	}
}

func TestRunHonorsCancel(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	l := New(clock, 60)

	ctx, cancel := context.WithCancel(context.Background())
	count := 0
	err := l.Run(ctx, func() bool {
		count++
		if count == 10 {
			cancel()
		}
		return true
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if count != 10 {
		t.Errorf("tick called %d times after cancel, expected 10", count)
	}
}

func TestDefaultTickRate(t *testing.T) {
	l := New(SystemClock{}, 0)
	if l.Step() != time.Second/60 {
		t.Errorf("Step() = %v, expected 1/60s", l.Step())
	}
}
