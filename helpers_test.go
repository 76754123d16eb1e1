package motion

import (
	"math"
	"sync"
	"testing"
	"time"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// fakeClock records watchdog requests and fires them only when told to.
type fakeClock struct {
	mu        sync.Mutex
	fire      chan time.Time
	requested []time.Duration
}

func (c *fakeClock) Now() time.Time { return time.Unix(0, 0) }

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requested = append(c.requested, d)
	return c.fire
}

func (c *fakeClock) requests() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.requested...)
}

// useFakeClock installs a fake clock for the duration of the test.
func useFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	fc := &fakeClock{fire: make(chan time.Time, 1)}
	prev := SetClock(fc)
	t.Cleanup(func() { SetClock(prev) })
	return fc
}

// waitFor polls cond until it holds or two seconds pass.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met within 2s")
		}
		time.Sleep(time.Millisecond)
	}
}

// driveUntilDone advances the scene in fixed steps until the tween started
// on another goroutine reports its result.
func driveUntilDone(t *testing.T, s *Scene, step time.Duration, errc <-chan error) error {
	t.Helper()
	waitFor(t, func() bool { return s.ActiveTweens() > 0 })
	for i := 0; i < 1000; i++ {
		select {
		case err := <-errc:
			return err
		default:
		}
		s.Advance(step)
	}
	select {
	case err := <-errc:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("tween did not finish")
	}
	return nil
}

// countingAccessor counts reads and writes to a float64 slot.
type countingAccessor struct {
	v      float64
	gets   int
	sets   int
	values []float64
}

func (a *countingAccessor) Get() float64 {
	a.gets++
	return a.v
}

func (a *countingAccessor) Set(v float64) {
	a.sets++
	a.v = v
	a.values = append(a.values, v)
}

// recordingStore collects tween events.
type recordingStore struct {
	events []TweenEvent
}

func (s *recordingStore) EmitTweenEvent(e TweenEvent) {
	s.events = append(s.events, e)
}

func (s *recordingStore) count(typ TweenEventType) int {
	n := 0
	for _, e := range s.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
