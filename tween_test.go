package motion

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWatchdogTimeout(t *testing.T) {
	if got := WatchdogTimeout(time.Second); got != 2300*time.Millisecond {
		t.Errorf("WatchdogTimeout(1s) = %v, want 2.3s", got)
	}
	if got := WatchdogTimeout(0); got != 300*time.Millisecond {
		t.Errorf("WatchdogTimeout(0) = %v, want 300ms", got)
	}
}

func TestTweenCompletesNormally(t *testing.T) {
	fc := useFakeClock(t)
	s := NewScene()
	x := 0.0

	errc := s.TweenAsync(context.Background(), TweenConfig{Duration: time.Second}, To(Field(&x), 100.0))
	if err := driveUntilDone(t, s, 100*time.Millisecond, errc); err != nil {
		t.Fatalf("Tween: %v", err)
	}
	if x != 100 {
		t.Errorf("x = %v, want 100", x)
	}
	if reqs := fc.requests(); len(reqs) != 1 || reqs[0] != 2300*time.Millisecond {
		t.Errorf("watchdog requests = %v, want [2.3s]", reqs)
	}
	if s.ActiveTweens() != 0 {
		t.Errorf("ActiveTweens = %d, want 0", s.ActiveTweens())
	}
}

func TestTweenWatchdogForcesEndValues(t *testing.T) {
	fc := useFakeClock(t)
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)

	x := 0.0
	c := ColorWhite
	errc := s.TweenAsync(context.Background(), TweenConfig{Duration: time.Second},
		To(Field(&x), 100.0).EaseOutElastic().WithStartOffset(400*time.Millisecond),
		To(Field(&c), Color{G: 0.5, A: 1}),
	)
	waitFor(t, func() bool { return len(fc.requests()) == 1 })

	// The scheduler stalls; only the watchdog can finish the tween.
	fc.fire <- time.Time{}
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Tween: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watchdog did not finish the tween")
	}

	if x != 100 {
		t.Errorf("x = %v, want exactly 100", x)
	}
	if c != (Color{G: 0.5, A: 1}) {
		t.Errorf("c = %+v, want end color", c)
	}

	s.Advance(16 * time.Millisecond)
	if s.ActiveTweens() != 0 {
		t.Errorf("ActiveTweens = %d, want 0", s.ActiveTweens())
	}
	if store.count(TweenTimedOut) != 1 {
		t.Errorf("events = %+v, want one timed out", store.events)
	}
	if x != 100 {
		t.Errorf("x rewritten after timeout: %v", x)
	}
}

func TestTweenContextCancel(t *testing.T) {
	useFakeClock(t)
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)

	ctx, cancel := context.WithCancel(context.Background())
	x := 0.0
	errc := s.TweenAsync(ctx, TweenConfig{Duration: time.Second}, To(Field(&x), 100.0))
	waitFor(t, func() bool { return s.ActiveTweens() == 1 })
	s.Advance(100 * time.Millisecond)
	if !approxEqual(x, 10, epsilon) {
		t.Fatalf("x = %v, want 10", x)
	}

	cancel()
	var err error
	for done := false; !done; {
		select {
		case err = <-errc:
			done = true
		default:
			s.Advance(time.Millisecond)
			time.Sleep(time.Millisecond)
		}
	}
	if err != nil {
		t.Fatalf("Tween after cancel: %v", err)
	}
	if store.count(TweenCancelled) != 1 || store.count(TweenCompleted) != 0 {
		t.Errorf("events = %+v, want one cancelled", store.events)
	}
	if x >= 100 {
		t.Errorf("x = %v, want < 100", x)
	}
}

func TestTweenWatchdogAfterCancelStillSnaps(t *testing.T) {
	fc := useFakeClock(t)
	s := NewScene()
	ctx, cancel := context.WithCancel(context.Background())
	x := 0.0
	errc := s.TweenAsync(ctx, TweenConfig{Duration: time.Second}, To(Field(&x), 5.0))
	waitFor(t, func() bool { return len(fc.requests()) == 1 })

	cancel()
	fc.fire <- time.Time{}
	if err := <-errc; err != nil {
		t.Fatalf("Tween: %v", err)
	}
	// Whichever of cancel or watchdog the waiter saw first, a stalled
	// scheduler never advanced, so only the watchdog could finish it.
	if x != 5 {
		t.Errorf("x = %v, want 5", x)
	}
}

func TestTweenValidationFailsFast(t *testing.T) {
	s := NewScene()
	x := 0.0
	err := s.Tween(context.Background(), TweenConfig{},
		To(Field(&x), 1.0).WithStartOffset(-time.Second))
	if !errors.Is(err, ErrNegativeOffset) {
		t.Errorf("err = %v, want ErrNegativeOffset", err)
	}
	if s.ActiveTweens() != 0 {
		t.Errorf("ActiveTweens = %d, want 0", s.ActiveTweens())
	}

	var nilScene *Scene
	if err := nilScene.Tween(context.Background(), TweenConfig{}); !errors.Is(err, ErrNilScene) {
		t.Errorf("nil scene err = %v, want ErrNilScene", err)
	}
}

func TestTweenAsyncClosesChannel(t *testing.T) {
	useFakeClock(t)
	s := NewScene()
	errc := s.TweenAsync(context.Background(), TweenConfig{Duration: 10 * time.Millisecond})
	if err := driveUntilDone(t, s, 10*time.Millisecond, errc); err != nil {
		t.Fatalf("Tween: %v", err)
	}
	if _, ok := <-errc; ok {
		t.Error("channel should be closed after the result")
	}
}

func TestStartDoesNotWait(t *testing.T) {
	fc := useFakeClock(t)
	s := NewScene()
	x := 0.0
	d, err := s.Start(TweenConfig{Duration: 200 * time.Millisecond}, To(Field(&x), 2.0))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.ActiveTweens() != 1 {
		t.Fatalf("ActiveTweens = %d, want 1", s.ActiveTweens())
	}
	s.Advance(100 * time.Millisecond)
	s.Advance(100 * time.Millisecond)
	select {
	case <-d.Done():
	default:
		t.Fatal("driver not done after its duration")
	}
	if x != 2 {
		t.Errorf("x = %v, want 2", x)
	}
	if len(fc.requests()) != 0 {
		t.Errorf("Start should not arm a watchdog, got %v", fc.requests())
	}
}
