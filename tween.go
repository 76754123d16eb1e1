package motion

import (
	"context"
	"time"
)

// watchdogBase is the fixed slack added to every tween's watchdog.
const watchdogBase = 300 * time.Millisecond

// WatchdogTimeout returns how long Tween waits for a driver of the given
// duration before forcing it to its end state: 300ms plus twice the duration.
func WatchdogTimeout(total time.Duration) time.Duration {
	return watchdogBase + 2*total
}

// Tween animates bindings on the scene and blocks until the tween finishes.
//
// The tween finishes when its timeline ends, on the first frame after ctx is
// cancelled (no further values are written), or when the watchdog expires
// because the scene stopped advancing, in which case every binding is set to
// its end value. All three return nil. Errors are returned only for invalid
// bindings or configuration, before anything is attached.
//
// Tween must not be called from the goroutine that runs Scene.Update: the
// frame loop would never advance the driver and the call would only return
// through the watchdog.
func (s *Scene) Tween(ctx context.Context, cfg TweenConfig, bindings ...Animatable) error {
	d, err := s.Start(cfg, bindings...)
	if err != nil {
		return err
	}
	d.wait(ctx)
	return nil
}

// TweenAsync runs Tween on a new goroutine. The returned channel receives
// Tween's result and is then closed.
func (s *Scene) TweenAsync(ctx context.Context, cfg TweenConfig, bindings ...Animatable) <-chan error {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		ch <- s.Tween(ctx, cfg, bindings...)
	}()
	return ch
}

// Start builds a driver and attaches it to the scene without waiting for it.
// The caller observes completion through Driver.Done and may Cancel it; no
// watchdog runs unless the caller waits through Tween.
func (s *Scene) Start(cfg TweenConfig, bindings ...Animatable) (*Driver, error) {
	if s == nil {
		return nil, ErrNilScene
	}
	d, err := NewDriver(cfg, bindings...)
	if err != nil {
		return nil, err
	}
	s.attach(d)
	return d, nil
}

// wait blocks until d completes, forwarding ctx cancellation to the driver
// and forcing the end state when the watchdog fires.
func (d *Driver) wait(ctx context.Context) {
	watchdog := clock.After(WatchdogTimeout(d.total))
	cancelled := ctx.Done()
	for {
		select {
		case <-d.Done():
			return
		case <-cancelled:
			d.Cancel()
			cancelled = nil
		case <-watchdog:
			d.forceEnd()
			return
		}
	}
}
