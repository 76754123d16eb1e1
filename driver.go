package motion

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultDuration is the tween length used when neither TweenConfig.Duration
// nor any binding window determines one.
const DefaultDuration = time.Second

// Result records how a Driver finished.
type Result uint8

const (
	ResultPending   Result = iota // still running
	ResultCompleted               // reached the end of its timeline
	ResultCancelled               // stopped early by Cancel
	ResultTimedOut                // snapped to the end by the watchdog
)

// String returns a human-readable representation of the result.
func (r Result) String() string {
	switch r {
	case ResultPending:
		return "pending"
	case ResultCompleted:
		return "completed"
	case ResultCancelled:
		return "cancelled"
	case ResultTimedOut:
		return "timed out"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// TweenConfig configures one tween.
type TweenConfig struct {
	// Duration is the length of the tween. Zero derives it from the latest
	// binding EndTime, falling back to DefaultDuration.
	Duration time.Duration
	// Easing reshapes the progress reported to OnProgress. It does not affect
	// the values written to properties; ease bindings with WithEasing.
	Easing Easing
	// OnProgress, if set, receives the eased overall progress once per frame,
	// on the goroutine that advances the driver.
	OnProgress func(progress float64)
}

// Driver steps the bindings of one tween. The frame loop calls Advance once
// per frame; every other method is safe to call from any goroutine.
//
// A Driver completes exactly once: when its timeline ends, on the first
// Advance after Cancel, or when forced by the watchdog. Completion detaches it
// from its scene and closes Done.
type Driver struct {
	id         uint32
	tracks     []track
	total      time.Duration
	easing     Easing
	onProgress func(float64)
	done       chan struct{}
	cancelled  atomic.Bool
	detached   atomic.Bool
	scene      *Scene

	mu          sync.Mutex
	elapsed     time.Duration
	initialized bool
	completed   bool
	result      Result
}

var driverIDCounter atomic.Uint32

// NewDriver validates the bindings and returns a Driver that has not been
// attached to any scene. Drive it with Advance directly, or use Scene.Tween.
func NewDriver(cfg TweenConfig, bindings ...Animatable) (*Driver, error) {
	if cfg.Duration < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveTotal, cfg.Duration)
	}
	d := &Driver{
		id:         driverIDCounter.Add(1),
		tracks:     make([]track, 0, len(bindings)),
		total:      cfg.Duration,
		easing:     cfg.Easing,
		onProgress: cfg.OnProgress,
		done:       make(chan struct{}),
	}
	for i, b := range bindings {
		if b == nil {
			return nil, fmt.Errorf("binding %d: %w", i, ErrNilAccessor)
		}
		t, err := b.newTrack()
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		d.tracks = append(d.tracks, t)
	}
	if d.total == 0 {
		for _, b := range bindings {
			d.total = max(d.total, b.EndTime())
		}
	}
	if d.total == 0 {
		d.total = DefaultDuration
	}
	if d.easing == nil {
		d.easing = Linear
	}
	return d, nil
}

// ID returns the driver's process-unique identifier.
func (d *Driver) ID() uint32 { return d.id }

// Total returns the overall tween duration.
func (d *Driver) Total() time.Duration { return d.total }

// NumBindings returns the number of bindings the driver animates.
func (d *Driver) NumBindings() int { return len(d.tracks) }

// Done is closed when the driver completes, for any reason.
func (d *Driver) Done() <-chan struct{} { return d.done }

// Elapsed returns the accumulated timeline position.
func (d *Driver) Elapsed() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.elapsed
}

// Completed reports whether the driver has finished.
func (d *Driver) Completed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.completed
}

// Result reports how the driver finished, or ResultPending.
func (d *Driver) Result() Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result
}

// Cancel requests an early finish. The next Advance completes the driver
// without writing any property.
func (d *Driver) Cancel() {
	d.cancelled.Store(true)
}

// Advance moves the timeline forward by dt and writes every binding.
// Negative deltas are treated as zero.
func (d *Driver) Advance(dt time.Duration) {
	progress, state := d.step(dt)
	switch state {
	case stepCancelled:
		d.complete(ResultCancelled)
	case stepRunning, stepFinished:
		if d.onProgress != nil {
			d.onProgress(progress)
		}
		if state == stepFinished {
			d.complete(ResultCompleted)
		}
	}
}

type stepState uint8

const (
	stepIdle stepState = iota
	stepCancelled
	stepRunning
	stepFinished
)

// step performs the locked part of Advance: initialization, timeline update
// and property writes. Callbacks and completion run after the lock is released.
func (d *Driver) step(dt time.Duration) (float64, stepState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.completed {
		return 0, stepIdle
	}
	if d.cancelled.Load() {
		return 0, stepCancelled
	}
	if dt > 0 {
		d.elapsed += dt
	}
	if !d.initialized {
		d.initialized = true
		for _, t := range d.tracks {
			t.capture()
		}
	}
	d.setTo(d.elapsed)

	ratio := clamp01(float64(d.elapsed) / float64(d.total))
	if ratio >= 1 {
		return d.easing(ratio), stepFinished
	}
	return d.easing(ratio), stepRunning
}

// setTo writes every binding for timeline position elapsed.
func (d *Driver) setTo(elapsed time.Duration) {
	for _, t := range d.tracks {
		t.apply(localRatio(t, elapsed, d.total))
	}
}

// localRatio maps the timeline position into a binding's own window.
func localRatio(t track, elapsed, total time.Duration) float64 {
	offset, dur, ok := t.window()
	if !ok {
		dur = total - offset
	}
	if dur <= 0 {
		return 1
	}
	local := min(max(elapsed-offset, 0), dur)
	return float64(local) / float64(dur)
}

// forceEnd writes the end value of every binding and completes the driver
// with ResultTimedOut. No-op once completed. The writes and the completed
// transition share one critical section, so a concurrent Advance cannot
// write over the end values.
func (d *Driver) forceEnd() {
	d.mu.Lock()
	if d.completed {
		d.mu.Unlock()
		return
	}
	for _, t := range d.tracks {
		t.apply(1)
	}
	elapsed := d.markCompletedLocked(ResultTimedOut)
	d.mu.Unlock()
	d.finish(ResultTimedOut, elapsed)
}

// complete performs the single completed transition: record the result,
// detach from the scene and release waiters.
func (d *Driver) complete(r Result) {
	d.mu.Lock()
	if d.completed {
		d.mu.Unlock()
		return
	}
	elapsed := d.markCompletedLocked(r)
	d.mu.Unlock()
	d.finish(r, elapsed)
}

// markCompletedLocked records the result. d.mu must be held and completed
// must be false.
func (d *Driver) markCompletedLocked(r Result) time.Duration {
	d.completed = true
	d.result = r
	return d.elapsed
}

// finish runs the effects of the completed transition outside the lock. It
// is called exactly once, by whoever marked the driver completed.
func (d *Driver) finish(r Result, elapsed time.Duration) {
	d.detached.Store(true)
	if d.scene != nil {
		d.scene.driverFinished(d, r, elapsed)
	}
	close(d.done)
}

func (d *Driver) String() string {
	return fmt.Sprintf("Driver(id=%d, bindings=%d, total=%v)", d.id, len(d.tracks), d.total)
}
