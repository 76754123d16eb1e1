package motion

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration. When set on a
// Scene, tween lifecycle events are forwarded to it from the frame goroutine.
type EntityStore interface {
	EmitTweenEvent(event TweenEvent)
}

// TweenEventType identifies a tween lifecycle transition.
type TweenEventType uint8

const (
	TweenStarted   TweenEventType = iota // driver attached to the scene
	TweenCompleted                       // timeline reached its end
	TweenCancelled                       // finished early after cancellation
	TweenTimedOut                        // snapped to the end by the watchdog
)

// TweenEvent carries tween lifecycle data for the ECS bridge.
type TweenEvent struct {
	Type     TweenEventType
	TweenID  uint32
	Bindings int
	Duration time.Duration
	Elapsed  time.Duration
}

const defaultTPS = 60

// Scene owns the node tree and cameras and is the frame scheduler for tween
// drivers: attached drivers are advanced once per Update, in attach order.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen at the start of Draw.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	screenshotQueue []string

	cameras    []*Camera
	testRunner *TestRunner
	updateFunc func()
	debugOut   io.Writer

	mu         sync.Mutex
	drivers    []*Driver
	pending    []*Driver
	events     []TweenEvent
	frameBuf   []*Driver
	eventBuf   []TweenEvent
	shotEvents uint8
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		debugOut:      os.Stderr,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update advances the scene by one tick. The frame delta is 1/TPS, or the
// attached TestRunner's scripted delta.
func (s *Scene) Update() {
	if s.updateFunc != nil {
		s.updateFunc()
	}
	if s.testRunner != nil {
		dt, ok := s.testRunner.step()
		if ok {
			s.Advance(dt)
		}
		return
	}
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	s.Advance(time.Second / time.Duration(tps))
}

// Advance runs one frame of dt: attached drivers step, finished ones are
// dropped, cameras follow their targets and world transforms are refreshed.
// Advance must only be called from one goroutine at a time.
func (s *Scene) Advance(dt time.Duration) {
	var t0 time.Time
	if s.debug {
		t0 = clock.Now()
	}

	s.mu.Lock()
	s.drivers = append(s.drivers, s.pending...)
	clear(s.pending)
	s.pending = s.pending[:0]
	s.frameBuf = append(s.frameBuf[:0], s.drivers...)
	s.mu.Unlock()

	for _, d := range s.frameBuf {
		if !d.detached.Load() {
			d.Advance(dt)
		}
	}
	clear(s.frameBuf)

	s.mu.Lock()
	live := s.drivers[:0]
	for _, d := range s.drivers {
		if !d.detached.Load() {
			live = append(live, d)
		}
	}
	clear(s.drivers[len(live):])
	s.drivers = live
	active := len(live)
	s.mu.Unlock()

	s.flushEvents()

	updateWorldTransform(s.root, identityTransform, 1.0, false)
	for _, cam := range s.cameras {
		cam.update()
	}

	if s.debug {
		s.debugLogFrame(frameStats{dt: dt, active: active, advanceTime: clock.Now().Sub(t0)})
	}
}

// ActiveTweens returns the number of drivers currently attached, including
// ones attached since the last frame.
func (s *Scene) ActiveTweens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.pending)
	for _, d := range s.drivers {
		if !d.detached.Load() {
			n++
		}
	}
	return n
}

// attach schedules d to be advanced from the next frame on. Safe to call
// from any goroutine.
func (s *Scene) attach(d *Driver) {
	d.scene = s
	s.mu.Lock()
	s.pending = append(s.pending, d)
	s.queueEventLocked(TweenEvent{
		Type:     TweenStarted,
		TweenID:  d.id,
		Bindings: len(d.tracks),
		Duration: d.total,
	})
	s.mu.Unlock()
}

// driverFinished is called once per driver by its completion transition.
func (s *Scene) driverFinished(d *Driver, r Result, elapsed time.Duration) {
	typ := TweenCompleted
	switch r {
	case ResultCancelled:
		typ = TweenCancelled
	case ResultTimedOut:
		typ = TweenTimedOut
	}
	s.mu.Lock()
	s.queueEventLocked(TweenEvent{
		Type:     typ,
		TweenID:  d.id,
		Bindings: len(d.tracks),
		Duration: d.total,
		Elapsed:  elapsed,
	})
	s.mu.Unlock()
}

func (s *Scene) queueEventLocked(e TweenEvent) {
	if s.store == nil && !s.debug && s.shotEvents == 0 {
		return
	}
	s.events = append(s.events, e)
}

// flushEvents delivers queued lifecycle events on the frame goroutine.
func (s *Scene) flushEvents() {
	s.mu.Lock()
	s.eventBuf = append(s.eventBuf[:0], s.events...)
	s.events = s.events[:0]
	store := s.store
	shots := s.shotEvents
	s.mu.Unlock()

	for _, e := range s.eventBuf {
		if s.debug {
			s.debugLogTween(e)
		}
		if shots != 0 {
			s.screenshotTween(shots, e)
		}
		if store != nil {
			store.EmitTweenEvent(e)
		}
	}
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := newCamera(s, viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.mu.Lock()
	s.store = store
	s.mu.Unlock()
}

// SetUpdateFunc registers a callback run at the start of every Update, before
// drivers advance.
func (s *Scene) SetUpdateFunc(fn func()) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// tree operations panic, tree depth warnings are printed, and per-frame stats
// and tween lifecycle lines are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// SetDebugOutput redirects debug logging (stderr by default).
func (s *Scene) SetDebugOutput(w io.Writer) {
	s.debugOut = w
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
