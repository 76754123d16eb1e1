package motion

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"
)

func enableDebug(t *testing.T, s *Scene) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	s.SetDebugMode(true)
	s.SetDebugOutput(&buf)
	t.Cleanup(func() { s.SetDebugMode(false) })
	return &buf
}

func TestDebugLogsTweenLifecycle(t *testing.T) {
	s := NewScene()
	buf := enableDebug(t, s)

	x := 0.0
	d, _ := s.Start(TweenConfig{Duration: 100 * time.Millisecond}, To(Field(&x), 1.0))
	s.Advance(100 * time.Millisecond)

	out := buf.String()
	for _, want := range []string{
		"started: 1 bindings over 100ms",
		"completed at 100ms/100ms",
		"[motion] dt: 100ms | tweens: 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "tween "+strconv.FormatUint(uint64(d.ID()), 10)) {
		t.Errorf("debug output should name tween %d:\n%s", d.ID(), out)
	}
}

func TestDebugLogsCancelAndTimeout(t *testing.T) {
	s := NewScene()
	buf := enableDebug(t, s)

	a, _ := s.Start(TweenConfig{Duration: time.Second})
	b, _ := s.Start(TweenConfig{Duration: time.Second})
	a.Cancel()
	b.forceEnd()
	s.Advance(10 * time.Millisecond)

	out := buf.String()
	if !strings.Contains(out, "cancelled at 0s/1s") {
		t.Errorf("missing cancel line:\n%s", out)
	}
	if !strings.Contains(out, "timed out at 0s/1s") {
		t.Errorf("missing timeout line:\n%s", out)
	}
}

func TestDebugDisposedAddChildPanics(t *testing.T) {
	s := NewScene()
	enableDebug(t, s)

	n := NewSprite("gone", 1, 1)
	n.Dispose()
	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, `disposed node "gone"`) {
			t.Errorf("panic = %q", msg)
		}
	}()
	s.Root().AddChild(n)
}
