package motion

import (
	"context"
	"math"
	"testing"
	"time"
)

// runAction starts fn on its own goroutine and drives the scene until it
// returns.
func runAction(t *testing.T, s *Scene, fn func(ctx context.Context) error) {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- fn(context.Background()) }()
	if err := driveUntilDone(t, s, 50*time.Millisecond, errc); err != nil {
		t.Fatalf("action: %v", err)
	}
}

func TestMoveTo(t *testing.T) {
	useFakeClock(t)
	s := NewScene()
	n := NewSprite("n", 4, 4)
	s.Root().AddChild(n)

	runAction(t, s, func(ctx context.Context) error {
		return s.MoveTo(ctx, n, 10, -20, 200*time.Millisecond, EaseInOut)
	})
	if n.X != 10 || n.Y != -20 {
		t.Errorf("position = (%v, %v), want (10, -20)", n.X, n.Y)
	}
	if wx, wy := n.WorldPosition(); wx != 10 || wy != -20 {
		t.Errorf("world position = (%v, %v), want (10, -20)", wx, wy)
	}
}

func TestMoveByIsRelative(t *testing.T) {
	useFakeClock(t)
	s := NewScene()
	n := NewSprite("n", 4, 4)
	n.SetPosition(5, 5)

	runAction(t, s, func(ctx context.Context) error {
		return s.MoveBy(ctx, n, 3, -1, 100*time.Millisecond, nil)
	})
	if n.X != 8 || n.Y != 4 {
		t.Errorf("position = (%v, %v), want (8, 4)", n.X, n.Y)
	}
}

func TestScaleTo(t *testing.T) {
	useFakeClock(t)
	s := NewScene()
	n := NewSprite("n", 4, 4)

	runAction(t, s, func(ctx context.Context) error {
		return s.ScaleTo(ctx, n, 2, 0.5, 100*time.Millisecond, EaseOutBack)
	})
	if n.ScaleX != 2 || n.ScaleY != 0.5 {
		t.Errorf("scale = (%v, %v), want (2, 0.5)", n.ScaleX, n.ScaleY)
	}
}

func TestRotateToAndBy(t *testing.T) {
	useFakeClock(t)
	s := NewScene()
	n := NewSprite("n", 4, 4)

	runAction(t, s, func(ctx context.Context) error {
		return s.RotateTo(ctx, n, Degrees(90), 100*time.Millisecond, nil)
	})
	if !approxEqual(n.Rotation, math.Pi/2, epsilon) {
		t.Errorf("Rotation = %v, want pi/2", n.Rotation)
	}
	runAction(t, s, func(ctx context.Context) error {
		return s.RotateBy(ctx, n, Degrees(90), 100*time.Millisecond, nil)
	})
	if !approxEqual(n.Rotation, math.Pi, epsilon) {
		t.Errorf("Rotation = %v, want pi", n.Rotation)
	}
}

func TestFadeAndColor(t *testing.T) {
	useFakeClock(t)
	s := NewScene()
	n := NewSprite("n", 4, 4)

	runAction(t, s, func(ctx context.Context) error {
		return s.FadeTo(ctx, n, 0.25, 100*time.Millisecond, nil)
	})
	if n.Alpha != 0.25 {
		t.Errorf("Alpha = %v, want 0.25", n.Alpha)
	}
	target := Color{R: 1, G: 0.5, B: 0, A: 1}
	runAction(t, s, func(ctx context.Context) error {
		return s.ColorTo(ctx, n, target, 100*time.Millisecond, Smooth)
	})
	if n.Color != target {
		t.Errorf("Color = %+v, want %+v", n.Color, target)
	}
}

func TestShowAndHide(t *testing.T) {
	useFakeClock(t)
	s := NewScene()
	n := NewSprite("n", 4, 4)
	n.Visible = false
	n.Alpha = 0

	runAction(t, s, func(ctx context.Context) error {
		return s.Show(ctx, n, 100*time.Millisecond, nil)
	})
	if !n.Visible || n.Alpha != 1 {
		t.Errorf("after Show: Visible=%v Alpha=%v", n.Visible, n.Alpha)
	}

	runAction(t, s, func(ctx context.Context) error {
		return s.Hide(ctx, n, 100*time.Millisecond, nil)
	})
	if n.Alpha != 0 {
		t.Errorf("after Hide: Alpha=%v, want 0", n.Alpha)
	}
	if !n.Visible {
		t.Error("Hide should leave Visible unchanged")
	}
}
