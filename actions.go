package motion

import (
	"context"
	"time"
)

// Convenience tweens for common node properties. Each blocks like Tween; the
// easing is applied to every binding, and a nil easing means Linear.

func easingOrLinear(e Easing) Easing {
	if e == nil {
		return Linear
	}
	return e
}

// MoveTo animates the node to (x, y).
func (s *Scene) MoveTo(ctx context.Context, n *Node, x, y float64, d time.Duration, e Easing) error {
	e = easingOrLinear(e)
	return s.Tween(ctx, TweenConfig{Duration: d},
		To(n.XProp(), x).WithEasing(e),
		To(n.YProp(), y).WithEasing(e),
	)
}

// MoveBy animates the node by (dx, dy) relative to its position when called.
func (s *Scene) MoveBy(ctx context.Context, n *Node, dx, dy float64, d time.Duration, e Easing) error {
	return s.MoveTo(ctx, n, n.X+dx, n.Y+dy, d, e)
}

// ScaleTo animates ScaleX and ScaleY.
func (s *Scene) ScaleTo(ctx context.Context, n *Node, sx, sy float64, d time.Duration, e Easing) error {
	e = easingOrLinear(e)
	return s.Tween(ctx, TweenConfig{Duration: d},
		To(n.ScaleXProp(), sx).WithEasing(e),
		To(n.ScaleYProp(), sy).WithEasing(e),
	)
}

// RotateTo animates the rotation to an absolute angle.
func (s *Scene) RotateTo(ctx context.Context, n *Node, a Angle, d time.Duration, e Easing) error {
	return s.Tween(ctx, TweenConfig{Duration: d}, To(n.RotationProp(), a).WithEasing(easingOrLinear(e)))
}

// RotateBy animates the rotation by delta relative to its value when called.
func (s *Scene) RotateBy(ctx context.Context, n *Node, delta Angle, d time.Duration, e Easing) error {
	return s.RotateTo(ctx, n, Angle(n.Rotation)+delta, d, e)
}

// FadeTo animates Alpha.
func (s *Scene) FadeTo(ctx context.Context, n *Node, alpha float64, d time.Duration, e Easing) error {
	return s.Tween(ctx, TweenConfig{Duration: d}, To(n.AlphaProp(), alpha).WithEasing(easingOrLinear(e)))
}

// ColorTo animates the tint.
func (s *Scene) ColorTo(ctx context.Context, n *Node, c Color, d time.Duration, e Easing) error {
	return s.Tween(ctx, TweenConfig{Duration: d}, To(n.ColorProp(), c).WithEasing(easingOrLinear(e)))
}

// Show fades the node in to full alpha, making it visible on the first frame.
func (s *Scene) Show(ctx context.Context, n *Node, d time.Duration, e Easing) error {
	return s.Tween(ctx, TweenConfig{
		Duration:   d,
		OnProgress: func(float64) { n.Visible = true },
	}, To(n.AlphaProp(), 1.0).WithEasing(easingOrLinear(e)))
}

// Hide fades the node out to zero alpha. Visible is left unchanged.
func (s *Scene) Hide(ctx context.Context, n *Node, d time.Duration, e Easing) error {
	return s.FadeTo(ctx, n, 0, d, e)
}
