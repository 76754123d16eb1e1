package motion

import (
	"context"
	"math"
	"time"
)

// Camera controls the view into the scene: position, zoom, rotation, and viewport.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	scene *Scene

	followTarget  *Node
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	viewMatrix [6]float64
	dirty      bool
}

func newCamera(s *Scene, viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		scene:    s,
		dirty:    true,
	}
}

// Follow makes the camera track a target node with the given offset and lerp
// factor. A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(node *Node, offsetX, offsetY, lerp float64) {
	c.followTarget = node
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// XProp returns an accessor for the camera's X position.
func (c *Camera) XProp() Accessor[float64] { return cameraProp{c, &c.X} }

// YProp returns an accessor for the camera's Y position.
func (c *Camera) YProp() Accessor[float64] { return cameraProp{c, &c.Y} }

// ZoomProp returns an accessor for Zoom.
func (c *Camera) ZoomProp() Accessor[float64] { return cameraProp{c, &c.Zoom} }

type cameraProp struct {
	c *Camera
	p *float64
}

func (a cameraProp) Get() float64 { return *a.p }
func (a cameraProp) Set(v float64) {
	*a.p = v
	a.c.dirty = true
}

// ScrollTo animates the camera to the given world position and blocks until
// the scroll finishes. A followed target keeps pulling the camera while the
// scroll runs; Unfollow first for a clean pan.
func (c *Camera) ScrollTo(ctx context.Context, x, y float64, d time.Duration, e Easing) error {
	e = easingOrLinear(e)
	return c.scene.Tween(ctx, TweenConfig{Duration: d},
		To(c.XProp(), x).WithEasing(e),
		To(c.YProp(), y).WithEasing(e),
	)
}

// ScrollToTile scrolls to the center of the given tile in a tile-based layout.
func (c *Camera) ScrollToTile(ctx context.Context, tileX, tileY int, tileW, tileH float64, d time.Duration, e Easing) error {
	worldX := float64(tileX)*tileW + tileW/2
	worldY := float64(tileY)*tileH + tileH/2
	return c.ScrollTo(ctx, worldX, worldY, d, e)
}

// ZoomTo animates Zoom.
func (c *Camera) ZoomTo(ctx context.Context, zoom float64, d time.Duration, e Easing) error {
	return c.scene.Tween(ctx, TweenConfig{Duration: d}, To(c.ZoomProp(), zoom).WithEasing(easingOrLinear(e)))
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// update applies follow and bounds clamping. Called from Scene.Advance after
// tweens have been written and world transforms refreshed.
func (c *Camera) update() {
	prevX, prevY := c.X, c.Y
	prevZoom, prevRot := c.Zoom, c.Rotation

	if c.followTarget != nil && !c.followTarget.IsDisposed() {
		tx, ty := c.followTarget.WorldPosition()
		c.X += (tx + c.followOffsetX - c.X) * c.followLerp
		c.Y += (ty + c.followOffsetY - c.Y) * c.followLerp
	}
	if c.BoundsEnabled {
		c.clampToBounds()
	}
	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom || c.Rotation != prevRot {
		c.dirty = true
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX, maxX := c.Bounds.X+halfW, c.Bounds.X+c.Bounds.Width-halfW
	minY, maxY := c.Bounds.Y+halfH, c.Bounds.Y+c.Bounds.Height-halfH

	// Bounds smaller than the visible area center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
//	view = Translate(viewport center) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom
	a, b := cos*z, sin*z
	cc, d := -sin*z, cos*z
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	c.viewMatrix = [6]float64{
		a, b, cc, d,
		-(a*c.X + cc*c.Y) + cx,
		-(b*c.X + d*c.Y) + cy,
	}
	c.dirty = false
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.computeViewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(c.computeViewMatrix()), sx, sy)
}

// MarkDirty forces the view matrix to be recomputed on next use.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
