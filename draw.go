package motion

import (
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image
)

// solidImage returns a 1x1 white sub-image with a white border around it, so
// scaled draws do not bleed transparent edges.
func solidImage() *ebiten.Image {
	whitePixelOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(ColorWhite.toRGBA())
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whitePixel
}

// Draw fills the screen with ClearColor and draws every visible sprite node
// as a tinted rectangle, once per camera viewport (or full screen with no
// cameras). In debug mode the active tween count is printed. Queued
// screenshots are captured last.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())

	if len(s.cameras) == 0 {
		s.drawTree(screen, s.root, identityTransform)
	}
	for _, cam := range s.cameras {
		vp := cam.Viewport
		sub := screen.SubImage(image.Rect(
			int(vp.X), int(vp.Y),
			int(vp.X+vp.Width), int(vp.Y+vp.Height),
		)).(*ebiten.Image)
		s.drawTree(sub, s.root, cam.computeViewMatrix())
	}

	if s.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("tweens: %d", s.ActiveTweens()))
	}
	s.flushScreenshots(screen)
}

func (s *Scene) drawTree(target *ebiten.Image, n *Node, view [6]float64) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeSprite && n.worldAlpha > 0 {
		m := multiplyAffine(view, n.worldTransform)

		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width, n.Height)
		var g ebiten.GeoM
		g.SetElement(0, 0, m[0])
		g.SetElement(1, 0, m[1])
		g.SetElement(0, 1, m[2])
		g.SetElement(1, 1, m[3])
		g.SetElement(0, 2, m[4])
		g.SetElement(1, 2, m[5])
		op.GeoM.Concat(g)

		a := n.worldAlpha * n.Color.A
		op.ColorScale.Scale(float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a))
		target.DrawImage(solidImage(), &op)
	}
	for _, c := range n.children {
		s.drawTree(target, c, view)
	}
}
