package commands

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/motion"
	"github.com/phanxgames/motion/internal/scenario"
)

// play <scenario.yaml>: open a window and play the scenario in real time.
func playCmd() *cobra.Command {
	var (
		showFPS     bool
		labels      bool
		screenshots string
	)
	cmd := &cobra.Command{
		Use:   "play <scenario.yaml>",
		Short: "Play a scenario in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, prog, err := loadProgram(cmd, args[0])
			if err != nil {
				return err
			}
			h, err := newHUD(prog, labels)
			if err != nil {
				return err
			}
			if screenshots != "" {
				prog.Scene.ScreenshotDir = screenshots
				prog.Scene.ScreenshotOnTween(motion.TweenCompleted, motion.TweenTimedOut)
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				if err := prog.Run(ctx); err != nil && ctx.Err() == nil {
					log.Printf("scenario: %v", err)
				}
				h.finished.Store(true)
			}()

			return motion.Run(prog.Scene, motion.RunConfig{
				Title:   scenario.Title(sc, args[0]),
				Width:   sc.Width,
				Height:  sc.Height,
				ShowFPS: showFPS,
				Overlay: h.draw,
			})
		},
	}
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS and TPS")
	cmd.Flags().BoolVar(&labels, "labels", true, "draw node names")
	cmd.Flags().StringVar(&screenshots, "screenshots", "", "write a PNG to this directory whenever a tween finishes")
	return cmd
}

// hud draws node names and the tween count over the scene.
type hud struct {
	prog     *scenario.Program
	face     *text.GoTextFace
	labels   bool
	finished atomic.Bool
}

func newHUD(prog *scenario.Program, labels bool) (*hud, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &hud{prog: prog, face: &text.GoTextFace{Source: src, Size: 12}, labels: labels}, nil
}

func (h *hud) draw(screen *ebiten.Image) {
	if h.labels {
		for _, name := range h.prog.Order {
			n := h.prog.Nodes[name]
			if !n.Visible || n.Type != motion.NodeTypeSprite {
				continue
			}
			x, y := n.WorldPosition()
			if h.prog.Camera != nil {
				x, y = h.prog.Camera.WorldToScreen(x, y)
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(x, y-16)
			op.ColorScale.ScaleAlpha(0.8)
			text.Draw(screen, name, h.face, op)
		}
	}

	status := fmt.Sprintf("tweens: %d", h.prog.Scene.ActiveTweens())
	if h.finished.Load() {
		status = "done"
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(screen.Bounds().Dy())-20)
	text.Draw(screen, status, h.face, op)
}
