package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/phanxgames/motion"
)

// Run plays the program on the calling goroutine, which must not be the one
// driving the scene. Tweens joined by with_next start together and Run waits
// for all of them before moving on.
func (p *Program) Run(ctx context.Context) error {
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(stage) == 1 {
			st := stage[0]
			if err := p.Scene.Tween(ctx, st.cfg, st.bindings...); err != nil {
				return fmt.Errorf("%s: %w", st.name, err)
			}
			continue
		}
		results := make([]<-chan error, len(stage))
		for i, st := range stage {
			results[i] = p.Scene.TweenAsync(ctx, st.cfg, st.bindings...)
		}
		var errs []error
		for i, ch := range results {
			if err := <-ch; err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", stage[i].name, err))
			}
		}
		if err := errors.Join(errs...); err != nil {
			return err
		}
	}
	return nil
}

// Sequencer plays a program from the frame goroutine without blocking: call
// Tick before every Scene.Advance (or register it with Scene.SetUpdateFunc).
// Each stage starts on the frame after the previous one finished, which makes
// playback deterministic for a given frame delta.
type Sequencer struct {
	p       *Program
	next    int
	running []*motion.Driver
	err     error
}

// Sequencer returns a Sequencer positioned at the first stage.
func (p *Program) Sequencer() *Sequencer {
	return &Sequencer{p: p}
}

// Tick starts the next stage once every driver of the current one is done.
func (q *Sequencer) Tick() {
	if q.err != nil {
		return
	}
	for _, d := range q.running {
		select {
		case <-d.Done():
		default:
			return
		}
	}
	q.running = q.running[:0]
	if q.next >= len(q.p.stages) {
		return
	}
	for _, st := range q.p.stages[q.next] {
		d, err := q.p.Scene.Start(st.cfg, st.bindings...)
		if err != nil {
			q.err = fmt.Errorf("%s: %w", st.name, err)
			for _, r := range q.running {
				r.Cancel()
			}
			return
		}
		q.running = append(q.running, d)
	}
	q.next++
}

// Done reports whether every stage has finished, or playback failed.
func (q *Sequencer) Done() bool {
	if q.err != nil {
		return true
	}
	if q.next < len(q.p.stages) {
		return false
	}
	for _, d := range q.running {
		select {
		case <-d.Done():
		default:
			return false
		}
	}
	return true
}

// Err returns the error that stopped playback, if any.
func (q *Sequencer) Err() error {
	return q.err
}
