package motion

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing. Only populated when Scene.debug is true.
type frameStats struct {
	dt          time.Duration
	active      int
	advanceTime time.Duration
}

// debugLogFrame prints frame stats to the debug output.
func (s *Scene) debugLogFrame(stats frameStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(s.debugOut, "[motion] dt: %v | tweens: %d | advance: %v\n",
		stats.dt, stats.active, stats.advanceTime)
}

var tweenEventNames = [...]string{
	TweenStarted:   "started",
	TweenCompleted: "completed",
	TweenCancelled: "cancelled",
	TweenTimedOut:  "timed out",
}

// debugLogTween prints one tween lifecycle line to the debug output.
func (s *Scene) debugLogTween(e TweenEvent) {
	name := "unknown"
	if int(e.Type) < len(tweenEventNames) {
		name = tweenEventNames[e.Type]
	}
	if e.Type == TweenStarted {
		_, _ = fmt.Fprintf(s.debugOut, "[motion] tween %d %s: %d bindings over %v\n",
			e.TweenID, name, e.Bindings, e.Duration)
		return
	}
	_, _ = fmt.Fprintf(s.debugOut, "[motion] tween %d %s at %v/%v\n",
		e.TweenID, name, e.Elapsed, e.Duration)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("motion debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugWarnf("tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// debugWarnf prints a warning to stderr for checks that have no Scene at hand.
func debugWarnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[motion] warning: "+format+"\n", args...)
}
