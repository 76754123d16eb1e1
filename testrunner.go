package motion

import (
	"encoding/json"
	"fmt"
	"time"
)

// testStep represents a single action in a frame script.
type testStep struct {
	Action string  `json:"action"`
	Ms     float64 `json:"ms,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a frame script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner replaces the real frame delta with a scripted sequence, for
// deterministic playback and for reproducing stalled schedulers. Attach it to
// a Scene via SetTestRunner.
//
// Actions:
//
//	{"action": "advance", "ms": 16, "frames": 10}  advance 10 frames of 16ms
//	{"action": "stall", "frames": 30}              run 30 frames without advancing
type TestRunner struct {
	steps     []testStep
	cursor    int
	remaining int
	done      bool
}

// LoadTestScript parses a JSON frame script and returns a TestRunner ready to
// be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "advance":
			if st.Ms < 0 {
				return nil, fmt.Errorf("parse test script: step %d: negative ms", i)
			}
		case "stall":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. While attached, Update
// takes its frame delta from the runner. Pass nil to restore real timing.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every scripted frame has been consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step returns the delta for the next frame and whether the scene should
// advance at all. Once the script is exhausted every frame stalls.
func (r *TestRunner) step() (time.Duration, bool) {
	for !r.done && r.remaining == 0 {
		if r.cursor >= len(r.steps) {
			r.done = true
			break
		}
		r.remaining = max(r.steps[r.cursor].Frames, 1)
		r.cursor++
	}
	if r.done {
		return 0, false
	}
	st := r.steps[r.cursor-1]
	r.remaining--
	if r.remaining == 0 && r.cursor >= len(r.steps) {
		r.done = true
	}
	if st.Action == "stall" {
		return 0, false
	}
	return time.Duration(st.Ms * float64(time.Millisecond)), true
}
