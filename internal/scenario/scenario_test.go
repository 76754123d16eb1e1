package scenario

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/motion"
)

const demoYAML = `
name: demo
width: 320
height: 240
background: midnightblue
camera: {x: 160, y: 120}
nodes:
  - name: box
    width: 16
    height: 16
    y: 10
    color: tomato
  - name: dot
    parent: box
    width: 2
    height: 2
    alpha: 0.5
    hidden: true
tweens:
  - name: slide
    duration: 1s
    bindings:
      - {node: box, prop: x, to: 100}
      - {node: box, prop: color, to: "#00ff00", delay: 500ms}
  - name: together
    duration: 200ms
    with_next: true
    bindings:
      - {node: dot, prop: visible, to: true}
      - {node: dot, prop: rotation, from: 0, to: 90, easing: easeOutBounce}
  - duration: 400ms
    easing: easeIn
    bindings:
      - {node: camera, prop: zoom, to: 2}
      - {node: box, prop: position, to: [5, 6], duration: 100ms}
`

func mustBuild(t *testing.T, src string) *Program {
	t.Helper()
	sc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, err := sc.Build(motion.NewScene())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestParseDefaults(t *testing.T) {
	sc, err := Parse([]byte("nodes: []\ntweens: []\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.Width != 640 || sc.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", sc.Width, sc.Height)
	}
}

func TestBuildNodes(t *testing.T) {
	p := mustBuild(t, demoYAML)

	box, dot := p.Nodes["box"], p.Nodes["dot"]
	if box == nil || dot == nil {
		t.Fatalf("nodes = %v", p.Nodes)
	}
	if box.Type != motion.NodeTypeSprite || box.Y != 10 || box.Parent != p.Scene.Root() {
		t.Errorf("box = %+v", box)
	}
	if dot.Parent != box || dot.Alpha != 0.5 || dot.Visible {
		t.Errorf("dot parent=%v alpha=%v visible=%v", dot.Parent == box, dot.Alpha, dot.Visible)
	}
	if box.Color.R != 1 || box.Color.A != 1 {
		t.Errorf("tomato = %+v", box.Color)
	}
	if p.Camera == nil || p.Camera.X != 160 || p.Camera.Zoom != 1 {
		t.Errorf("camera = %+v", p.Camera)
	}
	if len(p.Order) != 2 || p.Order[0] != "box" {
		t.Errorf("Order = %v", p.Order)
	}
	if p.NumTweens() != 3 || len(p.stages) != 2 {
		t.Errorf("tweens = %d stages = %d, want 3 and 2", p.NumTweens(), len(p.stages))
	}
}

func TestSequencerPlaysDeterministically(t *testing.T) {
	p := mustBuild(t, demoYAML)
	seq := p.Sequencer()

	frames := 0
	for !seq.Done() && frames < 100 {
		seq.Tick()
		p.Scene.Advance(100 * time.Millisecond)
		frames++
	}
	if err := seq.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if frames != 14 {
		t.Errorf("frames = %d, want 14", frames)
	}

	box, dot := p.Nodes["box"], p.Nodes["dot"]
	if box.X != 5 || box.Y != 6 {
		t.Errorf("box position = (%v, %v), want (5, 6)", box.X, box.Y)
	}
	if box.Color != (motion.Color{G: 1, A: 1}) {
		t.Errorf("box color = %+v", box.Color)
	}
	if !dot.Visible {
		t.Error("dot should be visible")
	}
	if math.Abs(dot.Rotation-math.Pi/2) > 1e-9 {
		t.Errorf("dot rotation = %v, want pi/2", dot.Rotation)
	}
	if p.Camera.Zoom != 2 {
		t.Errorf("zoom = %v, want 2", p.Camera.Zoom)
	}
}

func TestSequencerReportsInvalidBinding(t *testing.T) {
	p := mustBuild(t, `
nodes: [{name: a}]
tweens:
  - bindings: [{node: a, prop: x, to: 1, delay: -1s}]
`)
	seq := p.Sequencer()
	seq.Tick()
	if !seq.Done() || !errors.Is(seq.Err(), motion.ErrNegativeOffset) {
		t.Errorf("Done=%v Err=%v, want ErrNegativeOffset", seq.Done(), seq.Err())
	}
}

func TestRunPlaysOnItsOwnGoroutine(t *testing.T) {
	p := mustBuild(t, demoYAML)
	errc := make(chan error, 1)
	go func() { errc <- p.Run(context.Background()) }()

	deadline := time.Now().Add(5 * time.Second)
	for {
		select {
		case err := <-errc:
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if p.Nodes["box"].X != 5 || p.Camera.Zoom != 2 {
				t.Errorf("end state box.X=%v zoom=%v", p.Nodes["box"].X, p.Camera.Zoom)
			}
			return
		default:
		}
		if time.Now().After(deadline) {
			t.Fatal("Run did not finish")
		}
		p.Scene.Advance(50 * time.Millisecond)
		time.Sleep(time.Millisecond)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	p := mustBuild(t, demoYAML)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"yaml", "nodes: [", "failed to parse scenario"},
		{"unnamed node", "nodes: [{x: 1}]", "missing name"},
		{"duplicate", "nodes: [{name: a}, {name: a}]", `duplicate name "a"`},
		{"parent order", "nodes: [{name: a, parent: b}, {name: b}]", `parent "b"`},
		{"camera name", "camera: {x: 0, y: 0}\nnodes: [{name: camera}]", "duplicate"},
		{"bad color", "nodes: [{name: a, color: nope}]", `invalid color "nope"`},
		{"bad background", "background: '#12'", "background"},
		{"unknown node", "tweens: [{bindings: [{node: ghost, prop: x, to: 1}]}]", `unknown node "ghost"`},
		{"unknown prop", "nodes: [{name: a}]\ntweens: [{bindings: [{node: a, prop: size, to: 1}]}]", `unknown prop "size"`},
		{"camera prop", "camera: {x: 0, y: 0}\ntweens: [{bindings: [{node: camera, prop: alpha, to: 1}]}]", `unknown prop "alpha"`},
		{"missing to", "nodes: [{name: a}]\ntweens: [{bindings: [{node: a, prop: x}]}]", "missing to"},
		{"negative duration", "tweens: [{name: t, duration: -1s}]", "tween 0 (t): negative duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"tween easing", "tweens: [{easing: wobble}]", `unknown easing "wobble"`},
		{"binding easing", "nodes: [{name: a}]\ntweens: [{bindings: [{node: a, prop: x, to: 1, easing: wobble}]}]", `unknown easing "wobble"`},
		{"bad float", "nodes: [{name: a}]\ntweens: [{bindings: [{node: a, prop: x, to: far}]}]", "a.x to"},
		{"bad from", "nodes: [{name: a}]\ntweens: [{bindings: [{node: a, prop: visible, from: maybe, to: true}]}]", "a.visible from"},
		{"bad position", "nodes: [{name: a}]\ntweens: [{bindings: [{node: a, prop: position, to: [1]}]}]", "position needs [x, y]"},
		{"bad color channels", "nodes: [{name: a}]\ntweens: [{bindings: [{node: a, prop: color, to: [1, 0]}]}]", "3 or 4 channels"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := Parse([]byte(tt.src))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			_, err = sc.Build(motion.NewScene())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want motion.Color
	}{
		{"white", motion.Color{R: 1, G: 1, B: 1, A: 1}},
		{"Black", motion.Color{A: 1}},
		{"#ff0000", motion.Color{R: 1, A: 1}},
		{"#0000ff00", motion.Color{B: 1}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "nope", "#12345", "#gggggg", "ff0000"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestLoadDefaultsName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intro.yaml")
	if err := os.WriteFile(path, []byte("nodes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Name != "intro" {
		t.Errorf("Name = %q, want intro", sc.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("missing file err = %v", err)
	}
}

func TestTitleUsesEnclosingModule(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/games/demo/v2\n\ngo 1.24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "scenarios")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	sc := &Scenario{Name: "intro"}
	if got := Title(sc, filepath.Join(sub, "intro.yaml")); got != "demo: intro" {
		t.Errorf("Title = %q, want %q", got, "demo: intro")
	}
}
