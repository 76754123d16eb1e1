// Package scenario loads YAML animation scenarios: a node tree plus a list of
// tweens, played back on a motion.Scene by the motion CLI.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario is the top-level structure of a scenario file.
type Scenario struct {
	Name       string      `yaml:"name,omitempty"`
	Width      int         `yaml:"width,omitempty"`
	Height     int         `yaml:"height,omitempty"`
	Background string      `yaml:"background,omitempty"`
	Camera     *CameraSpec `yaml:"camera,omitempty"`
	Nodes      []NodeSpec  `yaml:"nodes"`
	Tweens     []TweenSpec `yaml:"tweens"`
}

// CameraSpec adds a full-window camera, addressable from bindings as the
// node named "camera" (props x, y, zoom).
type CameraSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Zoom float64 `yaml:"zoom,omitempty"`
}

// NodeSpec declares one node. Parents must be declared before their children.
type NodeSpec struct {
	Name   string   `yaml:"name"`
	Parent string   `yaml:"parent,omitempty"`
	Width  float64  `yaml:"width,omitempty"`
	Height float64  `yaml:"height,omitempty"`
	X      float64  `yaml:"x,omitempty"`
	Y      float64  `yaml:"y,omitempty"`
	Alpha  *float64 `yaml:"alpha,omitempty"`
	Color  string   `yaml:"color,omitempty"`
	Hidden bool     `yaml:"hidden,omitempty"`
}

// TweenSpec is one call to Scene.Tween. Tweens run in file order; WithNext
// starts the following tween at the same time instead of waiting.
type TweenSpec struct {
	Name     string        `yaml:"name,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
	Easing   string        `yaml:"easing,omitempty"`
	WithNext bool          `yaml:"with_next,omitempty"`
	Bindings []BindingSpec `yaml:"bindings"`
}

// BindingSpec animates one property. To and From are decoded according to
// Prop; omitting From starts from the property's value when the tween starts.
type BindingSpec struct {
	Node     string         `yaml:"node"`
	Prop     string         `yaml:"prop"`
	To       yaml.Node      `yaml:"to"`
	From     yaml.Node      `yaml:"from,omitempty"`
	Delay    time.Duration  `yaml:"delay,omitempty"`
	Duration *time.Duration `yaml:"duration,omitempty"`
	Easing   string         `yaml:"easing,omitempty"`
}

// CameraNode is the reserved node name that targets the scenario camera.
const CameraNode = "camera"

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	if sc.Width <= 0 {
		sc.Width = 640
	}
	if sc.Height <= 0 {
		sc.Height = 480
	}
	return &sc, nil
}

// Load reads and parses a scenario file. An empty Name defaults to the file's
// base name.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("scenario %s does not exist", path)
		}
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if strings.TrimSpace(sc.Name) == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

func (sc *Scenario) validate() error {
	seen := map[string]bool{}
	if sc.Camera != nil {
		seen[CameraNode] = true
	}
	for i, n := range sc.Nodes {
		switch {
		case n.Name == "":
			return fmt.Errorf("node %d: missing name", i)
		case seen[n.Name]:
			return fmt.Errorf("node %d: duplicate name %q", i, n.Name)
		case n.Parent != "" && (!seen[n.Parent] || n.Parent == CameraNode):
			return fmt.Errorf("node %q: parent %q must be a node declared earlier", n.Name, n.Parent)
		}
		if n.Color != "" {
			if _, err := ParseColor(n.Color); err != nil {
				return fmt.Errorf("node %q: %w", n.Name, err)
			}
		}
		seen[n.Name] = true
	}
	if sc.Background != "" {
		if _, err := ParseColor(sc.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	for i, tw := range sc.Tweens {
		if tw.Duration < 0 {
			return fmt.Errorf("%s: negative duration %v", tw.label(i), tw.Duration)
		}
		for j, b := range tw.Bindings {
			if !seen[b.Node] {
				return fmt.Errorf("%s: binding %d: unknown node %q", tw.label(i), j, b.Node)
			}
			if _, ok := propKinds(b.Node == CameraNode)[b.Prop]; !ok {
				return fmt.Errorf("%s: binding %d: unknown prop %q on %q", tw.label(i), j, b.Prop, b.Node)
			}
			if b.To.Kind == 0 {
				return fmt.Errorf("%s: binding %d: missing to", tw.label(i), j)
			}
		}
	}
	return nil
}

func (tw TweenSpec) label(i int) string {
	if tw.Name != "" {
		return fmt.Sprintf("tween %d (%s)", i, tw.Name)
	}
	return fmt.Sprintf("tween %d", i)
}
