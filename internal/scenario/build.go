package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/motion"
)

// Program is a scenario instantiated on a scene: its nodes exist and every
// tween's bindings are built, ready to be played by Run or a Sequencer.
type Program struct {
	Scene  *motion.Scene
	Camera *motion.Camera
	Nodes  map[string]*motion.Node
	// Order lists node names in declaration order.
	Order  []string
	stages [][]step
}

type step struct {
	name     string
	cfg      motion.TweenConfig
	bindings []motion.Animatable
}

// Build creates the scenario's nodes (and camera) on s and prepares its
// tweens. Start values of bindings without from are captured when each tween
// starts, not here.
func (sc *Scenario) Build(s *motion.Scene) (*Program, error) {
	p := &Program{Scene: s, Nodes: make(map[string]*motion.Node, len(sc.Nodes))}

	if sc.Background != "" {
		bg, err := ParseColor(sc.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		s.ClearColor = bg
	}
	if sc.Camera != nil {
		p.Camera = s.NewCamera(motion.Rect{Width: float64(sc.Width), Height: float64(sc.Height)})
		p.Camera.X, p.Camera.Y = sc.Camera.X, sc.Camera.Y
		if sc.Camera.Zoom > 0 {
			p.Camera.Zoom = sc.Camera.Zoom
		}
	}

	for _, ns := range sc.Nodes {
		var n *motion.Node
		if ns.Width > 0 || ns.Height > 0 {
			n = motion.NewSprite(ns.Name, ns.Width, ns.Height)
		} else {
			n = motion.NewContainer(ns.Name)
		}
		n.SetPosition(ns.X, ns.Y)
		if ns.Alpha != nil {
			n.SetAlpha(*ns.Alpha)
		}
		if ns.Color != "" {
			c, err := ParseColor(ns.Color)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", ns.Name, err)
			}
			n.Color = c
		}
		n.Visible = !ns.Hidden

		parent := s.Root()
		if ns.Parent != "" {
			parent = p.Nodes[ns.Parent]
		}
		parent.AddChild(n)
		p.Nodes[ns.Name] = n
		p.Order = append(p.Order, ns.Name)
	}

	var stage []step
	for i, tw := range sc.Tweens {
		st := step{name: tw.label(i), cfg: motion.TweenConfig{Duration: tw.Duration}}
		if tw.Easing != "" {
			e, ok := motion.EasingByName(tw.Easing)
			if !ok {
				return nil, fmt.Errorf("%s: unknown easing %q", st.name, tw.Easing)
			}
			st.cfg.Easing = e
		}
		for j, bs := range tw.Bindings {
			b, err := p.binding(bs)
			if err != nil {
				return nil, fmt.Errorf("%s: binding %d: %w", st.name, j, err)
			}
			st.bindings = append(st.bindings, b)
		}
		stage = append(stage, st)
		if !tw.WithNext {
			p.stages = append(p.stages, stage)
			stage = nil
		}
	}
	if len(stage) > 0 {
		p.stages = append(p.stages, stage)
	}
	return p, nil
}

// NumTweens returns the number of tweens the program plays.
func (p *Program) NumTweens() int {
	n := 0
	for _, st := range p.stages {
		n += len(st)
	}
	return n
}

type propKind uint8

const (
	propFloat propKind = iota
	propAngle
	propColor
	propBool
	propVec2
)

var nodeProps = map[string]propKind{
	"x":        propFloat,
	"y":        propFloat,
	"scaleX":   propFloat,
	"scaleY":   propFloat,
	"alpha":    propFloat,
	"rotation": propAngle,
	"color":    propColor,
	"visible":  propBool,
	"position": propVec2,
}

var cameraProps = map[string]propKind{
	"x":    propFloat,
	"y":    propFloat,
	"zoom": propFloat,
}

func propKinds(camera bool) map[string]propKind {
	if camera {
		return cameraProps
	}
	return nodeProps
}

func (p *Program) binding(bs BindingSpec) (motion.Animatable, error) {
	if bs.Node == CameraNode && p.Camera != nil {
		switch bs.Prop {
		case "x":
			return bind(p.Camera.XProp(), bs, decodeFloat)
		case "y":
			return bind(p.Camera.YProp(), bs, decodeFloat)
		case "zoom":
			return bind(p.Camera.ZoomProp(), bs, decodeFloat)
		}
		return nil, fmt.Errorf("unknown camera prop %q", bs.Prop)
	}
	n, ok := p.Nodes[bs.Node]
	if !ok {
		return nil, fmt.Errorf("unknown node %q", bs.Node)
	}
	switch bs.Prop {
	case "x":
		return bind(n.XProp(), bs, decodeFloat)
	case "y":
		return bind(n.YProp(), bs, decodeFloat)
	case "scaleX":
		return bind(n.ScaleXProp(), bs, decodeFloat)
	case "scaleY":
		return bind(n.ScaleYProp(), bs, decodeFloat)
	case "alpha":
		return bind(n.AlphaProp(), bs, decodeFloat)
	case "rotation":
		return bind(n.RotationProp(), bs, decodeDegrees)
	case "color":
		return bind(n.ColorProp(), bs, decodeColor)
	case "visible":
		return bind(n.VisibleProp(), bs, decodeBool)
	case "position":
		return bind(n.PositionProp(), bs, decodeVec2)
	}
	return nil, fmt.Errorf("unknown prop %q", bs.Prop)
}

// bind decodes the binding's values as V and applies its window and easing.
func bind[V any](acc motion.Accessor[V], bs BindingSpec, decode func(*yaml.Node) (V, error)) (motion.Animatable, error) {
	to, err := decode(&bs.To)
	if err != nil {
		return nil, fmt.Errorf("%s.%s to: %w", bs.Node, bs.Prop, err)
	}
	var b motion.Binding[V]
	if bs.From.Kind != 0 {
		from, err := decode(&bs.From)
		if err != nil {
			return nil, fmt.Errorf("%s.%s from: %w", bs.Node, bs.Prop, err)
		}
		b = motion.FromTo(acc, from, to)
	} else {
		b = motion.To(acc, to)
	}
	b = b.WithStartOffset(bs.Delay)
	if bs.Duration != nil {
		b = b.WithDuration(*bs.Duration)
	}
	if bs.Easing != "" {
		e, ok := motion.EasingByName(bs.Easing)
		if !ok {
			return nil, fmt.Errorf("unknown easing %q", bs.Easing)
		}
		b = b.WithEasing(e)
	}
	return b, nil
}

func decodeFloat(n *yaml.Node) (float64, error) {
	var v float64
	err := n.Decode(&v)
	return v, err
}

func decodeDegrees(n *yaml.Node) (motion.Angle, error) {
	deg, err := decodeFloat(n)
	return motion.Degrees(deg), err
}

func decodeBool(n *yaml.Node) (bool, error) {
	var v bool
	err := n.Decode(&v)
	return v, err
}

func decodeVec2(n *yaml.Node) (motion.Vec2, error) {
	var xy []float64
	if err := n.Decode(&xy); err != nil {
		return motion.Vec2{}, err
	}
	if len(xy) != 2 {
		return motion.Vec2{}, fmt.Errorf("line %d: position needs [x, y]", n.Line)
	}
	return motion.Vec2{X: xy[0], Y: xy[1]}, nil
}
