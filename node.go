package motion

import (
	"fmt"
	"sync/atomic"
)

var nodeIDCounter atomic.Uint32

func nextNodeID() uint32 {
	return nodeIDCounter.Add(1)
}

// Node is a tweenable scene element. Transform, tint and visibility are plain
// fields; set them directly and call MarkDirty, use the setters, or animate
// them through the *Prop accessors.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Size of the rectangle drawn for NodeTypeSprite, before scaling.
	Width, Height float64

	// Appearance
	Alpha   float64
	Color   Color
	Visible bool

	// Metadata
	UserData any

	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool
	disposed       bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a group node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a node drawn as a solid w x h rectangle tinted by Color.
func NewSprite(name string, w, h float64) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children, removing it from any
// previous parent. Panics if child is nil or an ancestor of n.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("motion: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("motion: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node. Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("motion: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent, if any.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// FindChild returns the first descendant named name, depth first, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// Dispose removes the node from its parent and disposes it and all of its
// descendants. Tweens still bound to a disposed node panic on their next write.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed reports whether the node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// --- Property accessors ---

// nodeProp writes a node field and marks the node dirty. Writing to a
// disposed node panics with an error wrapping ErrDisposed.
type nodeProp[V any] struct {
	n    *Node
	name string
	p    *V
}

func (a nodeProp[V]) Get() V { return *a.p }

func (a nodeProp[V]) Set(v V) {
	if a.n.disposed {
		panic(fmt.Errorf("set %s on node %q: %w", a.name, a.n.Name, ErrDisposed))
	}
	*a.p = v
	a.n.transformDirty = true
}

// XProp returns an accessor for X.
func (n *Node) XProp() Accessor[float64] { return nodeProp[float64]{n, "X", &n.X} }

// YProp returns an accessor for Y.
func (n *Node) YProp() Accessor[float64] { return nodeProp[float64]{n, "Y", &n.Y} }

// ScaleXProp returns an accessor for ScaleX.
func (n *Node) ScaleXProp() Accessor[float64] { return nodeProp[float64]{n, "ScaleX", &n.ScaleX} }

// ScaleYProp returns an accessor for ScaleY.
func (n *Node) ScaleYProp() Accessor[float64] { return nodeProp[float64]{n, "ScaleY", &n.ScaleY} }

// AlphaProp returns an accessor for Alpha.
func (n *Node) AlphaProp() Accessor[float64] { return nodeProp[float64]{n, "Alpha", &n.Alpha} }

// ColorProp returns an accessor for Color.
func (n *Node) ColorProp() Accessor[Color] { return nodeProp[Color]{n, "Color", &n.Color} }

// VisibleProp returns an accessor for Visible. Booleans have no partial
// values, so a tween flips it when the binding's window ends.
func (n *Node) VisibleProp() Accessor[bool] { return nodeProp[bool]{n, "Visible", &n.Visible} }

// RotationProp returns an accessor for Rotation typed as an Angle.
func (n *Node) RotationProp() Accessor[Angle] {
	return Prop(
		func() Angle { return Angle(n.Rotation) },
		func(a Angle) { nodeProp[float64]{n, "Rotation", &n.Rotation}.Set(float64(a)) },
	)
}

// PositionProp returns an accessor for (X, Y) as a Vec2.
func (n *Node) PositionProp() Accessor[Vec2] {
	return Prop(
		func() Vec2 { return Vec2{n.X, n.Y} },
		func(v Vec2) {
			nodeProp[float64]{n, "X", &n.X}.Set(v.X)
			n.Y = v.Y
		},
	)
}
