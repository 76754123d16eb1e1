package motion

import (
	"fmt"
	"time"
)

// Accessor reads and writes a single property slot. It does not own the
// underlying object.
type Accessor[V any] interface {
	Get() V
	Set(V)
}

type fieldAccessor[V any] struct {
	p *V
}

func (a fieldAccessor[V]) Get() V  { return *a.p }
func (a fieldAccessor[V]) Set(v V) { *a.p = v }

// Field returns an Accessor backed by a pointer to a variable or struct field.
func Field[V any](p *V) Accessor[V] {
	return fieldAccessor[V]{p: p}
}

type funcAccessor[V any] struct {
	get func() V
	set func(V)
}

func (a funcAccessor[V]) Get() V  { return a.get() }
func (a funcAccessor[V]) Set(v V) { a.set(v) }

// Prop returns an Accessor backed by a getter and setter pair.
func Prop[V any](get func() V, set func(V)) Accessor[V] {
	return funcAccessor[V]{get: get, set: set}
}

// Animatable is implemented by Binding and consumed by Driver. The set of
// implementations is closed to this package.
type Animatable interface {
	// StartOffset is the delay from the start of the tween.
	StartOffset() time.Duration
	// EndTime is StartOffset plus the binding's own duration (zero if unset).
	EndTime() time.Duration
	newTrack() (track, error)
}

// Binding describes one animated property: where to read and write it, the
// values to blend between, how to blend them and when, relative to the start
// of the tween. Bindings are values; every combinator returns a modified copy
// and leaves the receiver usable.
type Binding[V any] struct {
	accessor     Accessor[V]
	initial      V
	end          V
	interp       Interpolator[V]
	kind         Kind
	includeStart bool
	startOffset  time.Duration
	duration     time.Duration
	hasDuration  bool
}

// To animates the property from whatever value it holds when the tween
// starts to end.
func To[V any](acc Accessor[V], end V) Binding[V] {
	interp, kind := interpolatorFor[V]()
	b := Binding[V]{accessor: acc, end: end, interp: interp, kind: kind}
	if acc != nil {
		b.initial = acc.Get()
	}
	return b
}

// FromTo animates the property from an explicit start value to end.
func FromTo[V any](acc Accessor[V], from, end V) Binding[V] {
	interp, kind := interpolatorFor[V]()
	return Binding[V]{accessor: acc, initial: from, end: end, interp: interp, kind: kind, includeStart: true}
}

// NewBinding builds a binding with a caller-supplied interpolator. A nil
// interp selects the default for V.
func NewBinding[V any](acc Accessor[V], from, end V, interp Interpolator[V], includeStart bool) Binding[V] {
	def, kind := interpolatorFor[V]()
	if interp == nil {
		interp = def
	}
	return Binding[V]{accessor: acc, initial: from, end: end, interp: interp, kind: kind, includeStart: includeStart}
}

// Initial returns the start value. When IncludeStart is false this is only
// provisional: the driver replaces it with the property's value at tween start.
func (b Binding[V]) Initial() V { return b.initial }

// End returns the target value.
func (b Binding[V]) End() V { return b.end }

// Kind returns the interpolation kind selected for V.
func (b Binding[V]) Kind() Kind { return b.kind }

// IncludeStart reports whether Initial is used as given.
func (b Binding[V]) IncludeStart() bool { return b.includeStart }

// StartOffset returns the delay between tween start and this binding start.
func (b Binding[V]) StartOffset() time.Duration { return b.startOffset }

// LocalDuration returns the binding's own duration and whether one was set.
// Without one the binding runs until the end of the tween.
func (b Binding[V]) LocalDuration() (time.Duration, bool) { return b.duration, b.hasDuration }

// EndTime returns StartOffset plus the local duration, or just StartOffset
// when no duration was set.
func (b Binding[V]) EndTime() time.Duration {
	if !b.hasDuration {
		return b.startOffset
	}
	return b.startOffset + b.duration
}

// At returns the interpolated value for ratio without touching the property.
func (b Binding[V]) At(ratio float64) V {
	return b.interp(ratio, b.initial, b.end)
}

// WithEasing returns a copy whose interpolator reshapes the ratio with e
// before blending. Applied twice, the later easing sees the raw ratio and
// feeds its result to the earlier one.
func (b Binding[V]) WithEasing(e Easing) Binding[V] {
	inner := b.interp
	b.interp = func(ratio float64, from, to V) V {
		return inner(e(ratio), from, to)
	}
	return b
}

// WithStartOffset returns a copy that starts d after the tween begins.
func (b Binding[V]) WithStartOffset(d time.Duration) Binding[V] {
	b.startOffset = d
	return b
}

// WithDuration returns a copy that runs for d once started.
func (b Binding[V]) WithDuration(d time.Duration) Binding[V] {
	b.duration = d
	b.hasDuration = true
	return b
}

// Linear returns b unchanged; bindings blend linearly by default.
func (b Binding[V]) Linear() Binding[V] { return b }

// Smooth returns a copy eased with Smooth.
func (b Binding[V]) Smooth() Binding[V] { return b.WithEasing(Smooth) }

// EaseIn returns a copy eased with EaseIn.
func (b Binding[V]) EaseIn() Binding[V] { return b.WithEasing(EaseIn) }

// EaseOut returns a copy eased with EaseOut.
func (b Binding[V]) EaseOut() Binding[V] { return b.WithEasing(EaseOut) }

// EaseInOut returns a copy eased with EaseInOut.
func (b Binding[V]) EaseInOut() Binding[V] { return b.WithEasing(EaseInOut) }

// EaseOutIn returns a copy eased with EaseOutIn.
func (b Binding[V]) EaseOutIn() Binding[V] { return b.WithEasing(EaseOutIn) }

// EaseInBack returns a copy eased with EaseInBack.
func (b Binding[V]) EaseInBack() Binding[V] { return b.WithEasing(EaseInBack) }

// EaseOutBack returns a copy eased with EaseOutBack.
func (b Binding[V]) EaseOutBack() Binding[V] { return b.WithEasing(EaseOutBack) }

// EaseInOutBack returns a copy eased with EaseInOutBack.
func (b Binding[V]) EaseInOutBack() Binding[V] { return b.WithEasing(EaseInOutBack) }

// EaseOutInBack returns a copy eased with EaseOutInBack.
func (b Binding[V]) EaseOutInBack() Binding[V] { return b.WithEasing(EaseOutInBack) }

// EaseInElastic returns a copy eased with EaseInElastic.
func (b Binding[V]) EaseInElastic() Binding[V] { return b.WithEasing(EaseInElastic) }

// EaseOutElastic returns a copy eased with EaseOutElastic.
func (b Binding[V]) EaseOutElastic() Binding[V] { return b.WithEasing(EaseOutElastic) }

// EaseInOutElastic returns a copy eased with EaseInOutElastic.
func (b Binding[V]) EaseInOutElastic() Binding[V] { return b.WithEasing(EaseInOutElastic) }

// EaseOutInElastic returns a copy eased with EaseOutInElastic.
func (b Binding[V]) EaseOutInElastic() Binding[V] { return b.WithEasing(EaseOutInElastic) }

// EaseInBounce returns a copy eased with EaseInBounce.
func (b Binding[V]) EaseInBounce() Binding[V] { return b.WithEasing(EaseInBounce) }

// EaseOutBounce returns a copy eased with EaseOutBounce.
func (b Binding[V]) EaseOutBounce() Binding[V] { return b.WithEasing(EaseOutBounce) }

// EaseInOutBounce returns a copy eased with EaseInOutBounce.
func (b Binding[V]) EaseInOutBounce() Binding[V] { return b.WithEasing(EaseInOutBounce) }

// EaseOutInBounce returns a copy eased with EaseOutInBounce.
func (b Binding[V]) EaseOutInBounce() Binding[V] { return b.WithEasing(EaseOutInBounce) }

// EaseInQuad returns a copy eased with EaseInQuad.
func (b Binding[V]) EaseInQuad() Binding[V] { return b.WithEasing(EaseInQuad) }

// EaseOutQuad returns a copy eased with EaseOutQuad.
func (b Binding[V]) EaseOutQuad() Binding[V] { return b.WithEasing(EaseOutQuad) }

// EaseInOutQuad returns a copy eased with EaseInOutQuad.
func (b Binding[V]) EaseInOutQuad() Binding[V] { return b.WithEasing(EaseInOutQuad) }

// EaseSine returns a copy eased with EaseSine.
func (b Binding[V]) EaseSine() Binding[V] { return b.WithEasing(EaseSine) }

func (b Binding[V]) String() string {
	dur := "tween"
	if b.hasDuration {
		dur = b.duration.String()
	}
	return fmt.Sprintf("Binding(kind=%s, range=[%v-%v], start=%v, duration=%s)",
		b.kind, b.initial, b.end, b.startOffset, dur)
}

// newTrack validates the binding and returns the driver-owned copy.
func (b Binding[V]) newTrack() (track, error) {
	if b.accessor == nil {
		return nil, ErrNilAccessor
	}
	if b.startOffset < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeOffset, b.startOffset)
	}
	if b.hasDuration && b.duration < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeDuration, b.duration)
	}
	if b.interp == nil {
		b.interp, b.kind = interpolatorFor[V]()
	}
	return &bindingTrack[V]{b: b}, nil
}

// track is the driver's mutable per-binding state.
type track interface {
	// capture replaces the provisional start value with the property's
	// current value, unless the binding carries an explicit start.
	capture()
	// apply writes the value for the binding's local ratio.
	apply(ratio float64)
	window() (offset, duration time.Duration, hasDuration bool)
	String() string
}

type bindingTrack[V any] struct {
	b Binding[V]
}

func (t *bindingTrack[V]) capture() {
	if !t.b.includeStart {
		t.b.initial = t.b.accessor.Get()
	}
}

func (t *bindingTrack[V]) apply(ratio float64) {
	t.b.accessor.Set(t.b.interp(ratio, t.b.initial, t.b.end))
}

func (t *bindingTrack[V]) window() (time.Duration, time.Duration, bool) {
	return t.b.startOffset, t.b.duration, t.b.hasDuration
}

func (t *bindingTrack[V]) String() string { return t.b.String() }
