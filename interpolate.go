package motion

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// Interpolator blends from and to by ratio. Implementations must return from
// exactly at ratio 0 and to exactly at ratio 1. Ratios outside [0, 1] are
// allowed (overshooting easings) and extrapolate where the kind permits it.
type Interpolator[V any] func(ratio float64, from, to V) V

// Kind identifies the interpolation strategy selected for a Binding.
type Kind uint8

const (
	KindAny      Kind = iota // numeric lerp if the value is numeric, otherwise a step at ratio 1
	KindNumeric              // linear over a Go integer or float
	KindColor                // per-channel linear blend of Color
	KindAngle                // linear over radians, no wraparound
	KindDuration             // linear over the millisecond magnitude of time.Duration
	KindVec2                 // per-component linear blend of Vec2
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindNumeric:
		return "numeric"
	case KindColor:
		return "color"
	case KindAngle:
		return "angle"
	case KindDuration:
		return "duration"
	case KindVec2:
		return "vec2"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Number is the set of Go numeric types InterpolateNumber accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// InterpolateFloat linearly interpolates between two float64 values.
func InterpolateFloat(ratio float64, from, to float64) float64 {
	switch ratio {
	case 0:
		return from
	case 1:
		return to
	}
	return from + (to-from)*ratio
}

// InterpolateNumber linearly interpolates any numeric type. Integer results
// are rounded to the nearest value and saturate at the bounds of N when an
// overshooting ratio leaves its range.
func InterpolateNumber[N Number](ratio float64, from, to N) N {
	switch ratio {
	case 0:
		return from
	case 1:
		return to
	}
	v := float64(from) + (float64(to)-float64(from))*ratio
	half := 0.5
	if N(half) != 0 {
		return N(v)
	}
	v = math.Round(v)
	t := reflect.TypeFor[N]()
	if k := t.Kind(); k >= reflect.Uint && k <= reflect.Uint64 {
		return N(saturateUint(v, t.Bits()))
	}
	return N(saturateInt(v, t.Bits()))
}

// saturateInt converts an integral v to a signed integer of the given width,
// clamping values outside its range to the nearest bound.
func saturateInt(v float64, bits int) int64 {
	hi := int64(1)<<(bits-1) - 1
	lo := -hi - 1
	switch {
	case v >= float64(hi):
		return hi
	case v <= float64(lo):
		return lo
	}
	return int64(v)
}

// saturateUint is saturateInt for unsigned integers.
func saturateUint(v float64, bits int) uint64 {
	hi := uint64(math.MaxUint64) >> (64 - bits)
	switch {
	case v >= float64(hi):
		return hi
	case v <= 0:
		return 0
	}
	return uint64(v)
}

// InterpolateColor blends each channel of two colors independently.
func InterpolateColor(ratio float64, from, to Color) Color {
	return Color{
		R: InterpolateFloat(ratio, from.R, to.R),
		G: InterpolateFloat(ratio, from.G, to.G),
		B: InterpolateFloat(ratio, from.B, to.B),
		A: InterpolateFloat(ratio, from.A, to.A),
	}
}

// InterpolateAngle interpolates over the radian measure. Callers that need the
// shortest path across the ±π seam must normalize the endpoints first.
func InterpolateAngle(ratio float64, from, to Angle) Angle {
	return Angle(InterpolateFloat(ratio, float64(from), float64(to)))
}

// InterpolateDuration interpolates over the millisecond magnitude of two spans.
func InterpolateDuration(ratio float64, from, to time.Duration) time.Duration {
	switch ratio {
	case 0:
		return from
	case 1:
		return to
	}
	ms := InterpolateFloat(ratio, msOf(from), msOf(to))
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}

// InterpolateVec2 blends both components of two vectors.
func InterpolateVec2(ratio float64, from, to Vec2) Vec2 {
	return Vec2{
		X: InterpolateFloat(ratio, from.X, to.X),
		Y: InterpolateFloat(ratio, from.Y, to.Y),
	}
}

// InterpolateAny is the fallback for values whose kind is not known when the
// binding is built. Numeric dynamic values (including named types such as
// Angle) are interpolated linearly; anything else snaps from from to to once
// ratio reaches 1.
func InterpolateAny[V any](ratio float64, from, to V) V {
	if ratio == 0 {
		return from
	}
	if ratio >= 1 && !isNumericValue(from) {
		return to
	}
	if ratio == 1 {
		return to
	}

	fv, tv := reflect.ValueOf(from), reflect.ValueOf(to)
	if !fv.IsValid() || !tv.IsValid() || fv.Type() != tv.Type() {
		if ratio >= 1 {
			return to
		}
		return from
	}

	res := reflect.New(fv.Type()).Elem()
	switch {
	case fv.CanFloat():
		res.SetFloat(InterpolateFloat(ratio, fv.Float(), tv.Float()))
	case fv.CanInt():
		v := math.Round(InterpolateFloat(ratio, float64(fv.Int()), float64(tv.Int())))
		res.SetInt(saturateInt(v, fv.Type().Bits()))
	case fv.CanUint():
		v := math.Round(InterpolateFloat(ratio, float64(fv.Uint()), float64(tv.Uint())))
		res.SetUint(saturateUint(v, fv.Type().Bits()))
	default:
		return from
	}

	var out V
	reflect.ValueOf(&out).Elem().Set(res)
	return out
}

// isNumericValue reports whether v's dynamic value has a numeric kind.
func isNumericValue(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	return rv.CanFloat() || rv.CanInt() || rv.CanUint()
}

// interpolatorFor selects the interpolator for V from the closed set of
// supported kinds, falling back to InterpolateAny.
func interpolatorFor[V any]() (Interpolator[V], Kind) {
	var zero V
	var fn any
	kind := KindNumeric
	switch any(zero).(type) {
	case float64:
		fn = Interpolator[float64](InterpolateFloat)
	case float32:
		fn = Interpolator[float32](InterpolateNumber[float32])
	case int:
		fn = Interpolator[int](InterpolateNumber[int])
	case int8:
		fn = Interpolator[int8](InterpolateNumber[int8])
	case int16:
		fn = Interpolator[int16](InterpolateNumber[int16])
	case int32:
		fn = Interpolator[int32](InterpolateNumber[int32])
	case int64:
		fn = Interpolator[int64](InterpolateNumber[int64])
	case uint:
		fn = Interpolator[uint](InterpolateNumber[uint])
	case uint8:
		fn = Interpolator[uint8](InterpolateNumber[uint8])
	case uint16:
		fn = Interpolator[uint16](InterpolateNumber[uint16])
	case uint32:
		fn = Interpolator[uint32](InterpolateNumber[uint32])
	case uint64:
		fn = Interpolator[uint64](InterpolateNumber[uint64])
	case Color:
		fn, kind = Interpolator[Color](InterpolateColor), KindColor
	case Angle:
		fn, kind = Interpolator[Angle](InterpolateAngle), KindAngle
	case time.Duration:
		fn, kind = Interpolator[time.Duration](InterpolateDuration), KindDuration
	case Vec2:
		fn, kind = Interpolator[Vec2](InterpolateVec2), KindVec2
	default:
		return InterpolateAny[V], KindAny
	}
	return fn.(Interpolator[V]), kind
}

func msOf(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
