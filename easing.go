package motion

import (
	"maps"
	"slices"

	"github.com/tanema/gween/ease"
)

// Easing reshapes a linear ratio in [0, 1]. The result may leave [0, 1]
// (back, elastic and bounce curves overshoot).
type Easing func(ratio float64) float64

// FromTweenFunc adapts a gween easing function to an Easing by evaluating it
// over a unit range and unit duration. The endpoints are pinned to 0 and 1 so
// float32 rounding never leaks into a finished tween.
func FromTweenFunc(fn ease.TweenFunc) Easing {
	return func(ratio float64) float64 {
		switch ratio {
		case 0:
			return 0
		case 1:
			return 1
		}
		return float64(fn(float32(ratio), 0, 1, 1))
	}
}

// Linear returns ratio unchanged.
func Linear(ratio float64) float64 { return ratio }

// Smooth is the smoothstep curve 3r² - 2r³.
func Smooth(ratio float64) float64 { return ratio * ratio * (3 - 2*ratio) }

// Named curves. The cubic family backs the unqualified EaseIn/EaseOut names.
var (
	EaseIn    = FromTweenFunc(ease.InCubic)
	EaseOut   = FromTweenFunc(ease.OutCubic)
	EaseInOut = FromTweenFunc(ease.InOutCubic)
	EaseOutIn = FromTweenFunc(ease.OutInCubic)

	EaseInBack    = FromTweenFunc(ease.InBack)
	EaseOutBack   = FromTweenFunc(ease.OutBack)
	EaseInOutBack = FromTweenFunc(ease.InOutBack)
	EaseOutInBack = FromTweenFunc(ease.OutInBack)

	EaseInElastic    = FromTweenFunc(ease.InElastic)
	EaseOutElastic   = FromTweenFunc(ease.OutElastic)
	EaseInOutElastic = FromTweenFunc(ease.InOutElastic)
	EaseOutInElastic = FromTweenFunc(ease.OutInElastic)

	EaseInBounce    = FromTweenFunc(ease.InBounce)
	EaseOutBounce   = FromTweenFunc(ease.OutBounce)
	EaseInOutBounce = FromTweenFunc(ease.InOutBounce)
	EaseOutInBounce = FromTweenFunc(ease.OutInBounce)

	EaseInQuad    = FromTweenFunc(ease.InQuad)
	EaseOutQuad   = FromTweenFunc(ease.OutQuad)
	EaseInOutQuad = FromTweenFunc(ease.InOutQuad)

	EaseSine = FromTweenFunc(ease.OutSine)
)

var easingsByName = map[string]Easing{
	"linear":           Linear,
	"smooth":           Smooth,
	"easeIn":           EaseIn,
	"easeOut":          EaseOut,
	"easeInOut":        EaseInOut,
	"easeOutIn":        EaseOutIn,
	"easeInBack":       EaseInBack,
	"easeOutBack":      EaseOutBack,
	"easeInOutBack":    EaseInOutBack,
	"easeOutInBack":    EaseOutInBack,
	"easeInElastic":    EaseInElastic,
	"easeOutElastic":   EaseOutElastic,
	"easeInOutElastic": EaseInOutElastic,
	"easeOutInElastic": EaseOutInElastic,
	"easeInBounce":     EaseInBounce,
	"easeOutBounce":    EaseOutBounce,
	"easeInOutBounce":  EaseInOutBounce,
	"easeOutInBounce":  EaseOutInBounce,
	"easeInQuad":       EaseInQuad,
	"easeOutQuad":      EaseOutQuad,
	"easeInOutQuad":    EaseInOutQuad,
	"easeSine":         EaseSine,
}

// EasingByName looks up a named curve ("linear", "easeOutBounce", ...).
func EasingByName(name string) (Easing, bool) {
	e, ok := easingsByName[name]
	return e, ok
}

// EasingNames returns every registered curve name in sorted order.
func EasingNames() []string {
	return slices.Sorted(maps.Keys(easingsByName))
}
