package motion

import (
	"slices"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNamedEasingsHitEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		e, ok := EasingByName(name)
		if !ok {
			t.Fatalf("EasingByName(%q) not found", name)
		}
		if got := e(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := e(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEasingNames(t *testing.T) {
	names := EasingNames()
	if len(names) != len(easingsByName) {
		t.Fatalf("EasingNames = %d names, want %d", len(names), len(easingsByName))
	}
	if !slices.IsSorted(names) {
		t.Errorf("EasingNames not sorted: %v", names)
	}
	for _, want := range []string{"linear", "smooth", "easeOutBounce", "easeInOutQuad", "easeSine"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing %q", want)
		}
	}
	if _, ok := EasingByName("easeSideways"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestEasingShapes(t *testing.T) {
	if got := Smooth(0.5); got != 0.5 {
		t.Errorf("Smooth(0.5) = %v, want 0.5", got)
	}
	if got := Smooth(0.25); !approxEqual(got, 0.15625, epsilon) {
		t.Errorf("Smooth(0.25) = %v, want 0.15625", got)
	}
	if got := EaseInQuad(0.5); !approxEqual(got, 0.25, 1e-6) {
		t.Errorf("EaseInQuad(0.5) = %v, want 0.25", got)
	}
	if got := EaseOutBack(0.7); got <= 1 {
		t.Errorf("EaseOutBack(0.7) = %v, want overshoot above 1", got)
	}
	if got := EaseInBack(0.3); got >= 0 {
		t.Errorf("EaseInBack(0.3) = %v, want undershoot below 0", got)
	}
}

func TestFromTweenFunc(t *testing.T) {
	e := FromTweenFunc(ease.Linear)
	for _, r := range []float64{0, 0.25, 0.5, 1} {
		if got := e(r); !approxEqual(got, r, 1e-6) {
			t.Errorf("linear(%v) = %v", r, got)
		}
	}
}
