// Package motion animates properties over time for [Ebitengine] games.
//
// A tween is a set of [Binding] values, each describing one property: an
// [Accessor] to read and write it, the value to reach, an interpolator chosen
// from the value's [Kind], and an optional window (start offset and duration)
// inside the tween. A [Driver] steps the bindings once per frame; a [Scene]
// is the frame loop that advances every attached driver.
//
// # Quick start
//
// Tween blocks until the animation is done, so call it from its own goroutine
// while the game loop runs:
//
//	scene := motion.NewScene()
//	box := motion.NewSprite("box", 32, 32)
//	scene.Root().AddChild(box)
//
//	go func() {
//		_ = scene.Tween(ctx, motion.TweenConfig{Duration: time.Second},
//			motion.To(box.XProp(), 300.0).EaseOutBounce(),
//			motion.To(box.AlphaProp(), 0.5).WithStartOffset(500*time.Millisecond),
//		)
//		_ = scene.Hide(ctx, box, 250*time.Millisecond, nil)
//	}()
//
//	motion.Run(scene, motion.RunConfig{Title: "demo", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call [Scene.Update]
// and [Scene.Draw] directly.
//
// # Completion
//
// Tween returns nil in all three ways a tween can end: the timeline reaches
// its duration, ctx is cancelled (the driver stops on the next frame without
// writing), or the scene stops advancing for longer than [WatchdogTimeout], in
// which case every binding is snapped to its end value. Only invalid bindings
// produce an error.
//
// # Easing
//
// Named curves ([EaseOutBounce], [EaseInOutBack], ...) come from [gween] via
// [FromTweenFunc]. Bindings carry their own easing ([Binding.WithEasing] and
// the shortcut methods); [TweenConfig.Easing] only shapes the progress passed
// to [TweenConfig.OnProgress].
//
// Lifecycle events can be bridged into a [Donburi] world with the adapter in
// motion/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package motion
