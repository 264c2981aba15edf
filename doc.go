// Package easel is a retained-mode 2D scene and input engine.
//
// A [Scene] owns a drawing surface implementing [Context], an ordered
// registry of shapes, and per-event listener tables. Shapes are built through
// the scene and drawn in construction order on every tick. The hosts in
// easel/ebitenhost (a window on [Ebitengine]) and easel/termhost (a terminal
// UI on [Bubble Tea]) feed it input and show the surface.
//
// # Quick start
//
//	scene := easel.NewScene(easel.NewRasterContext(640, 480))
//	box := scene.NewRectangle(100, 50, 20, 20)
//	box.SetColor(easel.ColorBlue)
//	scene.Add(box)
//
//	scene.OnClick(func(x, y float64) error {
//		if box.ContainsPoint(x, y) {
//			box.SetColor(easel.ColorOrange)
//		}
//		return nil
//	})
//
//	cfg, _ := easel.LoadRunConfig("")
//	ebitenhost.Run(scene, cfg)
//
// For headless use, drive the scene with a [Loop]:
//
//	loop := easel.NewLoop(scene, easel.DefaultTickInterval)
//	go loop.Run(ctx)
//
// # Shapes
//
// [Circle], [Rectangle], [Line], [Text] and [Image] form a closed set behind
// [Shape]. A shape is drawn only while visible: [Scene.Add] shows it and
// [Scene.Remove] hides it without unregistering it. Hit-tests are pure
// predicates on the shape's fields; see each ContainsPoint for the exact
// rule.
//
// # Images and pixels
//
// Images load asynchronously through the scene's [ImageLoader] and move
// from [ImageLoading] to [ImageReady] or [ImageFailed] on the engine thread.
// [Image.CaptureBuffer] copies the image's rectangle off the surface into a
// [PixelBuffer]; from then on the image draws from that buffer, and pixel
// edits show on the next tick.
//
// # Threading
//
// Everything runs on one engine thread. [Scene.Post] is the only way to hand
// work to it from another goroutine.
//
// # Logging
//
// easel is silent by default. Call [SetLogger] to see listener failures,
// image load errors and debug stats.
//
// [Ebitengine]: https://ebitengine.org
// [Bubble Tea]: https://github.com/charmbracelet/bubbletea
package easel
