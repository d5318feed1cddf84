// Package evergreen renders a rotating evergreen tree built from particles,
// for [Ebitengine] or any other 2D [Surface].
//
// The tree is three particle collections (foliage, string lights, trunk bark)
// placed in cylindrical coordinates around a vertical axis. Every frame the
// scene rotates them a little, projects them with a one-point perspective,
// sorts them back to front, and draws each as a filled disc. A star and a
// greeting are drawn on top, then falling snow.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene, err := evergreen.NewScene(800, 600, evergreen.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	evergreen.Run(scene, evergreen.RunConfig{
//		Title: "Evergreen", Width: 800, Height: 600,
//	})
//
// Clicking, tapping, or pressing Space toggles between sparse and dense
// string lights and rebuilds the tree.
//
// For other hosts, implement [Surface] and call [Scene.Tick] once per
// display refresh, [Scene.Resize] when the viewport changes, and
// [Scene.Activate] on user input. The term sub-package draws to a terminal.
//
// # Timing
//
// Rotation and snowfall advance by fixed per-tick steps tuned for a 60 Hz
// tick rather than by elapsed time.
//
// [Ebitengine]: https://ebitengine.org
package evergreen
