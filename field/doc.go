// Package field animates a lattice of small markers that shy away from the
// pointer, plus a soft glow on a few text elements the pointer comes close to.
//
// The package owns no rendering. Hosts (a browser SVG, an ebiten window, a
// terminal) implement Surface, Marker, Mapper and Element, and hand frames to
// an Animator through a Loop:
//
//	f := field.Build(surface, cfg, field.DefaultPlus())
//	anim, err := field.NewAnimator(f, cfg)
//	anim.Watch(heading, subheading)
//	loop := field.NewLoop(scheduler, anim.Frame)
//	loop.Start()
//
// Everything runs on one goroutine. Pointer handlers and Frame must not be
// called concurrently.
package field
