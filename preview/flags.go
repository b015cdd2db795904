package main

import "flag"

var (
	// shapeFlag picks the marker preset.
	shapeFlag = flag.String("shape", "plus", "marker shape: plus or dot")

	// sizeFlag is the initial window edge in pixels.
	sizeFlag = flag.Int("size", 800, "window width and height")

	// easeFlag selects the easing model.
	easeFlag = flag.String("ease", "fixed", "easing: fixed, timescaled, spring or physics")

	// falloffFlag overrides the glow falloff curve.
	falloffFlag = flag.String("falloff", "", "glow falloff curve name")
)
