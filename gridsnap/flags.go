package main

import "flag"

var (
	// shapeFlag picks the marker preset.
	shapeFlag = flag.String("shape", "plus", "marker shape: plus or dot")

	// outFlag is the output file, the extension picks the format.
	outFlag = flag.String("out", "grid.svg", "output file (.svg or .png)")

	// sizeFlag is the output edge in pixels.
	sizeFlag = flag.Int("size", 1000, "output width and height in pixels")

	// configFlag overrides the preset with a JSON file.
	configFlag = flag.String("config", "", "JSON file overriding the preset")

	// xFlag and yFlag place a pointer, in output pixels, before the snapshot.
	xFlag = flag.Float64("x", -1, "pointer x in pixels, negative for none")
	yFlag = flag.Float64("y", -1, "pointer y in pixels, negative for none")

	// framesFlag is how many frames are simulated with the pointer in place.
	framesFlag = flag.Int("frames", 60, "frames to simulate before the snapshot")

	// headingFlag adds a heading at the centre of the output.
	headingFlag = flag.String("heading", "", "heading text drawn in the centre")
)
