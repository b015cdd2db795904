// termgrid draws the repelling grid in a terminal. Move the mouse over it,
// q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/stdiopt/repelgrid/field"
)

var (
	// shapeFlag picks the marker preset.
	shapeFlag = flag.String("shape", "plus", "marker shape: plus or dot")

	// spacingFlag overrides the lattice spacing; terminals are coarse.
	spacingFlag = flag.Float64("spacing", 0, "grid spacing in logical units, 0 keeps the preset")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termgrid: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	shape, err := field.ShapeByName(*shapeFlag)
	if err != nil {
		return err
	}
	cfg := field.ConfigFor(*shapeFlag)
	if *spacingFlag > 0 {
		cfg.GridSpacing = *spacingFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	g, err := newGrid(screen, cfg, shape, "REPELGRID", "move the mouse, q quits")
	if err != nil {
		return err
	}
	g.run()
	return nil
}
