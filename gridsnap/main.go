// gridsnap renders the repelling grid to a file, optionally after a few
// frames of a simulated pointer.
//
//	gridsnap -shape dot -x 500 -y 400 -frames 30 -out grid.png
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/stdiopt/repelgrid/field"
	"github.com/stdiopt/repelgrid/snapshot"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ext := strings.ToLower(filepath.Ext(*outFlag))
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("unknown output format %q", ext)
	}
	shape, err := field.ShapeByName(*shapeFlag)
	if err != nil {
		return err
	}
	cfg := field.ConfigFor(*shapeFlag)
	if *configFlag != "" {
		raw, err := os.ReadFile(*configFlag)
		if err != nil {
			return err
		}
		if cfg, err = field.ParseConfig(cfg, raw); err != nil {
			return fmt.Errorf("config %s: %w", *configFlag, err)
		}
	}

	p, err := snapshot.NewPainter(*sizeFlag, *sizeFlag, cfg.ViewBoxSize)
	if err != nil {
		return err
	}

	f := field.Build(field.Discard, cfg, shape)
	anim, err := field.NewAnimator(f, cfg)
	if err != nil {
		return err
	}

	var headings []*snapshot.Heading
	if *headingFlag != "" {
		center := field.Vec2{X: float64(*sizeFlag) / 2, Y: float64(*sizeFlag) / 2}
		h := p.Layout(*headingFlag, float64(*sizeFlag)/16, center)
		headings = append(headings, h)
		anim.Watch(h)
	}

	if *xFlag >= 0 && *yFlag >= 0 {
		anim.PointerMove(field.CTMMapper(p.CTM), field.Vec2{X: *xFlag, Y: *yFlag})
		for i := 0; i < *framesFlag; i++ {
			anim.Frame(field.DefaultFrame)
		}
	}

	out, err := os.Create(*outFlag)
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	switch ext {
	case ".svg":
		for _, h := range headings {
			// SVG headings live in view box units.
			h.Box = scaleRect(h.Box, 1/p.Scale)
			h.Size /= p.Scale
		}
		snapshot.SVG(w, f, shape, cfg, snapshot.SVGOptions{
			Width:    *sizeFlag,
			Height:   *sizeFlag,
			ID:       "interactive-svg-bg",
			Headings: headings,
		})
	default:
		p.Frame(f, shape, headings, snapshot.GlowColor)
		if err := png.Encode(w, p.Image()); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	log.Printf("wrote %s (%d markers, %d frames)", *outFlag, f.Len(), anim.Frames())
	return nil
}

func scaleRect(r field.Rect, s float64) field.Rect {
	return field.Rect{X: r.X * s, Y: r.Y * s, Width: r.Width * s, Height: r.Height * s}
}
