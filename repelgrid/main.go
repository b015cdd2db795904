//go:build js && wasm

// Wasming
// compile: GOOS=js GOARCH=wasm go build -o main.wasm ./repelgrid
//
// The page needs an <svg id="interactive-svg-bg"> holding a
// <g id="dot-container">. Optional: data-shape="dot" and a data-config JSON
// object on the svg, #main-heading / #sub-heading to glow, data-tune with a
// websocket URL to share tuning with other pages.
package main

import (
	"context"
	"errors"
	"log"
	"syscall/js"

	"github.com/stdiopt/repelgrid/field"
)

func main() {
	doc := js.Global().Get("document")

	// Wait for the DOM like DOMContentLoaded would, unless it is already there.
	ready := make(chan struct{})
	if doc.Get("readyState").String() == "loading" {
		onReady := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			close(ready)
			return nil
		})
		defer onReady.Release()
		doc.Call("addEventListener", "DOMContentLoaded", onReady, map[string]interface{}{"once": true})
	} else {
		close(ready)
	}
	<-ready

	p, err := newPage(doc)
	if err != nil {
		log.Println("repelgrid:", err)
		return
	}
	defer p.release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Lets the embedding page tear the effect down.
	stop := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cancel()
		return nil
	})
	defer stop.Release()
	js.Global().Set("repelgridStop", stop)
	defer js.Global().Delete("repelgridStop")

	raf := newRAFScheduler()
	defer raf.Release()

	loop := field.NewLoop(raf, p.frame)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Println("repelgrid:", err)
	}
}
