//go:build js && wasm

package main

import (
	"log"
	"syscall/js"

	"github.com/stdiopt/repelgrid/field"
	"github.com/stdiopt/repelgrid/tune"
)

// relay shares tuning with other pages through the tune hub.
type relay struct {
	ws    js.Value
	funcs []js.Func
}

func dialRelay(addr string, apply func(field.Config)) *relay {
	r := &relay{ws: js.Global().Get("WebSocket").New(addr)}

	onopen := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		log.Println("repelgrid: tuning relay connected")
		return nil
	})
	onmessage := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		op, err := tune.Decode([]byte(args[0].Get("data").String()))
		if err != nil {
			log.Println("repelgrid: relay message:", err)
			return nil
		}
		switch o := op.(type) {
		case tune.HelloOP:
			apply(o.Config)
		case tune.ConfigOP:
			apply(o.Config)
		}
		return nil
	})
	onclose := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		log.Println("repelgrid: tuning relay closed")
		return nil
	})
	r.funcs = append(r.funcs, onopen, onmessage, onclose)
	r.ws.Set("onopen", onopen)
	r.ws.Set("onmessage", onmessage)
	r.ws.Set("onclose", onclose)
	return r
}

func (r *relay) send(cfg field.Config) {
	if r.ws.Get("readyState").Int() != 1 { // OPEN
		return
	}
	buf, err := tune.Encode(tune.ConfigOP{Config: cfg})
	if err != nil {
		log.Println("repelgrid: encoding config:", err)
		return
	}
	r.ws.Call("send", string(buf))
}

func (r *relay) close() {
	// Detach handlers first, close events arrive after the funcs are released.
	for _, h := range []string{"onopen", "onmessage", "onclose"} {
		r.ws.Set(h, js.Null())
	}
	r.ws.Call("close")
	for _, f := range r.funcs {
		f.Release()
	}
}
