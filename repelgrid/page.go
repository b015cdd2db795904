//go:build js && wasm

package main

import (
	"errors"
	"log"
	"strconv"
	"syscall/js"
	"time"

	"github.com/stdiopt/repelgrid/field"
)

const glowColor = "var(--glow-color)"

// tuneInputs maps range inputs on the page to the value they drive.
var tuneInputs = map[string]func(c *field.Config, v float64){
	"repel-radius":   func(c *field.Config, v float64) { c.RepelRadius = v },
	"repel-strength": func(c *field.Config, v float64) { c.RepelStrength = v },
	"ease-factor":    func(c *field.Config, v float64) { c.EaseFactor = v },
	"glow-radius":    func(c *field.Config, v float64) { c.GlowRadius = v },
}

type page struct {
	doc       js.Value
	svg       js.Value
	container js.Value

	shape   field.Shape
	surface *svgSurface
	anim    *field.Animator
	relay   *relay

	funcs []listener
}

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

func newPage(doc js.Value) (*page, error) {
	p := &page{
		doc:       doc,
		svg:       doc.Call("getElementById", "interactive-svg-bg"),
		container: doc.Call("getElementById", "dot-container"),
	}
	if p.svg.IsNull() || p.container.IsNull() {
		return nil, errors.New("missing #interactive-svg-bg or #dot-container")
	}

	shapeName := attr(p.svg, "data-shape")
	shape, err := field.ShapeByName(shapeName)
	if err != nil {
		log.Println("repelgrid:", err, "using plus")
		shape, shapeName = field.DefaultPlus(), "plus"
	}
	p.shape = shape

	cfg := field.ConfigFor(shapeName)
	if raw := attr(p.svg, "data-config"); raw != "" {
		if cfg, err = field.ParseConfig(cfg, []byte(raw)); err != nil {
			log.Println("repelgrid: ignoring data-config:", err)
		}
	}

	p.surface = &svgSurface{doc: doc, container: p.container}
	f := field.Build(p.surface, cfg, shape)
	if p.anim, err = field.NewAnimator(f, cfg); err != nil {
		return nil, err
	}
	// Fixed stays nil so the live easeFactor tuning applies.
	if name := attr(p.svg, "data-ease"); name != "" && name != "fixed" {
		if p.anim.Easer, err = field.EaserByName(name, cfg, 60); err != nil {
			log.Println("repelgrid:", err)
		}
	}

	var glows []field.Element
	for _, id := range []string{"main-heading", "sub-heading"} {
		if el := doc.Call("getElementById", id); !el.IsNull() {
			glows = append(glows, &textGlow{el: el})
		}
	}
	p.anim.Watch(glows...)

	p.initEvents()
	p.initTuning()
	return p, nil
}

func (p *page) ctm() (field.Affine, error) {
	if p.svg.Get("getScreenCTM").IsUndefined() || p.svg.Get("createSVGPoint").IsUndefined() {
		return field.Identity, field.ErrNoTransform
	}
	m := p.svg.Call("getScreenCTM")
	if m.IsNull() {
		return field.Identity, field.ErrNoTransform
	}
	return field.Affine{
		m.Get("a").Float(), m.Get("b").Float(),
		m.Get("c").Float(), m.Get("d").Float(),
		m.Get("e").Float(), m.Get("f").Float(),
	}, nil
}

func (p *page) on(target js.Value, event string, fn func(e js.Value)) {
	jf := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn(args[0])
		return nil
	})
	target.Call("addEventListener", event, jf)
	p.funcs = append(p.funcs, listener{target, event, jf})
}

func (p *page) initEvents() {
	win := js.Global()
	mapper := field.CTMMapper(p.ctm)
	move := func(e js.Value) {
		p.anim.PointerMove(mapper, field.Vec2{X: e.Get("clientX").Float(), Y: e.Get("clientY").Float()})
	}

	p.on(win, "mousemove", move)
	p.on(win, "mouseleave", func(js.Value) { p.anim.PointerLeave() })
	p.on(win, "touchend", func(js.Value) { p.anim.PointerLeave() })
	p.on(win, "touchmove", func(e js.Value) {
		touches := e.Get("touches")
		if touches.Length() > 0 {
			move(touches.Index(0))
		}
	})
	p.on(win, "resize", func(js.Value) { p.anim.Relayout() })

	link := p.doc.Call("getElementById", "danger-link")
	img := p.doc.Call("getElementById", "surprise-image")
	if !link.IsNull() && !img.IsNull() {
		p.on(link, "click", func(e js.Value) {
			e.Call("preventDefault")
			img.Get("classList").Call("add", "visible")
		})
		p.on(img, "click", func(js.Value) {
			img.Get("classList").Call("remove", "visible")
		})
	}
}

func (p *page) initTuning() {
	for id, set := range tuneInputs {
		el := p.doc.Call("getElementById", id)
		if el.IsNull() {
			continue
		}
		set := set
		p.on(el, "input", func(e js.Value) {
			v, err := strconv.ParseFloat(e.Get("target").Get("value").String(), 64)
			if err != nil {
				log.Println("repelgrid: invalid value", err)
				return
			}
			cfg := p.anim.Config()
			set(&cfg, v)
			if err := p.anim.SetConfig(cfg); err != nil {
				log.Println("repelgrid:", err)
				return
			}
			if p.relay != nil {
				p.relay.send(cfg)
			}
		})
	}
	p.syncInputs()

	if addr := attr(p.svg, "data-tune"); addr != "" {
		p.relay = dialRelay(addr, p.applyConfig)
	}
}

// applyConfig installs tuning received from the relay.
func (p *page) applyConfig(cfg field.Config) {
	old := p.anim.Config()
	if err := p.anim.SetConfig(cfg); err != nil {
		log.Println("repelgrid: relay config:", err)
		return
	}
	if !old.SameLattice(cfg) {
		p.anim.Field().Rebuild(p.surface, cfg, p.shape)
	}
	p.syncInputs()
}

// syncInputs shows the active tuning on the range inputs.
func (p *page) syncInputs() {
	cfg := p.anim.Config()
	values := map[string]float64{
		"repel-radius":   cfg.RepelRadius,
		"repel-strength": cfg.RepelStrength,
		"ease-factor":    cfg.EaseFactor,
		"glow-radius":    cfg.GlowRadius,
	}
	for id, v := range values {
		if el := p.doc.Call("getElementById", id); !el.IsNull() {
			el.Set("value", v)
		}
	}
}

func (p *page) frame(dt time.Duration) {
	win := js.Global()
	p.anim.SetScroll(field.Vec2{X: win.Get("scrollX").Float(), Y: win.Get("scrollY").Float()})
	p.anim.Frame(dt)
}

func (p *page) release() {
	for _, l := range p.funcs {
		l.target.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	p.funcs = nil
	if p.relay != nil {
		p.relay.close()
	}
}

func attr(el js.Value, name string) string {
	v := el.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}
