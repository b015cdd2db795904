// Serve static files from a directory next to the tuning relay.
//
//	/          files from -dir (index.html, main.wasm, wasm_exec.js)
//	/tune      websocket relay sharing live tuning between pages
//	/grid.svg  the resting grid as static SVG, for pages without wasm
//
// It will start at -port and if the port is being used it will try the next one.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/stdiopt/repelgrid/field"
	"github.com/stdiopt/repelgrid/snapshot"
	"github.com/stdiopt/repelgrid/tune"
)

var (
	// dirFlag is the directory served at /.
	dirFlag = flag.String("dir", ".", "directory to serve")

	// portFlag is the first port tried.
	portFlag = flag.Int("port", 8080, "first port to try")

	// shapeFlag picks the marker preset for /grid.svg and the initial tuning.
	shapeFlag = flag.String("shape", "plus", "marker shape: plus or dot")

	// configFlag seeds the relay with a JSON config file.
	configFlag = flag.String("config", "", "JSON file overriding the default tuning")
)

func main() {
	flag.Parse()

	shape, err := field.ShapeByName(*shapeFlag)
	if err != nil {
		log.Fatal(err)
	}
	cfg := field.ConfigFor(*shapeFlag)
	if *configFlag != "" {
		raw, err := os.ReadFile(*configFlag)
		if err != nil {
			log.Fatal(err)
		}
		if cfg, err = field.ParseConfig(cfg, raw); err != nil {
			log.Fatal(err)
		}
	}
	hub := tune.NewHub(cfg)

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(*dirFlag)))
	mux.Handle("/tune", hub)
	mux.HandleFunc("/grid.svg", func(w http.ResponseWriter, r *http.Request) {
		cfg := hub.Config()
		f := field.Build(field.Discard, cfg, shape)
		w.Header().Set("Content-Type", "image/svg+xml")
		snapshot.SVG(w, f, shape, cfg, snapshot.SVGOptions{ID: "interactive-svg-bg"})
	})

	port := *portFlag
	for {
		addr := fmt.Sprintf(":%d", port)
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "err opening port", err)
			port++
			continue
		}
		fmt.Printf("Listening at %s\n", addr)
		log.Fatal(http.Serve(listener, logger(mux)))
	}
}

func logger(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Println(r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	}
}
