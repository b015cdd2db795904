// Package tune relays live tuning between every page showing the grid. A
// slider moved on one page reaches the others through a websocket hub.
package tune

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/stdiopt/repelgrid/field"
)

// Hub is an http.Handler upgrading requests to websockets. It keeps the last
// valid tuning and broadcasts changes to every other connection.
type Hub struct {
	Upgrader websocket.Upgrader

	mu      sync.Mutex
	current field.Config
	clients sync.Map // *client -> struct{}
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// NewHub returns a hub starting from cfg.
func NewHub(cfg field.Config) *Hub {
	return &Hub{
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		current: cfg,
	}
}

// Config returns the tuning in effect.
func (h *Hub) Config() field.Config {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Clients returns the number of open connections.
func (h *Hub) Clients() int {
	n := 0
	h.clients.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// Set validates cfg, stores it and pushes it to every page.
func (h *Hub) Set(cfg field.Config) error {
	if err := h.store(cfg); err != nil {
		return err
	}
	buf, err := Encode(ConfigOP{Config: cfg})
	if err != nil {
		return err
	}
	h.broadcast(nil, buf)
	return nil
}

func (h *Hub) store(cfg field.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	h.mu.Lock()
	h.current = cfg
	h.mu.Unlock()
	return nil
}

func (h *Hub) broadcast(from *client, msg []byte) {
	h.clients.Range(func(key, _ interface{}) bool {
		cl := key.(*client)
		if cl == from {
			return true
		}
		if err := cl.send(msg); err != nil {
			log.Println("tune: sending to client:", err)
		}
		return true
	})
}

// join sends the hello and then registers c for broadcasts, so the hello is
// always the first message c reads. Holding mu keeps a concurrent update from
// landing between the hello and the registration unseen.
func (h *Hub) join(c *client) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	buf, err := Encode(HelloOP{Config: h.current, Clients: h.Clients() + 1})
	if err != nil {
		return err
	}
	if err := c.send(buf); err != nil {
		return err
	}
	h.clients.Store(c, struct{}{})
	return nil
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Println("tune: connection from", r.RemoteAddr)
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("tune: upgrade:", err)
		return
	}
	defer conn.Close()
	c := &client{conn: conn}
	if err := h.join(c); err != nil {
		log.Println("tune: hello:", err)
		return
	}
	defer h.clients.Delete(c)

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			log.Println("tune: bye", r.RemoteAddr)
			return
		}
		if mt != websocket.TextMessage {
			continue
		}
		op, err := Decode(message)
		if err != nil {
			log.Println("tune: bad message:", err)
			continue
		}
		cop, ok := op.(ConfigOP)
		if !ok {
			continue
		}
		if err := h.store(cop.Config); err != nil {
			log.Println("tune: rejected config:", err)
			continue
		}
		h.broadcast(c, message)
	}
}
