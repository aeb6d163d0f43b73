package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/websocket/v2"

	"absensi-siswa/internal/attendance"
)

// Conn - bagian *websocket.Conn yang dipakai hub
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub - kirim event absensi ke semua layar yang tersambung
type Hub struct {
	register   chan Conn
	unregister chan Conn
	broadcast  chan []byte
	done       chan struct{}
	clients    map[Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan Conn),
		unregister: make(chan Conn),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		clients:    make(map[Conn]bool),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				c.Close()
			}
			return
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				c.Close()
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					log.Printf("[realtime] kirim gagal, client diputus: %v", err)
					delete(h.clients, c)
					c.Close()
				}
			}
		}
	}
}

func (h *Hub) Register(c Conn) {
	select {
	case h.register <- c:
	case <-h.done:
		c.Close()
	}
}

func (h *Hub) Unregister(c Conn) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish - event dibuang kalau antrian broadcast penuh
func (h *Hub) Publish(ctx context.Context, ev attendance.Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[realtime] encode event: %v", err)
		return
	}

	select {
	case h.broadcast <- msg:
	case <-h.done:
	default:
		log.Printf("[realtime] antrian penuh, event %s dibuang", ev.Type)
	}
}
