package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes order updates (created / closed) to the tracking page of
// whoever is watching that user's orders, so it can refresh without polling.
type OrderHub struct {
	clients    map[string]map[*websocket.Conn]bool // externalID -> set of clients
	broadcast  chan orderUpdate
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn       *websocket.Conn
	ExternalID string
}

type orderUpdate struct {
	ExternalID string
	Order      *entity.Order
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan orderUpdate),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.ExternalID] == nil {
				h.clients[sub.ExternalID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.ExternalID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.ExternalID][sub.Conn]; ok {
				delete(h.clients[sub.ExternalID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.ExternalID] {
				if err := conn.WriteJSON(msg.Order); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.ExternalID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyOrderUpdate satisfies services.OrderNotifier.
func (h *OrderHub) NotifyOrderUpdate(externalID string, order *entity.Order) {
	h.broadcast <- orderUpdate{ExternalID: externalID, Order: order}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:externalId
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	externalID := c.Param("externalId")
	if externalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, ExternalID: externalID}
	h.register <- sub

	// drain until the client goes away; we only ever push
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
