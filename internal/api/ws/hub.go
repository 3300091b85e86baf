package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"gomoku/internal/board"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "ws")

type Message struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

// client serializes writes, which gorilla connections require.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) send(m Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(m)
}

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	view, err := h.roomManager.Get(roomCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("upgrade failed")
		return
	}
	cl := &client{conn: conn}

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
	h.mu.Unlock()
	log.WithField("room", roomCode).Debug("client subscribed")

	defer func() {
		h.remove(roomCode, cl)
		_ = conn.Close()
	}()

	if err := cl.send(Message{Action: "subscribed", Data: view}); err != nil {
		return
	}

	for {
		var msg struct {
			Action string `json:"action"`
			Data   struct {
				Row  int        `json:"row"`
				Col  int        `json:"col"`
				Side board.Side `json:"side"`
			} `json:"data"`
		}
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("read failed")
			}
			return
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			_ = cl.send(Message{Action: "error", Data: gin.H{"error": "invalid message: " + err.Error()}})
			continue
		}

		switch msg.Action {
		case "move":
			cell := board.Cell{Row: msg.Data.Row, Col: msg.Data.Col}
			// the manager broadcasts successful moves itself
			if _, err := h.roomManager.Play(roomCode, cell, msg.Data.Side); err != nil {
				_ = cl.send(Message{Action: "error", Data: gin.H{"error": err.Error()}})
			}
		default:
			_ = cl.send(Message{Action: "error", Data: gin.H{"error": "unknown action: " + msg.Action}})
		}
	}
}

func (h *Hub) remove(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[roomCode], cl)
	if len(h.rooms[roomCode]) == 0 {
		delete(h.rooms, roomCode)
	}
}

// Broadcast sends action to every client subscribed to roomCode. Clients
// that fail to receive are dropped.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	msg := Message{Action: action, Data: data}
	for _, cl := range clients {
		if err := cl.send(msg); err != nil {
			log.WithError(err).WithField("room", roomCode).Warn("send failed")
			h.remove(roomCode, cl)
			_ = cl.conn.Close()
		}
	}
}

// Subscribers returns how many clients listen on roomCode.
func (h *Hub) Subscribers(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}
