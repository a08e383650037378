package server

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	qr "redistrict/internal/qrcode"
	"redistrict/internal/room"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	Rooms      *room.Manager
	StartLevel int

	mu     sync.Mutex
	hubs   map[string]*Hub
	logger *slog.Logger
}

func NewHandlers(startLevel int, logger *slog.Logger) *Handlers {
	return &Handlers{
		Rooms:      room.NewManager(),
		StartLevel: startLevel,
		hubs:       make(map[string]*Hub),
		logger:     logger,
	}
}

// HandleCreateRoom creates a new room and redirects into it.
func (h *Handlers) HandleCreateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := h.Rooms.Create()
	hub := NewHub(roomID, h.Rooms.Get(roomID), h.StartLevel, h.logger)

	h.mu.Lock()
	h.hubs[roomID] = hub
	h.mu.Unlock()
	go hub.Run()

	http.Redirect(w, r, fmt.Sprintf("/?room=%s", roomID), http.StatusSeeOther)
}

// HandleQR generates a QR code PNG for watching the room from another
// device.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	if roomID == "" {
		http.Error(w, "missing room parameter", http.StatusBadRequest)
		return
	}
	url := fmt.Sprintf("http://%s/?room=%s&spectate=1", r.Host, roomID)
	png, err := qr.Generate(url)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	playerID := r.URL.Query().Get("player")
	clientType := r.URL.Query().Get("type") // "spectator" or "player"

	if roomID == "" {
		http.Error(w, "missing room parameter", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	hub, ok := h.hubs[roomID]
	h.mu.Unlock()
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade", "err", err)
		return
	}

	ct := ClientPlayer
	if clientType == "spectator" {
		ct = ClientSpectator
	}

	client := NewClient(hub, conn, playerID, ct)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(GeneratePlayerID()))
}

// GeneratePlayerID creates a unique player ID.
func GeneratePlayerID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
