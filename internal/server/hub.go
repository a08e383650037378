package server

import (
	"encoding/json"
	"log/slog"
	"sync"

	"redistrict/internal/engine"
	"redistrict/internal/protocol"
	"redistrict/internal/room"
)

// Hub manages WebSocket connections and the live session for one room.
// All edits funnel through the hub goroutine, so the engine sees one
// action at a time.
type Hub struct {
	mu         sync.Mutex
	roomID     string
	room       *room.Room
	startLevel int
	logger     *slog.Logger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
}

func NewHub(roomID string, rm *room.Room, startLevel int, logger *slog.Logger) *Hub {
	return &Hub{
		roomID:     roomID,
		room:       rm,
		startLevel: startLevel,
		logger:     logger.With("room", roomID),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendRoomUpdate()
			if h.room.Session() != nil {
				h.sendStateToClient(client)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			return
		}
	}
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgNewLevel:
		h.handleNewLevel(msg)
	default:
		h.handleEdit(msg)
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &join); err != nil {
		h.sendError(msg.Client, "invalid join message")
		return
	}
	msg.Client.PlayerID = join.PlayerID
	if err := h.room.Claim(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	if h.room.Session() == nil {
		if _, err := h.room.StartLevel(h.startLevel); err != nil {
			h.logger.Error("start level", "err", err)
			h.sendError(msg.Client, "could not start level")
			return
		}
	}

	h.sendRoomUpdate()
	h.broadcastState()
}

func (h *Hub) handleNewLevel(msg IncomingMessage) {
	if !h.room.IsPlayer(msg.Client.PlayerID) {
		h.sendError(msg.Client, "spectators cannot change levels")
		return
	}
	var req protocol.NewLevelMsg
	if len(msg.Envelope.Payload) > 0 {
		if err := json.Unmarshal(msg.Envelope.Payload, &req); err != nil {
			h.sendError(msg.Client, "invalid new_level message")
			return
		}
	}

	var err error
	if req.Index > 0 {
		_, err = h.room.StartLevel(req.Index)
	} else {
		_, err = h.room.NextLevel()
	}
	if err != nil {
		h.logger.Error("start level", "err", err)
		h.sendError(msg.Client, "could not start level")
		return
	}

	h.sendRoomUpdate()
	h.broadcastState()
}

func (h *Hub) handleEdit(msg IncomingMessage) {
	session := h.room.Session()
	if session == nil {
		h.sendError(msg.Client, "no level in progress")
		return
	}
	if !h.room.IsPlayer(msg.Client.PlayerID) {
		h.sendError(msg.Client, "spectators cannot edit")
		return
	}

	action, err := h.parseAction(msg.Envelope)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	events, err := session.Apply(action)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	for _, ev := range events {
		if ev.Type == engine.EventLevelWon {
			h.room.MarkWon()
			h.logger.Info("level won", "level", h.room.LevelIndex(), "moves", session.Moves)
			h.sendRoomUpdate()
		}
	}

	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) parseAction(env protocol.Envelope) (engine.Action, error) {
	var action engine.Action
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, &action); err != nil {
			return engine.Action{}, err
		}
	}
	// The message type carries the action type; payload only holds params.
	action.Type = engine.ActionType(env.Type)
	return action, nil
}

func (h *Hub) broadcastEvents(events []engine.Event) {
	for _, ev := range events {
		env := protocol.MustEnvelope(protocol.MsgEvent, ev)
		h.broadcastAll(env)
	}
}

func (h *Hub) broadcastState() {
	session := h.room.Session()
	if session == nil {
		return
	}
	env := protocol.MustEnvelope(protocol.MsgGameState, session.View())
	h.broadcastAll(env)
}

func (h *Hub) sendStateToClient(client *Client) {
	session := h.room.Session()
	if session == nil {
		return
	}
	env := protocol.MustEnvelope(protocol.MsgGameState, session.View())
	client.SendEnvelope(env)
}

func (h *Hub) sendRoomUpdate() {
	_, playerName := h.room.Player()
	env := protocol.MustEnvelope(protocol.MsgRoomUpdate, protocol.RoomUpdate{
		RoomID:     h.roomID,
		PlayerName: playerName,
		Level:      h.room.LevelIndex(),
		Completed:  h.room.Completed(),
	})
	h.broadcastAll(env)
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Error("broadcast marshal", "err", err)
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("client buffer full", "player", client.PlayerID)
		}
	}
}

func (h *Hub) sendError(client *Client, message string) {
	env := protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message})
	client.SendEnvelope(env)
}
