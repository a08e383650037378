package protocol

// Message types: Server → Client
const (
	MsgRoomUpdate = "room_update"
	MsgGameState  = "game_state"
	MsgEvent      = "event"
	MsgError      = "error"
)

// Message types: Client → Server
const (
	MsgJoin     = "join"
	MsgNewLevel = "new_level"
	// Edit actions use the same names as engine ActionType
	MsgAssign = "assign"
	MsgPaint  = "paint"
	MsgReset  = "reset"
)

// JoinMsg is sent by a client to claim the room as its player.
// Spectators connect with type=spectator on the socket and never join.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// NewLevelMsg requests a level switch. Index 0 means the next level
// after the current one.
type NewLevelMsg struct {
	Index int `json:"index,omitempty"`
}

// RoomUpdate is sent to all clients when room state changes.
type RoomUpdate struct {
	RoomID     string `json:"room_id"`
	PlayerName string `json:"player_name,omitempty"`
	Level      int    `json:"level"`
	Completed  []int  `json:"completed,omitempty"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
