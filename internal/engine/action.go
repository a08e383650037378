package engine

// ActionType identifies player actions sent to Session.Apply.
type ActionType string

const (
	ActionAssign ActionType = "assign" // move one cell into a district
	ActionPaint  ActionType = "paint"  // move a dragged strip of cells atomically
	ActionReset  ActionType = "reset"  // restore the level's starting partition
)

// Action is a player's edit input.
type Action struct {
	Type ActionType `json:"type"`
	// Params depend on Type:
	// assign: Cell + District
	// paint: Cells + District
	// reset: none
	Cell     Coord   `json:"cell,omitempty"`
	Cells    []Coord `json:"cells,omitempty"`
	District int     `json:"district,omitempty"`
}

// EventType identifies events emitted by the session.
type EventType string

const (
	EventCellsAssigned  EventType = "cells_assigned"
	EventPartitionReset EventType = "partition_reset"
	EventLevelWon       EventType = "level_won"
)

// Event is emitted by the session after state changes.
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data,omitempty"`
}
