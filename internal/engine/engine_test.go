package engine_test

import (
	"errors"
	"math/rand"
	"testing"

	"redistrict/internal/engine"
)

// testLevel builds a 4x4 board with two districts. Split into top and
// bottom halves each district holds 5 Blue / 3 Red cells, so Blue can
// carry both. The starting partition is the left/right split, which
// Blue does not win.
func testLevel(t *testing.T) *engine.Level {
	t.Helper()

	b, r := engine.FactionBlue, engine.FactionRed
	grid, err := engine.NewGrid(4, 4, []engine.Faction{
		b, b, b, b,
		b, r, r, r,
		b, b, b, b,
		b, r, r, r,
	})
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	initial, err := engine.NewPartition(4, 4, 2, []uint8{
		1, 1, 2, 2,
		1, 1, 2, 2,
		1, 1, 2, 2,
		1, 1, 2, 2,
	})
	if err != nil {
		t.Fatalf("initial partition: %v", err)
	}

	target, err := engine.NewPartition(4, 4, 2, []uint8{
		1, 1, 1, 1,
		1, 1, 1, 1,
		2, 2, 2, 2,
		2, 2, 2, 2,
	})
	if err != nil {
		t.Fatalf("target partition: %v", err)
	}

	return &engine.Level{
		Index:     1,
		Grid:      grid,
		Districts: 2,
		Threshold: 2,
		Initial:   initial,
		Target:    target,
	}
}

func TestNewSession(t *testing.T) {
	s := engine.NewSession(testLevel(t))
	if s.Status != engine.StatusEditing {
		t.Fatalf("status = %s, want Editing", s.Status)
	}
	if !s.Validity.Valid {
		t.Fatal("starting partition should be valid")
	}
	if s.Outcome == nil {
		t.Fatal("valid partition should have an outcome")
	}
	if s.Outcome.ObjectiveMet {
		t.Fatal("starting partition must not already win")
	}
}

func TestAssignInvalidDistrict(t *testing.T) {
	s := engine.NewSession(testLevel(t))
	before := s.Partition.Ids()

	_, err := s.Apply(engine.Action{
		Type:     engine.ActionAssign,
		Cell:     engine.Coord{Row: 0, Col: 0},
		District: 0,
	})
	if !errors.Is(err, engine.ErrInvalidDistrict) {
		t.Fatalf("err = %v, want ErrInvalidDistrict", err)
	}
	after := s.Partition.Ids()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("rejected edit must leave the partition unchanged")
		}
	}
}

func TestAssignOutOfBounds(t *testing.T) {
	s := engine.NewSession(testLevel(t))
	_, err := s.Apply(engine.Action{
		Type:     engine.ActionAssign,
		Cell:     engine.Coord{Row: 4, Col: 0},
		District: 1,
	})
	if !errors.Is(err, engine.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestPaintIsAtomic(t *testing.T) {
	s := engine.NewSession(testLevel(t))
	before := s.Partition.Ids()

	_, err := s.Apply(engine.Action{
		Type: engine.ActionPaint,
		Cells: []engine.Coord{
			{Row: 0, Col: 2},
			{Row: 9, Col: 9}, // off the board: the whole batch must fail
		},
		District: 1,
	})
	if !errors.Is(err, engine.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	after := s.Partition.Ids()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("failed batch must leave the partition unchanged")
		}
	}
}

func TestDisconnectionIsSurfacedNotPrevented(t *testing.T) {
	s := engine.NewSession(testLevel(t))

	// Moving the top-left corner into the right-hand district leaves
	// that district in two pieces.
	events, err := s.Apply(engine.Action{
		Type:     engine.ActionAssign,
		Cell:     engine.Coord{Row: 0, Col: 0},
		District: 2,
	})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected events from a successful edit")
	}
	if s.Validity.Valid {
		t.Fatal("partition should be invalid")
	}
	if s.Validity.Districts[1].Connected {
		t.Fatal("district 2 should be reported disconnected")
	}
	if !s.Validity.Districts[0].Connected {
		t.Fatal("district 1 should still be connected")
	}
	if s.Outcome != nil {
		t.Fatal("invalid partition must not be evaluated")
	}
	if s.Status != engine.StatusEditing {
		t.Fatalf("status = %s, want Editing", s.Status)
	}
}

func TestWinTransitionIsTerminal(t *testing.T) {
	s := engine.NewSession(testLevel(t))

	// Repaint toward the top/bottom split in two strokes.
	topRight := []engine.Coord{
		{Row: 0, Col: 2}, {Row: 0, Col: 3},
		{Row: 1, Col: 2}, {Row: 1, Col: 3},
	}
	events, err := s.Apply(engine.Action{Type: engine.ActionPaint, Cells: topRight, District: 1})
	if err != nil {
		t.Fatalf("first stroke: %v", err)
	}
	if s.Status != engine.StatusEditing {
		t.Fatalf("status after first stroke = %s, want Editing", s.Status)
	}

	bottomLeft := []engine.Coord{
		{Row: 2, Col: 0}, {Row: 2, Col: 1},
		{Row: 3, Col: 0}, {Row: 3, Col: 1},
	}
	events, err = s.Apply(engine.Action{Type: engine.ActionPaint, Cells: bottomLeft, District: 2})
	if err != nil {
		t.Fatalf("second stroke: %v", err)
	}
	if s.Status != engine.StatusWon {
		t.Fatalf("status = %s, want Won", s.Status)
	}
	won := false
	for _, ev := range events {
		if ev.Type == engine.EventLevelWon {
			won = true
		}
	}
	if !won {
		t.Fatal("expected a level_won event")
	}

	_, err = s.Apply(engine.Action{
		Type:     engine.ActionAssign,
		Cell:     engine.Coord{Row: 0, Col: 0},
		District: 2,
	})
	if !errors.Is(err, engine.ErrLevelComplete) {
		t.Fatalf("edit after win: err = %v, want ErrLevelComplete", err)
	}
}

func TestReset(t *testing.T) {
	level := testLevel(t)
	s := engine.NewSession(level)

	if _, err := s.Apply(engine.Action{
		Type:     engine.ActionAssign,
		Cell:     engine.Coord{Row: 0, Col: 0},
		District: 2,
	}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := s.Apply(engine.Action{Type: engine.ActionReset}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !s.Partition.Equal(level.Initial) {
		t.Fatal("reset should restore the starting partition")
	}
	if !s.Validity.Valid {
		t.Fatal("restored partition should be valid")
	}
}

func TestEveryCellStaysAssigned(t *testing.T) {
	s := engine.NewSession(testLevel(t))
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200 && s.Status == engine.StatusEditing; i++ {
		_, err := s.Apply(engine.Action{
			Type:     engine.ActionAssign,
			Cell:     engine.Coord{Row: rng.Intn(4), Col: rng.Intn(4)},
			District: rng.Intn(2) + 1,
		})
		if err != nil {
			t.Fatalf("assign %d: %v", i, err)
		}

		ids := s.Partition.Ids()
		if len(ids) != 16 {
			t.Fatalf("partition has %d cells, want 16", len(ids))
		}
		for pos, id := range ids {
			if id < 1 || id > 2 {
				t.Fatalf("cell %d carries district %d after assign %d", pos, id, i)
			}
		}
	}
}

func TestView(t *testing.T) {
	s := engine.NewSession(testLevel(t))
	v := s.View()

	if v.Level.Width != 4 || v.Level.Height != 4 || v.Level.Districts != 2 {
		t.Fatalf("level view = %+v", v.Level)
	}
	if len(v.Partition) != 16 || len(v.Level.Factions) != 16 {
		t.Fatal("view should carry the full board")
	}
	if v.Status != "Editing" {
		t.Fatalf("status = %q, want Editing", v.Status)
	}
	if v.Outcome == nil {
		t.Fatal("valid partition should expose an outcome")
	}
}
