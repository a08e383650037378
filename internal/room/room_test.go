package room_test

import (
	"testing"

	"redistrict/internal/room"
)

func TestClaim(t *testing.T) {
	r := room.New("abcd")
	if err := r.Claim("p1", "Alice"); err != nil {
		t.Fatalf("claim: %v", err)
	}
	// Reconnecting with the same id is fine.
	if err := r.Claim("p1", "Alice"); err != nil {
		t.Fatalf("re-claim: %v", err)
	}
	if err := r.Claim("p2", "Bob"); err == nil {
		t.Fatal("second player should be rejected")
	}
	if !r.IsPlayer("p1") || r.IsPlayer("p2") || r.IsPlayer("") {
		t.Fatal("IsPlayer should match only the claiming player")
	}
}

func TestStartAndAdvance(t *testing.T) {
	r := room.New("abcd")
	if r.Session() != nil {
		t.Fatal("no session before the first level")
	}

	s, err := r.StartLevel(1)
	if err != nil {
		t.Fatalf("start level: %v", err)
	}
	if s == nil || r.Session() != s {
		t.Fatal("session should be live after StartLevel")
	}
	if r.LevelIndex() != 1 {
		t.Fatalf("level = %d, want 1", r.LevelIndex())
	}

	if _, err := r.NextLevel(); err != nil {
		t.Fatalf("next level: %v", err)
	}
	if r.LevelIndex() != 2 {
		t.Fatalf("level = %d, want 2", r.LevelIndex())
	}
}

func TestMarkWon(t *testing.T) {
	r := room.New("abcd")
	if _, err := r.StartLevel(1); err != nil {
		t.Fatalf("start level: %v", err)
	}
	r.MarkWon()
	r.MarkWon() // idempotent
	got := r.Completed()
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("completed = %v, want [1]", got)
	}
}
