package engine_test

import (
	"reflect"
	"testing"

	"redistrict/internal/engine"
)

func mustPartition(t *testing.T, w, h, k int, ids []uint8) *engine.Partition {
	t.Helper()
	p, err := engine.NewPartition(w, h, k, ids)
	if err != nil {
		t.Fatalf("partition: %v", err)
	}
	return p
}

func TestCheckConnected(t *testing.T) {
	p := mustPartition(t, 4, 3, 3, []uint8{
		1, 1, 2, 2,
		1, 3, 3, 2,
		1, 3, 3, 2,
	})
	v := engine.Check(p)
	if !v.Valid || !v.Covered {
		t.Fatalf("verdict = %+v, want valid", v)
	}
	for _, st := range v.Districts {
		if !st.Connected {
			t.Errorf("district %d reported disconnected", st.District)
		}
	}
}

func TestCheckDisconnected(t *testing.T) {
	// District 1 sits in both left columns and the far right corner.
	p := mustPartition(t, 4, 3, 2, []uint8{
		1, 2, 2, 1,
		1, 2, 2, 2,
		1, 2, 2, 2,
	})
	v := engine.Check(p)
	if v.Valid {
		t.Fatal("verdict should be invalid")
	}
	if v.Districts[0].Connected {
		t.Error("district 1 should be disconnected")
	}
	if !v.Districts[1].Connected {
		t.Error("district 2 should be connected")
	}
	if v.Districts[0].Cells != 4 {
		t.Errorf("district 1 cells = %d, want 4", v.Districts[0].Cells)
	}
}

func TestCheckEmptyDistrict(t *testing.T) {
	// Three districts declared, district 3 never used.
	p := mustPartition(t, 2, 2, 3, []uint8{
		1, 1,
		2, 2,
	})
	v := engine.Check(p)
	if v.Valid {
		t.Fatal("a district with no cells cannot be a connected region")
	}
	if v.Districts[2].Connected {
		t.Error("district 3 should be reported disconnected")
	}
}

func TestCheckHolesAllowed(t *testing.T) {
	// District 1 is a ring around district 2. Connected is all that
	// counts; the enclosed hole is legal.
	p := mustPartition(t, 3, 3, 2, []uint8{
		1, 1, 1,
		1, 2, 1,
		1, 1, 1,
	})
	v := engine.Check(p)
	if !v.Valid {
		t.Fatalf("verdict = %+v, want valid", v)
	}
}

func TestCheckIdempotent(t *testing.T) {
	p := mustPartition(t, 4, 3, 2, []uint8{
		1, 2, 2, 1,
		1, 2, 2, 2,
		1, 2, 2, 2,
	})
	first := engine.Check(p)
	second := engine.Check(p)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("verdicts differ across runs: %+v vs %+v", first, second)
	}
}
