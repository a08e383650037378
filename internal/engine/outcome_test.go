package engine_test

import (
	"testing"

	"redistrict/internal/engine"
)

func TestEvaluateScenario(t *testing.T) {
	// The core gerrymander: 4x4 board split into halves of 5 Blue /
	// 3 Red each, objective "carry both districts".
	level := testLevel(t)

	out := engine.Evaluate(level.Grid, level.Target, 2)
	for _, d := range out.Districts {
		if d.Blue != 5 || d.Red != 3 {
			t.Errorf("district %d tally = %d/%d, want 5/3", d.District, d.Blue, d.Red)
		}
		if d.Winner != engine.FactionBlue {
			t.Errorf("district %d winner = %s, want Blue", d.District, d.Winner)
		}
	}
	if out.BlueDistricts != 2 {
		t.Errorf("blue districts = %d, want 2", out.BlueDistricts)
	}
	if !out.ObjectiveMet {
		t.Error("objective should be met")
	}
}

func TestTieGoesToRed(t *testing.T) {
	b, r := engine.FactionBlue, engine.FactionRed
	grid, err := engine.NewGrid(2, 2, []engine.Faction{
		b, b,
		r, r,
	})
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	p := mustPartition(t, 2, 2, 1, []uint8{1, 1, 1, 1})

	// Same verdict on every run: a tied district is never Blue's.
	for i := 0; i < 10; i++ {
		out := engine.Evaluate(grid, p, 1)
		d := out.Districts[0]
		if d.Blue != 2 || d.Red != 2 {
			t.Fatalf("tally = %d/%d, want 2/2", d.Blue, d.Red)
		}
		if d.Winner != engine.FactionRed {
			t.Fatalf("run %d: tied district winner = %s, want Red", i, d.Winner)
		}
		if out.ObjectiveMet {
			t.Fatalf("run %d: Blue cannot meet the objective on a tie", i)
		}
	}
}

func TestEvaluateThreshold(t *testing.T) {
	level := testLevel(t)

	if out := engine.Evaluate(level.Grid, level.Initial, 2); out.ObjectiveMet {
		t.Error("left/right split should not meet the objective")
	}
	if out := engine.Evaluate(level.Grid, level.Initial, 1); !out.ObjectiveMet {
		t.Error("threshold 1 should be met by the left/right split")
	}
}
