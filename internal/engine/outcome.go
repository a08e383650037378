package engine

// DistrictResult is the tally and winner for one district.
type DistrictResult struct {
	District int     `json:"district"`
	Blue     int     `json:"blue"`
	Red      int     `json:"red"`
	Winner   Faction `json:"winner"`
}

// Outcome is the election result for a valid partition.
type Outcome struct {
	Districts     []DistrictResult `json:"districts"` // index 0 is district 1
	BlueDistricts int              `json:"blue_districts"`
	RedDistricts  int              `json:"red_districts"`
	ObjectiveMet  bool             `json:"objective_met"`
}

// Evaluate tallies each district and checks the level objective: Blue
// must win at least threshold districts. A district goes to the faction
// with strictly more cells; a tied district always goes to Red. Callers
// run Evaluate only on partitions that Check reports valid.
func Evaluate(g *Grid, p *Partition, threshold int) Outcome {
	out := Outcome{Districts: make([]DistrictResult, p.Districts)}
	for i := range out.Districts {
		out.Districts[i].District = i + 1
	}

	for pos, id := range p.cells {
		d := int(id) - 1
		if d < 0 || d >= p.Districts {
			continue
		}
		if g.cells[pos] == FactionBlue {
			out.Districts[d].Blue++
		} else {
			out.Districts[d].Red++
		}
	}

	for i := range out.Districts {
		r := &out.Districts[i]
		if r.Blue > r.Red {
			r.Winner = FactionBlue
			out.BlueDistricts++
		} else {
			r.Winner = FactionRed
			out.RedDistricts++
		}
	}

	out.ObjectiveMet = out.BlueDistricts >= threshold
	return out
}
