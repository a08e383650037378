package engine

// LevelView is the level data the presentation layer needs once, at
// level start.
type LevelView struct {
	Index     int   `json:"index"`
	Width     int   `json:"width"`
	Height    int   `json:"height"`
	Districts int   `json:"districts"`
	Threshold int   `json:"threshold"`
	Factions  []int `json:"factions"` // row-major faction per cell
}

// View is the full render state sent after every processed edit: the
// partition for redraw, per-district verdicts for highlighting,
// per-district winners and tallies for the score display, and the
// session status.
type View struct {
	Level     LevelView `json:"level"`
	Partition []int     `json:"partition"` // row-major district id per cell
	Validity  Validity  `json:"validity"`
	Outcome   *Outcome  `json:"outcome,omitempty"`
	Status    string    `json:"status"`
	Moves     int       `json:"moves"`
}

// View projects the session into its render state.
func (s *Session) View() View {
	factions := make([]int, 0, s.Level.Grid.Size())
	for _, f := range s.Level.Grid.Cells() {
		factions = append(factions, int(f))
	}
	partition := make([]int, 0, len(s.Partition.cells))
	for _, id := range s.Partition.cells {
		partition = append(partition, int(id))
	}

	return View{
		Level: LevelView{
			Index:     s.Level.Index,
			Width:     s.Level.Grid.Width,
			Height:    s.Level.Grid.Height,
			Districts: s.Level.Districts,
			Threshold: s.Level.Threshold,
			Factions:  factions,
		},
		Partition: partition,
		Validity:  s.Validity,
		Outcome:   s.Outcome,
		Status:    s.Status.String(),
		Moves:     s.Moves,
	}
}
