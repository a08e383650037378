package engine

// Level is the immutable configuration of one puzzle: the faction grid,
// the district count, the number of districts Blue must carry, and the
// starting partition. Target is the winning partition the generator
// built first; it proves the level solvable and is never shown to the
// player.
type Level struct {
	Index     int        `json:"index"`
	Seed      int64      `json:"seed"`
	Grid      *Grid      `json:"grid"`
	Districts int        `json:"districts"`
	Threshold int        `json:"threshold"`
	Initial   *Partition `json:"-"`
	Target    *Partition `json:"-"`
}
