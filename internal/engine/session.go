package engine

// Session holds the live state of one level: the current partition and
// the validity and outcome derived from it. All edits go through Apply;
// each edit either fully applies or leaves the partition untouched.
type Session struct {
	Level     *Level
	Partition *Partition
	Validity  Validity
	Outcome   *Outcome // nil while the partition is invalid
	Status    Status
	Moves     int
}

// NewSession starts a level from its initial partition.
func NewSession(l *Level) *Session {
	s := &Session{
		Level:     l,
		Partition: l.Initial.Clone(),
		Status:    StatusEditing,
	}
	s.refresh()
	return s
}

// Apply is the single entry point for player edits. It returns the
// events the edit produced, or an error with the partition unchanged.
// Once the session is won no further edits are accepted.
func (s *Session) Apply(a Action) ([]Event, error) {
	if s.Status == StatusWon {
		return nil, ErrLevelComplete
	}

	switch a.Type {
	case ActionAssign:
		return s.applyPaint([]Coord{a.Cell}, a.District)
	case ActionPaint:
		return s.applyPaint(a.Cells, a.District)
	case ActionReset:
		return s.applyReset()
	default:
		return nil, ErrInvalidAction
	}
}

// applyPaint moves a batch of cells into one district. The batch is
// atomic: every cell is checked before any is moved, and validity is
// computed once against the final partition.
func (s *Session) applyPaint(cells []Coord, district int) ([]Event, error) {
	if len(cells) == 0 {
		return nil, ErrInvalidAction
	}
	if district < 1 || district > s.Partition.Districts {
		return nil, ErrInvalidDistrict
	}
	for _, c := range cells {
		if !s.Level.Grid.Contains(c) {
			return nil, ErrOutOfBounds
		}
	}

	for _, c := range cells {
		// Checked above; Assign cannot fail here.
		_ = s.Partition.Assign(c, district)
	}
	s.Moves++

	events := []Event{{
		Type: EventCellsAssigned,
		Data: map[string]interface{}{"cells": cells, "district": district},
	}}
	return s.finishEdit(events), nil
}

func (s *Session) applyReset() ([]Event, error) {
	s.Partition = s.Level.Initial.Clone()
	s.Moves++

	events := []Event{{Type: EventPartitionReset}}
	return s.finishEdit(events), nil
}

// finishEdit recomputes derived state and fires the win transition the
// instant the partition is valid and the objective met.
func (s *Session) finishEdit(events []Event) []Event {
	s.refresh()
	if s.Status == StatusEditing && s.Outcome != nil && s.Outcome.ObjectiveMet {
		s.Status = StatusWon
		events = append(events, Event{
			Type: EventLevelWon,
			Data: map[string]interface{}{"level": s.Level.Index, "moves": s.Moves},
		})
	}
	return events
}

// refresh recomputes validity and, when the partition is valid, the
// outcome. An invalid partition has no outcome at all.
func (s *Session) refresh() {
	s.Validity = Check(s.Partition)
	if s.Validity.Valid {
		out := Evaluate(s.Level.Grid, s.Partition, s.Level.Threshold)
		s.Outcome = &out
	} else {
		s.Outcome = nil
	}
}
