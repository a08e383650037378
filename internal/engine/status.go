package engine

// Status represents the session state machine.
type Status int

const (
	StatusEditing Status = iota // player reshaping districts
	StatusWon                   // objective met on a valid partition; terminal
)

var statusNames = map[Status]string{
	StatusEditing: "Editing",
	StatusWon:     "Won",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "Unknown"
}
