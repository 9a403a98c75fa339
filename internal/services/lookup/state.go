package lookup

// State is a step of the lookup state machine.
type State int

const (
	Idle State = iota
	Resolving
	Fetching
	Rendered
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Fetching:
		return "fetching"
	case Rendered:
		return "rendered"
	case Failed:
		return "failed"
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == Rendered || s == Failed
}
