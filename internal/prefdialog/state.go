package prefdialog

// State is the lifecycle position of a dialog.
type State int

const (
	StateCreated State = iota
	StateBound
	StateAwaitingChoice
	StateClosedPositive
	StateClosedNegative
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateBound:
		return "bound"
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateClosedPositive:
		return "closed_positive"
	case StateClosedNegative:
		return "closed_negative"
	}
	return "unknown"
}

// Closed reports whether s is terminal.
func (s State) Closed() bool {
	return s == StateClosedPositive || s == StateClosedNegative
}
