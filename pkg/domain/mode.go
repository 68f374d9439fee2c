package domain

import "fmt"

// Mode is the state of a session's two-state machine.
type Mode int

const (
	// ModeLoad waits for the name of a story document.
	ModeLoad Mode = iota
	// ModePlay treats input as choice labels of the current node.
	ModePlay
)

func (m Mode) String() string {
	switch m {
	case ModeLoad:
		return "load"
	case ModePlay:
		return "play"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}
