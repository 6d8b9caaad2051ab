package domain

// LoopState is a state of the watch loop.
type LoopState uint8

const (
	// StateInitialBuild builds and runs once before anything is watched.
	StateInitialBuild LoopState = iota
	// StateWatching polls the source tree and the stop signal.
	StateWatching
	// StateRebuilding rebuilds after a detected change.
	StateRebuilding
	// StateStopped is terminal.
	StateStopped
)

func (s LoopState) String() string {
	switch s {
	case StateInitialBuild:
		return "INITIAL_BUILD"
	case StateWatching:
		return "WATCHING"
	case StateRebuilding:
		return "REBUILDING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}
