package world

type EventKind int

const (
	EventJump EventKind = iota
	EventBufferedJump
	EventLand
	EventBump
	EventFell
	EventGoal
)

func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventBufferedJump:
		return "buffered-jump"
	case EventLand:
		return "land"
	case EventBump:
		return "bump"
	case EventFell:
		return "fell"
	case EventGoal:
		return "goal"
	}
	return "unknown"
}

// Event is something noteworthy that happened during a step. Events never
// feed back into the simulation.
type Event struct {
	Kind   EventKind
	Tick   int64
	Coords Vector
}
