package world

type Intent int

const (
	MoveLeft Intent = iota
	MoveRight
)

// Input is one frame of player input. Intents are the keys currently held;
// JumpPressed and JumpReleased are the edges seen this frame.
type Input struct {
	Intents      map[Intent]struct{}
	JumpPressed  bool
	JumpReleased bool
}

func NewInput(intents ...Intent) Input {
	in := Input{Intents: make(map[Intent]struct{}, len(intents))}
	for _, intent := range intents {
		in.Intents[intent] = struct{}{}
	}
	return in
}

func (in Input) Has(intent Intent) bool {
	_, ok := in.Intents[intent]
	return ok
}

// direction is -1, 0 or 1. Holding both directions cancels out.
func (in Input) direction() int {
	left, right := in.Has(MoveLeft), in.Has(MoveRight)
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	}
	return 0
}

// Step advances the world by one frame: input, integration, collisions, goal
// check, camera.
func (w *World) Step(in Input) []Event {
	w.Tick++
	p := w.Player
	var events []Event
	emit := func(kind EventKind) {
		events = append(events, Event{Kind: kind, Tick: w.Tick, Coords: p.Coords})
	}

	if dir := in.direction(); dir != 0 {
		p.Move(dir)
	} else {
		p.Stop()
	}

	if in.JumpPressed && p.PressJump(&w.Physics) {
		emit(EventJump)
	}
	if in.JumpReleased {
		p.ReleaseJump()
	}

	wasGrounded := p.OnGround
	if p.Update(&w.Physics) {
		emit(EventFell)
	}

	contact := p.ResolveCollisions(&w.Physics, w.Level.Platforms())
	switch {
	case contact.BufferedJump:
		emit(EventBufferedJump)
	case contact.Landed && !wasGrounded:
		emit(EventLand)
	}
	if contact.HitHead {
		emit(EventBump)
	}

	if w.sensor.Touches(p.Bounds()) {
		emit(EventGoal)
		p.Reset()
	}

	w.Camera.Follow(p.Coords.X)
	return events
}
