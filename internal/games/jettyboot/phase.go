package jettyboot

// Phase is the active rule set for motion and transitions.
type Phase int

const (
	PhaseInit     Phase = iota // Entry slide toward the lane
	PhaseNormal                // Gravity, climbing and scoring
	PhaseFlyaway               // Level cleared, boot exits over the top
	PhaseRespawn               // Life lost, world rewinds to the start
	PhaseGameOver              // Terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseNormal:
		return "normal"
	case PhaseFlyaway:
		return "flyaway"
	case PhaseRespawn:
		return "respawn"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ChecksHazards reports whether collisions and boundaries matter in this phase.
func (p Phase) ChecksHazards() bool {
	return p == PhaseNormal || p == PhaseFlyaway
}

// Scrolls reports whether the world advances in this phase.
func (p Phase) Scrolls() bool {
	return p == PhaseNormal || p == PhaseFlyaway
}

// Event is a set of side effects produced by one tick.
type Event uint8

const (
	EventScored       Event = 1 << iota // Progress passed another pillar
	EventLifeLost                       // Boot crashed during play
	EventGameOver                       // Last life lost
	EventFlyaway                        // All pillars passed, flyaway started
	EventLevelCleared                   // Boot left the screen, next level begins
)

// Has reports whether all bits of x are set.
func (e Event) Has(x Event) bool {
	return e&x == x
}

// Observation is everything the phase machine looks at for one tick.
type Observation struct {
	Hit           bool    // Collision or boundary breach (only meaningful when ChecksHazards)
	Lives         int     // Lives before this tick
	TicksInPhase  int     // Completed ticks since the phase was entered
	Progress      float64 // Level progress, see Tracker.Progress
	ObstacleCount int     // Pillars in the current level
	OffsetUnwound bool    // Scroll offset is back at zero
	ActorHome     bool    // Boot is back at its spawn height
}

// Rules parameterizes the phase machine.
type Rules struct {
	EntryTicks    int
	FlyawayMargin float64
}

// Transition returns the phase for the next tick and the events that the
// change implies. It is a pure function of its inputs.
func Transition(p Phase, obs Observation, r Rules) (Phase, Event) {
	switch p {
	case PhaseInit:
		if obs.TicksInPhase >= r.EntryTicks {
			return PhaseNormal, 0
		}

	case PhaseNormal:
		if obs.Hit {
			if obs.Lives-1 <= 0 {
				return PhaseGameOver, EventLifeLost | EventGameOver
			}
			return PhaseRespawn, EventLifeLost
		}
		if obs.Progress >= float64(obs.ObstacleCount)+r.FlyawayMargin {
			return PhaseFlyaway, EventFlyaway
		}

	case PhaseFlyaway:
		// Leaving the band during flyaway is the exit, never a crash.
		if obs.Hit {
			return PhaseInit, EventLevelCleared
		}

	case PhaseRespawn:
		if obs.OffsetUnwound && obs.ActorHome {
			return PhaseInit, 0
		}

	case PhaseGameOver:
	}
	return p, 0
}
