package components

import (
	"math/rand"

	cfg "github.com/automoto/buildyguy/config"
	"github.com/yohamta/donburi"
)

// EventKind identifies something that happened during one update.
type EventKind int

const (
	EventJumped EventKind = iota
	EventLanded
	EventDied
	EventPlatformSpawned
)

func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "jumped"
	case EventLanded:
		return "landed"
	case EventDied:
		return "died"
	case EventPlatformSpawned:
		return "platform-spawned"
	}
	return "unknown"
}

type Event struct {
	Kind   EventKind
	Entity donburi.Entity
}

// RunnerData is the singleton holding game-rule state for one run.
type RunnerData struct {
	Config *cfg.Config
	Rand   *rand.Rand

	Player donburi.Entity

	Time     float64
	NextWall float64
	Distance float64
	Paused   bool
	Dead     bool

	// Events of the current update, cleared before systems run
	Events []Event
}

var Runner = donburi.NewComponentType[RunnerData]()

// Emit records an event for the current update.
func (r *RunnerData) Emit(kind EventKind, e donburi.Entity) {
	r.Events = append(r.Events, Event{Kind: kind, Entity: e})
}
