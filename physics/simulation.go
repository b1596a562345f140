package physics

import (
	"log"

	"github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Simulation advances every body in a world by fixed steps. It owns the
// per-step contact and movement buffers; both are rebuilt on every Step and
// must not be retained by callers across steps.
type Simulation struct {
	world donburi.World
	cfg   config.PhysicsConfig
	broad *broadPhase

	entries   []*donburi.Entry
	contacts  []Contact
	movements []Movement
	fallbacks int
}

// NewSimulation creates a simulation over w tuned by cfg.
func NewSimulation(w donburi.World, cfg config.PhysicsConfig) *Simulation {
	s := &Simulation{
		world: w,
		cfg:   cfg,
	}
	if cfg.BroadPhase.Enabled {
		s.broad = newBroadPhase(cfg.BroadPhase)
	}
	return s
}

// World returns the entity table the simulation steps.
func (s *Simulation) World() donburi.World {
	return s.world
}

// Config returns the tunables the simulation was created with.
func (s *Simulation) Config() config.PhysicsConfig {
	return s.cfg
}

// Step advances the world by dt seconds: gravity, detection, resolution,
// application and vertical velocity correction, in that order.
func (s *Simulation) Step(dt float64) {
	s.entries = collectBodies(s.world, s.entries[:0])
	s.contacts = s.contacts[:0]
	s.movements = s.movements[:0]

	s.applyGravity(dt)

	if s.broad != nil {
		s.contacts, s.fallbacks = s.broad.detect(s.entries, dt, s.contacts)
	} else {
		s.contacts, s.fallbacks = detect(s.entries, dt, s.contacts)
	}

	s.movements = computeMovement(s.entries, s.contacts, dt, s.movements)
	ApplyMovement(s.world, s.movements)
	s.ceaseFalling()

	if s.cfg.DebugCollisions && s.fallbacks > 0 {
		s.logFallbacks()
	}
}

func (s *Simulation) applyGravity(dt float64) {
	for _, e := range s.entries {
		body := Body.Get(e)
		if body.ObeysGravity {
			body.VY += s.cfg.Gravity * dt
		}
	}
}

// ceaseFalling zeroes vertical velocity of gravity bodies that landed or hit
// their head this step. Positions are already clamped at this point.
func (s *Simulation) ceaseFalling() {
	for _, c := range s.contacts {
		if !c.Side.Vertical() {
			continue
		}
		body := Body.Get(s.world.Entry(c.Subject))
		if body.ObeysGravity {
			body.VY = 0
		}
	}
}

func (s *Simulation) logFallbacks() {
	for _, c := range s.contacts {
		if !c.Exact {
			log.Printf("Debug: unclassified contact %v -> %v, using %v", c.Subject, c.Object, c.Side)
		}
	}
}

// Contacts returns the contacts of the last step.
func (s *Simulation) Contacts() []Contact {
	return s.contacts
}

// Movements returns the displacements applied in the last step.
func (s *Simulation) Movements() []Movement {
	return s.movements
}

// Fallbacks returns how many contacts of the last step used the fallback side.
func (s *Simulation) Fallbacks() int {
	return s.fallbacks
}

// Grounded reports whether e landed on something in the last step.
func (s *Simulation) Grounded(e donburi.Entity) bool {
	for _, c := range s.contacts {
		if c.Subject == e && c.Side == gamemath.Above {
			return true
		}
	}
	return false
}

// Touching reports whether subject approached object from side in the last step.
func (s *Simulation) Touching(subject, object donburi.Entity, side gamemath.Side) bool {
	for _, c := range s.contacts {
		if c.Subject == subject && c.Object == object && c.Side == side {
			return true
		}
	}
	return false
}

// TouchingHazard reports whether e was part of a contact with a hazard body in
// the last step, in either direction. Entities removed since the step are
// skipped.
func (s *Simulation) TouchingHazard(e donburi.Entity) bool {
	for _, c := range s.contacts {
		var other donburi.Entity
		switch e {
		case c.Subject:
			other = c.Object
		case c.Object:
			other = c.Subject
		default:
			continue
		}
		if !s.world.Valid(other) {
			continue
		}
		entry := s.world.Entry(other)
		if entry.HasComponent(Body) && Body.Get(entry).IsHazard {
			return true
		}
	}
	return false
}
