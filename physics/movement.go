package physics

import (
	"fmt"
	"math"

	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Movement is the clamped displacement applied to one entity in a step.
type Movement struct {
	Entity donburi.Entity
	DX, DY float64
}

// limits are the per-axis displacement bounds collected from contacts.
type limits struct {
	maxX, maxY float64
	minX, minY float64
}

func unbounded() limits {
	return limits{
		maxX: math.Inf(1),
		maxY: math.Inf(1),
		minX: math.Inf(-1),
		minY: math.Inf(-1),
	}
}

// ComputeMovement turns contacts into per-entity displacement for dt. Each
// axis is clamped to the tightest contact in the direction of travel; bodies
// without contacts move their full displacement. Only non-zero movement is
// appended to dst.
//
// ComputeMovement panics if a contact references an entity that is no longer
// a live body.
func ComputeMovement(w donburi.World, contacts []Contact, dt float64, dst []Movement) []Movement {
	return computeMovement(collectBodies(w, nil), contacts, dt, dst)
}

func computeMovement(entries []*donburi.Entry, contacts []Contact, dt float64, dst []Movement) []Movement {
	idx := indexOf(entries)

	bounds := make([]limits, len(entries))
	for i := range bounds {
		bounds[i] = unbounded()
	}

	for _, c := range contacts {
		si := mustIndex(idx, c.Subject)
		oi := mustIndex(idx, c.Object)
		subject := Body.Get(entries[si]).Box
		object := Body.Get(entries[oi]).Box
		b := &bounds[si]

		switch c.Side {
		case gamemath.Left:
			b.maxX = math.Min(b.maxX, stopBefore(subject.X, subject.W, object.Left()))
		case gamemath.Above:
			b.maxY = math.Min(b.maxY, stopBefore(subject.Y, subject.H, object.Top()))
		case gamemath.Right:
			b.minX = math.Max(b.minX, stopAfter(subject.X, object.Right()))
		case gamemath.Below:
			b.minY = math.Max(b.minY, stopAfter(subject.Y, object.Bottom()))
		}
	}

	for i, e := range entries {
		body := Body.Get(e)
		dx := clampAxis(body.VX*dt, bounds[i].minX, bounds[i].maxX)
		dy := clampAxis(body.VY*dt, bounds[i].minY, bounds[i].maxY)
		if dx != 0 || dy != 0 {
			dst = append(dst, Movement{Entity: e.Entity(), DX: dx, DY: dy})
		}
	}
	return dst
}

// stopBefore returns the gap between the far edge pos+size and edge, reduced
// by as many ulps as it takes for the translated edge to round to at most edge.
// A resting body must never end a step inside what it landed on.
func stopBefore(pos, size, edge float64) float64 {
	d := edge - (pos + size)
	for (pos+d)+size > edge {
		d = math.Nextafter(d, math.Inf(-1))
	}
	return d
}

// stopAfter is stopBefore for the near edge moving in the negative direction.
func stopAfter(pos, edge float64) float64 {
	d := edge - pos
	for pos+d < edge {
		d = math.Nextafter(d, math.Inf(1))
	}
	return d
}

// clampAxis limits a raw displacement by the bound in its direction of travel.
func clampAxis(d, lo, hi float64) float64 {
	switch {
	case d > 0:
		return math.Min(d, hi)
	case d < 0:
		return math.Max(d, lo)
	}
	return 0
}

// ApplyMovement translates the box of every moved entity.
func ApplyMovement(w donburi.World, movements []Movement) {
	for _, m := range movements {
		if !w.Valid(m.Entity) {
			panic(fmt.Sprintf("physics: movement for entity %v that is no longer in the world", m.Entity))
		}
		body := Body.Get(w.Entry(m.Entity))
		body.Box = body.Box.Translate(m.DX, m.DY)
	}
}
