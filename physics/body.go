// Package physics is the collision core: it predicts next-step overlap between
// every pair of bodies, classifies the side of approach and clamps movement so
// bodies stop exactly at contact.
//
// The entity table is a donburi World. Bodies are entities carrying the Body
// component; the package never creates or removes them.
package physics

import (
	"fmt"

	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// BodyData is the physics state of one entity.
type BodyData struct {
	Box          gamemath.Rect
	VX, VY       float64 // units per second
	ObeysGravity bool
	IsHazard     bool
}

var Body = donburi.NewComponentType[BodyData]()

var bodyQuery = donburi.NewQuery(filter.Contains(Body))

// collectBodies appends every entry carrying a Body to dst in world order.
func collectBodies(w donburi.World, dst []*donburi.Entry) []*donburi.Entry {
	bodyQuery.Each(w, func(e *donburi.Entry) {
		dst = append(dst, e)
	})
	return dst
}

// indexOf maps entities to their position in entries.
func indexOf(entries []*donburi.Entry) map[donburi.Entity]int {
	idx := make(map[donburi.Entity]int, len(entries))
	for i, e := range entries {
		idx[e.Entity()] = i
	}
	return idx
}

// mustIndex looks up a contact participant. A missing entity means the caller
// removed it between detection and resolution, which is a programming error.
func mustIndex(idx map[donburi.Entity]int, e donburi.Entity) int {
	i, ok := idx[e]
	if !ok {
		panic(fmt.Sprintf("physics: entity %v is not a live body", e))
	}
	return i
}
