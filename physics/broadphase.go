package physics

import (
	"math"
	"slices"
	"sort"

	"github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// gridCell is the resolv cell size in grid units. World coordinates are
// scaled so one cell covers BroadPhaseConfig.CellSize world units.
const gridCell = 16

// broadPhase prefilters pairs through a resolv cell grid rebuilt every step.
// Object boxes are inflated by one grid unit on each side so cell membership
// is a superset of true overlap; the exact test still runs on every candidate.
type broadPhase struct {
	region gamemath.Rect // bodies must stay inside this to use the grid
	minX   float64
	minY   float64
	scale  float64
	width  int
	height int
}

func newBroadPhase(cfg config.BroadPhaseConfig) *broadPhase {
	cellSize := cfg.CellSize
	if cellSize <= 0 {
		cellSize = 1
	}
	scale := gridCell / cellSize
	cellsX := int(math.Ceil(cfg.Width / cellSize))
	cellsY := int(math.Ceil(cfg.Height / cellSize))

	margin := 2 / scale
	return &broadPhase{
		region: gamemath.NewRect(cfg.MinX+margin, cfg.MinY+margin, cfg.Width-2*margin, cfg.Height-2*margin),
		minX:   cfg.MinX,
		minY:   cfg.MinY,
		scale:  scale,
		width:  max(cellsX, 1) * gridCell,
		height: max(cellsY, 1) * gridCell,
	}
}

// toGrid converts a world box into an inflated grid-space object.
func (bp *broadPhase) toGrid(r gamemath.Rect) *resolv.Object {
	x := (r.X-bp.minX)*bp.scale - 1
	y := (r.Y-bp.minY)*bp.scale - 1
	return resolv.NewObject(x, y, r.W*bp.scale+2, r.H*bp.scale+2)
}

// detect produces the same contacts, in the same order, as the all-pairs detect.
func (bp *broadPhase) detect(entries []*donburi.Entry, dt float64, dst []Contact) ([]Contact, int) {
	space := resolv.NewSpace(bp.width, bp.height, gridCell, gridCell)
	objects := make([]*resolv.Object, len(entries))
	var overflow []int

	for i, e := range entries {
		body := Body.Get(e)
		swept := body.Box.Union(body.Box.Translate(body.VX*dt, body.VY*dt))
		if !bp.region.Contains(swept) {
			overflow = append(overflow, i)
			continue
		}
		obj := bp.toGrid(body.Box)
		obj.Data = i
		space.Add(obj)
		objects[i] = obj
	}

	fallbacks := 0
	var candidates []int
	for i, se := range entries {
		subject := Body.Get(se)
		old := subject.Box
		desired := old.Translate(subject.VX*dt, subject.VY*dt)

		candidates = bp.candidates(candidates[:0], objects[i], subject, dt, overflow, len(entries))
		for _, j := range candidates {
			if j == i {
				continue
			}
			var ok bool
			dst, ok = testPair(dst, se, entries[j], old, desired)
			if !ok {
				fallbacks++
			}
		}
	}
	return dst, fallbacks
}

// candidates lists, in ascending order, the entry indices that may overlap
// the subject's desired box. Subjects outside the grid get every index.
func (bp *broadPhase) candidates(dst []int, obj *resolv.Object, subject *BodyData, dt float64, overflow []int, n int) []int {
	if obj == nil {
		for j := 0; j < n; j++ {
			dst = append(dst, j)
		}
		return dst
	}

	if check := obj.Check(subject.VX*dt*bp.scale, subject.VY*dt*bp.scale); check != nil {
		for _, o := range check.Objects {
			dst = append(dst, o.Data.(int))
		}
	}
	dst = append(dst, overflow...)
	sort.Ints(dst)
	return slices.Compact(dst)
}
