package systems

import (
	"github.com/automoto/buildyguy/components"
	"github.com/automoto/buildyguy/physics"
	"github.com/yohamta/donburi"
)

// UpdateMovers advances every mover's tween and sets the body velocity that
// reaches the tweened position in one step. The physics step does the moving,
// so a mover blocked by another body catches up once it is free.
func UpdateMovers(w donburi.World) {
	_, runner, ok := runnerOf(w)
	if !ok {
		return
	}
	dt := runner.Config.Runner.TimeStep

	components.Mover.Each(w, func(e *donburi.Entry) {
		mover := components.Mover.Get(e)
		if mover.Sequence == nil {
			return
		}
		offset, _, done := mover.Sequence.Update(float32(dt))
		if done {
			mover.Sequence.Reset()
		}

		body := physics.Body.Get(e)
		target := mover.BaseY + float64(offset)
		body.VY = (target - body.Box.Y) / dt
	})
}
