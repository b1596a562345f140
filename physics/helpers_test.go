package physics

import (
	"math"
	"testing"

	"github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/yohamta/donburi"
)

func addBody(w donburi.World, body BodyData) donburi.Entity {
	e := w.Create(Body)
	Body.SetValue(w.Entry(e), body)
	return e
}

func box(x, y, w, h float64) gamemath.Rect {
	return gamemath.NewRect(x, y, w, h)
}

func bodyOf(w donburi.World, e donburi.Entity) *BodyData {
	return Body.Get(w.Entry(e))
}

func physicsConfig(gravity float64) config.PhysicsConfig {
	return config.PhysicsConfig{Gravity: gravity}
}

func approxEqual(t *testing.T, got, want float64, field string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %.12f, want %.12f", field, got, want)
	}
}
