package physics

import (
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Contact is a predicted collision for one step. Subject is the moving body
// under test, Object the body it would hit and Side the face of Object that
// Subject approaches. Exact is false when the side could not be classified and
// the Below fallback was used.
type Contact struct {
	Subject donburi.Entity
	Object  donburi.Entity
	Side    gamemath.Side
	Exact   bool
}

// Detect tests every ordered pair of distinct bodies and appends a Contact
// for each subject whose box, moved by its velocity for dt, overlaps the
// object's current box.
func Detect(w donburi.World, dt float64, dst []Contact) []Contact {
	dst, _ = detect(collectBodies(w, nil), dt, dst)
	return dst
}

func detect(entries []*donburi.Entry, dt float64, dst []Contact) ([]Contact, int) {
	fallbacks := 0
	for i, se := range entries {
		subject := Body.Get(se)
		old := subject.Box
		desired := old.Translate(subject.VX*dt, subject.VY*dt)

		for j, oe := range entries {
			if i == j {
				continue
			}
			var ok bool
			dst, ok = testPair(dst, se, oe, old, desired)
			if !ok {
				fallbacks++
			}
		}
	}
	return dst, fallbacks
}

// testPair appends a contact when desired overlaps the object. ok is false
// only when a contact was appended with the fallback side.
func testPair(dst []Contact, se, oe *donburi.Entry, old, desired gamemath.Rect) ([]Contact, bool) {
	object := Body.Get(oe).Box
	if !gamemath.Intersects(desired, object) {
		return dst, true
	}

	side, exact := gamemath.ClassifySide(old, desired, object)
	dst = append(dst, Contact{
		Subject: se.Entity(),
		Object:  oe.Entity(),
		Side:    side,
		Exact:   exact,
	})
	return dst, exact
}
