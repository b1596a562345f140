package gamemath

// Side is the face of an object that a moving subject approaches.
type Side int

const (
	Above Side = iota // subject falls onto the object's top
	Below             // subject rises into the object's bottom
	Left              // subject moves right into the object's left face
	Right             // subject moves left into the object's right face
)

func (s Side) String() string {
	switch s {
	case Above:
		return "above"
	case Below:
		return "below"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Vertical reports whether s constrains movement on the y axis.
func (s Side) Vertical() bool {
	return s == Above || s == Below
}

// ClassifySide determines which face of object the subject crossed when moving
// from old to desired. Conditions are tested in the order Left, Right, Above,
// Below and the first match wins. When nothing matches (the boxes already
// overlapped before the move) it returns Below and ok=false.
func ClassifySide(old, desired, object Rect) (side Side, ok bool) {
	switch {
	case old.Right() <= object.Left() && desired.Right() >= object.Left():
		return Left, true
	case old.Left() >= object.Right() && desired.Left() <= object.Right():
		return Right, true
	case old.Bottom() <= object.Top() && desired.Bottom() >= object.Top():
		return Above, true
	case old.Top() >= object.Bottom() && desired.Top() <= object.Bottom():
		return Below, true
	}
	return Below, false
}
