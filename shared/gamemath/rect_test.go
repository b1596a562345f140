package gamemath

import "testing"

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 2, 2), NewRect(1, 1, 2, 2), true},
		{"contained", NewRect(0, 0, 4, 4), NewRect(1, 1, 1, 1), true},
		{"disjoint x", NewRect(0, 0, 1, 1), NewRect(3, 0, 1, 1), false},
		{"disjoint y", NewRect(0, 0, 1, 1), NewRect(0, 3, 1, 1), false},
		{"touching right edge", NewRect(0, 0, 1, 1), NewRect(1, 0, 1, 1), false},
		{"touching bottom edge", NewRect(0, 0, 1, 1), NewRect(0, 1, 1, 1), false},
		{"touching corner", NewRect(0, 0, 1, 1), NewRect(1, 1, 1, 1), false},
		{"zero width inside", NewRect(0, 0, 4, 4), NewRect(2, 1, 0, 1), false},
		{"zero height inside", NewRect(0, 0, 4, 4), NewRect(1, 2, 1, 0), false},
		{"overlap x only", NewRect(0, 0, 2, 1), NewRect(1, 5, 2, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestIntersectsSelf(t *testing.T) {
	for _, r := range []Rect{NewRect(0, 0, 1, 1), NewRect(-3, 2, 0.5, 7), NewRect(10, -10, 100, 0.01)} {
		if !Intersects(r, r) {
			t.Errorf("Intersects(%v, %v) = false, want true", r, r)
		}
	}
	if Intersects(NewRect(0, 0, 0, 1), NewRect(0, 0, 0, 1)) {
		t.Error("zero-width rect intersects itself")
	}
}

func TestIntersectsSeparatedTranslations(t *testing.T) {
	a := NewRect(0, 0, 1, 1)
	for dx := -5.0; dx <= 5; dx += 0.25 {
		for _, gap := range []float64{0, 0.5, 3} {
			right := NewRect(a.Right()+gap, dx, 2, 2)
			below := NewRect(dx, a.Bottom()+gap, 2, 2)
			if Intersects(a, right) {
				t.Fatalf("Intersects(%v, %v) = true for x-separated rects", a, right)
			}
			if Intersects(a, below) {
				t.Fatalf("Intersects(%v, %v) = true for y-separated rects", a, below)
			}
		}
	}
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if r.Left() != 1 || r.Right() != 4 || r.Top() != 2 || r.Bottom() != 6 {
		t.Fatalf("edges of %v = %v %v %v %v", r, r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if got := r.Translate(-1, 1); got != NewRect(0, 3, 3, 4) {
		t.Errorf("Translate = %v", got)
	}
	u := r.Union(NewRect(-1, 5, 1, 3))
	if u != NewRect(-1, 2, 5, 6) {
		t.Errorf("Union = %v", u)
	}
	if !u.Contains(r) || r.Contains(u) {
		t.Errorf("Contains mismatch for %v and %v", u, r)
	}
	if got := NewRect(1, 1, 2, 2).Inflate(0.5); got != NewRect(0.5, 0.5, 3, 3) {
		t.Errorf("Inflate = %v", got)
	}
}
