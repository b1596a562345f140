package runner

import (
	"math"
	"testing"

	"github.com/automoto/buildyguy/shared/gamemath"
)

func TestProject(t *testing.T) {
	view := gamemath.NewRect(2, 0, 4.0/3.0, 1)
	tests := []struct {
		name string
		box  gamemath.Rect
		want gamemath.Rect
	}{
		{"view itself", view, gamemath.NewRect(0, 0, 800, 600)},
		{"left half", gamemath.NewRect(2, 0.5, 2.0/3.0, 0.5), gamemath.NewRect(0, 300, 400, 300)},
		{"behind the camera", gamemath.NewRect(1, 0, 0.1, 0.1), gamemath.NewRect(-600, 0, 60, 60)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.box, view, 800, 600)
			if math.Abs(got.X-tt.want.X) > 1e-6 || math.Abs(got.Y-tt.want.Y) > 1e-6 ||
				math.Abs(got.W-tt.want.W) > 1e-6 || math.Abs(got.H-tt.want.H) > 1e-6 {
				t.Errorf("Project(%v) = %v, want %v", tt.box, got, tt.want)
			}
		})
	}
}
