package gamemath

import "testing"

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		speed, max, want float64
	}{
		{5, 3, 3},
		{-5, 3, -3},
		{1.5, 3, 1.5},
		{-3, 3, -3},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.speed, tt.max); got != tt.want {
			t.Errorf("ClampSpeed(%v, %v) = %v, want %v", tt.speed, tt.max, got, tt.want)
		}
	}
}
