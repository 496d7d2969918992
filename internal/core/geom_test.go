package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 5, 4, 3)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 10, 5, true},
		{"bottom-right cell", 13, 7, true},
		{"right edge is outside", 14, 6, false},
		{"bottom edge is outside", 11, 8, false},
		{"left of rect", 9, 6, false},
		{"above rect", 11, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 40, 18)
	if r.Right() != 42 {
		t.Errorf("Right() = %d, expected 42", r.Right())
	}
	if r.Bottom() != 21 {
		t.Errorf("Bottom() = %d, expected 21", r.Bottom())
	}
}

func TestRectGrow(t *testing.T) {
	r := NewRect(5, 5, 10, 4)

	if got, want := r.Grow(1), NewRect(4, 4, 12, 6); got != want {
		t.Errorf("Grow(1) = %+v, expected %+v", got, want)
	}
	if got, want := r.Grow(-1), NewRect(6, 6, 8, 2); got != want {
		t.Errorf("Grow(-1) = %+v, expected %+v", got, want)
	}
	if got := r.Grow(-3); got.W != 4 || got.H != 0 {
		t.Errorf("Grow(-3) = %+v, expected an empty height", got)
	}
}
