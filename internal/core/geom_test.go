package core

import "testing"

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"inside", NewRect(2, 2, 3, 3), true},
		{"fractional overlap", NewRect(9.5, 9.5, 4, 4), true},
		{"left of", NewRect(-20, 0, 10, 10), false},
		{"touching right edge", NewRect(10, 0, 5, 5), false},
		{"touching bottom edge", NewRect(0, 10, 5, 5), false},
		{"below", NewRect(0, 30, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectEdgesAndInset(t *testing.T) {
	r := NewRect(4, 6, 20, 10)
	if r.Right() != 24 || r.Bottom() != 16 {
		t.Fatalf("edges = (%v, %v), want (24, 16)", r.Right(), r.Bottom())
	}

	in := r.Inset(2)
	if in != (Rect{X: 6, Y: 8, W: 16, H: 6}) {
		t.Errorf("Inset(2) = %+v", in)
	}
	if out := r.Inset(-1); out != (Rect{X: 3, Y: 5, W: 22, H: 12}) {
		t.Errorf("Inset(-1) = %+v", out)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, -1, 1); got != 1 {
		t.Errorf("Clamp(5, -1, 1) = %d", got)
	}
	if got := Clamp(-3, -1, 1); got != -1 {
		t.Errorf("Clamp(-3, -1, 1) = %d", got)
	}
	if got := Clamp(0.25, 0.0, 1.0); got != 0.25 {
		t.Errorf("Clamp(0.25, 0, 1) = %v", got)
	}
	if got := Clamp(400.5, 0.0, 340.0); got != 340 {
		t.Errorf("Clamp(400.5, 0, 340) = %v", got)
	}
}
