package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Box{Left: 5, Top: 5, Right: 15, Bottom: 15},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Box{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Box{Left: 15, Top: 0, Right: 25, Bottom: 10},
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        Box{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Box{Left: 0, Top: 15, Right: 10, Bottom: 25},
			expected: false,
		},
		{
			name:     "touching edges",
			a:        Box{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Box{Left: 10, Top: 0, Right: 20, Bottom: 10},
			expected: false,
		},
		{
			name:     "contained",
			a:        Box{Left: 0, Top: 0, Right: 20, Bottom: 20},
			b:        Box{Left: 5, Top: 5, Right: 6, Bottom: 6},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        Box{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Box{Left: 9.5, Top: 9.5, Right: 12, Bottom: 12},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(100, 260, 70, 70)

	if b.Left != 65 || b.Right != 135 {
		t.Errorf("horizontal range = [%f, %f], expected [65, 135]", b.Left, b.Right)
	}
	if b.Top != 225 || b.Bottom != 295 {
		t.Errorf("vertical range = [%f, %f], expected [225, 295]", b.Top, b.Bottom)
	}
	if b.Width() != 70 || b.Height() != 70 {
		t.Errorf("size = %fx%f, expected 70x70", b.Width(), b.Height())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
