package core

import "testing"

func TestRectEdgesAndCenter(t *testing.T) {
	content := NewRect(12, 7, 80, 17)

	if got := content.Right(); got != 92 {
		t.Errorf("Right() = %d, expected 92", got)
	}
	if got := content.Bottom(); got != 24 {
		t.Errorf("Bottom() = %d, expected 24", got)
	}
	if x, y := content.Center(); x != 52 || y != 15 {
		t.Errorf("Center() = (%d, %d), expected (52, 15)", x, y)
	}
}

func TestRectEmpty(t *testing.T) {
	cases := map[Rect]bool{
		NewRect(0, 0, 1, 1):  false,
		NewRect(3, 3, 0, 4):  true,
		NewRect(3, 3, 4, 0):  true,
		NewRect(0, 0, -2, 5): true,
		{}:                   true,
	}
	for r, want := range cases {
		if got := r.Empty(); got != want {
			t.Errorf("%+v.Empty() = %v, expected %v", r, got, want)
		}
	}
}

func TestRectContainsHalfOpen(t *testing.T) {
	r := NewRect(2, 3, 4, 2) // columns 2..5, rows 3..4

	inside := [][2]int{{2, 3}, {5, 3}, {2, 4}, {5, 4}, {3, 4}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = false, expected true", p[0], p[1])
		}
	}
	outside := [][2]int{{1, 3}, {6, 3}, {2, 2}, {2, 5}, {6, 5}}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = true, expected false", p[0], p[1])
		}
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), NewRect(5, 5, 5, 5)},
		{"clip to grid", NewRect(12, 7, 80, 17), NewRect(0, 0, 40, 20), NewRect(12, 7, 28, 13)},
		{"negative origin", NewRect(-5, -5, 10, 10), NewRect(0, 0, 80, 24), NewRect(0, 0, 5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersect(tc.b); got != tc.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.expected)
			}
			if got := tc.b.Intersect(tc.a); got != tc.expected {
				t.Errorf("Intersect() reversed = %+v, expected %+v", got, tc.expected)
			}
		})
	}

	for _, other := range []Rect{NewRect(10, 10, 5, 5), NewRect(5, 0, 5, 5), NewRect(0, 5, 5, 5)} {
		if got := NewRect(0, 0, 5, 5).Intersect(other); !got.Empty() {
			t.Errorf("Intersect(%+v) = %+v, expected empty", other, got)
		}
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6)

	if got := r.Inset(1); got != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v, expected {1 1 8 4}", got)
	}
	if got := r.Inset(4); got.W != 2 || got.H != 0 {
		t.Errorf("Inset(4) = %+v, expected width 2 and height 0", got)
	}
	if got := r.Inset(-1); got != NewRect(-1, -1, 12, 8) {
		t.Errorf("Inset(-1) = %+v, expected {-1 -1 12 8}", got)
	}
}

func TestClampF(t *testing.T) {
	for _, tc := range []struct{ in, expected float64 }{
		{-0.25, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {3.5, 1},
	} {
		if got := ClampF(tc.in, 0, 1); got != tc.expected {
			t.Errorf("ClampF(%v, 0, 1) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(-3, 2); got != -3 {
		t.Errorf("Min(-3, 2) = %d, expected -3", got)
	}
	if got := Max(-3, 2); got != 2 {
		t.Errorf("Max(-3, 2) = %d, expected 2", got)
	}
}
