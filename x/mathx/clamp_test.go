package mathx

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{5, 10, 0, 5},  // swapped bounds
		{-3, 10, 0, 0}, // swapped bounds
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}

	if got := Clamp(uint16(62600), 0, 62500); got != 62500 {
		t.Errorf("Clamp uint16 = %d, want 62500", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max")
	}
}
