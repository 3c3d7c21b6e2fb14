package mathx

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{-10, 0, 255, 0},
		{300, 0, 255, 255},
		{128, 0, 255, 128},
		{5, 10, 0, 5}, // swapped bounds
		{-1, 10, 0, 0},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("Clamp(%d,%d,%d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestClampU8(t *testing.T) {
	if ClampU8(-10) != 0 || ClampU8(300) != 255 || ClampU8(128) != 128 {
		t.Fatal("ClampU8 out of range")
	}
}

func TestWrapBelow(t *testing.T) {
	if got := WrapBelow(-1, 0, 255); got != 255 {
		t.Fatalf("WrapBelow(-1) = %d, want 255", got)
	}
	if got := WrapBelow(0, 0, 255); got != 0 {
		t.Fatalf("WrapBelow(0) = %d, want 0", got)
	}
}
