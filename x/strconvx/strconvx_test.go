package strconvx

import "testing"

func TestItoaAtoi(t *testing.T) {
	cases := []int{0, 1, -1, 42, 255, -99999}
	for _, v := range cases {
		s := Itoa(v)
		got, err := Atoi(s)
		if err != nil {
			t.Fatalf("Atoi(%q) error: %v", s, err)
		}
		if got != v {
			t.Fatalf("Itoa/Atoi round trip: want %d, got %d", v, got)
		}
	}
}

func TestAtoi_Invalid(t *testing.T) {
	for _, s := range []string{"", "-", "12a", "0x10", " 1"} {
		if _, err := Atoi(s); err == nil {
			t.Fatalf("Atoi(%q) should fail", s)
		}
	}
}

func TestAtoi_Sign(t *testing.T) {
	if v, err := Atoi("+7"); err != nil || v != 7 {
		t.Fatalf("Atoi(+7) = %d, %v", v, err)
	}
}
