package internal

import "testing"

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{100, "100"},
		{0, "0"},
		{99.4, "99"},
		{99.5, "100"}, // halves round away from zero
		{1050.0, "1050"},
	}
	for _, c := range cases {
		if got := MinorUnits(c.amount); got != c.want {
			t.Fatalf("MinorUnits(%v) = %s, want %s", c.amount, got, c.want)
		}
	}
}

func TestPad(t *testing.T) {
	cases := []struct {
		number float64
		width  int
		want   string
	}{
		{7, 3, "007"},
		{12345, 3, "12345"}, // never truncated
		{0, 2, "00"},
		{10.6, 2, "11"}, // rounded before padding
		{1050, 10, "0000001050"},
	}
	for _, c := range cases {
		if got := Pad(c.number, c.width); got != c.want {
			t.Fatalf("Pad(%v, %d) = %s, want %s", c.number, c.width, got, c.want)
		}
	}
}
