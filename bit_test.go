package mison

import "testing"

func TestRemoveRightmost(t *testing.T) {
	cases := []struct{ in, want uint64 }{
		{0b_1110_1000, 0b_1110_0000},
		{0, 0},
		{1, 0},
	}
	for _, c := range cases {
		if got := removeRightmost(c.in); got != c.want {
			t.Errorf("removeRightmost(%b) = %b, want %b", c.in, got, c.want)
		}
	}
}

func TestRemoveLeftmost(t *testing.T) {
	cases := []struct{ in, want uint64 }{
		{0b_1110_1000, 0b_0110_1000},
		{0, 0},
		{1, 0},
	}
	for _, c := range cases {
		if got := removeLeftmost(c.in); got != c.want {
			t.Errorf("removeLeftmost(%b) = %b, want %b", c.in, got, c.want)
		}
	}
}

func TestExtractRightmost(t *testing.T) {
	cases := []struct{ in, want uint64 }{
		{0b_1110_1000, 0b_0000_1000},
		{0, 0},
	}
	for _, c := range cases {
		if got := extractRightmost(c.in); got != c.want {
			t.Errorf("extractRightmost(%b) = %b, want %b", c.in, got, c.want)
		}
	}
}

func TestSmearRightmost(t *testing.T) {
	cases := []struct{ in, want uint64 }{
		{0b_1110_1000, 0b_0000_1111},
		{0, 0},
	}
	for _, c := range cases {
		if got := smearRightmost(c.in); got != c.want {
			t.Errorf("smearRightmost(%b) = %b, want %b", c.in, got, c.want)
		}
	}
}

func TestLeadingOnes(t *testing.T) {
	cases := []struct {
		in   uint64
		pos  uint32
		want uint32
	}{
		{0b_0011_1000, 6, 3},
		{0, 6, 0},
		{^uint64(0), 0, 0},
	}
	for _, c := range cases {
		if got := leadingOnes(c.in, c.pos); got != c.want {
			t.Errorf("leadingOnes(%b, %d) = %d, want %d", c.in, c.pos, got, c.want)
		}
	}
}
