package render

import (
	"math"
	"slices"
	"testing"
)

func TestFillCellRGBAConversion(t *testing.T) {
	nan := float32(math.NaN())
	cells := []float32{0, 1, 0.5, 1, -0.25, 1.75, nan, 1}
	buf := make([]byte, len(cells))
	FillCellRGBA(buf, cells)

	want := []byte{0, 255, 128, 255, 0, 255, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("converted pixels %v, expected %v", buf, want)
	}
}

func TestFillCellRGBAShortBuffer(t *testing.T) {
	cells := []float32{1, 1, 1, 1}
	buf := make([]byte, 2)
	FillCellRGBA(buf, cells)
	if buf[0] != 255 || buf[1] != 255 {
		t.Fatalf("short buffer not filled: %v", buf)
	}
}

func TestToByteRounds(t *testing.T) {
	cases := []struct {
		in   float32
		want byte
	}{
		{0, 0},
		{1, 255},
		{0.25, 64},
		{0.999, 255},
		{0.001, 0},
	}
	for _, c := range cases {
		if got := toByte(c.in); got != c.want {
			t.Fatalf("toByte(%v) = %d, expected %d", c.in, got, c.want)
		}
	}
}
