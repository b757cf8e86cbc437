package nca

import (
	"slices"
	"testing"

	"nca-lab/internal/core"
)

func TestHashMixGoldenValues(t *testing.T) {
	cases := []struct {
		in, out uint32
	}{
		{0, 1739749167},
		{1, 150776505},
		{2, 1432511529},
		{16, 2080431459},
		{17, 1082515739},
		{32, 2473827443},
		{3125, 3189026064},
		{4294967295, 3360068443},
	}
	for _, c := range cases {
		if got := hashMix(c.in); got != c.out {
			t.Fatalf("hashMix(%d) = %d, expected %d", c.in, got, c.out)
		}
	}
}

func TestRandFloatRange(t *testing.T) {
	for v := uint32(0); v < 1000; v++ {
		f := randFloat(v)
		if f < 0 || f > 1 {
			t.Fatalf("randFloat(%d) = %v, outside [0, 1]", v, f)
		}
	}
}

func TestSeedDeterministic(t *testing.T) {
	a, err := core.NewGrid(16, 9)
	if err != nil {
		t.Fatal(err)
	}
	b, err := core.NewGrid(16, 9)
	if err != nil {
		t.Fatal(err)
	}
	Seed(a)
	Seed(b)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Seed is not deterministic for identical dimensions")
	}

	// Reseeding a mutated grid restores the exact same state.
	b.Cells()[0] = 0.123
	Seed(b)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Seed after mutation did not restore the initial state")
	}
}

func TestSeedChannelInputsDisjoint(t *testing.T) {
	const w, h = 7, 5
	total := uint32(w * h)
	seen := map[uint32]bool{}
	for idx := uint32(0); idx < total; idx++ {
		for _, in := range []uint32{idx, total + idx, 2*total + idx} {
			if seen[in] {
				t.Fatalf("hash input %d used twice", in)
			}
			seen[in] = true
		}
	}
}

func TestSeedMatchesHashPerChannel(t *testing.T) {
	g, err := core.NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	Seed(g)
	total := uint32(16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			idx := uint32(y*4 + x)
			got := g.At(x, y)
			want := core.Cell{
				R: randFloat(idx),
				G: randFloat(total + idx),
				B: randFloat(2*total + idx),
				A: 1,
			}
			if got != want {
				t.Fatalf("seeded cell (%d,%d) = %+v, expected %+v", x, y, got, want)
			}
		}
	}
}

func TestSeedAlphaAlwaysOne(t *testing.T) {
	g, err := core.NewGrid(9, 3)
	if err != nil {
		t.Fatal(err)
	}
	Seed(g)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if a := g.At(x, y).A; a != 1 {
				t.Fatalf("alpha at (%d,%d) = %v, expected 1", x, y, a)
			}
		}
	}
}
