package core

import "testing"

func TestNewGridRejectsDegenerateDimensions(t *testing.T) {
	cases := [][2]int{{0, 10}, {10, 0}, {0, 0}, {-1, 4}, {4, -1}}
	for _, c := range cases {
		if _, err := NewGrid(c[0], c[1]); err == nil {
			t.Fatalf("NewGrid(%d, %d) accepted degenerate dimensions", c[0], c[1])
		}
	}
	if _, err := NewGrid(1, 1); err != nil {
		t.Fatalf("NewGrid(1, 1) failed: %v", err)
	}
}

func TestWrapBoundaries(t *testing.T) {
	g, err := NewGrid(5, 3)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, 0, 4, 0},
		{5, 0, 0, 0},
		{0, -1, 0, 2},
		{0, 3, 0, 0},
		{-6, -4, 4, 2},
		{12, 7, 2, 1},
		{2, 1, 2, 1},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d, %d) = (%d, %d), expected (%d, %d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestChannelWrapsLikeWrap(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(3, 1, Cell{R: 0.25, G: 0.5, B: 0.75, A: 1})

	if v := g.Channel(-1, 1, 0); v != 0.25 {
		t.Fatalf("Channel(-1, 1, 0) = %v, expected wrapped value 0.25", v)
	}
	if v := g.Channel(3, -3, 1); v != 0.5 {
		t.Fatalf("Channel(3, -3, 1) = %v, expected wrapped value 0.5", v)
	}
	if v := g.Channel(7, 5, 2); v != 0.75 {
		t.Fatalf("Channel(7, 5, 2) = %v, expected wrapped value 0.75", v)
	}
}

func TestSetAtRoundTrip(t *testing.T) {
	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := Cell{R: 0.1, G: 0.2, B: 0.3, A: 1}
	g.Set(2, 1, want)
	if got := g.At(2, 1); got != want {
		t.Fatalf("At(2, 1) = %+v, expected %+v", got, want)
	}
	if idx := g.Index(2, 1); g.Cells()[idx] != want.R {
		t.Fatalf("backing slice at Index(2,1) = %v, expected %v", g.Cells()[idx], want.R)
	}
}

func TestBuffersSwap(t *testing.T) {
	b, err := NewBuffers(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	front := b.Front()
	back := b.Back()
	if front == back {
		t.Fatal("front and back must be distinct grids")
	}

	b.Swap()
	if b.Front() != back || b.Back() != front {
		t.Fatal("Swap did not exchange buffer roles")
	}
	b.Swap()
	if b.Front() != front || b.Back() != back {
		t.Fatal("double Swap did not restore buffer roles")
	}
}

func TestBuffersRejectDegenerateDimensions(t *testing.T) {
	if _, err := NewBuffers(0, 8); err == nil {
		t.Fatal("NewBuffers(0, 8) accepted degenerate dimensions")
	}
}
