package life

import (
	"slices"
	"testing"

	"lifeview/internal/core"
)

func TestBuiltinPatternsRegistered(t *testing.T) {
	names := PatternNames()
	for _, want := range []string{"beacon", "blinker", "block", "glider", "lwss", "r-pentomino", "toad"} {
		if !slices.Contains(names, want) {
			t.Fatalf("pattern %q not registered (have %v)", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("PatternNames not sorted: %v", names)
	}
	if _, ok := Lookup("no-such-pattern"); ok {
		t.Fatal("Lookup found an unregistered pattern")
	}
}

func TestStampClipsOutsideCells(t *testing.T) {
	g := core.NewGrid(3, 3)
	p, _ := Lookup("block")
	Stamp(g, p, 2, 2)
	if g.LiveCells() != 1 || !g.Alive(2, 2) {
		t.Fatalf("clipped stamp left %d live cells", g.LiveCells())
	}
	Stamp(g, p, -1, -1)
	if !g.Alive(0, 0) || g.LiveCells() != 2 {
		t.Fatal("negative offset stamp not clipped")
	}
}

func TestStampCentered(t *testing.T) {
	g := core.NewGrid(5, 5)
	p, _ := Lookup("blinker")
	StampCentered(g, p)
	for _, c := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if !g.Alive(c[0], c[1]) {
			t.Fatalf("cell %v not alive after centered stamp", c)
		}
	}
	if g.LiveCells() != 3 {
		t.Fatalf("live cells = %d, want 3", g.LiveCells())
	}
}

func TestOscillatorsHavePeriodTwo(t *testing.T) {
	for _, name := range []string{"blinker", "toad", "beacon"} {
		p, _ := Lookup(name)
		g := core.NewGrid(10, 10)
		StampCentered(g, p)
		start := g.Clone()

		g1, _ := Next(g, true)
		if g1.Equal(start) {
			t.Fatalf("%s unchanged after one generation", name)
		}
		g2, _ := Next(g1, true)
		if !g2.Equal(start) {
			t.Fatalf("%s did not return after two generations", name)
		}
	}
}

func TestGliderTranslates(t *testing.T) {
	p, _ := Lookup("glider")
	g := core.NewGrid(12, 12)
	Stamp(g, p, 1, 1)
	want := core.NewGrid(12, 12)
	Stamp(want, p, 2, 2)
	for i := 0; i < 4; i++ {
		g, _ = Next(g, true)
	}
	if !g.Equal(want) {
		t.Fatal("glider did not move one cell diagonally in four generations")
	}
}
