package model

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func fullGrid(side int) *Grid {
	g := NewGrid(side)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			g.Set(row, col, true)
		}
	}
	return g
}

func TestNewGrid(t *testing.T) {
	Convey("When a grid is created", t, func() {
		for _, side := range []int{0, 1, 4, 9} {
			g := NewGrid(side)
			So(g.Side(), ShouldEqual, side)
			So(g.CountLiving(), ShouldEqual, 0)
			So(len(g.Matrix()), ShouldEqual, side)
			for _, row := range g.Matrix() {
				So(len(row), ShouldEqual, side)
			}
		}

		Convey("A negative side is treated as empty", func() {
			So(NewGrid(-3).Side(), ShouldEqual, 0)
		})
	})
}

func TestGetSet(t *testing.T) {
	Convey("When cells are written", t, func() {
		g := NewGrid(3)
		g.Set(1, 2, true)
		So(g.Get(1, 2), ShouldBeTrue)
		So(g.Get(2, 1), ShouldBeFalse)
		g.Set(1, 2, false)
		So(g.Get(1, 2), ShouldBeFalse)

		Convey("Addresses outside the grid panic", func() {
			So(func() { g.Get(3, 0) }, ShouldPanic)
			So(func() { g.Get(0, -1) }, ShouldPanic)
			So(func() { g.Set(-1, 0, true) }, ShouldPanic)
			So(func() { NewGrid(0).Get(0, 0) }, ShouldPanic)
		})
	})
}

func TestCountLiveNeighbors(t *testing.T) {
	Convey("When neighbors are counted on a full board", t, func() {
		g := fullGrid(5)

		Convey("Corners only see three neighbors", func() {
			So(g.CountLiveNeighbors(0, 0), ShouldEqual, 3)
			So(g.CountLiveNeighbors(0, 4), ShouldEqual, 3)
			So(g.CountLiveNeighbors(4, 0), ShouldEqual, 3)
			So(g.CountLiveNeighbors(4, 4), ShouldEqual, 3)
		})

		Convey("Edges see five neighbors", func() {
			So(g.CountLiveNeighbors(0, 2), ShouldEqual, 5)
			So(g.CountLiveNeighbors(2, 4), ShouldEqual, 5)
		})

		Convey("Interior cells see all eight", func() {
			So(g.CountLiveNeighbors(2, 2), ShouldEqual, 8)
		})

		Convey("No count ever exceeds eight", func() {
			for row := 0; row < 5; row++ {
				for col := 0; col < 5; col++ {
					n := g.CountLiveNeighbors(row, col)
					So(n, ShouldBeBetweenOrEqual, 0, 8)
				}
			}
		})
	})

	Convey("When live cells sit on the opposite edge", t, func() {
		g := NewGrid(4)
		g.Set(0, 3, true)
		g.Set(3, 0, true)
		g.Set(3, 3, true)

		Convey("They do not wrap around to the corner", func() {
			So(g.CountLiveNeighbors(0, 0), ShouldEqual, 0)
		})
	})

	Convey("When the cell itself is alive it is not its own neighbor", t, func() {
		g := NewGrid(3)
		g.Set(1, 1, true)
		So(g.CountLiveNeighbors(1, 1), ShouldEqual, 0)
		So(g.CountLiveNeighbors(0, 0), ShouldEqual, 1)
	})
}

func TestGridFromMatrix(t *testing.T) {
	Convey("When a grid is built from a matrix", t, func() {
		g := GridFromMatrix([][]bool{
			{true, false, true},
			{false},
			{false, true, false, true},
		})

		So(g.Side(), ShouldEqual, 3)
		So(g.Get(0, 0), ShouldBeTrue)
		So(g.Get(0, 2), ShouldBeTrue)
		So(g.Get(1, 1), ShouldBeFalse)
		So(g.Get(2, 1), ShouldBeTrue)
		So(g.CountLiving(), ShouldEqual, 3)
	})
}

func TestCloneEqualHash(t *testing.T) {
	Convey("When a grid is cloned", t, func() {
		g := NewGrid(4)
		g.Set(1, 1, true)
		c := g.Clone()

		So(c.Equal(g), ShouldBeTrue)
		So(c.Hash(), ShouldEqual, g.Hash())

		Convey("Mutating the clone leaves the original alone", func() {
			c.Set(2, 2, true)
			So(g.Get(2, 2), ShouldBeFalse)
			So(c.Equal(g), ShouldBeFalse)
			So(c.Hash(), ShouldNotEqual, g.Hash())
		})

		Convey("Grids of different sides differ", func() {
			So(NewGrid(2).Equal(NewGrid(3)), ShouldBeFalse)
			So(NewGrid(0).Hash(), ShouldNotEqual, NewGrid(1).Hash())
			So(g.Equal(nil), ShouldBeFalse)
		})
	})
}
